package dto

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type SkillGapRequest struct {
	OccupationURI string   `json:"occupation_uri"`
	Skills        []string `json:"skills"`
	EssentialOnly bool     `json:"essential_only"`
	SkillType     string   `json:"skill_type"`
	Schemes       []string `json:"schemes"`
}

func (r SkillGapRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.OccupationURI,
			validation.Required.Error("occupation URI is required"),
			validation.Length(1, 2048),
		),
		validation.Field(&r.SkillType, validation.In("", "knowledge", "skill/competence")),
	)
}

type SkillInGapItem struct {
	URI          string `json:"uri"`
	Label        string `json:"label"`
	SkillType    string `json:"skill_type"`
	RelationType string `json:"relation_type"`
	Matched      bool   `json:"matched"`
}

type SkillGapResponse struct {
	OccupationURI   string           `json:"occupation_uri"`
	OccupationLabel string           `json:"occupation_label"`
	ISCOCode        string           `json:"isco_code,omitempty"`
	EssentialSkills []SkillInGapItem `json:"essential_skills"`
	OptionalSkills  []SkillInGapItem `json:"optional_skills"`
}
