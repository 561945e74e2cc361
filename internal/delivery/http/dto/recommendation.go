package dto

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type RecommendationRequest struct {
	Skills           []string `json:"skills"`
	OccupationGroups []string `json:"occupation_groups"`
	Schemes          []string `json:"schemes"`
	Limit            int      `json:"limit"`
}

func (r RecommendationRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Skills,
			validation.Required.Error("at least one skill URI is required"),
			validation.Length(1, 500),
			validation.Each(validation.Required, validation.Length(1, 2048)),
		),
		validation.Field(&r.Limit, validation.Min(0), validation.Max(100)),
	)
}

type RecommendationSkillItem struct {
	URI          string `json:"uri"`
	Label        string `json:"label"`
	SkillType    string `json:"skill_type"`
	RelationType string `json:"relation_type"`
}

type RecommendationItem struct {
	URI             string                    `json:"uri"`
	Label           string                    `json:"label"`
	Description     string                    `json:"description,omitempty"`
	ISCOCode        string                    `json:"isco_code,omitempty"`
	SimilarityScore float64                   `json:"similarity_score"`
	MatchPercentage int                       `json:"match_percentage"`
	MatchedSkills   []RecommendationSkillItem `json:"matched_skills"`
	MissingSkills   []RecommendationSkillItem `json:"missing_skills"`
	Groups          []string                  `json:"groups"`
	Schemes         []string                  `json:"schemes"`
}

type RecommendationResponse struct {
	Total           int                  `json:"total"`
	UserSkills      []string             `json:"user_skills"`
	DroppedSkills   int                  `json:"dropped_skills"`
	Recommendations []RecommendationItem `json:"recommendations"`
}
