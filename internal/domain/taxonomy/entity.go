package taxonomy

import (
	"time"

	"github.com/google/uuid"
)

// SkillType is the type tag of a skill node. Exactly two values are legal.
type SkillType string

const (
	SkillTypeKnowledge  SkillType = "knowledge"
	SkillTypeCompetence SkillType = "skill/competence"
)

func (t SkillType) Valid() bool {
	return t == SkillTypeKnowledge || t == SkillTypeCompetence
}

// Relation is the strength of a requirement edge from an occupation to a skill.
type Relation string

const (
	RelationEssential Relation = "essential"
	RelationOptional  Relation = "optional"
)

type Occupation struct {
	URI         string
	Label       string
	Description string
	ISCOCode    string
}

type Skill struct {
	URI         string
	Label       string
	Description string
	Type        SkillType
}

// RequiredSkill is one requirement edge, denormalized with the target skill's
// label and type for direct use in gap results.
type RequiredSkill struct {
	URI      string
	Label    string
	Type     SkillType
	Relation Relation
}

type Group struct {
	URI   string
	Label string
	Code  string
}

type Scheme struct {
	URI   string
	Label string
}

type Note struct {
	ID            uuid.UUID
	OccupationURI string
	Body          string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
