package usecase

import (
	"context"

	"skill-compass/internal/domain/taxonomy"
	"skill-compass/internal/repository"
)

type SkillSearchParams struct {
	Query      string
	SkillType  string
	GroupURIs  []string
	SchemeURIs []string
	Limit      int
	Offset     int
}

type SkillUsecase interface {
	SearchSkills(ctx context.Context, params SkillSearchParams) ([]taxonomy.Skill, error)
}

type Skill struct {
	skills repository.SkillRepository
}

func NewSkillUsecase(skills repository.SkillRepository) *Skill {
	return &Skill{skills: skills}
}

func (u *Skill) SearchSkills(ctx context.Context, params SkillSearchParams) ([]taxonomy.Skill, error) {
	if params.SkillType != "" && !taxonomy.SkillType(params.SkillType).Valid() {
		return nil, ErrInvalidInput
	}
	limit, offset, err := normalizePage(params.Limit, params.Offset)
	if err != nil {
		return nil, err
	}

	items, err := u.skills.Search(ctx, repository.SkillFilter{
		Query:      params.Query,
		SkillType:  params.SkillType,
		GroupURIs:  params.GroupURIs,
		SchemeURIs: params.SchemeURIs,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return nil, classifyStoreErr(err)
	}
	return items, nil
}
