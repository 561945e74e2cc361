package usecase

import (
	"context"

	"skill-compass/internal/domain/taxonomy"
	"skill-compass/internal/repository"
)

type OccupationListParams struct {
	Query             string
	GroupURIs         []string
	SchemeURIs        []string
	RequiredSkillURIs []string
	Limit             int
	Offset            int
}

type OccupationUsecase interface {
	ListOccupations(ctx context.Context, params OccupationListParams) ([]taxonomy.Occupation, error)
}

type Occupation struct {
	occupations repository.OccupationRepository
}

func NewOccupationUsecase(occupations repository.OccupationRepository) *Occupation {
	return &Occupation{occupations: occupations}
}

func (u *Occupation) ListOccupations(ctx context.Context, params OccupationListParams) ([]taxonomy.Occupation, error) {
	limit, offset, err := normalizePage(params.Limit, params.Offset)
	if err != nil {
		return nil, err
	}

	items, err := u.occupations.List(ctx, repository.OccupationFilter{
		Query:             params.Query,
		GroupURIs:         params.GroupURIs,
		SchemeURIs:        params.SchemeURIs,
		RequiredSkillURIs: params.RequiredSkillURIs,
		Limit:             limit,
		Offset:            offset,
	})
	if err != nil {
		return nil, classifyStoreErr(err)
	}
	return items, nil
}

func normalizePage(limit, offset int) (int, int, error) {
	if limit == 0 {
		limit = 20
	}
	if limit < 0 || limit > 100 {
		return 0, 0, ErrLimitOutOfRange
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset, nil
}
