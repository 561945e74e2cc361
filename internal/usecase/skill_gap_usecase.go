package usecase

import (
	"context"

	"skill-compass/internal/domain/recommend"
	"skill-compass/internal/domain/taxonomy"
	"skill-compass/internal/repository"
)

type GapOptions struct {
	// EssentialOnly skips the optional requirement edges entirely; the
	// optional collection comes back empty.
	EssentialOnly bool
	// SkillType narrows both collections to one skill type when set.
	SkillType string
	// SchemeURIs narrows both collections to skills in any of the schemes.
	SchemeURIs []string
}

type GapResult struct {
	OccupationURI   string
	OccupationLabel string
	ISCOCode        string
	EssentialSkills []recommend.GapSkill
	OptionalSkills  []recommend.GapSkill
}

type SkillGapUsecase interface {
	ResolveGap(ctx context.Context, occupationURI string, possessedSkillURIs []string, opts GapOptions) (GapResult, error)
}

type SkillGap struct {
	occupations  repository.OccupationRepository
	requirements repository.RequirementRepository
}

func NewSkillGapUsecase(occupations repository.OccupationRepository, requirements repository.RequirementRepository) *SkillGap {
	return &SkillGap{occupations: occupations, requirements: requirements}
}

func (u *SkillGap) ResolveGap(ctx context.Context, occupationURI string, possessedSkillURIs []string, opts GapOptions) (GapResult, error) {
	if occupationURI == "" {
		return GapResult{}, ErrOccupationNotFound
	}
	if opts.SkillType != "" && !taxonomy.SkillType(opts.SkillType).Valid() {
		return GapResult{}, ErrInvalidInput
	}

	occ, err := u.occupations.FindByURI(ctx, occupationURI)
	if err != nil {
		return GapResult{}, classifyStoreErr(err)
	}
	if occ == nil {
		return GapResult{}, ErrOccupationNotFound
	}

	reqs, err := u.requirements.FindByOccupation(ctx, occupationURI, repository.RequirementFilter{
		EssentialOnly: opts.EssentialOnly,
		SkillType:     opts.SkillType,
		SchemeURIs:    opts.SchemeURIs,
	})
	if err != nil {
		return GapResult{}, classifyStoreErr(err)
	}

	essential, optional := recommend.Split(reqs)
	possessed := possessedSet(possessedSkillURIs)

	res := GapResult{
		OccupationURI:   occ.URI,
		OccupationLabel: occ.Label,
		ISCOCode:        occ.ISCOCode,
		EssentialSkills: recommend.Partition(essential, possessed),
		OptionalSkills:  recommend.Partition(optional, possessed),
	}
	if opts.EssentialOnly {
		res.OptionalSkills = []recommend.GapSkill{}
	}
	return res, nil
}

func possessedSet(uris []string) map[string]bool {
	set := make(map[string]bool, len(uris))
	for _, u := range uris {
		if u != "" {
			set[u] = true
		}
	}
	return set
}
