package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"skill-compass/internal/domain/taxonomy"
)

func newTestSkillGap() *SkillGap {
	return NewSkillGapUsecase(testOccupationRepo(), testRequirementRepo())
}

func TestResolveGap_OccupationNotFound(t *testing.T) {
	uc := newTestSkillGap()

	for _, uri := range []string{"", "occ/ghost"} {
		_, err := uc.ResolveGap(context.Background(), uri, nil, GapOptions{})
		if !errors.Is(err, ErrOccupationNotFound) {
			t.Fatalf("uri %q: expected ErrOccupationNotFound, got %v", uri, err)
		}
	}
}

func TestResolveGap_InvalidSkillType(t *testing.T) {
	uc := newTestSkillGap()

	_, err := uc.ResolveGap(context.Background(), "occ/dev", nil, GapOptions{SkillType: "soft-skill"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestResolveGap_Partitions(t *testing.T) {
	uc := newTestSkillGap()

	res, err := uc.ResolveGap(context.Background(), "occ/analyst", []string{"s/go"}, GapOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.OccupationLabel != "data analyst" || res.ISCOCode != "2511" {
		t.Fatalf("unexpected occupation header: %+v", res)
	}
	if len(res.EssentialSkills) != 2 {
		t.Fatalf("expected 2 essential skills, got %+v", res.EssentialSkills)
	}

	// every requirement appears exactly once, flagged by possession
	byURI := map[string]bool{}
	for _, s := range res.EssentialSkills {
		byURI[s.URI] = s.Matched
	}
	if !byURI["s/go"] || byURI["s/sql"] {
		t.Fatalf("unexpected matched flags: %+v", res.EssentialSkills)
	}
	if res.OptionalSkills == nil || len(res.OptionalSkills) != 0 {
		t.Fatalf("expected empty optional collection, got %+v", res.OptionalSkills)
	}
}

func TestResolveGap_EssentialOnly(t *testing.T) {
	uc := newTestSkillGap()

	full, err := uc.ResolveGap(context.Background(), "occ/dev", []string{"s/go"}, GapOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(full.OptionalSkills) != 1 || full.OptionalSkills[0].URI != "s/docker" {
		t.Fatalf("expected s/docker optional, got %+v", full.OptionalSkills)
	}

	only, err := uc.ResolveGap(context.Background(), "occ/dev", []string{"s/go"}, GapOptions{EssentialOnly: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(only.OptionalSkills) != 0 {
		t.Fatalf("essential-only must drop optionals, got %+v", only.OptionalSkills)
	}
	if !reflect.DeepEqual(full.EssentialSkills, only.EssentialSkills) {
		t.Fatalf("essential partition must not change:\n%+v\n%+v", full.EssentialSkills, only.EssentialSkills)
	}
}

func TestResolveGap_SkillTypeFilter(t *testing.T) {
	uc := newTestSkillGap()

	res, err := uc.ResolveGap(context.Background(), "occ/analyst", nil, GapOptions{
		SkillType: string(taxonomy.SkillTypeKnowledge),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.EssentialSkills) != 1 || res.EssentialSkills[0].URI != "s/sql" {
		t.Fatalf("expected only the knowledge skill, got %+v", res.EssentialSkills)
	}
}

func TestResolveGap_SchemeFilter(t *testing.T) {
	occupations := testOccupationRepo()
	requirements := &mockRequirementRepo{
		reqs: map[string][]taxonomy.RequiredSkill{
			"occ/dev": {
				{URI: "s/go", Label: "go", Type: taxonomy.SkillTypeCompetence, Relation: taxonomy.RelationEssential},
				{URI: "s/sql", Label: "sql", Type: taxonomy.SkillTypeKnowledge, Relation: taxonomy.RelationEssential},
				{URI: "s/docker", Label: "docker", Type: taxonomy.SkillTypeCompetence, Relation: taxonomy.RelationOptional},
				{URI: "s/k8s", Label: "kubernetes", Type: taxonomy.SkillTypeCompetence, Relation: taxonomy.RelationOptional},
			},
		},
		schemes: map[string][]string{
			"s/go":     {"cs/digital"},
			"s/sql":    {"cs/language"},
			"s/docker": {"cs/digital"},
			"s/k8s":    {"cs/infra"},
		},
	}
	uc := NewSkillGapUsecase(occupations, requirements)

	res, err := uc.ResolveGap(context.Background(), "occ/dev", nil, GapOptions{
		SchemeURIs: []string{"cs/digital"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// the same scheme predicate narrows the essential and the optional set
	if len(res.EssentialSkills) != 1 || res.EssentialSkills[0].URI != "s/go" {
		t.Fatalf("expected only s/go essential, got %+v", res.EssentialSkills)
	}
	if len(res.OptionalSkills) != 1 || res.OptionalSkills[0].URI != "s/docker" {
		t.Fatalf("expected only s/docker optional, got %+v", res.OptionalSkills)
	}
}

func TestResolveGap_EssentialPrecedence(t *testing.T) {
	occupations := testOccupationRepo()
	requirements := &mockRequirementRepo{reqs: map[string][]taxonomy.RequiredSkill{
		"occ/dev": {
			{URI: "s/go", Label: "go", Type: taxonomy.SkillTypeCompetence, Relation: taxonomy.RelationOptional},
			{URI: "s/go", Label: "go", Type: taxonomy.SkillTypeCompetence, Relation: taxonomy.RelationEssential},
		},
	}}
	uc := NewSkillGapUsecase(occupations, requirements)

	res, err := uc.ResolveGap(context.Background(), "occ/dev", nil, GapOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.EssentialSkills) != 1 || len(res.OptionalSkills) != 0 {
		t.Fatalf("conflicting edges must collapse to essential, got %d/%d",
			len(res.EssentialSkills), len(res.OptionalSkills))
	}
}

func TestResolveGap_StoreUnavailable(t *testing.T) {
	occupations := &mockOccupationRepo{err: context.DeadlineExceeded}
	uc := NewSkillGapUsecase(occupations, testRequirementRepo())

	_, err := uc.ResolveGap(context.Background(), "occ/dev", nil, GapOptions{})
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}
