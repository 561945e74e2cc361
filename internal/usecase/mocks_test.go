package usecase

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"skill-compass/internal/domain/taxonomy"
	"skill-compass/internal/repository"
)

type mockSkillRepo struct {
	embeddings map[string][]float32
	err        error
}

func (m *mockSkillRepo) FindEmbeddings(_ context.Context, uris []string) ([]repository.SkillEmbedding, error) {
	if m.err != nil {
		return nil, m.err
	}
	sorted := append([]string{}, uris...)
	sort.Strings(sorted)
	out := make([]repository.SkillEmbedding, 0, len(sorted))
	for _, uri := range sorted {
		if emb, ok := m.embeddings[uri]; ok {
			out = append(out, repository.SkillEmbedding{URI: uri, Embedding: emb})
		}
	}
	return out, nil
}

func (m *mockSkillRepo) Search(context.Context, repository.SkillFilter) ([]taxonomy.Skill, error) {
	return nil, nil
}

type mockOccupationRepo struct {
	occupations map[string]taxonomy.Occupation
	groups      map[string][]string
	schemes     map[string][]string
	err         error
}

func (m *mockOccupationRepo) FindByURI(_ context.Context, uri string) (*taxonomy.Occupation, error) {
	if m.err != nil {
		return nil, m.err
	}
	o, ok := m.occupations[uri]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (m *mockOccupationRepo) FindDetails(_ context.Context, uris []string) (map[string]repository.OccupationDetail, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make(map[string]repository.OccupationDetail, len(uris))
	for _, uri := range uris {
		o, ok := m.occupations[uri]
		if !ok {
			continue
		}
		out[uri] = repository.OccupationDetail{
			Occupation: o,
			Groups:     m.groups[uri],
			Schemes:    m.schemes[uri],
		}
	}
	return out, nil
}

func (m *mockOccupationRepo) FilterByMembership(_ context.Context, uris, groupURIs, schemeURIs []string) (map[string]bool, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make(map[string]bool, len(uris))
	for _, uri := range uris {
		if _, ok := m.occupations[uri]; !ok {
			continue
		}
		if len(groupURIs) > 0 && !intersects(m.groups[uri], groupURIs) {
			continue
		}
		if len(schemeURIs) > 0 && !intersects(m.schemes[uri], schemeURIs) {
			continue
		}
		out[uri] = true
	}
	return out, nil
}

func (m *mockOccupationRepo) List(context.Context, repository.OccupationFilter) ([]taxonomy.Occupation, error) {
	return nil, nil
}

func (m *mockOccupationRepo) ListVectors(context.Context) ([]repository.OccupationVector, error) {
	return nil, nil
}

func intersects(have, want []string) bool {
	for _, h := range have {
		for _, w := range want {
			if h == w {
				return true
			}
		}
	}
	return false
}

type mockRequirementRepo struct {
	reqs map[string][]taxonomy.RequiredSkill
	// schemes maps a skill URI to the concept schemes it belongs to.
	schemes map[string][]string
	err     error
}

func (m *mockRequirementRepo) FindByOccupation(_ context.Context, occupationURI string, f repository.RequirementFilter) ([]taxonomy.RequiredSkill, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]taxonomy.RequiredSkill, 0)
	for _, r := range m.reqs[occupationURI] {
		if f.EssentialOnly && r.Relation != taxonomy.RelationEssential {
			continue
		}
		if f.SkillType != "" && string(r.Type) != f.SkillType {
			continue
		}
		if len(f.SchemeURIs) > 0 && !intersects(m.schemes[r.URI], f.SchemeURIs) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

type mockResponseCache struct {
	store map[string][]byte
	sets  int
}

func newMockResponseCache() *mockResponseCache {
	return &mockResponseCache{store: make(map[string][]byte)}
}

func (m *mockResponseCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := m.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (m *mockResponseCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.store[key] = b
	m.sets++
	return nil
}
