package usecase

import (
	"context"
	"sort"

	"skill-compass/internal/config"
	"skill-compass/internal/domain/recommend"
	"skill-compass/internal/index"
	"skill-compass/internal/repository"

	"golang.org/x/sync/errgroup"
)

type RecommendationParams struct {
	SkillURIs  []string
	GroupURIs  []string
	SchemeURIs []string
	// Limit 0 means the configured default; negative or above the cap is
	// rejected with ErrLimitOutOfRange.
	Limit int
}

type RecommendedOccupation struct {
	URI             string
	Label           string
	Description     string
	ISCOCode        string
	Similarity      float64
	MatchPercentage int
	MatchedSkills   []recommend.GapSkill
	MissingSkills   []recommend.GapSkill
	Groups          []string
	Schemes         []string
}

type RecommendationResult struct {
	// Total counts candidates that survived filtering, before truncation.
	Total         int
	ProfileSkills []string
	DroppedSkills int
	Items         []RecommendedOccupation
}

// OccupationSearcher is the read contract of the embedding index.
type OccupationSearcher interface {
	Search(query recommend.Vector, k int) []index.Hit
	Len() int
}

type RecommendationUsecase interface {
	Recommend(ctx context.Context, params RecommendationParams) (RecommendationResult, error)
}

type Recommendation struct {
	skills      repository.SkillRepository
	occupations repository.OccupationRepository
	gaps        SkillGapUsecase
	searcher    OccupationSearcher
	cache       ResponseCache
	engine      config.EngineConfig
}

func NewRecommendationUsecase(
	skills repository.SkillRepository,
	occupations repository.OccupationRepository,
	gaps SkillGapUsecase,
	searcher OccupationSearcher,
	cache ResponseCache,
	engine config.EngineConfig,
) *Recommendation {
	if engine.DefaultLimit <= 0 {
		engine.DefaultLimit = 10
	}
	if engine.MaxLimit <= 0 {
		engine.MaxLimit = 100
	}
	if engine.CandidateFloor <= 0 {
		engine.CandidateFloor = 50
	}
	if engine.GapConcurrency <= 0 {
		engine.GapConcurrency = 8
	}
	return &Recommendation{
		skills:      skills,
		occupations: occupations,
		gaps:        gaps,
		searcher:    searcher,
		cache:       cache,
		engine:      engine,
	}
}

func (u *Recommendation) Recommend(ctx context.Context, params RecommendationParams) (RecommendationResult, error) {
	limit := params.Limit
	if limit == 0 {
		limit = u.engine.DefaultLimit
	}
	if limit < 0 || limit > u.engine.MaxLimit {
		return RecommendationResult{}, ErrLimitOutOfRange
	}

	skillURIs := dedupe(params.SkillURIs)
	if len(skillURIs) == 0 {
		return RecommendationResult{}, ErrEmptyProfile
	}

	cacheKey := RecommendationCacheKey(params, limit)
	if u.cache != nil {
		var cached RecommendationResult
		if ok, _ := u.cache.GetJSON(ctx, cacheKey, &cached); ok {
			return cached, nil
		}
	}

	// Profile aggregation: unresolvable URIs are dropped and counted; an
	// entirely unresolvable profile is fatal.
	embeddings, err := u.skills.FindEmbeddings(ctx, skillURIs)
	if err != nil {
		return RecommendationResult{}, classifyStoreErr(err)
	}
	if len(embeddings) == 0 {
		return RecommendationResult{}, ErrEmptyProfile
	}
	vecs := make([]recommend.Vector, 0, len(embeddings))
	resolved := make([]string, 0, len(embeddings))
	for _, e := range embeddings {
		vecs = append(vecs, recommend.Vector(e.Embedding))
		resolved = append(resolved, e.URI)
	}
	sort.Strings(resolved)
	profile := recommend.Mean(vecs)
	if profile == nil {
		return RecommendationResult{}, ErrEmptyProfile
	}

	// Fetch generously more candidates than the limit; the index knows
	// nothing about groups or schemes, so filtering happens afterwards.
	k := limit * 5
	if k < u.engine.CandidateFloor {
		k = u.engine.CandidateFloor
	}
	hits := u.searcher.Search(profile, k)

	survivors, err := u.applyFilters(ctx, hits, params.GroupURIs, params.SchemeURIs)
	if err != nil {
		return RecommendationResult{}, err
	}

	items, err := u.explain(ctx, survivors, skillURIs)
	if err != nil {
		return RecommendationResult{}, err
	}

	result := RecommendationResult{
		Total:         len(items),
		ProfileSkills: resolved,
		DroppedSkills: len(skillURIs) - len(resolved),
		Items:         items,
	}
	if len(result.Items) > limit {
		result.Items = result.Items[:limit]
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, cacheKey, result, u.engine.CacheTTL)
	}
	return result, nil
}

func (u *Recommendation) applyFilters(ctx context.Context, hits []index.Hit, groupURIs, schemeURIs []string) ([]index.Hit, error) {
	if len(hits) == 0 || (len(groupURIs) == 0 && len(schemeURIs) == 0) {
		return hits, nil
	}
	uris := make([]string, len(hits))
	for i, h := range hits {
		uris[i] = h.URI
	}
	keep, err := u.occupations.FilterByMembership(ctx, uris, groupURIs, schemeURIs)
	if err != nil {
		return nil, classifyStoreErr(err)
	}
	out := hits[:0]
	for _, h := range hits {
		if keep[h.URI] {
			out = append(out, h)
		}
	}
	return out, nil
}

// explain resolves the skill gap of every candidate concurrently and
// assembles entries in the candidates' similarity order. Results land in
// rank-indexed slots, so completion order of the fan-out never changes the
// ranking.
func (u *Recommendation) explain(ctx context.Context, hits []index.Hit, possessedSkillURIs []string) ([]RecommendedOccupation, error) {
	if len(hits) == 0 {
		return []RecommendedOccupation{}, nil
	}

	uris := make([]string, len(hits))
	for i, h := range hits {
		uris[i] = h.URI
	}
	details, err := u.occupations.FindDetails(ctx, uris)
	if err != nil {
		return nil, classifyStoreErr(err)
	}

	items := make([]RecommendedOccupation, len(hits))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.engine.GapConcurrency)

	for i, hit := range hits {
		g.Go(func() error {
			gap, err := u.gaps.ResolveGap(gctx, hit.URI, possessedSkillURIs, GapOptions{})
			if err != nil {
				return err
			}

			all := append(append([]recommend.GapSkill{}, gap.EssentialSkills...), gap.OptionalSkills...)
			matched := make([]recommend.GapSkill, 0, len(all))
			missing := make([]recommend.GapSkill, 0, len(all))
			for _, s := range all {
				if s.Matched {
					matched = append(matched, s)
				} else {
					missing = append(missing, s)
				}
			}

			d := details[hit.URI]
			items[i] = RecommendedOccupation{
				URI:             hit.URI,
				Label:           d.Label,
				Description:     d.Description,
				ISCOCode:        d.ISCOCode,
				Similarity:      hit.Score,
				MatchPercentage: recommend.MatchPercentage(gap.EssentialSkills),
				MatchedSkills:   matched,
				MissingSkills:   missing,
				Groups:          emptyIfNil(d.Groups),
				Schemes:         emptyIfNil(d.Schemes),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return items, nil
}

func dedupe(uris []string) []string {
	seen := make(map[string]bool, len(uris))
	out := make([]string, 0, len(uris))
	for _, u := range uris {
		if u == "" || seen[u] {
			continue
		}
		seen[u] = true
		out = append(out, u)
	}
	return out
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
