package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"time"
)

// ResponseCache is the cache contract the recommendation usecase consumes.
// A nil cache disables caching entirely.
type ResponseCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

type recommendationCacheKeyInput struct {
	Skills  []string `json:"skills"`
	Groups  []string `json:"groups"`
	Schemes []string `json:"schemes"`
	Limit   int      `json:"limit"`
}

// RecommendationCacheKey is a stable digest of a recommendation request.
// Skill and filter sets are deduplicated and sorted first, so requests that
// differ only in element order share a key.
func RecommendationCacheKey(params RecommendationParams, limit int) string {
	in := recommendationCacheKeyInput{
		Skills:  sortedSet(params.SkillURIs),
		Groups:  sortedSet(params.GroupURIs),
		Schemes: sortedSet(params.SchemeURIs),
		Limit:   limit,
	}
	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "recommend:" + hex.EncodeToString(sum[:])
}

func sortedSet(uris []string) []string {
	out := dedupe(uris)
	sort.Strings(out)
	return out
}
