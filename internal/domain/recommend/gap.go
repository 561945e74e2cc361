package recommend

import (
	"math"
	"sort"

	"skill-compass/internal/domain/taxonomy"
)

// GapSkill is one required skill annotated with whether the caller already
// possesses it.
type GapSkill struct {
	URI      string
	Label    string
	Type     taxonomy.SkillType
	Relation taxonomy.Relation
	Matched  bool
}

// Split partitions requirement edges into disjoint essential and optional
// sets. When the source data marks the same skill both essential and optional
// for one occupation, essential wins; duplicate edges of the same strength
// collapse to one. Both outputs are ordered by label, then URI.
func Split(reqs []taxonomy.RequiredSkill) (essential, optional []taxonomy.RequiredSkill) {
	byURI := make(map[string]taxonomy.RequiredSkill, len(reqs))
	for _, r := range reqs {
		if r.URI == "" {
			continue
		}
		prev, seen := byURI[r.URI]
		if seen && prev.Relation == taxonomy.RelationEssential {
			continue
		}
		byURI[r.URI] = r
	}

	for _, r := range byURI {
		if r.Relation == taxonomy.RelationEssential {
			essential = append(essential, r)
		} else {
			optional = append(optional, r)
		}
	}
	sortRequired(essential)
	sortRequired(optional)
	return essential, optional
}

func sortRequired(reqs []taxonomy.RequiredSkill) {
	sort.Slice(reqs, func(i, j int) bool {
		if reqs[i].Label != reqs[j].Label {
			return reqs[i].Label < reqs[j].Label
		}
		return reqs[i].URI < reqs[j].URI
	})
}

// Partition tags every requirement with possession. Input order is preserved.
func Partition(reqs []taxonomy.RequiredSkill, possessed map[string]bool) []GapSkill {
	out := make([]GapSkill, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, GapSkill{
			URI:      r.URI,
			Label:    r.Label,
			Type:     r.Type,
			Relation: r.Relation,
			Matched:  possessed[r.URI],
		})
	}
	return out
}

// MatchPercentage is the share of essential skills matched, rounded to the
// nearest whole percent. An occupation with no essential skills scores 0.
// Rounding never reaches the boundaries: 100 means every essential skill
// matched and 0 means none did.
func MatchPercentage(essential []GapSkill) int {
	if len(essential) == 0 {
		return 0
	}
	matched := 0
	for _, s := range essential {
		if s.Matched {
			matched++
		}
	}
	pct := int(math.Round(float64(matched) / float64(len(essential)) * 100))
	if pct == 100 && matched < len(essential) {
		pct = 99
	}
	if pct == 0 && matched > 0 {
		pct = 1
	}
	return pct
}
