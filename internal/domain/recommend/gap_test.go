package recommend

import (
	"testing"

	"skill-compass/internal/domain/taxonomy"
)

func req(uri, label string, rel taxonomy.Relation) taxonomy.RequiredSkill {
	return taxonomy.RequiredSkill{URI: uri, Label: label, Type: taxonomy.SkillTypeCompetence, Relation: rel}
}

func TestSplit_EssentialPrecedence(t *testing.T) {
	reqs := []taxonomy.RequiredSkill{
		req("s/1", "go", taxonomy.RelationOptional),
		req("s/1", "go", taxonomy.RelationEssential),
		req("s/2", "sql", taxonomy.RelationOptional),
	}

	essential, optional := Split(reqs)
	if len(essential) != 1 || essential[0].URI != "s/1" {
		t.Fatalf("expected s/1 essential only, got %+v", essential)
	}
	if len(optional) != 1 || optional[0].URI != "s/2" {
		t.Fatalf("expected s/2 optional only, got %+v", optional)
	}
}

func TestSplit_PrecedenceIsOrderIndependent(t *testing.T) {
	reqs := []taxonomy.RequiredSkill{
		req("s/1", "go", taxonomy.RelationEssential),
		req("s/1", "go", taxonomy.RelationOptional),
	}
	essential, optional := Split(reqs)
	if len(essential) != 1 || len(optional) != 0 {
		t.Fatalf("essential must win regardless of edge order, got %d/%d", len(essential), len(optional))
	}
}

func TestSplit_Deduplicates(t *testing.T) {
	reqs := []taxonomy.RequiredSkill{
		req("s/1", "go", taxonomy.RelationEssential),
		req("s/1", "go", taxonomy.RelationEssential),
		req("", "blank", taxonomy.RelationEssential),
	}
	essential, optional := Split(reqs)
	if len(essential) != 1 || len(optional) != 0 {
		t.Fatalf("expected a single essential edge, got %d/%d", len(essential), len(optional))
	}
}

func TestSplit_SortsByLabelThenURI(t *testing.T) {
	reqs := []taxonomy.RequiredSkill{
		req("s/3", "zsh", taxonomy.RelationEssential),
		req("s/2", "awk", taxonomy.RelationEssential),
		req("s/1", "awk", taxonomy.RelationEssential),
	}
	essential, _ := Split(reqs)
	want := []string{"s/1", "s/2", "s/3"}
	for i, uri := range want {
		if essential[i].URI != uri {
			t.Fatalf("position %d: got %s, want %s", i, essential[i].URI, uri)
		}
	}
}

func TestPartition(t *testing.T) {
	reqs := []taxonomy.RequiredSkill{
		req("s/1", "go", taxonomy.RelationEssential),
		req("s/2", "sql", taxonomy.RelationEssential),
	}
	got := Partition(reqs, map[string]bool{"s/1": true})
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if !got[0].Matched || got[1].Matched {
		t.Fatalf("unexpected matched flags: %+v", got)
	}
}

func TestMatchPercentage(t *testing.T) {
	gap := func(matched, missing int) []GapSkill {
		out := make([]GapSkill, 0, matched+missing)
		for i := 0; i < matched; i++ {
			out = append(out, GapSkill{Matched: true})
		}
		for i := 0; i < missing; i++ {
			out = append(out, GapSkill{Matched: false})
		}
		return out
	}

	tests := []struct {
		name   string
		skills []GapSkill
		want   int
	}{
		{"no essentials", nil, 0},
		{"none matched", gap(0, 2), 0},
		{"half matched", gap(1, 1), 50},
		{"all matched", gap(2, 0), 100},
		{"one third rounds to 33", gap(1, 2), 33},
		{"two thirds rounds to 67", gap(2, 1), 67},
		{"199 of 200 caps at 99", gap(199, 1), 99},
		{"1 of 300 floors at 1", gap(1, 299), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchPercentage(tt.skills)
			if got != tt.want {
				t.Fatalf("got %d, want %d", got, tt.want)
			}
			if got < 0 || got > 100 {
				t.Fatalf("percentage out of bounds: %d", got)
			}
		})
	}
}
