// Package index holds the in-memory nearest-neighbour index over occupation
// embedding vectors. The index is built once at bootstrap from vectors stored
// in the taxonomy database and is read-only afterwards, so concurrent searches
// need no locking.
package index

import (
	"errors"
	"fmt"
	"sort"

	"skill-compass/internal/domain/recommend"
)

var (
	ErrEmptyIndex        = errors.New("index: no entries")
	ErrDimensionMismatch = errors.New("index: vector dimension mismatch")
)

// Entry is one occupation vector to be indexed.
type Entry struct {
	URI    string
	Vector recommend.Vector
}

// Hit is one search result. Score is cosine similarity in [-1, 1].
type Hit struct {
	URI   string
	Score float64
}

type Index struct {
	uris []string
	vecs []recommend.Vector // unit length
	dim  int
}

// Build normalizes the entries and constructs an index. Entries with empty
// URIs or zero vectors are skipped; a dimension mismatch across entries is an
// error because it means the ingestion run is inconsistent.
func Build(entries []Entry) (*Index, error) {
	ix := &Index{}
	for _, e := range entries {
		if e.URI == "" || recommend.Norm(e.Vector) == 0 {
			continue
		}
		if ix.dim == 0 {
			ix.dim = len(e.Vector)
		}
		if len(e.Vector) != ix.dim {
			return nil, fmt.Errorf("%w: %s has dim %d, want %d", ErrDimensionMismatch, e.URI, len(e.Vector), ix.dim)
		}
		ix.uris = append(ix.uris, e.URI)
		ix.vecs = append(ix.vecs, recommend.Normalize(e.Vector))
	}
	if len(ix.uris) == 0 {
		return nil, ErrEmptyIndex
	}
	return ix, nil
}

// Search returns the k entries most similar to query by cosine similarity,
// in descending score order. Equal scores order by ascending URI, so repeated
// calls against the same index yield the same ranking.
func (ix *Index) Search(query recommend.Vector, k int) []Hit {
	if ix == nil || k <= 0 || len(query) != ix.dim {
		return nil
	}
	q := recommend.Normalize(query)

	hits := make([]Hit, len(ix.uris))
	for i, v := range ix.vecs {
		hits[i] = Hit{URI: ix.uris[i], Score: recommend.Dot(q, v)}
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Score != hits[j].Score {
			return hits[i].Score > hits[j].Score
		}
		return hits[i].URI < hits[j].URI
	})

	if k > len(hits) {
		k = len(hits)
	}
	return hits[:k]
}

func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.uris)
}

func (ix *Index) Dim() int {
	if ix == nil {
		return 0
	}
	return ix.dim
}
