package usecase

import (
	"context"

	"skill-compass/internal/repository"
)

type DiagnosticsSnapshot struct {
	Occupations    int64
	Skills         int64
	Requirements   int64
	IndexSize      int
	IndexDimension int
	CacheAvailable bool
}

// CacheProbe reports whether the response cache is reachable.
type CacheProbe interface {
	Available() bool
}

// IndexProbe reports the size and dimensionality of the embedding index.
type IndexProbe interface {
	Len() int
	Dim() int
}

type DiagnosticsUsecase interface {
	Snapshot(ctx context.Context) (DiagnosticsSnapshot, error)
}

type Diagnostics struct {
	catalog repository.CatalogRepository
	idx     IndexProbe
	cache   CacheProbe
}

func NewDiagnosticsUsecase(catalog repository.CatalogRepository, idx IndexProbe, cache CacheProbe) *Diagnostics {
	return &Diagnostics{catalog: catalog, idx: idx, cache: cache}
}

func (u *Diagnostics) Snapshot(ctx context.Context) (DiagnosticsSnapshot, error) {
	counts, err := u.catalog.Counts(ctx)
	if err != nil {
		return DiagnosticsSnapshot{}, classifyStoreErr(err)
	}

	snap := DiagnosticsSnapshot{
		Occupations:  counts.Occupations,
		Skills:       counts.Skills,
		Requirements: counts.Requirements,
	}
	if u.idx != nil {
		snap.IndexSize = u.idx.Len()
		snap.IndexDimension = u.idx.Dim()
	}
	if u.cache != nil {
		snap.CacheAvailable = u.cache.Available()
	}
	return snap, nil
}
