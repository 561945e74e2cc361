package usecase

import (
	"context"

	"skill-compass/internal/domain/taxonomy"
	"skill-compass/internal/repository"
)

type CatalogUsecase interface {
	ListOccupationGroups(ctx context.Context, query string, limit int) ([]taxonomy.Group, error)
	ListSkillGroups(ctx context.Context, query string, limit int) ([]taxonomy.Group, error)
	ListSchemes(ctx context.Context) ([]taxonomy.Scheme, error)
}

type Catalog struct {
	catalog repository.CatalogRepository
}

func NewCatalogUsecase(catalog repository.CatalogRepository) *Catalog {
	return &Catalog{catalog: catalog}
}

func (u *Catalog) ListOccupationGroups(ctx context.Context, query string, limit int) ([]taxonomy.Group, error) {
	limit, _, err := normalizePage(limit, 0)
	if err != nil {
		return nil, err
	}
	items, err := u.catalog.ListOccupationGroups(ctx, query, limit)
	if err != nil {
		return nil, classifyStoreErr(err)
	}
	return items, nil
}

func (u *Catalog) ListSkillGroups(ctx context.Context, query string, limit int) ([]taxonomy.Group, error) {
	limit, _, err := normalizePage(limit, 0)
	if err != nil {
		return nil, err
	}
	items, err := u.catalog.ListSkillGroups(ctx, query, limit)
	if err != nil {
		return nil, classifyStoreErr(err)
	}
	return items, nil
}

func (u *Catalog) ListSchemes(ctx context.Context) ([]taxonomy.Scheme, error) {
	items, err := u.catalog.ListSchemes(ctx)
	if err != nil {
		return nil, classifyStoreErr(err)
	}
	return items, nil
}
