package repository

import (
	"context"

	"skill-compass/internal/database"
	"skill-compass/internal/domain/taxonomy"
)

// TaxonomyCounts backs the diagnostics surface.
type TaxonomyCounts struct {
	Occupations  int64
	Skills       int64
	Requirements int64
}

type CatalogRepository interface {
	ListOccupationGroups(ctx context.Context, query string, limit int) ([]taxonomy.Group, error)
	ListSkillGroups(ctx context.Context, query string, limit int) ([]taxonomy.Group, error)
	ListSchemes(ctx context.Context) ([]taxonomy.Scheme, error)
	Counts(ctx context.Context) (TaxonomyCounts, error)
}

type PostgresCatalogRepository struct {
	db database.DB
}

func NewPostgresCatalogRepository(db database.DB) *PostgresCatalogRepository {
	return &PostgresCatalogRepository{db: db}
}

func (r *PostgresCatalogRepository) ListOccupationGroups(ctx context.Context, query string, limit int) ([]taxonomy.Group, error) {
	rows, err := r.db.Query(ctx, `
		SELECT uri, label, COALESCE(code, '')
		FROM occupation_groups
		WHERE $1 = '' OR label ILIKE '%' || $1 || '%' OR code LIKE $1 || '%'
		ORDER BY lower(label), uri
		LIMIT $2`, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanGroups(rows)
}

func (r *PostgresCatalogRepository) ListSkillGroups(ctx context.Context, query string, limit int) ([]taxonomy.Group, error) {
	rows, err := r.db.Query(ctx, `
		SELECT uri, label, ''
		FROM skill_groups
		WHERE $1 = '' OR label ILIKE '%' || $1 || '%'
		ORDER BY lower(label), uri
		LIMIT $2`, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanGroups(rows)
}

func scanGroups(rows database.Rows) ([]taxonomy.Group, error) {
	out := make([]taxonomy.Group, 0)
	for rows.Next() {
		var g taxonomy.Group
		if err := rows.Scan(&g.URI, &g.Label, &g.Code); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (r *PostgresCatalogRepository) ListSchemes(ctx context.Context) ([]taxonomy.Scheme, error) {
	rows, err := r.db.Query(ctx, `
		SELECT uri, label
		FROM concept_schemes
		ORDER BY lower(label), uri`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]taxonomy.Scheme, 0)
	for rows.Next() {
		var s taxonomy.Scheme
		if err := rows.Scan(&s.URI, &s.Label); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *PostgresCatalogRepository) Counts(ctx context.Context) (TaxonomyCounts, error) {
	var c TaxonomyCounts
	err := r.db.QueryRow(ctx, `
		SELECT
			(SELECT count(*) FROM occupations),
			(SELECT count(*) FROM skills),
			(SELECT count(*) FROM requirements)`).
		Scan(&c.Occupations, &c.Skills, &c.Requirements)
	if err != nil {
		return TaxonomyCounts{}, err
	}
	return c, nil
}
