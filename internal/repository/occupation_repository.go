package repository

import (
	"context"

	"skill-compass/internal/database"
	"skill-compass/internal/domain/taxonomy"
)

// OccupationDetail is an occupation denormalized with the labels of the
// groups and schemes it belongs to, as recommendation payloads carry them.
type OccupationDetail struct {
	taxonomy.Occupation
	Groups  []string
	Schemes []string
}

// OccupationVector pairs an occupation URI with its stored embedding; used
// only to build the in-memory index at bootstrap.
type OccupationVector struct {
	URI       string
	Embedding []float32
}

type OccupationFilter struct {
	Query             string
	GroupURIs         []string
	SchemeURIs        []string
	RequiredSkillURIs []string
	Limit             int
	Offset            int
}

type OccupationRepository interface {
	FindByURI(ctx context.Context, uri string) (*taxonomy.Occupation, error)
	FindDetails(ctx context.Context, uris []string) (map[string]OccupationDetail, error)
	// FilterByMembership returns the subset of uris belonging to at least one
	// of the given groups and, independently, at least one of the given
	// schemes. Empty filter slices do not constrain. Unknown group or scheme
	// URIs simply match nothing.
	FilterByMembership(ctx context.Context, uris, groupURIs, schemeURIs []string) (map[string]bool, error)
	List(ctx context.Context, f OccupationFilter) ([]taxonomy.Occupation, error)
	ListVectors(ctx context.Context) ([]OccupationVector, error)
}

type PostgresOccupationRepository struct {
	db database.DB
}

func NewPostgresOccupationRepository(db database.DB) *PostgresOccupationRepository {
	return &PostgresOccupationRepository{db: db}
}

func (r *PostgresOccupationRepository) FindByURI(ctx context.Context, uri string) (*taxonomy.Occupation, error) {
	rows, err := r.db.Query(ctx, `
		SELECT uri, label, COALESCE(description, ''), COALESCE(isco_code, '')
		FROM occupations
		WHERE uri = $1`, uri)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	var o taxonomy.Occupation
	if err := rows.Scan(&o.URI, &o.Label, &o.Description, &o.ISCOCode); err != nil {
		return nil, err
	}
	return &o, rows.Err()
}

func (r *PostgresOccupationRepository) FindDetails(ctx context.Context, uris []string) (map[string]OccupationDetail, error) {
	if len(uris) == 0 {
		return map[string]OccupationDetail{}, nil
	}
	rows, err := r.db.Query(ctx, `
		SELECT o.uri, o.label, COALESCE(o.description, ''), COALESCE(o.isco_code, ''),
			COALESCE((
				SELECT array_agg(g.label ORDER BY g.label)
				FROM occupation_group_members m
				JOIN occupation_groups g ON g.uri = m.group_uri
				WHERE m.occupation_uri = o.uri
			), '{}'),
			COALESCE((
				SELECT array_agg(cs.label ORDER BY cs.label)
				FROM scheme_members sm
				JOIN concept_schemes cs ON cs.uri = sm.scheme_uri
				WHERE sm.entity_uri = o.uri
			), '{}')
		FROM occupations o
		WHERE o.uri = ANY($1)`, uris)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]OccupationDetail, len(uris))
	for rows.Next() {
		var d OccupationDetail
		if err := rows.Scan(&d.URI, &d.Label, &d.Description, &d.ISCOCode, &d.Groups, &d.Schemes); err != nil {
			return nil, err
		}
		out[d.URI] = d
	}
	return out, rows.Err()
}

func (r *PostgresOccupationRepository) FilterByMembership(ctx context.Context, uris, groupURIs, schemeURIs []string) (map[string]bool, error) {
	if len(uris) == 0 {
		return map[string]bool{}, nil
	}
	rows, err := r.db.Query(ctx, `
		SELECT o.uri
		FROM occupations o
		WHERE o.uri = ANY($1)
		  AND ($2::text[] IS NULL OR EXISTS (
			SELECT 1 FROM occupation_group_members m
			WHERE m.occupation_uri = o.uri AND m.group_uri = ANY($2)
		  ))
		  AND ($3::text[] IS NULL OR EXISTS (
			SELECT 1 FROM scheme_members sm
			WHERE sm.entity_uri = o.uri AND sm.scheme_uri = ANY($3)
		  ))`, uris, nilIfEmpty(groupURIs), nilIfEmpty(schemeURIs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]bool, len(uris))
	for rows.Next() {
		var uri string
		if err := rows.Scan(&uri); err != nil {
			return nil, err
		}
		out[uri] = true
	}
	return out, rows.Err()
}

func (r *PostgresOccupationRepository) List(ctx context.Context, f OccupationFilter) ([]taxonomy.Occupation, error) {
	rows, err := r.db.Query(ctx, `
		SELECT o.uri, o.label, COALESCE(o.description, ''), COALESCE(o.isco_code, '')
		FROM occupations o
		WHERE ($1 = '' OR o.label ILIKE '%' || $1 || '%')
		  AND ($2::text[] IS NULL OR EXISTS (
			SELECT 1 FROM occupation_group_members m
			WHERE m.occupation_uri = o.uri AND m.group_uri = ANY($2)
		  ))
		  AND ($3::text[] IS NULL OR EXISTS (
			SELECT 1 FROM scheme_members sm
			WHERE sm.entity_uri = o.uri AND sm.scheme_uri = ANY($3)
		  ))
		  AND ($4::text[] IS NULL OR EXISTS (
			SELECT 1 FROM requirements req
			WHERE req.occupation_uri = o.uri AND req.skill_uri = ANY($4)
		  ))
		ORDER BY lower(o.label), o.uri
		LIMIT $5 OFFSET $6`,
		f.Query, nilIfEmpty(f.GroupURIs), nilIfEmpty(f.SchemeURIs), nilIfEmpty(f.RequiredSkillURIs),
		f.Limit, f.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]taxonomy.Occupation, 0)
	for rows.Next() {
		var o taxonomy.Occupation
		if err := rows.Scan(&o.URI, &o.Label, &o.Description, &o.ISCOCode); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *PostgresOccupationRepository) ListVectors(ctx context.Context) ([]OccupationVector, error) {
	rows, err := r.db.Query(ctx, `
		SELECT uri, embedding
		FROM occupations
		WHERE embedding IS NOT NULL
		ORDER BY uri`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]OccupationVector, 0)
	for rows.Next() {
		var v OccupationVector
		if err := rows.Scan(&v.URI, &v.Embedding); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func nilIfEmpty(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return s
}
