package repository

import (
	"context"

	"skill-compass/internal/database"
	"skill-compass/internal/domain/taxonomy"
)

// RequirementFilter narrows a requirement traversal. EssentialOnly skips the
// optional edges at the query level rather than discarding them afterwards.
type RequirementFilter struct {
	EssentialOnly bool
	SkillType     string
	SchemeURIs    []string
}

type RequirementRepository interface {
	FindByOccupation(ctx context.Context, occupationURI string, f RequirementFilter) ([]taxonomy.RequiredSkill, error)
}

type PostgresRequirementRepository struct {
	db database.DB
}

func NewPostgresRequirementRepository(db database.DB) *PostgresRequirementRepository {
	return &PostgresRequirementRepository{db: db}
}

func (r *PostgresRequirementRepository) FindByOccupation(ctx context.Context, occupationURI string, f RequirementFilter) ([]taxonomy.RequiredSkill, error) {
	rows, err := r.db.Query(ctx, `
		SELECT s.uri, s.label, s.skill_type, req.relation
		FROM requirements req
		JOIN skills s ON s.uri = req.skill_uri
		WHERE req.occupation_uri = $1
		  AND ($2::boolean = false OR req.relation = 'essential')
		  AND ($3 = '' OR s.skill_type = $3)
		  AND ($4::text[] IS NULL OR EXISTS (
			SELECT 1 FROM scheme_members sm
			WHERE sm.entity_uri = s.uri AND sm.scheme_uri = ANY($4)
		  ))
		ORDER BY lower(s.label), s.uri, req.relation`,
		occupationURI, f.EssentialOnly, f.SkillType, nilIfEmpty(f.SchemeURIs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]taxonomy.RequiredSkill, 0)
	for rows.Next() {
		var rs taxonomy.RequiredSkill
		if err := rows.Scan(&rs.URI, &rs.Label, &rs.Type, &rs.Relation); err != nil {
			return nil, err
		}
		out = append(out, rs)
	}
	return out, rows.Err()
}
