package repository

import (
	"context"

	"skill-compass/internal/database"
	"skill-compass/internal/domain/taxonomy"
)

// SkillEmbedding pairs a resolved skill URI with its stored vector.
type SkillEmbedding struct {
	URI       string
	Embedding []float32
}

type SkillFilter struct {
	Query      string
	SkillType  string
	GroupURIs  []string
	SchemeURIs []string
	Limit      int
	Offset     int
}

type SkillRepository interface {
	// FindEmbeddings resolves the given URIs to stored embeddings. URIs that
	// are unknown or lack a vector are silently absent from the result.
	FindEmbeddings(ctx context.Context, uris []string) ([]SkillEmbedding, error)
	Search(ctx context.Context, f SkillFilter) ([]taxonomy.Skill, error)
}

type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

func (r *PostgresSkillRepository) FindEmbeddings(ctx context.Context, uris []string) ([]SkillEmbedding, error) {
	if len(uris) == 0 {
		return nil, nil
	}
	rows, err := r.db.Query(ctx, `
		SELECT uri, embedding
		FROM skills
		WHERE uri = ANY($1) AND embedding IS NOT NULL
		ORDER BY uri`, uris)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]SkillEmbedding, 0, len(uris))
	for rows.Next() {
		var e SkillEmbedding
		if err := rows.Scan(&e.URI, &e.Embedding); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *PostgresSkillRepository) Search(ctx context.Context, f SkillFilter) ([]taxonomy.Skill, error) {
	rows, err := r.db.Query(ctx, `
		SELECT s.uri, s.label, COALESCE(s.description, ''), s.skill_type
		FROM skills s
		WHERE ($1 = '' OR s.label ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR s.skill_type = $2)
		  AND ($3::text[] IS NULL OR EXISTS (
			SELECT 1 FROM skill_group_members m
			WHERE m.skill_uri = s.uri AND m.group_uri = ANY($3)
		  ))
		  AND ($4::text[] IS NULL OR EXISTS (
			SELECT 1 FROM scheme_members sm
			WHERE sm.entity_uri = s.uri AND sm.scheme_uri = ANY($4)
		  ))
		ORDER BY lower(s.label), s.uri
		LIMIT $5 OFFSET $6`,
		f.Query, f.SkillType, nilIfEmpty(f.GroupURIs), nilIfEmpty(f.SchemeURIs),
		f.Limit, f.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]taxonomy.Skill, 0)
	for rows.Next() {
		var s taxonomy.Skill
		if err := rows.Scan(&s.URI, &s.Label, &s.Description, &s.Type); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
