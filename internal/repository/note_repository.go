package repository

import (
	"context"

	"skill-compass/internal/database"
	"skill-compass/internal/domain/taxonomy"

	"github.com/google/uuid"
)

type NoteRepository interface {
	// List returns notes newest-first, optionally restricted to one
	// occupation, along with the total count before pagination.
	List(ctx context.Context, occupationURI string, limit, offset int) ([]taxonomy.Note, int, error)
	Upsert(ctx context.Context, note taxonomy.Note) (taxonomy.Note, error)
	Delete(ctx context.Context, occupationURI string, id uuid.UUID) (bool, error)
}

type PostgresNoteRepository struct {
	db database.DB
}

func NewPostgresNoteRepository(db database.DB) *PostgresNoteRepository {
	return &PostgresNoteRepository{db: db}
}

func (r *PostgresNoteRepository) List(ctx context.Context, occupationURI string, limit, offset int) ([]taxonomy.Note, int, error) {
	var total int
	err := r.db.QueryRow(ctx, `
		SELECT count(*) FROM notes
		WHERE $1 = '' OR occupation_uri = $1`, occupationURI).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, occupation_uri, body, created_at, updated_at
		FROM notes
		WHERE $1 = '' OR occupation_uri = $1
		ORDER BY updated_at DESC, id
		LIMIT $2 OFFSET $3`, occupationURI, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]taxonomy.Note, 0)
	for rows.Next() {
		var n taxonomy.Note
		if err := rows.Scan(&n.ID, &n.OccupationURI, &n.Body, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, 0, err
		}
		out = append(out, n)
	}
	return out, total, rows.Err()
}

func (r *PostgresNoteRepository) Upsert(ctx context.Context, note taxonomy.Note) (taxonomy.Note, error) {
	err := r.db.QueryRow(ctx, `
		INSERT INTO notes (id, occupation_uri, body)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE
			SET body = EXCLUDED.body, updated_at = now()
		RETURNING id, occupation_uri, body, created_at, updated_at`,
		note.ID, note.OccupationURI, note.Body).
		Scan(&note.ID, &note.OccupationURI, &note.Body, &note.CreatedAt, &note.UpdatedAt)
	if err != nil {
		return taxonomy.Note{}, err
	}
	return note, nil
}

func (r *PostgresNoteRepository) Delete(ctx context.Context, occupationURI string, id uuid.UUID) (bool, error) {
	affected, err := r.db.Exec(ctx, `
		DELETE FROM notes
		WHERE id = $1 AND occupation_uri = $2`, id, occupationURI)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
