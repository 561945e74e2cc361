package usecase

import (
	"context"
	"strings"

	"skill-compass/internal/domain/taxonomy"
	"skill-compass/internal/repository"

	"github.com/google/uuid"
)

type NoteUsecase interface {
	ListNotes(ctx context.Context, occupationURI string, limit, offset int) ([]taxonomy.Note, int, error)
	UpsertNote(ctx context.Context, occupationURI string, id uuid.UUID, body string) (taxonomy.Note, error)
	DeleteNote(ctx context.Context, occupationURI string, id uuid.UUID) error
}

type Note struct {
	notes       repository.NoteRepository
	occupations repository.OccupationRepository
}

func NewNoteUsecase(notes repository.NoteRepository, occupations repository.OccupationRepository) *Note {
	return &Note{notes: notes, occupations: occupations}
}

func (u *Note) ListNotes(ctx context.Context, occupationURI string, limit, offset int) ([]taxonomy.Note, int, error) {
	limit, offset, err := normalizePage(limit, offset)
	if err != nil {
		return nil, 0, err
	}
	items, total, err := u.notes.List(ctx, occupationURI, limit, offset)
	if err != nil {
		return nil, 0, classifyStoreErr(err)
	}
	return items, total, nil
}

func (u *Note) UpsertNote(ctx context.Context, occupationURI string, id uuid.UUID, body string) (taxonomy.Note, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return taxonomy.Note{}, ErrInvalidInput
	}

	occ, err := u.occupations.FindByURI(ctx, occupationURI)
	if err != nil {
		return taxonomy.Note{}, classifyStoreErr(err)
	}
	if occ == nil {
		return taxonomy.Note{}, ErrOccupationNotFound
	}

	if id == uuid.Nil {
		id = uuid.New()
	}
	note, err := u.notes.Upsert(ctx, taxonomy.Note{ID: id, OccupationURI: occupationURI, Body: body})
	if err != nil {
		return taxonomy.Note{}, classifyStoreErr(err)
	}
	return note, nil
}

func (u *Note) DeleteNote(ctx context.Context, occupationURI string, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrNoteNotFound
	}
	deleted, err := u.notes.Delete(ctx, occupationURI, id)
	if err != nil {
		return classifyStoreErr(err)
	}
	if !deleted {
		return ErrNoteNotFound
	}
	return nil
}
