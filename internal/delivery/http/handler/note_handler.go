package handler

import (
	"errors"

	"skill-compass/internal/delivery/http/dto"
	"skill-compass/internal/delivery/http/middleware"
	"skill-compass/internal/domain/taxonomy"
	"skill-compass/internal/pkg/response"
	"skill-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type NoteHandler struct {
	uc usecase.NoteUsecase
}

func NewNoteHandler(uc usecase.NoteUsecase) *NoteHandler {
	return &NoteHandler{uc: uc}
}

// RegisterRoutes mounts the read route on r and the mutating routes on
// protected, which carries the bearer-auth middleware.
func (h *NoteHandler) RegisterRoutes(r, protected fiber.Router) {
	if r != nil {
		r.Get("/notes", h.ListNotes)
	}
	if protected != nil {
		protected.Put("/notes", h.UpsertNote)
		protected.Delete("/notes/:note_id", h.DeleteNote)
	}
}

func (h *NoteHandler) ListNotes(c fiber.Ctx) error {
	items, total, err := h.uc.ListNotes(c.Context(),
		c.Query("occupation_uri"),
		parseQueryInt(c, "limit", 0),
		parseQueryInt(c, "offset", 0),
	)
	if err != nil {
		return mapNoteError(err)
	}

	out := dto.NoteListResponse{Total: total, Notes: make([]dto.NoteItem, 0, len(items))}
	for _, n := range items {
		out.Notes = append(out.Notes, noteItem(n))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *NoteHandler) UpsertNote(c fiber.Ctx) error {
	var req dto.NoteUpsertRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}
	if err := req.Validate(); err != nil {
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, response.MessageUnprocessableEntity, err, err)
	}

	id := uuid.Nil
	if req.NoteID != "" {
		parsed, err := uuid.Parse(req.NoteID)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid note id", nil, err)
		}
		id = parsed
	}

	note, err := h.uc.UpsertNote(c.Context(), req.OccupationURI, id, req.Body)
	if err != nil {
		return mapNoteError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, noteItem(note))
}

func (h *NoteHandler) DeleteNote(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("note_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid note id", nil, err)
	}

	if err := h.uc.DeleteNote(c.Context(), c.Query("occupation_uri"), id); err != nil {
		return mapNoteError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func noteItem(n taxonomy.Note) dto.NoteItem {
	return dto.NoteItem{
		ID:            n.ID.String(),
		OccupationURI: n.OccupationURI,
		Body:          n.Body,
		CreatedAt:     n.CreatedAt,
		UpdatedAt:     n.UpdatedAt,
	}
}

func mapNoteError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrNoteNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Note not found", nil, err)
	case errors.Is(err, usecase.ErrOccupationNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Occupation not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	case errors.Is(err, usecase.ErrLimitOutOfRange):
		return middleware.NewAppError(fiber.StatusBadRequest, "Limit out of range", nil, err)
	case errors.Is(err, usecase.ErrStoreUnavailable):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, response.MessageServiceUnavailable, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
