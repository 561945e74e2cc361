package handler

import (
	"skill-compass/internal/delivery/http/dto"
	"skill-compass/internal/pkg/response"
	"skill-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type DiagnosticsHandler struct {
	uc usecase.DiagnosticsUsecase
}

func NewDiagnosticsHandler(uc usecase.DiagnosticsUsecase) *DiagnosticsHandler {
	return &DiagnosticsHandler{uc: uc}
}

func (h *DiagnosticsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/diagnostics", h.GetDiagnostics)
}

func (h *DiagnosticsHandler) GetDiagnostics(c fiber.Ctx) error {
	snap, err := h.uc.Snapshot(c.Context())
	if err != nil {
		return mapTaxonomyError(err)
	}

	out := dto.DiagnosticsResponse{
		Occupations:    snap.Occupations,
		Skills:         snap.Skills,
		Requirements:   snap.Requirements,
		IndexSize:      snap.IndexSize,
		IndexDimension: snap.IndexDimension,
		CacheAvailable: snap.CacheAvailable,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
