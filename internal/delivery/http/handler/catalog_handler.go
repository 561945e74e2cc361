package handler

import (
	"skill-compass/internal/delivery/http/dto"
	"skill-compass/internal/domain/taxonomy"
	"skill-compass/internal/pkg/response"
	"skill-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CatalogHandler struct {
	uc usecase.CatalogUsecase
}

func NewCatalogHandler(uc usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

func (h *CatalogHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/catalog")
	grp.Get("/occupation-groups", h.ListOccupationGroups)
	grp.Get("/skill-groups", h.ListSkillGroups)
	grp.Get("/schemes", h.ListSchemes)
}

func (h *CatalogHandler) ListOccupationGroups(c fiber.Ctx) error {
	items, err := h.uc.ListOccupationGroups(c.Context(), c.Query("q"), parseQueryInt(c, "limit", 0))
	if err != nil {
		return mapTaxonomyError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, groupItems(items))
}

func (h *CatalogHandler) ListSkillGroups(c fiber.Ctx) error {
	items, err := h.uc.ListSkillGroups(c.Context(), c.Query("q"), parseQueryInt(c, "limit", 0))
	if err != nil {
		return mapTaxonomyError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, groupItems(items))
}

func (h *CatalogHandler) ListSchemes(c fiber.Ctx) error {
	items, err := h.uc.ListSchemes(c.Context())
	if err != nil {
		return mapTaxonomyError(err)
	}
	out := make([]dto.SchemeItem, 0, len(items))
	for _, s := range items {
		out = append(out, dto.SchemeItem{URI: s.URI, Label: s.Label})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func groupItems(items []taxonomy.Group) []dto.GroupItem {
	out := make([]dto.GroupItem, 0, len(items))
	for _, g := range items {
		out = append(out, dto.GroupItem{URI: g.URI, Label: g.Label, Code: g.Code})
	}
	return out
}
