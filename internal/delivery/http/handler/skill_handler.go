package handler

import (
	"skill-compass/internal/delivery/http/dto"
	"skill-compass/internal/pkg/response"
	"skill-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SkillHandler struct {
	uc usecase.SkillUsecase
}

func NewSkillHandler(uc usecase.SkillUsecase) *SkillHandler {
	return &SkillHandler{uc: uc}
}

func (h *SkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/skills", h.SearchSkills)
}

func (h *SkillHandler) SearchSkills(c fiber.Ctx) error {
	params := usecase.SkillSearchParams{
		Query:      c.Query("q"),
		SkillType:  c.Query("skill_type"),
		GroupURIs:  queryList(c, "groups"),
		SchemeURIs: queryList(c, "schemes"),
		Limit:      parseQueryInt(c, "limit", 0),
		Offset:     parseQueryInt(c, "offset", 0),
	}

	items, err := h.uc.SearchSkills(c.Context(), params)
	if err != nil {
		return mapTaxonomyError(err)
	}

	out := make([]dto.SkillItem, 0, len(items))
	for _, s := range items {
		out = append(out, dto.SkillItem{
			URI:         s.URI,
			Label:       s.Label,
			Description: s.Description,
			SkillType:   string(s.Type),
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
