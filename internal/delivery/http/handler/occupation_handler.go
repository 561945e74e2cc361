package handler

import (
	"errors"
	"strconv"
	"strings"

	"skill-compass/internal/delivery/http/dto"
	"skill-compass/internal/delivery/http/middleware"
	"skill-compass/internal/domain/recommend"
	"skill-compass/internal/pkg/response"
	"skill-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type OccupationHandler struct {
	occupations usecase.OccupationUsecase
	gaps        usecase.SkillGapUsecase
}

func NewOccupationHandler(occupations usecase.OccupationUsecase, gaps usecase.SkillGapUsecase) *OccupationHandler {
	return &OccupationHandler{occupations: occupations, gaps: gaps}
}

func (h *OccupationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/occupations")
	grp.Get("", h.ListOccupations)
	// POST because occupation URIs and possessed skill sets do not fit
	// comfortably in a path or query string.
	grp.Post("/skill-gap", h.GetSkillGap)
}

func (h *OccupationHandler) ListOccupations(c fiber.Ctx) error {
	params := usecase.OccupationListParams{
		Query:             c.Query("q"),
		GroupURIs:         queryList(c, "groups"),
		SchemeURIs:        queryList(c, "schemes"),
		RequiredSkillURIs: queryList(c, "skills"),
		Limit:             parseQueryInt(c, "limit", 0),
		Offset:            parseQueryInt(c, "offset", 0),
	}

	items, err := h.occupations.ListOccupations(c.Context(), params)
	if err != nil {
		return mapTaxonomyError(err)
	}

	out := make([]dto.OccupationItem, 0, len(items))
	for _, o := range items {
		out = append(out, dto.OccupationItem{
			URI:         o.URI,
			Label:       o.Label,
			Description: o.Description,
			ISCOCode:    o.ISCOCode,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *OccupationHandler) GetSkillGap(c fiber.Ctx) error {
	var req dto.SkillGapRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}
	if err := req.Validate(); err != nil {
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, response.MessageUnprocessableEntity, err, err)
	}

	res, err := h.gaps.ResolveGap(c.Context(), req.OccupationURI, req.Skills, usecase.GapOptions{
		EssentialOnly: req.EssentialOnly,
		SkillType:     req.SkillType,
		SchemeURIs:    req.Schemes,
	})
	if err != nil {
		return mapTaxonomyError(err)
	}

	out := dto.SkillGapResponse{
		OccupationURI:   res.OccupationURI,
		OccupationLabel: res.OccupationLabel,
		ISCOCode:        res.ISCOCode,
		EssentialSkills: gapItems(res.EssentialSkills),
		OptionalSkills:  gapItems(res.OptionalSkills),
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func gapItems(skills []recommend.GapSkill) []dto.SkillInGapItem {
	out := make([]dto.SkillInGapItem, 0, len(skills))
	for _, s := range skills {
		out = append(out, dto.SkillInGapItem{
			URI:          s.URI,
			Label:        s.Label,
			SkillType:    string(s.Type),
			RelationType: string(s.Relation),
			Matched:      s.Matched,
		})
	}
	return out
}

func mapTaxonomyError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrOccupationNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Occupation not found", nil, err)
	case errors.Is(err, usecase.ErrLimitOutOfRange):
		return middleware.NewAppError(fiber.StatusBadRequest, "Limit out of range", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	case errors.Is(err, usecase.ErrStoreUnavailable):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, response.MessageServiceUnavailable, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func parseQueryInt(c fiber.Ctx, key string, defaultVal int) int {
	s := c.Query(key)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return v
}

// queryList reads a comma separated query value into a slice.
func queryList(c fiber.Ctx, key string) []string {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
