package handler

import (
	"errors"

	"skill-compass/internal/delivery/http/dto"
	"skill-compass/internal/delivery/http/middleware"
	"skill-compass/internal/domain/recommend"
	"skill-compass/internal/pkg/response"
	"skill-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type RecommendationHandler struct {
	uc usecase.RecommendationUsecase
}

func NewRecommendationHandler(uc usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/recommendations", h.GetRecommendations)
}

func (h *RecommendationHandler) GetRecommendations(c fiber.Ctx) error {
	var req dto.RecommendationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}
	if err := req.Validate(); err != nil {
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, response.MessageUnprocessableEntity, err, err)
	}

	res, err := h.uc.Recommend(c.Context(), usecase.RecommendationParams{
		SkillURIs:  req.Skills,
		GroupURIs:  req.OccupationGroups,
		SchemeURIs: req.Schemes,
		Limit:      req.Limit,
	})
	if err != nil {
		return mapRecommendationError(err)
	}

	out := dto.RecommendationResponse{
		Total:           res.Total,
		UserSkills:      res.ProfileSkills,
		DroppedSkills:   res.DroppedSkills,
		Recommendations: make([]dto.RecommendationItem, 0, len(res.Items)),
	}
	for _, it := range res.Items {
		out.Recommendations = append(out.Recommendations, dto.RecommendationItem{
			URI:             it.URI,
			Label:           it.Label,
			Description:     it.Description,
			ISCOCode:        it.ISCOCode,
			SimilarityScore: it.Similarity,
			MatchPercentage: it.MatchPercentage,
			MatchedSkills:   gapSkillItems(it.MatchedSkills),
			MissingSkills:   gapSkillItems(it.MissingSkills),
			Groups:          it.Groups,
			Schemes:         it.Schemes,
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func gapSkillItems(skills []recommend.GapSkill) []dto.RecommendationSkillItem {
	out := make([]dto.RecommendationSkillItem, 0, len(skills))
	for _, s := range skills {
		out = append(out, dto.RecommendationSkillItem{
			URI:          s.URI,
			Label:        s.Label,
			SkillType:    string(s.Type),
			RelationType: string(s.Relation),
		})
	}
	return out
}

func mapRecommendationError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrEmptyProfile):
		return middleware.NewAppError(fiber.StatusBadRequest, "No resolvable skills in profile", nil, err)
	case errors.Is(err, usecase.ErrLimitOutOfRange):
		return middleware.NewAppError(fiber.StatusBadRequest, "Limit out of range", nil, err)
	case errors.Is(err, usecase.ErrStoreUnavailable):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, response.MessageServiceUnavailable, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
