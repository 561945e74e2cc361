package v1

import (
	"skill-compass/internal/config"
	"skill-compass/internal/delivery/http/handler"
	"skill-compass/internal/delivery/http/middleware"
	"skill-compass/internal/pkg/token"
	"skill-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// Deps carries the usecases the v1 surface is built from.
type Deps struct {
	Auth            config.AuthConfig
	Recommendations usecase.RecommendationUsecase
	Occupations     usecase.OccupationUsecase
	Gaps            usecase.SkillGapUsecase
	Skills          usecase.SkillUsecase
	Catalog         usecase.CatalogUsecase
	Notes           usecase.NoteUsecase
	Diagnostics     usecase.DiagnosticsUsecase
}

func Register(r fiber.Router, deps Deps) {
	if r == nil {
		return
	}

	handler.NewRecommendationHandler(deps.Recommendations).RegisterRoutes(r)
	handler.NewOccupationHandler(deps.Occupations, deps.Gaps).RegisterRoutes(r)
	handler.NewSkillHandler(deps.Skills).RegisterRoutes(r)
	handler.NewCatalogHandler(deps.Catalog).RegisterRoutes(r)
	handler.NewDiagnosticsHandler(deps.Diagnostics).RegisterRoutes(r)

	// Note mutations sit behind bearer auth when a signing secret is
	// configured; reads stay open like the rest of the taxonomy surface.
	protected := r
	if deps.Auth.TokenSecret != "" {
		tokenSvc := token.NewHMACService(deps.Auth.TokenSecret, deps.Auth.TokenLifetime)
		protected = r.Group("", middleware.NewAuthMiddleware(tokenSvc).Middleware())
	}
	handler.NewNoteHandler(deps.Notes).RegisterRoutes(r, protected)
}
