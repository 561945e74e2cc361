package app

import (
	"fmt"
	"log"
	"strings"

	"skill-compass/internal/config"
	"skill-compass/internal/delivery/http/middleware"
	"skill-compass/internal/delivery/http/routes"
	v1 "skill-compass/internal/delivery/http/routes/v1"
	"skill-compass/internal/repository"
	"skill-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
}

func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})
	registerGlobalMiddleware(f, c)
	routes.NewRegistry(c.DB, buildDeps(c)).Register(f)

	return &App{Fiber: f}, c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	app.Use(middleware.NewErrorMiddleware().Middleware())
	app.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
}

func buildDeps(c *Container) v1.Deps {
	occupationRepo := repository.NewPostgresOccupationRepository(c.DB)
	skillRepo := repository.NewPostgresSkillRepository(c.DB)
	requirementRepo := repository.NewPostgresRequirementRepository(c.DB)
	catalogRepo := repository.NewPostgresCatalogRepository(c.DB)
	noteRepo := repository.NewPostgresNoteRepository(c.DB)

	gapUC := usecase.NewSkillGapUsecase(occupationRepo, requirementRepo)

	var responseCache usecase.ResponseCache
	if c.Cache != nil && c.Cache.Available() {
		responseCache = c.Cache
	}

	return v1.Deps{
		Auth: c.Config.Auth,
		Recommendations: usecase.NewRecommendationUsecase(
			skillRepo, occupationRepo, gapUC, c.Index, responseCache, c.Config.Engine,
		),
		Occupations: usecase.NewOccupationUsecase(occupationRepo),
		Gaps:        gapUC,
		Skills:      usecase.NewSkillUsecase(skillRepo),
		Catalog:     usecase.NewCatalogUsecase(catalogRepo),
		Notes:       usecase.NewNoteUsecase(noteRepo, occupationRepo),
		Diagnostics: usecase.NewDiagnosticsUsecase(catalogRepo, c.Index, c.Cache),
	}
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
