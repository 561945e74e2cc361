package handler

import (
	"context"
	"time"

	"skill-compass/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// Pinger is anything with a health probe; the database satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) RegisterRoutes(app *fiber.App) {
	if app == nil {
		return
	}
	app.Get("/health", h.GetHealth)
}

func (h *HealthHandler) GetHealth(c fiber.Ctx) error {
	status := map[string]string{"database": "ok"}

	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			status["database"] = "unavailable"
			return response.Error(c, fiber.StatusServiceUnavailable, response.MessageServiceUnavailable, status)
		}
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, status)
}
