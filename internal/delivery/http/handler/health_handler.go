package handler

import (
	"context"
	"time"

	"breneo/internal/database"
	"breneo/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// Pinger is anything the health check can probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db    Pinger
	cache Pinger
}

func NewHealthHandler(db, cache Pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

// Health reports the process as up; dependency states are informational and
// never fail the check.
func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	data := map[string]any{
		"database": probe(ctx, h.db),
		"cache":    probe(ctx, h.cache),
	}
	if sr, ok := h.db.(database.StatsReporter); ok {
		data["database_pool"] = sr.Stats()
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func probe(ctx context.Context, p Pinger) string {
	if p == nil {
		return "disabled"
	}
	if err := p.Ping(ctx); err != nil {
		return "down"
	}
	return "up"
}
