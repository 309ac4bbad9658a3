package routes

import (
	"breneo/internal/delivery/http/handler"
	"breneo/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

// Handlers groups everything the router mounts. A nil handler leaves its
// routes unregistered.
type Handlers struct {
	Health            *handler.HealthHandler
	Auth              *handler.AuthHandler
	Match             *handler.MatchHandler
	JobMatch          *handler.JobMatchHandler
	JobRecommendation *handler.JobRecommendationHandler
	Jobs              *handler.JobsHandler
	User              *handler.UserHandler
	Notification      *handler.NotificationHandler
	Academy           *handler.AcademyHandler
	WS                fiber.Handler
}

type Registry struct {
	h    Handlers
	auth *middleware.AuthMiddleware
}

func NewRegistry(h Handlers, auth *middleware.AuthMiddleware) *Registry {
	return &Registry{h: h, auth: auth}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerAPI(app)
	r.registerWS(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	if r.h.Health != nil {
		r.h.Health.RegisterRoutes(app)
	}
}

func (r *Registry) registerAPI(app *fiber.App) {
	v1 := app.Group("/api").Group("/v1")

	if r.h.Auth != nil {
		r.h.Auth.RegisterRoutes(v1.Group("/auth"))
	}
	if r.h.Match != nil {
		r.h.Match.RegisterRoutes(v1)
	}
	if r.auth == nil {
		return
	}
	protected := v1.Group("", r.auth.Middleware())

	if r.h.JobRecommendation != nil {
		r.h.JobRecommendation.RegisterRoutes(protected)
	}
	if r.h.JobMatch != nil {
		r.h.JobMatch.RegisterRoutes(protected)
	}
	if r.h.Jobs != nil {
		r.h.Jobs.RegisterRoutes(protected)
	}
	if r.h.User != nil {
		r.h.User.RegisterRoutes(protected.Group("/users"))
	}
	if r.h.Notification != nil {
		r.h.Notification.RegisterRoutes(protected)
	}
	if r.h.Academy != nil {
		r.h.Academy.RegisterRoutes(protected)
	}
}

func (r *Registry) registerWS(app *fiber.App) {
	if r.h.WS == nil || r.auth == nil {
		return
	}
	app.Get("/ws/notifications", r.auth.QueryTokenMiddleware(), r.h.WS)
}
