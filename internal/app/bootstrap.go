package app

import (
	"fmt"
	"log"
	"strings"
	"time"

	"breneo/internal/config"
	"breneo/internal/delivery/http/handler"
	"breneo/internal/delivery/http/middleware"
	"breneo/internal/delivery/http/routes"
	"breneo/internal/repository"
	"breneo/internal/usecase"
	"breneo/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// New builds a Fiber app with the global middleware and the given routes.
func New(cfg config.Config, logger *log.Logger, registry *routes.Registry) *fiber.App {
	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	registerGlobalMiddleware(f, logger)
	if registry != nil {
		registry.Register(f)
	}
	return f
}

func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	registry := NewRegistry(c)
	f := New(cfg, c.Logger, registry)

	return &App{Fiber: f, Container: c}, c.Close, nil
}

// NewRegistry wires repositories, usecases and handlers over the container.
func NewRegistry(c *Container) *routes.Registry {
	jobs := repository.NewPostgresJobRepository(c.DB)
	profiles := repository.NewPostgresMatchProfileRepository(c.DB)
	users := repository.NewPostgresUserRepository(c.DB)
	answers := repository.NewPostgresAssessmentRepository(c.DB)
	academies := repository.NewPostgresAcademyRepository(c.DB)
	notifications := repository.NewPostgresNotificationRepository(c.DB)

	authUC := usecase.NewAuthUsecase(users, profiles, c.JWT, c.Logger)
	matchingUC := usecase.NewMatchingUsecase(jobs, profiles, c.Cache, c.Logger)
	recoUC := usecase.NewJobRecommendationUsecase(jobs, profiles, c.Cache, c.Logger)
	profileUC := usecase.NewMatchProfileUsecase(profiles, c.Cache, c.Logger)
	publisher := usecase.NewJobPublisher(jobs, profiles, notifications, c.Store, c.Hub, c.Cache, usecase.NotifyOptions{
		MinScore:    c.Config.Notify.MinScore,
		Concurrency: c.Config.Notify.Concurrency,
	}, c.Logger)

	var cachePinger handler.Pinger
	if c.Cache.Available() {
		cachePinger = c.Cache
	}

	wsHandler := ws.NewHandler(c.Hub, c.Logger,
		ws.WithAllowedOrigins(c.Config.WS.AllowedOrigins...),
		ws.WithMaxConnsPerUser(c.Config.WS.MaxConnsPerUser),
	)

	h := routes.Handlers{
		Health:            handler.NewHealthHandler(c.DB, cachePinger),
		Auth:              handler.NewAuthHandler(authUC),
		Match:             handler.NewMatchHandler(usecase.NewScoringUsecase()),
		JobMatch:          handler.NewJobMatchHandler(matchingUC),
		JobRecommendation: handler.NewJobRecommendationHandler(recoUC),
		Jobs:              handler.NewJobsHandler(publisher),
		User:              handler.NewUserHandler(usecase.NewUserUsecase(users, profiles), profileUC, usecase.NewAssessmentUsecase(answers)),
		Notification:      handler.NewNotificationHandler(usecase.NewNotificationUsecase(notifications)),
		Academy:           handler.NewAcademyHandler(usecase.NewAcademyUsecase(academies)),
		WS:                wsHandler.HandleNotificationsWS,
	}
	return routes.NewRegistry(h, middleware.NewAuthMiddleware(c.JWT))
}

func registerGlobalMiddleware(app *fiber.App, logger *log.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(logger,
		middleware.WithSkipPaths("/health"),
		middleware.WithSlowThreshold(time.Second),
	).Middleware())
	app.Use(middleware.NewErrorMiddleware(logger).Middleware())
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
