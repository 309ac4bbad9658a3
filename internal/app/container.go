package app

import (
	"context"
	"errors"
	"log"
	"time"

	"breneo/internal/config"
	"breneo/internal/database"
	"breneo/internal/database/migration"
	dbpostgres "breneo/internal/database/postgres"
	"breneo/internal/infrastructure/cache"
	"breneo/internal/pkg/jwt"
	"breneo/internal/pkg/kvstore"
	"breneo/internal/ws"
	"breneo/migrations"
)

// Container owns the process-wide resources and closes them in reverse
// order of creation.
type Container struct {
	Config config.Config
	Logger *log.Logger
	DB     database.DB
	Cache  *cache.Redis
	Store  kvstore.Store
	Hub    *ws.Hub
	JWT    *jwt.HMACService

	hubStop chan struct{}
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}
	if !cfg.Database.Configured() {
		return nil, errors.New("database not configured: set DB_HOST, DB_NAME and DB_USER")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database, logger)
	if err != nil {
		return nil, err
	}

	mr := migration.Runner{Dir: cfg.App.MigrationsDir, FS: migrations.FS, Logger: logger}
	if _, err := mr.Run(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	redis := cache.NewRedis(cfg.Redis, logger)

	var store kvstore.Store = redis
	if !redis.Available() {
		// dedupe markers then only live as long as the process; the unique
		// notification row still prevents duplicates across restarts
		logger.Printf("Container | redis unavailable, using in-memory key-value store")
		store = kvstore.NewMemory()
	}

	hub := ws.NewHub(logger)
	stop := make(chan struct{})
	go hub.Run(stop)

	return &Container{
		Config:  cfg,
		Logger:  logger,
		DB:      db,
		Cache:   redis,
		Store:   store,
		Hub:     hub,
		JWT:     jwt.NewHMACService(cfg.JWT.AccessSecret, cfg.JWT.RefreshSecret, cfg.JWT.AccessExpiresIn, cfg.JWT.RefreshExpiresIn),
		hubStop: stop,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.hubStop != nil {
		close(c.hubStop)
		c.hubStop = nil
	}
	var firstErr error
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			firstErr = err
		}
	}
	if c.DB != nil {
		if err := c.DB.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
