package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"breneo/internal/app"
	"breneo/internal/config"
)

const shutdownGrace = 10 * time.Second

func main() {
	logger := log.New(os.Stdout, "", log.LstdFlags)
	if err := run(logger); err != nil {
		logger.Fatalf("Server | exited | error=%v", err)
	}
}

func run(logger *log.Logger) (err error) {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	addr, err := app.ListenAddr(cfg.App.HTTPPort)
	if err != nil {
		return err
	}

	srv, cleanup, err := app.Bootstrap(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, cleanup())
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	listenErr := make(chan error, 1)
	go func() {
		listenErr <- srv.Fiber.Listen(addr)
	}()

	select {
	case err := <-listenErr:
		return err
	case <-ctx.Done():
	}

	logger.Printf("Server | shutting down | grace=%s", shutdownGrace)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	return srv.Fiber.ShutdownWithContext(shutdownCtx)
}
