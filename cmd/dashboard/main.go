package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "go-sales-dashboard/docs"
	"go-sales-dashboard/internal/api"
	"go-sales-dashboard/internal/api/handler"
	"go-sales-dashboard/internal/chart"
	"go-sales-dashboard/internal/config"
	"go-sales-dashboard/internal/logging"
	"go-sales-dashboard/internal/store"
	"go-sales-dashboard/pkg/router"
)

// @title Sales Dashboard API
// @version 1.0
// @description Aggregates and charts over an in-memory sales dataset.
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to load configuration")
	}

	level := cfg.Logging.Level
	if cfg.Server.Debug && level == "info" {
		level = "debug"
	}
	logging.Init(logging.Config{Level: level, Format: cfg.Logging.Format, Output: os.Stdout})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load dataset once; the process is useless without it
	data, err := store.Load(ctx, cfg.Dataset.Path)
	if err != nil {
		logging.Fatal().Err(err).Str("path", cfg.Dataset.Path).Msg("failed to load dataset")
	}

	renderer, err := chart.NewRenderer(cfg.Charts.Dir, cfg.Charts.Width, cfg.Charts.Height)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to prepare graph directory")
	}

	// Create router
	r := router.New()

	// Register API routes
	api.RegisterRoutes(r, handler.New(data, renderer), cfg.Charts.StaticDir)

	// Start server
	err = r.Start(ctx, router.ServerOptions{
		Addr:            cfg.Server.Addr,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("server stopped")
	}
	logging.Info().Msg("server stopped")
}
