package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/cesargomez89/saavnsource/internal/app"
	"github.com/cesargomez89/saavnsource/internal/config"
	"github.com/cesargomez89/saavnsource/internal/logger"
)

func main() {
	cfg := config.Load()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	appLogger := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	if !cfg.Enabled {
		appLogger.Warn("JioSaavn source is disabled, no identifier will match and search and stream return nothing")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a := app.New(cfg, appLogger)
	appLogger.Info("Starting", "api_base_url", cfg.APIBaseURL, "quality", cfg.Quality, "max_search_results", cfg.MaxSearchResults)

	if err := a.Serve(ctx); err != nil {
		appLogger.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}
