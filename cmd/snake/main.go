// Package main is the entry point for the snake stage game.
package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/snakestage/internal/game"
	"github.com/samdwyer/snakestage/internal/gamedata"
	"github.com/samdwyer/snakestage/internal/telemetry"
	"github.com/samdwyer/snakestage/internal/ui"
)

func main() {
	// Load .env file for local development
	// This makes HONEYCOMB_SNAKE_API_KEY and the SNAKE_* settings available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := game.ConfigFromEnv()
	if err != nil {
		log.Printf("Warning: using defaults for invalid settings: %v", err)
	}

	catalog, err := gamedata.LoadCatalog(cfg.StageDir)
	if err != nil {
		log.Fatalf("Failed to load stages: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tracer, shutdown := setupTelemetry(ctx, catalog.Count())
	defer shutdown()

	logger, closeLog, err := openLog(cfg.LogFile)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer closeLog()

	screen, err := ui.NewScreen()
	if err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}

	g := game.New(screen, catalog, cfg, tracer, logger)
	err = g.Run(ctx)
	screen.Close()
	if err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

// setupTelemetry exports traces to Honeycomb when an API key is configured
// and returns the game's tracer with a function flushing the exporter.
// Without a key, or if setup fails, the game runs with a no-op tracer.
func setupTelemetry(ctx context.Context, stages int) (trace.Tracer, func()) {
	apiKey := os.Getenv(telemetry.EnvAPIKey)
	if apiKey == "" {
		return telemetry.NoopTracer(), func() {}
	}

	// Always set headers from our API key - the .env file may have an unexpanded
	// variable reference that doesn't work, so we construct it properly here
	for k, v := range telemetry.ExporterEnv(apiKey, os.Getenv(telemetry.EnvDataset)) {
		os.Setenv(k, v)
	}

	shutdown, err := telemetry.Setup(ctx, attribute.Int("game.stages", stages))
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
		return telemetry.NoopTracer(), func() {}
	}
	return telemetry.Tracer("game"), func() {
		// The run context may already be cancelled by a signal
		if err := shutdown(context.WithoutCancel(ctx)); err != nil {
			log.Printf("Error shutting down telemetry: %v", err)
		}
	}
}

// openLog returns the game logger. Output is discarded when path is empty so
// nothing is written over the terminal UI.
func openLog(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard, "", 0), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return log.New(f, "snake ", log.LstdFlags|log.Lmicroseconds), func() { f.Close() }, nil
}
