// Package main implements the entry point for the API gateway, which fronts
// the identity, core and bank-aggregation backends behind one HTTP surface.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/porcentagem/api-gateway/internal/config"
	"github.com/porcentagem/api-gateway/internal/platform/logger"
	"github.com/porcentagem/api-gateway/internal/platform/telemetry"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger := logger.Setup(logger.Config{Level: cfg.Server.LogLevel})
	appLogger.Info("Server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.Duration("backend_timeout", cfg.Backends.Timeout))

	if err := run(ctx, cfg, appLogger); err != nil {
		appLogger.Error("Server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// run wires telemetry and the application, then serves until shutdown.
func run(ctx context.Context, cfg *config.Config, appLogger *slog.Logger) error {
	shutdownTelemetry, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:  cfg.Telemetry.ServiceName,
		Environment:  cfg.Telemetry.Environment,
		OTLPEndpoint: cfg.Telemetry.OTLPEndpoint,
	}, appLogger)
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}

	app, err := newApplication(cfg, appLogger, prometheus.DefaultRegisterer, prometheus.DefaultGatherer)
	if err != nil {
		_ = shutdownTelemetry(ctx)
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	app.shutdownTelemetry = shutdownTelemetry

	return app.Run(ctx)
}
