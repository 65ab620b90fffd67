package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/porcentagem/api-gateway/internal/config"
	"github.com/porcentagem/api-gateway/internal/platform/belvo"
	"github.com/porcentagem/api-gateway/internal/platform/core"
	"github.com/porcentagem/api-gateway/internal/platform/identity"
	"github.com/porcentagem/api-gateway/internal/platform/metrics"
	"github.com/porcentagem/api-gateway/internal/platform/telemetry"
	"github.com/porcentagem/api-gateway/internal/platform/upstream"
	"github.com/porcentagem/api-gateway/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

// serviceTokenAudience is the audience claim of tokens minted for the provider.
const serviceTokenAudience = "belvo"

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	metrics  *metrics.Recorder
	gatherer prometheus.Gatherer

	bankLinkService service.BankLinkService
	tokenService    service.TokenService
	categoryService service.CategoryService

	shutdownTelemetry telemetry.ShutdownFunc
}

// newApplication builds one upstream client per backend and the services on
// top of them. Collectors are registered with reg and served from gatherer.
func newApplication(
	cfg *config.Config,
	logger *slog.Logger,
	reg prometheus.Registerer,
	gatherer prometheus.Gatherer,
) (*application, error) {
	app := &application{
		config:   cfg,
		logger:   logger,
		metrics:  metrics.New(reg),
		gatherer: gatherer,
	}

	identityClient, err := app.newBackendClient("identity", cfg.Backends.Identity.URL, nil, upstream.NotFoundAsError)
	if err != nil {
		return nil, err
	}

	// The user lookup treats a 404 as "no such user".
	coreClient, err := app.newBackendClient("core", cfg.Backends.Core.URL, nil, upstream.NotFoundAsAbsent)
	if err != nil {
		return nil, err
	}

	belvoCredentials, err := providerCredentials(cfg)
	if err != nil {
		return nil, err
	}
	belvoClient, err := app.newBackendClient("belvo", cfg.Backends.Belvo.URL, belvoCredentials, upstream.NotFoundAsError)
	if err != nil {
		return nil, err
	}

	coreBackend := core.New(coreClient)

	app.bankLinkService, err = service.NewBankLinkService(coreBackend, belvo.New(belvoClient), app.metrics, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create bank link service: %w", err)
	}

	app.tokenService, err = service.NewTokenService(identity.New(identityClient), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}

	app.categoryService, err = service.NewCategoryService(coreBackend, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create category service: %w", err)
	}

	logger.Info("Application initialized successfully",
		slog.String("identity_url", cfg.Backends.Identity.URL),
		slog.String("core_url", cfg.Backends.Core.URL),
		slog.String("belvo_url", cfg.Backends.Belvo.URL),
		slog.String("belvo_credentials", fmt.Sprintf("%T", belvoCredentials)))

	return app, nil
}

func (app *application) newBackendClient(
	name, baseURL string,
	credentials upstream.Credentials,
	notFound upstream.NotFoundPolicy,
) (*upstream.Client, error) {
	client, err := upstream.New(upstream.Config{
		Name:        name,
		BaseURL:     baseURL,
		Credentials: credentials,
		NotFound:    notFound,
		Timeout:     app.config.Backends.Timeout,
		Metrics:     app.metrics,
		Logger:      app.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", name, err)
	}
	return client, nil
}

// providerCredentials picks the provider credential strategy: a signed
// service token when a secret is configured, otherwise the static API token.
func providerCredentials(cfg *config.Config) (upstream.Credentials, error) {
	belvoCfg := cfg.Backends.Belvo
	if belvoCfg.ServiceSecret != "" {
		token, err := upstream.NewServiceToken(belvoCfg.ServiceSecret, cfg.Telemetry.ServiceName, serviceTokenAudience, 0)
		if err != nil {
			return nil, fmt.Errorf("failed to create provider service token: %w", err)
		}
		return token, nil
	}
	if belvoCfg.APIToken != "" {
		return upstream.BearerToken(belvoCfg.APIToken), nil
	}
	return upstream.NoCredentials{}, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.shutdownTelemetry != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.shutdownTelemetry(ctx); err != nil {
			app.logger.Error("Error shutting down telemetry", slog.String("error", err.Error()))
		}
	}

	app.logger.Info("Application shutdown completed")
}
