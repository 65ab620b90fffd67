package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// envBindings maps configuration keys to the environment variables the
// gateway has always been deployed with.
var envBindings = map[string]string{
	"server.port":                   "PORT",
	"server.log_level":              "LOG_LEVEL",
	"server.cors_allowed_origins":   "CORS_ALLOWED_ORIGINS",
	"backends.identity.url":         "AUTH_API_URL",
	"backends.core.url":             "CORE_API_URL",
	"backends.belvo.url":            "BELVO_API_URL",
	"backends.belvo.api_token":      "BELVO_API_TOKEN",
	"backends.belvo.service_secret": "BELVO_SERVICE_SECRET",
	"backends.timeout":              "BACKEND_TIMEOUT",
	"telemetry.service_name":        "OTEL_SERVICE_NAME",
	"telemetry.environment":         "APP_ENV",
	"telemetry.otlp_endpoint":       "OTEL_EXPORTER_OTLP_ENDPOINT",
}

// Load configuration from environment variables and optionally a config file.
// Environment variables take precedence over values from the config file.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s to %s: %w", key, env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// A comma separated env value arrives as a single element.
	cfg.Server.CORSAllowedOrigins = splitList(cfg.Server.CORSAllowedOrigins)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 3010)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.cors_allowed_origins", []string{"*"})
	v.SetDefault("backends.timeout", "30s")
	v.SetDefault("telemetry.service_name", "api-gateway")
	v.SetDefault("telemetry.environment", "development")
}

func splitList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
