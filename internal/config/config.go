package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server    ServerConfig    `mapstructure:"server" validate:"required"`
	Backends  BackendsConfig  `mapstructure:"backends" validate:"required"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// CORSAllowedOrigins lists the origins allowed by the CORS middleware.
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// BackendsConfig groups the three upstream services the gateway fronts.
// Every base URL is mandatory: the gateway refuses to start without them.
type BackendsConfig struct {
	Identity BackendConfig `mapstructure:"identity" validate:"required"`
	Core     BackendConfig `mapstructure:"core" validate:"required"`
	Belvo    BelvoConfig   `mapstructure:"belvo" validate:"required"`
	// Timeout is the fixed transport timeout applied to every outbound call.
	Timeout time.Duration `mapstructure:"timeout" validate:"required,gt=0"`
}

// BackendConfig contains the settings shared by every upstream backend.
type BackendConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

// BelvoConfig contains the bank-aggregation provider settings.
// APIToken and ServiceSecret are optional and mutually exclusive credential
// strategies; when both are empty no credentials are injected.
type BelvoConfig struct {
	URL           string `mapstructure:"url" validate:"required,url"`
	APIToken      string `mapstructure:"api_token" validate:"excluded_with=ServiceSecret"`
	ServiceSecret string `mapstructure:"service_secret" validate:"omitempty,min=32"`
}

// TelemetryConfig controls tracing export. An empty OTLPEndpoint disables export.
type TelemetryConfig struct {
	ServiceName  string `mapstructure:"service_name" validate:"required"`
	Environment  string `mapstructure:"environment"`
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`
}
