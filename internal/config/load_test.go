package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv sets the given environment variables for the duration of the test.
func setupEnv(t *testing.T, envVars map[string]string) {
	t.Helper()
	for name, value := range envVars {
		t.Setenv(name, value)
	}
}

func requiredBackends() map[string]string {
	return map[string]string{
		"AUTH_API_URL":  "http://localhost:3001",
		"CORE_API_URL":  "http://localhost:3002",
		"BELVO_API_URL": "http://localhost:3003",
	}
}

// TestLoadDefaults verifies that Load sets the expected default values
// when only the required backend URLs are provided.
func TestLoadDefaults(t *testing.T) {
	env := requiredBackends()
	env["PORT"] = ""
	env["LOG_LEVEL"] = ""
	env["BACKEND_TIMEOUT"] = ""
	setupEnv(t, env)

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with default values")
	require.NotNil(t, cfg)
	assert.Equal(t, 3010, cfg.Server.Port, "Default server port should be 3010")
	assert.Equal(t, "info", cfg.Server.LogLevel, "Default log level should be 'info'")
	assert.Equal(t, 30*time.Second, cfg.Backends.Timeout)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, "http://localhost:3001", cfg.Backends.Identity.URL)
	assert.Equal(t, "http://localhost:3002", cfg.Backends.Core.URL)
	assert.Equal(t, "http://localhost:3003", cfg.Backends.Belvo.URL)
}

// TestLoadFromEnv verifies that Load reads overrides from the environment.
func TestLoadFromEnv(t *testing.T) {
	env := requiredBackends()
	env["PORT"] = "9090"
	env["LOG_LEVEL"] = "debug"
	env["BACKEND_TIMEOUT"] = "5s"
	env["BELVO_API_TOKEN"] = "provider-token"
	env["CORS_ALLOWED_ORIGINS"] = "https://app.example.com,https://admin.example.com"
	setupEnv(t, env)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, 5*time.Second, cfg.Backends.Timeout)
	assert.Equal(t, "provider-token", cfg.Backends.Belvo.APIToken)
	assert.Equal(t,
		[]string{"https://app.example.com", "https://admin.example.com"},
		cfg.Server.CORSAllowedOrigins)
}

// TestLoadMissingBackend verifies that every backend URL is mandatory.
func TestLoadMissingBackend(t *testing.T) {
	for _, missing := range []string{"AUTH_API_URL", "CORE_API_URL", "BELVO_API_URL"} {
		t.Run(missing, func(t *testing.T) {
			env := requiredBackends()
			env[missing] = ""
			setupEnv(t, env)

			cfg, err := Load()

			assert.Error(t, err, "Load() should fail when %s is missing", missing)
			assert.Nil(t, cfg)
		})
	}
}

// TestLoadValidation verifies that malformed values are rejected.
func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "invalid port", env: map[string]string{"PORT": "70000"}},
		{name: "invalid log level", env: map[string]string{"LOG_LEVEL": "verbose"}},
		{name: "invalid backend url", env: map[string]string{"CORE_API_URL": "not a url"}},
		{name: "short service secret", env: map[string]string{"BELVO_SERVICE_SECRET": "short"}},
		{
			name: "both provider credentials",
			env: map[string]string{
				"BELVO_API_TOKEN":      "provider-token",
				"BELVO_SERVICE_SECRET": "0123456789abcdef0123456789abcdef",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := requiredBackends()
			for k, v := range tt.env {
				env[k] = v
			}
			setupEnv(t, env)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
