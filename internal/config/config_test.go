package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_Defaults tests that all default values load correctly without any env vars.
func TestLoad_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := Load()
	require.NoError(t, err)

	// Server defaults
	assert.Equal(t, 8080, cfg.Server.Port, "default server port")
	assert.Equal(t, "10s", cfg.Server.ReadTimeout.String(), "default read timeout")
	assert.Equal(t, "35s", cfg.Server.WriteTimeout.String(), "default write timeout")
	assert.True(t, cfg.Server.Swagger)
	assert.True(t, cfg.Server.Metrics)

	// Timeout defaults
	assert.Equal(t, "30s", cfg.Timeouts.ProviderSearch.String(), "default provider timeout")
	assert.Equal(t, "10s", cfg.Timeouts.Shutdown.String())

	// Logging and app defaults
	assert.Equal(t, "info", cfg.Logging.Level, "default log level")
	assert.Equal(t, "json", cfg.Logging.Format, "default log format")
	assert.Equal(t, "development", cfg.App.Env, "default app environment")
	assert.Equal(t, "UTC", cfg.App.Timezone)

	// Provider defaults
	assert.False(t, cfg.Amadeus.Enabled(), "no credentials means fixture provider")
	assert.Equal(t, "https://test.api.amadeus.com", cfg.Amadeus.BaseURL)
	assert.Equal(t, 3, cfg.Amadeus.MaxAttempts)

	// Search defaults
	assert.Equal(t, 20, cfg.Search.MaxResults)
	assert.Equal(t, 250, cfg.Search.MaxOffers)
	assert.Equal(t, "USD", cfg.Search.Currency)
	assert.Equal(t, "test/testdata/amadeus_offers.json", cfg.Search.FixturePath)

	// Rate limit, CORS, Mongo, airports
	assert.Equal(t, 30, cfg.RateLimit.SearchRequests)
	assert.Equal(t, 100, cfg.RateLimit.APIRequests)
	assert.Equal(t, "15m0s", cfg.RateLimit.Window.String())
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.CORS.AllowedOrigins)
	assert.False(t, cfg.Mongo.Enabled(), "history disabled without MONGO_URI")
	assert.Equal(t, "flightprint", cfg.Mongo.Database)
	assert.Equal(t, "searches", cfg.Mongo.Collection)
	assert.Equal(t, "1h0m0s", cfg.Airports.CacheTTL.String())
}

// TestLoad_EnvironmentOverrides tests that environment variables override defaults.
func TestLoad_EnvironmentOverrides(t *testing.T) {
	clearEnvVars(t)

	setEnvVars(t, map[string]string{
		"SERVER_PORT":             "3000",
		"SERVER_WRITE_TIMEOUT":    "1m",
		"TIMEOUT_PROVIDER_SEARCH": "45s",
		"LOG_LEVEL":               "debug",
		"LOG_FORMAT":              "console",
		"APP_ENV":                 "production",
		"APP_TIMEZONE":            "America/New_York",
		"AMADEUS_CLIENT_ID":       "id",
		"AMADEUS_CLIENT_SECRET":   "secret",
		"SEARCH_MAX_RESULTS":      "50",
		"SEARCH_CURRENCY":         "EUR",
		"RATE_LIMIT_WINDOW":       "1m",
		"CORS_ALLOWED_ORIGINS":    "https://flightprint.io,https://www.flightprint.io",
		"MONGO_URI":               "mongodb://localhost:27017",
		"MONGO_DATABASE":          "fp_test",
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "1m0s", cfg.Server.WriteTimeout.String())
	assert.Equal(t, "45s", cfg.Timeouts.ProviderSearch.String())
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "America/New_York", cfg.App.Timezone)
	assert.True(t, cfg.Amadeus.Enabled())
	assert.Equal(t, 50, cfg.Search.MaxResults)
	assert.Equal(t, "EUR", cfg.Search.Currency)
	assert.Equal(t, "1m0s", cfg.RateLimit.Window.String())
	assert.Equal(t, []string{"https://flightprint.io", "https://www.flightprint.io"}, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.Mongo.Enabled())
	assert.Equal(t, "fp_test", cfg.Mongo.Database)
}

// TestLoad_Validation tests that invalid values are rejected with the offending variable named.
func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{name: "port zero", env: map[string]string{"SERVER_PORT": "0"}, wantErr: "SERVER_PORT"},
		{name: "port too high", env: map[string]string{"SERVER_PORT": "65536"}, wantErr: "SERVER_PORT"},
		{name: "zero read timeout", env: map[string]string{"SERVER_READ_TIMEOUT": "0s"}, wantErr: "SERVER_READ_TIMEOUT"},
		{name: "zero provider timeout", env: map[string]string{"TIMEOUT_PROVIDER_SEARCH": "0s"}, wantErr: "TIMEOUT_PROVIDER_SEARCH"},
		{
			name:    "provider timeout exceeds write timeout",
			env:     map[string]string{"TIMEOUT_PROVIDER_SEARCH": "40s", "SERVER_WRITE_TIMEOUT": "30s"},
			wantErr: "should be less than SERVER_WRITE_TIMEOUT",
		},
		{name: "bad log level", env: map[string]string{"LOG_LEVEL": "verbose"}, wantErr: "LOG_LEVEL"},
		{name: "bad log format", env: map[string]string{"LOG_FORMAT": "xml"}, wantErr: "LOG_FORMAT"},
		{name: "bad env", env: map[string]string{"APP_ENV": "test"}, wantErr: "APP_ENV"},
		{name: "bad timezone", env: map[string]string{"APP_TIMEZONE": "Mars/Base"}, wantErr: "APP_TIMEZONE"},
		{name: "half credentials", env: map[string]string{"AMADEUS_CLIENT_ID": "id"}, wantErr: "must be set together"},
		{name: "production without credentials", env: map[string]string{"APP_ENV": "production"}, wantErr: "required in production"},
		{name: "zero attempts", env: map[string]string{"AMADEUS_MAX_ATTEMPTS": "0"}, wantErr: "AMADEUS_MAX_ATTEMPTS"},
		{name: "zero max results", env: map[string]string{"SEARCH_MAX_RESULTS": "0"}, wantErr: "SEARCH_MAX_RESULTS"},
		{name: "too many offers", env: map[string]string{"SEARCH_MAX_OFFERS": "500"}, wantErr: "SEARCH_MAX_OFFERS"},
		{name: "bad currency", env: map[string]string{"SEARCH_CURRENCY": "DOLLAR"}, wantErr: "SEARCH_CURRENCY"},
		{name: "negative rate limit", env: map[string]string{"RATE_LIMIT_API_REQUESTS": "-1"}, wantErr: "RATE_LIMIT"},
		{name: "zero airport ttl", env: map[string]string{"AIRPORTS_CACHE_TTL": "0s"}, wantErr: "AIRPORTS_CACHE_TTL"},
		{name: "unparsable duration", env: map[string]string{"RATE_LIMIT_WINDOW": "soon"}, wantErr: "parse config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, tt.env)

			_, err := Load()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

// TestMustLoad_Success tests MustLoad with valid config.
func TestMustLoad_Success(t *testing.T) {
	clearEnvVars(t)

	assert.NotPanics(t, func() {
		cfg := MustLoad()
		assert.NotNil(t, cfg)
	})
}

// TestMustLoad_Panic tests MustLoad panics on invalid config.
func TestMustLoad_Panic(t *testing.T) {
	clearEnvVars(t)
	setEnvVars(t, map[string]string{"SERVER_PORT": "0"})

	assert.Panics(t, func() {
		MustLoad()
	})
}

// TestConfig_EnvHelpers tests the IsDevelopment and IsProduction helpers.
func TestConfig_EnvHelpers(t *testing.T) {
	tests := []struct {
		env         string
		development bool
		production  bool
	}{
		{"development", true, false},
		{"staging", false, false},
		{"production", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			cfg := &Config{App: AppConfig{Env: tt.env}}
			assert.Equal(t, tt.development, cfg.IsDevelopment())
			assert.Equal(t, tt.production, cfg.IsProduction())
		})
	}
}

// clearEnvVars unsets every config variable and restores it when the test ends.
func clearEnvVars(t *testing.T) {
	t.Helper()
	envVars := []string{
		"SERVER_PORT", "SERVER_READ_TIMEOUT", "SERVER_WRITE_TIMEOUT", "SERVER_SWAGGER", "SERVER_METRICS",
		"TIMEOUT_PROVIDER_SEARCH", "TIMEOUT_SHUTDOWN",
		"LOG_LEVEL", "LOG_FORMAT",
		"APP_ENV", "APP_TIMEZONE",
		"AMADEUS_CLIENT_ID", "AMADEUS_CLIENT_SECRET", "AMADEUS_BASE_URL", "AMADEUS_HTTP_TIMEOUT", "AMADEUS_MAX_ATTEMPTS",
		"SEARCH_MAX_RESULTS", "SEARCH_MAX_OFFERS", "SEARCH_CURRENCY", "SEARCH_FIXTURE_PATH",
		"RATE_LIMIT_SEARCH_REQUESTS", "RATE_LIMIT_API_REQUESTS", "RATE_LIMIT_WINDOW",
		"CORS_ALLOWED_ORIGINS",
		"MONGO_URI", "MONGO_DATABASE", "MONGO_COLLECTION", "MONGO_CONNECT_TIMEOUT",
		"AIRPORTS_CACHE_TTL",
	}
	for _, v := range envVars {
		t.Setenv(v, "")
		os.Unsetenv(v)
	}
}

// setEnvVars sets multiple environment variables for the duration of the test.
func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}
