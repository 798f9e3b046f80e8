// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/flightprint/flightprint-api/internal/infrastructure/timeutil"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Timeouts  TimeoutConfig
	Logging   LoggingConfig
	App       AppConfig
	Amadeus   AmadeusConfig
	Search    SearchConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
	Mongo     MongoConfig
	Airports  AirportConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"35s"`
	Swagger      bool          `env:"SERVER_SWAGGER" envDefault:"true"`
	Metrics      bool          `env:"SERVER_METRICS" envDefault:"true"`
}

// TimeoutConfig holds timeout settings for flight search operations.
type TimeoutConfig struct {
	// ProviderSearch bounds one provider search, retries included
	ProviderSearch time.Duration `env:"TIMEOUT_PROVIDER_SEARCH" envDefault:"30s"`
	Shutdown       time.Duration `env:"TIMEOUT_SHUTDOWN" envDefault:"10s"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`

	// Timezone decides which calendar day counts as "today" for departure dates
	Timezone string `env:"APP_TIMEZONE" envDefault:"UTC"`
}

// AmadeusConfig holds the flight offers API credentials.
// Without credentials the server falls back to the fixture provider.
type AmadeusConfig struct {
	ClientID     string        `env:"AMADEUS_CLIENT_ID"`
	ClientSecret string        `env:"AMADEUS_CLIENT_SECRET"`
	BaseURL      string        `env:"AMADEUS_BASE_URL" envDefault:"https://test.api.amadeus.com"`
	HTTPTimeout  time.Duration `env:"AMADEUS_HTTP_TIMEOUT" envDefault:"20s"`
	MaxAttempts  int           `env:"AMADEUS_MAX_ATTEMPTS" envDefault:"3"`
}

// Enabled reports whether both credentials are set.
func (a AmadeusConfig) Enabled() bool {
	return a.ClientID != "" && a.ClientSecret != ""
}

// SearchConfig holds flight search settings.
type SearchConfig struct {
	MaxResults  int    `env:"SEARCH_MAX_RESULTS" envDefault:"20"`
	MaxOffers   int    `env:"SEARCH_MAX_OFFERS" envDefault:"250"`
	Currency    string `env:"SEARCH_CURRENCY" envDefault:"USD"`
	FixturePath string `env:"SEARCH_FIXTURE_PATH" envDefault:"test/testdata/amadeus_offers.json"`
}

// RateLimitConfig holds per-client request budgets. Zero disables a limit.
type RateLimitConfig struct {
	SearchRequests int           `env:"RATE_LIMIT_SEARCH_REQUESTS" envDefault:"30"`
	APIRequests    int           `env:"RATE_LIMIT_API_REQUESTS" envDefault:"100"`
	Window         time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"15m"`
}

// CORSConfig holds cross-origin settings.
type CORSConfig struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://localhost:5173"`
}

// MongoConfig holds the search history store settings.
// An empty URI disables history.
type MongoConfig struct {
	URI            string        `env:"MONGO_URI"`
	Database       string        `env:"MONGO_DATABASE" envDefault:"flightprint"`
	Collection     string        `env:"MONGO_COLLECTION" envDefault:"searches"`
	ConnectTimeout time.Duration `env:"MONGO_CONNECT_TIMEOUT" envDefault:"10s"`
}

// Enabled reports whether a URI is configured.
func (m MongoConfig) Enabled() bool {
	return m.URI != ""
}

// AirportConfig holds airport directory settings.
type AirportConfig struct {
	CacheTTL time.Duration `env:"AIRPORTS_CACHE_TTL" envDefault:"1h"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}
	if cfg.Timeouts.ProviderSearch <= 0 {
		return fmt.Errorf("TIMEOUT_PROVIDER_SEARCH must be positive")
	}
	if cfg.Timeouts.Shutdown <= 0 {
		return fmt.Errorf("TIMEOUT_SHUTDOWN must be positive")
	}

	// The response must still be writable after the provider gives up.
	if cfg.Timeouts.ProviderSearch >= cfg.Server.WriteTimeout {
		return fmt.Errorf("TIMEOUT_PROVIDER_SEARCH (%s) should be less than SERVER_WRITE_TIMEOUT (%s)",
			cfg.Timeouts.ProviderSearch, cfg.Server.WriteTimeout)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	if _, err := timeutil.GetLocation(cfg.App.Timezone); err != nil {
		return fmt.Errorf("APP_TIMEZONE: %w", err)
	}

	if (cfg.Amadeus.ClientID == "") != (cfg.Amadeus.ClientSecret == "") {
		return fmt.Errorf("AMADEUS_CLIENT_ID and AMADEUS_CLIENT_SECRET must be set together")
	}
	if cfg.Amadeus.HTTPTimeout <= 0 {
		return fmt.Errorf("AMADEUS_HTTP_TIMEOUT must be positive")
	}
	if cfg.Amadeus.MaxAttempts < 1 {
		return fmt.Errorf("AMADEUS_MAX_ATTEMPTS must be at least 1, got %d", cfg.Amadeus.MaxAttempts)
	}
	if cfg.IsProduction() && !cfg.Amadeus.Enabled() {
		return fmt.Errorf("AMADEUS_CLIENT_ID and AMADEUS_CLIENT_SECRET are required in production")
	}

	if cfg.Search.MaxResults < 1 {
		return fmt.Errorf("SEARCH_MAX_RESULTS must be at least 1, got %d", cfg.Search.MaxResults)
	}
	if cfg.Search.MaxOffers < 1 || cfg.Search.MaxOffers > 250 {
		return fmt.Errorf("SEARCH_MAX_OFFERS must be between 1 and 250, got %d", cfg.Search.MaxOffers)
	}
	if len(cfg.Search.Currency) != 3 {
		return fmt.Errorf("SEARCH_CURRENCY must be an ISO 4217 code, got %q", cfg.Search.Currency)
	}

	if cfg.RateLimit.SearchRequests < 0 || cfg.RateLimit.APIRequests < 0 {
		return fmt.Errorf("RATE_LIMIT_*_REQUESTS must not be negative")
	}
	if cfg.RateLimit.Window <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive")
	}

	if cfg.Mongo.Enabled() && (cfg.Mongo.Database == "" || cfg.Mongo.Collection == "") {
		return fmt.Errorf("MONGO_DATABASE and MONGO_COLLECTION are required when MONGO_URI is set")
	}

	if cfg.Airports.CacheTTL <= 0 {
		return fmt.Errorf("AIRPORTS_CACHE_TTL must be positive")
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
