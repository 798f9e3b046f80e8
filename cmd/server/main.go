// Package main is the entry point for the FlightPrint API.
//
//	@title						FlightPrint API
//	@version					1.0.0
//	@description				Flight offer search with carbon emission estimates and priority ranking.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/flightprint/flightprint-api/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	// Import generated docs for swagger
	_ "github.com/flightprint/flightprint-api/docs"

	flighthttp "github.com/flightprint/flightprint-api/internal/adapter/http"
	"github.com/flightprint/flightprint-api/internal/adapter/http/middleware"
	"github.com/flightprint/flightprint-api/internal/adapter/provider/amadeus"
	"github.com/flightprint/flightprint-api/internal/adapter/provider/mockfile"
	"github.com/flightprint/flightprint-api/internal/adapter/repository/mongostore"
	"github.com/flightprint/flightprint-api/internal/config"
	"github.com/flightprint/flightprint-api/internal/domain"
	"github.com/flightprint/flightprint-api/internal/infrastructure/logger"
	"github.com/flightprint/flightprint-api/internal/infrastructure/metrics"
	"github.com/flightprint/flightprint-api/internal/infrastructure/retry"
	"github.com/flightprint/flightprint-api/internal/infrastructure/timeutil"
	"github.com/flightprint/flightprint-api/internal/usecase"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	cfg := config.MustLoad()

	log := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	}).Logger

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Bool("amadeus", cfg.Amadeus.Enabled()).
		Bool("history", cfg.Mongo.Enabled()).
		Msg("Configuration loaded")

	var reg *metrics.Registry
	if cfg.Server.Metrics {
		reg = metrics.NewRegistry()
	}
	clock := timeutil.NewRealClockIn(timeutil.MustGetLocation(cfg.App.Timezone))

	searchOpts := []usecase.Option{
		usecase.WithClock(clock),
		usecase.WithLogger(log),
		usecase.WithMetrics(reg),
	}

	handlers := flighthttp.Handlers{
		Directory: flighthttp.NewDirectoryHandler(usecase.NewAirportUseCase(cfg.Airports.CacheTTL, clock)),
	}

	var mongoClient *mongo.Client
	var store *mongostore.Store
	if cfg.Mongo.Enabled() {
		var err error
		mongoClient, store, err = openHistory(cfg.Mongo)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to open search history store")
		}
		searchOpts = append(searchOpts, usecase.WithRecorder(store))
		handlers.History = flighthttp.NewHistoryHandler(usecase.NewHistoryUseCase(store, clock))
	}

	provider := newProvider(cfg, log, reg, clock)
	flightUseCase := usecase.NewFlightSearchUseCase(provider, &usecase.Config{
		ProviderTimeout: cfg.Timeouts.ProviderSearch,
		MaxResults:      cfg.Search.MaxResults,
		MaxOffers:       cfg.Search.MaxOffers,
		Currency:        cfg.Search.Currency,
	}, searchOpts...)

	handlers.Flights = flighthttp.NewFlightHandler(flightUseCase)
	if store != nil {
		handlers.Flights.WithHealthCheck("mongo", store)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log, middleware.Config{
		Metrics:        reg,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Recovery:       middleware.DefaultRecoveryConfig(),
	})
	flighthttp.RegisterRoutes(e, handlers, flighthttp.RouteConfig{
		SearchLimit: middleware.RateLimitConfig{Requests: cfg.RateLimit.SearchRequests, Window: cfg.RateLimit.Window},
		APILimit:    middleware.RateLimitConfig{Requests: cfg.RateLimit.APIRequests, Window: cfg.RateLimit.Window},
		Metrics:     reg,
		Swagger:     cfg.Server.Swagger,
	})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Str("provider", provider.Name()).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, mongoClient, cfg, log)
}

// newProvider returns the Amadeus adapter when credentials are configured and
// the fixture provider otherwise.
func newProvider(cfg *config.Config, log zerolog.Logger, reg *metrics.Registry, clock timeutil.Clock) domain.FlightProvider {
	if !cfg.Amadeus.Enabled() {
		log.Warn().Str("fixture", cfg.Search.FixturePath).Msg("Amadeus credentials not set, serving fixture offers")
		return mockfile.NewAdapter(cfg.Search.FixturePath)
	}

	return amadeus.NewAdapter(amadeus.Config{
		BaseURL:      cfg.Amadeus.BaseURL,
		ClientID:     cfg.Amadeus.ClientID,
		ClientSecret: cfg.Amadeus.ClientSecret,
		HTTPTimeout:  cfg.Amadeus.HTTPTimeout,
		Retry:        retry.ProviderConfig.WithMaxAttempts(cfg.Amadeus.MaxAttempts),
	},
		amadeus.WithLogger(log),
		amadeus.WithMetrics(reg),
		amadeus.WithClock(clock),
	)
}

// openHistory connects to MongoDB and prepares the searches collection.
func openHistory(cfg config.MongoConfig) (*mongo.Client, *mongostore.Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	client, err := mongostore.Connect(ctx, cfg.URI, cfg.ConnectTimeout)
	if err != nil {
		return nil, nil, err
	}

	store := mongostore.NewStore(client.Database(cfg.Database).Collection(cfg.Collection))
	if err := store.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("ensure indexes: %w", err)
	}
	return client, store, nil
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, client *mongo.Client, cfg *config.Config, log zerolog.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeouts.Shutdown)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}
	if client != nil {
		if err := client.Disconnect(ctx); err != nil {
			log.Error().Err(err).Msg("Error disconnecting from MongoDB")
		}
	}

	log.Info().Msg("Server stopped")
}
