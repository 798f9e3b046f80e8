package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/flightprint/flightprint-api/internal/domain"
	"github.com/flightprint/flightprint-api/internal/infrastructure/logger"
	"github.com/flightprint/flightprint-api/internal/infrastructure/metrics"
	"github.com/flightprint/flightprint-api/internal/infrastructure/timeutil"
)

// Default search settings.
const (
	DefaultProviderTimeout = 30 * time.Second
	DefaultMaxResults      = 20
	DefaultRecordTimeout   = 2 * time.Second
)

// FlightSearchUseCase defines the interface for flight search operations.
type FlightSearchUseCase interface {
	// Search validates criteria, queries the provider, normalizes and ranks the
	// offers and returns at most MaxResults flights.
	Search(ctx context.Context, criteria domain.SearchCriteria, opts SearchOptions) (*domain.SearchResponse, error)
}

// Config contains configuration options for the use case.
type Config struct {
	ProviderTimeout time.Duration
	MaxResults      int
	MaxOffers       int
	Currency        string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		ProviderTimeout: DefaultProviderTimeout,
		MaxResults:      DefaultMaxResults,
		MaxOffers:       domain.DefaultMaxOffers,
		Currency:        DefaultCurrency,
	}
}

// Option customizes a flightSearchUseCase.
type Option func(*flightSearchUseCase)

// WithClock sets the clock used for date validation and FetchedAt.
func WithClock(clock timeutil.Clock) Option {
	return func(uc *flightSearchUseCase) { uc.clock = clock }
}

// WithLogger sets the fallback logger used when the request context carries none.
func WithLogger(log zerolog.Logger) Option {
	return func(uc *flightSearchUseCase) { uc.log = log }
}

// WithMetrics sets the metrics registry.
func WithMetrics(m *metrics.Registry) Option {
	return func(uc *flightSearchUseCase) { uc.metrics = m }
}

// WithRecorder sets where completed searches are stored.
func WithRecorder(r domain.SearchRecorder) Option {
	return func(uc *flightSearchUseCase) { uc.recorder = r }
}

type flightSearchUseCase struct {
	provider domain.FlightProvider
	cfg      Config
	clock    timeutil.Clock
	log      zerolog.Logger
	metrics  *metrics.Registry
	recorder domain.SearchRecorder
}

// NewFlightSearchUseCase creates a FlightSearchUseCase backed by provider.
// Zero values in config fall back to DefaultConfig.
func NewFlightSearchUseCase(provider domain.FlightProvider, config *Config, opts ...Option) FlightSearchUseCase {
	cfg := DefaultConfig()
	if config != nil {
		if config.ProviderTimeout > 0 {
			cfg.ProviderTimeout = config.ProviderTimeout
		}
		if config.MaxResults > 0 {
			cfg.MaxResults = config.MaxResults
		}
		if config.MaxOffers > 0 {
			cfg.MaxOffers = config.MaxOffers
		}
		if config.Currency != "" {
			cfg.Currency = config.Currency
		}
	}

	uc := &flightSearchUseCase{
		provider: provider,
		cfg:      cfg,
		clock:    timeutil.NewRealClock(),
		log:      zerolog.Nop(),
		recorder: domain.NopRecorder{},
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Search implements FlightSearchUseCase.
func (uc *flightSearchUseCase) Search(ctx context.Context, criteria domain.SearchCriteria, opts SearchOptions) (*domain.SearchResponse, error) {
	started := time.Now()
	log := logger.FromContext(ctx, uc.log)

	criteria.SetDefaults()
	if err := criteria.Validate(uc.clock.Now()); err != nil {
		uc.metrics.ObserveSearch(metrics.OutcomeInvalid, time.Since(started))
		return nil, err
	}
	departureDate, err := criteria.DepartureTime()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidDateFormat, err)
	}

	raw, err := uc.fetchOffers(ctx, criteria)
	if err != nil {
		outcome := metrics.OutcomeUnavailable
		if domain.IsProviderTimeout(err) {
			outcome = metrics.OutcomeTimeout
		}
		uc.metrics.ObserveSearch(outcome, time.Since(started))
		log.Error().Err(err).
			Str("origin", criteria.Origin).
			Str("destination", criteria.Destination).
			Msg("provider search failed")
		return nil, err
	}

	results := NormalizeAll(raw, criteria.Origin, criteria.Destination, departureDate)
	flights := make([]domain.Flight, 0, len(results))
	dropped := 0
	for _, r := range results {
		if !r.OK() {
			dropped++
			log.Warn().Err(r.Err).Int("index", r.Index).Str("offer_id", r.OfferID).Msg("dropping malformed offer")
			continue
		}
		flights = append(flights, r.Flight)
	}
	uc.metrics.ObserveOffers(len(raw), dropped)

	ranked := RankFlights(ApplyFilters(flights, opts.Filters))

	totalFound := len(ranked)
	if len(ranked) > uc.cfg.MaxResults {
		ranked = ranked[:uc.cfg.MaxResults]
	}
	// The display sort only reorders the capped priority set.
	ranked = SortFlights(ranked, opts.SortBy)

	fetchedAt := uc.clock.Now()
	for i := range ranked {
		ranked[i].FetchedAt = fetchedAt
	}

	uc.record(ctx, log, domain.NewSearchRecord(criteria, totalFound, fetchedAt))

	elapsed := time.Since(started)
	uc.metrics.ObserveSearch(metrics.OutcomeSuccess, elapsed)
	log.Info().
		Str("origin", criteria.Origin).
		Str("destination", criteria.Destination).
		Int("offers", len(raw)).
		Int("dropped", dropped).
		Int("total_found", totalFound).
		Dur("elapsed", elapsed).
		Msg("flight search completed")

	return domain.NewSearchResponse(criteria, ranked, domain.SearchMetadata{
		TotalFound:     totalFound,
		OffersReceived: len(raw),
		OffersDropped:  dropped,
		Provider:       uc.provider.Name(),
		SearchTimeMs:   elapsed.Milliseconds(),
	}), nil
}

// fetchOffers calls the provider under the configured timeout and maps failures
// onto ProviderError.
func (uc *flightSearchUseCase) fetchOffers(ctx context.Context, criteria domain.SearchCriteria) ([]domain.RawOffer, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.cfg.ProviderTimeout)
	defer cancel()

	name := uc.provider.Name()
	started := time.Now()
	raw, err := uc.provider.SearchOffers(ctx, domain.NewProviderRequest(criteria, uc.cfg.Currency, uc.cfg.MaxOffers))
	elapsed := time.Since(started)

	if err == nil {
		uc.metrics.ObserveProvider(name, metrics.OutcomeSuccess, elapsed)
		return raw, nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		uc.metrics.ObserveProvider(name, metrics.OutcomeTimeout, elapsed)
		return nil, domain.NewProviderTimeoutError(name)
	}

	uc.metrics.ObserveProvider(name, metrics.OutcomeUnavailable, elapsed)
	var pe *domain.ProviderError
	if errors.As(err, &pe) {
		return nil, err
	}
	return nil, domain.NewProviderUnavailableError(name, err)
}

// record stores the search; failures are logged and never fail the search.
func (uc *flightSearchUseCase) record(ctx context.Context, log zerolog.Logger, rec domain.SearchRecord) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), DefaultRecordTimeout)
	defer cancel()

	if err := uc.recorder.Record(ctx, rec); err != nil {
		log.Warn().Err(err).Msg("failed to record search history")
	}
}

var _ FlightSearchUseCase = (*flightSearchUseCase)(nil)
