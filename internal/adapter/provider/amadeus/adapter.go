// Package amadeus searches flight offers through the Amadeus Self-Service API.
package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/flightprint/flightprint-api/internal/domain"
	"github.com/flightprint/flightprint-api/internal/infrastructure/metrics"
	"github.com/flightprint/flightprint-api/internal/infrastructure/retry"
	"github.com/flightprint/flightprint-api/internal/infrastructure/timeutil"
)

// ProviderName is the unique identifier for the Amadeus provider.
const ProviderName = "amadeus"

// DefaultBaseURL is the Amadeus test environment.
const DefaultBaseURL = "https://test.api.amadeus.com"

const (
	tokenPath  = "/v1/security/oauth2/token"
	offersPath = "/v2/shopping/flight-offers"

	defaultHTTPTimeout = 20 * time.Second
	maxBodyBytes       = 16 << 20
)

// Config holds Amadeus credentials and transport settings.
type Config struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	HTTPTimeout  time.Duration
	Retry        retry.Config
}

// Adapter implements domain.FlightProvider against Amadeus.
type Adapter struct {
	baseURL string
	client  *http.Client
	tokens  *tokenSource
	retry   retry.Config
	log     zerolog.Logger
	metrics *metrics.Registry
	clock   timeutil.Clock
}

// Option customizes an Adapter.
type Option func(*Adapter)

// WithHTTPClient replaces the HTTP client used for every call.
func WithHTTPClient(c *http.Client) Option {
	return func(a *Adapter) { a.client = c }
}

// WithClock sets the clock that drives token expiry.
func WithClock(c timeutil.Clock) Option {
	return func(a *Adapter) { a.clock = c }
}

// WithLogger sets the adapter logger.
func WithLogger(l zerolog.Logger) Option {
	return func(a *Adapter) { a.log = l }
}

// WithMetrics sets the metrics registry for retries and token refreshes.
func WithMetrics(m *metrics.Registry) Option {
	return func(a *Adapter) { a.metrics = m }
}

// NewAdapter creates an Amadeus adapter.
func NewAdapter(cfg Config, opts ...Option) *Adapter {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	retryCfg := cfg.Retry
	if retryCfg.MaxAttempts == 0 {
		retryCfg = retry.ProviderConfig
	}

	a := &Adapter{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		retry:   retryCfg,
		log:     zerolog.Nop(),
		clock:   timeutil.NewRealClock(),
	}
	for _, opt := range opts {
		opt(a)
	}

	a.tokens = &tokenSource{
		endpoint: baseURL + tokenPath,
		clientID: cfg.ClientID,
		secret:   cfg.ClientSecret,
		client:   a.client,
		clock:    a.clock,
		onFetch:  a.metrics.IncTokenRefresh,
	}
	return a
}

// Name returns the provider identifier.
func (a *Adapter) Name() string {
	return ProviderName
}

// SearchOffers implements domain.FlightProvider.
// Network failures, 429 and 5xx answers are retried; other client errors are not.
// A 401 on the search call drops the cached token before the next attempt.
func (a *Adapter) SearchOffers(ctx context.Context, req domain.ProviderRequest) ([]domain.RawOffer, error) {
	cfg := a.retry.WithOnRetry(func(attempt int, err error, wait time.Duration) {
		a.metrics.IncProviderRetry(ProviderName)
		a.log.Warn().Err(err).Int("attempt", attempt).Dur("wait", wait).Msg("retrying amadeus search")
	})

	offers, err := retry.DoWithResult(ctx, func() ([]domain.RawOffer, error) {
		return a.searchOnce(ctx, req)
	}, cfg)
	if err != nil {
		if ctx.Err() != nil {
			return nil, domain.NewProviderError(ProviderName, ctx.Err())
		}
		if retry.IsPermanent(err) {
			return nil, domain.NewProviderError(ProviderName, err)
		}
		return nil, domain.NewRetryableProviderError(ProviderName, err)
	}

	a.log.Debug().Int("offers", len(offers)).Str("origin", req.Origin).Str("destination", req.Destination).Msg("amadeus offers received")
	return offers, nil
}

func (a *Adapter) searchOnce(ctx context.Context, req domain.ProviderRequest) ([]domain.RawOffer, error) {
	token, err := a.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+offersPath+"?"+searchQuery(req).Encode(), nil)
	if err != nil {
		return nil, retry.NewPermanent(fmt.Errorf("build search request: %w", err))
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read search response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		a.tokens.Invalidate()
		// Retried with a fresh token.
		return nil, &StatusError{Op: "search", StatusCode: resp.StatusCode, Detail: errorDetail(body)}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, newStatusError("search", resp.StatusCode, body)
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, retry.NewPermanent(fmt.Errorf("decode search response: %w", err))
	}
	if parsed.Data == nil {
		return []domain.RawOffer{}, nil
	}
	return parsed.Data, nil
}

// searchQuery maps a ProviderRequest onto the flight-offers query string.
func searchQuery(req domain.ProviderRequest) url.Values {
	q := url.Values{}
	q.Set("originLocationCode", req.Origin)
	q.Set("destinationLocationCode", req.Destination)
	q.Set("departureDate", req.DepartureDate)
	if req.ReturnDate != "" {
		q.Set("returnDate", req.ReturnDate)
	}
	adults := req.Adults
	if adults <= 0 {
		adults = 1
	}
	q.Set("adults", strconv.Itoa(adults))
	class := req.TravelClass
	if class == "" {
		class = domain.TravelClassEconomy
	}
	q.Set("travelClass", string(class))
	if req.Currency != "" {
		q.Set("currencyCode", req.Currency)
	}
	limit := req.Max
	if limit <= 0 {
		limit = domain.DefaultMaxOffers
	}
	q.Set("max", strconv.Itoa(limit))
	q.Set("nonStop", "false")
	return q
}

var _ domain.FlightProvider = (*Adapter)(nil)
