// Package mock provides test doubles for the flight search system.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific responses).
package mock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/flightprint/flightprint-api/internal/domain"
)

// Provider is a configurable mock implementation of domain.FlightProvider.
// It supports configurable delays, errors, and responses for testing
// timeouts and provider failures.
type Provider struct {
	name        string
	offers      []domain.RawOffer
	err         error
	delay       time.Duration
	callCount   int
	lastRequest domain.ProviderRequest
	mu          sync.Mutex
}

// NewProvider creates a new mock provider with the given name.
// The provider is configured using the builder pattern methods.
func NewProvider(name string) *Provider {
	return &Provider{name: name}
}

// WithOffers configures the provider to return the given raw offers.
func (p *Provider) WithOffers(offers []domain.RawOffer) *Provider {
	p.offers = offers
	return p
}

// WithError configures the provider to return the given error.
func (p *Provider) WithError(err error) *Provider {
	p.err = err
	return p
}

// WithDelay configures the provider to wait the given duration before responding.
// This is useful for testing timeout behavior.
func (p *Provider) WithDelay(d time.Duration) *Provider {
	p.delay = d
	return p
}

// Name returns the provider's unique identifier.
func (p *Provider) Name() string {
	return p.name
}

// SearchOffers implements domain.FlightProvider.
// It respects context cancellation, applies configured delay,
// and returns configured offers or error.
func (p *Provider) SearchOffers(ctx context.Context, req domain.ProviderRequest) ([]domain.RawOffer, error) {
	p.mu.Lock()
	p.callCount++
	p.lastRequest = req
	p.mu.Unlock()

	if p.delay > 0 {
		timer := time.NewTimer(p.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, domain.NewProviderError(p.name, ctx.Err())
		case <-timer.C:
		}
	}

	if ctx.Err() != nil {
		return nil, domain.NewProviderError(p.name, ctx.Err())
	}

	if p.err != nil {
		return nil, p.err
	}

	return p.offers, nil
}

// CallCount returns the number of times SearchOffers was called.
func (p *Provider) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.callCount
}

// LastRequest returns the request of the most recent call.
func (p *Provider) LastRequest() domain.ProviderRequest {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastRequest
}

// Reset resets the call count to zero.
func (p *Provider) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.callCount = 0
	p.lastRequest = domain.ProviderRequest{}
}

// Ensure Provider implements domain.FlightProvider at compile time.
var _ domain.FlightProvider = (*Provider)(nil)

// sampleCarriers rotates through a mix of premium and regular carriers.
var sampleCarriers = []string{"DL", "AA", "UA", "B6", "NK"}

// SampleOffers returns count direct JFK to LAX offers departing on date
// (YYYY-MM-DD). Offer i costs 200 + 25*i USD and takes 5h30m + 10m*i.
func SampleOffers(date string, count int) []domain.RawOffer {
	offers := make([]domain.RawOffer, count)
	base, err := time.Parse("2006-01-02", date)
	if err != nil {
		base = time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)
	}
	base = base.Add(6 * time.Hour)

	for i := 0; i < count; i++ {
		departure := base.Add(time.Duration(i) * time.Hour)
		minutes := 330 + 10*i
		arrival := departure.Add(time.Duration(minutes) * time.Minute)
		carrier := sampleCarriers[i%len(sampleCarriers)]

		offers[i] = DirectOffer(fmt.Sprintf("%d", i+1), carrier, "JFK", "LAX",
			departure, arrival, fmt.Sprintf("%.2f", 200+25*float64(i)))
	}
	return offers
}

// DirectOffer builds a one-segment economy offer with a full price block.
func DirectOffer(id, carrier, from, to string, departure, arrival time.Time, total string) domain.RawOffer {
	duration := formatDuration(arrival.Sub(departure))
	seats := 9
	stops := 0
	return domain.RawOffer{
		ID:     id,
		Source: "GDS",
		Itineraries: []domain.RawItinerary{{
			Duration: duration,
			Segments: []domain.RawSegment{{
				ID:            id,
				Departure:     &domain.RawEndpoint{IataCode: from, At: departure.Format("2006-01-02T15:04:05")},
				Arrival:       &domain.RawEndpoint{IataCode: to, At: arrival.Format("2006-01-02T15:04:05")},
				CarrierCode:   carrier,
				Number:        fmt.Sprintf("%d", 100+len(id)),
				Aircraft:      &domain.RawAircraft{Code: "321"},
				Duration:      duration,
				NumberOfStops: &stops,
			}},
		}},
		Price: &domain.RawPrice{Currency: "USD", Total: total, Base: total, GrandTotal: total},
		TravelerPricings: []domain.RawTravelerPricing{{
			TravelerID:           "1",
			TravelerType:         "ADULT",
			FareDetailsBySegment: []domain.RawFareDetail{{SegmentID: id, Cabin: "ECONOMY"}},
		}},
		ValidatingAirlineCodes: []string{carrier},
		NumberOfBookableSeats:  &seats,
	}
}

// formatDuration renders d as a PTxHyM token.
func formatDuration(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("PT%dH%dM", h, m)
}
