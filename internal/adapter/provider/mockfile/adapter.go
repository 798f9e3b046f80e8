// Package mockfile serves flight offers from a JSON fixture in the Amadeus
// response format. It stands in for Amadeus when no credentials are configured.
package mockfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/flightprint/flightprint-api/internal/domain"
)

// ProviderName is the unique identifier for the fixture provider.
const ProviderName = "mockfile"

// Adapter implements domain.FlightProvider over a fixture file.
type Adapter struct {
	path  string
	delay time.Duration
}

// NewAdapter creates an adapter reading offers from path on every search.
func NewAdapter(path string) *Adapter {
	return &Adapter{path: path}
}

// WithDelay simulates provider latency.
func (a *Adapter) WithDelay(d time.Duration) *Adapter {
	a.delay = d
	return a
}

// Name returns the provider identifier.
func (a *Adapter) Name() string {
	return ProviderName
}

// SearchOffers returns the fixture offers whose first itinerary runs from
// req.Origin to req.Destination, capped at req.Max.
func (a *Adapter) SearchOffers(ctx context.Context, req domain.ProviderRequest) ([]domain.RawOffer, error) {
	if a.delay > 0 {
		timer := time.NewTimer(a.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, domain.NewProviderError(ProviderName, ctx.Err())
		case <-timer.C:
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, domain.NewProviderError(ProviderName, err)
	}

	data, err := os.ReadFile(a.path)
	if err != nil {
		return nil, domain.NewRetryableProviderError(ProviderName, fmt.Errorf("read fixture: %w", err))
	}

	var body struct {
		Data []domain.RawOffer `json:"data"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, domain.NewProviderError(ProviderName, fmt.Errorf("decode fixture: %w", err))
	}

	offers := make([]domain.RawOffer, 0, len(body.Data))
	for _, o := range body.Data {
		if !servesRoute(o, req.Origin, req.Destination) {
			continue
		}
		offers = append(offers, o)
		if req.Max > 0 && len(offers) == req.Max {
			break
		}
	}
	return offers, nil
}

// servesRoute checks the first itinerary's endpoints. Offers without
// itineraries are kept so malformed fixtures still reach the normalizer.
func servesRoute(o domain.RawOffer, origin, destination string) bool {
	if len(o.Itineraries) == 0 || len(o.Itineraries[0].Segments) == 0 {
		return true
	}
	segs := o.Itineraries[0].Segments
	first, last := segs[0], segs[len(segs)-1]
	if first.Departure == nil || last.Arrival == nil {
		return true
	}
	return strings.EqualFold(first.Departure.IataCode, origin) &&
		strings.EqualFold(last.Arrival.IataCode, destination)
}

var _ domain.FlightProvider = (*Adapter)(nil)
