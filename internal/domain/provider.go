package domain

import "context"

//go:generate mockgen -source=provider.go -destination=mock_provider.go -package=domain

// DefaultMaxOffers caps how many raw offers are requested from the provider.
const DefaultMaxOffers = 250

// ProviderRequest is the normalized query sent to a flight search provider.
type ProviderRequest struct {
	Origin        string
	Destination   string
	DepartureDate string
	ReturnDate    string
	Adults        int
	TravelClass   TravelClass
	Currency      string
	Max           int
}

// NewProviderRequest builds a ProviderRequest from validated criteria.
func NewProviderRequest(criteria SearchCriteria, currency string, max int) ProviderRequest {
	if max <= 0 {
		max = DefaultMaxOffers
	}
	return ProviderRequest{
		Origin:        criteria.Origin,
		Destination:   criteria.Destination,
		DepartureDate: criteria.DepartureDate,
		ReturnDate:    criteria.ReturnDate,
		Adults:        criteria.Adults,
		TravelClass:   criteria.TravelClass,
		Currency:      currency,
		Max:           max,
	}
}

// FlightProvider searches an external flight inventory.
// Implementations own authentication and retries; they must honor ctx cancellation.
type FlightProvider interface {
	// Name returns the unique identifier of the provider.
	Name() string

	// SearchOffers returns the raw offers matching the request.
	SearchOffers(ctx context.Context, req ProviderRequest) ([]RawOffer, error)
}
