package usecase

import (
	"fmt"
	"time"

	"github.com/flightprint/flightprint-api/internal/domain"
)

func intRef(i int) *int {
	return &i
}

func floatRef(f float64) *float64 {
	return &f
}

// rawSegment builds a segment departing at hour h on 2026-11-01 and lasting one hour.
func rawSegment(carrier, from, to string, h int) domain.RawSegment {
	return domain.RawSegment{
		Departure:   &domain.RawEndpoint{IataCode: from, At: fmt.Sprintf("2026-11-01T%02d:00:00", h)},
		Arrival:     &domain.RawEndpoint{IataCode: to, At: fmt.Sprintf("2026-11-01T%02d:00:00", h+1)},
		CarrierCode: carrier,
		Number:      "100",
		Duration:    "PT1H",
	}
}

func rawItinerary(duration string, segments ...domain.RawSegment) domain.RawItinerary {
	return domain.RawItinerary{Duration: duration, Segments: segments}
}

// rawOffer builds a one-itinerary economy offer with no declared emissions.
func rawOffer(id, total string, itineraries ...domain.RawItinerary) domain.RawOffer {
	if len(itineraries) == 0 {
		itineraries = []domain.RawItinerary{rawItinerary("PT1H", rawSegment("AA", "BOS", "MIA", 8))}
	}
	return domain.RawOffer{
		ID:          id,
		Itineraries: itineraries,
		Price:       &domain.RawPrice{Currency: "USD", Total: total},
		TravelerPricings: []domain.RawTravelerPricing{{
			FareDetailsBySegment: []domain.RawFareDetail{{Cabin: "ECONOMY"}},
		}},
	}
}

var testDepartureDate = time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)

// rankedFlight builds a minimal normalized flight for ranking tests.
func rankedFlight(id string, stops int, carrier string, grandTotal float64, duration string, seats int) domain.Flight {
	return domain.Flight{
		FlightOfferID:         id,
		Stops:                 stops,
		Airlines:              []domain.AirlineInfo{{Code: carrier}},
		Price:                 domain.PriceInfo{Currency: "USD", Total: grandTotal, GrandTotal: grandTotal},
		Itineraries:           []domain.Itinerary{{Duration: duration}},
		NumberOfBookableSeats: seats,
	}
}
