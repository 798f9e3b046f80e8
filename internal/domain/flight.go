// Package domain contains the core business entities and rules for the flight search system.
// These entities are provider-agnostic and form the foundation upon which all other components are built.
package domain

import (
	"strings"
	"time"
)

// TravelClass is the cabin class of a flight.
type TravelClass string

// Supported travel classes.
const (
	TravelClassEconomy        TravelClass = "ECONOMY"
	TravelClassPremiumEconomy TravelClass = "PREMIUM_ECONOMY"
	TravelClassBusiness       TravelClass = "BUSINESS"
	TravelClassFirst          TravelClass = "FIRST"
)

// IsValid checks if the travel class is one of the supported values.
func (c TravelClass) IsValid() bool {
	switch c {
	case TravelClassEconomy, TravelClassPremiumEconomy, TravelClassBusiness, TravelClassFirst:
		return true
	default:
		return false
	}
}

// ParseTravelClass converts a provider or user supplied cabin string to a TravelClass.
// Matching is case-insensitive; empty or unknown values return TravelClassEconomy.
func ParseTravelClass(s string) TravelClass {
	c := TravelClass(strings.ToUpper(strings.TrimSpace(s)))
	if c.IsValid() {
		return c
	}
	return TravelClassEconomy
}

// WeightUnitKG is the only weight unit emitted for carbon emissions.
const WeightUnitKG = "KG"

// Flight is the canonical, rankable representation of one provider offer.
// A Flight is built once per search and never mutated afterwards.
type Flight struct {
	// FlightOfferID is the provider's offer identifier
	FlightOfferID string `json:"flightOfferId"`

	// Origin is the searched departure airport (IATA)
	Origin string `json:"origin"`

	// Destination is the searched arrival airport (IATA)
	Destination string `json:"destination"`

	// DepartureDate is the searched departure date
	DepartureDate time.Time `json:"departureDate"`

	// Itineraries holds the outbound and, for round trips, the return itinerary
	Itineraries []Itinerary `json:"itineraries"`

	// Price contains pricing information
	Price PriceInfo `json:"price"`

	// TravelClass is the cabin of the first traveler's first fare
	TravelClass TravelClass `json:"travelClass"`

	// Stops is the total number of plane changes plus technical stops across all itineraries
	Stops int `json:"stops"`

	// Airlines lists every carrier flown, deduplicated, in first-seen order
	Airlines []AirlineInfo `json:"airlines"`

	// CarbonEmissions is the provider-declared or estimated CO2 weight
	CarbonEmissions CarbonEmissions `json:"carbonEmissions"`

	// EcoInsights translates CarbonEmissions into everyday equivalents
	EcoInsights EcoInsights `json:"ecoInsights"`

	// ValidatingAirlineCodes are the carriers that issue the ticket
	ValidatingAirlineCodes []string `json:"validatingAirlineCodes"`

	// NumberOfBookableSeats is the remaining seat count reported by the provider
	NumberOfBookableSeats int `json:"numberOfBookableSeats"`

	// RankingScore is the priority score assigned by the ranking engine (higher is better)
	RankingScore float64 `json:"rankingScore"`

	// FetchedAt records when the offer was normalized
	FetchedAt time.Time `json:"fetchedAt"`
}

// IsDirect reports whether the flight has no stops at all.
func (f Flight) IsDirect() bool {
	return f.Stops == 0
}

// IsRoundTrip reports whether the flight carries a return itinerary.
func (f Flight) IsRoundTrip() bool {
	return len(f.Itineraries) == 2
}

// DurationMinutes returns the duration of the first itinerary only.
// Flights without itineraries yield UnknownDurationMinutes.
func (f Flight) DurationMinutes() int {
	if len(f.Itineraries) == 0 {
		return UnknownDurationMinutes
	}
	return DurationMinutes(f.Itineraries[0].Duration)
}

// HasAirline reports whether any segment is flown by the given carrier code.
func (f Flight) HasAirline(code string) bool {
	for _, a := range f.Airlines {
		if strings.EqualFold(a.Code, code) {
			return true
		}
	}
	return false
}

// Itinerary is one direction of travel.
type Itinerary struct {
	// Duration is the provider's ISO-8601 style duration token (e.g., "PT5H30M")
	Duration string `json:"duration"`

	// Segments are the legs flown, in order
	Segments []Segment `json:"segments"`
}

// Layovers returns the connection times between consecutive segments.
// Pairs whose next departure precedes the previous arrival are omitted.
func (it Itinerary) Layovers() []Layover {
	if len(it.Segments) < 2 {
		return nil
	}

	layovers := make([]Layover, 0, len(it.Segments)-1)
	for i := 0; i < len(it.Segments)-1; i++ {
		gap := it.Segments[i+1].Departure.At.Sub(it.Segments[i].Arrival.At)
		if gap < 0 {
			continue
		}
		minutes := int(gap.Minutes())
		layovers = append(layovers, Layover{
			Airport:   it.Segments[i].Arrival.IataCode,
			Minutes:   minutes,
			Formatted: FormatMinutes(minutes),
		})
	}
	return layovers
}

// Layover is the idle time at a connecting airport.
type Layover struct {
	Airport   string `json:"airport"`
	Minutes   int    `json:"minutes"`
	Formatted string `json:"formatted"`
}

// Segment is one flight leg.
type Segment struct {
	// Departure contains departure airport and time information
	Departure SegmentPoint `json:"departure"`

	// Arrival contains arrival airport and time information
	Arrival SegmentPoint `json:"arrival"`

	// CarrierCode is the IATA code of the marketing carrier
	CarrierCode string `json:"carrierCode"`

	// CarrierName is the display name resolved from the airline directory
	CarrierName string `json:"carrierName"`

	// FlightNumber is the carrier's flight number without the carrier prefix
	FlightNumber string `json:"flightNumber"`

	// Aircraft is the equipment code (e.g., "32N")
	Aircraft string `json:"aircraft,omitempty"`

	// Duration is the leg duration token
	Duration string `json:"duration"`

	// NumberOfStops counts technical stops within the leg (no change of aircraft)
	NumberOfStops int `json:"numberOfStops"`
}

// SegmentPoint is the departure or arrival end of a segment.
type SegmentPoint struct {
	IataCode string    `json:"iataCode"`
	Terminal string    `json:"terminal,omitempty"`
	At       time.Time `json:"at"`
}

// PriceInfo contains pricing information for a flight.
type PriceInfo struct {
	// Currency is the ISO 4217 currency code (e.g., "USD")
	Currency string `json:"currency"`

	// Total is the total price for all travelers
	Total float64 `json:"total"`

	// Base is the fare before taxes
	Base float64 `json:"base"`

	// GrandTotal is the total including any additional services
	GrandTotal float64 `json:"grandTotal"`
}

// AirlineInfo contains information about an airline.
type AirlineInfo struct {
	// Code is the IATA airline code (e.g., "BA")
	Code string `json:"code"`

	// Name is the full airline name (e.g., "British Airways")
	Name string `json:"name"`
}

// CarbonEmissions is the CO2 weight attributed to one traveler on the flight.
type CarbonEmissions struct {
	Weight     float64     `json:"weight"`
	WeightUnit string      `json:"weightUnit"`
	Cabin      TravelClass `json:"cabin"`

	// Estimated is true when the weight came from the estimator rather than the provider
	Estimated bool `json:"estimated"`
}

// EcoInsights expresses an emissions figure in everyday terms.
type EcoInsights struct {
	TreesNeeded     int     `json:"treesNeeded"`
	CarKmEquivalent int     `json:"carKmEquivalent"`
	HomeEnergyDays  float64 `json:"homeEnergyDays"`
}
