// Package http provides swagger type definitions for API documentation.
// These types mirror the response envelopes so swag can render concrete schemas
// for the generic DTOs.
package http

import "time"

// SwaggerSearchResponse represents the search API response for swagger documentation.
// @Description Ranked flight offers with search metadata
type SwaggerSearchResponse struct {
	Status     string            `json:"status" example:"success"`
	Results    int               `json:"results" example:"5"`
	TotalFound int               `json:"totalFound" example:"6"`
	Data       SwaggerSearchData `json:"data"`
	Meta       SwaggerSearchMeta `json:"meta"`
}

// SwaggerSearchData carries the ranked flights.
type SwaggerSearchData struct {
	Flights []SwaggerFlight `json:"flights"`
}

// SwaggerSearchMeta echoes the criteria and execution counters.
// @Description Metadata about the search execution
type SwaggerSearchMeta struct {
	Criteria       SwaggerCriteria `json:"criteria"`
	SortBy         string          `json:"sortBy" example:"best"`
	OffersReceived int             `json:"offersReceived" example:"7"`
	OffersDropped  int             `json:"offersDropped" example:"1"`
	Provider       string          `json:"provider" example:"amadeus"`
	SearchTimeMs   int64           `json:"searchTimeMs" example:"840"`
}

// SwaggerCriteria is the normalized search request.
type SwaggerCriteria struct {
	Origin        string `json:"origin" example:"JFK"`
	Destination   string `json:"destination" example:"LAX"`
	DepartureDate string `json:"departureDate" example:"2026-11-01"`
	ReturnDate    string `json:"returnDate,omitempty" example:""`
	Adults        int    `json:"adults" example:"1"`
	TravelClass   string `json:"travelClass" example:"ECONOMY"`
}

// SwaggerFlight represents a single normalized flight offer.
// @Description Normalized flight offer with emissions
type SwaggerFlight struct {
	FlightOfferID          string             `json:"flightOfferId" example:"1"`
	Origin                 string             `json:"origin" example:"JFK"`
	Destination            string             `json:"destination" example:"LAX"`
	DepartureDate          time.Time          `json:"departureDate" example:"2026-11-01T00:00:00Z"`
	Itineraries            []SwaggerItinerary `json:"itineraries"`
	Price                  SwaggerPrice       `json:"price"`
	TravelClass            string             `json:"travelClass" example:"ECONOMY"`
	Stops                  int                `json:"stops" example:"0"`
	Airlines               []SwaggerAirline   `json:"airlines"`
	CarbonEmissions        SwaggerEmissions   `json:"carbonEmissions"`
	EcoInsights            SwaggerEcoInsights `json:"ecoInsights"`
	ValidatingAirlineCodes []string           `json:"validatingAirlineCodes" example:"DL"`
	NumberOfBookableSeats  int                `json:"numberOfBookableSeats" example:"9"`
	RankingScore           float64            `json:"rankingScore" example:"71.5"`
	FetchedAt              time.Time          `json:"fetchedAt" example:"2026-10-15T09:30:00Z"`
}

// SwaggerItinerary is one direction of travel.
type SwaggerItinerary struct {
	Duration string           `json:"duration" example:"PT6H10M"`
	Segments []SwaggerSegment `json:"segments"`
}

// SwaggerSegment is one flight leg.
type SwaggerSegment struct {
	Departure     SwaggerSegmentPoint `json:"departure"`
	Arrival       SwaggerSegmentPoint `json:"arrival"`
	CarrierCode   string              `json:"carrierCode" example:"DL"`
	CarrierName   string              `json:"carrierName" example:"Delta Air Lines"`
	FlightNumber  string              `json:"flightNumber" example:"423"`
	Aircraft      string              `json:"aircraft,omitempty" example:"321"`
	Duration      string              `json:"duration" example:"PT6H10M"`
	NumberOfStops int                 `json:"numberOfStops" example:"0"`
}

// SwaggerSegmentPoint is the departure or arrival end of a segment.
type SwaggerSegmentPoint struct {
	IataCode string    `json:"iataCode" example:"JFK"`
	Terminal string    `json:"terminal,omitempty" example:"4"`
	At       time.Time `json:"at" example:"2026-11-01T08:00:00Z"`
}

// SwaggerPrice contains pricing information.
type SwaggerPrice struct {
	Currency   string  `json:"currency" example:"USD"`
	Total      float64 `json:"total" example:"310.4"`
	Base       float64 `json:"base" example:"262"`
	GrandTotal float64 `json:"grandTotal" example:"310.4"`
}

// SwaggerAirline contains information about an airline.
type SwaggerAirline struct {
	Code string `json:"code" example:"DL"`
	Name string `json:"name" example:"Delta Air Lines"`
}

// SwaggerEmissions is the CO2 weight per traveler.
type SwaggerEmissions struct {
	Weight     float64 `json:"weight" example:"389.6"`
	WeightUnit string  `json:"weightUnit" example:"KG"`
	Cabin      string  `json:"cabin" example:"ECONOMY"`
	Estimated  bool    `json:"estimated" example:"true"`
}

// SwaggerEcoInsights expresses emissions in everyday terms.
type SwaggerEcoInsights struct {
	TreesNeeded     int     `json:"treesNeeded" example:"18"`
	CarKmEquivalent int     `json:"carKmEquivalent" example:"1623"`
	HomeEnergyDays  float64 `json:"homeEnergyDays" example:"13"`
}

// SwaggerAirport is an airport directory entry.
type SwaggerAirport struct {
	Code        string `json:"code" example:"LHR"`
	IATA        string `json:"iata" example:"LHR"`
	ICAO        string `json:"icao" example:"EGLL"`
	Name        string `json:"name" example:"London Heathrow Airport"`
	City        string `json:"city" example:"London"`
	Country     string `json:"country" example:"GB"`
	CountryName string `json:"countryName" example:"United Kingdom"`
}

// SwaggerAirportList is the airport list envelope.
type SwaggerAirportList struct {
	Status  string           `json:"status" example:"success"`
	Results int              `json:"results" example:"2"`
	Data    []SwaggerAirport `json:"data"`
}

// SwaggerAirportItem is the single airport envelope.
type SwaggerAirportItem struct {
	Status string         `json:"status" example:"success"`
	Data   SwaggerAirport `json:"data"`
}

// SwaggerAirlineList is the airline list envelope.
type SwaggerAirlineList struct {
	Status  string           `json:"status" example:"success"`
	Results int              `json:"results" example:"40"`
	Data    []SwaggerAirline `json:"data"`
}

// SwaggerSearchRecord is one stored search.
type SwaggerSearchRecord struct {
	Origin        string     `json:"origin" example:"JFK"`
	Destination   string     `json:"destination" example:"LAX"`
	DepartureDate time.Time  `json:"departureDate" example:"2026-11-01T00:00:00Z"`
	ReturnDate    *time.Time `json:"returnDate,omitempty"`
	TripType      string     `json:"tripType" example:"oneway"`
	Adults        int        `json:"adults" example:"1"`
	TravelClass   string     `json:"travelClass" example:"ECONOMY"`
	ResultCount   int        `json:"resultCount" example:"5"`
	SearchedAt    time.Time  `json:"searchedAt" example:"2026-10-15T09:30:00Z"`
}

// SwaggerSearchRecordList is the recent searches envelope.
type SwaggerSearchRecordList struct {
	Status  string                `json:"status" example:"success"`
	Results int                   `json:"results" example:"1"`
	Data    []SwaggerSearchRecord `json:"data"`
}

// SwaggerPopularRoute aggregates searches for a route.
type SwaggerPopularRoute struct {
	Origin       string    `json:"origin" example:"JFK"`
	Destination  string    `json:"destination" example:"LAX"`
	SearchCount  int       `json:"searchCount" example:"12"`
	LastSearched time.Time `json:"lastSearched" example:"2026-10-15T09:30:00Z"`
	AvgAdults    float64   `json:"avgAdults" example:"1.5"`
}

// SwaggerPopularRouteList is the popular routes envelope.
type SwaggerPopularRouteList struct {
	Status  string                `json:"status" example:"success"`
	Results int                   `json:"results" example:"1"`
	Data    []SwaggerPopularRoute `json:"data"`
}

// SwaggerBucket is a count per field value.
type SwaggerBucket struct {
	Key   string `json:"key" example:"oneway"`
	Count int    `json:"count" example:"8"`
}

// SwaggerStats summarizes stored searches.
type SwaggerStats struct {
	TotalSearches int                   `json:"totalSearches" example:"12"`
	TripTypes     []SwaggerBucket       `json:"tripTypes"`
	TravelClasses []SwaggerBucket       `json:"travelClasses"`
	AvgAdults     float64               `json:"avgAdults" example:"1.3"`
	Recent        []SwaggerSearchRecord `json:"recent"`
}

// SwaggerStatsItem is the stats envelope.
type SwaggerStatsItem struct {
	Status string       `json:"status" example:"success"`
	Data   SwaggerStats `json:"data"`
}
