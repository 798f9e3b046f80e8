package domain

// RawOffer is a flight offer exactly as the search provider returns it.
// Every field may be absent, so pointers and empty values are checked at each access.
type RawOffer struct {
	ID                     string               `json:"id"`
	Source                 string               `json:"source,omitempty"`
	Itineraries            []RawItinerary       `json:"itineraries"`
	Price                  *RawPrice            `json:"price,omitempty"`
	TravelerPricings       []RawTravelerPricing `json:"travelerPricings"`
	ValidatingAirlineCodes []string             `json:"validatingAirlineCodes"`
	NumberOfBookableSeats  *int                 `json:"numberOfBookableSeats,omitempty"`
}

// RawItinerary is one direction of travel in a RawOffer.
type RawItinerary struct {
	Duration string       `json:"duration"`
	Segments []RawSegment `json:"segments"`
}

// RawSegment is one flight leg in a RawItinerary.
type RawSegment struct {
	ID            string       `json:"id,omitempty"`
	Departure     *RawEndpoint `json:"departure,omitempty"`
	Arrival       *RawEndpoint `json:"arrival,omitempty"`
	CarrierCode   string       `json:"carrierCode"`
	Number        string       `json:"number"`
	Aircraft      *RawAircraft `json:"aircraft,omitempty"`
	Duration      string       `json:"duration"`
	NumberOfStops *int         `json:"numberOfStops,omitempty"`
}

// RawEndpoint is the departure or arrival of a RawSegment.
// At is a local airport timestamp, usually without a zone offset.
type RawEndpoint struct {
	IataCode string `json:"iataCode"`
	Terminal string `json:"terminal,omitempty"`
	At       string `json:"at"`
}

// RawAircraft identifies the equipment of a RawSegment.
type RawAircraft struct {
	Code string `json:"code"`
}

// RawPrice holds price amounts as decimal strings.
type RawPrice struct {
	Currency   string `json:"currency"`
	Total      string `json:"total"`
	Base       string `json:"base"`
	GrandTotal string `json:"grandTotal"`
}

// RawTravelerPricing is the fare breakdown for one traveler.
type RawTravelerPricing struct {
	TravelerID           string          `json:"travelerId,omitempty"`
	TravelerType         string          `json:"travelerType,omitempty"`
	FareDetailsBySegment []RawFareDetail `json:"fareDetailsBySegment"`
}

// RawFareDetail is a traveler's fare on one segment.
type RawFareDetail struct {
	SegmentID    string           `json:"segmentId,omitempty"`
	Cabin        string           `json:"cabin"`
	CO2Emissions []RawCO2Emission `json:"co2Emissions,omitempty"`
}

// RawCO2Emission is a provider-declared emission figure for a segment.
type RawCO2Emission struct {
	Weight     float64 `json:"weight"`
	WeightUnit string  `json:"weightUnit"`
	Cabin      string  `json:"cabin"`
}

// FirstFareDetails returns the fare details of the first traveler, or nil.
func (o RawOffer) FirstFareDetails() []RawFareDetail {
	if len(o.TravelerPricings) == 0 {
		return nil
	}
	return o.TravelerPricings[0].FareDetailsBySegment
}

// Cabin returns the cabin of the first traveler's first fare, or "" when absent.
func (o RawOffer) Cabin() string {
	details := o.FirstFareDetails()
	if len(details) == 0 {
		return ""
	}
	return details[0].Cabin
}
