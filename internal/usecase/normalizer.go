package usecase

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/flightprint/flightprint-api/internal/airline"
	"github.com/flightprint/flightprint-api/internal/domain"
	"github.com/flightprint/flightprint-api/internal/emissions"
	"github.com/flightprint/flightprint-api/internal/infrastructure/timeutil"
)

// DefaultCurrency applies when an offer carries no price currency.
const DefaultCurrency = "USD"

// maxItineraries is one outbound plus one return.
const maxItineraries = 2

var errMissingEndpoint = errors.New("missing endpoint")

// OfferResult is the outcome of normalizing one raw offer: either Flight or Err is meaningful.
type OfferResult struct {
	Index   int
	OfferID string
	Flight  domain.Flight
	Err     error
}

// OK reports whether the offer normalized successfully.
func (r OfferResult) OK() bool {
	return r.Err == nil
}

// NormalizeAll normalizes every offer independently. A malformed offer, or one
// that panics during normalization, yields a failed result and never affects its neighbours.
func NormalizeAll(raw []domain.RawOffer, origin, destination string, departureDate time.Time) []OfferResult {
	results := make([]OfferResult, len(raw))
	for i := range raw {
		results[i] = normalizeSafely(i, raw[i], origin, destination, departureDate)
	}
	return results
}

func normalizeSafely(index int, raw domain.RawOffer, origin, destination string, departureDate time.Time) (result OfferResult) {
	result = OfferResult{Index: index, OfferID: raw.ID}
	defer func() {
		if r := recover(); r != nil {
			result.Flight = domain.Flight{}
			result.Err = domain.NewOfferProcessingError(raw.ID, "panic during normalization: %v", r)
		}
	}()

	result.Flight, result.Err = NormalizeOffer(raw, origin, destination, departureDate)
	return result
}

// NormalizeOffer converts one provider offer into a Flight.
// origin and destination are the searched airports and drive the distance lookup
// when the provider declares no emissions.
func NormalizeOffer(raw domain.RawOffer, origin, destination string, departureDate time.Time) (domain.Flight, error) {
	switch n := len(raw.Itineraries); {
	case n == 0:
		return domain.Flight{}, domain.NewOfferProcessingError(raw.ID, "no itineraries")
	case n > maxItineraries:
		return domain.Flight{}, domain.NewOfferProcessingError(raw.ID, "%d itineraries, at most %d supported", n, maxItineraries)
	}

	price, err := normalizePrice(raw)
	if err != nil {
		return domain.Flight{}, err
	}

	itineraries := make([]domain.Itinerary, 0, len(raw.Itineraries))
	stops := 0
	for i, rawIt := range raw.Itineraries {
		it, technicalStops, err := normalizeItinerary(raw.ID, i, rawIt)
		if err != nil {
			return domain.Flight{}, err
		}
		stops += len(it.Segments) - 1 + technicalStops
		itineraries = append(itineraries, it)
	}

	cabin := domain.ParseTravelClass(raw.Cabin())
	carbon := normalizeEmissions(raw, cabin, stops, origin, destination)

	seats := 0
	if raw.NumberOfBookableSeats != nil && *raw.NumberOfBookableSeats > 0 {
		seats = *raw.NumberOfBookableSeats
	}

	validating := make([]string, len(raw.ValidatingAirlineCodes))
	copy(validating, raw.ValidatingAirlineCodes)

	return domain.Flight{
		FlightOfferID:          raw.ID,
		Origin:                 origin,
		Destination:            destination,
		DepartureDate:          departureDate,
		Itineraries:            itineraries,
		Price:                  price,
		TravelClass:            cabin,
		Stops:                  stops,
		Airlines:               collectAirlines(itineraries),
		CarbonEmissions:        carbon,
		EcoInsights:            emissions.Insights(carbon.Weight),
		ValidatingAirlineCodes: validating,
		NumberOfBookableSeats:  seats,
	}, nil
}

func normalizePrice(raw domain.RawOffer) (domain.PriceInfo, error) {
	if raw.Price == nil || strings.TrimSpace(raw.Price.Total) == "" {
		return domain.PriceInfo{}, domain.NewOfferProcessingError(raw.ID, "missing price.total")
	}

	total, err := parseAmount(raw.Price.Total)
	if err != nil {
		return domain.PriceInfo{}, domain.NewOfferProcessingError(raw.ID, "unparseable price.total %q", raw.Price.Total)
	}
	if total < 0 {
		return domain.PriceInfo{}, domain.NewOfferProcessingError(raw.ID, "negative price.total %v", total)
	}

	base, err := parseAmount(raw.Price.Base)
	if err != nil || base < 0 {
		base = 0
	}

	grandTotal, err := parseAmount(raw.Price.GrandTotal)
	if err != nil || grandTotal <= 0 {
		grandTotal = total
	}

	currency := strings.TrimSpace(raw.Price.Currency)
	if currency == "" {
		currency = DefaultCurrency
	}

	return domain.PriceInfo{
		Currency:   currency,
		Total:      total,
		Base:       base,
		GrandTotal: grandTotal,
	}, nil
}

// parseAmount parses a decimal string. Empty strings are an error.
func parseAmount(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite amount %q", s)
	}
	return v, nil
}

func normalizeItinerary(offerID string, index int, raw domain.RawItinerary) (domain.Itinerary, int, error) {
	if len(raw.Segments) == 0 {
		return domain.Itinerary{}, 0, domain.NewOfferProcessingError(offerID, "itinerary %d has no segments", index)
	}

	segments := make([]domain.Segment, 0, len(raw.Segments))
	technicalStops := 0
	for j, rs := range raw.Segments {
		seg, err := normalizeSegment(offerID, index, j, rs)
		if err != nil {
			return domain.Itinerary{}, 0, err
		}
		technicalStops += seg.NumberOfStops
		segments = append(segments, seg)
	}

	return domain.Itinerary{Duration: raw.Duration, Segments: segments}, technicalStops, nil
}

func normalizeSegment(offerID string, itIndex, segIndex int, raw domain.RawSegment) (domain.Segment, error) {
	departure, err := normalizeEndpoint(raw.Departure)
	if err != nil {
		return domain.Segment{}, domain.NewOfferProcessingError(offerID, "itinerary %d segment %d departure: %v", itIndex, segIndex, err)
	}
	arrival, err := normalizeEndpoint(raw.Arrival)
	if err != nil {
		return domain.Segment{}, domain.NewOfferProcessingError(offerID, "itinerary %d segment %d arrival: %v", itIndex, segIndex, err)
	}

	technicalStops := 0
	if raw.NumberOfStops != nil {
		if *raw.NumberOfStops < 0 {
			return domain.Segment{}, domain.NewOfferProcessingError(offerID, "itinerary %d segment %d has negative numberOfStops", itIndex, segIndex)
		}
		technicalStops = *raw.NumberOfStops
	}

	aircraft := ""
	if raw.Aircraft != nil {
		aircraft = raw.Aircraft.Code
	}

	return domain.Segment{
		Departure:     departure,
		Arrival:       arrival,
		CarrierCode:   raw.CarrierCode,
		CarrierName:   airline.Name(raw.CarrierCode),
		FlightNumber:  raw.Number,
		Aircraft:      aircraft,
		Duration:      raw.Duration,
		NumberOfStops: technicalStops,
	}, nil
}

func normalizeEndpoint(raw *domain.RawEndpoint) (domain.SegmentPoint, error) {
	if raw == nil {
		return domain.SegmentPoint{}, errMissingEndpoint
	}
	at, err := timeutil.ParseLocalTimestamp(raw.At)
	if err != nil {
		return domain.SegmentPoint{}, err
	}
	return domain.SegmentPoint{IataCode: raw.IataCode, Terminal: raw.Terminal, At: at}, nil
}

// collectAirlines lists carriers in first-seen order without duplicates.
func collectAirlines(itineraries []domain.Itinerary) []domain.AirlineInfo {
	seen := make(map[string]struct{})
	airlines := make([]domain.AirlineInfo, 0, 2)
	for _, it := range itineraries {
		for _, seg := range it.Segments {
			if seg.CarrierCode == "" {
				continue
			}
			if _, ok := seen[seg.CarrierCode]; ok {
				continue
			}
			seen[seg.CarrierCode] = struct{}{}
			airlines = append(airlines, domain.AirlineInfo{Code: seg.CarrierCode, Name: seg.CarrierName})
		}
	}
	return airlines
}

// normalizeEmissions prefers the provider figure: the sum of the first emission
// entry of every fare detail of the first traveler. When that sum is not positive,
// the estimator is applied once per itinerary.
func normalizeEmissions(raw domain.RawOffer, cabin domain.TravelClass, stops int, origin, destination string) domain.CarbonEmissions {
	declared := 0.0
	for _, fd := range raw.FirstFareDetails() {
		if len(fd.CO2Emissions) > 0 && fd.CO2Emissions[0].Weight > 0 {
			declared += fd.CO2Emissions[0].Weight
		}
	}

	if declared > 0 {
		return domain.CarbonEmissions{Weight: declared, WeightUnit: domain.WeightUnitKG, Cabin: cabin}
	}

	perTrip := emissions.Estimate(emissions.RouteDistance(origin, destination), cabin, stops)
	return domain.CarbonEmissions{
		Weight:     float64(perTrip * len(raw.Itineraries)),
		WeightUnit: domain.WeightUnitKG,
		Cabin:      cabin,
		Estimated:  true,
	}
}
