package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flightprint/flightprint-api/internal/domain"
)

func TestNormalizeOffer_DirectOneWayEstimated(t *testing.T) {
	raw := rawOffer("A", "199.90")

	f, err := NormalizeOffer(raw, "BOS", "MIA", testDepartureDate)

	require.NoError(t, err)
	assert.Equal(t, "A", f.FlightOfferID)
	assert.Equal(t, 0, f.Stops)
	assert.Equal(t, domain.TravelClassEconomy, f.TravelClass)
	assert.Equal(t, 135.0, f.CarbonEmissions.Weight)
	assert.Equal(t, domain.WeightUnitKG, f.CarbonEmissions.WeightUnit)
	assert.True(t, f.CarbonEmissions.Estimated)
	assert.Equal(t, domain.EcoInsights{TreesNeeded: 7, CarKmEquivalent: 1125, HomeEnergyDays: 4.5}, f.EcoInsights)
	assert.Equal(t, []domain.AirlineInfo{{Code: "AA", Name: "American Airlines"}}, f.Airlines)
	assert.Equal(t, testDepartureDate, f.DepartureDate)
}

func TestNormalizeOffer_TwoConnections(t *testing.T) {
	raw := rawOffer("B", "300", rawItinerary("PT6H",
		rawSegment("AA", "BOS", "ORD", 6),
		rawSegment("AA", "ORD", "DEN", 9),
		rawSegment("UA", "DEN", "MIA", 12),
	))

	f, err := NormalizeOffer(raw, "BOS", "MIA", testDepartureDate)

	require.NoError(t, err)
	assert.Equal(t, 2, f.Stops)
	assert.Equal(t, 189.0, f.CarbonEmissions.Weight)
	assert.Equal(t, []domain.AirlineInfo{
		{Code: "AA", Name: "American Airlines"},
		{Code: "UA", Name: "United Airlines"},
	}, f.Airlines)
	require.Len(t, f.Itineraries, 1)
	assert.Len(t, f.Itineraries[0].Layovers(), 2)
}

func TestNormalizeOffer_ConnectionWithTechnicalStop(t *testing.T) {
	second := rawSegment("AA", "ORD", "MIA", 9)
	second.NumberOfStops = intRef(1)
	raw := rawOffer("B2", "280", rawItinerary("PT5H",
		rawSegment("AA", "BOS", "ORD", 6),
		second,
	))

	f, err := NormalizeOffer(raw, "BOS", "MIA", testDepartureDate)

	require.NoError(t, err)
	assert.Equal(t, 2, f.Stops, "one connection plus one technical stop")
	assert.Equal(t, 189.0, f.CarbonEmissions.Weight)
	assert.True(t, f.CarbonEmissions.Estimated)
}

func TestNormalizeOffer_RoundTripDoublesEstimate(t *testing.T) {
	raw := rawOffer("C", "420",
		rawItinerary("PT3H", rawSegment("B6", "BOS", "MIA", 8)),
		rawItinerary("PT3H", rawSegment("B6", "MIA", "BOS", 18)),
	)

	f, err := NormalizeOffer(raw, "BOS", "MIA", testDepartureDate)

	require.NoError(t, err)
	assert.True(t, f.IsRoundTrip())
	assert.Equal(t, 0, f.Stops)
	assert.Equal(t, 270.0, f.CarbonEmissions.Weight)
	assert.Len(t, f.Airlines, 1)
	assert.Equal(t, "JetBlue Airways", f.Airlines[0].Name)
}

func TestNormalizeOffer_UsesRouteTable(t *testing.T) {
	raw := rawOffer("T", "250", rawItinerary("PT6H", rawSegment("DL", "JFK", "LAX", 8)))

	f, err := NormalizeOffer(raw, "JFK", "LAX", testDepartureDate)

	require.NoError(t, err)
	assert.Equal(t, 358.0, f.CarbonEmissions.Weight)
}

func TestNormalizeOffer_TechnicalStops(t *testing.T) {
	seg := rawSegment("QF", "SYD", "LHR", 1)
	seg.NumberOfStops = intRef(1)
	raw := rawOffer("Q", "1500", rawItinerary("PT23H", seg))

	f, err := NormalizeOffer(raw, "SYD", "LHR", testDepartureDate)

	require.NoError(t, err)
	assert.Equal(t, 1, f.Stops)
	assert.False(t, f.IsDirect())
	assert.Equal(t, 1, f.Itineraries[0].Segments[0].NumberOfStops)
}

func TestNormalizeOffer_DeclaredEmissions(t *testing.T) {
	raw := rawOffer("D", "500", rawItinerary("PT5H",
		rawSegment("BA", "JFK", "BOS", 6),
		rawSegment("BA", "BOS", "LHR", 9),
	))
	raw.TravelerPricings = []domain.RawTravelerPricing{
		{FareDetailsBySegment: []domain.RawFareDetail{
			{Cabin: "BUSINESS", CO2Emissions: []domain.RawCO2Emission{{Weight: 120, WeightUnit: "KG"}, {Weight: 999}}},
			{Cabin: "BUSINESS", CO2Emissions: []domain.RawCO2Emission{{Weight: 310, WeightUnit: "KG"}}},
			{Cabin: "BUSINESS"},
		}},
		{FareDetailsBySegment: []domain.RawFareDetail{
			{Cabin: "ECONOMY", CO2Emissions: []domain.RawCO2Emission{{Weight: 5000}}},
		}},
	}

	f, err := NormalizeOffer(raw, "JFK", "LHR", testDepartureDate)

	require.NoError(t, err)
	assert.Equal(t, 430.0, f.CarbonEmissions.Weight)
	assert.False(t, f.CarbonEmissions.Estimated)
	assert.Equal(t, domain.TravelClassBusiness, f.TravelClass)
	assert.Equal(t, domain.TravelClassBusiness, f.CarbonEmissions.Cabin)
}

func TestNormalizeOffer_ZeroDeclaredEmissionsFallsBack(t *testing.T) {
	raw := rawOffer("Z", "100")
	raw.TravelerPricings[0].FareDetailsBySegment[0].CO2Emissions = []domain.RawCO2Emission{{Weight: 0}}

	f, err := NormalizeOffer(raw, "BOS", "MIA", testDepartureDate)

	require.NoError(t, err)
	assert.True(t, f.CarbonEmissions.Estimated)
	assert.Equal(t, 135.0, f.CarbonEmissions.Weight)
}

func TestNormalizeOffer_PriceDefaults(t *testing.T) {
	tests := []struct {
		name  string
		price domain.RawPrice
		want  domain.PriceInfo
	}{
		{
			name:  "full price",
			price: domain.RawPrice{Currency: "EUR", Total: "120.50", Base: "100.00", GrandTotal: "130.25"},
			want:  domain.PriceInfo{Currency: "EUR", Total: 120.50, Base: 100, GrandTotal: 130.25},
		},
		{
			name:  "grand total defaults to total",
			price: domain.RawPrice{Currency: "USD", Total: "99.99"},
			want:  domain.PriceInfo{Currency: "USD", Total: 99.99, GrandTotal: 99.99},
		},
		{
			name:  "currency defaults to USD",
			price: domain.RawPrice{Total: "10", Base: "junk"},
			want:  domain.PriceInfo{Currency: "USD", Total: 10, GrandTotal: 10},
		},
		{
			name:  "zero total is allowed",
			price: domain.RawPrice{Total: "0"},
			want:  domain.PriceInfo{Currency: "USD"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := rawOffer("P", "")
			raw.Price = &tt.price

			f, err := NormalizeOffer(raw, "BOS", "MIA", testDepartureDate)

			require.NoError(t, err)
			assert.Equal(t, tt.want, f.Price)
		})
	}
}

func TestNormalizeOffer_Defaults(t *testing.T) {
	raw := rawOffer("E", "50")
	raw.TravelerPricings = nil
	raw.Itineraries[0].Segments[0].Aircraft = &domain.RawAircraft{Code: "32N"}

	f, err := NormalizeOffer(raw, "BOS", "MIA", testDepartureDate)

	require.NoError(t, err)
	assert.Equal(t, domain.TravelClassEconomy, f.TravelClass)
	assert.Equal(t, 0, f.NumberOfBookableSeats)
	assert.NotNil(t, f.ValidatingAirlineCodes)
	assert.Equal(t, "32N", f.Itineraries[0].Segments[0].Aircraft)
	assert.Equal(t, 0, f.Itineraries[0].Segments[0].NumberOfStops)
}

func TestNormalizeOffer_UnknownCarrierKeepsCode(t *testing.T) {
	raw := rawOffer("U", "80", rawItinerary("PT1H", rawSegment("ZZ", "BOS", "MIA", 8)))

	f, err := NormalizeOffer(raw, "BOS", "MIA", testDepartureDate)

	require.NoError(t, err)
	assert.Equal(t, []domain.AirlineInfo{{Code: "ZZ", Name: "ZZ"}}, f.Airlines)
}

func TestNormalizeOffer_Errors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*domain.RawOffer)
		reason string
	}{
		{name: "no itineraries", modify: func(o *domain.RawOffer) { o.Itineraries = nil }, reason: "no itineraries"},
		{
			name: "three itineraries",
			modify: func(o *domain.RawOffer) {
				it := o.Itineraries[0]
				o.Itineraries = []domain.RawItinerary{it, it, it}
			},
			reason: "3 itineraries",
		},
		{name: "empty itinerary", modify: func(o *domain.RawOffer) { o.Itineraries[0].Segments = nil }, reason: "no segments"},
		{name: "missing price", modify: func(o *domain.RawOffer) { o.Price = nil }, reason: "missing price.total"},
		{name: "blank total", modify: func(o *domain.RawOffer) { o.Price.Total = " " }, reason: "missing price.total"},
		{name: "unparseable total", modify: func(o *domain.RawOffer) { o.Price.Total = "abc" }, reason: "unparseable"},
		{name: "infinite total", modify: func(o *domain.RawOffer) { o.Price.Total = "Inf" }, reason: "unparseable"},
		{name: "negative total", modify: func(o *domain.RawOffer) { o.Price.Total = "-1" }, reason: "negative"},
		{name: "missing departure", modify: func(o *domain.RawOffer) { o.Itineraries[0].Segments[0].Departure = nil }, reason: "departure"},
		{name: "bad arrival time", modify: func(o *domain.RawOffer) { o.Itineraries[0].Segments[0].Arrival.At = "noon" }, reason: "arrival"},
		{name: "negative technical stops", modify: func(o *domain.RawOffer) { o.Itineraries[0].Segments[0].NumberOfStops = intRef(-1) }, reason: "negative numberOfStops"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := rawOffer("bad", "100")
			tt.modify(&raw)

			_, err := NormalizeOffer(raw, "BOS", "MIA", testDepartureDate)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrOfferProcessing)
			assert.Contains(t, err.Error(), tt.reason)
		})
	}
}

func TestNormalizeAll_DropsMalformedOffers(t *testing.T) {
	bad := rawOffer("2", "100")
	bad.Price = nil
	raws := []domain.RawOffer{rawOffer("1", "100"), bad, rawOffer("3", "90")}

	results := NormalizeAll(raws, "BOS", "MIA", testDepartureDate)

	require.Len(t, results, 3)
	assert.True(t, results[0].OK())
	assert.False(t, results[1].OK())
	assert.Equal(t, 1, results[1].Index)
	assert.Equal(t, "2", results[1].OfferID)
	assert.True(t, results[2].OK())
	assert.Equal(t, "3", results[2].Flight.FlightOfferID)
}

func TestNormalizeAll_Empty(t *testing.T) {
	assert.Empty(t, NormalizeAll(nil, "BOS", "MIA", testDepartureDate))
}

func TestNormalizeOffer_Idempotent(t *testing.T) {
	raw := rawOffer("I", "310.40",
		rawItinerary("PT4H", rawSegment("AA", "BOS", "ORD", 6), rawSegment("UA", "ORD", "MIA", 9)),
		rawItinerary("PT4H", rawSegment("UA", "MIA", "BOS", 15)),
	)
	raw.NumberOfBookableSeats = intRef(4)
	raw.ValidatingAirlineCodes = []string{"AA"}

	first, err := NormalizeOffer(raw, "BOS", "MIA", testDepartureDate)
	require.NoError(t, err)
	second, err := NormalizeOffer(raw, "BOS", "MIA", testDepartureDate)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, time.Time{}, first.FetchedAt)
}

func TestNormalizeOffer_AirlinesHaveNoDuplicates(t *testing.T) {
	raw := rawOffer("X", "100",
		rawItinerary("PT5H", rawSegment("AA", "BOS", "ORD", 6), rawSegment("AA", "ORD", "DFW", 9), rawSegment("DL", "DFW", "MIA", 12)),
		rawItinerary("PT5H", rawSegment("DL", "MIA", "ATL", 14), rawSegment("AA", "ATL", "BOS", 17)),
	)

	f, err := NormalizeOffer(raw, "BOS", "MIA", testDepartureDate)
	require.NoError(t, err)

	codes := make(map[string]int)
	for _, a := range f.Airlines {
		codes[a.Code]++
	}
	assert.Equal(t, map[string]int{"AA": 1, "DL": 1}, codes)
	assert.Equal(t, "AA", f.Airlines[0].Code)
	assert.Equal(t, 3, f.Stops)
}
