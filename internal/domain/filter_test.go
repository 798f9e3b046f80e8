package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(i int) *int {
	return &i
}

func floatPtr(f float64) *float64 {
	return &f
}

func TestSortOption_IsValid(t *testing.T) {
	tests := []struct {
		name   string
		option SortOption
		want   bool
	}{
		{name: "best value is valid", option: SortByBestValue, want: true},
		{name: "price is valid", option: SortByPrice, want: true},
		{name: "duration is valid", option: SortByDuration, want: true},
		{name: "emissions is valid", option: SortByEmissions, want: true},
		{name: "invalid option", option: SortOption("departure"), want: false},
		{name: "empty option", option: SortOption(""), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.option.IsValid())
		})
	}
}

func TestParseSortOption(t *testing.T) {
	tests := []struct {
		input    string
		expected SortOption
	}{
		{input: "best", expected: SortByBestValue},
		{input: "PRICE", expected: SortByPrice},
		{input: "duration", expected: SortByDuration},
		{input: " emissions ", expected: SortByEmissions},
		{input: "invalid", expected: SortByBestValue},
		{input: "", expected: SortByBestValue},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseSortOption(tt.input))
		})
	}
}

func TestDurationRange(t *testing.T) {
	tests := []struct {
		name      string
		dr        *DurationRange
		minutes   int
		wantValid bool
		wantIn    bool
	}{
		{name: "nil range", dr: nil, minutes: 500, wantValid: true, wantIn: true},
		{name: "inside", dr: &DurationRange{MinMinutes: intPtr(60), MaxMinutes: intPtr(300)}, minutes: 120, wantValid: true, wantIn: true},
		{name: "at max boundary", dr: &DurationRange{MaxMinutes: intPtr(300)}, minutes: 300, wantValid: true, wantIn: true},
		{name: "below min", dr: &DurationRange{MinMinutes: intPtr(60)}, minutes: 30, wantValid: true, wantIn: false},
		{name: "min above max", dr: &DurationRange{MinMinutes: intPtr(400), MaxMinutes: intPtr(300)}, minutes: 350, wantValid: false, wantIn: false},
		{name: "negative", dr: &DurationRange{MinMinutes: intPtr(-1)}, minutes: 10, wantValid: false, wantIn: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantValid, tt.dr.IsValid())
			assert.Equal(t, tt.wantIn, tt.dr.Contains(tt.minutes))
		})
	}
}

func TestFilterOptions_MatchesFlight(t *testing.T) {
	flight := Flight{
		Price:           PriceInfo{Currency: "USD", Total: 450, GrandTotal: 480},
		Stops:           1,
		Airlines:        []AirlineInfo{{Code: "UA"}, {Code: "AC"}},
		CarbonEmissions: CarbonEmissions{Weight: 210, WeightUnit: WeightUnitKG},
		Itineraries:     []Itinerary{{Duration: "PT7H10M"}},
	}

	tests := []struct {
		name   string
		filter *FilterOptions
		want   bool
	}{
		{name: "nil filter", filter: nil, want: true},
		{name: "empty filter", filter: &FilterOptions{}, want: true},
		{name: "price under grand total", filter: &FilterOptions{MaxPrice: floatPtr(470)}, want: false},
		{name: "price at grand total", filter: &FilterOptions{MaxPrice: floatPtr(480)}, want: true},
		{name: "direct only", filter: &FilterOptions{MaxStops: intPtr(0)}, want: false},
		{name: "one stop allowed", filter: &FilterOptions{MaxStops: intPtr(1)}, want: true},
		{name: "airline matches second carrier", filter: &FilterOptions{Airlines: []string{"ac"}}, want: true},
		{name: "airline absent", filter: &FilterOptions{Airlines: []string{"DL", "BA"}}, want: false},
		{name: "emissions cap exceeded", filter: &FilterOptions{MaxEmissionsKg: floatPtr(200)}, want: false},
		{name: "emissions cap met", filter: &FilterOptions{MaxEmissionsKg: floatPtr(210)}, want: true},
		{name: "duration too long", filter: &FilterOptions{DurationRange: &DurationRange{MaxMinutes: intPtr(400)}}, want: false},
		{name: "duration fits", filter: &FilterOptions{DurationRange: &DurationRange{MaxMinutes: intPtr(430)}}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.MatchesFlight(flight))
		})
	}
}

func TestFilterOptions_IsEmpty(t *testing.T) {
	var nilFilter *FilterOptions
	assert.True(t, nilFilter.IsEmpty())
	assert.True(t, (&FilterOptions{}).IsEmpty())
	assert.False(t, (&FilterOptions{MaxStops: intPtr(0)}).IsEmpty())
}
