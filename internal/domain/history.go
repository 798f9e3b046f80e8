package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=history.go -destination=mock_history.go -package=domain

// SearchRecord is one persisted search request.
type SearchRecord struct {
	Origin        string      `json:"origin" bson:"origin"`
	Destination   string      `json:"destination" bson:"destination"`
	DepartureDate time.Time   `json:"departureDate" bson:"departureDate"`
	ReturnDate    *time.Time  `json:"returnDate,omitempty" bson:"returnDate,omitempty"`
	TripType      string      `json:"tripType" bson:"tripType"`
	Adults        int         `json:"adults" bson:"adults"`
	TravelClass   TravelClass `json:"travelClass" bson:"travelClass"`
	ResultCount   int         `json:"resultCount" bson:"resultCount"`
	SearchedAt    time.Time   `json:"searchedAt" bson:"searchedAt"`
}

// NewSearchRecord builds a SearchRecord from validated criteria.
func NewSearchRecord(criteria SearchCriteria, resultCount int, searchedAt time.Time) SearchRecord {
	record := SearchRecord{
		Origin:      criteria.Origin,
		Destination: criteria.Destination,
		TripType:    criteria.TripType(),
		Adults:      criteria.Adults,
		TravelClass: criteria.TravelClass,
		ResultCount: resultCount,
		SearchedAt:  searchedAt,
	}
	if dep, err := time.Parse(DateLayout, criteria.DepartureDate); err == nil {
		record.DepartureDate = dep
	}
	if criteria.ReturnDate != "" {
		if ret, err := time.Parse(DateLayout, criteria.ReturnDate); err == nil {
			record.ReturnDate = &ret
		}
	}
	return record
}

// PopularRoute aggregates searches for one origin/destination pair.
type PopularRoute struct {
	Origin       string    `json:"origin" bson:"origin"`
	Destination  string    `json:"destination" bson:"destination"`
	SearchCount  int       `json:"searchCount" bson:"searchCount"`
	LastSearched time.Time `json:"lastSearched" bson:"lastSearched"`
	AvgAdults    float64   `json:"avgAdults" bson:"avgAdults"`
}

// BucketCount is the number of searches sharing one value of a field.
type BucketCount struct {
	Key   string `json:"key" bson:"_id"`
	Count int    `json:"count" bson:"count"`
}

// SearchStats summarizes stored searches.
type SearchStats struct {
	TotalSearches int            `json:"totalSearches"`
	TripTypes     []BucketCount  `json:"tripTypes"`
	TravelClasses []BucketCount  `json:"travelClasses"`
	AvgAdults     float64        `json:"avgAdults"`
	Recent        []SearchRecord `json:"recent"`
}

// SearchRecorder stores completed searches.
type SearchRecorder interface {
	Record(ctx context.Context, record SearchRecord) error
}

// SearchHistory reads and prunes stored searches.
type SearchHistory interface {
	Recent(ctx context.Context, limit int) ([]SearchRecord, error)
	PopularRoutes(ctx context.Context, limit int) ([]PopularRoute, error)
	Stats(ctx context.Context) (SearchStats, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// NopRecorder discards every record.
type NopRecorder struct{}

// Record implements SearchRecorder.
func (NopRecorder) Record(context.Context, SearchRecord) error { return nil }
