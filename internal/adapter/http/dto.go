package http

import (
	"github.com/flightprint/flightprint-api/internal/adapter/http/response"
	"github.com/flightprint/flightprint-api/internal/domain"
)

// SearchResponseDTO is the envelope of GET /api/v1/flights/search.
type SearchResponseDTO struct {
	Status     string        `json:"status"`
	Results    int           `json:"results"`
	TotalFound int           `json:"totalFound"`
	Data       SearchDataDTO `json:"data"`
	Meta       SearchMetaDTO `json:"meta"`
}

// SearchDataDTO carries the ranked flights.
type SearchDataDTO struct {
	Flights []domain.Flight `json:"flights"`
}

// SearchMetaDTO echoes the normalized criteria and execution counters.
type SearchMetaDTO struct {
	Criteria       domain.SearchCriteria `json:"criteria"`
	SortBy         domain.SortOption     `json:"sortBy"`
	OffersReceived int                   `json:"offersReceived"`
	OffersDropped  int                   `json:"offersDropped"`
	Provider       string                `json:"provider"`
	SearchTimeMs   int64                 `json:"searchTimeMs"`
}

// ToSearchResponseDTO converts a domain.SearchResponse to the API envelope.
func ToSearchResponseDTO(resp *domain.SearchResponse, sortBy domain.SortOption) SearchResponseDTO {
	flights := resp.Flights
	if flights == nil {
		flights = []domain.Flight{}
	}
	return SearchResponseDTO{
		Status:     response.StatusSuccess,
		Results:    len(flights),
		TotalFound: resp.Metadata.TotalFound,
		Data:       SearchDataDTO{Flights: flights},
		Meta: SearchMetaDTO{
			Criteria:       resp.Criteria,
			SortBy:         sortBy,
			OffersReceived: resp.Metadata.OffersReceived,
			OffersDropped:  resp.Metadata.OffersDropped,
			Provider:       resp.Metadata.Provider,
			SearchTimeMs:   resp.Metadata.SearchTimeMs,
		},
	}
}

// ListResponseDTO is the envelope of every list endpoint.
type ListResponseDTO[T any] struct {
	Status  string `json:"status"`
	Results int    `json:"results"`
	Data    []T    `json:"data"`
}

// NewListResponse wraps items; nil becomes an empty list.
func NewListResponse[T any](items []T) ListResponseDTO[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponseDTO[T]{Status: response.StatusSuccess, Results: len(items), Data: items}
}

// ItemResponseDTO is the envelope of single-item endpoints.
type ItemResponseDTO[T any] struct {
	Status string `json:"status"`
	Data   T      `json:"data"`
}

// NewItemResponse wraps one item.
func NewItemResponse[T any](item T) ItemResponseDTO[T] {
	return ItemResponseDTO[T]{Status: response.StatusSuccess, Data: item}
}

// CleanupResponseDTO reports a history cleanup.
type CleanupResponseDTO struct {
	Status       string `json:"status"`
	DeletedCount int64  `json:"deletedCount"`
	Days         int    `json:"days"`
}
