package domain

// SearchResponse is the outcome of one flight search.
type SearchResponse struct {
	// Criteria contains the normalized search parameters
	Criteria SearchCriteria `json:"criteria"`

	// Flights contains the ranked results after truncation
	Flights []Flight `json:"flights"`

	// Metadata contains information about the search execution
	Metadata SearchMetadata `json:"metadata"`
}

// SearchMetadata contains counters about the search execution.
type SearchMetadata struct {
	// Results is the number of flights returned
	Results int `json:"results"`

	// TotalFound is the number of offers that normalized successfully, before truncation
	TotalFound int `json:"totalFound"`

	// OffersReceived is the number of raw offers the provider returned
	OffersReceived int `json:"offersReceived"`

	// OffersDropped is the number of raw offers that could not be normalized
	OffersDropped int `json:"offersDropped"`

	// Provider is the name of the provider that served the search
	Provider string `json:"provider"`

	// SearchTimeMs is the total search duration in milliseconds
	SearchTimeMs int64 `json:"searchTimeMs"`
}

// NewSearchResponse creates a SearchResponse and fills Results from the flight count.
func NewSearchResponse(criteria SearchCriteria, flights []Flight, metadata SearchMetadata) *SearchResponse {
	if flights == nil {
		flights = []Flight{}
	}
	metadata.Results = len(flights)

	return &SearchResponse{
		Criteria: criteria,
		Flights:  flights,
		Metadata: metadata,
	}
}
