package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the flight search domain.
var (
	// ErrInvalidRequest is the parent of every search validation error.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvalidAirportCode is returned when origin or destination is not a 3-letter code.
	ErrInvalidAirportCode = fmt.Errorf("%w: invalid airport code", ErrInvalidRequest)

	// ErrInvalidDateFormat is returned when the departure date cannot be parsed.
	ErrInvalidDateFormat = fmt.Errorf("%w: invalid date format", ErrInvalidRequest)

	// ErrPastDepartureDate is returned when the departure date is before today.
	ErrPastDepartureDate = fmt.Errorf("%w: departure date is in the past", ErrInvalidRequest)

	// ErrInvalidReturnDate is returned when the return date is malformed or precedes departure.
	ErrInvalidReturnDate = fmt.Errorf("%w: invalid return date", ErrInvalidRequest)

	// ErrInvalidPassengers is returned when the adult count is outside 1-9.
	ErrInvalidPassengers = fmt.Errorf("%w: invalid number of adults", ErrInvalidRequest)

	// ErrInvalidTravelClass is returned for an unsupported travel class.
	ErrInvalidTravelClass = fmt.Errorf("%w: invalid travel class", ErrInvalidRequest)

	// ErrProviderUnavailable indicates the flight search provider could not serve the request.
	ErrProviderUnavailable = errors.New("provider unavailable")

	// ErrProviderTimeout indicates the provider did not answer in time.
	ErrProviderTimeout = errors.New("provider timeout")

	// ErrOfferProcessing is the parent of every per-offer normalization failure.
	ErrOfferProcessing = errors.New("offer processing failed")

	// ErrNotFound is returned by lookups that have no match.
	ErrNotFound = errors.New("not found")
)

// ProviderError wraps a failure returned by a flight search provider.
type ProviderError struct {
	Provider  string
	Err       error
	Retryable bool
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

// Unwrap returns the underlying error.
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError creates a non-retryable ProviderError.
func NewProviderError(provider string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Err: err}
}

// NewRetryableProviderError creates a ProviderError that callers may retry.
func NewRetryableProviderError(provider string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Err: err, Retryable: true}
}

// NewProviderTimeoutError creates a ProviderError wrapping ErrProviderTimeout.
func NewProviderTimeoutError(provider string) *ProviderError {
	return &ProviderError{Provider: provider, Err: ErrProviderTimeout, Retryable: true}
}

// NewProviderUnavailableError creates a ProviderError wrapping ErrProviderUnavailable
// together with the cause, when one is known.
func NewProviderUnavailableError(provider string, cause error) *ProviderError {
	err := ErrProviderUnavailable
	if cause != nil {
		err = fmt.Errorf("%w: %v", ErrProviderUnavailable, cause)
	}
	return &ProviderError{Provider: provider, Err: err}
}

// OfferProcessingError describes why a single raw offer was dropped.
type OfferProcessingError struct {
	OfferID string
	Reason  string
}

// Error implements the error interface.
func (e *OfferProcessingError) Error() string {
	return fmt.Sprintf("offer %q: %s", e.OfferID, e.Reason)
}

// Unwrap makes every OfferProcessingError match ErrOfferProcessing.
func (e *OfferProcessingError) Unwrap() error {
	return ErrOfferProcessing
}

// NewOfferProcessingError creates an OfferProcessingError with a formatted reason.
func NewOfferProcessingError(offerID, format string, args ...interface{}) *OfferProcessingError {
	return &OfferProcessingError{OfferID: offerID, Reason: fmt.Sprintf(format, args...)}
}

// IsInvalidRequest checks if the error is a validation error.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}

// IsProviderTimeout checks if the error is a provider timeout.
func IsProviderTimeout(err error) bool {
	return errors.Is(err, ErrProviderTimeout)
}

// IsProviderUnavailable checks if the error means the provider could not serve the search.
func IsProviderUnavailable(err error) bool {
	var pe *ProviderError
	return errors.Is(err, ErrProviderUnavailable) || errors.As(err, &pe)
}
