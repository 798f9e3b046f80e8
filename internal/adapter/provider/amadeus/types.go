package amadeus

import (
	"strings"

	"github.com/flightprint/flightprint-api/internal/domain"
)

// searchResponse is the body of GET /v2/shopping/flight-offers.
type searchResponse struct {
	Data []domain.RawOffer `json:"data"`
	Meta struct {
		Count int `json:"count"`
	} `json:"meta"`
	Errors []apiError `json:"errors,omitempty"`
}

// tokenResponse is the body of POST /v1/security/oauth2/token.
type tokenResponse struct {
	AccessToken      string `json:"access_token"`
	TokenType        string `json:"token_type"`
	ExpiresIn        int    `json:"expires_in"`
	Error            string `json:"error,omitempty"`
	ErrorDescription string `json:"error_description,omitempty"`
}

type apiError struct {
	Status int    `json:"status"`
	Code   int    `json:"code"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

type errorBody struct {
	Errors           []apiError `json:"errors"`
	Error            string     `json:"error"`
	ErrorDescription string     `json:"error_description"`
}

// message picks the most specific description the body carries.
func (b errorBody) message() string {
	if len(b.Errors) > 0 {
		e := b.Errors[0]
		switch {
		case e.Detail != "":
			return e.Detail
		case e.Title != "":
			return e.Title
		}
	}
	if b.ErrorDescription != "" {
		return b.ErrorDescription
	}
	return strings.TrimSpace(b.Error)
}
