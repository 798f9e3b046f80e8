package http

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/flightprint/flightprint-api/internal/adapter/http/response"
	"github.com/flightprint/flightprint-api/internal/airline"
	"github.com/flightprint/flightprint-api/internal/domain"
	"github.com/flightprint/flightprint-api/internal/usecase"
)

// DirectoryHandler serves the airport and airline reference data.
type DirectoryHandler struct {
	airports usecase.AirportUseCase
}

// NewDirectoryHandler creates a DirectoryHandler.
func NewDirectoryHandler(airports usecase.AirportUseCase) *DirectoryHandler {
	return &DirectoryHandler{airports: airports}
}

// SearchAirports handles GET /api/v1/airports/search
//
// @Summary Airport autocomplete
// @Description Matches code, name, city or country; queries under 2 characters return an empty list
// @Tags airports
// @Produce json
// @Param query query string true "Search text" example(london)
// @Success 200 {object} SwaggerAirportList
// @Failure 400 {object} response.ErrorDetail
// @Router /api/v1/airports/search [get]
func (h *DirectoryHandler) SearchAirports(c echo.Context) error {
	query := c.QueryParam("query")
	if strings.TrimSpace(query) == "" {
		return response.BadRequest(c, "Query parameter is required")
	}

	airports, err := h.airports.Search(c.Request().Context(), query)
	if err != nil {
		return handleError(c, err)
	}
	return response.OK(c, NewListResponse(airports))
}

// PopularAirports handles GET /api/v1/airports/popular
//
// @Summary Popular airports
// @Tags airports
// @Produce json
// @Success 200 {object} SwaggerAirportList
// @Router /api/v1/airports/popular [get]
func (h *DirectoryHandler) PopularAirports(c echo.Context) error {
	return response.OK(c, NewListResponse(h.airports.Popular(c.Request().Context())))
}

// GetAirport handles GET /api/v1/airports/:code
//
// @Summary Airport by IATA or ICAO code
// @Tags airports
// @Produce json
// @Param code path string true "IATA or ICAO code" example(JFK)
// @Success 200 {object} SwaggerAirportItem
// @Failure 404 {object} response.ErrorDetail
// @Router /api/v1/airports/{code} [get]
func (h *DirectoryHandler) GetAirport(c echo.Context) error {
	a, err := h.airports.Get(c.Request().Context(), c.Param("code"))
	if errors.Is(err, domain.ErrNotFound) {
		return response.NotFound(c, "Airport not found")
	}
	if err != nil {
		return handleError(c, err)
	}
	return response.OK(c, NewItemResponse(a))
}

// ListAirlines handles GET /api/v1/airlines
//
// @Summary Known airlines
// @Tags airlines
// @Produce json
// @Success 200 {object} SwaggerAirlineList
// @Router /api/v1/airlines [get]
func (h *DirectoryHandler) ListAirlines(c echo.Context) error {
	return response.OK(c, NewListResponse(airline.All()))
}
