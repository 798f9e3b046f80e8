package http

import (
	"github.com/labstack/echo/v4"

	"github.com/flightprint/flightprint-api/internal/adapter/http/response"
	"github.com/flightprint/flightprint-api/internal/usecase"
)

// HistoryHandler serves stored search history.
type HistoryHandler struct {
	history usecase.HistoryUseCase
}

// NewHistoryHandler creates a HistoryHandler.
func NewHistoryHandler(history usecase.HistoryUseCase) *HistoryHandler {
	return &HistoryHandler{history: history}
}

// Recent handles GET /api/v1/searches/recent
//
// @Summary Recent searches
// @Tags searches
// @Produce json
// @Param limit query int false "Maximum entries (default 10, max 100)"
// @Success 200 {object} SwaggerSearchRecordList
// @Failure 400 {object} response.ErrorDetail
// @Failure 500 {object} response.ErrorDetail
// @Router /api/v1/searches/recent [get]
func (h *HistoryHandler) Recent(c echo.Context) error {
	limit, err := queryLimit(c, "limit")
	if err != nil {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	records, err := h.history.Recent(c.Request().Context(), limit)
	if err != nil {
		return handleError(c, err)
	}
	return response.OK(c, NewListResponse(records))
}

// PopularRoutes handles GET /api/v1/searches/popular
//
// @Summary Most searched routes
// @Tags searches
// @Produce json
// @Param limit query int false "Maximum entries (default 10, max 100)"
// @Success 200 {object} SwaggerPopularRouteList
// @Failure 400 {object} response.ErrorDetail
// @Failure 500 {object} response.ErrorDetail
// @Router /api/v1/searches/popular [get]
func (h *HistoryHandler) PopularRoutes(c echo.Context) error {
	limit, err := queryLimit(c, "limit")
	if err != nil {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	routes, err := h.history.PopularRoutes(c.Request().Context(), limit)
	if err != nil {
		return handleError(c, err)
	}
	return response.OK(c, NewListResponse(routes))
}

// Stats handles GET /api/v1/searches/stats
//
// @Summary Search statistics
// @Tags searches
// @Produce json
// @Success 200 {object} SwaggerStatsItem
// @Failure 500 {object} response.ErrorDetail
// @Router /api/v1/searches/stats [get]
func (h *HistoryHandler) Stats(c echo.Context) error {
	stats, err := h.history.Stats(c.Request().Context())
	if err != nil {
		return handleError(c, err)
	}
	return response.OK(c, NewItemResponse(stats))
}

// Cleanup handles DELETE /api/v1/searches
//
// @Summary Delete old searches
// @Tags searches
// @Produce json
// @Param days query int false "Keep searches newer than this many days" default(30)
// @Success 200 {object} CleanupResponseDTO
// @Failure 400 {object} response.ErrorDetail
// @Failure 500 {object} response.ErrorDetail
// @Router /api/v1/searches [delete]
func (h *HistoryHandler) Cleanup(c echo.Context) error {
	days, err := queryLimit(c, "days")
	if err != nil {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	deleted, err := h.history.Cleanup(c.Request().Context(), days)
	if err != nil {
		return handleError(c, err)
	}
	if days == 0 {
		days = usecase.DefaultRetentionDays
	}
	return response.OK(c, CleanupResponseDTO{
		Status:       response.StatusSuccess,
		DeletedCount: deleted,
		Days:         days,
	})
}
