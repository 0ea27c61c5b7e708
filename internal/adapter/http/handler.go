// Package http provides the HTTP handler layer for the travel planning API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/trip-planner/travel-search-and-planning-system/internal/adapter/http/response"
	"github.com/trip-planner/travel-search-and-planning-system/internal/domain"
	"github.com/trip-planner/travel-search-and-planning-system/internal/usecase"
)

// PlanningHandler handles HTTP requests for the planning endpoints.
type PlanningHandler struct {
	useCase usecase.PlanningUseCase
}

// NewPlanningHandler creates a new PlanningHandler with the given use case.
func NewPlanningHandler(uc usecase.PlanningUseCase) *PlanningHandler {
	return &PlanningHandler{
		useCase: uc,
	}
}

// FindFlexibleDates handles GET /api/v1/planning/flexible-dates
//
// @Summary Search flexible travel dates
// @Description Price every departure/return pair of a fixed trip length inside a date range
// @Tags planning
// @Produce json
// @Param origin query string true "Origin airport code or city"
// @Param destination query string true "Destination airport code or city"
// @Param startDate query string true "First candidate departure date (YYYY-MM-DD)"
// @Param endDate query string true "Latest acceptable return date (YYYY-MM-DD)"
// @Param passengers query int false "Number of travelers (default 1)"
// @Param tripLength query int false "Trip length in days (default 3)"
// @Success 200 {object} domain.FlexibleDateSearchResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 503 {object} response.ErrorDetail "Service unavailable"
// @Router /api/v1/planning/flexible-dates [get]
func (h *PlanningHandler) FindFlexibleDates(c echo.Context) error {
	req, err := ParseFlexibleDateRequest(c)
	if err != nil {
		return h.handleValidationError(c, err)
	}

	result, err := h.useCase.FindFlexibleDates(c.Request().Context(), req)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.SearchResults(c, result)
}

// CompareDestinations handles GET /api/v1/planning/compare-destinations
//
// @Summary Compare destinations
// @Description Price one fixed date pair across several destinations
// @Tags planning
// @Produce json
// @Param origin query string true "Origin airport code or city"
// @Param destinations query string true "Comma-separated destination cities or codes"
// @Param departureDate query string true "Departure date (YYYY-MM-DD)"
// @Param returnDate query string true "Return date (YYYY-MM-DD)"
// @Param travelers query int false "Party size (default 1)"
// @Param includeHotels query bool false "Include the cheapest hotel stay per destination"
// @Success 200 {object} domain.PriceComparisonResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 503 {object} response.ErrorDetail "Service unavailable"
// @Router /api/v1/planning/compare-destinations [get]
func (h *PlanningHandler) CompareDestinations(c echo.Context) error {
	req, err := ParsePriceComparisonRequest(c)
	if err != nil {
		return h.handleValidationError(c, err)
	}

	result, err := h.useCase.CompareDestinations(c.Request().Context(), req)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.SearchResults(c, result)
}

// OptimizeBudget handles GET /api/v1/planning/optimize-budget
//
// @Summary Optimize trips for a budget
// @Description Enumerate trip candidates inside a window and rank those within budget by value score
// @Tags planning
// @Produce json
// @Param origin query string true "Origin airport code or city"
// @Param destinations query string true "Comma-separated preferred destinations"
// @Param earliestDeparture query string true "Earliest departure date (YYYY-MM-DD)"
// @Param latestReturn query string true "Latest return date (YYYY-MM-DD)"
// @Param budget query number true "Total budget for flights plus hotel"
// @Param travelers query int false "Party size (default 1)"
// @Param minNights query int false "Minimum stay length (default 2)"
// @Param maxNights query int false "Maximum stay length (default 7)"
// @Param minHotelStars query int false "Minimum hotel star rating (default 3)"
// @Success 200 {object} domain.BudgetOptimizerResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 503 {object} response.ErrorDetail "Service unavailable"
// @Router /api/v1/planning/optimize-budget [get]
func (h *PlanningHandler) OptimizeBudget(c echo.Context) error {
	req, err := ParseBudgetOptimizerRequest(c)
	if err != nil {
		return h.handleValidationError(c, err)
	}

	result, err := h.useCase.OptimizeBudget(c.Request().Context(), req)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.SearchResults(c, result)
}

// AnalyzeTrends handles GET /api/v1/planning/analytics
//
// @Summary Analyze price trends
// @Description Sample flight and hotel prices across a date grid and derive insights
// @Tags planning
// @Produce json
// @Param origin query string true "Origin airport code or city"
// @Param destinations query string true "Comma-separated destinations to analyze"
// @Param startDate query string true "Start of the analysis period (YYYY-MM-DD)"
// @Param endDate query string true "End of the analysis period (YYYY-MM-DD)"
// @Success 200 {object} domain.TripAnalyticsResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 503 {object} response.ErrorDetail "Service unavailable"
// @Router /api/v1/planning/analytics [get]
func (h *PlanningHandler) AnalyzeTrends(c echo.Context) error {
	req, err := ParseTripAnalyticsRequest(c)
	if err != nil {
		return h.handleValidationError(c, err)
	}

	result, err := h.useCase.AnalyzeTrends(c.Request().Context(), req)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.SearchResults(c, result)
}

// CreateItinerary handles POST /api/v1/itineraries
//
// @Summary Create an itinerary
// @Description Compose a multi-leg itinerary from the requested segments and store it
// @Tags itineraries
// @Accept json
// @Produce json
// @Param request body domain.CreateItineraryRequest true "Itinerary definition"
// @Success 201 {object} domain.SavedItinerary
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 503 {object} response.ErrorDetail "Service unavailable"
// @Router /api/v1/itineraries [post]
func (h *PlanningHandler) CreateItinerary(c echo.Context) error {
	var req domain.CreateItineraryRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	result, err := h.useCase.CreateItinerary(c.Request().Context(), req)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.Created(c, result)
}

// GetItinerary handles GET /api/v1/itineraries/:id
//
// @Summary Get an itinerary
// @Tags itineraries
// @Produce json
// @Param id path string true "Itinerary ID"
// @Success 200 {object} domain.SavedItinerary
// @Failure 404 {object} response.ErrorDetail "Itinerary not found"
// @Router /api/v1/itineraries/{id} [get]
func (h *PlanningHandler) GetItinerary(c echo.Context) error {
	result, err := h.useCase.GetItinerary(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, result)
}

// ListItineraries handles GET /api/v1/itineraries
//
// @Summary List itineraries
// @Description Return all stored itineraries, newest first
// @Tags itineraries
// @Produce json
// @Success 200 {array} domain.SavedItinerary
// @Router /api/v1/itineraries [get]
func (h *PlanningHandler) ListItineraries(c echo.Context) error {
	result, err := h.useCase.ListItineraries(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, result)
}

// UpdateItinerary handles PUT /api/v1/itineraries/:id
//
// @Summary Update an itinerary
// @Description Apply top-level field changes and per-leg flight or hotel swaps
// @Tags itineraries
// @Accept json
// @Produce json
// @Param id path string true "Itinerary ID"
// @Param request body domain.UpdateItineraryRequest true "Changes to apply"
// @Success 200 {object} domain.SavedItinerary
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "Itinerary not found"
// @Router /api/v1/itineraries/{id} [put]
func (h *PlanningHandler) UpdateItinerary(c echo.Context) error {
	var req domain.UpdateItineraryRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	// The path is authoritative for which itinerary is addressed.
	req.ItineraryID = c.Param("id")

	result, err := h.useCase.UpdateItinerary(c.Request().Context(), req)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, result)
}

// DeleteItinerary handles DELETE /api/v1/itineraries/:id
//
// @Summary Delete an itinerary
// @Tags itineraries
// @Param id path string true "Itinerary ID"
// @Success 204 "Deleted"
// @Failure 404 {object} response.ErrorDetail "Itinerary not found"
// @Router /api/v1/itineraries/{id} [delete]
func (h *PlanningHandler) DeleteItinerary(c echo.Context) error {
	if err := h.useCase.DeleteItinerary(c.Request().Context(), c.Param("id")); err != nil {
		return h.handleError(c, err)
	}
	return response.NoContent(c)
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *PlanningHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *PlanningHandler) handleError(c echo.Context, err error) error {
	if errors.Is(err, domain.ErrItineraryNotFound) {
		return response.NotFound(c, MsgItineraryNotFound)
	}

	if errors.Is(err, domain.ErrInvalidRequest) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	// Check for context deadline exceeded (timeout)
	if errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}

	// Check for context cancelled
	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}

	// Inventory backend failures surface as 503
	var invErr *domain.InventoryError
	if errors.As(err, &invErr) || errors.Is(err, domain.ErrInventoryUnavailable) {
		return response.ServiceUnavailable(c)
	}

	// Default to internal server error
	return response.InternalServerError(c)
}

// Health handles GET /health
// Simple health check endpoint.
func (h *PlanningHandler) Health(c echo.Context) error {
	return response.Health(c)
}
