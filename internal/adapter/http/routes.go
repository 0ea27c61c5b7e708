// Package http provides the HTTP handler layer for the travel planning API.
package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all travel planning API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *PlanningHandler) {
	// Health check endpoint (no version prefix)
	e.GET("/health", h.Health)

	// API v1 group
	api := e.Group("/api/v1")

	registerAPIRoutes(api, h)
}

// RegisterRoutesWithMiddleware registers routes with custom middleware.
// This allows for endpoint-specific middleware configuration.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *PlanningHandler, middleware ...echo.MiddlewareFunc) {
	// Health check endpoint (no version prefix, no middleware)
	e.GET("/health", h.Health)

	// API v1 group with middleware
	api := e.Group("/api/v1", middleware...)

	registerAPIRoutes(api, h)
}

func registerAPIRoutes(api *echo.Group, h *PlanningHandler) {
	// Planning group
	planning := api.Group("/planning")
	planning.GET("/flexible-dates", h.FindFlexibleDates)
	planning.GET("/compare-destinations", h.CompareDestinations)
	planning.GET("/optimize-budget", h.OptimizeBudget)
	planning.GET("/analytics", h.AnalyzeTrends)

	// Itineraries group
	itineraries := api.Group("/itineraries")
	itineraries.POST("", h.CreateItinerary)
	itineraries.GET("", h.ListItineraries)
	itineraries.GET("/:id", h.GetItinerary)
	itineraries.PUT("/:id", h.UpdateItinerary)
	itineraries.DELETE("/:id", h.DeleteItinerary)
}
