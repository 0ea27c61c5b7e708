// Package main is the entry point for the travel planning service.
//
//	@title						Travel Search and Planning API
//	@version					1.0.0
//	@description				A travel planning service that searches flexible dates, compares destinations, optimizes trips for a budget, analyzes price trends, and composes multi-leg itineraries.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/trip-planner/travel-search-and-planning-system/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/trip-planner/travel-search-and-planning-system/docs"

	// Application layers
	"github.com/trip-planner/travel-search-and-planning-system/internal/adapter/cache"
	planninghttp "github.com/trip-planner/travel-search-and-planning-system/internal/adapter/http"
	"github.com/trip-planner/travel-search-and-planning-system/internal/adapter/http/middleware"
	"github.com/trip-planner/travel-search-and-planning-system/internal/adapter/inventory"
	"github.com/trip-planner/travel-search-and-planning-system/internal/config"
	"github.com/trip-planner/travel-search-and-planning-system/internal/domain"
	"github.com/trip-planner/travel-search-and-planning-system/internal/infrastructure/logger"
	"github.com/trip-planner/travel-search-and-planning-system/internal/infrastructure/ratelimit"
	"github.com/trip-planner/travel-search-and-planning-system/internal/infrastructure/retry"
	"github.com/trip-planner/travel-search-and-planning-system/internal/infrastructure/timeutil"
	"github.com/trip-planner/travel-search-and-planning-system/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	log := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	logger.Global = log

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Msg("Configuration loaded")

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Setup middleware
	middleware.Setup(e, log.Logger)

	// Setup routes
	setupRoutes(e, cfg, log)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e, log)
}

// setupRoutes wires the inventories, cache, and planning engine into the HTTP
// layer.
func setupRoutes(e *echo.Echo, cfg *config.Config, log *logger.Logger) {
	clock := timeutil.NewRealClock()

	// Sample inventories, decorated with retry then rate limiting so retried
	// attempts also consume rate budget.
	limiter := ratelimit.NewInventoryLimiter(ratelimit.Config{
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		BurstSize:         cfg.RateLimit.BurstSize,
	})

	var flights domain.FlightInventory = inventory.NewFlightStore(clock)
	flights = inventory.NewResilientFlights(flights, retry.InventoryConfig)
	flights = inventory.NewThrottledFlights(flights, limiter)

	var hotels domain.HotelInventory = inventory.NewHotelStore()
	hotels = inventory.NewResilientHotels(hotels, retry.InventoryConfig)
	hotels = inventory.NewThrottledHotels(hotels, limiter)

	// Search cache: Redis when enabled, otherwise a no-op stand-in.
	var searchCache usecase.SearchCache = cache.NewNoOpCache()
	if cfg.Cache.Enabled {
		client, err := cache.NewRedisClient(context.Background(), cache.Config{
			Host:     cfg.Cache.Host,
			Port:     cfg.Cache.Port,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		searchCache = cache.NewRedisCache(client)
		log.Info().Str("addr", cfg.Cache.Host+":"+cfg.Cache.Port).Msg("Search cache enabled")
	}

	// Initialize the planning engine with config
	planningUseCase := usecase.NewPlanningUseCase(
		flights,
		hotels,
		usecase.NewItineraryStore(),
		searchCache,
		clock,
		log,
		usecase.Config{
			MaxConcurrent: cfg.Search.MaxConcurrent,
			CacheTTL:      cfg.Cache.TTL,
		},
	)

	// Initialize handler and routes
	handler := planninghttp.NewPlanningHandler(planningUseCase)
	planninghttp.RegisterRoutesWithMiddleware(e, handler, requestTimeout(cfg.Search.GlobalTimeout))

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// requestTimeout caps each API request, fan-out included, at the global
// search timeout.
func requestTimeout(timeout time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, cancel := context.WithTimeout(c.Request().Context(), timeout)
			defer cancel()
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
