// Package usecase implements the travel planning engines. Each engine
// enumerates a search space (date pairs, destinations, trip candidates),
// prices every unit against the flight and hotel inventories with bounded
// concurrency, and aggregates the survivors into a ranked response.
package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/trip-planner/travel-search-and-planning-system/internal/domain"
	"github.com/trip-planner/travel-search-and-planning-system/internal/infrastructure/logger"
	"github.com/trip-planner/travel-search-and-planning-system/internal/infrastructure/timeutil"
)

//go:generate mockgen -source=planning.go -destination=mock_planning.go -package=usecase

// PlanningUseCase defines the planning engine contract consumed by the HTTP
// layer.
type PlanningUseCase interface {
	// FindFlexibleDates prices every departure/return pair of a fixed trip
	// length inside a date range.
	FindFlexibleDates(ctx context.Context, req domain.FlexibleDateSearchRequest) (*domain.FlexibleDateSearchResponse, error)

	// CompareDestinations prices one fixed date pair across several
	// destinations.
	CompareDestinations(ctx context.Context, req domain.PriceComparisonRequest) (*domain.PriceComparisonResponse, error)

	// OptimizeBudget enumerates trip candidates inside a window and ranks
	// those within budget by value score.
	OptimizeBudget(ctx context.Context, req domain.BudgetOptimizerRequest) (*domain.BudgetOptimizerResponse, error)

	// AnalyzeTrends samples flight and hotel prices across a date grid and
	// derives aggregate insights.
	AnalyzeTrends(ctx context.Context, req domain.TripAnalyticsRequest) (*domain.TripAnalyticsResponse, error)

	// CreateItinerary composes a multi-leg itinerary and stores it.
	CreateItinerary(ctx context.Context, req domain.CreateItineraryRequest) (*domain.SavedItinerary, error)

	// GetItinerary fetches one stored itinerary by ID.
	GetItinerary(ctx context.Context, id string) (*domain.SavedItinerary, error)

	// ListItineraries returns all stored itineraries, newest first.
	ListItineraries(ctx context.Context) ([]domain.SavedItinerary, error)

	// UpdateItinerary mutates a stored itinerary in place.
	UpdateItinerary(ctx context.Context, req domain.UpdateItineraryRequest) (*domain.SavedItinerary, error)

	// DeleteItinerary removes a stored itinerary by ID.
	DeleteItinerary(ctx context.Context, id string) error
}

// SearchCache caches serialized search responses. Implementations must treat
// cache failures as misses: a broken cache never fails a search.
type SearchCache interface {
	// Get unmarshals the cached value for key into v. The bool reports a hit.
	Get(ctx context.Context, key string, v any) (bool, error)

	// Set stores v under key for the given TTL.
	Set(ctx context.Context, key string, v any, ttl time.Duration) error
}

type planningUseCase struct {
	flights domain.FlightInventory
	hotels  domain.HotelInventory
	store   *ItineraryStore
	cache   SearchCache
	clock   timeutil.Clock
	log     *logger.Logger
	cfg     Config
}

// NewPlanningUseCase creates the planning engine.
func NewPlanningUseCase(
	flights domain.FlightInventory,
	hotels domain.HotelInventory,
	store *ItineraryStore,
	cache SearchCache,
	clock timeutil.Clock,
	log *logger.Logger,
	cfg Config,
) PlanningUseCase {
	if log == nil {
		log = logger.Nop()
	}
	cfg.normalize()
	return &planningUseCase{
		flights: flights,
		hotels:  hotels,
		store:   store,
		cache:   cache,
		clock:   clock,
		log:     log,
		cfg:     cfg,
	}
}

// cacheKey derives a stable cache key from a request's JSON form.
func cacheKey(prefix string, req any) string {
	raw, err := json.Marshal(req)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(raw)
	return prefix + ":" + hex.EncodeToString(sum[:])
}

var _ PlanningUseCase = (*planningUseCase)(nil)
