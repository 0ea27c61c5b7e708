package inventory

import (
	"context"
	"fmt"

	"github.com/trip-planner/travel-search-and-planning-system/internal/domain"
	"github.com/trip-planner/travel-search-and-planning-system/internal/infrastructure/ratelimit"
	"github.com/trip-planner/travel-search-and-planning-system/internal/infrastructure/retry"
)

// Inventory names used for rate limit buckets and error attribution.
const (
	FlightInventoryName = "flights"
	HotelInventoryName  = "hotels"
)

// ThrottledFlights wraps a FlightInventory with a shared per-inventory rate
// limiter. Waiting counts against the caller's context deadline.
type ThrottledFlights struct {
	next    domain.FlightInventory
	limiter *ratelimit.InventoryLimiter
}

// NewThrottledFlights decorates next with rate limiting.
func NewThrottledFlights(next domain.FlightInventory, limiter *ratelimit.InventoryLimiter) *ThrottledFlights {
	return &ThrottledFlights{next: next, limiter: limiter}
}

func (t *ThrottledFlights) SearchFlights(ctx context.Context, query domain.FlightSearchQuery) ([]domain.Flight, error) {
	if err := t.limiter.Wait(ctx, FlightInventoryName); err != nil {
		return nil, fmt.Errorf("flight inventory throttle: %w", err)
	}
	return t.next.SearchFlights(ctx, query)
}

func (t *ThrottledFlights) GetFlightByID(ctx context.Context, id string) (*domain.Flight, error) {
	if err := t.limiter.Wait(ctx, FlightInventoryName); err != nil {
		return nil, fmt.Errorf("flight inventory throttle: %w", err)
	}
	return t.next.GetFlightByID(ctx, id)
}

// ThrottledHotels wraps a HotelInventory with a shared per-inventory rate
// limiter.
type ThrottledHotels struct {
	next    domain.HotelInventory
	limiter *ratelimit.InventoryLimiter
}

// NewThrottledHotels decorates next with rate limiting.
func NewThrottledHotels(next domain.HotelInventory, limiter *ratelimit.InventoryLimiter) *ThrottledHotels {
	return &ThrottledHotels{next: next, limiter: limiter}
}

func (t *ThrottledHotels) SearchHotels(ctx context.Context, query domain.HotelSearchQuery) ([]domain.HotelOffer, error) {
	if err := t.limiter.Wait(ctx, HotelInventoryName); err != nil {
		return nil, fmt.Errorf("hotel inventory throttle: %w", err)
	}
	return t.next.SearchHotels(ctx, query)
}

// ResilientFlights retries transient flight inventory failures with
// exponential backoff. Context cancellation is never retried.
type ResilientFlights struct {
	next domain.FlightInventory
	cfg  retry.Config
}

// NewResilientFlights decorates next with retry behavior.
func NewResilientFlights(next domain.FlightInventory, cfg retry.Config) *ResilientFlights {
	return &ResilientFlights{next: next, cfg: cfg}
}

func (r *ResilientFlights) SearchFlights(ctx context.Context, query domain.FlightSearchQuery) ([]domain.Flight, error) {
	flights, err := retry.Do(ctx, func() ([]domain.Flight, error) {
		return r.next.SearchFlights(ctx, query)
	}, r.cfg)
	if err != nil {
		return nil, domain.NewInventoryError(FlightInventoryName, err)
	}
	return flights, nil
}

func (r *ResilientFlights) GetFlightByID(ctx context.Context, id string) (*domain.Flight, error) {
	flight, err := retry.Do(ctx, func() (*domain.Flight, error) {
		return r.next.GetFlightByID(ctx, id)
	}, r.cfg)
	if err != nil {
		return nil, domain.NewInventoryError(FlightInventoryName, err)
	}
	return flight, nil
}

// ResilientHotels retries transient hotel inventory failures with exponential
// backoff.
type ResilientHotels struct {
	next domain.HotelInventory
	cfg  retry.Config
}

// NewResilientHotels decorates next with retry behavior.
func NewResilientHotels(next domain.HotelInventory, cfg retry.Config) *ResilientHotels {
	return &ResilientHotels{next: next, cfg: cfg}
}

func (r *ResilientHotels) SearchHotels(ctx context.Context, query domain.HotelSearchQuery) ([]domain.HotelOffer, error) {
	offers, err := retry.Do(ctx, func() ([]domain.HotelOffer, error) {
		return r.next.SearchHotels(ctx, query)
	}, r.cfg)
	if err != nil {
		return nil, domain.NewInventoryError(HotelInventoryName, err)
	}
	return offers, nil
}

var (
	_ domain.FlightInventory = (*ThrottledFlights)(nil)
	_ domain.HotelInventory  = (*ThrottledHotels)(nil)
	_ domain.FlightInventory = (*ResilientFlights)(nil)
	_ domain.HotelInventory  = (*ResilientHotels)(nil)
)
