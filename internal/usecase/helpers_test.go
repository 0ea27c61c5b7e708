package usecase

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/trip-planner/travel-search-and-planning-system/internal/domain"
	"github.com/trip-planner/travel-search-and-planning-system/internal/infrastructure/logger"
	"github.com/trip-planner/travel-search-and-planning-system/internal/infrastructure/timeutil"
)

// testFixture bundles the engine under test with its mocked collaborators.
type testFixture struct {
	engine  PlanningUseCase
	flights *domain.MockFlightInventory
	hotels  *domain.MockHotelInventory
	clock   *timeutil.MockClock
	cache   *stubCache
}

func newFixture(t *testing.T) *testFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	flights := domain.NewMockFlightInventory(ctrl)
	hotels := domain.NewMockHotelInventory(ctrl)
	clock := timeutil.NewMockClockFromString("2025-06-01T09:00:00Z")
	cache := newStubCache()

	engine := NewPlanningUseCase(
		flights,
		hotels,
		NewItineraryStore(),
		cache,
		clock,
		logger.Nop(),
		Config{MaxConcurrent: 4},
	)
	return &testFixture{
		engine:  engine,
		flights: flights,
		hotels:  hotels,
		clock:   clock,
		cache:   cache,
	}
}

// stubCache is an in-memory SearchCache that records stored JSON payloads.
type stubCache struct {
	entries map[string][]byte
	sets    int
	hits    int
}

func newStubCache() *stubCache {
	return &stubCache{entries: make(map[string][]byte)}
}

func (c *stubCache) Get(_ context.Context, key string, v any) (bool, error) {
	raw, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	c.hits++
	return true, json.Unmarshal(raw, v)
}

func (c *stubCache) Set(_ context.Context, key string, v any, _ time.Duration) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.entries[key] = raw
	c.sets++
	return nil
}

func d(year int, month time.Month, day int) domain.Date {
	return domain.NewDate(year, month, day)
}

// flightAt builds a flight on the given route and date with a fixed price.
func flightAt(id, origin, destination string, date domain.Date, price float64) domain.Flight {
	departure := date.Time().Add(10 * time.Hour)
	return domain.Flight{
		ID:             id,
		Airline:        "TripTastic Airways",
		FlightNumber:   "TT" + id,
		Origin:         origin,
		Destination:    destination,
		DepartureTime:  departure,
		ArrivalTime:    departure.Add(5 * time.Hour),
		Price:          price,
		AvailableSeats: 50,
	}
}

// offerFor builds a hotel offer priced for the given number of nights.
func offerFor(id, city string, stars int, nightly float64, nights int) domain.HotelOffer {
	return domain.HotelOffer{
		Hotel: domain.Hotel{
			ID:             id,
			Name:           "Grand Plaza Hotel " + city,
			Location:       city,
			StarRating:     stars,
			PricePerNight:  nightly,
			AvailableRooms: 10,
		},
		Nights:     nights,
		TotalPrice: domain.Round2(nightly * float64(nights)),
	}
}
