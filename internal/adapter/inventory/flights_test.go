package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trip-planner/travel-search-and-planning-system/internal/domain"
	"github.com/trip-planner/travel-search-and-planning-system/internal/infrastructure/timeutil"
)

func newTestFlightStore(t *testing.T) *FlightStore {
	t.Helper()
	clock := timeutil.NewMockClockFromString("2025-06-01T10:00:00Z")
	return NewFlightStore(clock)
}

func TestSearchFlightsMatchesRouteAndDate(t *testing.T) {
	store := newTestFlightStore(t)

	query := domain.FlightSearchQuery{
		Origin:        "JFK",
		Destination:   "LHR",
		DepartureDate: domain.NewDate(2025, time.June, 10),
		Passengers:    1,
	}

	flights, err := store.SearchFlights(context.Background(), query)
	require.NoError(t, err)
	require.NotEmpty(t, flights)

	for _, f := range flights {
		assert.Equal(t, "JFK", f.Origin)
		assert.Equal(t, "LHR", f.Destination)
		assert.Equal(t, query.DepartureDate, domain.DateOf(f.DepartureTime))
		assert.GreaterOrEqual(t, f.AvailableSeats, query.Passengers)
		assert.Greater(t, f.Price, 0.0)
		assert.True(t, f.ArrivalTime.After(f.DepartureTime))
	}

	// Two to four departures per route per day.
	assert.GreaterOrEqual(t, len(flights), 2)
	assert.LessOrEqual(t, len(flights), 4)
}

func TestSearchFlightsIsCaseInsensitive(t *testing.T) {
	store := newTestFlightStore(t)

	query := domain.FlightSearchQuery{
		Origin:        "jfk",
		Destination:   "lhr",
		DepartureDate: domain.NewDate(2025, time.June, 10),
		Passengers:    1,
	}

	flights, err := store.SearchFlights(context.Background(), query)
	require.NoError(t, err)
	assert.NotEmpty(t, flights)
}

func TestSearchFlightsOrderedByDeparture(t *testing.T) {
	store := newTestFlightStore(t)

	flights, err := store.SearchFlights(context.Background(), domain.FlightSearchQuery{
		Origin:        "LAX",
		Destination:   "SEA",
		DepartureDate: domain.NewDate(2025, time.June, 15),
		Passengers:    1,
	})
	require.NoError(t, err)

	for i := 1; i < len(flights); i++ {
		assert.False(t, flights[i].DepartureTime.Before(flights[i-1].DepartureTime))
	}
}

func TestSearchFlightsOutsideHorizonIsEmpty(t *testing.T) {
	store := newTestFlightStore(t)

	flights, err := store.SearchFlights(context.Background(), domain.FlightSearchQuery{
		Origin:        "JFK",
		Destination:   "LHR",
		DepartureDate: domain.NewDate(2025, time.September, 1),
		Passengers:    1,
	})
	require.NoError(t, err)
	assert.Empty(t, flights)
}

func TestCatalogRollsForwardWithTheClock(t *testing.T) {
	clock := timeutil.NewMockClockFromString("2025-06-01T10:00:00Z")
	store := NewFlightStore(clock)

	// July 2 sits just past the 30-day horizon on June 1.
	query := domain.FlightSearchQuery{
		Origin:        "JFK",
		Destination:   "LHR",
		DepartureDate: domain.NewDate(2025, time.July, 2),
		Passengers:    1,
	}

	flights, err := store.SearchFlights(context.Background(), query)
	require.NoError(t, err)
	assert.Empty(t, flights)

	clock.AdvanceDays(2)

	flights, err = store.SearchFlights(context.Background(), query)
	require.NoError(t, err)
	assert.NotEmpty(t, flights)
}

func TestSearchFlightsIsDeterministic(t *testing.T) {
	first := newTestFlightStore(t)
	second := newTestFlightStore(t)

	query := domain.FlightSearchQuery{
		Origin:        "ORD",
		Destination:   "MIA",
		DepartureDate: domain.NewDate(2025, time.June, 5),
		Passengers:    1,
	}

	a, err := first.SearchFlights(context.Background(), query)
	require.NoError(t, err)
	b, err := second.SearchFlights(context.Background(), query)
	require.NoError(t, err)

	require.Len(t, b, len(a))
	for i := range a {
		assert.Equal(t, a[i].Price, b[i].Price)
		assert.Equal(t, a[i].FlightNumber, b[i].FlightNumber)
		assert.Equal(t, a[i].DepartureTime, b[i].DepartureTime)
	}
}

func TestGetFlightByID(t *testing.T) {
	store := newTestFlightStore(t)

	flights, err := store.SearchFlights(context.Background(), domain.FlightSearchQuery{
		Origin:        "JFK",
		Destination:   "CDG",
		DepartureDate: domain.NewDate(2025, time.June, 8),
		Passengers:    1,
	})
	require.NoError(t, err)
	require.NotEmpty(t, flights)

	found, err := store.GetFlightByID(context.Background(), flights[0].ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, flights[0], *found)

	missing, err := store.GetFlightByID(context.Background(), "no-such-flight")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSearchFlightsCancelledContext(t *testing.T) {
	store := newTestFlightStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.SearchFlights(ctx, domain.FlightSearchQuery{
		Origin:        "JFK",
		Destination:   "LHR",
		DepartureDate: domain.NewDate(2025, time.June, 10),
		Passengers:    1,
	})
	assert.ErrorIs(t, err, context.Canceled)
}
