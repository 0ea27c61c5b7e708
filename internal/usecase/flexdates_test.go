package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/trip-planner/travel-search-and-planning-system/internal/domain"
)

// routedFlights wires the flight mock to answer from a fixed route × date
// price table. Missing entries answer with an empty result.
func routedFlights(f *testFixture, prices map[string]float64) {
	f.flights.EXPECT().
		SearchFlights(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q domain.FlightSearchQuery) ([]domain.Flight, error) {
			key := q.Origin + "-" + q.Destination + "-" + q.DepartureDate.String()
			price, ok := prices[key]
			if !ok {
				return []domain.Flight{}, nil
			}
			return []domain.Flight{flightAt(key, q.Origin, q.Destination, q.DepartureDate, price)}, nil
		}).
		AnyTimes()
}

func TestFindFlexibleDatesRanksPairsByTotalCost(t *testing.T) {
	f := newFixture(t)
	routedFlights(f, map[string]float64{
		"JFK-LAX-2025-06-02": 200,
		"LAX-JFK-2025-06-05": 150,
		"JFK-LAX-2025-06-03": 100,
		"LAX-JFK-2025-06-06": 120,
	})

	resp, err := f.engine.FindFlexibleDates(context.Background(), domain.FlexibleDateSearchRequest{
		Origin:      "JFK",
		Destination: "LAX",
		StartDate:   d(2025, time.June, 2),
		EndDate:     d(2025, time.June, 6),
		TripLength:  3,
		Passengers:  2,
	})
	require.NoError(t, err)
	require.Len(t, resp.Options, 2)

	// (100+120)×2 beats (200+150)×2.
	assert.Equal(t, 440.0, resp.Options[0].TotalFlightCost)
	assert.Equal(t, d(2025, time.June, 3), resp.Options[0].DepartureDate)
	assert.Equal(t, d(2025, time.June, 6), resp.Options[0].ReturnDate)
	assert.Equal(t, 700.0, resp.Options[1].TotalFlightCost)

	require.NotNil(t, resp.CheapestOption)
	assert.Equal(t, 440.0, resp.CheapestOption.TotalFlightCost)
	assert.Equal(t, 220.0, resp.CheapestOption.PricePerPerson)

	assert.Equal(t, 570.0, resp.Summary.AveragePrice)
	assert.Equal(t, 440.0, resp.Summary.LowestPrice)
	assert.Equal(t, 700.0, resp.Summary.HighestPrice)
	assert.Equal(t, 260.0, resp.Summary.PotentialSavings)
	assert.Equal(t, 2, resp.Summary.TotalOptionsSearched)
}

func TestFindFlexibleDatesBestValueSkipsWeekends(t *testing.T) {
	f := newFixture(t)
	routedFlights(f, map[string]float64{
		// Saturday departure is the cheapest pair, Monday the priciest.
		"JFK-LAX-2025-06-07": 50, "LAX-JFK-2025-06-10": 50,
		"JFK-LAX-2025-06-08": 75, "LAX-JFK-2025-06-11": 75,
		"JFK-LAX-2025-06-09": 150, "LAX-JFK-2025-06-12": 150,
	})

	resp, err := f.engine.FindFlexibleDates(context.Background(), domain.FlexibleDateSearchRequest{
		Origin:      "JFK",
		Destination: "LAX",
		StartDate:   d(2025, time.June, 7),
		EndDate:     d(2025, time.June, 12),
		TripLength:  3,
		Passengers:  1,
	})
	require.NoError(t, err)
	require.Len(t, resp.Options, 3)

	assert.True(t, resp.CheapestOption.IsWeekend)
	require.NotNil(t, resp.BestValue)
	assert.False(t, resp.BestValue.IsWeekend)
	assert.Equal(t, "Monday", resp.BestValue.DayOfWeek)
}

func TestFindFlexibleDatesMissingLegIsAbsence(t *testing.T) {
	f := newFixture(t)
	// No return flight on June 5th, so the June 2nd pair disappears.
	routedFlights(f, map[string]float64{
		"JFK-LAX-2025-06-02": 200,
		"JFK-LAX-2025-06-03": 100,
		"LAX-JFK-2025-06-06": 120,
	})

	resp, err := f.engine.FindFlexibleDates(context.Background(), domain.FlexibleDateSearchRequest{
		Origin:      "JFK",
		Destination: "LAX",
		StartDate:   d(2025, time.June, 2),
		EndDate:     d(2025, time.June, 6),
		TripLength:  3,
	})
	require.NoError(t, err)
	require.Len(t, resp.Options, 1)
	assert.Equal(t, d(2025, time.June, 3), resp.Options[0].DepartureDate)
}

func TestFindFlexibleDatesInventoryFailureIsAbsence(t *testing.T) {
	f := newFixture(t)
	f.flights.EXPECT().
		SearchFlights(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q domain.FlightSearchQuery) ([]domain.Flight, error) {
			if q.DepartureDate.Equal(d(2025, time.June, 2)) {
				return nil, errors.New("backend down")
			}
			return []domain.Flight{flightAt("ok", q.Origin, q.Destination, q.DepartureDate, 100)}, nil
		}).
		AnyTimes()

	resp, err := f.engine.FindFlexibleDates(context.Background(), domain.FlexibleDateSearchRequest{
		Origin:      "JFK",
		Destination: "LAX",
		StartDate:   d(2025, time.June, 2),
		EndDate:     d(2025, time.June, 6),
		TripLength:  3,
	})
	require.NoError(t, err)
	require.Len(t, resp.Options, 1)
	assert.Equal(t, d(2025, time.June, 3), resp.Options[0].DepartureDate)
}

func TestFindFlexibleDatesNoAvailability(t *testing.T) {
	f := newFixture(t)
	routedFlights(f, nil)

	resp, err := f.engine.FindFlexibleDates(context.Background(), domain.FlexibleDateSearchRequest{
		Origin:      "JFK",
		Destination: "LAX",
		StartDate:   d(2025, time.June, 2),
		EndDate:     d(2025, time.June, 6),
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Options)
	assert.Nil(t, resp.CheapestOption)
	assert.Nil(t, resp.BestValue)
	assert.Zero(t, resp.Summary.TotalOptionsSearched)
}

func TestFindFlexibleDatesCancellationAbortsSearch(t *testing.T) {
	f := newFixture(t)
	f.flights.EXPECT().
		SearchFlights(gomock.Any(), gomock.Any()).
		Return(nil, context.Canceled).
		AnyTimes()

	_, err := f.engine.FindFlexibleDates(context.Background(), domain.FlexibleDateSearchRequest{
		Origin:      "JFK",
		Destination: "LAX",
		StartDate:   d(2025, time.June, 2),
		EndDate:     d(2025, time.June, 6),
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFindFlexibleDatesServesRepeatSearchFromCache(t *testing.T) {
	f := newFixture(t)
	prices := map[string]float64{
		"JFK-LAX-2025-06-02": 200, "LAX-JFK-2025-06-05": 150,
		"JFK-LAX-2025-06-03": 100, "LAX-JFK-2025-06-06": 120,
	}
	routedFlights(f, prices)

	req := domain.FlexibleDateSearchRequest{
		Origin:      "JFK",
		Destination: "LAX",
		StartDate:   d(2025, time.June, 2),
		EndDate:     d(2025, time.June, 6),
		TripLength:  3,
		Passengers:  1,
	}

	first, err := f.engine.FindFlexibleDates(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, f.cache.sets)

	second, err := f.engine.FindFlexibleDates(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, f.cache.hits)
	assert.Equal(t, first.Summary, second.Summary)
	assert.Equal(t, len(first.Options), len(second.Options))
}

func TestFindFlexibleDatesValidation(t *testing.T) {
	f := newFixture(t)

	_, err := f.engine.FindFlexibleDates(context.Background(), domain.FlexibleDateSearchRequest{
		Destination: "LAX",
		StartDate:   d(2025, time.June, 2),
		EndDate:     d(2025, time.June, 6),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}
