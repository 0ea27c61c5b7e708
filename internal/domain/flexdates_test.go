package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexibleDateSearchRequestValidate(t *testing.T) {
	valid := func() FlexibleDateSearchRequest {
		return FlexibleDateSearchRequest{
			Origin:      "JFK",
			Destination: "LAX",
			StartDate:   NewDate(2025, time.June, 1),
			EndDate:     NewDate(2025, time.June, 10),
			Passengers:  2,
			TripLength:  3,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*FlexibleDateSearchRequest)
		wantErr string
	}{
		{name: "valid", mutate: func(r *FlexibleDateSearchRequest) {}},
		{
			name:    "missing origin",
			mutate:  func(r *FlexibleDateSearchRequest) { r.Origin = "" },
			wantErr: "origin is required",
		},
		{
			name:    "missing destination",
			mutate:  func(r *FlexibleDateSearchRequest) { r.Destination = "" },
			wantErr: "destination is required",
		},
		{
			name:    "end before start",
			mutate:  func(r *FlexibleDateSearchRequest) { r.EndDate = r.StartDate.AddDays(-1) },
			wantErr: "endDate must be after startDate",
		},
		{
			name:    "end equals start",
			mutate:  func(r *FlexibleDateSearchRequest) { r.EndDate = r.StartDate },
			wantErr: "endDate must be after startDate",
		},
		{
			name:    "zero trip length",
			mutate:  func(r *FlexibleDateSearchRequest) { r.TripLength = -1 },
			wantErr: "tripLength must be at least 1",
		},
		{
			name:    "too many passengers",
			mutate:  func(r *FlexibleDateSearchRequest) { r.Passengers = 10 },
			wantErr: "passengers cannot exceed 9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidRequest)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewDateOption(t *testing.T) {
	departure := NewDate(2025, time.June, 7) // Saturday
	ret := departure.AddDays(3)
	outbound := Flight{ID: "f-out", Price: 199.99}
	returnFlight := Flight{ID: "f-ret", Price: 150.01}

	opt := NewDateOption(departure, ret, outbound, returnFlight, 2)

	assert.Equal(t, 700.0, opt.TotalFlightCost)
	assert.Equal(t, 350.0, opt.PricePerPerson)
	assert.Equal(t, "Saturday", opt.DayOfWeek)
	assert.True(t, opt.IsWeekend)
	assert.Equal(t, "f-out", opt.OutboundFlight.ID)
	assert.Equal(t, "f-ret", opt.ReturnFlight.ID)
}

func TestCheapestFlight(t *testing.T) {
	assert.Nil(t, CheapestFlight(nil))

	flights := []Flight{
		{ID: "a", Price: 300},
		{ID: "b", Price: 120.50},
		{ID: "c", Price: 120.50},
		{ID: "d", Price: 500},
	}

	got := CheapestFlight(flights)
	require.NotNil(t, got)
	// Ties resolve to the first listed flight.
	assert.Equal(t, "b", got.ID)
}

func TestCheapestOffer(t *testing.T) {
	assert.Nil(t, CheapestOffer(nil))

	offers := []HotelOffer{
		{Hotel: Hotel{ID: "h1"}, TotalPrice: 450},
		{Hotel: Hotel{ID: "h2"}, TotalPrice: 300},
	}

	got := CheapestOffer(offers)
	require.NotNil(t, got)
	assert.Equal(t, "h2", got.Hotel.ID)
}
