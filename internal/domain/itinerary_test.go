package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegCost(t *testing.T) {
	flight := &Flight{Price: 200}
	hotel := &HotelOffer{TotalPrice: 350.555}

	tests := []struct {
		name      string
		flight    *Flight
		hotel     *HotelOffer
		travelers int
		want      float64
	}{
		{name: "flight and hotel", flight: flight, hotel: hotel, travelers: 2, want: 750.56},
		{name: "flight only", flight: flight, hotel: nil, travelers: 3, want: 600},
		{name: "hotel only", flight: nil, hotel: hotel, travelers: 2, want: 350.56},
		{name: "nothing selected", flight: nil, hotel: nil, travelers: 4, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LegCost(tt.flight, tt.hotel, tt.travelers))
		})
	}
}

func TestCreateItineraryRequestValidate(t *testing.T) {
	valid := func() CreateItineraryRequest {
		return CreateItineraryRequest{
			Name:   "Europe hop",
			Origin: "JFK",
			Segments: []ItinerarySegment{
				{
					Destination:   "Paris",
					ArrivalDate:   NewDate(2025, time.September, 1),
					DepartureDate: NewDate(2025, time.September, 4),
				},
			},
			Travelers: 2,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*CreateItineraryRequest)
		wantErr string
	}{
		{name: "valid", mutate: func(r *CreateItineraryRequest) {}},
		{
			name:    "missing name",
			mutate:  func(r *CreateItineraryRequest) { r.Name = "" },
			wantErr: "itinerary name is required",
		},
		{
			name:    "missing origin",
			mutate:  func(r *CreateItineraryRequest) { r.Origin = "" },
			wantErr: "origin is required",
		},
		{
			name:    "no segments",
			mutate:  func(r *CreateItineraryRequest) { r.Segments = nil },
			wantErr: "at least one segment is required",
		},
		{
			name: "segment departure before arrival",
			mutate: func(r *CreateItineraryRequest) {
				r.Segments[0].DepartureDate = r.Segments[0].ArrivalDate.AddDays(-2)
			},
			wantErr: "segment 1 departure must be after arrival",
		},
		{
			name:    "segment missing destination",
			mutate:  func(r *CreateItineraryRequest) { r.Segments[0].Destination = "" },
			wantErr: "segment 1 destination is required",
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

func TestUpdateItineraryRequestValidate(t *testing.T) {
	badTravelers := 0

	tests := []struct {
		name    string
		req     UpdateItineraryRequest
		wantErr string
	}{
		{
			name: "valid",
			req: UpdateItineraryRequest{
				ItineraryID: "itn-1",
				LegUpdates:  []LegUpdate{{LegNumber: 2, NewFlightID: "f-9"}},
			},
		},
		{
			name:    "missing id",
			req:     UpdateItineraryRequest{},
			wantErr: "itineraryId is required",
		},
		{
			name: "zero travelers",
			req: UpdateItineraryRequest{
				ItineraryID: "itn-1",
				Travelers:   &badTravelers,
			},
			wantErr: "travelers must be at least 1",
		},
		{
			name: "bad leg number",
			req: UpdateItineraryRequest{
				ItineraryID: "itn-1",
				LegUpdates:  []LegUpdate{{LegNumber: 0}},
			},
			wantErr: "legNumber must be at least 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
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
