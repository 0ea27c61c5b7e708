package domain

import (
	"fmt"
	"time"
)

// ItineraryStatus is the lifecycle state of a saved itinerary. The planning
// core only ever produces StatusDraft; the remaining states are written by
// external booking workflows and are stored and echoed back unchanged.
type ItineraryStatus string

// Itinerary lifecycle states.
const (
	StatusDraft     ItineraryStatus = "draft"
	StatusConfirmed ItineraryStatus = "confirmed"
	StatusBooked    ItineraryStatus = "booked"
	StatusCompleted ItineraryStatus = "completed"
	StatusCancelled ItineraryStatus = "cancelled"
)

// ItineraryLeg is one directional segment of a multi-city itinerary.
// LegCost is computed once when the leg is built: selected flight price ×
// travelers plus the selected hotel's stay total, with absent components
// contributing zero.
type ItineraryLeg struct {
	LegNumber int    `json:"legNumber"`
	From      string `json:"from"`
	To        string `json:"to"`

	FlightDate    Date  `json:"flightDate"`
	HotelCheckIn  *Date `json:"hotelCheckIn,omitempty"`
	HotelCheckOut *Date `json:"hotelCheckOut,omitempty"`

	// SelectedFlight may be nil when no flight matched the leg's route/date
	SelectedFlight *Flight `json:"selectedFlight,omitempty"`

	// SelectedHotel may be nil for hotel-less legs (e.g., the return leg)
	SelectedHotel *HotelOffer `json:"selectedHotel,omitempty"`

	// AlternativeFlights and AlternativeHotels hold all non-selected results
	AlternativeFlights []Flight     `json:"alternativeFlights"`
	AlternativeHotels  []HotelOffer `json:"alternativeHotels"`

	LegCost float64 `json:"legCost"`
}

// LegCost computes a leg's cost from its optional components.
func LegCost(flight *Flight, hotel *HotelOffer, travelers int) float64 {
	var cost float64
	if flight != nil {
		cost += flight.Price * float64(travelers)
	}
	if hotel != nil {
		cost += hotel.TotalPrice
	}
	return Round2(cost)
}

// SavedItinerary is a mutable aggregate root with identity. It owns its legs
// exclusively; legs are never shared across itineraries.
type SavedItinerary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Origin      string `json:"origin"`
	Travelers   int    `json:"travelers"`

	Legs []ItineraryLeg `json:"legs"`

	EstimatedTotalCost float64 `json:"estimatedTotalCost"`
	TotalNights        int     `json:"totalNights"`

	Status ItineraryStatus `json:"status"`

	CreatedAt    time.Time  `json:"createdAt"`
	LastModified *time.Time `json:"lastModified,omitempty"`
}

// ItinerarySegment describes one requested stop of a multi-city trip.
type ItinerarySegment struct {
	// Destination is a city name or airport code
	Destination string `json:"destination"`

	// ArrivalDate is when the traveler flies in and checks in
	ArrivalDate Date `json:"arrivalDate"`

	// DepartureDate is when the traveler checks out and moves on
	DepartureDate Date `json:"departureDate"`

	// PreferredFlightID pins a specific flight when present in the search
	// results; the cheapest match is used otherwise
	PreferredFlightID string `json:"preferredFlightId,omitempty"`

	// PreferredHotelID pins a specific hotel, with the same fallback
	PreferredHotelID string `json:"preferredHotelId,omitempty"`
}

// CreateItineraryRequest builds a new multi-leg itinerary.
type CreateItineraryRequest struct {
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Origin      string             `json:"origin"`
	Segments    []ItinerarySegment `json:"segments"`
	Travelers   int                `json:"travelers"`
}

// SetDefaults applies default values to empty optional fields.
func (r *CreateItineraryRequest) SetDefaults() {
	if r.Travelers == 0 {
		r.Travelers = 1
	}
}

// Validate checks the request and returns a wrapped ErrInvalidRequest on failure.
func (r *CreateItineraryRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: itinerary name is required", ErrInvalidRequest)
	}
	if r.Origin == "" {
		return fmt.Errorf("%w: origin is required", ErrInvalidRequest)
	}
	if len(r.Segments) == 0 {
		return fmt.Errorf("%w: at least one segment is required", ErrInvalidRequest)
	}
	for i, seg := range r.Segments {
		if seg.Destination == "" {
			return fmt.Errorf("%w: segment %d destination is required", ErrInvalidRequest, i+1)
		}
		if seg.ArrivalDate.IsZero() || seg.DepartureDate.IsZero() {
			return fmt.Errorf("%w: segment %d dates are required", ErrInvalidRequest, i+1)
		}
		if !seg.DepartureDate.After(seg.ArrivalDate) {
			return fmt.Errorf("%w: segment %d departure must be after arrival", ErrInvalidRequest, i+1)
		}
	}
	if r.Travelers < 1 {
		return fmt.Errorf("%w: travelers must be at least 1", ErrInvalidRequest)
	}
	return nil
}

// LegUpdate swaps the flight and/or hotel of one leg, addressed by leg number.
type LegUpdate struct {
	LegNumber   int    `json:"legNumber"`
	NewFlightID string `json:"newFlightId,omitempty"`
	NewHotelID  string `json:"newHotelId,omitempty"`
}

// UpdateItineraryRequest mutates a stored itinerary in place. Unset top-level
// fields retain their previous value.
type UpdateItineraryRequest struct {
	ItineraryID string      `json:"itineraryId"`
	Name        *string     `json:"name,omitempty"`
	Description *string     `json:"description,omitempty"`
	Travelers   *int        `json:"travelers,omitempty"`
	LegUpdates  []LegUpdate `json:"legUpdates,omitempty"`
}

// Validate checks the request and returns a wrapped ErrInvalidRequest on failure.
func (r *UpdateItineraryRequest) Validate() error {
	if r.ItineraryID == "" {
		return fmt.Errorf("%w: itineraryId is required", ErrInvalidRequest)
	}
	if r.Travelers != nil && *r.Travelers < 1 {
		return fmt.Errorf("%w: travelers must be at least 1", ErrInvalidRequest)
	}
	for _, u := range r.LegUpdates {
		if u.LegNumber < 1 {
			return fmt.Errorf("%w: legNumber must be at least 1", ErrInvalidRequest)
		}
	}
	return nil
}
