package domain

import "fmt"

// FlexibleDateSearchRequest asks for every (departure, return) pair of a fixed
// trip length inside a date range, to find the cheapest dates for one route.
type FlexibleDateSearchRequest struct {
	// Origin is the departure airport code (e.g., "JFK")
	Origin string `json:"origin"`

	// Destination is the arrival airport code (e.g., "LAX")
	Destination string `json:"destination"`

	// StartDate is the first candidate departure date
	StartDate Date `json:"startDate"`

	// EndDate is the latest acceptable return date
	EndDate Date `json:"endDate"`

	// Passengers is the number of travelers (default: 1)
	Passengers int `json:"passengers"`

	// TripLength is the trip duration in days (default: 3)
	TripLength int `json:"tripLength"`
}

// SetDefaults applies default values to empty optional fields.
func (r *FlexibleDateSearchRequest) SetDefaults() {
	if r.Passengers == 0 {
		r.Passengers = 1
	}
	if r.TripLength == 0 {
		r.TripLength = 3
	}
}

// Validate checks the request and returns a wrapped ErrInvalidRequest on
// failure. Validation happens before any inventory search is attempted.
func (r *FlexibleDateSearchRequest) Validate() error {
	if r.Origin == "" {
		return fmt.Errorf("%w: origin is required", ErrInvalidRequest)
	}
	if r.Destination == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidRequest)
	}
	if r.StartDate.IsZero() || r.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidRequest)
	}
	if !r.EndDate.After(r.StartDate) {
		return fmt.Errorf("%w: endDate must be after startDate", ErrInvalidRequest)
	}
	if r.TripLength < 1 {
		return fmt.Errorf("%w: tripLength must be at least 1", ErrInvalidRequest)
	}
	if r.Passengers < 1 {
		return fmt.Errorf("%w: passengers must be at least 1", ErrInvalidRequest)
	}
	if r.Passengers > 9 {
		return fmt.Errorf("%w: passengers cannot exceed 9", ErrInvalidRequest)
	}
	return nil
}

// DateOption is the immutable result of pricing one (departure, return) pair.
// All derived fields are computed once at construction.
type DateOption struct {
	DepartureDate   Date    `json:"departureDate"`
	ReturnDate      Date    `json:"returnDate"`
	OutboundFlight  Flight  `json:"outboundFlight"`
	ReturnFlight    Flight  `json:"returnFlight"`
	TotalFlightCost float64 `json:"totalFlightCost"`
	PricePerPerson  float64 `json:"pricePerPerson"`
	DayOfWeek       string  `json:"dayOfWeek"`
	IsWeekend       bool    `json:"isWeekend"`
}

// NewDateOption builds a DateOption from the cheapest flights on each leg.
func NewDateOption(departure, ret Date, outbound, returnFlight Flight, passengers int) DateOption {
	total := Round2((outbound.Price + returnFlight.Price) * float64(passengers))
	return DateOption{
		DepartureDate:   departure,
		ReturnDate:      ret,
		OutboundFlight:  outbound,
		ReturnFlight:    returnFlight,
		TotalFlightCost: total,
		PricePerPerson:  Round2(total / float64(passengers)),
		DayOfWeek:       departure.Weekday().String(),
		IsWeekend:       departure.IsWeekend(),
	}
}

// FlexibleDateSearchResponse is the aggregated result of a flexible-date
// search, sorted by total flight cost ascending.
type FlexibleDateSearchResponse struct {
	Options        []DateOption        `json:"options"`
	CheapestOption *DateOption         `json:"cheapestOption,omitempty"`
	BestValue      *DateOption         `json:"bestValueOption,omitempty"`
	Summary        FlexibleDateSummary `json:"summary"`
}

// FlexibleDateSummary carries statistics over all surviving date options.
// All fields are zero when no options survive.
type FlexibleDateSummary struct {
	AveragePrice float64 `json:"averagePrice"`
	LowestPrice  float64 `json:"lowestPrice"`
	HighestPrice float64 `json:"highestPrice"`

	// PotentialSavings is the spread between the most and least expensive
	// surviving option
	PotentialSavings float64 `json:"potentialSavings"`

	// TotalOptionsSearched is the number of surviving (priced) date pairs,
	// not the number of pairs enumerated
	TotalOptionsSearched int `json:"totalOptionsSearched"`
}
