package domain

import "fmt"

// PriceComparisonRequest compares one fixed date pair across N destinations.
type PriceComparisonRequest struct {
	// Origin is the departure airport code
	Origin string `json:"origin"`

	// Destinations holds city names or airport codes; both are accepted and
	// resolved before querying inventories
	Destinations []string `json:"destinations"`

	// DepartureDate and ReturnDate fix the travel window for every destination
	DepartureDate Date `json:"departureDate"`
	ReturnDate    Date `json:"returnDate"`

	// Travelers is the party size (default: 1)
	Travelers int `json:"travelers"`

	// IncludeHotels adds the cheapest hotel stay to each comparison
	IncludeHotels bool `json:"includeHotels"`
}

// SetDefaults applies default values to empty optional fields.
func (r *PriceComparisonRequest) SetDefaults() {
	if r.Travelers == 0 {
		r.Travelers = 1
	}
}

// Validate checks the request and returns a wrapped ErrInvalidRequest on failure.
func (r *PriceComparisonRequest) Validate() error {
	if r.Origin == "" {
		return fmt.Errorf("%w: origin is required", ErrInvalidRequest)
	}
	if len(r.Destinations) == 0 {
		return fmt.Errorf("%w: at least one destination is required", ErrInvalidRequest)
	}
	if r.DepartureDate.IsZero() || r.ReturnDate.IsZero() {
		return fmt.Errorf("%w: departureDate and returnDate are required", ErrInvalidRequest)
	}
	if !r.ReturnDate.After(r.DepartureDate) {
		return fmt.Errorf("%w: returnDate must be after departureDate", ErrInvalidRequest)
	}
	if r.Travelers < 1 {
		return fmt.Errorf("%w: travelers must be at least 1", ErrInvalidRequest)
	}
	return nil
}

// DestinationComparison is the priced result for a single destination.
type DestinationComparison struct {
	// Destination is the resolved airport code
	Destination string `json:"destination"`

	// DestinationCity is the resolved city name
	DestinationCity string `json:"destinationCity"`

	CheapestOutboundFlight Flight      `json:"cheapestOutboundFlight"`
	CheapestReturnFlight   Flight      `json:"cheapestReturnFlight"`
	CheapestHotel          *HotelOffer `json:"cheapestHotel,omitempty"`

	// FlightCost is (outbound + return price) × travelers
	FlightCost float64 `json:"flightCost"`

	// HotelCost is the cheapest stay total, nil when hotels were not requested
	// or none matched
	HotelCost *float64 `json:"hotelCost,omitempty"`

	TotalCost float64 `json:"totalCost"`

	// AvailableFlightOptions counts matching outbound plus return flights
	AvailableFlightOptions int `json:"availableFlightOptions"`

	// AvailableHotelOptions counts matching hotel offers
	AvailableHotelOptions int `json:"availableHotelOptions"`
}

// PriceComparisonResponse aggregates all surviving destination comparisons,
// sorted by total cost ascending.
type PriceComparisonResponse struct {
	Comparisons []DestinationComparison `json:"comparisons"`

	CheapestDestination *DestinationComparison `json:"cheapestDestination,omitempty"`

	// BestValueDestination is the cheapest destination offering at least two
	// flight options and two hotel options, falling back to the cheapest
	// overall when none qualify
	BestValueDestination *DestinationComparison `json:"bestValueDestination,omitempty"`

	Summary ComparisonSummary `json:"summary"`
}

// ComparisonSummary carries statistics over the surviving comparisons.
type ComparisonSummary struct {
	DestinationsCompared    int     `json:"destinationsCompared"`
	CheapestTotalPrice      float64 `json:"cheapestTotalPrice"`
	MostExpensiveTotalPrice float64 `json:"mostExpensiveTotalPrice"`
	AveragePrice            float64 `json:"averagePrice"`
}
