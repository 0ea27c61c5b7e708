package domain

import "fmt"

// TripAnalyticsRequest samples prices across a date × destination grid.
type TripAnalyticsRequest struct {
	// Origin is the departure airport code
	Origin string `json:"origin"`

	// Destinations holds city names or airport codes to analyze
	Destinations []string `json:"destinations"`

	// StartDate and EndDate bound the analysis period
	StartDate Date `json:"startDate"`
	EndDate   Date `json:"endDate"`
}

// Validate checks the request and returns a wrapped ErrInvalidRequest on failure.
func (r *TripAnalyticsRequest) Validate() error {
	if r.Origin == "" {
		return fmt.Errorf("%w: origin is required", ErrInvalidRequest)
	}
	if len(r.Destinations) == 0 {
		return fmt.Errorf("%w: at least one destination is required", ErrInvalidRequest)
	}
	if r.StartDate.IsZero() || r.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidRequest)
	}
	if !r.EndDate.After(r.StartDate) {
		return fmt.Errorf("%w: endDate must be after startDate", ErrInvalidRequest)
	}
	return nil
}

// DestinationInsight is the per-destination price aggregate.
type DestinationInsight struct {
	// Destination is the resolved city name
	Destination string `json:"destination"`

	AverageFlightPrice        float64 `json:"averageFlightPrice"`
	AverageHotelPricePerNight float64 `json:"averageHotelPricePerNight"`

	// CheapestDayToFly is the weekday with the lowest average flight price
	CheapestDayToFly string `json:"cheapestDayToFly,omitempty"`

	FlightOptionsCount int `json:"flightOptionsCount"`
	HotelOptionsCount  int `json:"hotelOptionsCount"`
}

// PriceTrends carries the grid-wide aggregates.
type PriceTrends struct {
	OverallAverageFlightPrice float64 `json:"overallAverageFlightPrice"`
	OverallAverageHotelPrice  float64 `json:"overallAverageHotelPrice"`

	// BestDayOfWeekToBook is a fixed industry heuristic
	BestDayOfWeekToBook string `json:"bestDayOfWeekToBook,omitempty"`

	// WeekdayVsWeekendPriceDifference is weekend average minus weekday average
	WeekdayVsWeekendPriceDifference float64 `json:"weekdayVsWeekendPriceDifference"`
}

// TripAnalyticsResponse is the full analytics snapshot. It is transient and
// recomputed per request.
type TripAnalyticsResponse struct {
	DestinationInsights []DestinationInsight `json:"destinationInsights"`
	PriceTrends         PriceTrends          `json:"priceTrends"`
	Recommendations     []string             `json:"recommendations"`
}
