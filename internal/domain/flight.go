package domain

import (
	"math"
	"time"
)

// Flight represents a single priced flight offer from the flight inventory.
type Flight struct {
	// ID is a unique identifier for this flight offer
	ID string `json:"id"`

	// Airline is the operating airline's name
	Airline string `json:"airline"`

	// FlightNumber is the airline's flight number (e.g., "TA1234")
	FlightNumber string `json:"flightNumber"`

	// Origin is the IATA code of the departure airport
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport
	Destination string `json:"destination"`

	// DepartureTime is the scheduled departure in UTC
	DepartureTime time.Time `json:"departureTime"`

	// ArrivalTime is the scheduled arrival in UTC
	ArrivalTime time.Time `json:"arrivalTime"`

	// Price is the per-passenger fare, rounded to two decimal places
	Price float64 `json:"price"`

	// AvailableSeats is the remaining seat count
	AvailableSeats int `json:"availableSeats"`
}

// FlightSearchQuery defines the parameters for a flight inventory lookup.
type FlightSearchQuery struct {
	Origin        string
	Destination   string
	DepartureDate Date
	Passengers    int
}

// CheapestFlight returns the lowest-priced flight in the list, or nil when the
// list is empty. Ties resolve to the earliest element, which keeps results
// stable across repeated searches.
func CheapestFlight(flights []Flight) *Flight {
	var cheapest *Flight
	for i := range flights {
		if cheapest == nil || flights[i].Price < cheapest.Price {
			cheapest = &flights[i]
		}
	}
	return cheapest
}

// Round2 rounds a monetary amount to two decimal places.
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}
