package domain

import "context"

//go:generate mockgen -source=inventory.go -destination=mock_inventory.go -package=domain

// FlightInventory is the flight search collaborator consumed by the planning
// core. Implementations must be safe for concurrent use: the search engines
// fan out many lookups at once.
type FlightInventory interface {
	// SearchFlights returns all flights matching the query, ordered by
	// departure time. An empty slice is a normal outcome, not an error.
	SearchFlights(ctx context.Context, query FlightSearchQuery) ([]Flight, error)

	// GetFlightByID resolves a single flight by its identifier.
	// It returns (nil, nil) when no such flight exists.
	GetFlightByID(ctx context.Context, id string) (*Flight, error)
}

// HotelInventory is the hotel search collaborator consumed by the planning
// core. Implementations must be safe for concurrent use.
type HotelInventory interface {
	// SearchHotels returns priced offers for the stay window, ordered by total
	// price ascending. An empty slice is a normal outcome, not an error.
	SearchHotels(ctx context.Context, query HotelSearchQuery) ([]HotelOffer, error)
}
