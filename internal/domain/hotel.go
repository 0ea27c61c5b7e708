package domain

// Hotel represents a property in the hotel inventory.
type Hotel struct {
	// ID is a unique identifier for this hotel
	ID string `json:"id"`

	// Name is the display name, including the city (e.g., "Grand Palace Hotel Paris")
	Name string `json:"name"`

	// Location is the city the hotel is in
	Location string `json:"location"`

	// Address is the street address
	Address string `json:"address"`

	// StarRating is the hotel class from 1 to 5
	StarRating int `json:"starRating"`

	// PricePerNight is the nightly rate for one room
	PricePerNight float64 `json:"pricePerNight"`

	// AvailableRooms is the remaining room count
	AvailableRooms int `json:"availableRooms"`

	// Amenities lists the advertised amenities
	Amenities []string `json:"amenities"`
}

// HotelOffer is a hotel priced for a concrete stay window.
// TotalPrice is computed once at construction (nightly rate × nights × rooms)
// and never recomputed.
type HotelOffer struct {
	Hotel      Hotel   `json:"hotel"`
	Nights     int     `json:"nights"`
	TotalPrice float64 `json:"totalPrice"`
}

// HotelSearchQuery defines the parameters for a hotel inventory lookup.
type HotelSearchQuery struct {
	Location     string
	CheckInDate  Date
	CheckOutDate Date
	Guests       int
	Rooms        int
}

// Nights returns the stay length in nights, which may be zero or negative for
// an invalid window.
func (q HotelSearchQuery) Nights() int {
	return q.CheckInDate.DaysUntil(q.CheckOutDate)
}

// CheapestOffer returns the offer with the lowest total price, or nil when the
// list is empty.
func CheapestOffer(offers []HotelOffer) *HotelOffer {
	var cheapest *HotelOffer
	for i := range offers {
		if cheapest == nil || offers[i].TotalPrice < cheapest.TotalPrice {
			cheapest = &offers[i]
		}
	}
	return cheapest
}
