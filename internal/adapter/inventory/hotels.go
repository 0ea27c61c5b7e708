package inventory

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/trip-planner/travel-search-and-planning-system/internal/domain"
	"github.com/trip-planner/travel-search-and-planning-system/internal/geo"
)

// hotelSeed fixes the generated hotel catalog.
const hotelSeed = 42

var hotelNames = []string{
	"Grand Plaza Hotel",
	"City Center Inn",
	"Riverside Suites",
	"Skyline Tower Hotel",
	"Harbor View Resort",
	"Metropolitan Lodge",
	"Park Avenue Hotel",
	"Sunset Boulevard Inn",
}

var hotelAmenities = [][]string{
	{"WiFi", "Pool", "Gym"},
	{"WiFi", "Breakfast", "Parking"},
	{"WiFi", "Spa", "Restaurant", "Bar"},
	{"WiFi", "Gym", "Business Center"},
	{"WiFi", "Pool", "Spa", "Restaurant", "Room Service"},
}

// HotelStore is an in-memory HotelInventory with a generated catalog of
// hotels per supported city. The catalog is static for the process lifetime;
// only availability windows derive from the query.
type HotelStore struct {
	mu     sync.RWMutex
	byCity map[string][]domain.Hotel
}

// NewHotelStore creates a hotel inventory covering every supported city.
func NewHotelStore() *HotelStore {
	rng := rand.New(rand.NewSource(hotelSeed))
	byCity := make(map[string][]domain.Hotel)

	cities := geo.Cities()
	sort.Strings(cities)

	for _, city := range cities {
		count := 3 + rng.Intn(6)
		hotels := make([]domain.Hotel, 0, count)
		for i := 0; i < count; i++ {
			stars := 2 + rng.Intn(4)
			h := domain.Hotel{
				ID:             uuid.NewString(),
				Name:           fmt.Sprintf("%s %s", hotelNames[rng.Intn(len(hotelNames))], city),
				Location:       city,
				Address:        fmt.Sprintf("%d Main Street, %s", 1+rng.Intn(999), city),
				StarRating:     stars,
				PricePerNight:  domain.Round2(float64(stars)*50 + rng.Float64()*200),
				AvailableRooms: 2 + rng.Intn(29),
				Amenities:      hotelAmenities[rng.Intn(len(hotelAmenities))],
			}
			hotels = append(hotels, h)
		}
		byCity[strings.ToLower(city)] = hotels
	}

	return &HotelStore{byCity: byCity}
}

// SearchHotels implements domain.HotelInventory. Location matching is
// case-insensitive and accepts either a city name or an airport code.
// A non-positive stay length yields no offers. Offers are priced as
// nightly rate times nights times rooms and ordered by total price.
func (s *HotelStore) SearchHotels(ctx context.Context, query domain.HotelSearchQuery) ([]domain.HotelOffer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	nights := query.Nights()
	if nights <= 0 {
		return []domain.HotelOffer{}, nil
	}
	rooms := query.Rooms
	if rooms < 1 {
		rooms = 1
	}

	city := geo.CityName(query.Location)

	s.mu.RLock()
	hotels := s.byCity[strings.ToLower(city)]
	s.mu.RUnlock()

	offers := make([]domain.HotelOffer, 0, len(hotels))
	for _, h := range hotels {
		if h.AvailableRooms < rooms {
			continue
		}
		offers = append(offers, domain.HotelOffer{
			Hotel:      h,
			Nights:     nights,
			TotalPrice: domain.Round2(h.PricePerNight * float64(nights) * float64(rooms)),
		})
	}

	sort.Slice(offers, func(i, j int) bool {
		return offers[i].TotalPrice < offers[j].TotalPrice
	})
	return offers, nil
}

var _ domain.HotelInventory = (*HotelStore)(nil)
