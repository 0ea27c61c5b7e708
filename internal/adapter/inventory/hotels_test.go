package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trip-planner/travel-search-and-planning-system/internal/domain"
)

func TestSearchHotelsPricesTheStay(t *testing.T) {
	store := NewHotelStore()

	offers, err := store.SearchHotels(context.Background(), domain.HotelSearchQuery{
		Location:     "Paris",
		CheckInDate:  domain.NewDate(2025, time.June, 10),
		CheckOutDate: domain.NewDate(2025, time.June, 13),
		Guests:       2,
		Rooms:        1,
	})
	require.NoError(t, err)
	require.NotEmpty(t, offers)

	for _, o := range offers {
		assert.Equal(t, "Paris", o.Hotel.Location)
		assert.Equal(t, 3, o.Nights)
		assert.Equal(t, domain.Round2(o.Hotel.PricePerNight*3), o.TotalPrice)
		assert.GreaterOrEqual(t, o.Hotel.StarRating, 2)
		assert.LessOrEqual(t, o.Hotel.StarRating, 5)
	}
}

func TestSearchHotelsAcceptsAirportCode(t *testing.T) {
	store := NewHotelStore()

	query := domain.HotelSearchQuery{
		CheckInDate:  domain.NewDate(2025, time.June, 10),
		CheckOutDate: domain.NewDate(2025, time.June, 12),
		Guests:       1,
		Rooms:        1,
	}

	query.Location = "CDG"
	byCode, err := store.SearchHotels(context.Background(), query)
	require.NoError(t, err)

	query.Location = "paris"
	byCity, err := store.SearchHotels(context.Background(), query)
	require.NoError(t, err)

	assert.Equal(t, byCity, byCode)
	assert.NotEmpty(t, byCode)
}

func TestSearchHotelsMultipliesRooms(t *testing.T) {
	store := NewHotelStore()

	query := domain.HotelSearchQuery{
		Location:     "London",
		CheckInDate:  domain.NewDate(2025, time.June, 10),
		CheckOutDate: domain.NewDate(2025, time.June, 12),
		Guests:       4,
		Rooms:        2,
	}

	offers, err := store.SearchHotels(context.Background(), query)
	require.NoError(t, err)
	require.NotEmpty(t, offers)

	for _, o := range offers {
		assert.Equal(t, domain.Round2(o.Hotel.PricePerNight*2*2), o.TotalPrice)
		assert.GreaterOrEqual(t, o.Hotel.AvailableRooms, 2)
	}
}

func TestSearchHotelsSortedByTotalPrice(t *testing.T) {
	store := NewHotelStore()

	offers, err := store.SearchHotels(context.Background(), domain.HotelSearchQuery{
		Location:     "Tokyo",
		CheckInDate:  domain.NewDate(2025, time.June, 10),
		CheckOutDate: domain.NewDate(2025, time.June, 15),
		Guests:       1,
		Rooms:        1,
	})
	require.NoError(t, err)

	for i := 1; i < len(offers); i++ {
		assert.LessOrEqual(t, offers[i-1].TotalPrice, offers[i].TotalPrice)
	}
}

func TestSearchHotelsEmptyOutcomes(t *testing.T) {
	store := NewHotelStore()

	t.Run("zero night stay", func(t *testing.T) {
		offers, err := store.SearchHotels(context.Background(), domain.HotelSearchQuery{
			Location:     "Paris",
			CheckInDate:  domain.NewDate(2025, time.June, 10),
			CheckOutDate: domain.NewDate(2025, time.June, 10),
			Guests:       1,
			Rooms:        1,
		})
		require.NoError(t, err)
		assert.Empty(t, offers)
	})

	t.Run("inverted window", func(t *testing.T) {
		offers, err := store.SearchHotels(context.Background(), domain.HotelSearchQuery{
			Location:     "Paris",
			CheckInDate:  domain.NewDate(2025, time.June, 12),
			CheckOutDate: domain.NewDate(2025, time.June, 10),
			Guests:       1,
			Rooms:        1,
		})
		require.NoError(t, err)
		assert.Empty(t, offers)
	})

	t.Run("unknown city", func(t *testing.T) {
		offers, err := store.SearchHotels(context.Background(), domain.HotelSearchQuery{
			Location:     "Gotham",
			CheckInDate:  domain.NewDate(2025, time.June, 10),
			CheckOutDate: domain.NewDate(2025, time.June, 12),
			Guests:       1,
			Rooms:        1,
		})
		require.NoError(t, err)
		assert.Empty(t, offers)
	})
}

func TestHotelCatalogIsDeterministic(t *testing.T) {
	query := domain.HotelSearchQuery{
		Location:     "Sydney",
		CheckInDate:  domain.NewDate(2025, time.June, 10),
		CheckOutDate: domain.NewDate(2025, time.June, 12),
		Guests:       1,
		Rooms:        1,
	}

	a, err := NewHotelStore().SearchHotels(context.Background(), query)
	require.NoError(t, err)
	b, err := NewHotelStore().SearchHotels(context.Background(), query)
	require.NoError(t, err)

	require.Len(t, b, len(a))
	for i := range a {
		assert.Equal(t, a[i].Hotel.Name, b[i].Hotel.Name)
		assert.Equal(t, a[i].Hotel.PricePerNight, b[i].Hotel.PricePerNight)
		assert.Equal(t, a[i].Hotel.StarRating, b[i].Hotel.StarRating)
	}
}
