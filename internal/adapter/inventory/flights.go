// Package inventory provides the in-process flight and hotel inventories.
// Both generate deterministic sample data from a fixed seed, so searches are
// reproducible across runs and in tests.
package inventory

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/trip-planner/travel-search-and-planning-system/internal/domain"
	"github.com/trip-planner/travel-search-and-planning-system/internal/geo"
	"github.com/trip-planner/travel-search-and-planning-system/internal/infrastructure/timeutil"
)

// flightSeed fixes the sample data so prices are stable within a day.
const flightSeed = 42

// flightHorizonDays is how far ahead of today flights are generated.
const flightHorizonDays = 30

var airlines = []string{
	"TripTastic Airways",
	"SkyHigh Airlines",
	"Global Express",
	"Pacific Wings",
	"Atlantic Jet",
}

// FlightStore is an in-memory FlightInventory backed by generated sample
// data. The catalog is rebuilt lazily when the calendar day changes, so the
// 30-day search horizon always starts at today.
type FlightStore struct {
	mu            sync.RWMutex
	flights       []domain.Flight
	byID          map[string]int
	clock         timeutil.Clock
	lastGenerated domain.Date
}

// NewFlightStore creates a flight inventory populated for the next 30 days.
func NewFlightStore(clock timeutil.Clock) *FlightStore {
	s := &FlightStore{clock: clock}
	s.regenerateIfNeeded()
	return s
}

// regenerateIfNeeded rebuilds the catalog when it is empty or stale.
func (s *FlightStore) regenerateIfNeeded() {
	today := domain.DateOf(s.clock.Now())

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lastGenerated.Equal(today) && len(s.flights) > 0 {
		return
	}

	rng := rand.New(rand.NewSource(flightSeed))
	s.flights = s.flights[:0]
	s.byID = make(map[string]int)

	codes := geo.AirportCodes()
	sort.Strings(codes)

	for _, origin := range codes {
		for _, destination := range codes {
			if destination == origin {
				continue
			}
			for dayOffset := 1; dayOffset <= flightHorizonDays; dayOffset++ {
				departureDate := today.AddDays(dayOffset)
				flightsPerDay := 2 + rng.Intn(2)

				for i := 0; i < flightsPerDay; i++ {
					departureHour := 6 + rng.Intn(16)
					durationHours := 2 + rng.Intn(10)
					airline := airlines[rng.Intn(len(airlines))]

					departure := departureDate.Time().
						Add(time.Duration(departureHour) * time.Hour).
						Add(time.Duration(rng.Intn(4)*15) * time.Minute)
					arrival := departure.
						Add(time.Duration(durationHours) * time.Hour).
						Add(time.Duration(rng.Intn(4)*15) * time.Minute)

					f := domain.Flight{
						ID:             uuid.NewString(),
						Airline:        airline,
						FlightNumber:   fmt.Sprintf("%s%d", strings.ToUpper(airline[:2]), 100+rng.Intn(9900)),
						Origin:         origin,
						Destination:    destination,
						DepartureTime:  departure,
						ArrivalTime:    arrival,
						Price:          domain.Round2(rng.Float64()*800 + 150),
						AvailableSeats: 5 + rng.Intn(175),
					}
					s.byID[f.ID] = len(s.flights)
					s.flights = append(s.flights, f)
				}
			}
		}
	}

	s.lastGenerated = today
}

// SearchFlights implements domain.FlightInventory. Matching is
// case-insensitive on airport codes; flights without enough seats for the
// party are excluded. Results are ordered by departure time.
func (s *FlightStore) SearchFlights(ctx context.Context, query domain.FlightSearchQuery) ([]domain.Flight, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.regenerateIfNeeded()

	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches []domain.Flight
	for _, f := range s.flights {
		if !strings.EqualFold(f.Origin, query.Origin) ||
			!strings.EqualFold(f.Destination, query.Destination) {
			continue
		}
		if !domain.DateOf(f.DepartureTime).Equal(query.DepartureDate) {
			continue
		}
		if f.AvailableSeats < query.Passengers {
			continue
		}
		matches = append(matches, f)
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].DepartureTime.Before(matches[j].DepartureTime)
	})
	return matches, nil
}

// GetFlightByID implements domain.FlightInventory. It returns (nil, nil) when
// no flight has the given ID.
func (s *FlightStore) GetFlightByID(ctx context.Context, id string) (*domain.Flight, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.regenerateIfNeeded()

	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.byID[id]
	if !ok {
		return nil, nil
	}
	f := s.flights[idx]
	return &f, nil
}

var _ domain.FlightInventory = (*FlightStore)(nil)
