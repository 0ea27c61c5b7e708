package usecase

import (
	"sort"
	"sync"

	"github.com/trip-planner/travel-search-and-planning-system/internal/domain"
)

// ItineraryStore is an in-memory repository of saved itineraries. Reads and
// writes of the map are guarded by one RWMutex; concurrent updates to the
// same itinerary are serialized by a per-ID lock so that read-modify-write
// cycles never interleave.
type ItineraryStore struct {
	mu      sync.RWMutex
	items   map[string]domain.SavedItinerary
	updates map[string]*sync.Mutex
}

// NewItineraryStore creates an empty store.
func NewItineraryStore() *ItineraryStore {
	return &ItineraryStore{
		items:   make(map[string]domain.SavedItinerary),
		updates: make(map[string]*sync.Mutex),
	}
}

// Save inserts or replaces an itinerary. The store keeps its own copy.
func (s *ItineraryStore) Save(it domain.SavedItinerary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[it.ID] = cloneItinerary(it)
}

// Get returns a copy of the itinerary, or ErrItineraryNotFound.
func (s *ItineraryStore) Get(id string) (*domain.SavedItinerary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	it, ok := s.items[id]
	if !ok {
		return nil, domain.ErrItineraryNotFound
	}
	copied := cloneItinerary(it)
	return &copied, nil
}

// List returns copies of all itineraries, newest first.
func (s *ItineraryStore) List() []domain.SavedItinerary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.SavedItinerary, 0, len(s.items))
	for _, it := range s.items {
		out = append(out, cloneItinerary(it))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Delete removes an itinerary, or returns ErrItineraryNotFound.
func (s *ItineraryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return domain.ErrItineraryNotFound
	}
	delete(s.items, id)
	delete(s.updates, id)
	return nil
}

// LockForUpdate acquires the per-ID update lock and returns its release
// function. Callers hold the lock across the whole read-modify-write cycle.
func (s *ItineraryStore) LockForUpdate(id string) func() {
	s.mu.Lock()
	lock, ok := s.updates[id]
	if !ok {
		lock = &sync.Mutex{}
		s.updates[id] = lock
	}
	s.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}

// cloneItinerary deep-copies the slices an itinerary owns, so callers can
// mutate their copy without racing the store.
func cloneItinerary(it domain.SavedItinerary) domain.SavedItinerary {
	legs := make([]domain.ItineraryLeg, len(it.Legs))
	for i, leg := range it.Legs {
		legs[i] = leg
		legs[i].AlternativeFlights = append([]domain.Flight(nil), leg.AlternativeFlights...)
		legs[i].AlternativeHotels = append([]domain.HotelOffer(nil), leg.AlternativeHotels...)
	}
	it.Legs = legs
	if it.LastModified != nil {
		modified := *it.LastModified
		it.LastModified = &modified
	}
	return it
}
