package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/trip-planner/travel-search-and-planning-system/internal/domain"
	"github.com/trip-planner/travel-search-and-planning-system/internal/geo"
)

// CreateItinerary composes a multi-leg itinerary from the requested segments.
// Legs are built sequentially because each leg departs from the previous
// segment's destination. A closing return leg back to the origin is always
// appended. Unlike the search engines, an inventory failure here aborts the
// operation: a silently incomplete itinerary would be worse than an error.
func (uc *planningUseCase) CreateItinerary(ctx context.Context, req domain.CreateItineraryRequest) (*domain.SavedItinerary, error) {
	req.SetDefaults()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	legs := make([]domain.ItineraryLeg, 0, len(req.Segments)+1)
	totalNights := 0
	previous := req.Origin

	for i, seg := range req.Segments {
		leg, err := uc.buildLeg(ctx, i+1, previous, seg, req.Travelers)
		if err != nil {
			return nil, err
		}
		legs = append(legs, *leg)
		totalNights += seg.ArrivalDate.DaysUntil(seg.DepartureDate)
		previous = seg.Destination
	}

	returnLeg, err := uc.buildReturnLeg(ctx, len(req.Segments)+1, previous, req.Origin, req.Segments[len(req.Segments)-1].DepartureDate, req.Travelers)
	if err != nil {
		return nil, err
	}
	legs = append(legs, *returnLeg)

	var totalCost float64
	for _, leg := range legs {
		totalCost += leg.LegCost
	}

	itinerary := domain.SavedItinerary{
		ID:                 uuid.NewString(),
		Name:               req.Name,
		Description:        req.Description,
		Origin:             req.Origin,
		Travelers:          req.Travelers,
		Legs:               legs,
		EstimatedTotalCost: domain.Round2(totalCost),
		TotalNights:        totalNights,
		Status:             domain.StatusDraft,
		CreatedAt:          uc.clock.Now(),
	}
	uc.store.Save(itinerary)

	uc.log.Info().
		Str("itinerary_id", itinerary.ID).
		Int("legs", len(itinerary.Legs)).
		Float64("estimated_total_cost", itinerary.EstimatedTotalCost).
		Msg("itinerary created")

	return &itinerary, nil
}

// buildLeg prices one segment: a flight into the destination on the arrival
// date plus a hotel for the stay window. Preferred IDs pin a specific option
// when present in the results; the cheapest match is used otherwise.
func (uc *planningUseCase) buildLeg(ctx context.Context, legNumber int, from string, seg domain.ItinerarySegment, travelers int) (*domain.ItineraryLeg, error) {
	fromCode := geo.AirportCode(from)
	toCode := geo.AirportCode(seg.Destination)
	city := geo.CityName(seg.Destination)

	flights, err := uc.flights.SearchFlights(ctx, domain.FlightSearchQuery{
		Origin:        fromCode,
		Destination:   toCode,
		DepartureDate: seg.ArrivalDate,
		Passengers:    travelers,
	})
	if err != nil {
		return nil, err
	}
	selectedFlight := pickFlight(flights, seg.PreferredFlightID)

	offers, err := uc.hotels.SearchHotels(ctx, domain.HotelSearchQuery{
		Location:     city,
		CheckInDate:  seg.ArrivalDate,
		CheckOutDate: seg.DepartureDate,
		Guests:       travelers,
		Rooms:        1,
	})
	if err != nil {
		return nil, err
	}
	selectedHotel := pickHotel(offers, seg.PreferredHotelID)

	checkIn := seg.ArrivalDate
	checkOut := seg.DepartureDate
	return &domain.ItineraryLeg{
		LegNumber:          legNumber,
		From:               fromCode,
		To:                 toCode,
		FlightDate:         seg.ArrivalDate,
		HotelCheckIn:       &checkIn,
		HotelCheckOut:      &checkOut,
		SelectedFlight:     selectedFlight,
		SelectedHotel:      selectedHotel,
		AlternativeFlights: withoutFlight(flights, selectedFlight),
		AlternativeHotels:  withoutHotel(offers, selectedHotel),
		LegCost:            domain.LegCost(selectedFlight, selectedHotel, travelers),
	}, nil
}

// buildReturnLeg prices the closing flight home. It departs on the last
// segment's check-out date and carries no hotel.
func (uc *planningUseCase) buildReturnLeg(ctx context.Context, legNumber int, from, origin string, date domain.Date, travelers int) (*domain.ItineraryLeg, error) {
	fromCode := geo.AirportCode(from)
	toCode := geo.AirportCode(origin)

	flights, err := uc.flights.SearchFlights(ctx, domain.FlightSearchQuery{
		Origin:        fromCode,
		Destination:   toCode,
		DepartureDate: date,
		Passengers:    travelers,
	})
	if err != nil {
		return nil, err
	}
	selected := pickFlight(flights, "")

	return &domain.ItineraryLeg{
		LegNumber:          legNumber,
		From:               fromCode,
		To:                 toCode,
		FlightDate:         date,
		SelectedFlight:     selected,
		AlternativeFlights: withoutFlight(flights, selected),
		AlternativeHotels:  []domain.HotelOffer{},
		LegCost:            domain.LegCost(selected, nil, travelers),
	}, nil
}

// GetItinerary implements PlanningUseCase.
func (uc *planningUseCase) GetItinerary(ctx context.Context, id string) (*domain.SavedItinerary, error) {
	return uc.store.Get(id)
}

// ListItineraries implements PlanningUseCase.
func (uc *planningUseCase) ListItineraries(ctx context.Context) ([]domain.SavedItinerary, error) {
	return uc.store.List(), nil
}

// DeleteItinerary implements PlanningUseCase.
func (uc *planningUseCase) DeleteItinerary(ctx context.Context, id string) error {
	if err := uc.store.Delete(id); err != nil {
		return err
	}
	uc.log.Info().Str("itinerary_id", id).Msg("itinerary deleted")
	return nil
}

// UpdateItinerary applies top-level field changes and per-leg flight or hotel
// swaps, adjusting the estimated total by each leg's cost delta. Leg updates
// addressing unknown leg numbers are ignored; a replacement ID that resolves
// to nothing clears the selection, dropping its share of the leg cost. Leg
// costs are recomputed with the traveler count the legs were priced with; a
// traveler change in the same request takes effect afterwards.
func (uc *planningUseCase) UpdateItinerary(ctx context.Context, req domain.UpdateItineraryRequest) (*domain.SavedItinerary, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	unlock := uc.store.LockForUpdate(req.ItineraryID)
	defer unlock()

	itinerary, err := uc.store.Get(req.ItineraryID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		itinerary.Name = *req.Name
	}
	if req.Description != nil {
		itinerary.Description = *req.Description
	}

	for _, update := range req.LegUpdates {
		leg := findLeg(itinerary.Legs, update.LegNumber)
		if leg == nil {
			continue
		}
		oldCost := leg.LegCost

		if update.NewFlightID != "" {
			if err := uc.swapFlight(ctx, leg, update.NewFlightID); err != nil {
				return nil, err
			}
		}
		if update.NewHotelID != "" {
			if err := uc.swapHotel(ctx, leg, update.NewHotelID, itinerary.Travelers); err != nil {
				return nil, err
			}
		}

		leg.LegCost = domain.LegCost(leg.SelectedFlight, leg.SelectedHotel, itinerary.Travelers)
		itinerary.EstimatedTotalCost = domain.Round2(itinerary.EstimatedTotalCost - oldCost + leg.LegCost)
	}

	if req.Travelers != nil {
		itinerary.Travelers = *req.Travelers
	}

	now := uc.clock.Now()
	itinerary.LastModified = &now
	uc.store.Save(*itinerary)

	uc.log.Info().
		Str("itinerary_id", itinerary.ID).
		Int("leg_updates", len(req.LegUpdates)).
		Msg("itinerary updated")

	return itinerary, nil
}

// swapFlight replaces a leg's selected flight. The leg's stored alternatives
// are checked first; unknown IDs fall through to an inventory lookup. An ID
// the inventory cannot resolve either clears the selection.
func (uc *planningUseCase) swapFlight(ctx context.Context, leg *domain.ItineraryLeg, flightID string) error {
	for i := range leg.AlternativeFlights {
		if leg.AlternativeFlights[i].ID == flightID {
			f := leg.AlternativeFlights[i]
			leg.SelectedFlight = &f
			return nil
		}
	}
	flight, err := uc.flights.GetFlightByID(ctx, flightID)
	if err != nil {
		return err
	}
	leg.SelectedFlight = flight
	return nil
}

// swapHotel replaces a leg's selected hotel by re-searching the leg's stay
// window and matching the requested ID. Legs without a hotel window, such as
// the return leg, are left untouched. An ID missing from the re-search
// clears the selection.
func (uc *planningUseCase) swapHotel(ctx context.Context, leg *domain.ItineraryLeg, hotelID string, travelers int) error {
	if leg.HotelCheckIn == nil || leg.HotelCheckOut == nil {
		return nil
	}

	offers, err := uc.hotels.SearchHotels(ctx, domain.HotelSearchQuery{
		Location:     geo.CityName(leg.To),
		CheckInDate:  *leg.HotelCheckIn,
		CheckOutDate: *leg.HotelCheckOut,
		Guests:       travelers,
		Rooms:        1,
	})
	if err != nil {
		return err
	}
	var match *domain.HotelOffer
	for i := range offers {
		if offers[i].Hotel.ID == hotelID {
			o := offers[i]
			match = &o
			break
		}
	}
	leg.SelectedHotel = match
	return nil
}

func findLeg(legs []domain.ItineraryLeg, legNumber int) *domain.ItineraryLeg {
	for i := range legs {
		if legs[i].LegNumber == legNumber {
			return &legs[i]
		}
	}
	return nil
}

// pickFlight returns the flight with the preferred ID when present, falling
// back to the cheapest. Nil when the list is empty.
func pickFlight(flights []domain.Flight, preferredID string) *domain.Flight {
	if preferredID != "" {
		for i := range flights {
			if flights[i].ID == preferredID {
				f := flights[i]
				return &f
			}
		}
	}
	if cheapest := domain.CheapestFlight(flights); cheapest != nil {
		f := *cheapest
		return &f
	}
	return nil
}

// pickHotel mirrors pickFlight for hotel offers.
func pickHotel(offers []domain.HotelOffer, preferredID string) *domain.HotelOffer {
	if preferredID != "" {
		for i := range offers {
			if offers[i].Hotel.ID == preferredID {
				o := offers[i]
				return &o
			}
		}
	}
	if cheapest := domain.CheapestOffer(offers); cheapest != nil {
		o := *cheapest
		return &o
	}
	return nil
}

// withoutFlight returns every flight except the selected one.
func withoutFlight(flights []domain.Flight, selected *domain.Flight) []domain.Flight {
	out := make([]domain.Flight, 0, len(flights))
	for _, f := range flights {
		if selected != nil && f.ID == selected.ID {
			continue
		}
		out = append(out, f)
	}
	return out
}

// withoutHotel returns every offer except the selected one.
func withoutHotel(offers []domain.HotelOffer, selected *domain.HotelOffer) []domain.HotelOffer {
	out := make([]domain.HotelOffer, 0, len(offers))
	for _, o := range offers {
		if selected != nil && o.Hotel.ID == selected.Hotel.ID {
			continue
		}
		out = append(out, o)
	}
	return out
}
