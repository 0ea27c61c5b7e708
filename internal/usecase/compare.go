package usecase

import (
	"context"
	"sort"

	"github.com/trip-planner/travel-search-and-planning-system/internal/domain"
	"github.com/trip-planner/travel-search-and-planning-system/internal/geo"
)

// Minimum option counts for a destination to qualify as best value. A single
// matching flight or hotel gives the traveler no room to adjust, so the pick
// requires some depth on both.
const (
	minFlightOptionsForValue = 2
	minHotelOptionsForValue  = 2
)

// CompareDestinations prices the same travel window across every requested
// destination concurrently. Destinations with no availability on either
// flight leg are dropped from the comparison.
func (uc *planningUseCase) CompareDestinations(ctx context.Context, req domain.PriceComparisonRequest) (*domain.PriceComparisonResponse, error) {
	req.SetDefaults()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	origin := geo.AirportCode(req.Origin)

	results := make([]*domain.DestinationComparison, len(req.Destinations))
	units := make([]searchUnit, len(req.Destinations))
	for i, dest := range req.Destinations {
		units[i] = func(ctx context.Context) error {
			code := geo.AirportCode(dest)
			city := geo.CityName(dest)

			outbound, err := uc.flights.SearchFlights(ctx, domain.FlightSearchQuery{
				Origin:        origin,
				Destination:   code,
				DepartureDate: req.DepartureDate,
				Passengers:    req.Travelers,
			})
			if err != nil {
				return err
			}
			inbound, err := uc.flights.SearchFlights(ctx, domain.FlightSearchQuery{
				Origin:        code,
				Destination:   origin,
				DepartureDate: req.ReturnDate,
				Passengers:    req.Travelers,
			})
			if err != nil {
				return err
			}

			cheapestOut := domain.CheapestFlight(outbound)
			cheapestRet := domain.CheapestFlight(inbound)
			if cheapestOut == nil || cheapestRet == nil {
				return nil
			}

			comparison := domain.DestinationComparison{
				Destination:            code,
				DestinationCity:        city,
				CheapestOutboundFlight: *cheapestOut,
				CheapestReturnFlight:   *cheapestRet,
				FlightCost:             domain.Round2((cheapestOut.Price + cheapestRet.Price) * float64(req.Travelers)),
				AvailableFlightOptions: len(outbound) + len(inbound),
			}
			comparison.TotalCost = comparison.FlightCost

			if req.IncludeHotels {
				offers, err := uc.hotels.SearchHotels(ctx, domain.HotelSearchQuery{
					Location:     city,
					CheckInDate:  req.DepartureDate,
					CheckOutDate: req.ReturnDate,
					Guests:       req.Travelers,
					Rooms:        1,
				})
				if err != nil {
					return err
				}
				comparison.AvailableHotelOptions = len(offers)
				if cheapest := domain.CheapestOffer(offers); cheapest != nil {
					comparison.CheapestHotel = cheapest
					hotelCost := cheapest.TotalPrice
					comparison.HotelCost = &hotelCost
					comparison.TotalCost = domain.Round2(comparison.FlightCost + hotelCost)
				}
			}

			results[i] = &comparison
			return nil
		}
	}

	if err := uc.fanOut(ctx, units); err != nil {
		return nil, err
	}

	comparisons := make([]domain.DestinationComparison, 0, len(results))
	for _, r := range results {
		if r != nil {
			comparisons = append(comparisons, *r)
		}
	}
	sort.SliceStable(comparisons, func(i, j int) bool {
		return comparisons[i].TotalCost < comparisons[j].TotalCost
	})

	resp := &domain.PriceComparisonResponse{Comparisons: comparisons}
	if len(comparisons) > 0 {
		resp.CheapestDestination = &comparisons[0]
		resp.BestValueDestination = bestValueDestination(comparisons)
		resp.Summary = summarizeComparisons(comparisons)
	}
	return resp, nil
}

// bestValueDestination returns the cheapest destination with enough depth in
// both inventories, falling back to the cheapest overall.
func bestValueDestination(sorted []domain.DestinationComparison) *domain.DestinationComparison {
	for i := range sorted {
		if sorted[i].AvailableFlightOptions >= minFlightOptionsForValue &&
			sorted[i].AvailableHotelOptions >= minHotelOptionsForValue {
			return &sorted[i]
		}
	}
	return &sorted[0]
}

func summarizeComparisons(comparisons []domain.DestinationComparison) domain.ComparisonSummary {
	var sum float64
	cheapest := comparisons[0].TotalCost
	mostExpensive := comparisons[0].TotalCost
	for _, c := range comparisons {
		sum += c.TotalCost
		if c.TotalCost < cheapest {
			cheapest = c.TotalCost
		}
		if c.TotalCost > mostExpensive {
			mostExpensive = c.TotalCost
		}
	}
	return domain.ComparisonSummary{
		DestinationsCompared:    len(comparisons),
		CheapestTotalPrice:      cheapest,
		MostExpensiveTotalPrice: mostExpensive,
		AveragePrice:            domain.Round2(sum / float64(len(comparisons))),
	}
}
