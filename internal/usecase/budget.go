package usecase

import (
	"context"
	"sort"

	"github.com/trip-planner/travel-search-and-planning-system/internal/domain"
	"github.com/trip-planner/travel-search-and-planning-system/internal/geo"
)

// tripCandidate is one (destination, departure, nights) triple to price.
type tripCandidate struct {
	destination string
	departure   domain.Date
	nights      int
}

// OptimizeBudget enumerates every trip candidate inside the travel window,
// prices each one concurrently, keeps those whose flights plus hotel fit the
// budget, and ranks the survivors by value score.
func (uc *planningUseCase) OptimizeBudget(ctx context.Context, req domain.BudgetOptimizerRequest) (*domain.BudgetOptimizerResponse, error) {
	req.SetDefaults()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	origin := geo.AirportCode(req.Origin)
	candidates := enumerateTripCandidates(req)

	results := make([]*domain.BudgetOption, len(candidates))
	units := make([]searchUnit, len(candidates))
	for i, c := range candidates {
		units[i] = func(ctx context.Context) error {
			option, err := uc.priceTripCandidate(ctx, origin, c, req)
			if err != nil {
				return err
			}
			results[i] = option
			return nil
		}
	}

	if err := uc.fanOut(ctx, units); err != nil {
		return nil, err
	}

	survivors := make([]domain.BudgetOption, 0, len(results))
	for _, r := range results {
		if r != nil {
			survivors = append(survivors, *r)
		}
	}
	sort.SliceStable(survivors, func(i, j int) bool {
		return survivors[i].ValueScore > survivors[j].ValueScore
	})

	resp := &domain.BudgetOptimizerResponse{
		Summary: summarizeBudgetOptions(req.Budget, survivors),
	}
	if len(survivors) > 0 {
		resp.BestOption = &survivors[0]
		resp.LongestStayOption = longestStayOption(survivors)
		resp.BestHotelOption = bestHotelOption(survivors)
	}
	if len(survivors) > domain.MaxBudgetOptions {
		survivors = survivors[:domain.MaxBudgetOptions]
	}
	resp.Options = survivors
	return resp, nil
}

// enumerateTripCandidates expands the request into every destination ×
// departure date × stay length triple whose return date still fits the window.
func enumerateTripCandidates(req domain.BudgetOptimizerRequest) []tripCandidate {
	var candidates []tripCandidate
	for _, dest := range req.PreferredDestinations {
		for d := req.EarliestDeparture; !d.AddDays(req.MinNights).After(req.LatestReturn); d = d.AddDays(1) {
			for nights := req.MinNights; nights <= req.MaxNights; nights++ {
				if d.AddDays(nights).After(req.LatestReturn) {
					break
				}
				candidates = append(candidates, tripCandidate{
					destination: dest,
					departure:   d,
					nights:      nights,
				})
			}
		}
	}
	return candidates
}

// priceTripCandidate prices one candidate. It returns (nil, nil) when any
// component is unavailable or the total exceeds the budget.
func (uc *planningUseCase) priceTripCandidate(ctx context.Context, origin string, c tripCandidate, req domain.BudgetOptimizerRequest) (*domain.BudgetOption, error) {
	code := geo.AirportCode(c.destination)
	city := geo.CityName(c.destination)
	returnDate := c.departure.AddDays(c.nights)

	outbound, err := uc.flights.SearchFlights(ctx, domain.FlightSearchQuery{
		Origin:        origin,
		Destination:   code,
		DepartureDate: c.departure,
		Passengers:    req.Travelers,
	})
	if err != nil {
		return nil, err
	}
	inbound, err := uc.flights.SearchFlights(ctx, domain.FlightSearchQuery{
		Origin:        code,
		Destination:   origin,
		DepartureDate: returnDate,
		Passengers:    req.Travelers,
	})
	if err != nil {
		return nil, err
	}

	cheapestOut := domain.CheapestFlight(outbound)
	cheapestRet := domain.CheapestFlight(inbound)
	if cheapestOut == nil || cheapestRet == nil {
		return nil, nil
	}

	offers, err := uc.hotels.SearchHotels(ctx, domain.HotelSearchQuery{
		Location:     city,
		CheckInDate:  c.departure,
		CheckOutDate: returnDate,
		Guests:       req.Travelers,
		Rooms:        1,
	})
	if err != nil {
		return nil, err
	}

	qualified := offers[:0:0]
	for _, o := range offers {
		if o.Hotel.StarRating >= req.MinHotelStars {
			qualified = append(qualified, o)
		}
	}
	hotel := domain.CheapestOffer(qualified)
	if hotel == nil {
		return nil, nil
	}

	flightCost := (cheapestOut.Price + cheapestRet.Price) * float64(req.Travelers)
	totalCost := domain.Round2(flightCost + hotel.TotalPrice)
	if totalCost > req.Budget {
		return nil, nil
	}

	remaining := domain.Round2(req.Budget - totalCost)
	score := domain.ValueScore(hotel.Hotel.StarRating, c.nights, remaining, req.Budget)

	return &domain.BudgetOption{
		Destination:      city,
		DepartureDate:    c.departure,
		ReturnDate:       returnDate,
		Nights:           c.nights,
		OutboundFlight:   *cheapestOut,
		ReturnFlight:     *cheapestRet,
		Hotel:            *hotel,
		TotalCost:        totalCost,
		RemainingBudget:  remaining,
		ValueScore:       score,
		ValueExplanation: domain.ValueExplanation(hotel.Hotel.StarRating, c.nights, remaining, score),
	}, nil
}

// longestStayOption returns the option with the most nights. Ties resolve to
// the higher-ranked option.
func longestStayOption(ranked []domain.BudgetOption) *domain.BudgetOption {
	best := &ranked[0]
	for i := range ranked {
		if ranked[i].Nights > best.Nights {
			best = &ranked[i]
		}
	}
	return best
}

// bestHotelOption returns the highest-starred option at four stars or above,
// tie-broken by lowest total cost. Nil when no option qualifies.
func bestHotelOption(options []domain.BudgetOption) *domain.BudgetOption {
	var best *domain.BudgetOption
	for i := range options {
		o := &options[i]
		if o.Hotel.Hotel.StarRating < 4 {
			continue
		}
		if best == nil ||
			o.Hotel.Hotel.StarRating > best.Hotel.Hotel.StarRating ||
			(o.Hotel.Hotel.StarRating == best.Hotel.Hotel.StarRating && o.TotalCost < best.TotalCost) {
			best = o
		}
	}
	return best
}

func summarizeBudgetOptions(budget float64, options []domain.BudgetOption) domain.BudgetSummary {
	summary := domain.BudgetSummary{
		Budget:            budget,
		TotalOptionsFound: len(options),
	}
	if len(options) == 0 {
		return summary
	}

	var sum float64
	destinations := make(map[string]struct{})
	for _, o := range options {
		sum += o.TotalCost
		destinations[o.Destination] = struct{}{}
	}
	summary.DestinationsWithinBudget = len(destinations)
	summary.AverageCostOfOptions = domain.Round2(sum / float64(len(options)))
	return summary
}
