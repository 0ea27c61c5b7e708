package usecase

import (
	"context"
	"sort"

	"github.com/trip-planner/travel-search-and-planning-system/internal/domain"
	"github.com/trip-planner/travel-search-and-planning-system/internal/geo"
)

// FindFlexibleDates enumerates every departure date whose full trip still fits
// inside the range, prices the cheapest outbound and return flight for each
// pair concurrently, and aggregates the pairs that have both legs available.
func (uc *planningUseCase) FindFlexibleDates(ctx context.Context, req domain.FlexibleDateSearchRequest) (*domain.FlexibleDateSearchResponse, error) {
	req.SetDefaults()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	origin := geo.AirportCode(req.Origin)
	destination := geo.AirportCode(req.Destination)

	key := cacheKey("flexdates", req)
	if key != "" && uc.cache != nil {
		var cached domain.FlexibleDateSearchResponse
		hit, err := uc.cache.Get(ctx, key, &cached)
		if err != nil {
			uc.log.Warn().Err(err).Msg("search cache read failed")
		} else if hit {
			uc.log.Debug().Str("key", key).Msg("flexible date search served from cache")
			return &cached, nil
		}
	}

	// One result slot per candidate departure; nil means the pair had no
	// availability on at least one leg.
	var departures []domain.Date
	for d := req.StartDate; !d.AddDays(req.TripLength).After(req.EndDate); d = d.AddDays(1) {
		departures = append(departures, d)
	}

	results := make([]*domain.DateOption, len(departures))
	units := make([]searchUnit, len(departures))
	for i, departure := range departures {
		units[i] = func(ctx context.Context) error {
			returnDate := departure.AddDays(req.TripLength)

			outbound, err := uc.flights.SearchFlights(ctx, domain.FlightSearchQuery{
				Origin:        origin,
				Destination:   destination,
				DepartureDate: departure,
				Passengers:    req.Passengers,
			})
			if err != nil {
				return err
			}
			inbound, err := uc.flights.SearchFlights(ctx, domain.FlightSearchQuery{
				Origin:        destination,
				Destination:   origin,
				DepartureDate: returnDate,
				Passengers:    req.Passengers,
			})
			if err != nil {
				return err
			}

			cheapestOut := domain.CheapestFlight(outbound)
			cheapestRet := domain.CheapestFlight(inbound)
			if cheapestOut == nil || cheapestRet == nil {
				return nil
			}

			option := domain.NewDateOption(departure, returnDate, *cheapestOut, *cheapestRet, req.Passengers)
			results[i] = &option
			return nil
		}
	}

	if err := uc.fanOut(ctx, units); err != nil {
		return nil, err
	}

	options := make([]domain.DateOption, 0, len(results))
	for _, r := range results {
		if r != nil {
			options = append(options, *r)
		}
	}
	sort.SliceStable(options, func(i, j int) bool {
		return options[i].TotalFlightCost < options[j].TotalFlightCost
	})

	resp := &domain.FlexibleDateSearchResponse{Options: options}
	if len(options) > 0 {
		resp.CheapestOption = &options[0]
		resp.BestValue = bestValueOption(options)
		resp.Summary = summarizeDateOptions(options)
	}

	if key != "" && uc.cache != nil {
		if err := uc.cache.Set(ctx, key, resp, uc.cfg.CacheTTL); err != nil {
			uc.log.Warn().Err(err).Msg("search cache write failed")
		}
	}

	return resp, nil
}

// bestValueOption prefers the cheapest weekday departure; weekend departures
// tend to carry a price premium without adding value. Falls back to the
// cheapest overall when every option departs on a weekend.
func bestValueOption(sorted []domain.DateOption) *domain.DateOption {
	for i := range sorted {
		if !sorted[i].IsWeekend {
			return &sorted[i]
		}
	}
	return &sorted[0]
}

func summarizeDateOptions(options []domain.DateOption) domain.FlexibleDateSummary {
	lowest := options[0].TotalFlightCost
	highest := options[0].TotalFlightCost
	var sum float64
	for _, o := range options {
		sum += o.TotalFlightCost
		if o.TotalFlightCost < lowest {
			lowest = o.TotalFlightCost
		}
		if o.TotalFlightCost > highest {
			highest = o.TotalFlightCost
		}
	}
	return domain.FlexibleDateSummary{
		AveragePrice:         domain.Round2(sum / float64(len(options))),
		LowestPrice:          lowest,
		HighestPrice:         highest,
		PotentialSavings:     domain.Round2(highest - lowest),
		TotalOptionsSearched: len(options),
	}
}
