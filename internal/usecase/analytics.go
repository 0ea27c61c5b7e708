package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/trip-planner/travel-search-and-planning-system/internal/domain"
	"github.com/trip-planner/travel-search-and-planning-system/internal/geo"
)

// weekdaySavingsThreshold is the minimum weekend premium, in dollars, worth
// calling out in the recommendations.
const weekdaySavingsThreshold = 20.0

// destinationSamples accumulates raw price samples for one destination.
type destinationSamples struct {
	city         string
	flightPrices []float64
	hotelNightly []float64
	byWeekday    map[time.Weekday][]float64
}

// AnalyzeTrends samples one-passenger flight prices for every day of the
// period and one-night hotel rates for every night, per destination, then
// derives averages, day-of-week patterns and booking recommendations.
// Destinations are walked one at a time in request order; a destination
// whose sampling fails is skipped, while context errors abort the request.
func (uc *planningUseCase) AnalyzeTrends(ctx context.Context, req domain.TripAnalyticsRequest) (*domain.TripAnalyticsResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	origin := geo.AirportCode(req.Origin)

	samples := make([]*destinationSamples, 0, len(req.Destinations))
	for _, dest := range req.Destinations {
		s, err := uc.sampleDestination(ctx, origin, dest, req.StartDate, req.EndDate)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, err
			}
			uc.log.Warn().
				Err(err).
				Str("destination", dest).
				Msg("trend sampling failed, skipping destination")
			continue
		}
		samples = append(samples, s)
	}

	resp := &domain.TripAnalyticsResponse{
		DestinationInsights: make([]domain.DestinationInsight, 0, len(samples)),
	}

	var allFlights, allHotels []float64
	var weekdaySum, weekendSum float64
	var weekdayCount, weekendCount int

	for _, s := range samples {
		resp.DestinationInsights = append(resp.DestinationInsights, domain.DestinationInsight{
			Destination:               s.city,
			AverageFlightPrice:        roundedAverage(s.flightPrices),
			AverageHotelPricePerNight: roundedAverage(s.hotelNightly),
			CheapestDayToFly:          cheapestWeekday(s.byWeekday),
			FlightOptionsCount:        len(s.flightPrices),
			HotelOptionsCount:         len(s.hotelNightly),
		})

		allFlights = append(allFlights, s.flightPrices...)
		allHotels = append(allHotels, s.hotelNightly...)
		for day, prices := range s.byWeekday {
			for _, p := range prices {
				if day == time.Saturday || day == time.Sunday {
					weekendSum += p
					weekendCount++
				} else {
					weekdaySum += p
					weekdayCount++
				}
			}
		}
	}

	resp.PriceTrends = domain.PriceTrends{
		OverallAverageFlightPrice: roundedAverage(allFlights),
		OverallAverageHotelPrice:  roundedAverage(allHotels),
		BestDayOfWeekToBook:       "Tuesday",
	}

	var weekendPremium float64
	if weekdayCount > 0 && weekendCount > 0 {
		weekendPremium = domain.Round2(weekendSum/float64(weekendCount) - weekdaySum/float64(weekdayCount))
		resp.PriceTrends.WeekdayVsWeekendPriceDifference = weekendPremium
	}

	resp.Recommendations = buildRecommendations(resp.DestinationInsights, weekendPremium)
	return resp, nil
}

// sampleDestination walks the period day by day, collecting flight fares for
// every day and one-night hotel rates for every night of the period.
func (uc *planningUseCase) sampleDestination(ctx context.Context, origin, dest string, start, end domain.Date) (*destinationSamples, error) {
	code := geo.AirportCode(dest)
	s := &destinationSamples{
		city:      geo.CityName(dest),
		byWeekday: make(map[time.Weekday][]float64),
	}

	for d := start; !d.After(end); d = d.AddDays(1) {
		flights, err := uc.flights.SearchFlights(ctx, domain.FlightSearchQuery{
			Origin:        origin,
			Destination:   code,
			DepartureDate: d,
			Passengers:    1,
		})
		if err != nil {
			return nil, err
		}
		for _, f := range flights {
			s.flightPrices = append(s.flightPrices, f.Price)
			s.byWeekday[d.Weekday()] = append(s.byWeekday[d.Weekday()], f.Price)
		}

		// The last day of the period has no following night to price.
		if d.Before(end) {
			offers, err := uc.hotels.SearchHotels(ctx, domain.HotelSearchQuery{
				Location:     s.city,
				CheckInDate:  d,
				CheckOutDate: d.AddDays(1),
				Guests:       1,
				Rooms:        1,
			})
			if err != nil {
				return nil, err
			}
			for _, o := range offers {
				s.hotelNightly = append(s.hotelNightly, o.Hotel.PricePerNight)
			}
		}
	}

	return s, nil
}

// cheapestWeekday returns the name of the weekday with the lowest average
// fare, or empty when no samples exist. Ties resolve to the earlier weekday,
// keeping the result stable across runs.
func cheapestWeekday(byWeekday map[time.Weekday][]float64) string {
	best := ""
	bestAvg := 0.0
	for day := time.Sunday; day <= time.Saturday; day++ {
		prices := byWeekday[day]
		if len(prices) == 0 {
			continue
		}
		var sum float64
		for _, p := range prices {
			sum += p
		}
		avg := sum / float64(len(prices))
		if best == "" || avg < bestAvg {
			best = day.String()
			bestAvg = avg
		}
	}
	return best
}

func buildRecommendations(insights []domain.DestinationInsight, weekendPremium float64) []string {
	var recs []string

	if best := bestValueInsight(insights); best != nil {
		recs = append(recs, fmt.Sprintf(
			"Best value destination: %s with avg flight $%.0f and hotel $%.0f/night",
			best.Destination, best.AverageFlightPrice, best.AverageHotelPricePerNight))
	}
	if weekendPremium > weekdaySavingsThreshold {
		recs = append(recs, fmt.Sprintf(
			"Save an average of $%.0f by flying on weekdays instead of weekends",
			weekendPremium))
	}
	recs = append(recs,
		"Book Tuesday or Wednesday for typically lower prices",
		"Consider flexible dates to find the best deals",
	)
	return recs
}

// bestValueInsight returns the destination with the lowest combined average
// flight fare and nightly hotel rate.
func bestValueInsight(insights []domain.DestinationInsight) *domain.DestinationInsight {
	var best *domain.DestinationInsight
	for i := range insights {
		combined := insights[i].AverageFlightPrice + insights[i].AverageHotelPricePerNight
		if best == nil || combined < best.AverageFlightPrice+best.AverageHotelPricePerNight {
			best = &insights[i]
		}
	}
	return best
}

func roundedAverage(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return domain.Round2(sum / float64(len(values)))
}
