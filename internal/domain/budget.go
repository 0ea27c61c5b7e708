package domain

import (
	"fmt"
	"strings"
)

// Value score weights. The formula is a heuristic blend rewarding hotel
// quality, trip length and budget headroom:
//
//	ValueScore = starRating×15 + nights×10 + (remainingBudget/budget)×25
//
// The exact constants are preserved for output compatibility.
const (
	valueWeightStars  = 15.0
	valueWeightNights = 10.0
	valueWeightBudget = 25.0
)

// MaxBudgetOptions caps the number of options returned by the optimizer.
const MaxBudgetOptions = 20

// BudgetOptimizerRequest enumerates (destination × departure date × stay
// length) triples inside a window and keeps those within budget.
type BudgetOptimizerRequest struct {
	// Origin is the departure airport code
	Origin string `json:"origin"`

	// PreferredDestinations holds city names or airport codes
	PreferredDestinations []string `json:"preferredDestinations"`

	// EarliestDeparture and LatestReturn bound the travel window
	EarliestDeparture Date `json:"earliestDeparture"`
	LatestReturn      Date `json:"latestReturn"`

	// Budget is the total ceiling for flights plus hotel
	Budget float64 `json:"budget"`

	// Travelers is the party size (default: 1)
	Travelers int `json:"travelers"`

	// MinNights and MaxNights bound the stay length (defaults: 2 and 7)
	MinNights int `json:"minNights"`
	MaxNights int `json:"maxNights"`

	// MinHotelStars is the minimum acceptable hotel class (default: 3)
	MinHotelStars int `json:"minHotelStars"`
}

// SetDefaults applies default values to empty optional fields.
func (r *BudgetOptimizerRequest) SetDefaults() {
	if r.Travelers == 0 {
		r.Travelers = 1
	}
	if r.MinNights == 0 {
		r.MinNights = 2
	}
	if r.MaxNights == 0 {
		r.MaxNights = 7
	}
	if r.MinHotelStars == 0 {
		r.MinHotelStars = 3
	}
}

// Validate checks the request and returns a wrapped ErrInvalidRequest on
// failure. A non-positive budget is rejected here, before the search fan-out.
func (r *BudgetOptimizerRequest) Validate() error {
	if r.Origin == "" {
		return fmt.Errorf("%w: origin is required", ErrInvalidRequest)
	}
	if len(r.PreferredDestinations) == 0 {
		return fmt.Errorf("%w: at least one destination is required", ErrInvalidRequest)
	}
	if r.Budget <= 0 {
		return fmt.Errorf("%w: budget must be greater than zero", ErrInvalidRequest)
	}
	if r.EarliestDeparture.IsZero() || r.LatestReturn.IsZero() {
		return fmt.Errorf("%w: earliestDeparture and latestReturn are required", ErrInvalidRequest)
	}
	if !r.LatestReturn.After(r.EarliestDeparture) {
		return fmt.Errorf("%w: latestReturn must be after earliestDeparture", ErrInvalidRequest)
	}
	if r.MinNights < 1 {
		return fmt.Errorf("%w: minNights must be at least 1", ErrInvalidRequest)
	}
	if r.MaxNights < r.MinNights {
		return fmt.Errorf("%w: maxNights must be at least minNights", ErrInvalidRequest)
	}
	if r.MinHotelStars < 1 || r.MinHotelStars > 5 {
		return fmt.Errorf("%w: minHotelStars must be between 1 and 5", ErrInvalidRequest)
	}
	if r.Travelers < 1 {
		return fmt.Errorf("%w: travelers must be at least 1", ErrInvalidRequest)
	}
	return nil
}

// BudgetOption is a priced trip candidate that survived the budget filter.
// Invariants: TotalCost <= Budget and Hotel.Hotel.StarRating >= MinHotelStars.
type BudgetOption struct {
	// Destination is the resolved city name
	Destination string `json:"destination"`

	DepartureDate Date `json:"departureDate"`
	ReturnDate    Date `json:"returnDate"`
	Nights        int  `json:"nights"`

	OutboundFlight Flight     `json:"outboundFlight"`
	ReturnFlight   Flight     `json:"returnFlight"`
	Hotel          HotelOffer `json:"hotel"`

	TotalCost       float64 `json:"totalCost"`
	RemainingBudget float64 `json:"remainingBudget"`

	// ValueScore ranks options; higher is better. Not a monetary quantity.
	ValueScore float64 `json:"valueScore"`

	// ValueExplanation is a human-readable justification of the score
	ValueExplanation string `json:"valueExplanation"`
}

// ValueScore computes the ranking heuristic for a budget option.
func ValueScore(starRating, nights int, remainingBudget, totalBudget float64) float64 {
	starScore := float64(starRating) * valueWeightStars
	nightScore := float64(nights) * valueWeightNights
	budgetEfficiency := (remainingBudget / totalBudget) * valueWeightBudget
	return starScore + nightScore + budgetEfficiency
}

// ValueExplanation renders the human-readable score justification.
func ValueExplanation(starRating, nights int, remainingBudget, valueScore float64) string {
	var parts []string

	if starRating >= 4 {
		parts = append(parts, fmt.Sprintf("%d-star luxury accommodation", starRating))
	} else if starRating == 3 {
		parts = append(parts, "Comfortable 3-star hotel")
	}

	if nights >= 5 {
		parts = append(parts, fmt.Sprintf("Extended %d-night stay", nights))
	} else {
		parts = append(parts, fmt.Sprintf("%d-night getaway", nights))
	}

	if remainingBudget > 200 {
		parts = append(parts, fmt.Sprintf("$%.0f left for activities", remainingBudget))
	}

	return strings.Join(parts, ", ") + fmt.Sprintf(". Value score: %.1f", valueScore)
}

// BudgetOptimizerResponse holds the ranked surviving options (capped at
// MaxBudgetOptions) plus the notable picks and summary statistics.
type BudgetOptimizerResponse struct {
	Options []BudgetOption `json:"options"`

	// BestOption has the highest value score
	BestOption *BudgetOption `json:"bestOption,omitempty"`

	// LongestStayOption has the most nights
	LongestStayOption *BudgetOption `json:"longestStayOption,omitempty"`

	// BestHotelOption has the best hotel among 4-star-and-up options,
	// tie-broken by lowest total cost; nil when no option qualifies
	BestHotelOption *BudgetOption `json:"bestHotelOption,omitempty"`

	Summary BudgetSummary `json:"summary"`
}

// BudgetSummary carries statistics over all surviving options, before the cap.
type BudgetSummary struct {
	Budget                   float64 `json:"budget"`
	TotalOptionsFound        int     `json:"totalOptionsFound"`
	DestinationsWithinBudget int     `json:"destinationsWithinBudget"`
	AverageCostOfOptions     float64 `json:"averageCostOfOptions"`
}
