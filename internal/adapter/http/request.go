// Package http provides the HTTP handler layer for the travel planning API.
// It handles request parsing, validation, and response formatting.
package http

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/trip-planner/travel-search-and-planning-system/internal/domain"
)

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// queryParser collects typed query parameters, accumulating per-field parse
// errors instead of failing on the first one. Semantic validation (required
// fields, ranges, date ordering) happens in the domain request's Validate.
type queryParser struct {
	c    echo.Context
	errs *ValidationErrors
}

func newQueryParser(c echo.Context) *queryParser {
	return &queryParser{c: c, errs: &ValidationErrors{}}
}

func (p *queryParser) str(name string) string {
	return strings.TrimSpace(p.c.QueryParam(name))
}

// strList parses a comma-separated parameter, dropping empty entries.
func (p *queryParser) strList(name string) []string {
	raw := p.c.QueryParam(name)
	if raw == "" {
		return nil
	}
	var values []string
	for _, v := range strings.Split(raw, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return values
}

func (p *queryParser) date(name string) domain.Date {
	raw := p.str(name)
	if raw == "" {
		return domain.Date{}
	}
	d, err := domain.ParseDate(raw)
	if err != nil {
		p.errs.Add(name, name+" must be a date in YYYY-MM-DD format")
		return domain.Date{}
	}
	return d
}

func (p *queryParser) intVal(name string) int {
	raw := p.str(name)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		p.errs.Add(name, name+" must be an integer")
		return 0
	}
	return n
}

func (p *queryParser) floatVal(name string) float64 {
	raw := p.str(name)
	if raw == "" {
		return 0
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		p.errs.Add(name, name+" must be a number")
		return 0
	}
	return f
}

func (p *queryParser) boolVal(name string) bool {
	raw := p.str(name)
	if raw == "" {
		return false
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		p.errs.Add(name, name+" must be a boolean")
		return false
	}
	return b
}

func (p *queryParser) result() error {
	if p.errs.HasErrors() {
		return p.errs
	}
	return nil
}

// ParseFlexibleDateRequest builds a flexible-date search request from query
// parameters.
func ParseFlexibleDateRequest(c echo.Context) (domain.FlexibleDateSearchRequest, error) {
	p := newQueryParser(c)
	req := domain.FlexibleDateSearchRequest{
		Origin:      p.str("origin"),
		Destination: p.str("destination"),
		StartDate:   p.date("startDate"),
		EndDate:     p.date("endDate"),
		Passengers:  p.intVal("passengers"),
		TripLength:  p.intVal("tripLength"),
	}
	return req, p.result()
}

// ParsePriceComparisonRequest builds a destination comparison request from
// query parameters. Destinations are comma-separated.
func ParsePriceComparisonRequest(c echo.Context) (domain.PriceComparisonRequest, error) {
	p := newQueryParser(c)
	req := domain.PriceComparisonRequest{
		Origin:        p.str("origin"),
		Destinations:  p.strList("destinations"),
		DepartureDate: p.date("departureDate"),
		ReturnDate:    p.date("returnDate"),
		Travelers:     p.intVal("travelers"),
		IncludeHotels: p.boolVal("includeHotels"),
	}
	return req, p.result()
}

// ParseBudgetOptimizerRequest builds a budget optimizer request from query
// parameters.
func ParseBudgetOptimizerRequest(c echo.Context) (domain.BudgetOptimizerRequest, error) {
	p := newQueryParser(c)
	req := domain.BudgetOptimizerRequest{
		Origin:                p.str("origin"),
		PreferredDestinations: p.strList("destinations"),
		EarliestDeparture:     p.date("earliestDeparture"),
		LatestReturn:          p.date("latestReturn"),
		Budget:                p.floatVal("budget"),
		Travelers:             p.intVal("travelers"),
		MinNights:             p.intVal("minNights"),
		MaxNights:             p.intVal("maxNights"),
		MinHotelStars:         p.intVal("minHotelStars"),
	}
	return req, p.result()
}

// ParseTripAnalyticsRequest builds a trip analytics request from query
// parameters.
func ParseTripAnalyticsRequest(c echo.Context) (domain.TripAnalyticsRequest, error) {
	p := newQueryParser(c)
	req := domain.TripAnalyticsRequest{
		Origin:       p.str("origin"),
		Destinations: p.strList("destinations"),
		StartDate:    p.date("startDate"),
		EndDate:      p.date("endDate"),
	}
	return req, p.result()
}
