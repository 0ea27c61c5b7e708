// Package geo provides static resolution between city names and IATA-style
// airport codes. The planning engines accept either form and normalize before
// querying inventories: flights are keyed by airport code, hotels by city.
package geo

import "strings"

// cityToAirport is the canonical set of supported destinations.
var cityToAirport = map[string]string{
	"new york":      "JFK",
	"los angeles":   "LAX",
	"chicago":       "ORD",
	"dallas":        "DFW",
	"denver":        "DEN",
	"san francisco": "SFO",
	"seattle":       "SEA",
	"miami":         "MIA",
	"boston":        "BOS",
	"atlanta":       "ATL",
	"london":        "LHR",
	"paris":         "CDG",
	"frankfurt":     "FRA",
	"tokyo":         "NRT",
	"sydney":        "SYD",
}

// airportToCity is the inverse mapping, built at init.
var airportToCity = func() map[string]string {
	m := make(map[string]string, len(cityToAirport))
	for city, code := range cityToAirport {
		m[strings.ToLower(code)] = canonicalCity(city)
	}
	return m
}()

// canonicalCity restores display casing for a lowercased city key.
func canonicalCity(lower string) string {
	words := strings.Fields(lower)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// AirportCode resolves a destination identifier to an airport code.
// Lookups are case-insensitive. Unknown identifiers are echoed back unchanged:
// callers may already pass valid codes the table does not know about.
func AirportCode(identifier string) string {
	if code, ok := cityToAirport[strings.ToLower(strings.TrimSpace(identifier))]; ok {
		return code
	}
	return identifier
}

// CityName resolves a destination identifier to a city name, with the same
// case-insensitive lookup and echo-on-miss behavior as AirportCode.
func CityName(identifier string) string {
	if city, ok := airportToCity[strings.ToLower(strings.TrimSpace(identifier))]; ok {
		return city
	}
	return identifier
}

// Cities returns the canonical city names of all supported destinations.
func Cities() []string {
	cities := make([]string, 0, len(cityToAirport))
	for city := range cityToAirport {
		cities = append(cities, canonicalCity(city))
	}
	return cities
}

// AirportCodes returns the airport codes of all supported destinations.
func AirportCodes() []string {
	codes := make([]string, 0, len(cityToAirport))
	for _, code := range cityToAirport {
		codes = append(codes, code)
	}
	return codes
}
