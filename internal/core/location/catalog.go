package location

import "strings"

const defaultSuggestionLimit = 10

// RecommendedCities is offered when the user has not typed anything yet
var RecommendedCities = []string{
	"Mumbai", "Delhi", "Bangalore", "Chennai", "Kolkata",
	"New York", "London", "Tokyo", "Paris", "Sydney",
}

var builtinCatalog = []string{
	"Agra", "Ahmedabad", "Ajmer", "Allahabad", "Amritsar", "Aurangabad",
	"Bangalore", "Beijing", "Berlin", "Bhopal", "Bhubaneswar", "Cairo",
	"Chandigarh", "Chennai", "Chicago", "Coimbatore", "Dehradun", "Delhi",
	"Dhaka", "Dnipro", "Dubai", "Guwahati", "Hong Kong", "Hyderabad",
	"Indore", "Istanbul", "Jaipur", "Jodhpur", "Karachi", "Kharkiv",
	"Kochi", "Kolkata", "Kyiv", "Lagos", "Lisbon", "London", "Los Angeles",
	"Lucknow", "Lviv", "Madrid", "Madurai", "Manila", "Mexico City",
	"Moscow", "Mumbai", "Mysore", "Nagpur", "Nashik", "New York", "Noida",
	"Odesa", "Paris", "Patna", "Prague", "Pune", "Raipur", "Rio de Janeiro",
	"Rome", "Sao Paulo", "Seoul", "Shanghai", "Singapore", "Surat",
	"Sydney", "Tokyo", "Toronto", "Udaipur", "Vadodara", "Varanasi",
	"Vienna", "Warsaw",
}

// Catalog is a fixed list of known city names used for type-ahead suggestions
type Catalog struct {
	cities      []string
	recommended []string
}

// NewCatalog creates a catalog; nil slices fall back to the built-in lists
func NewCatalog(cities, recommended []string) *Catalog {
	if cities == nil {
		cities = builtinCatalog
	}
	if recommended == nil {
		recommended = RecommendedCities
	}
	return &Catalog{cities: cities, recommended: recommended}
}

// Suggest returns up to limit catalog cities starting with prefix, ignoring case.
// A city equal to the prefix is left out since the user already typed it.
func (c *Catalog) Suggest(prefix string, limit int) []string {
	if limit <= 0 {
		limit = defaultSuggestionLimit
	}

	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return firstN(c.recommended, limit)
	}

	lower := strings.ToLower(prefix)
	matches := make([]string, 0, limit)
	for _, city := range c.cities {
		if len(matches) == limit {
			break
		}
		if strings.HasPrefix(strings.ToLower(city), lower) && !strings.EqualFold(city, prefix) {
			matches = append(matches, city)
		}
	}
	return matches
}

func firstN(items []string, n int) []string {
	if len(items) < n {
		n = len(items)
	}
	out := make([]string, n)
	copy(out, items[:n])
	return out
}
