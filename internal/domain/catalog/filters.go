package catalog

import "github.com/vilis-app/carsrent-api/internal/models"

// SearchLimit caps every search result. There is no pagination protocol;
// the cap is a safety limit.
const SearchLimit = 300

// Filters describes a car search. Every field is optional; zero values
// mean "no constraint" and the active ones are AND-combined.
type Filters struct {
	// City match: agency HQ location OR any registered service city.
	Location string

	Category string

	// Inclusive bounds on the base daily price.
	MinPrice *float64
	MaxPrice *float64

	Chauffeur string
}

// Normalize blanks out a chauffeur value that is not a recognized policy,
// so junk input degrades to "no constraint" instead of an empty result.
func (f Filters) Normalize() Filters {
	if !models.IsValidChauffeurOption(f.Chauffeur) {
		f.Chauffeur = ""
	}
	return f
}
