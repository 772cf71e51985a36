package index

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFacet is returned by ParseFacet for names it does not know.
var ErrUnknownFacet = errors.New("unknown facet")

// Facet selects which slice of the tag index is offered for browsing.
// It never changes how results are filtered.
type Facet uint8

const (
	FacetAll Facet = iota
	FacetCuisine
	FacetLocation
)

// Facets lists every facet in display order.
var Facets = []Facet{FacetAll, FacetCuisine, FacetLocation}

func (f Facet) String() string {
	switch f {
	case FacetCuisine:
		return "cuisine"
	case FacetLocation:
		return "location"
	default:
		return "all"
	}
}

// Label is the title-cased name shown on facet buttons.
func (f Facet) Label() string {
	switch f {
	case FacetCuisine:
		return "Cuisine"
	case FacetLocation:
		return "Location"
	default:
		return "All"
	}
}

// ParseFacet maps "all", "cuisine" or "location" (any case) to a Facet.
// An empty name means FacetAll.
func ParseFacet(name string) (Facet, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "all":
		return FacetAll, nil
	case "cuisine":
		return FacetCuisine, nil
	case "location":
		return FacetLocation, nil
	}
	return FacetAll, fmt.Errorf("%w: %q", ErrUnknownFacet, name)
}

// Next cycles all -> cuisine -> location -> all.
func (f Facet) Next() Facet {
	return Facets[(int(f)+1)%len(Facets)]
}
