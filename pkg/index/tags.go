// Package index derives lookup structures from a catalog: the tag facets
// offered for browsing and a substring index over searchable text.
//
// Everything here is a pure function of the catalog it was built from and is
// never modified after Build returns.
package index

import (
	"slices"

	"github.com/bastiangx/dinesearch/pkg/catalog"
)

// TagIndex holds the distinct tags of a catalog in first-seen order.
type TagIndex struct {
	cuisine  []string
	location []string
	all      []string
}

// Build derives the tag facets of c. An empty or nil catalog gives empty
// facets.
func Build(c *catalog.Catalog) TagIndex {
	var (
		cuisine      = make([]string, 0)
		location     = make([]string, 0)
		seenCuisine  = make(map[string]struct{})
		seenLocation = make(map[string]struct{})
	)
	for _, r := range c.All() {
		for _, tag := range r.Tags {
			if _, ok := seenCuisine[tag]; !ok {
				seenCuisine[tag] = struct{}{}
				cuisine = append(cuisine, tag)
			}
		}
		if _, ok := seenLocation[r.Location]; !ok {
			seenLocation[r.Location] = struct{}{}
			location = append(location, r.Location)
		}
	}

	// Concatenation, not a union: a string that is both a tag and a location
	// shows up once in each half.
	all := make([]string, 0, len(cuisine)+len(location))
	all = append(all, cuisine...)
	all = append(all, location...)

	return TagIndex{cuisine: cuisine, location: location, all: all}
}

// Cuisine returns the distinct record tags.
func (ti TagIndex) Cuisine() []string { return slices.Clone(ti.cuisine) }

// Location returns the distinct record locations.
func (ti TagIndex) Location() []string { return slices.Clone(ti.location) }

// All returns Cuisine followed by Location.
func (ti TagIndex) All() []string { return slices.Clone(ti.all) }

// Browse returns the tags offered while f is the active facet.
func (ti TagIndex) Browse(f Facet) []string {
	switch f {
	case FacetCuisine:
		return ti.Cuisine()
	case FacetLocation:
		return ti.Location()
	default:
		return ti.All()
	}
}

// IsLocation reports whether tag is one of the catalog's locations.
// Surfaces use it to style location chips differently.
func (ti TagIndex) IsLocation(tag string) bool {
	return slices.Contains(ti.location, tag)
}
