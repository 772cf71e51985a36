// Package feed groups catalog records into the carousels of the home screen.
package feed

import (
	"slices"

	"github.com/bastiangx/dinesearch/internal/utils"
	"github.com/bastiangx/dinesearch/pkg/catalog"
)

// DefaultOrder is the carousel order of the home screen.
var DefaultOrder = []string{"mustEats", "superDeals", "recommended", "streetFood", "dessert"}

var titles = map[string]string{
	"mustEats":    "Must Eats",
	"superDeals":  "Super Deals",
	"recommended": "Recommended",
	"streetFood":  "Street Food",
	"dessert":     "Desserts",
}

// Section is one carousel.
type Section struct {
	Key     string           `msgpack:"k"`
	Title   string           `msgpack:"t"`
	Records []catalog.Record `msgpack:"r"`
}

// Build groups the records of c by their Section field, keeping catalog
// order inside each group. Keys named in order come first, in that order,
// followed by any other keys in first-seen order. Records without a section
// are left out, as are keys in order that have no records.
func Build(c *catalog.Catalog, order ...string) []Section {
	groups := make(map[string][]catalog.Record)
	var seen []string
	for _, r := range c.All() {
		if r.Section == "" {
			continue
		}
		if _, ok := groups[r.Section]; !ok {
			seen = append(seen, r.Section)
		}
		groups[r.Section] = append(groups[r.Section], r)
	}

	keys := make([]string, 0, len(seen))
	for _, k := range order {
		if _, ok := groups[k]; ok && !slices.Contains(keys, k) {
			keys = append(keys, k)
		}
	}
	for _, k := range seen {
		if !slices.Contains(keys, k) {
			keys = append(keys, k)
		}
	}

	sections := make([]Section, 0, len(keys))
	for _, k := range keys {
		sections = append(sections, Section{Key: k, Title: Title(k), Records: groups[k]})
	}
	return sections
}

// Title returns the display title of a section key. Unknown keys are split
// on camelCase boundaries.
func Title(key string) string {
	if t, ok := titles[key]; ok {
		return t
	}
	return utils.TitleFromKey(key)
}
