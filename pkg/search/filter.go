package search

import (
	"github.com/bastiangx/dinesearch/internal/utils"
	"github.com/bastiangx/dinesearch/pkg/catalog"
)

// Filter returns the records of c that pass both the text and the tag step,
// in catalog order.
//
// The text step, active for a non-empty query, keeps records whose name, any
// tag, or location contains the query case-insensitively. The tag step, active
// for a non-empty selection, keeps records carrying at least one selected tag
// exactly, either in Tags or as Location. Selecting more tags therefore widens
// the result.
func Filter(c *catalog.Catalog, query string, selected TagSet) []catalog.Record {
	q := utils.Fold(query)
	out := make([]catalog.Record, 0, c.Len())
	for _, r := range c.All() {
		if matchesText(r, q) && matchesSelection(r, selected) {
			out = append(out, r)
		}
	}
	return out
}

// matchesText expects an already folded query.
func matchesText(r catalog.Record, q string) bool {
	if q == "" {
		return true
	}
	if utils.ContainsFold(r.Name, q) || utils.ContainsFold(r.Location, q) {
		return true
	}
	for _, tag := range r.Tags {
		if utils.ContainsFold(tag, q) {
			return true
		}
	}
	return false
}

func matchesSelection(r catalog.Record, selected TagSet) bool {
	if selected.Len() == 0 {
		return true
	}
	if selected.Has(r.Location) {
		return true
	}
	for _, tag := range r.Tags {
		if selected.Has(tag) {
			return true
		}
	}
	return false
}
