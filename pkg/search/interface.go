// Package search is the core, filtering a catalog by free text and selected
// tags and producing autocomplete suggestions for a query.
//
// The package-level functions Filter, Suggest and ToggleTag are the plain
// definitions and work on any catalog. Engine gives the same answers through
// a precomputed substring index and is what the surfaces use.
package search

import (
	"github.com/bastiangx/dinesearch/pkg/catalog"
	"github.com/bastiangx/dinesearch/pkg/index"
)

// Searcher is implemented by anything that can answer search reads for a
// fixed catalog.
type Searcher interface {
	// Filter returns the records matching query and selected, in catalog order.
	Filter(query string, selected TagSet) []catalog.Record

	// Suggest returns name suggestions followed by tag suggestions for query.
	Suggest(query string) []Suggestion

	// Tags returns the tag index of the catalog.
	Tags() index.TagIndex
}
