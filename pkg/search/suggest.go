package search

import (
	"github.com/bastiangx/dinesearch/internal/utils"
	"github.com/bastiangx/dinesearch/pkg/catalog"
)

// Suggest returns autocomplete candidates for query: a name suggestion for
// every record whose name contains the query, in catalog order, then a tag
// suggestion for every entry of allTags containing it, in allTags order.
// Matching is case-insensitive. Nothing is deduplicated, ranked or capped.
//
// An empty query suppresses suggestions entirely.
func Suggest(c *catalog.Catalog, allTags []string, query string) []Suggestion {
	out := make([]Suggestion, 0)
	if query == "" {
		return out
	}
	q := utils.Fold(query)
	for _, r := range c.All() {
		if utils.ContainsFold(r.Name, q) {
			out = append(out, NameSuggestion(r.Name))
		}
	}
	for _, tag := range allTags {
		if utils.ContainsFold(tag, q) {
			out = append(out, TagSuggestion(tag))
		}
	}
	return out
}
