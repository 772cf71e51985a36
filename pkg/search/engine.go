package search

import (
	"github.com/bastiangx/dinesearch/pkg/catalog"
	"github.com/bastiangx/dinesearch/pkg/index"
	"github.com/charmbracelet/log"
)

// Engine answers Filter and Suggest for one catalog through substring
// indexes built up front. It is immutable and safe for concurrent use.
type Engine struct {
	catalog *catalog.Catalog
	tags    index.TagIndex
	allTags []string

	// record ordinal -> name, tags and location
	text *index.Substrings
	// record ordinal -> name
	names *index.Substrings
	// allTags position -> tag
	tagText *index.Substrings
}

var _ Searcher = (*Engine)(nil)

// NewEngine indexes c. A nil catalog behaves as an empty one.
func NewEngine(c *catalog.Catalog) *Engine {
	if c == nil {
		c = catalog.New()
	}
	e := &Engine{
		catalog: c,
		tags:    index.Build(c),
		text:    index.NewSubstrings(),
		names:   index.NewSubstrings(),
		tagText: index.NewSubstrings(),
	}
	e.allTags = e.tags.All()

	for i, r := range c.All() {
		e.names.Add(i, r.Name)
		e.text.Add(i, r.Name)
		e.text.Add(i, r.Location)
		for _, tag := range r.Tags {
			e.text.Add(i, tag)
		}
	}
	for i, tag := range e.allTags {
		e.tagText.Add(i, tag)
	}

	log.Debugf("Indexed %d restaurants and %d tags", c.Len(), len(e.allTags))
	return e
}

// Catalog returns the catalog the engine was built from.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Tags returns the catalog's tag index.
func (e *Engine) Tags() index.TagIndex {
	return e.tags
}

// Filter has the semantics of the package-level Filter.
func (e *Engine) Filter(query string, selected TagSet) []catalog.Record {
	out := make([]catalog.Record, 0, e.catalog.Len())
	if query == "" {
		for _, r := range e.catalog.All() {
			if matchesSelection(r, selected) {
				out = append(out, r)
			}
		}
		return out
	}
	for _, i := range e.text.Lookup(query) {
		r := e.catalog.At(i)
		if matchesSelection(r, selected) {
			out = append(out, r)
		}
	}
	return out
}

// Suggest has the semantics of the package-level Suggest with the engine's
// own tag index as allTags.
func (e *Engine) Suggest(query string) []Suggestion {
	out := make([]Suggestion, 0)
	if query == "" {
		return out
	}
	for _, i := range e.names.Lookup(query) {
		out = append(out, NameSuggestion(e.catalog.At(i).Name))
	}
	for _, i := range e.tagText.Lookup(query) {
		out = append(out, TagSuggestion(e.allTags[i]))
	}
	return out
}
