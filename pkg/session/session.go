/*
Package session tracks the state of one search screen: the free-text query,
the selected tags and the facet used for browsing tags.

Every read is derived from the current state through a search.Searcher. The
derived values are memoized and the memo is dropped on every mutation, so a
read always reflects the latest committed state.

	s := session.New(search.NewEngine(catalog.Seed()))
	s.EditQuery("ital")
	for _, sug := range s.Suggestions() {
		fmt.Println(sug.Kind, sug.Value)
	}
	s.Select(search.TagSuggestion("Italian")) // toggles the tag, clears the query
*/
package session

import (
	"slices"
	"sync"

	"github.com/bastiangx/dinesearch/pkg/catalog"
	"github.com/bastiangx/dinesearch/pkg/index"
	"github.com/bastiangx/dinesearch/pkg/search"
	"github.com/charmbracelet/log"
)

// Snapshot is the full derived view of a session at one point in time.
type Snapshot struct {
	Query    string
	Selected []string
	Facet    index.Facet

	// BrowsableTags is the slice of the tag index offered by Facet.
	BrowsableTags []string
	Results       []catalog.Record
	Suggestions   []search.Suggestion

	// Empty is set when no record passes the filters. Surfaces render an
	// explicit no-results state for it.
	Empty bool
}

// Option configures a Session.
type Option func(*Session)

// WithFacet sets the facet a new or reset session starts on.
func WithFacet(f index.Facet) Option {
	return func(s *Session) {
		s.defaultFacet = f
	}
}

// Session is safe for concurrent use. Each read completes before the next
// mutation is applied.
type Session struct {
	mu       sync.Mutex
	searcher search.Searcher

	query        string
	selected     search.TagSet
	facet        index.Facet
	defaultFacet index.Facet

	memo *Snapshot
}

// New starts a session over searcher with an empty query and selection.
func New(searcher search.Searcher, opts ...Option) *Session {
	s := &Session{searcher: searcher}
	for _, opt := range opts {
		opt(s)
	}
	s.facet = s.defaultFacet
	return s
}

// EditQuery replaces the free-text query.
func (s *Session) EditQuery(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = text
	s.invalidate()
}

// ToggleTag flips tag in the selection and clears the query, which also
// clears the suggestions.
func (s *Session) ToggleTag(tag string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.toggle(tag)
}

func (s *Session) toggle(tag string) {
	s.selected = search.ToggleTag(s.selected, tag)
	s.query = ""
	s.invalidate()
	log.Debug("Toggled tag", "tag", tag, "selected", s.selected.Len())
}

// SetFacet changes which tags are offered for browsing. Results are not
// affected.
func (s *Session) SetFacet(f index.Facet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.facet = f
	s.invalidate()
}

// Select applies a picked suggestion. A name replaces the query, a tag is
// toggled as by ToggleTag.
func (s *Session) Select(sug search.Suggestion) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch sug.Kind {
	case search.KindName:
		s.query = sug.Value
		s.invalidate()
	case search.KindTag:
		s.toggle(sug.Value)
	default:
		log.Warnf("Ignoring suggestion of unknown kind %d", sug.Kind)
	}
}

// Reset clears the query and selection and returns to the starting facet.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = ""
	s.selected = search.TagSet{}
	s.facet = s.defaultFacet
	s.invalidate()
}

// Query returns the current free-text query.
func (s *Session) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// Selected returns the current tag selection.
func (s *Session) Selected() search.TagSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

// Facet returns the active browsing facet.
func (s *Session) Facet() index.Facet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.facet
}

// Tags returns the tag index of the session's catalog.
func (s *Session) Tags() index.TagIndex {
	return s.searcher.Tags()
}

// Results returns the visible records.
func (s *Session) Results() []catalog.Record {
	return slices.Clone(s.Snapshot().Results)
}

// Suggestions returns the current autocomplete candidates.
func (s *Session) Suggestions() []search.Suggestion {
	return slices.Clone(s.Snapshot().Suggestions)
}

// BrowsableTags returns the tags offered by the active facet.
func (s *Session) BrowsableTags() []string {
	return slices.Clone(s.Snapshot().BrowsableTags)
}

// Snapshot returns the derived view of the current state. The returned value
// shares nothing with the session.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.memo == nil {
		s.memo = s.derive()
	}
	return s.memo.clone()
}

func (s *Session) derive() *Snapshot {
	results := s.searcher.Filter(s.query, s.selected)
	return &Snapshot{
		Query:         s.query,
		Selected:      s.selected.Slice(),
		Facet:         s.facet,
		BrowsableTags: s.searcher.Tags().Browse(s.facet),
		Results:       results,
		Suggestions:   s.searcher.Suggest(s.query),
		Empty:         len(results) == 0,
	}
}

func (s *Session) invalidate() {
	s.memo = nil
}

func (snap *Snapshot) clone() Snapshot {
	out := *snap
	out.Selected = slices.Clone(snap.Selected)
	out.BrowsableTags = slices.Clone(snap.BrowsableTags)
	out.Results = make([]catalog.Record, len(snap.Results))
	for i, r := range snap.Results {
		r.Tags = slices.Clone(r.Tags)
		out.Results[i] = r
	}
	out.Suggestions = slices.Clone(snap.Suggestions)
	return out
}
