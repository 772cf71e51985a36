package session

import (
	"sync"
	"testing"

	"github.com/bastiangx/dinesearch/pkg/catalog"
	"github.com/bastiangx/dinesearch/pkg/index"
	"github.com/bastiangx/dinesearch/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingSearcher records how often derivations run.
type countingSearcher struct {
	*search.Engine
	filters  int
	suggests int
}

func (c *countingSearcher) Filter(q string, sel search.TagSet) []catalog.Record {
	c.filters++
	return c.Engine.Filter(q, sel)
}

func (c *countingSearcher) Suggest(q string) []search.Suggestion {
	c.suggests++
	return c.Engine.Suggest(q)
}

func newSeedSession(opts ...Option) *Session {
	return New(search.NewEngine(catalog.Seed()), opts...)
}

func names(records []catalog.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Name
	}
	return out
}

func TestNewSessionShowsWholeCatalog(t *testing.T) {
	s := newSeedSession()
	snap := s.Snapshot()

	assert.Equal(t, "", snap.Query)
	assert.Empty(t, snap.Selected)
	assert.Equal(t, index.FacetAll, snap.Facet)
	assert.Len(t, snap.Results, 6)
	assert.Empty(t, snap.Suggestions)
	assert.False(t, snap.Empty)
	assert.Equal(t, s.Tags().All(), snap.BrowsableTags)
}

func TestEditQuery(t *testing.T) {
	s := newSeedSession()
	s.EditQuery("it")

	assert.Equal(t, []string{"Italian Bistro"}, names(s.Results())[:1])
	assert.Equal(t, []search.Suggestion{
		search.NameSuggestion("Italian Bistro"),
		search.TagSuggestion("Italian"),
	}, s.Suggestions())
}

func TestToggleTagClearsQuery(t *testing.T) {
	s := newSeedSession()
	s.EditQuery("sushi")
	require.NotEmpty(t, s.Suggestions())

	s.ToggleTag("Downtown")
	assert.Equal(t, "", s.Query())
	assert.Empty(t, s.Suggestions())
	assert.True(t, s.Selected().Has("Downtown"))
	assert.Equal(t, []string{"Italian Bistro", "Taco Fiesta"}, names(s.Results()))

	s.ToggleTag("Downtown")
	assert.Equal(t, 0, s.Selected().Len())
	assert.Len(t, s.Results(), 6)
}

func TestSelectSuggestion(t *testing.T) {
	s := newSeedSession()

	s.EditQuery("piz")
	s.Select(search.NameSuggestion("Pizza Corner"))
	assert.Equal(t, "Pizza Corner", s.Query())
	assert.Equal(t, []string{"Pizza Corner"}, names(s.Results()))
	assert.Equal(t, []search.Suggestion{search.NameSuggestion("Pizza Corner")}, s.Suggestions())

	s.Select(search.TagSuggestion("Uptown"))
	assert.Equal(t, "", s.Query())
	assert.Empty(t, s.Suggestions())
	assert.Equal(t, []string{"Uptown"}, s.Snapshot().Selected)
	assert.Equal(t, []string{"Sushi World"}, names(s.Results()))
}

func TestSelectUnknownKindIsIgnored(t *testing.T) {
	s := newSeedSession()
	s.EditQuery("taco")
	s.Select(search.Suggestion{Kind: search.Kind(9), Value: "Taco Fiesta"})
	assert.Equal(t, "taco", s.Query())
	assert.Equal(t, 0, s.Selected().Len())
}

func TestFacetDoesNotChangeResults(t *testing.T) {
	s := newSeedSession()
	s.ToggleTag("Italian")
	s.ToggleTag("Uptown")
	before := s.Results()

	for _, f := range index.Facets {
		s.SetFacet(f)
		assert.Equal(t, before, s.Results(), f.String())
		assert.Equal(t, s.Tags().Browse(f), s.BrowsableTags(), f.String())
	}
}

func TestEmptyState(t *testing.T) {
	s := newSeedSession()
	s.EditQuery("zzz")
	snap := s.Snapshot()
	assert.True(t, snap.Empty)
	assert.Empty(t, snap.Results)
	assert.Empty(t, snap.Suggestions)
}

func TestReset(t *testing.T) {
	s := newSeedSession(WithFacet(index.FacetLocation))
	assert.Equal(t, index.FacetLocation, s.Facet())

	s.ToggleTag("Italian")
	s.EditQuery("pizza")
	s.SetFacet(index.FacetCuisine)
	s.Reset()

	assert.Equal(t, "", s.Query())
	assert.Equal(t, 0, s.Selected().Len())
	assert.Equal(t, index.FacetLocation, s.Facet())
	assert.Len(t, s.Results(), 6)
}

func TestDerivationsAreMemoizedUntilMutation(t *testing.T) {
	cs := &countingSearcher{Engine: search.NewEngine(catalog.Seed())}
	s := New(cs)

	s.Results()
	s.Suggestions()
	s.Snapshot()
	assert.Equal(t, 1, cs.filters)
	assert.Equal(t, 1, cs.suggests)

	s.EditQuery("taco")
	assert.Equal(t, []string{"Taco Fiesta"}, names(s.Results()))
	assert.Equal(t, 2, cs.filters)

	s.SetFacet(index.FacetCuisine)
	s.Snapshot()
	assert.Equal(t, 3, cs.filters)

	s.ToggleTag("Mexican")
	assert.Equal(t, []string{"Taco Fiesta"}, names(s.Results()))
	assert.Empty(t, s.Suggestions())
	assert.Equal(t, 4, cs.filters)
}

func TestSnapshotIsDetached(t *testing.T) {
	s := newSeedSession()
	snap := s.Snapshot()
	snap.Results[0].Name = "Mutated"
	snap.Results[0].Tags[0] = "Mutated"
	snap.BrowsableTags[0] = "Mutated"

	again := s.Snapshot()
	assert.Equal(t, "Italian Bistro", again.Results[0].Name)
	assert.Equal(t, "Italian", again.Results[0].Tags[0])
	assert.Equal(t, "Italian", again.BrowsableTags[0])
}

func TestConcurrentUse(t *testing.T) {
	s := newSeedSession()
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				if i%2 == 0 {
					s.ToggleTag("Downtown")
				} else {
					s.EditQuery("a")
				}
				snap := s.Snapshot()
				assert.Equal(t, snap.Empty, len(snap.Results) == 0)
			}
		}()
	}
	wg.Wait()
}
