package index

import (
	"testing"

	"github.com/bastiangx/dinesearch/pkg/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSeed(t *testing.T) {
	ti := Build(catalog.Seed())

	assert.Equal(t, []string{
		"Italian", "Pasta", "Fine Dining",
		"American", "Burgers", "Fast Food",
		"Japanese", "Sushi", "Asian",
		"Mexican", "Tacos", "Street Food",
		"Vegan", "Healthy", "Organic",
		"Pizza", "Casual",
	}, ti.Cuisine())
	assert.Equal(t, []string{"Downtown", "Midtown", "Uptown", "Westside", "Eastside"}, ti.Location())
	assert.Len(t, ti.All(), len(ti.Cuisine())+len(ti.Location()))
}

func TestBuildEmpty(t *testing.T) {
	for name, c := range map[string]*catalog.Catalog{"nil": nil, "empty": catalog.New()} {
		t.Run(name, func(t *testing.T) {
			ti := Build(c)
			assert.NotNil(t, ti.All())
			assert.Empty(t, ti.All())
			assert.Empty(t, ti.Cuisine())
			assert.Empty(t, ti.Location())
		})
	}
}

func TestBuildConcatenatesWithoutMerging(t *testing.T) {
	c := catalog.New(
		catalog.Record{ID: "1", Tags: []string{"Harbour", "Seafood"}, Location: "Harbour"},
		catalog.Record{ID: "2", Tags: []string{"Seafood"}, Location: "Harbour"},
		catalog.Record{ID: "3", Tags: nil, Location: "Old Town"},
	)
	ti := Build(c)

	assert.Equal(t, []string{"Harbour", "Seafood"}, ti.Cuisine())
	assert.Equal(t, []string{"Harbour", "Old Town"}, ti.Location())
	assert.Equal(t, []string{"Harbour", "Seafood", "Harbour", "Old Town"}, ti.All())
}

func TestBuildIsDeterministic(t *testing.T) {
	c := catalog.FeedSeed()
	first := Build(c)
	for range 5 {
		assert.Equal(t, first.All(), Build(c).All())
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	ti := Build(catalog.Seed())
	all := ti.All()
	all[0] = "Mutated"
	assert.Equal(t, "Italian", ti.All()[0])
}

func TestBrowse(t *testing.T) {
	ti := Build(catalog.Seed())
	assert.Equal(t, ti.All(), ti.Browse(FacetAll))
	assert.Equal(t, ti.Cuisine(), ti.Browse(FacetCuisine))
	assert.Equal(t, ti.Location(), ti.Browse(FacetLocation))
}

func TestIsLocation(t *testing.T) {
	ti := Build(catalog.Seed())
	assert.True(t, ti.IsLocation("Downtown"))
	assert.False(t, ti.IsLocation("Italian"))
}

func TestParseFacet(t *testing.T) {
	tests := []struct {
		in   string
		want Facet
	}{
		{"", FacetAll},
		{"all", FacetAll},
		{"Cuisine", FacetCuisine},
		{" LOCATION ", FacetLocation},
	}
	for _, tt := range tests {
		got, err := ParseFacet(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseFacet("price")
	assert.ErrorIs(t, err, ErrUnknownFacet)
}

func TestFacetStringRoundTrip(t *testing.T) {
	for _, f := range Facets {
		got, err := ParseFacet(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
}

func TestFacetNext(t *testing.T) {
	assert.Equal(t, FacetCuisine, FacetAll.Next())
	assert.Equal(t, FacetLocation, FacetCuisine.Next())
	assert.Equal(t, FacetAll, FacetLocation.Next())
}
