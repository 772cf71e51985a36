package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCopiesInput(t *testing.T) {
	tags := []string{"Italian", "Pasta"}
	c := New(Record{ID: "1", Name: "Italian Bistro", Tags: tags, Location: "Downtown"})

	tags[0] = "Mutated"
	assert.Equal(t, "Italian", c.At(0).Tags[0])

	got := c.Records()
	got[0].Tags[1] = "Mutated"
	got[0].Name = "Other"
	assert.Equal(t, "Pasta", c.At(0).Tags[1])
	assert.Equal(t, "Italian Bistro", c.At(0).Name)
}

func TestNilCatalogIsEmpty(t *testing.T) {
	var c *Catalog
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Records())
	for range c.All() {
		t.Fatal("nil catalog yielded a record")
	}
}

func TestAtOutOfRangePanics(t *testing.T) {
	var nilCatalog *Catalog
	assert.Panics(t, func() { nilCatalog.At(0) })
	assert.Panics(t, func() { New().At(0) })
	assert.Panics(t, func() { Seed().At(-1) })
	assert.Panics(t, func() { Seed().At(Seed().Len()) })
	assert.NotPanics(t, func() { Seed().At(Seed().Len() - 1) })
}

func TestAllPreservesOrderAndStops(t *testing.T) {
	c := Seed()
	var ids []string
	for _, r := range c.All() {
		ids = append(ids, r.ID)
		if len(ids) == 3 {
			break
		}
	}
	assert.Equal(t, []string{"1", "2", "3"}, ids)
}

func TestHasTagIsExact(t *testing.T) {
	r := Record{Tags: []string{"Italian", "Fine Dining"}}
	assert.True(t, r.HasTag("Italian"))
	assert.False(t, r.HasTag("italian"))
	assert.False(t, r.HasTag("Dining"))
	assert.False(t, Record{}.HasTag("Italian"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		records []Record
		wantErr error
	}{
		{"empty", nil, nil},
		{"ok", []Record{{ID: "1"}, {ID: "2"}}, nil},
		{"empty id", []Record{{ID: "1"}, {Name: "No ID"}}, ErrEmptyID},
		{"duplicate", []Record{{ID: "1"}, {ID: "2"}, {ID: "1"}}, ErrDuplicateID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.records)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParse(t *testing.T) {
	c, err := Parse([]byte(`
[[restaurant]]
id = "a"
name = "Noodle Bar"
tags = []
location = "Harbour"

[[restaurant]]
id = "b"
name = "Crepe Stand"
tags = ["French", "Dessert"]
location = "Old Town"
description = "Sweet and savoury"
rating = 4.1
`))
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())
	assert.Empty(t, c.At(0).Tags)
	assert.Equal(t, "Crepe Stand", c.At(1).Name)
	assert.Equal(t, []string{"French", "Dessert"}, c.At(1).Tags)
	assert.InDelta(t, 4.1, c.At(1).Rating, 0.0001)
}

func TestParseRejectsDuplicates(t *testing.T) {
	_, err := Parse([]byte(`
[[restaurant]]
id = "a"
name = "One"
[[restaurant]]
id = "a"
name = "Two"
`))
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestParseRejectsBadTOML(t *testing.T) {
	_, err := Parse([]byte(`[[restaurant]`))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "restaurants.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[restaurant]]\nid = \"x\"\nname = \"X\"\nlocation = \"Y\"\n"), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSeeds(t *testing.T) {
	search := Seed()
	require.Equal(t, 6, search.Len())
	assert.Equal(t, "Italian Bistro", search.At(0).Name)
	assert.Equal(t, "Eastside", search.At(5).Location)

	feed := FeedSeed()
	require.Equal(t, 11, feed.Len())
	assert.Equal(t, "mustEats", feed.At(0).Section)
	assert.Equal(t, "50% OFF", feed.At(3).Deal)
}
