package catalog

import (
	_ "embed"
	"fmt"
)

var (
	//go:embed seed/search.toml
	searchSeed []byte

	//go:embed seed/feed.toml
	feedSeed []byte
)

// Seed returns the six restaurants offered by the search screen.
func Seed() *Catalog {
	return mustParse("search", searchSeed)
}

// FeedSeed returns the home feed restaurants, each tagged with the carousel
// section it belongs to.
func FeedSeed() *Catalog {
	return mustParse("feed", feedSeed)
}

func mustParse(name string, data []byte) *Catalog {
	c, err := Parse(data)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded %s seed: %v", name, err))
	}
	return c
}
