package catalog

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

var (
	// ErrEmptyID is returned when a record has no id.
	ErrEmptyID = errors.New("catalog: record has empty id")
	// ErrDuplicateID is returned when two records share an id.
	ErrDuplicateID = errors.New("catalog: duplicate record id")
)

// file is the on-disk layout:
//
//	[[restaurant]]
//	id = "1"
//	name = "Italian Bistro"
//	tags = ["Italian", "Pasta"]
//	location = "Downtown"
type file struct {
	Restaurants []Record `toml:"restaurant"`
}

// Load reads and validates a TOML catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	log.Debugf("Loaded %d restaurants from %s", c.Len(), path)
	return c, nil
}

// Parse decodes a TOML catalog document and validates it.
func Parse(data []byte) (*Catalog, error) {
	var f file
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, fmt.Errorf("decode toml: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		log.Warnf("Ignoring unknown catalog keys: %v", undecoded)
	}
	if err := Validate(f.Restaurants); err != nil {
		return nil, err
	}
	return New(f.Restaurants...), nil
}

// Validate checks that every record has a non-empty, unique id.
func Validate(records []Record) error {
	seen := make(map[string]int, len(records))
	for i, r := range records {
		if r.ID == "" {
			return fmt.Errorf("record %d (%q): %w", i, r.Name, ErrEmptyID)
		}
		if prev, ok := seen[r.ID]; ok {
			return fmt.Errorf("id %q at records %d and %d: %w", r.ID, prev, i, ErrDuplicateID)
		}
		seen[r.ID] = i
	}
	return nil
}
