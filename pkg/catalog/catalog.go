/*
Package catalog holds the immutable restaurant records that every search
session runs against.

A Catalog is built once, either from a TOML file with Load or from one of the
embedded seeds, and is never modified afterwards. Callers receive copies of
records and slices so nothing outside the package can mutate it.

	c, err := catalog.Load("restaurants.toml")
	if err != nil {
		log.Fatal(err)
	}
	for i, r := range c.All() {
		fmt.Println(i, r.Name)
	}
*/
package catalog

import (
	"iter"
	"slices"
)

// Record is a single restaurant entry.
type Record struct {
	ID          string   `toml:"id" msgpack:"id"`
	Name        string   `toml:"name" msgpack:"n"`
	Tags        []string `toml:"tags" msgpack:"tg"`
	Location    string   `toml:"location" msgpack:"l"`
	Description string   `toml:"description" msgpack:"d,omitempty"`

	// Home feed display fields. They take no part in search.
	Section      string  `toml:"section" msgpack:"sec,omitempty"`
	Rating       float64 `toml:"rating" msgpack:"rt,omitempty"`
	DeliveryTime string  `toml:"delivery_time" msgpack:"dt,omitempty"`
	Deal         string  `toml:"deal" msgpack:"deal,omitempty"`
}

// HasTag reports whether tag is one of the record's tags. Matching is exact.
func (r Record) HasTag(tag string) bool {
	return slices.Contains(r.Tags, tag)
}

func (r Record) clone() Record {
	r.Tags = slices.Clone(r.Tags)
	return r
}

// Catalog is an ordered, read-only sequence of records.
type Catalog struct {
	records []Record
}

// New builds a Catalog from records, copying them.
// No validation is done here, see Validate.
func New(records ...Record) *Catalog {
	c := &Catalog{records: make([]Record, len(records))}
	for i, r := range records {
		c.records[i] = r.clone()
	}
	return c
}

// Len returns the number of records. A nil Catalog is empty.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.records)
}

// At returns the i-th record. Like slice indexing, it panics when i is
// outside [0, Len()), which includes every i on a nil or empty Catalog.
func (c *Catalog) At(i int) Record {
	return c.records[i].clone()
}

// Records returns a copy of all records in catalog order.
func (c *Catalog) Records() []Record {
	out := make([]Record, c.Len())
	for i := range out {
		out[i] = c.records[i].clone()
	}
	return out
}

// All iterates over the records in catalog order.
func (c *Catalog) All() iter.Seq2[int, Record] {
	return func(yield func(int, Record) bool) {
		for i := 0; i < c.Len(); i++ {
			if !yield(i, c.records[i].clone()) {
				return
			}
		}
	}
}
