package search

import (
	"maps"
	"slices"
)

// TagSet is an unordered set of selected tags. It has value semantics: no
// method modifies the receiver, and the zero value is an empty set.
type TagSet struct {
	m map[string]struct{}
}

// NewTagSet returns a set holding tags. Repeats collapse.
func NewTagSet(tags ...string) TagSet {
	if len(tags) == 0 {
		return TagSet{}
	}
	m := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		m[t] = struct{}{}
	}
	return TagSet{m: m}
}

// Has reports whether tag is selected.
func (s TagSet) Has(tag string) bool {
	_, ok := s.m[tag]
	return ok
}

// Len returns the number of selected tags.
func (s TagSet) Len() int {
	return len(s.m)
}

// Slice returns the tags sorted, for display and the wire.
func (s TagSet) Slice() []string {
	out := slices.Collect(maps.Keys(s.m))
	if out == nil {
		out = []string{}
	}
	slices.Sort(out)
	return out
}

// Equal reports whether both sets hold the same tags.
func (s TagSet) Equal(other TagSet) bool {
	return maps.Equal(s.m, other.m)
}

// ToggleTag removes tag from selected if present and adds it otherwise.
// selected is left untouched and a new set is returned.
func ToggleTag(selected TagSet, tag string) TagSet {
	m := maps.Clone(selected.m)
	if m == nil {
		m = make(map[string]struct{}, 1)
	}
	if _, ok := m[tag]; ok {
		delete(m, tag)
	} else {
		m[tag] = struct{}{}
	}
	return TagSet{m: m}
}
