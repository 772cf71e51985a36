package search

// Kind tells the two suggestion variants apart.
type Kind uint8

const (
	// KindName suggests a restaurant name. Picking it replaces the query.
	KindName Kind = iota
	// KindTag suggests a tag or location. Picking it toggles the tag.
	KindTag
)

func (k Kind) String() string {
	if k == KindTag {
		return "tag"
	}
	return "name"
}

// ParseKind maps "name" or "tag" to a Kind.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "name":
		return KindName, true
	case "tag":
		return KindTag, true
	}
	return KindName, false
}

// Suggestion is a single autocomplete candidate.
type Suggestion struct {
	Kind  Kind
	Value string
}

// NameSuggestion returns a KindName suggestion.
func NameSuggestion(name string) Suggestion {
	return Suggestion{Kind: KindName, Value: name}
}

// TagSuggestion returns a KindTag suggestion.
func TagSuggestion(tag string) Suggestion {
	return Suggestion{Kind: KindTag, Value: tag}
}
