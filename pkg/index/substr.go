package index

import (
	"github.com/bastiangx/dinesearch/internal/utils"
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// posting lists the entries sharing a suffix.
type posting []int

// Substrings answers "which entries contain q?" for case-folded substrings.
//
// Every suffix of every folded entry is stored in a patricia trie, so the
// entries containing q are exactly those with a suffix under the prefix q.
// Entries are identified by the ordinal passed to Add.
type Substrings struct {
	trie  *patricia.Trie
	added []bool
}

// NewSubstrings returns an empty index.
func NewSubstrings() *Substrings {
	return &Substrings{trie: patricia.NewTrie()}
}

// Add indexes text under ord. The same ord may be added several times with
// different texts, the lookups then match any of them.
func (s *Substrings) Add(ord int, text string) {
	if ord < 0 {
		return
	}
	for len(s.added) <= ord {
		s.added = append(s.added, false)
	}
	s.added[ord] = true

	folded := utils.Fold(text)
	// Ranging over a string yields rune starts, so every key is valid UTF-8.
	for i := range folded {
		key := patricia.Prefix(folded[i:])
		item := s.trie.Get(key)
		if item == nil {
			s.trie.Insert(key, posting{ord})
			continue
		}
		p := item.(posting)
		if p[len(p)-1] != ord {
			s.trie.Set(key, append(p, ord))
		}
	}
}

// Lookup returns, ascending, every ordinal whose text contains query after
// case folding. An empty query matches every added ordinal.
func (s *Substrings) Lookup(query string) []int {
	hits := make([]bool, len(s.added))
	q := utils.Fold(query)
	if q == "" {
		copy(hits, s.added)
	} else {
		err := s.trie.VisitSubtree(patricia.Prefix(q), func(_ patricia.Prefix, item patricia.Item) error {
			for _, ord := range item.(posting) {
				hits[ord] = true
			}
			return nil
		})
		if err != nil {
			log.Errorf("Error visiting substring trie: %v", err)
			return nil
		}
	}

	out := make([]int, 0)
	for ord, hit := range hits {
		if hit {
			out = append(out, ord)
		}
	}
	return out
}

// Len returns one past the highest ordinal added.
func (s *Substrings) Len() int {
	return len(s.added)
}
