package service

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jask/basket/internal/grocery"
)

// maxNameDistance is the edit distance under which two item names count as
// the same thing typed twice.
const maxNameDistance = 2

// minFuzzyLen keeps short names like "Tea" and "Pea" apart.
const minFuzzyLen = 4

// similarItem returns the first existing item whose name is equal to or
// within maxNameDistance edits of name, ignoring case.
func similarItem(items []grocery.ListItem, name string) (grocery.ListItem, bool) {
	want := normalizeName(name)
	if want == "" {
		return grocery.ListItem{}, false
	}
	for _, it := range items {
		have := normalizeName(it.Name)
		if have == want {
			return it, true
		}
		if len([]rune(have)) < minFuzzyLen || len([]rune(want)) < minFuzzyLen {
			continue
		}
		if levenshtein.ComputeDistance(have, want) <= maxNameDistance {
			return it, true
		}
	}
	return grocery.ListItem{}, false
}

func normalizeName(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
