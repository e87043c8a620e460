package matcher

import (
	"maps"
	"slices"
)

// Set holds unique matching words.
type Set map[string]struct{}

// Add inserts word.
func (s Set) Add(word string) {
	s[word] = struct{}{}
}

// Len returns the number of words.
func (s Set) Len() int {
	return len(s)
}

// Sorted returns the words in lexicographic order.
func (s Set) Sorted() []string {
	return slices.Sorted(maps.Keys(s))
}
