package letters

import "unicode/utf8"

// Multiset maps a character to its occurrence count.
type Multiset map[rune]int

// Of counts the characters of s. The input is expected to be normalized.
func Of(s string) Multiset {
	m := make(Multiset, utf8.RuneCountInString(s))
	for _, r := range s {
		m[r]++
	}
	return m
}

// Len returns the total number of characters, counting repeats.
func (m Multiset) Len() int {
	total := 0
	for _, n := range m {
		total += n
	}
	return total
}

// Distinct returns the number of distinct characters.
func (m Multiset) Distinct() int {
	return len(m)
}

// Count returns how many times r occurs.
func (m Multiset) Count(r rune) int {
	return m[r]
}

// Equal reports whether both multisets hold the same characters with the same
// counts. Both directions are checked: a shared subset is not enough.
func (m Multiset) Equal(other Multiset) bool {
	if len(m) != len(other) {
		return false
	}
	for r, n := range m {
		if other[r] != n {
			return false
		}
	}
	return true
}

// Covers reports whether every character of s appears in m at least once.
// Counts are ignored; this is the cheap character-set check used to discard
// candidates before a full Equal.
func (m Multiset) Covers(s string) bool {
	for _, r := range s {
		if _, ok := m[r]; !ok {
			return false
		}
	}
	return true
}
