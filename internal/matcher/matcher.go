package matcher

import (
	"iter"
	"strings"

	"golang.org/x/text/language"

	"samewords/internal/letters"
)

// tokenSeparator splits the words packed onto a single source line.
const tokenSeparator = ","

// Option customizes a Matcher.
type Option func(*Matcher)

// WithNormalizer overrides the normalizer for letters.DefaultLocale.
func WithNormalizer(n *letters.Normalizer) Option {
	return func(m *Matcher) {
		if n != nil {
			m.normalizer = n
		}
	}
}

// WithoutPrefilter disables the character-set check that runs before full
// multiset comparison. Results are identical either way.
func WithoutPrefilter() Option {
	return func(m *Matcher) {
		m.prefilter = false
	}
}

// Matcher holds the immutable target of one query.
type Matcher struct {
	normalizer *letters.Normalizer
	prefilter  bool

	target string
	length int
	counts letters.Multiset
}

// New normalizes target and prepares its letter multiset. An empty or
// whitespace-only target is valid and matches only empty tokens.
func New(target string, opts ...Option) *Matcher {
	m := &Matcher{
		normalizer: letters.NewNormalizer(language.MustParse(letters.DefaultLocale)),
		prefilter:  true,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.target = m.normalizer.Normalize(target)
	m.length = letters.Length(m.target)
	m.counts = letters.Of(m.target)
	return m
}

// Target returns the normalized target letters.
func (m *Matcher) Target() string {
	return m.target
}

// Len returns the target length in characters.
func (m *Matcher) Len() int {
	return m.length
}

// Match normalizes a single token and reports whether it is an exact anagram of
// the target. The normalized form is returned on a match.
func (m *Matcher) Match(token string) (string, bool) {
	word := m.normalizer.Normalize(token)
	if letters.Length(word) != m.length {
		return "", false
	}
	if m.prefilter && !m.counts.Covers(word) {
		return "", false
	}
	if !letters.Of(word).Equal(m.counts) {
		return "", false
	}
	return word, true
}

// Collect splits a raw source line on commas and adds every matching token to
// into.
func (m *Matcher) Collect(line string, into Set) {
	for token := range strings.SplitSeq(line, tokenSeparator) {
		if word, ok := m.Match(token); ok {
			into.Add(word)
		}
	}
}

// Find runs every candidate line through the matcher.
func (m *Matcher) Find(candidates iter.Seq[string]) Set {
	result := Set{}
	for line := range candidates {
		m.Collect(line, result)
	}
	return result
}

// FindMatches returns the exact anagrams of target found in candidates. Each
// candidate is a raw line that may contain several comma-separated words.
func FindMatches(candidates iter.Seq[string], target string, opts ...Option) Set {
	return New(target, opts...).Find(candidates)
}
