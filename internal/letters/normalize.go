package letters

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// DefaultLocale is the locale used when none is configured. The bundled word
// list is Polish.
const DefaultLocale = "pl"

// Normalizer trims, lower-cases, and NFC-composes words. A Normalizer is not
// safe for concurrent use.
type Normalizer struct {
	tag   language.Tag
	caser cases.Caser
}

// NewNormalizer returns a Normalizer that lower-cases using the rules of tag.
func NewNormalizer(tag language.Tag) *Normalizer {
	return &Normalizer{tag: tag, caser: cases.Lower(tag)}
}

// ParseLocale resolves a BCP 47 locale string. An empty value selects
// DefaultLocale.
func ParseLocale(value string) (language.Tag, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		value = DefaultLocale
	}
	tag, err := language.Parse(value)
	if err != nil {
		return language.Und, fmt.Errorf("parse locale %q: %w", value, err)
	}
	return tag, nil
}

// Locale returns the tag used for case mapping.
func (n *Normalizer) Locale() language.Tag {
	return n.tag
}

// Normalize trims surrounding whitespace, lower-cases, and composes s.
func (n *Normalizer) Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return norm.NFC.String(n.caser.String(s))
}

// Length returns the number of characters in s.
func Length(s string) int {
	return utf8.RuneCountInString(s)
}
