package matcher

import (
	"iter"
	"math/rand/v2"
	"slices"
	"testing"

	"golang.org/x/text/language"

	"samewords/internal/letters"
)

func lines(values ...string) iter.Seq[string] {
	return slices.Values(values)
}

func assertWords(t *testing.T, got Set, want ...string) {
	t.Helper()
	sorted := got.Sorted()
	slices.Sort(want)
	if want == nil {
		want = []string{}
	}
	if !slices.Equal(sorted, want) {
		t.Fatalf("matches = %q, want %q", sorted, want)
	}
}

func TestFindMatches(t *testing.T) {
	tests := []struct {
		name   string
		source []string
		target string
		want   []string
	}{
		{"case insensitive", []string{"Cat"}, "tac", []string{"cat"}},
		{"duplicates collapse", []string{"cat,cat,act"}, "cat", []string{"act", "cat"}},
		{"no match", []string{"dog"}, "cat", nil},
		{"length mismatch", []string{"aab"}, "aabb", nil},
		{"repeated letters", []string{"aabb", "abab", "baba"}, "aabb", []string{"aabb", "abab", "baba"}},
		{"same letters different counts", []string{"aaab"}, "aabb", nil},
		{"tokens are trimmed", []string{" act ,  tac\r"}, " CAT ", []string{"act", "tac"}},
		{"duplicates across lines", []string{"act", "ACT", "tac,act"}, "cat", []string{"act", "tac"}},
		{"polish letters", []string{"żółw,wółż,zolw"}, "ŁÓŻW", []string{"wółż", "żółw"}},
		{"empty lines ignored", []string{"", ",,", "cat"}, "act", []string{"cat"}},
		{"empty target matches empty tokens", []string{"a,,b"}, "   ", []string{""}},
		{"empty source", nil, "cat", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertWords(t, FindMatches(lines(tt.source...), tt.target), tt.want...)
		})
	}
}

func TestFindMatchesIsIdempotent(t *testing.T) {
	source := lines("listen,silent,enlist", "tinsel,inlets", "google")
	first := FindMatches(source, "Listen").Sorted()
	second := FindMatches(source, "Listen").Sorted()
	if !slices.Equal(first, second) {
		t.Fatalf("results differ between runs: %q vs %q", first, second)
	}
	if len(first) != 5 {
		t.Fatalf("expected 5 matches, got %q", first)
	}
}

func TestAnagramSymmetry(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	words := []string{"a", "ab", "zebra", "mississippi", "anagram", "żółwik", "reneginapi"}
	for _, word := range words {
		for i := 0; i < 20; i++ {
			runes := []rune(word)
			rng.Shuffle(len(runes), func(a, b int) { runes[a], runes[b] = runes[b], runes[a] })
			perm := string(runes)
			assertWords(t, FindMatches(lines(word), perm), word)
		}
	}
}

func TestMatchesHaveTargetLength(t *testing.T) {
	source := lines("a,aa,aaa,ab,ba,abc,cab,bca,abcd")
	for _, target := range []string{"a", "ab", "abc", "cba", "dcba", "xyz"} {
		m := New(target)
		for word := range m.Find(source) {
			if letters.Length(word) != m.Len() {
				t.Fatalf("match %q has length %d, target %q has %d", word, letters.Length(word), target, m.Len())
			}
		}
	}
}

func TestPrefilterDoesNotChangeResults(t *testing.T) {
	source := lines("aabb,abab,baba,aaab,abbb,ab,aabbc")
	with := FindMatches(source, "aabb").Sorted()
	without := FindMatches(source, "aabb", WithoutPrefilter()).Sorted()
	if !slices.Equal(with, without) {
		t.Fatalf("prefilter changed results: %q vs %q", with, without)
	}
}

func TestMatchReturnsNormalizedWord(t *testing.T) {
	m := New("Tac")
	word, ok := m.Match("  CAT ")
	if !ok {
		t.Fatal("expected match")
	}
	if word != "cat" {
		t.Fatalf("word = %q, want cat", word)
	}
	if m.Target() != "tac" {
		t.Fatalf("target = %q, want tac", m.Target())
	}
	if _, ok := m.Match("cats"); ok {
		t.Fatal("expected length mismatch to be rejected")
	}
}

func TestDefaultNormalizerFollowsDefaultLocale(t *testing.T) {
	want := language.MustParse(letters.DefaultLocale)
	if got := New("kot").normalizer.Locale(); got != want {
		t.Fatalf("default locale = %v, want %v", got, want)
	}
}

func TestWithNormalizerUsesLocale(t *testing.T) {
	m := New("DIŞ", WithNormalizer(letters.NewNormalizer(language.Turkish)))
	if m.Target() != "dış" {
		t.Fatalf("target = %q, want dış", m.Target())
	}
	if _, ok := m.Match("şıd"); !ok {
		t.Fatal("expected dotless i anagram to match")
	}
	if _, ok := New("DIŞ").Match("şid"); !ok {
		t.Fatal("expected default locale to map I to i")
	}
}
