// Package matcher finds exact anagrams of a target in a stream of candidate
// words.
//
// A Matcher is built once per query from the user's letters. Candidates arrive
// as raw lines that may each hold several comma-separated words; every token is
// normalized the same way as the target, rejected early on length, optionally
// rejected by a character-set check, and finally compared by full letter
// multiset equality. Matches accumulate in a Set so duplicates in the source
// collapse to one entry.
//
// The package performs no I/O beyond reading the supplied io.Reader and does
// not time or print anything; callers own progress display and rendering.
package matcher
