// Package letters builds letter multisets from normalized words.
//
// A Multiset maps each character to the number of times it occurs. Two words
// are exact anagrams when their multisets are equal. Normalizer applies the
// locale-aware lower-casing and Unicode composition that every word and target
// passes through before it is counted, so "Żółw" and "żółw" count the same.
package letters
