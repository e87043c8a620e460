package letters

import (
	"testing"

	"golang.org/x/text/language"
)

func TestNormalize(t *testing.T) {
	n := NewNormalizer(language.Polish)
	tests := []struct {
		in   string
		want string
	}{
		{"Cat", "cat"},
		{"  TAC \t", "tac"},
		{"ŻÓŁW", "żółw"},
		{"Caf\u00e9", "caf\u00e9"},
		{"Cafe\u0301", "caf\u00e9"},
		{"   ", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := n.Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseLocale(t *testing.T) {
	tag, err := ParseLocale("")
	if err != nil {
		t.Fatalf("ParseLocale empty: %v", err)
	}
	if tag != language.Polish {
		t.Fatalf("default locale = %v, want pl", tag)
	}

	tag, err = ParseLocale(" en-US ")
	if err != nil {
		t.Fatalf("ParseLocale en-US: %v", err)
	}
	if tag != language.AmericanEnglish {
		t.Fatalf("locale = %v, want en-US", tag)
	}

	if _, err := ParseLocale("not a locale!"); err == nil {
		t.Fatal("expected error for malformed locale")
	}
}

func TestNormalizerLocale(t *testing.T) {
	if got := NewNormalizer(language.Turkish).Locale(); got != language.Turkish {
		t.Fatalf("Locale = %v, want tr", got)
	}
}

func TestLengthCountsCharacters(t *testing.T) {
	if got := Length("żółw"); got != 4 {
		t.Fatalf("Length = %d, want 4", got)
	}
}
