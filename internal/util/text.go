package util

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var reSpaces = regexp.MustCompile(`\s+`)

// NormalizeSpace collapses runs of whitespace into single spaces and trims.
func NormalizeSpace(input string) string {
	return strings.TrimSpace(reSpaces.ReplaceAllString(input, " "))
}

// FoldKey lowers a token and strips diacritics so that vocabulary lookups
// match "évasé", "Evase" and "EVASÉ" alike.
func FoldKey(input string) string {
	decomposed := norm.NFD.String(strings.ToLower(strings.TrimSpace(input)))
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return norm.NFC.String(b.String())
}

func StringPtr(v string) *string { return &v }

func FloatPtr(v float64) *float64 { return &v }
