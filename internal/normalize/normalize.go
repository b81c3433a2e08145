// Package normalize produces the canonical comparison key used throughout
// the matching pipeline: lowercase, diacritic-free, single-spaced.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Name canonicalizes free text into a comparison key. It decomposes to NFD,
// drops combining marks, lowercases, trims, and collapses internal
// whitespace runs to single spaces. Idempotent: Name(Name(x)) == Name(x).
func Name(text string) string {
	stripped, _, err := transform.String(stripMarks, text)
	if err != nil {
		// Malformed input falls back to the raw text; the fields-based
		// collapse below still yields a usable key.
		stripped = text
	}
	lowered := strings.ToLower(stripped)
	return strings.Join(strings.Fields(lowered), " ")
}
