package schema

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold converts arbitrary identifier text into a lowercase ASCII SQL
// identifier:
//  1. lowercase
//  2. strip accents (NFD → remove Mn → NFC)
//  3. keep [a-z0-9_]; convert space/dash/dot to underscore; drop others
//  4. fallback to "x" if nothing survives
//
// Derived names (constraints, sequences) go through Fold so that model
// identifiers with diacritics still produce portable DDL.
func Fold(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	// Decompose → remove nonspacing marks (accents) → recompose.
	t := transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
	)
	ascii, _, _ := transform.String(t, s)

	var b strings.Builder
	prevUnderscore := false
	for _, r := range ascii {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
			prevUnderscore = false
		case r >= '0' && r <= '9':
			b.WriteRune(r)
			prevUnderscore = false
		case r == '_' || r == ' ' || r == '-' || r == '.':
			if !prevUnderscore {
				b.WriteRune('_')
				prevUnderscore = true
			}
		default:
			// drop anything else
		}
	}
	name := strings.Trim(b.String(), "_")
	if name == "" {
		return "x"
	}
	return name
}
