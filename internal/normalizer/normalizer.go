// Package normalizer provides text canonicalization for record data:
// accent stripping, case folding, key sanitization, and whole-dataset
// cleaning with sentinel substitution for empty values.
package normalizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// accentStripper decomposes text into base characters plus combining
// marks (NFD), removes the nonspacing marks, and recomposes.
var accentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// RemoveAccents strips diacritical marks from text, e.g. "café" -> "cafe".
// Base letters are preserved.
func RemoveAccents(text string) string {
	result, _, err := transform.String(accentStripper, text)
	if err != nil {
		// The chain cannot fail on valid UTF-8; malformed input is
		// passed through untouched.
		return text
	}

	return result
}

// NormalizeText canonicalizes a text value: accents stripped, then
// lowercased, then trimmed of leading and trailing whitespace.
func NormalizeText(text string) string {
	return strings.TrimSpace(strings.ToLower(RemoveAccents(text)))
}

// NormalizeKey sanitizes a field name: accents stripped, every rune
// outside [a-zA-Z0-9_] replaced with underscore, then lowercased. The
// result only contains lowercase ASCII letters, digits, and underscores.
func NormalizeKey(key string) string {
	key = RemoveAccents(key)

	var b strings.Builder
	b.Grow(len(key))

	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}

	return strings.ToLower(b.String())
}
