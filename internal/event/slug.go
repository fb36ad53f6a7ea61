package event

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// deaccent decomposes characters and strips combining marks, so titles like
// "Soirée" slugify to "soiree" rather than dropping the letter entirely.
var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify converts an event title into a URL-safe slug: lowercase ASCII
// letters and digits separated by single dashes.
func Slugify(title string) string {
	folded, _, err := transform.String(deaccent, title)
	if err != nil {
		folded = title
	}

	var b strings.Builder
	lastDash := true // suppress a leading dash
	for _, r := range strings.ToLower(folded) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
