// Package normalize cleans free-text fields coming out of calendar exports
// and scraped pages. Club calendar exports arrive quoted-printable encoded
// with embedded registration URLs; descriptions shown to members should be
// plain, single-line, and bounded in length.
package normalize

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxDescriptionLen is the longest description the pipeline emits. Longer
// text is truncated with an ellipsis marker.
const MaxDescriptionLen = 200

// FallbackDescription is substituted when cleaning leaves nothing behind.
// Descriptions are never empty.
const FallbackDescription = "Join us for this exciting club event!"

var (
	urlPattern        = regexp.MustCompile(`https?://\S+`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// quoted-printable artifacts seen in Outlook calendar exports
var encodingArtifacts = strings.NewReplacer(
	"=0D=0A", "\n",
	"=3D", "=",
)

// CleanDescription normalizes a raw description field. It decodes transport
// encoding artifacts, drops URLs, collapses all whitespace runs to single
// spaces, and truncates to MaxDescriptionLen. The result is never empty:
// cleaning an empty or URL-only description yields FallbackDescription.
//
// Cleaning is idempotent: applying it to already-clean text under the length
// limit returns the text unchanged.
func CleanDescription(raw string) string {
	cleaned := encodingArtifacts.Replace(raw)
	cleaned = urlPattern.ReplaceAllString(cleaned, "")
	cleaned = whitespacePattern.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(cleaned)

	if utf8.RuneCountInString(cleaned) > MaxDescriptionLen {
		runes := []rune(cleaned)
		cleaned = string(runes[:MaxDescriptionLen-3]) + "..."
	}

	if cleaned == "" {
		return FallbackDescription
	}
	return cleaned
}
