package ingestion

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Normalize canonicalizes raw CV text for substring matching: lower-case,
// line breaks and whitespace runs collapsed to single spaces, trimmed.
// Empty input yields the empty string. Normalize is idempotent:
// Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = whitespaceRun.ReplaceAllString(s, " ")

	return strings.TrimSpace(s)
}
