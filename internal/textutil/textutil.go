package textutil

import (
	"strings"
	"unicode"
)

// NormalizeKey strips all whitespace from a string. The result is used
// only for equality comparison between spreadsheet text and document
// text, never stored as an identity.
func NormalizeKey(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Truncate shortens a string to maxLen, appending "..." if truncated.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
