package htmltext

import "strings"

// Normalize collapses runs of whitespace (including non-breaking spaces and
// newlines left over from HTML extraction) into single spaces and trims the
// result.
func Normalize(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return strings.Join(strings.Fields(s), " ")
}
