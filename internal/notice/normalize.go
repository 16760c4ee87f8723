package notice

import (
	"regexp"
	"strings"
)

var (
	reHorizontalWS = regexp.MustCompile(`[ \t]+`)
	reBlankRuns    = regexp.MustCompile(`\n{2,}`)
)

// Normalize collapses raw page text into the canonical working form: soft
// hyphens removed, hyphen-broken line wraps rejoined, line endings unified,
// horizontal whitespace runs collapsed to one space, and 2+ consecutive
// newlines collapsed to exactly two. Total and idempotent; empty in, empty
// out.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}
	s := strings.ReplaceAll(raw, "\u00ad", "")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	// A hyphen immediately before a line break is a printer's word wrap;
	// deleting both rejoins the split word.
	s = strings.ReplaceAll(s, "-\n", "")
	s = reHorizontalWS.ReplaceAllString(s, " ")
	s = reBlankRuns.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
