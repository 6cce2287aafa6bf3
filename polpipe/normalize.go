package polpipe

import (
	"regexp"
	"strings"
	"unicode"
)

// Boilerplate lines are regulatory/branding noise that must be discarded
// before any field matching: registration-number lines ("CIN: U...") and
// trademark/logo lines. Each is removed together with its trailing newline.
var (
	cinLineRe  = regexp.MustCompile(`(?i)CIN:\s*U\d+[^\n]*\n`)
	logoLineRe = regexp.MustCompile(`(?i)Trade Logo[^\n]*\n`)
)

// normalize strips boilerplate lines and collapses all whitespace runs
// (including newlines) to single spaces, then trims. Pure and idempotent:
// normalize(normalize(t)) == normalize(t).
func normalize(text string) string {
	text = cinLineRe.ReplaceAllString(text, "")
	text = logoLineRe.ReplaceAllString(text, "")
	return collapseWhitespace(text)
}

func collapseWhitespace(text string) string {
	var sb strings.Builder
	prevSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if !prevSpace && sb.Len() > 0 {
				sb.WriteByte(' ')
				prevSpace = true
			}
		} else {
			sb.WriteRune(r)
			prevSpace = false
		}
	}
	return strings.TrimSpace(sb.String())
}
