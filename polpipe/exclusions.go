package polpipe

import "regexp"

var (
	exclusionHeadingRe = regexp.MustCompile(`(?i)(?:EXCLUSIONS|NOT\s+COVERED|WHAT\s+IS\s+NOT\s+COVERED)`)

	// Inline fallbacks when no bounded exclusions section yields items.
	// Every pattern is tried and every match of each pattern contributes,
	// so the final dedupe pass is load-bearing.
	exclusionInlinePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:not covered|excluded|exclusions?):\s*([^.]*)`),
		regexp.MustCompile(`(?i)(?:policy does not cover|will not cover):\s*([^.]*)`),
		regexp.MustCompile(`(?i)following are (?:not covered|excluded):\s*([^.]*)`),
	}
)

// extractExclusions returns the deduplicated exclusion list. The primary
// strategy is a bounded section scan for bullet items; when that yields
// nothing, inline labeled clauses are split on commas instead.
func extractExclusions(text string, terminator *regexp.Regexp) []string {
	text = normalize(text)

	items := []string{}
	if span, ok := boundSpan(text, exclusionHeadingRe, terminator); ok {
		items = bulletItems(span, nil)
	}

	if len(items) == 0 {
		for _, pat := range exclusionInlinePatterns {
			for _, m := range pat.FindAllStringSubmatch(text, -1) {
				items = append(items, splitClause(m[1])...)
			}
		}
	}

	return dedupe(items)
}
