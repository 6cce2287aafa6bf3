package polpipe

import (
	"regexp"
	"strings"
)

// minItemRunes is the noise threshold for bullet/ordinal items and
// comma-separated fragments: anything this long or shorter (after trim) is
// discarded.
const minItemRunes = 10

// firstMatchWhole tries each pattern in order and returns the whole text of
// the first match. Later patterns are never consulted once one matches.
func firstMatchWhole(text string, patterns []*regexp.Regexp) string {
	for _, pat := range patterns {
		if m := pat.FindString(text); m != "" {
			return m
		}
	}
	return ""
}

// firstMatchGroup tries each pattern in order and returns the first capture
// group of the first pattern that matches.
func firstMatchGroup(text string, patterns []*regexp.Regexp) string {
	for _, pat := range patterns {
		if m := pat.FindStringSubmatch(text); m != nil {
			return m[1]
		}
	}
	return ""
}

// boundSpan captures the section span that starts after the first match of
// heading and runs to the first match of terminator (exclusive), or to the
// end of text when the terminator never appears. ok is false when the
// heading is absent.
func boundSpan(text string, heading, terminator *regexp.Regexp) (span string, ok bool) {
	loc := heading.FindStringIndex(text)
	if loc == nil {
		return "", false
	}
	span = text[loc[1]:]
	if t := terminator.FindStringIndex(span); t != nil {
		span = span[:t[0]]
	}
	return span, true
}

// bulletItemRe matches one bullet/ordinal item: a bullet glyph or "N."
// numbering followed by text running to the next period or newline.
var bulletItemRe = regexp.MustCompile(`(?:•|\d+\.)\s*([^\n.]+)`)

// bulletItems extracts bullet/ordinal items from a section span, dropping
// items at or below the noise threshold and items matching drop (nil to
// keep everything above the threshold).
func bulletItems(span string, drop *regexp.Regexp) []string {
	items := []string{}
	for _, m := range bulletItemRe.FindAllStringSubmatch(span, -1) {
		item := strings.TrimSpace(m[1])
		if len([]rune(item)) <= minItemRunes {
			continue
		}
		if drop != nil && drop.MatchString(item) {
			continue
		}
		items = append(items, item)
	}
	return items
}

// splitClause splits a captured clause on commas, trims each fragment, and
// keeps fragments longer than the noise threshold.
func splitClause(clause string) []string {
	out := []string{}
	for _, part := range strings.Split(clause, ",") {
		part = strings.TrimSpace(part)
		if len([]rune(part)) > minItemRunes {
			out = append(out, part)
		}
	}
	return out
}

// splitClauseAll splits a captured clause on commas and trims each fragment
// without any length filter.
func splitClauseAll(clause string) []string {
	out := []string{}
	for _, part := range strings.Split(clause, ",") {
		out = append(out, strings.TrimSpace(part))
	}
	return out
}

// dedupe removes exact duplicates preserving first-seen order.
func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := []string{}
	for _, it := range items {
		if seen[it] {
			continue
		}
		seen[it] = true
		out = append(out, it)
	}
	return out
}
