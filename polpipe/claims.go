package polpipe

import "regexp"

var (
	claimsHeadingRe = regexp.MustCompile(`(?i)(?:CLAIMS?\s+PROCESS|HOW\s+TO\s+CLAIM|CLAIM\s+PROCEDURE)`)

	claimsDocumentsRe = regexp.MustCompile(`(?i)(?:required|necessary)\s*documents?[^:]*:\s*([^.]*)`)

	claimsContactPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:contact|call|reach)[^.]*(?:at|on)?\s*([0-9-]+)`),
		regexp.MustCompile(`(?i)toll\s*free\s*:?\s*([0-9-]+)`),
	}

	claimsTimeframePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:settle|settlement|process).*?within\s*(\d+)\s*(?:days|hours|weeks)`),
		regexp.MustCompile(`(?i)(?:TAT|turnaround time)\s*:?\s*(\d+)\s*(?:days|hours|weeks)`),
	}
)

// extractClaimsProcess populates the claims fields from the bounded claims
// section. Without a claims heading all fields stay at their defaults.
func extractClaimsProcess(text string, terminator *regexp.Regexp) ClaimsProcess {
	text = normalize(text)

	cp := ClaimsProcess{
		Steps:     []string{},
		Documents: []string{},
	}

	span, ok := boundSpan(text, claimsHeadingRe, terminator)
	if !ok {
		return cp
	}

	cp.Steps = bulletItems(span, nil)

	if m := claimsDocumentsRe.FindStringSubmatch(span); m != nil {
		cp.Documents = splitClauseAll(m[1])
	}

	cp.Contact = firstMatchGroup(span, claimsContactPatterns)

	// Same day-unit normalization as the premium grace period: the matched
	// unit word is discarded and the value is always labeled in days.
	if t := firstMatchGroup(span, claimsTimeframePatterns); t != "" {
		cp.Timeframe = t + " days"
	}

	return cp
}
