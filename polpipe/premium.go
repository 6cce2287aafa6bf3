package polpipe

import "regexp"

var (
	premiumAmountPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)premium\s*(?:amount)?\s*(?:-|:)?\s*(?:Rs\.?|INR)?\s*([\d,]+)`),
		regexp.MustCompile(`(?i)(?:annual|monthly|quarterly)\s*premium\s*(?:-|:)?\s*(?:Rs\.?|INR)?\s*([\d,]+)`),
	}

	premiumFrequencyRe = regexp.MustCompile(`(?i)(monthly|quarterly|half-yearly|yearly|annual)\s*(?:premium|payment|basis)`)

	gracePeriodPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)grace\s*period\s*(?:of)?\s*(\d+)\s*(?:days|months)`),
		regexp.MustCompile(`(?i)(\d+)\s*(?:days|months)\s*grace\s*period`),
	}
)

// extractPremiumInfo populates the premium fields. Due dates have no
// extraction rule and stay empty.
func extractPremiumInfo(text string) PremiumInfo {
	text = normalize(text)

	var info PremiumInfo

	info.Amount = firstMatchGroup(text, premiumAmountPatterns)

	if m := premiumFrequencyRe.FindStringSubmatch(text); m != nil {
		info.Frequency = m[1]
	}

	// TODO: the unit word (days or months) is discarded and the value is
	// always reported in days; confirm intended unit handling.
	if g := firstMatchGroup(text, gracePeriodPatterns); g != "" {
		info.GracePeriod = g + " days"
	}

	return info
}
