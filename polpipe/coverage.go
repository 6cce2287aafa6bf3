package polpipe

import "regexp"

var (
	sumAssuredPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)sum\s*(?:assured|insured)\s*(?:-|:)?\s*(?:Rs\.?|INR)?\s*([\d,]+)`),
		regexp.MustCompile(`(?i)(?:coverage|cover)\s*(?:amount|limit)\s*(?:-|:)?\s*(?:Rs\.?|INR)?\s*([\d,]+)`),
	}

	// benefitSectionRe bounds the covered-benefits span: from a benefits
	// heading to the next exclusions/section heading or end of text.
	benefitSectionRe = regexp.MustCompile(`(?is)(?:benefits covered|covered benefits|what is covered)(.*?)(?:exclusions|what is not covered|section|$)`)

	// boilerplateMarkRe drops benefit items that are really regulatory
	// boilerplate fragments surviving inside the section span.
	boilerplateMarkRe = regexp.MustCompile(`(?i)CIN:|Trade Logo`)
)

// extractCoverageDetails populates the coverage fields. The corpus is health
// brochures, so the coverage type is fixed.
func extractCoverageDetails(text string) CoverageDetails {
	text = normalize(text)

	cov := CoverageDetails{
		Type:               "Health Insurance",
		RisksCovered:       []string{},
		AdditionalBenefits: []string{},
	}

	cov.SumAssured = firstMatchGroup(text, sumAssuredPatterns)

	if m := benefitSectionRe.FindStringSubmatch(text); m != nil {
		cov.RisksCovered = bulletItems(m[1], boilerplateMarkRe)
	}

	return cov
}
