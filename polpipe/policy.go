package polpipe

import (
	"regexp"
	"strings"
)

// Each field runs an ordered candidate list: a brochure-specific pattern
// first, then a generic labeled pattern. The first match wins.
var (
	policyNamePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)TOTAL\s+HEALTH\s+PLAN`),
		regexp.MustCompile(`(?i)(?:policy|plan)\s*(?:name|type)?\s*:?\s*([^\n.]*(?:health|insurance|plan)[^\n.]*)`),
	}

	policyNumberPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)HDHHLIP\d+V\d+`),
		regexp.MustCompile(`(?i)policy\s*(?:number|no|#)\s*:?\s*([A-Z0-9-]+)`),
	}

	insurerPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(HDFC\s*ERGO[^.]*(?:Insurance|Company)[^.]*)`),
		regexp.MustCompile(`(?i)(insurance\s*company|insurer)\s*:?\s*([^\n.]*)`),
	}

	contactPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)toll\s*free\s*:?\s*([0-9 -]+)`),
		regexp.MustCompile(`(?i)contact\s*(?:at|on|:)\s*([0-9 -]+)`),
	}
)

// extractPolicyDetails populates the policy identity fields. Issue and
// expiry dates have no extraction rule and stay empty.
func extractPolicyDetails(text string) PolicyDetails {
	text = normalize(text)

	return PolicyDetails{
		PolicyName:     strings.TrimSpace(firstMatchWhole(text, policyNamePatterns)),
		PolicyNumber:   firstMatchWhole(text, policyNumberPatterns),
		InsurerName:    strings.TrimSpace(firstMatchGroup(text, insurerPatterns)),
		InsurerContact: strings.TrimSpace(firstMatchGroup(text, contactPatterns)),
	}
}
