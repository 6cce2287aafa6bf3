// Package report decorates a policy record into the client-facing response:
// six numbered sections with marker-prefixed list items, plus static
// advisory content that applies to every health policy.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hazyhaar/polbrief/polpipe"
)

// Response is the full client-facing payload.
type Response struct {
	Content               Content  `json:"content"`
	AdditionalInformation []string `json:"additional_information"`
}

// Content groups the six report sections under their display headings.
// The headings carry keycap runes (U+FE0F, U+20E3) that encoding/json's
// struct tag validator rejects, so Content marshals itself instead of
// relying on tags.
type Content struct {
	Introduction Introduction
	Coverage     Coverage
	Premium      Premium
	Benefits     Benefits
	Exclusions   Exclusions
	Loopholes    Loopholes
}

// MarshalJSON emits the sections in display order under their numbered
// heading keys.
func (c Content) MarshalJSON() ([]byte, error) {
	sections := []struct {
		heading string
		value   any
	}{
		{"1️⃣ Introduction", c.Introduction},
		{"2️⃣ Coverage Overview", c.Coverage},
		{"3️⃣ Premium & Payment Details", c.Premium},
		{"4️⃣ Benefits & Advantages", c.Benefits},
		{"5️⃣ Exclusions & Limitations", c.Exclusions},
		{"6️⃣ Potential Loopholes & Important Considerations", c.Loopholes},
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, s := range sections {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(s.heading)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(s.value)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

type Introduction struct {
	PolicyName     string `json:"Policy Name"`
	PolicyNumber   string `json:"Policy Number"`
	IssuedBy       string `json:"Issued by"`
	InsurerContact string `json:"Insurer Contact"`
	DateOfIssue    string `json:"Date of Issue"`
	ExpiryDate     string `json:"Expiry Date"`
}

type Coverage struct {
	TypeOfInsurance    string   `json:"Type of Insurance"`
	SumAssured         string   `json:"Sum Assured"`
	RisksCovered       []string `json:"Risks Covered"`
	AdditionalBenefits []string `json:"Additional Benefits"`
}

type Premium struct {
	PremiumAmount    string `json:"Premium Amount"`
	PaymentFrequency string `json:"Payment Frequency"`
	DueDate          string `json:"Due Date"`
	GracePeriod      string `json:"Grace Period"`
}

type Benefits struct {
	KeyBenefits []string `json:"Key Benefits"`
}

type Exclusions struct {
	NotCovered []string `json:"Not Covered"`
}

type Loopholes struct {
	ImportantPoints []string `json:"Important Points to Note"`
}

// keyBenefits and importantPoints are advisory boilerplate, not extracted
// from the brochure. They ship with every response.
var keyBenefits = []string{
	"Comprehensive health coverage",
	"Cashless hospitalization at network hospitals",
	"Pre and post hospitalization expenses",
	"Day care procedures coverage",
	"Alternative treatment coverage",
	"No claim bonus benefits",
	"Tax benefits under section 80D",
	"Lifelong renewal option",
	"Restoration benefit",
	"Cumulative bonus",
}

var importantPoints = []string{
	"Pre-existing diseases waiting period: Insurance won't cover any pre-existing conditions for the first 2-4 years",
	"Specific disease waiting period: Certain diseases like hernia, cataract have 24-month waiting period",
	"Room rent capping: Daily room rent is limited to 1-2% of sum assured",
	"Sub-limits on specific procedures: Each medical procedure has a maximum claim limit",
	"Co-payment requirements: Policyholder must pay 10-20% of claim amount",
	"Disease-wise waiting periods: Different waiting periods for different diseases",
	"Network hospital restrictions: Cashless treatment only at network hospitals",
	"Documentation requirements: Strict documentation needed for claim approval",
	"Claim settlement conditions: Claims can be rejected for minor documentation errors",
	"Policy renewal terms: Premium may increase significantly at renewal",
	"Day care procedures: Limited coverage for procedures not requiring 24-hour hospitalization",
	"Alternative treatments: Limited coverage for Ayurveda, Homeopathy, etc.",
	"Dental treatments: Only emergency dental procedures are covered",
	"Cosmetic surgeries: Not covered unless medically necessary",
	"Maternity benefits: Limited coverage with waiting period",
	"Mental health: Limited coverage for psychiatric treatments",
}

var additionalInformation = []string{
	"This policy is subject to the terms and conditions mentioned in the policy document",
	"All benefits are subject to policy terms and conditions",
	"Please read the policy document carefully for complete details",
	"For any queries, please contact the insurer at the provided contact number",
	"Keep all policy documents and receipts safely",
	"Inform insurer about any changes in contact details",
	"Maintain regular premium payments to keep policy active",
}

func prefixed(prefix string, items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, prefix+" "+it)
	}
	return out
}

// Build decorates a policy record into the response payload. Extracted list
// items carry per-section markers; static lists are shared across records.
func Build(rec *polpipe.PolicyRecord) *Response {
	return &Response{
		Content: Content{
			Introduction: Introduction{
				PolicyName:     rec.PolicyDetails.PolicyName,
				PolicyNumber:   rec.PolicyDetails.PolicyNumber,
				IssuedBy:       rec.PolicyDetails.InsurerName,
				InsurerContact: rec.PolicyDetails.InsurerContact,
				DateOfIssue:    rec.PolicyDetails.IssueDate,
				ExpiryDate:     rec.PolicyDetails.ExpiryDate,
			},
			Coverage: Coverage{
				TypeOfInsurance:    rec.CoverageDetails.Type,
				SumAssured:         "₹" + rec.CoverageDetails.SumAssured,
				RisksCovered:       prefixed("✅", rec.CoverageDetails.RisksCovered),
				AdditionalBenefits: prefixed("🚀", rec.CoverageDetails.AdditionalBenefits),
			},
			Premium: Premium{
				PremiumAmount:    "₹" + rec.PremiumInfo.Amount,
				PaymentFrequency: rec.PremiumInfo.Frequency,
				DueDate:          rec.PremiumInfo.DueDates,
				GracePeriod:      rec.PremiumInfo.GracePeriod,
			},
			Benefits: Benefits{
				KeyBenefits: prefixed("🌟", keyBenefits),
			},
			Exclusions: Exclusions{
				NotCovered: prefixed("❌", rec.Exclusions),
			},
			Loopholes: Loopholes{
				ImportantPoints: prefixed("⚠️", importantPoints),
			},
		},
		AdditionalInformation: additionalInformation,
	}
}

// Render formats a policy record as the plain-text report the CLI writes.
func Render(rec *polpipe.PolicyRecord) string {
	var sb strings.Builder

	sb.WriteString("1️⃣ Introduction\n\n")
	pd := rec.PolicyDetails
	fmt.Fprintf(&sb, "Policy Name: %s\n", pd.PolicyName)
	fmt.Fprintf(&sb, "Policy Number: %s\n", pd.PolicyNumber)
	fmt.Fprintf(&sb, "Issued by: %s\n", pd.InsurerName)
	fmt.Fprintf(&sb, "Insurer Contact: %s\n", pd.InsurerContact)
	fmt.Fprintf(&sb, "Date of Issue: %s\n", pd.IssueDate)
	fmt.Fprintf(&sb, "Expiry Date: %s\n\n", pd.ExpiryDate)

	sb.WriteString("2️⃣ Coverage Overview\n\n")
	cov := rec.CoverageDetails
	fmt.Fprintf(&sb, "Type of Insurance: %s\n", cov.Type)
	fmt.Fprintf(&sb, "Sum Assured: ₹%s\n\n", cov.SumAssured)
	sb.WriteString("Risks Covered:\n")
	for _, risk := range cov.RisksCovered {
		fmt.Fprintf(&sb, "✅ %s\n", risk)
	}
	if len(cov.AdditionalBenefits) > 0 {
		sb.WriteString("\nAdditional Benefits:\n")
		for _, benefit := range cov.AdditionalBenefits {
			fmt.Fprintf(&sb, "🚀 %s\n", benefit)
		}
	}
	sb.WriteByte('\n')

	sb.WriteString("3️⃣ Premium & Payment Details\n\n")
	prem := rec.PremiumInfo
	fmt.Fprintf(&sb, "Premium Amount: ₹%s\n", prem.Amount)
	fmt.Fprintf(&sb, "Payment Frequency: %s\n", prem.Frequency)
	fmt.Fprintf(&sb, "Due Date: %s\n", prem.DueDates)
	fmt.Fprintf(&sb, "Grace Period: %s\n\n", prem.GracePeriod)

	sb.WriteString("4️⃣ Benefits & Advantages\n\n")
	sb.WriteString("🌟 Key Benefits:\n")
	for _, b := range keyBenefits {
		fmt.Fprintf(&sb, "• %s\n", b)
	}
	sb.WriteByte('\n')

	sb.WriteString("5️⃣ Exclusions & Limitations\n\n")
	sb.WriteString("❌ Not Covered:\n")
	for _, ex := range rec.Exclusions {
		fmt.Fprintf(&sb, "%s\n", ex)
	}
	sb.WriteByte('\n')

	sb.WriteString("6️⃣ Potential Loopholes & Important Considerations\n\n")
	sb.WriteString("⚠️ Important Points to Note:\n")
	for _, pt := range importantPoints {
		fmt.Fprintf(&sb, "• %s\n", pt)
	}
	sb.WriteByte('\n')

	return sb.String()
}
