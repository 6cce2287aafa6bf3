package polpipe

// RawDocument is the input to a processing call: opaque document bytes plus
// the media type declared by the caller. The boundary layer is responsible
// for validating extension/media type before handing bytes to the pipeline.
type RawDocument struct {
	Data      []byte
	MediaType string
}

// PolicyRecord is the structured result of processing one brochure.
// Every field is always present with a deterministic default (empty string
// or empty list); a pattern that never matched leaves its field at the
// default rather than removing it.
type PolicyRecord struct {
	PolicyDetails   PolicyDetails   `json:"policyDetails"`
	CoverageDetails CoverageDetails `json:"coverageDetails"`
	PremiumInfo     PremiumInfo     `json:"premiumInfo"`
	Exclusions      []string        `json:"exclusions"`
	ClaimsProcess   ClaimsProcess   `json:"claimsProcess"`
}

// PolicyDetails identifies the policy and its insurer.
type PolicyDetails struct {
	PolicyName     string `json:"policyName"`
	PolicyNumber   string `json:"policyNumber"`
	InsurerName    string `json:"insurerName"`
	InsurerContact string `json:"insurerContact"`
	IssueDate      string `json:"issueDate"`  // no extraction rule populates this yet
	ExpiryDate     string `json:"expiryDate"` // no extraction rule populates this yet
}

// CoverageDetails describes what the policy covers.
type CoverageDetails struct {
	Type               string   `json:"type"`
	SumAssured         string   `json:"sumAssured"`
	RisksCovered       []string `json:"risksCovered"`
	AdditionalBenefits []string `json:"additionalBenefits"` // no extraction rule populates this yet
}

// PremiumInfo describes payment terms.
type PremiumInfo struct {
	Amount      string `json:"amount"`
	Frequency   string `json:"frequency"`
	DueDates    string `json:"dueDates"` // no extraction rule populates this yet
	GracePeriod string `json:"gracePeriod"`
}

// ClaimsProcess describes how to file a claim.
type ClaimsProcess struct {
	Steps     []string `json:"steps"`
	Documents []string `json:"documents"`
	Contact   string   `json:"contact"`
	Timeframe string   `json:"timeframe"`
}
