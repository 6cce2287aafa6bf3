package polpipe

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

// brochureLines is a condensed health brochure covering every extractor.
var brochureLines = []string{
	"Total Health Plan",
	"Policy Number: HDHHLIP21237V032021",
	"HDFC ERGO General Insurance Company Limited.",
	"CIN: U66010MH2002PLC134869 registered office Mumbai",
	"Trade Logo displayed above belongs to HDFC Ltd",
	"Toll free : 1800-266-0700",
	"Sum Assured - Rs. 5,00,000",
	"Premium Amount: Rs. 12,500 payable on annual premium basis.",
	"Grace period of 30 days applies.",
	"Benefits covered",
	"• Hospitalization expenses for illness.",
	"• Day care treatment procedures.",
	"• Pre and post hospitalization expenses.",
	"Exclusions",
	"• Cosmetic surgery of any kind.",
	"• Self inflicted injuries excluded.",
	"CLAIMS PROCESS",
	"• Intimate the helpline before admission.",
	"• Submit the claim form within time.",
	"Required documents: claim form, discharge summary, identity proof.",
	"Toll free : 1800-266-0700 settlement within 30 days.",
}

func TestPipeline_Process(t *testing.T) {
	pipe, err := New(Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	rec, err := pipe.Process(context.Background(), RawDocument{
		Data:      buildBrochurePDF(brochureLines),
		MediaType: "application/pdf",
	})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	if rec.PolicyDetails.PolicyName != "Total Health Plan" {
		t.Errorf("PolicyName = %q", rec.PolicyDetails.PolicyName)
	}
	if rec.PolicyDetails.PolicyNumber != "HDHHLIP21237V032021" {
		t.Errorf("PolicyNumber = %q", rec.PolicyDetails.PolicyNumber)
	}
	if rec.PolicyDetails.InsurerName != "HDFC ERGO General Insurance Company Limited" {
		t.Errorf("InsurerName = %q", rec.PolicyDetails.InsurerName)
	}
	if rec.PolicyDetails.InsurerContact != "1800-266-0700" {
		t.Errorf("InsurerContact = %q", rec.PolicyDetails.InsurerContact)
	}

	if rec.CoverageDetails.SumAssured != "5,00,000" {
		t.Errorf("SumAssured = %q", rec.CoverageDetails.SumAssured)
	}
	wantRisks := []string{
		"Hospitalization expenses for illness",
		"Day care treatment procedures",
		"Pre and post hospitalization expenses",
	}
	if !reflect.DeepEqual(rec.CoverageDetails.RisksCovered, wantRisks) {
		t.Errorf("RisksCovered = %v, want %v", rec.CoverageDetails.RisksCovered, wantRisks)
	}

	if rec.PremiumInfo.Amount != "12,500" {
		t.Errorf("Amount = %q", rec.PremiumInfo.Amount)
	}
	if rec.PremiumInfo.Frequency != "annual" {
		t.Errorf("Frequency = %q", rec.PremiumInfo.Frequency)
	}
	if rec.PremiumInfo.GracePeriod != "30 days" {
		t.Errorf("GracePeriod = %q", rec.PremiumInfo.GracePeriod)
	}

	wantExcl := []string{"Cosmetic surgery of any kind", "Self inflicted injuries excluded"}
	if !reflect.DeepEqual(rec.Exclusions, wantExcl) {
		t.Errorf("Exclusions = %v, want %v", rec.Exclusions, wantExcl)
	}

	wantSteps := []string{"Intimate the helpline before admission", "Submit the claim form within time"}
	if !reflect.DeepEqual(rec.ClaimsProcess.Steps, wantSteps) {
		t.Errorf("Steps = %v, want %v", rec.ClaimsProcess.Steps, wantSteps)
	}
	if rec.ClaimsProcess.Contact != "1800-266-0700" {
		t.Errorf("Contact = %q", rec.ClaimsProcess.Contact)
	}
	if rec.ClaimsProcess.Timeframe != "30 days" {
		t.Errorf("Timeframe = %q", rec.ClaimsProcess.Timeframe)
	}
}

func TestPipeline_RecordJSONShape(t *testing.T) {
	// WHAT: every top-level key is present and lists serialize as arrays even
	// when empty.
	// WHY: response consumers index into a fixed shape.
	pipe, err := New(Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	rec, err := pipe.Process(context.Background(), RawDocument{
		Data: buildBrochurePDF([]string{"nothing extractable in this text"}),
	})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"policyDetails", "coverageDetails", "premiumInfo", "exclusions", "claimsProcess"} {
		if _, ok := m[key]; !ok {
			t.Errorf("missing top-level key %q", key)
		}
	}
	if string(m["exclusions"]) != "[]" {
		t.Errorf("exclusions = %s, want []", m["exclusions"])
	}
	if strings.Contains(string(data), "null") {
		t.Errorf("record JSON contains null: %s", data)
	}
}

func TestPipeline_ProcessFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "brochure.pdf")
	if err := os.WriteFile(path, buildBrochurePDF(brochureLines), 0644); err != nil {
		t.Fatal(err)
	}

	pipe, err := New(Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	rec, err := pipe.ProcessFile(context.Background(), path)
	if err != nil {
		t.Fatalf("ProcessFile: %v", err)
	}
	if rec.PolicyDetails.PolicyName != "Total Health Plan" {
		t.Errorf("PolicyName = %q", rec.PolicyDetails.PolicyName)
	}
}

func TestPipeline_ProcessFile_RejectsNonPDF(t *testing.T) {
	pipe, err := New(Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := pipe.ProcessFile(context.Background(), "brochure.txt"); err == nil {
		t.Fatal("expected error for non-pdf extension")
	}
}

func TestPipeline_ProcessFile_TooLarge(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "brochure.pdf")
	if err := os.WriteFile(path, buildBrochurePDF(brochureLines), 0644); err != nil {
		t.Fatal(err)
	}

	pipe, err := New(Config{MaxDocumentSize: 10})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := pipe.ProcessFile(context.Background(), path); err == nil {
		t.Fatal("expected error for oversized file")
	}
}

func TestNew_InvalidTerminator(t *testing.T) {
	if _, err := New(Config{SectionTerminator: "("}); err == nil {
		t.Fatal("expected error for invalid terminator pattern")
	}
}

func TestQualitySuspect(t *testing.T) {
	tests := []struct {
		name string
		q    Quality
		want bool
	}{
		{"healthy", Quality{CharsPerPage: 500, PrintableRatio: 0.99}, false},
		{"too few chars", Quality{CharsPerPage: 10, PrintableRatio: 0.99}, true},
		{"low printable ratio", Quality{CharsPerPage: 500, PrintableRatio: 0.5}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.q.Suspect(); got != tt.want {
				t.Errorf("Suspect() = %v, want %v", got, tt.want)
			}
		})
	}
}
