package polpipe

import (
	"reflect"
	"regexp"
	"testing"
)

func TestBoundSpan(t *testing.T) {
	heading := regexp.MustCompile(`(?i)EXCLUSIONS`)
	terminator := regexp.MustCompile(defaultSectionTerminator)

	tests := []struct {
		name     string
		text     string
		wantSpan string
		wantOK   bool
	}{
		{
			name:     "span runs to next all-caps heading",
			text:     "intro EXCLUSIONS cosmetic surgery and more CLAIMS steps follow",
			wantSpan: " cosmetic surgery and more ",
			wantOK:   true,
		},
		{
			name:     "span runs to end without terminator",
			text:     "intro EXCLUSIONS cosmetic surgery and more",
			wantSpan: " cosmetic surgery and more",
			wantOK:   true,
		},
		{
			name:   "no heading",
			text:   "nothing of interest here",
			wantOK: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			span, ok := boundSpan(tt.text, heading, terminator)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && span != tt.wantSpan {
				t.Errorf("span = %q, want %q", span, tt.wantSpan)
			}
		})
	}
}

func TestBulletItems_NoiseThreshold(t *testing.T) {
	// WHAT: items of 10 runes or fewer are dropped, 11 runes kept.
	// WHY: short fragments are layout noise, not real list entries.
	span := "• exactly10c. • exactly11ch. • tiny."
	got := bulletItems(span, nil)
	want := []string{"exactly11ch"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("bulletItems = %v, want %v", got, want)
	}
}

func TestBulletItems_NumberedAndDropPattern(t *testing.T) {
	span := "1. Intimate the insurer first. 2. CIN: boilerplate fragment here. • Submit the claim form."
	drop := regexp.MustCompile(`(?i)CIN:`)
	got := bulletItems(span, drop)
	want := []string{"Intimate the insurer first", "Submit the claim form"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("bulletItems = %v, want %v", got, want)
	}
}

func TestSplitClause(t *testing.T) {
	got := splitClause("pre-existing conditions, and more, cosmetic treatments")
	want := []string{"pre-existing conditions", "cosmetic treatments"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("splitClause = %v, want %v", got, want)
	}
}

func TestSplitClauseAll_KeepsShortFragments(t *testing.T) {
	got := splitClauseAll("claim form, id proof")
	want := []string{"claim form", "id proof"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("splitClauseAll = %v, want %v", got, want)
	}
}

func TestDedupe(t *testing.T) {
	got := dedupe([]string{"alpha", "beta", "alpha", "gamma", "beta"})
	want := []string{"alpha", "beta", "gamma"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("dedupe = %v, want %v", got, want)
	}
	if empty := dedupe(nil); empty == nil || len(empty) != 0 {
		t.Errorf("dedupe(nil) = %v, want empty non-nil slice", empty)
	}
}
