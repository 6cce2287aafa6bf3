// Package polpipe turns insurance brochure PDFs into structured policy
// records.
//
// The pipeline runs in two stages: PDF text extraction (pure Go,
// CGO_ENABLED=0 compatible), then rule-based field extraction over the
// normalized text. Extraction never fails on a missing field: patterns that
// do not match leave the field at its deterministic default, so every
// returned record carries the full shape.
//
// Usage:
//
//	pipe, err := polpipe.New(polpipe.Config{})
//	rec, err := pipe.Process(ctx, polpipe.RawDocument{Data: pdfBytes})
//	fmt.Println(rec.PolicyDetails.PolicyName)
package polpipe

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Pipeline is the brochure processing engine. Safe for concurrent use.
type Pipeline struct {
	cfg        Config
	logger     *slog.Logger
	terminator *regexp.Regexp
}

// New creates a Pipeline with the given configuration. It fails only when
// the configured section terminator is not a valid pattern.
func New(cfg Config) (*Pipeline, error) {
	cfg.defaults()
	term, err := cfg.compileTerminator()
	if err != nil {
		return nil, fmt.Errorf("compile section terminator %q: %w", cfg.SectionTerminator, err)
	}
	return &Pipeline{
		cfg:        cfg,
		logger:     cfg.Logger,
		terminator: term,
	}, nil
}

// Process extracts a policy record from raw brochure bytes.
// A *ParseError means the bytes are not a usable PDF; an *ExtractError means
// field extraction itself faulted. No partial record accompanies an error.
func (p *Pipeline) Process(ctx context.Context, doc RawDocument) (*PolicyRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	text, quality, err := extractPDF(doc.Data)
	if err != nil {
		return nil, err
	}

	p.logger.Debug("brochure text extracted",
		"pages", quality.PageCount,
		"chars_per_page", quality.CharsPerPage,
		"printable_ratio", quality.PrintableRatio)
	if quality.Suspect() {
		p.logger.Warn("extraction quality suspect, fields may be empty",
			"pages", quality.PageCount,
			"chars_per_page", quality.CharsPerPage,
			"printable_ratio", quality.PrintableRatio)
	}

	return p.extractFields(text)
}

// ProcessFile reads a brochure from disk and processes it. The extension
// must be .pdf and the file must fit within MaxDocumentSize.
func (p *Pipeline) ProcessFile(ctx context.Context, path string) (*PolicyRecord, error) {
	if ext := strings.ToLower(filepath.Ext(path)); ext != ".pdf" {
		return nil, fmt.Errorf("unsupported format: %q", ext)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.Size() > p.cfg.MaxDocumentSize {
		return nil, fmt.Errorf("file too large: %d bytes (max %d)", info.Size(), p.cfg.MaxDocumentSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return p.Process(ctx, RawDocument{Data: data, MediaType: "application/pdf"})
}

// extractFields runs all five extractors over the raw text. Each extractor
// normalizes independently so they stay usable in isolation.
func (p *Pipeline) extractFields(text string) (rec *PolicyRecord, err error) {
	defer func() {
		if r := recover(); r != nil {
			rec = nil
			err = &ExtractError{Cause: fmt.Errorf("%v", r)}
		}
	}()

	rec = &PolicyRecord{
		PolicyDetails:   extractPolicyDetails(text),
		CoverageDetails: extractCoverageDetails(text),
		PremiumInfo:     extractPremiumInfo(text),
		Exclusions:      extractExclusions(text, p.terminator),
		ClaimsProcess:   extractClaimsProcess(text, p.terminator),
	}
	return rec, nil
}
