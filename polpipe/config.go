package polpipe

import (
	"log/slog"
	"regexp"
)

// defaultSectionTerminator ends a bounded section span at the next all-caps
// word of two or more letters, which is how headings survive whitespace
// normalization.
const defaultSectionTerminator = `\b[A-Z]{2,}\b`

// Config configures the brochure pipeline.
type Config struct {
	// MaxDocumentSize is the maximum document size ProcessFile accepts
	// (default: 50 MB).
	MaxDocumentSize int64 `json:"max_document_size" yaml:"max_document_size"`

	// SectionTerminator is the pattern that ends a bounded section span
	// (exclusions, claims). Empty selects the default all-caps heading
	// terminator.
	SectionTerminator string `json:"section_terminator" yaml:"section_terminator"`

	// Logger for debug/warn messages.
	Logger *slog.Logger `json:"-" yaml:"-"`
}

func (c *Config) defaults() {
	if c.MaxDocumentSize <= 0 {
		c.MaxDocumentSize = 50 * 1024 * 1024
	}
	if c.SectionTerminator == "" {
		c.SectionTerminator = defaultSectionTerminator
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

func (c *Config) compileTerminator() (*regexp.Regexp, error) {
	return regexp.Compile(c.SectionTerminator)
}
