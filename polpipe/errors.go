package polpipe

import "fmt"

// ParseError is returned when the input bytes cannot be read as a PDF, or
// the document has no pages. It is fatal for the whole call: no partial
// record is returned alongside it.
type ParseError struct {
	Reason string
	Cause  error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("polpipe: %s: %v", e.Reason, e.Cause)
	}
	return fmt.Sprintf("polpipe: %s", e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Cause }

// ExtractError is returned when field extraction faults unexpectedly.
// A pattern that simply does not match is never an error — the field keeps
// its default value instead.
type ExtractError struct {
	Cause error
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("polpipe: field extraction failed: %v", e.Cause)
}

func (e *ExtractError) Unwrap() error { return e.Cause }
