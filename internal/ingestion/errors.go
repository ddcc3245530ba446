// Package ingestion imports externally sourced resumes (portable JSON files
// and PDFs) into the document model. Every failure path leaves the caller's
// current document untouched: import either yields a complete, coerced
// document or an ImportError.
package ingestion

import "fmt"

// ErrorKind classifies an import failure.
type ErrorKind string

// Import failure kinds.
const (
	// InvalidFormat means the JSON payload could not be parsed as a document object.
	InvalidFormat ErrorKind = "invalid_format"
	// ExtractionFailed means the AI-driven PDF extraction did not produce a document.
	ExtractionFailed ErrorKind = "extraction_failed"
	// UnsupportedFormat means the file type is neither JSON nor PDF.
	UnsupportedFormat ErrorKind = "unsupported_format"
)

// ImportError reports why an import was rejected.
type ImportError struct {
	Kind  ErrorKind
	Cause error
}

func (e *ImportError) Error() string {
	var msg string
	switch e.Kind {
	case InvalidFormat:
		msg = "invalid resume file, expected a JSON document"
	case ExtractionFailed:
		msg = "could not extract a resume from the PDF"
	case UnsupportedFormat:
		msg = "unsupported file format, expected .json or .pdf"
	default:
		msg = string(e.Kind)
	}
	if e.Cause != nil {
		return fmt.Sprintf("import error: %s: %v", msg, e.Cause)
	}
	return fmt.Sprintf("import error: %s", msg)
}

func (e *ImportError) Unwrap() error {
	return e.Cause
}
