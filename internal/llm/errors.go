package llm

import "fmt"

// ExtractionError represents a failure anywhere in the PDF-to-document
// extraction pipeline (missing credential, unreadable PDF, service error,
// malformed model output).
type ExtractionError struct {
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction error: %s", e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
