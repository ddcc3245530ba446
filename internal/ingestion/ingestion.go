package ingestion

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-builder/internal/document"
)

// Extractor turns raw PDF bytes into a resume document. Satisfied by
// llm.Extractor.
type Extractor interface {
	ExtractResume(ctx context.Context, pdfData []byte) (document.Resume, error)
}

// FromJSON parses a portable JSON export back into a document. The payload
// must be a JSON object; anything else (arrays, scalars, null, malformed
// text) is rejected with InvalidFormat. Missing fields are filled with their
// zero values and entries without ids get fresh ones.
func FromJSON(data []byte) (document.Resume, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return document.Resume{}, &ImportError{Kind: InvalidFormat, Cause: err}
	}
	if probe == nil {
		return document.Resume{}, &ImportError{Kind: InvalidFormat, Cause: fmt.Errorf("payload is null")}
	}

	var doc document.Resume
	if err := json.Unmarshal(data, &doc); err != nil {
		return document.Resume{}, &ImportError{Kind: InvalidFormat, Cause: err}
	}
	return document.Coerce(doc), nil
}

// FromPDF runs the AI extraction over raw PDF bytes. The extractor already
// coerces its output into a complete document; any failure along the way
// (unreadable PDF, missing credential, model error, invalid response) is
// collapsed into a single ExtractionFailed error.
func FromPDF(ctx context.Context, pdfData []byte, x Extractor) (document.Resume, error) {
	doc, err := x.ExtractResume(ctx, pdfData)
	if err != nil {
		return document.Resume{}, &ImportError{Kind: ExtractionFailed, Cause: err}
	}
	return doc, nil
}

// FromFile dispatches on the file extension: .json goes through FromJSON,
// .pdf through FromPDF. Anything else is rejected with UnsupportedFormat.
func FromFile(ctx context.Context, name string, data []byte, x Extractor) (document.Resume, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return FromJSON(data)
	case ".pdf":
		return FromPDF(ctx, data, x)
	default:
		return document.Resume{}, &ImportError{
			Kind:  UnsupportedFormat,
			Cause: fmt.Errorf("file %q", name),
		}
	}
}
