package llm

import (
	"context"
	"encoding/json"
	"log"

	"github.com/jonathan/resume-builder/internal/document"
	"github.com/jonathan/resume-builder/internal/pdftext"
	"github.com/jonathan/resume-builder/internal/prompts"
	"github.com/jonathan/resume-builder/internal/schemas"
)

// Extractor turns a PDF resume into a structured document through the LLM.
type Extractor struct {
	apiKey  string
	config  *Config
	verbose bool
}

// NewExtractor creates an extractor. An empty apiKey makes every extraction
// fail with an ExtractionError.
func NewExtractor(apiKey string, config *Config, verbose bool) *Extractor {
	if config == nil {
		config = DefaultConfig()
	}
	return &Extractor{apiKey: apiKey, config: config, verbose: verbose}
}

// ExtractResume extracts page text from the PDF (ordered by page number,
// pages joined with a newline), asks the model for the document JSON shape,
// strips any code-fence wrappers, type-checks the output against the resume
// schema, decodes it, and coerces it into a fully populated document. Any
// failure returns an error; the caller maps it to an extraction failure.
func (x *Extractor) ExtractResume(ctx context.Context, pdfData []byte) (document.Resume, error) {
	if x.apiKey == "" {
		return document.Resume{}, &ExtractionError{Message: "no API key configured"}
	}

	text, err := pdftext.Text(pdfData)
	if err != nil {
		return document.Resume{}, &ExtractionError{Message: "failed to extract PDF text", Cause: err}
	}
	if x.verbose {
		log.Printf("[EXTRACT] extracted %d bytes of PDF text", len(text))
	}

	template, err := prompts.Get("extraction.json", "resume")
	if err != nil {
		return document.Resume{}, &ExtractionError{Message: "failed to load extraction prompt", Cause: err}
	}
	prompt := prompts.Format(template, map[string]string{"Text": text})

	client, err := NewClient(ctx, x.config, x.apiKey)
	if err != nil {
		return document.Resume{}, &ExtractionError{Message: "failed to create LLM client", Cause: err}
	}
	defer func() { _ = client.Close() }()

	// GenerateJSON strips markdown code fences before returning.
	raw, err := client.GenerateJSON(ctx, prompt, TierStandard)
	if err != nil {
		return document.Resume{}, &ExtractionError{Message: "failed to generate extraction", Cause: err}
	}
	if x.verbose {
		preview := raw
		if len(preview) > 500 {
			preview = preview[:500]
		}
		log.Printf("[EXTRACT] model output: %s", preview)
	}

	if err := schemas.ValidateResume(raw); err != nil {
		return document.Resume{}, &ExtractionError{Message: "model output does not match document shape", Cause: err}
	}

	var doc document.Resume
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return document.Resume{}, &ExtractionError{Message: "model returned non-JSON content", Cause: err}
	}

	return document.Coerce(doc), nil
}
