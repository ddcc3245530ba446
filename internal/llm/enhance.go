package llm

import (
	"context"
	"log"
	"strings"

	"github.com/jonathan/resume-builder/internal/prompts"
)

// EnhanceKind selects the enhancement prompt.
type EnhanceKind string

// Enhancement kinds.
const (
	// KindSummary rewrites a professional summary.
	KindSummary EnhanceKind = "summary"
	// KindExperience rewrites a work experience description as bullets.
	KindExperience EnhanceKind = "experience"
	// KindFix corrects grammar and tone without restructuring.
	KindFix EnhanceKind = "fix"
)

// Enhancer improves free-form resume prose through the LLM.
//
// The contract is silent-failure: on any failure (missing credential, client
// or service error) Enhance returns the ORIGINAL input text unchanged and
// never raises past its boundary. Callers cannot distinguish "enhanced" from
// "unchanged due to failure" except by comparing output to input.
type Enhancer struct {
	apiKey  string
	config  *Config
	verbose bool
}

// NewEnhancer creates an enhancer. An empty apiKey is allowed; it degrades
// every call to a no-op.
func NewEnhancer(apiKey string, config *Config, verbose bool) *Enhancer {
	if config == nil {
		config = DefaultConfig()
	}
	return &Enhancer{apiKey: apiKey, config: config, verbose: verbose}
}

// Enhance returns improved prose for the given text, or the original text on
// any failure. Blank input returns the empty string.
func (e *Enhancer) Enhance(ctx context.Context, text string, kind EnhanceKind) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	if e.apiKey == "" {
		if e.verbose {
			log.Printf("[ENHANCE] no API key configured, returning text unchanged")
		}
		return text
	}

	template, err := prompts.Get("enhance.json", string(kind))
	if err != nil {
		// Unknown kind: treat like any other failure.
		if e.verbose {
			log.Printf("[ENHANCE] %v", err)
		}
		return text
	}
	prompt := prompts.Format(template, map[string]string{"Text": text})

	client, err := NewClient(ctx, e.config, e.apiKey)
	if err != nil {
		if e.verbose {
			log.Printf("[ENHANCE] failed to create client: %v", err)
		}
		return text
	}
	defer func() { _ = client.Close() }()

	tier := TierStandard
	if kind == KindFix {
		tier = TierLite
	}
	improved, err := client.GenerateContent(ctx, prompt, tier)
	if err != nil {
		if e.verbose {
			log.Printf("[ENHANCE] generation failed: %v", err)
		}
		return text
	}

	improved = strings.TrimSpace(improved)
	if improved == "" {
		return text
	}
	return improved
}
