package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/editor"
	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/store"
	"github.com/spf13/cobra"
)

var enhanceCmd = &cobra.Command{
	Use:   "enhance",
	Short: "Rewrite resume text with Gemini",
	Long:  "Rewrite the summary or an experience description with Gemini and write the updated document back. Without an API key the text is left unchanged.",
	RunE:  runEnhance,
}

var (
	enhanceInputFile    string
	enhanceOutputFile   string
	enhanceAPIKey       string
	enhanceSummaryFlag  bool
	enhanceFixFlag      bool
	enhanceExperienceID string
	enhanceAllFlag      bool
	enhanceStrictFlag   bool
)

func init() {
	enhanceCmd.Flags().StringVarP(&enhanceInputFile, "in", "i", "", "Path to resume JSON file (required)")
	enhanceCmd.Flags().StringVarP(&enhanceOutputFile, "out", "o", "", "Path to output JSON file (default: overwrite input)")
	enhanceCmd.Flags().StringVar(&enhanceAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	enhanceCmd.Flags().BoolVar(&enhanceSummaryFlag, "summary", false, "Enhance the professional summary")
	enhanceCmd.Flags().BoolVar(&enhanceFixFlag, "fix", false, "Fix grammar and spelling in the summary instead of rewriting it")
	enhanceCmd.Flags().StringVar(&enhanceExperienceID, "experience", "", "Enhance the experience entry with this id")
	enhanceCmd.Flags().BoolVar(&enhanceAllFlag, "all", false, "Enhance the summary and every experience description")
	enhanceCmd.Flags().BoolVar(&enhanceStrictFlag, "strict", false, "Discard AI results if the document changed while the request was in flight")
	_ = enhanceCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(enhanceCmd)
}

func runEnhance(_ *cobra.Command, _ []string) error {
	targets := 0
	if enhanceSummaryFlag {
		targets++
	}
	if enhanceExperienceID != "" {
		targets++
	}
	if enhanceAllFlag {
		targets++
	}
	if targets != 1 {
		return fmt.Errorf("exactly one of --summary, --experience or --all is required")
	}
	if enhanceFixFlag && !enhanceSummaryFlag {
		return fmt.Errorf("--fix only applies to --summary")
	}

	cfg, err := loadEffectiveConfig()
	if err != nil {
		return err
	}

	doc, err := readDocument(enhanceInputFile)
	if err != nil {
		return err
	}

	apiKey := enhanceAPIKey
	if apiKey == "" {
		apiKey = cfg.ResolveAPIKey()
	}
	llmConfig := llm.DefaultGeminiConfig()
	if cfg.Model != "" {
		llmConfig = llmConfig.WithModel(llm.TierStandard, cfg.Model)
	}
	enhancer := llm.NewEnhancer(apiKey, llmConfig, cfg.Verbose)

	st := store.New(doc)
	var opts []editor.AssistantOption
	if enhanceStrictFlag {
		opts = append(opts, editor.WithStrictVersioning())
	}
	assistant := editor.NewAssistant(st, enhancer, opts...)

	ctx := context.Background()
	switch {
	case enhanceAllFlag:
		n := assistant.EnhanceAll(ctx)
		_, _ = fmt.Fprintf(os.Stdout, "Enhanced %d fields\n", n)
	case enhanceSummaryFlag && enhanceFixFlag:
		assistant.FixSummary(ctx)
	case enhanceSummaryFlag:
		assistant.EnhanceSummary(ctx)
	default:
		assistant.EnhanceExperience(ctx, enhanceExperienceID)
	}

	updated := st.Current()
	if cfg.Verbose && enhanceSummaryFlag {
		observability.NewPrinter(os.Stdout).PrintEnhancement("summary", doc.Summary, updated.Summary)
	}

	outPath := enhanceOutputFile
	if outPath == "" {
		outPath = enhanceInputFile
	}
	path, err := writeDocument(updated, outPath, cfg)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", path)
	return nil
}
