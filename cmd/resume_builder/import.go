package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/ingestion"
	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a resume from a JSON export or a PDF",
	Long:  "Import a resume document from a portable JSON export or extract one from a PDF using Gemini, then write the normalized document as JSON.",
	RunE:  runImport,
}

var (
	importInputFile  string
	importOutputFile string
	importAPIKey     string
)

func init() {
	importCmd.Flags().StringVarP(&importInputFile, "in", "i", "", "Path to input .json or .pdf file (required)")
	importCmd.Flags().StringVarP(&importOutputFile, "out", "o", "", "Path to output JSON file (default: cv-<name>-<date>.json)")
	importCmd.Flags().StringVar(&importAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var, PDF import only)")
	_ = importCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, _ []string) error {
	cfg, err := loadEffectiveConfig()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(importInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	apiKey := importAPIKey
	if apiKey == "" {
		apiKey = cfg.ResolveAPIKey()
	}

	llmConfig := llm.DefaultGeminiConfig()
	if cfg.Model != "" {
		llmConfig = llmConfig.WithModel(llm.TierStandard, cfg.Model)
	}
	extractor := llm.NewExtractor(apiKey, llmConfig, cfg.Verbose)

	doc, err := ingestion.FromFile(context.Background(), importInputFile, data, extractor)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintDocument(doc)
		printer.PrintExperience(doc.Experience)
	}

	path, err := writeDocument(doc, importOutputFile, cfg)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Imported resume from %s\n", importInputFile)
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", path)
	return nil
}
