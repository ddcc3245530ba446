package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jonathan/resume-builder/internal/preview"
	"github.com/jonathan/resume-builder/internal/printing"
	"github.com/spf13/cobra"
)

var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Print a resume document to a PDF",
	Long:  "Render a resume document and print it to an A4 PDF through a headless browser. Requires Chrome/Chromium.",
	RunE:  runPrint,
}

var (
	printInputFile  string
	printOutputFile string
	printTimeout    time.Duration
)

func init() {
	printCmd.Flags().StringVarP(&printInputFile, "in", "i", "", "Path to resume JSON file (required)")
	printCmd.Flags().StringVarP(&printOutputFile, "out", "o", "resume.pdf", "Path to output PDF file")
	printCmd.Flags().DurationVar(&printTimeout, "timeout", printing.DefaultTimeout, "Browser session timeout")
	_ = printCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(printCmd)
}

func runPrint(_ *cobra.Command, _ []string) error {
	cfg, err := loadEffectiveConfig()
	if err != nil {
		return err
	}

	doc, err := readDocument(printInputFile)
	if err != nil {
		return err
	}

	html, err := preview.RenderHTML(preview.Project(doc))
	if err != nil {
		return err
	}

	pdf, err := printing.ToPDF(context.Background(), html, printing.Options{
		Timeout: printTimeout,
		Verbose: cfg.Verbose,
	})
	if err != nil {
		return err
	}

	if err := os.WriteFile(printOutputFile, pdf, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", printOutputFile, err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Printed resume\n")
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", printOutputFile)
	return nil
}
