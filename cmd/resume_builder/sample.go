package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/document"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/spf13/cobra"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Create a pre-filled demonstration resume",
	Long:  "Create a resume document pre-filled with realistic demonstration content and write it as a portable JSON file.",
	RunE:  runSample,
}

var sampleOutputFile string

func init() {
	sampleCmd.Flags().StringVarP(&sampleOutputFile, "out", "o", "", "Path to output JSON file (default: cv-<name>-<date>.json)")

	rootCmd.AddCommand(sampleCmd)
}

func runSample(_ *cobra.Command, _ []string) error {
	cfg, err := loadEffectiveConfig()
	if err != nil {
		return err
	}

	doc := document.Sample()
	path, err := writeDocument(doc, sampleOutputFile, cfg)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintDocument(doc)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Created sample resume\n")
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", path)
	return nil
}
