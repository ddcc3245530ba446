package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/preview"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a resume document to preview HTML",
	Long:  "Render a resume document into the self-contained HTML preview that mirrors the printed page.",
	RunE:  runRender,
}

var (
	renderInputFile  string
	renderOutputFile string
)

func init() {
	renderCmd.Flags().StringVarP(&renderInputFile, "in", "i", "", "Path to resume JSON file (required)")
	renderCmd.Flags().StringVarP(&renderOutputFile, "out", "o", "resume.html", "Path to output HTML file")
	_ = renderCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(renderCmd)
}

func runRender(_ *cobra.Command, _ []string) error {
	doc, err := readDocument(renderInputFile)
	if err != nil {
		return err
	}

	html, err := preview.RenderHTML(preview.Project(doc))
	if err != nil {
		return err
	}

	if err := os.WriteFile(renderOutputFile, html, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", renderOutputFile, err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Rendered preview\n")
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", renderOutputFile)
	return nil
}
