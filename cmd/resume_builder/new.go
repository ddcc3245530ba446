package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/document"
	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create an empty resume document",
	Long:  "Create a new resume document with every field blank and write it as a portable JSON file.",
	RunE:  runNew,
}

var newOutputFile string

func init() {
	newCmd.Flags().StringVarP(&newOutputFile, "out", "o", "", "Path to output JSON file (default: cv-resume-<date>.json)")

	rootCmd.AddCommand(newCmd)
}

func runNew(_ *cobra.Command, _ []string) error {
	cfg, err := loadEffectiveConfig()
	if err != nil {
		return err
	}

	path, err := writeDocument(document.Empty(), newOutputFile, cfg)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Created empty resume\n")
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", path)
	return nil
}
