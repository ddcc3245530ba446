package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/document"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/ingestion"
)

// loadEffectiveConfig resolves the CLI configuration: the optional --config
// file first, then environment overrides. The --verbose flag always wins.
func loadEffectiveConfig() (config.Config, error) {
	var cfg config.Config
	if rootConfigFile != "" {
		loaded, err := config.LoadConfig(rootConfigFile)
		if err != nil {
			return config.Config{}, err
		}
		if err := loaded.Validate(); err != nil {
			return config.Config{}, err
		}
		cfg = *loaded
	}
	if rootVerbose {
		cfg.Verbose = true
	}
	return cfg, nil
}

// readDocument loads a portable JSON export from disk.
func readDocument(path string) (document.Resume, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return document.Resume{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	doc, err := ingestion.FromJSON(data)
	if err != nil {
		return document.Resume{}, err
	}
	return doc, nil
}

// writeDocument serializes the document to path. An empty path picks the
// default export filename inside the configured output directory.
func writeDocument(doc document.Resume, path string, cfg config.Config) (string, error) {
	if path == "" {
		path = filepath.Join(cfg.OutputDir, export.Filename(doc, time.Now()))
	}
	if err := export.WriteFile(doc, path); err != nil {
		return "", err
	}
	return path, nil
}
