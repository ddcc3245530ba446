// Package export serializes the resume document to its portable JSON form.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/jonathan/resume-builder/internal/document"
)

// Marshal serializes the full document to the canonical portable form:
// UTF-8 JSON, pretty-printed with two-space indent, every field present.
// The output is byte-for-byte reproducible from the same document value.
func Marshal(doc document.Resume) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize document: %w", err)
	}
	return data, nil
}

// Filename returns the export filename, embedding the person's name (or a
// fallback) and the given date: cv-<fullName|resume>-<YYYY-MM-DD>.json.
func Filename(doc document.Resume, now time.Time) string {
	name := doc.PersonalInfo.FullName
	if name == "" {
		name = "resume"
	}
	return fmt.Sprintf("cv-%s-%s.json", name, now.Format("2006-01-02"))
}

// WriteFile serializes the document and writes it to path.
func WriteFile(doc document.Resume, path string) error {
	data, err := Marshal(doc)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
