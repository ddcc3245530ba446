package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-builder/internal/document"
)

func TestPrintDocument(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintDocument(document.Sample())

	out := buf.String()
	assert.Contains(t, out, "RESUME DOCUMENT")
	assert.Contains(t, out, "Jordan Avery")
	assert.Contains(t, out, "Experience entries: 2")
	assert.Contains(t, out, "Skills:             8")
}

func TestPrintDocument_EmptyUsesPlaceholder(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintDocument(document.Empty())

	assert.Contains(t, buf.String(), "Your Name")
}

func TestPrintExperience(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintExperience(document.Sample().Experience)

	out := buf.String()
	assert.Contains(t, out, "EXPERIENCE")
	assert.Contains(t, out, "Northwind Labs")
	assert.Contains(t, out, "Present")
}

func TestPrintExperience_EmptyPrintsNothing(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintExperience(nil)
	assert.Empty(t, buf.String())
}

func TestPrintEnhancement(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintEnhancement("summary", "same", "same")

	out := buf.String()
	assert.Contains(t, out, "AI ENHANCEMENT")
	assert.Contains(t, out, "(unchanged)")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "1234567...", truncate("12345678901", 10))
}
