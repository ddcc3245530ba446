// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-builder/internal/document"
	"github.com/jonathan/resume-builder/internal/preview"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintDocument outputs a human-readable summary of the resume document.
func (p *Printer) PrintDocument(doc document.Resume) {
	var sb strings.Builder

	name := doc.PersonalInfo.FullName
	if name == "" {
		name = preview.PlaceholderName
	}
	sb.WriteString(fmt.Sprintf("Name:     %s\n", name))
	if doc.PersonalInfo.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:    %s\n", doc.PersonalInfo.Email))
	}
	if doc.PersonalInfo.Location != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", doc.PersonalInfo.Location))
	}
	sb.WriteString("\n")

	if doc.Summary != "" {
		sb.WriteString(fmt.Sprintf("Summary:  %d chars\n", len(doc.Summary)))
	}
	sb.WriteString(fmt.Sprintf("Experience entries: %d\n", len(doc.Experience)))
	sb.WriteString(fmt.Sprintf("Education entries:  %d\n", len(doc.Education)))

	skills := document.SplitSkills(doc.Skills)
	sb.WriteString(fmt.Sprintf("Skills:             %d", len(skills)))

	p.printBox("RESUME DOCUMENT", sb.String())
}

// PrintExperience outputs the experience entries with their date ranges.
func (p *Printer) PrintExperience(entries []document.ExperienceEntry) {
	if len(entries) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(entries), maxItemsToShow)
	for i := 0; i < count; i++ {
		e := entries[i]
		title := e.Position
		if title == "" {
			title = "(untitled)"
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, title))
		if e.Company != "" {
			sb.WriteString(fmt.Sprintf("    %s\n", e.Company))
		}
		end := e.EndDate
		if e.Current {
			end = preview.OngoingLabel
		}
		if e.StartDate != "" || end != "" {
			sb.WriteString(fmt.Sprintf("    %s%s%s\n", e.StartDate, preview.DateRangeSeparator, end))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(entries) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more entries", len(entries)-maxItemsToShow))
	}

	p.printBox("EXPERIENCE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintEnhancement outputs a before/after comparison of an AI text rewrite.
func (p *Printer) PrintEnhancement(label, before, after string) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Target: %s\n\n", label))
	sb.WriteString(fmt.Sprintf("Before: %s\n", truncate(before, 45)))
	sb.WriteString(fmt.Sprintf("After:  %s", truncate(after, 45)))
	if before == after {
		sb.WriteString("\n\n(unchanged)")
	}

	p.printBox("AI ENHANCEMENT", sb.String())
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
