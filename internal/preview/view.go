// Package preview projects the resume document into the formatted,
// print-ready view. The projection is pure and side-effect-free: projecting
// the same document twice yields identical output, and nothing here mutates
// the document.
package preview

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/document"
)

// Rendering labels. Hardcoded, single language by design.
const (
	// PlaceholderName is shown in the header when no name is set.
	PlaceholderName = "Your Name"
	// OngoingLabel replaces the end date of a current position.
	OngoingLabel = "Present"
	// ContactSeparator joins the present contact fields.
	ContactSeparator = " • "
	// DateRangeSeparator joins start and end dates.
	DateRangeSeparator = " – "
)

// View is the formatted projection of a document. A nil/empty slice means
// the section is omitted entirely from the rendered output.
type View struct {
	Name         string
	ContactLine  string
	SummaryLines []string
	Experience   []ExperienceItem
	Education    []EducationItem
	Skills       []string
}

// ExperienceItem is one rendered experience entry.
type ExperienceItem struct {
	Position         string
	Company          string
	DateRange        string
	DescriptionLines []string
}

// EducationItem is one rendered education entry.
type EducationItem struct {
	School    string
	Degree    string
	Field     string
	DateRange string
}

// Project computes the formatted view of a document.
func Project(doc document.Resume) View {
	v := View{Name: doc.PersonalInfo.FullName}
	if v.Name == "" {
		v.Name = PlaceholderName
	}

	v.ContactLine = contactLine(doc.PersonalInfo)

	if doc.Summary != "" {
		v.SummaryLines = splitLines(doc.Summary)
	}

	for _, e := range doc.Experience {
		item := ExperienceItem{
			Position:  e.Position,
			Company:   e.Company,
			DateRange: dateRange(e.StartDate, e.EndDate, e.Current),
		}
		if e.Description != "" {
			item.DescriptionLines = splitLines(e.Description)
		}
		v.Experience = append(v.Experience, item)
	}

	for _, e := range doc.Education {
		v.Education = append(v.Education, EducationItem{
			School:    e.School,
			Degree:    e.Degree,
			Field:     e.Field,
			DateRange: dateRange(e.StartDate, e.EndDate, e.Current),
		})
	}

	v.Skills = document.SplitSkills(doc.Skills)
	if len(v.Skills) == 0 {
		v.Skills = nil
	}

	return v
}

// contactLine joins only the present contact fields, so separators never
// appear adjacent to an absent field and never lead or trail.
func contactLine(info document.PersonalInfo) string {
	fields := []string{info.Email, info.Phone, info.Location, info.LinkedIn, info.GitHub, info.Website}
	present := make([]string, 0, len(fields))
	for _, f := range fields {
		if f != "" {
			present = append(present, f)
		}
	}
	return strings.Join(present, ContactSeparator)
}

// dateRange renders "start – end". A set current flag supersedes whatever end
// date is stored.
func dateRange(start, end string, current bool) string {
	if current {
		end = OngoingLabel
	}
	return start + DateRangeSeparator + end
}

// splitLines preserves embedded line breaks verbatim; they are rendered as
// line breaks, never collapsed to spaces.
func splitLines(text string) []string {
	return strings.Split(text, "\n")
}
