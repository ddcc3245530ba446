// Package editor provides the pure transition functions used for all
// document edits, plus the assistant that applies asynchronous AI
// enhancements through them.
//
// Every transition is a pure function (document, args...) -> next document:
// the input is never mutated, untouched substructures may be shared. All
// update and remove operations over the entry sequences are keyed by the
// entry id, never by position; an unmatched id is a silent no-op, not an
// error.
package editor

import "github.com/jonathan/resume-builder/internal/document"

// Personal info field names accepted by SetPersonalInfoField.
const (
	FieldFullName = "fullName"
	FieldEmail    = "email"
	FieldPhone    = "phone"
	FieldLocation = "location"
	FieldLinkedIn = "linkedin"
	FieldGitHub   = "github"
	FieldWebsite  = "website"
)

// Experience/education entry field names accepted by UpdateExperienceField
// and UpdateEducationField.
const (
	FieldCompany     = "company"
	FieldPosition    = "position"
	FieldStartDate   = "startDate"
	FieldEndDate     = "endDate"
	FieldDescription = "description"
	FieldSchool      = "school"
	FieldDegree      = "degree"
	FieldStudyField  = "field"
)

// SetPersonalInfoField replaces one personal info field. No validation is
// applied; an unknown field name is a silent no-op.
func SetPersonalInfoField(doc document.Resume, field, value string) document.Resume {
	next := doc
	switch field {
	case FieldFullName:
		next.PersonalInfo.FullName = value
	case FieldEmail:
		next.PersonalInfo.Email = value
	case FieldPhone:
		next.PersonalInfo.Phone = value
	case FieldLocation:
		next.PersonalInfo.Location = value
	case FieldLinkedIn:
		next.PersonalInfo.LinkedIn = value
	case FieldGitHub:
		next.PersonalInfo.GitHub = value
	case FieldWebsite:
		next.PersonalInfo.Website = value
	}
	return next
}

// SetSummary replaces the summary text.
func SetSummary(doc document.Resume, text string) document.Resume {
	next := doc
	next.Summary = text
	return next
}

// SetSkills stores the raw comma-separated skills string verbatim. The skill
// list is derived at render time, never pre-split here.
func SetSkills(doc document.Resume, rawCommaList string) document.Resume {
	next := doc
	next.Skills = rawCommaList
	return next
}

// AddExperience appends a new experience entry with a fresh unique id and all
// other fields empty, and returns the next document along with the new
// entry's id.
func AddExperience(doc document.Resume) (document.Resume, string) {
	next := doc
	id := document.NewEntryID()
	next.Experience = make([]document.ExperienceEntry, len(doc.Experience), len(doc.Experience)+1)
	copy(next.Experience, doc.Experience)
	next.Experience = append(next.Experience, document.ExperienceEntry{ID: id})
	return next, id
}

// RemoveExperience removes the entry with the given id, preserving the order
// of the remaining entries. A second remove with the same id is a no-op.
func RemoveExperience(doc document.Resume, id string) document.Resume {
	next := doc
	next.Experience = make([]document.ExperienceEntry, 0, len(doc.Experience))
	for _, e := range doc.Experience {
		if e.ID != id {
			next.Experience = append(next.Experience, e)
		}
	}
	return next
}

// UpdateExperienceField replaces one field of the entry with the given id.
// Entries not matching the id are returned unchanged; if no entry matches,
// the sequence is unchanged.
func UpdateExperienceField(doc document.Resume, id, field, value string) document.Resume {
	next := doc
	next.Experience = make([]document.ExperienceEntry, len(doc.Experience))
	copy(next.Experience, doc.Experience)
	for i := range next.Experience {
		if next.Experience[i].ID != id {
			continue
		}
		switch field {
		case FieldCompany:
			next.Experience[i].Company = value
		case FieldPosition:
			next.Experience[i].Position = value
		case FieldStartDate:
			next.Experience[i].StartDate = value
		case FieldEndDate:
			next.Experience[i].EndDate = value
		case FieldDescription:
			next.Experience[i].Description = value
		}
	}
	return next
}

// SetExperienceCurrent sets the "current position" flag of the entry with the
// given id. The stored end date is kept as-is; renderers ignore it while the
// flag is set.
func SetExperienceCurrent(doc document.Resume, id string, current bool) document.Resume {
	next := doc
	next.Experience = make([]document.ExperienceEntry, len(doc.Experience))
	copy(next.Experience, doc.Experience)
	for i := range next.Experience {
		if next.Experience[i].ID == id {
			next.Experience[i].Current = current
		}
	}
	return next
}

// AddEducation appends a new education entry with a fresh unique id and all
// other fields empty, and returns the next document along with the new
// entry's id.
func AddEducation(doc document.Resume) (document.Resume, string) {
	next := doc
	id := document.NewEntryID()
	next.Education = make([]document.EducationEntry, len(doc.Education), len(doc.Education)+1)
	copy(next.Education, doc.Education)
	next.Education = append(next.Education, document.EducationEntry{ID: id})
	return next, id
}

// RemoveEducation removes the entry with the given id, preserving order.
func RemoveEducation(doc document.Resume, id string) document.Resume {
	next := doc
	next.Education = make([]document.EducationEntry, 0, len(doc.Education))
	for _, e := range doc.Education {
		if e.ID != id {
			next.Education = append(next.Education, e)
		}
	}
	return next
}

// UpdateEducationField replaces one field of the entry with the given id,
// under the same unmatched-id no-op law as UpdateExperienceField.
func UpdateEducationField(doc document.Resume, id, field, value string) document.Resume {
	next := doc
	next.Education = make([]document.EducationEntry, len(doc.Education))
	copy(next.Education, doc.Education)
	for i := range next.Education {
		if next.Education[i].ID != id {
			continue
		}
		switch field {
		case FieldSchool:
			next.Education[i].School = value
		case FieldDegree:
			next.Education[i].Degree = value
		case FieldStudyField:
			next.Education[i].Field = value
		case FieldStartDate:
			next.Education[i].StartDate = value
		case FieldEndDate:
			next.Education[i].EndDate = value
		}
	}
	return next
}

// SetEducationCurrent sets the "currently enrolled" flag of the entry with
// the given id.
func SetEducationCurrent(doc document.Resume, id string, current bool) document.Resume {
	next := doc
	next.Education = make([]document.EducationEntry, len(doc.Education))
	copy(next.Education, doc.Education)
	for i := range next.Education {
		if next.Education[i].ID == id {
			next.Education[i].Current = current
		}
	}
	return next
}
