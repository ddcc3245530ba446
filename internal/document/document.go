// Package document defines the resume document model shared by the editor,
// the preview projection, and the import/export adapters.
package document

import "github.com/google/uuid"

// PersonalInfo holds the contact header fields. All fields are opaque free
// text; an unpopulated field holds the empty string, never a missing value.
type PersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Website  string `json:"website"`
}

// ExperienceEntry is one item of the experience sequence. ID is assigned at
// creation time, is stable for the entry's lifetime, and is the sole key used
// for update and remove. Dates are free text, not calendar-typed. When
// Current is true the stored EndDate is superseded and must be ignored by
// renderers. Description may contain line breaks that are significant and
// preserved verbatim.
type ExperienceEntry struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// EducationEntry is one item of the education sequence. The ID and Current
// rules match ExperienceEntry.
type EducationEntry struct {
	ID        string `json:"id"`
	School    string `json:"school"`
	Degree    string `json:"degree"`
	Field     string `json:"field"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Current   bool   `json:"current"`
}

// Resume is the full in-memory resume value. One instance exists per editing
// session; edits go through the transition functions in the editor package,
// each producing a structurally new value. Experience and Education are
// ordered sequences rendered top to bottom in insertion order. Skills holds
// the raw comma-separated string as typed; the skill list is derived with
// SplitSkills, never stored separately.
type Resume struct {
	PersonalInfo PersonalInfo      `json:"personalInfo"`
	Summary      string            `json:"summary"`
	Experience   []ExperienceEntry `json:"experience"`
	Education    []EducationEntry  `json:"education"`
	Skills       string            `json:"skills"`
}

// Empty returns the built-in empty template: every string field empty and
// both sequences present but empty.
func Empty() Resume {
	return Resume{
		Experience: []ExperienceEntry{},
		Education:  []EducationEntry{},
	}
}

// NewEntryID returns a fresh unique entry identifier. IDs are never reused.
func NewEntryID() string {
	return uuid.NewString()
}

// Clone returns a deep copy of the document. The model is treated as
// immutable per version, so callers that need an independent value to mutate
// must clone first.
func (r Resume) Clone() Resume {
	out := r
	out.Experience = make([]ExperienceEntry, len(r.Experience))
	copy(out.Experience, r.Experience)
	out.Education = make([]EducationEntry, len(r.Education))
	copy(out.Education, r.Education)
	return out
}
