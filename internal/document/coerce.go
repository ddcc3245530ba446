package document

// Coerce normalizes an externally sourced document (JSON import or AI
// extraction output) so it satisfies the model invariants: sequences are
// present (nil becomes empty), and every entry has a unique id (entries that
// arrive without one get a fresh id). String fields decoded from missing JSON
// keys are already the empty string, so no further filling is needed.
func Coerce(r Resume) Resume {
	out := r

	if r.Experience == nil {
		out.Experience = []ExperienceEntry{}
	} else {
		out.Experience = make([]ExperienceEntry, len(r.Experience))
		copy(out.Experience, r.Experience)
	}
	for i := range out.Experience {
		if out.Experience[i].ID == "" {
			out.Experience[i].ID = NewEntryID()
		}
	}

	if r.Education == nil {
		out.Education = []EducationEntry{}
	} else {
		out.Education = make([]EducationEntry, len(r.Education))
		copy(out.Education, r.Education)
	}
	for i := range out.Education {
		if out.Education[i].ID == "" {
			out.Education[i].ID = NewEntryID()
		}
	}

	return out
}
