package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/document"
)

func TestSetPersonalInfoField(t *testing.T) {
	doc := document.Empty()

	next := SetPersonalInfoField(doc, FieldFullName, "Jane Doe")
	next = SetPersonalInfoField(next, FieldEmail, "jane@example.com")

	assert.Equal(t, "Jane Doe", next.PersonalInfo.FullName)
	assert.Equal(t, "jane@example.com", next.PersonalInfo.Email)
	assert.Equal(t, "", doc.PersonalInfo.FullName, "input document must not be mutated")
}

func TestSetPersonalInfoField_UnknownFieldIsNoOp(t *testing.T) {
	doc := document.Sample()
	next := SetPersonalInfoField(doc, "salary", "1,000,000")
	assert.Equal(t, doc, next)
}

func TestSetSummaryAndSkills(t *testing.T) {
	doc := document.Empty()

	next := SetSummary(doc, "A summary.")
	assert.Equal(t, "A summary.", next.Summary)

	// The raw skills string is stored verbatim, not pre-split.
	next = SetSkills(next, " Go,  SQL ,,")
	assert.Equal(t, " Go,  SQL ,,", next.Skills)
}

func TestAddExperience(t *testing.T) {
	doc := document.Empty()

	next, id := AddExperience(doc)
	require.Len(t, next.Experience, 1)
	assert.Equal(t, id, next.Experience[0].ID)
	assert.NotEmpty(t, id)
	assert.Equal(t, "", next.Experience[0].Company)
	assert.False(t, next.Experience[0].Current)
	assert.Empty(t, doc.Experience, "input document must not be mutated")

	// Fresh ids for every entry, appended at the end.
	next2, id2 := AddExperience(next)
	require.Len(t, next2.Experience, 2)
	assert.NotEqual(t, id, id2)
	assert.Equal(t, id, next2.Experience[0].ID)
	assert.Equal(t, id2, next2.Experience[1].ID)
}

func TestAddThenRemoveExperience_IsInverse(t *testing.T) {
	doc := document.Sample()

	next, id := AddExperience(doc)
	back := RemoveExperience(next, id)

	assert.Equal(t, doc.Experience, back.Experience)
}

func TestRemoveExperience(t *testing.T) {
	doc := document.Sample()
	require.Len(t, doc.Experience, 2)

	next := RemoveExperience(doc, "1")
	require.Len(t, next.Experience, 1)
	assert.Equal(t, "2", next.Experience[0].ID)

	// Removing again is a no-op.
	again := RemoveExperience(next, "1")
	assert.Equal(t, next, again)

	assert.Len(t, doc.Experience, 2, "input document must not be mutated")
}

func TestUpdateExperienceField(t *testing.T) {
	doc := document.Sample()

	next := UpdateExperienceField(doc, "2", FieldCompany, "Rewritten Corp")
	assert.Equal(t, "Rewritten Corp", next.Experience[1].Company)
	assert.Equal(t, doc.Experience[0], next.Experience[0], "non-matching entries unchanged")
	assert.Equal(t, "Acme Digital", doc.Experience[1].Company, "input document must not be mutated")
}

func TestUpdateExperienceField_UnmatchedIDIsNoOp(t *testing.T) {
	doc := document.Sample()
	next := UpdateExperienceField(doc, "no-such-id", FieldCompany, "Ghost Inc.")
	assert.Equal(t, doc, next)
}

func TestUpdatesKeyedByID_NotPosition(t *testing.T) {
	doc := document.Sample()

	// Remove the first entry; the surviving entry keeps its id even though
	// its position shifts, so an update keyed by that id still lands on it.
	next := RemoveExperience(doc, "1")
	next = UpdateExperienceField(next, "2", FieldPosition, "Staff Engineer")

	require.Len(t, next.Experience, 1)
	assert.Equal(t, "2", next.Experience[0].ID)
	assert.Equal(t, "Staff Engineer", next.Experience[0].Position)
}

func TestSetExperienceCurrent_KeepsEndDate(t *testing.T) {
	doc := document.Sample()

	next := SetExperienceCurrent(doc, "2", true)
	assert.True(t, next.Experience[1].Current)
	assert.Equal(t, "December 2020", next.Experience[1].EndDate,
		"end date stays in storage; renderers ignore it while current is set")
}

func TestEducationTransitions(t *testing.T) {
	doc := document.Empty()

	next, id := AddEducation(doc)
	require.Len(t, next.Education, 1)
	assert.Equal(t, id, next.Education[0].ID)

	next = UpdateEducationField(next, id, FieldSchool, "MIT")
	next = UpdateEducationField(next, id, FieldDegree, "M.S.")
	next = UpdateEducationField(next, id, FieldStudyField, "EECS")
	assert.Equal(t, "MIT", next.Education[0].School)
	assert.Equal(t, "M.S.", next.Education[0].Degree)
	assert.Equal(t, "EECS", next.Education[0].Field)

	next = UpdateEducationField(next, "missing", FieldSchool, "Nowhere")
	assert.Equal(t, "MIT", next.Education[0].School)

	next = SetEducationCurrent(next, id, true)
	assert.True(t, next.Education[0].Current)

	back := RemoveEducation(next, id)
	assert.Empty(t, back.Education)
	assert.Equal(t, back.Education, RemoveEducation(back, id).Education)
}
