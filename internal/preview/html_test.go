package preview

import (
	"bytes"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/document"
)

func renderDoc(t *testing.T, doc document.Resume) *goquery.Document {
	t.Helper()
	html, err := RenderHTML(Project(doc))
	require.NoError(t, err)
	parsed, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	require.NoError(t, err)
	return parsed
}

func TestRenderHTML_EmptyDocumentShowsOnlyHeader(t *testing.T) {
	page := renderDoc(t, document.Empty())

	assert.Equal(t, PlaceholderName, page.Find("h1").Text())
	assert.Equal(t, 0, page.Find("section").Length(), "no optional sections for an empty document")
	assert.Equal(t, 0, page.Find(".contact").Length())
}

func TestRenderHTML_SampleDocumentHasAllSections(t *testing.T) {
	page := renderDoc(t, document.Sample())

	assert.Equal(t, "Jordan Avery", page.Find("h1").Text())
	for _, id := range []string{"#summary", "#experience", "#education", "#skills"} {
		assert.Equal(t, 1, page.Find(id).Length(), id)
	}
	assert.Equal(t, 2, page.Find("#experience .entry").Length())
	assert.Equal(t, 8, page.Find("#skills .skill").Length())
}

func TestRenderHTML_OngoingMarkerReplacesEndDate(t *testing.T) {
	doc := document.Empty()
	doc.Experience = []document.ExperienceEntry{
		{ID: "1", Position: "Engineer", Company: "Acme", StartDate: "2018", EndDate: "2020", Current: true},
	}

	page := renderDoc(t, doc)
	dates := page.Find("#experience .dates").Text()
	assert.Contains(t, dates, OngoingLabel)
	assert.NotContains(t, dates, "2020")
}

func TestRenderHTML_DescriptionLineBreaks(t *testing.T) {
	doc := document.Empty()
	doc.Experience = []document.ExperienceEntry{
		{ID: "1", Description: "first line\nsecond line"},
	}

	html, err := RenderHTML(Project(doc))
	require.NoError(t, err)
	assert.Contains(t, string(html), "first line<br>second line")
}

func TestRenderHTML_EscapesUserText(t *testing.T) {
	doc := document.Empty()
	doc.PersonalInfo.FullName = `<script>alert("x")</script>`

	html, err := RenderHTML(Project(doc))
	require.NoError(t, err)
	assert.NotContains(t, string(html), "<script>alert")
}

func TestRenderHTML_Deterministic(t *testing.T) {
	first, err := RenderHTML(Project(document.Sample()))
	require.NoError(t, err)
	second, err := RenderHTML(Project(document.Sample()))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
