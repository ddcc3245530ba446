package editor

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/document"
	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/store"
)

// fakeEnhancer upgrades text deterministically and can observe or mutate the
// session mid-call to simulate edits racing an in-flight AI response. Kind
// recording is locked because EnhanceAll invokes it from multiple goroutines.
type fakeEnhancer struct {
	mu     sync.Mutex
	prefix string
	during func()
	kinds  []llm.EnhanceKind
}

func (f *fakeEnhancer) Enhance(_ context.Context, text string, kind llm.EnhanceKind) string {
	f.mu.Lock()
	f.kinds = append(f.kinds, kind)
	f.mu.Unlock()
	if f.during != nil {
		f.during()
	}
	return f.prefix + text
}

// failingEnhancer models the silent-failure contract: output equals input.
type failingEnhancer struct{}

func (failingEnhancer) Enhance(_ context.Context, text string, _ llm.EnhanceKind) string {
	return text
}

func TestEnhanceSummary(t *testing.T) {
	s := store.New(SetSummary(document.Empty(), "my summary"))
	enh := &fakeEnhancer{prefix: "improved: "}
	a := NewAssistant(s, enh)

	assert.True(t, a.EnhanceSummary(context.Background()))
	assert.Equal(t, "improved: my summary", s.Current().Summary)
	assert.Equal(t, []llm.EnhanceKind{llm.KindSummary}, enh.kinds)
	assert.Empty(t, a.Pending().Keys(), "pending key cleared after completion")
}

func TestEnhanceSummary_BlankSkipped(t *testing.T) {
	s := store.New(document.Empty())
	a := NewAssistant(s, &fakeEnhancer{prefix: "x"})

	assert.False(t, a.EnhanceSummary(context.Background()))
	assert.Equal(t, uint64(0), s.Version())
}

func TestFixSummary_UsesFixKind(t *testing.T) {
	s := store.New(SetSummary(document.Empty(), "me has wrote code"))
	enh := &fakeEnhancer{prefix: "fixed: "}
	a := NewAssistant(s, enh)

	assert.True(t, a.FixSummary(context.Background()))
	assert.Equal(t, []llm.EnhanceKind{llm.KindFix}, enh.kinds)
}

func TestEnhanceSummary_PendingKeyBusyDuringCall(t *testing.T) {
	s := store.New(SetSummary(document.Empty(), "my summary"))
	a := NewAssistant(s, nil)
	enh := &fakeEnhancer{
		prefix: "improved: ",
		during: func() {
			assert.True(t, a.Pending().Busy(PendingSummary()))
		},
	}
	a.enhancer = enh

	a.EnhanceSummary(context.Background())
	assert.False(t, a.Pending().Busy(PendingSummary()))
}

func TestEnhanceExperience(t *testing.T) {
	s := store.New(document.Sample())
	enh := &fakeEnhancer{prefix: "improved: "}
	a := NewAssistant(s, enh)

	assert.True(t, a.EnhanceExperience(context.Background(), "2"))
	assert.True(t, strings.HasPrefix(s.Current().Experience[1].Description, "improved: "))
	assert.Equal(t, document.Sample().Experience[0].Description, s.Current().Experience[0].Description,
		"unrelated entry untouched")
	assert.Equal(t, []llm.EnhanceKind{llm.KindExperience}, enh.kinds)
}

func TestEnhanceExperience_UnknownIDSkipped(t *testing.T) {
	s := store.New(document.Sample())
	a := NewAssistant(s, &fakeEnhancer{prefix: "x"})

	assert.False(t, a.EnhanceExperience(context.Background(), "no-such-id"))
	assert.Equal(t, uint64(0), s.Version())
}

func TestEnhance_SilentFailureAppliesOriginalText(t *testing.T) {
	s := store.New(SetSummary(document.Empty(), "my summary"))
	a := NewAssistant(s, failingEnhancer{})

	// The assistant cannot tell failure from success; the apply happens and
	// the text is simply unchanged.
	assert.True(t, a.EnhanceSummary(context.Background()))
	assert.Equal(t, "my summary", s.Current().Summary)
}

func TestLateResponse_DefaultAppliesOverLaterEdits(t *testing.T) {
	s := store.New(SetSummary(document.Empty(), "my summary"))
	a := NewAssistant(s, nil)
	a.enhancer = &fakeEnhancer{
		prefix: "improved: ",
		during: func() {
			// The user edits another field while the call is in flight.
			s.Replace(SetSkills(s.Current(), "Go"))
		},
	}

	assert.True(t, a.EnhanceSummary(context.Background()))
	assert.Equal(t, "improved: my summary", s.Current().Summary)
	assert.Equal(t, "Go", s.Current().Skills, "late response lands on top of the newer edit")
}

func TestLateResponse_RemovedEntryDegradesToNoOp(t *testing.T) {
	s := store.New(document.Sample())
	a := NewAssistant(s, nil)
	a.enhancer = &fakeEnhancer{
		prefix: "improved: ",
		during: func() {
			s.Replace(RemoveExperience(s.Current(), "2"))
		},
	}

	// The update is keyed by id, so the response against the removed entry
	// cannot land anywhere.
	assert.True(t, a.EnhanceExperience(context.Background(), "2"))
	require.Len(t, s.Current().Experience, 1)
	assert.Equal(t, "1", s.Current().Experience[0].ID)
}

func TestLateResponse_StrictVersioningDropsIt(t *testing.T) {
	s := store.New(SetSummary(document.Empty(), "my summary"))
	a := NewAssistant(s, nil, WithStrictVersioning())
	a.enhancer = &fakeEnhancer{
		prefix: "improved: ",
		during: func() {
			s.Replace(SetSummary(s.Current(), "user rewrote it meanwhile"))
		},
	}

	assert.False(t, a.EnhanceSummary(context.Background()))
	assert.Equal(t, "user rewrote it meanwhile", s.Current().Summary)
}

func TestEnhanceAll(t *testing.T) {
	doc := document.Sample()
	s := store.New(doc)
	enh := &fakeEnhancer{prefix: "improved: "}
	a := NewAssistant(s, enh)

	applied := a.EnhanceAll(context.Background())

	// Summary plus both experience descriptions.
	assert.Equal(t, 3, applied)
	assert.True(t, strings.HasPrefix(s.Current().Summary, "improved: "))
	for _, e := range s.Current().Experience {
		assert.True(t, strings.HasPrefix(e.Description, "improved: "))
	}
	assert.Empty(t, a.Pending().Keys())
}

func TestEnhanceAll_EmptyDocument(t *testing.T) {
	s := store.New(document.Empty())
	a := NewAssistant(s, &fakeEnhancer{prefix: "x"})

	assert.Equal(t, 0, a.EnhanceAll(context.Background()))
	assert.Equal(t, uint64(0), s.Version())
}

func TestPendingKeys(t *testing.T) {
	p := NewPendingSet()

	p.Mark(PendingSummary())
	p.Mark(PendingExperience("abc"))

	assert.True(t, p.Busy("summary"))
	assert.True(t, p.Busy("experience:abc"))
	assert.False(t, p.Busy("experience:def"))
	assert.Equal(t, []string{"experience:abc", "summary"}, p.Keys())

	p.Clear(PendingSummary())
	assert.False(t, p.Busy("summary"))
}
