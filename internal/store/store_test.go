package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-builder/internal/document"
)

func TestStore_CurrentAndReplace(t *testing.T) {
	s := New(document.Empty())

	next := s.Current()
	next.Summary = "updated"
	s.Replace(next)

	assert.Equal(t, "updated", s.Current().Summary)
	assert.Equal(t, uint64(1), s.Version())
}

func TestStore_SubscribersNotifiedSynchronously(t *testing.T) {
	s := New(document.Empty())

	var seen []string
	cancel := s.Subscribe(func(doc document.Resume) {
		seen = append(seen, doc.Summary)
	})

	next := s.Current()
	next.Summary = "first"
	s.Replace(next)
	assert.Equal(t, []string{"first"}, seen)

	cancel()

	next.Summary = "second"
	s.Replace(next)
	assert.Equal(t, []string{"first"}, seen, "cancelled subscriber must not be notified")
}

func TestStore_MultipleSubscribers(t *testing.T) {
	s := New(document.Empty())

	calls := 0
	s.Subscribe(func(document.Resume) { calls++ })
	s.Subscribe(func(document.Resume) { calls++ })

	s.Replace(document.Sample())
	assert.Equal(t, 2, calls)
}

func TestStore_ReplaceIf(t *testing.T) {
	s := New(document.Empty())
	stamped := s.Version()

	// Unrelated edit moves the version forward.
	interim := s.Current()
	interim.Summary = "edited meanwhile"
	s.Replace(interim)

	stale := document.Sample()
	assert.False(t, s.ReplaceIf(stamped, stale), "stale swap must be rejected")
	assert.Equal(t, "edited meanwhile", s.Current().Summary)

	fresh := s.Current()
	fresh.Skills = "Go"
	assert.True(t, s.ReplaceIf(s.Version(), fresh))
	assert.Equal(t, "Go", s.Current().Skills)
}
