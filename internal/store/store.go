// Package store holds the single current resume document for an editing
// session and broadcasts every replacement to subscribers.
package store

import "github.com/jonathan/resume-builder/internal/document"

// Subscriber receives the new document value after every replacement.
type Subscriber func(document.Resume)

// Store holds exactly one current document value. Callers never mutate the
// held value in place: they compute a full next document through the editor
// transition functions and hand it to Replace.
//
// All calls are expected on a single logical thread of execution (the event
// loop driving the editor). Replace is not reentrant-safe: a subscriber must
// not trigger another Replace synchronously. This is a usage constraint, not
// enforced.
type Store struct {
	current document.Resume
	version uint64
	subs    map[int]Subscriber
	nextSub int
}

// New creates a store holding the given initial document at version 0.
func New(initial document.Resume) *Store {
	return &Store{
		current: initial,
		subs:    make(map[int]Subscriber),
	}
}

// Current returns the current document value. Never fails.
func (s *Store) Current() document.Resume {
	return s.current
}

// Version returns the number of replacements applied so far. Each Replace
// increments it by one, so the stamp identifies an exact document state.
func (s *Store) Version() uint64 {
	return s.version
}

// Replace atomically swaps the held value to next and synchronously notifies
// all subscribers before returning.
func (s *Store) Replace(next document.Resume) {
	s.current = next
	s.version++
	for _, sub := range s.subs {
		sub(next)
	}
}

// ReplaceIf swaps to next only if the store is still at the expected version,
// returning whether the swap happened. It backs the strict-versioning mode of
// the assistant, which drops AI responses that arrive after further edits.
func (s *Store) ReplaceIf(expected uint64, next document.Resume) bool {
	if s.version != expected {
		return false
	}
	s.Replace(next)
	return true
}

// Subscribe registers fn to be called on every replacement and returns a
// cancel function that removes the subscription.
func (s *Store) Subscribe(fn Subscriber) func() {
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() { delete(s.subs, id) }
}
