package editor

import "sort"

// Pending operation keys. Each logical slot that can have an AI call in
// flight gets its own key, so unrelated fields stay interactive while one
// slot is busy.
const pendingSummaryKey = "summary"

// PendingSummary is the pending-operation key for the summary slot.
func PendingSummary() string { return pendingSummaryKey }

// PendingExperience is the pending-operation key for one experience entry's
// description slot.
func PendingExperience(id string) string { return "experience:" + id }

// PendingSet tracks which operation slots currently have an AI call in
// flight. One key is tracked per logical slot; issuing a second call against
// a busy slot before the first resolves is the caller's responsibility and is
// not guarded here. Like the store, the set expects a single logical thread
// of execution.
type PendingSet struct {
	keys map[string]struct{}
}

// NewPendingSet returns an empty pending set.
func NewPendingSet() *PendingSet {
	return &PendingSet{keys: make(map[string]struct{})}
}

// Mark records that the slot has an operation in flight.
func (p *PendingSet) Mark(key string) {
	p.keys[key] = struct{}{}
}

// Clear removes the in-flight record for the slot.
func (p *PendingSet) Clear(key string) {
	delete(p.keys, key)
}

// Busy reports whether the slot has an operation in flight.
func (p *PendingSet) Busy(key string) bool {
	_, ok := p.keys[key]
	return ok
}

// Keys returns the busy slots in sorted order.
func (p *PendingSet) Keys() []string {
	out := make([]string, 0, len(p.keys))
	for k := range p.keys {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
