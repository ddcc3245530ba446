package editor

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-builder/internal/document"
	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/store"
)

// TextEnhancer is the AI capability the assistant depends on. The contract
// is silent-failure: implementations return the original text unchanged on
// any failure, so the assistant cannot distinguish "enhanced" from
// "unchanged due to failure" except by comparing output to input.
type TextEnhancer interface {
	Enhance(ctx context.Context, text string, kind llm.EnhanceKind) string
}

// Assistant drives asynchronous AI enhancement of document fields against a
// store. While a call is in flight the matching slot is marked busy in the
// pending set; the store itself is never locked, so other fields remain
// editable.
//
// By default a response is applied to whatever document is current when it
// arrives: if the user edited other fields meanwhile, the enhancement lands
// on top of those edits, and if the target entry was removed, the keyed
// update degrades to a no-op. A response can therefore overwrite an edit the
// user made to the SAME field while the call was pending. WithStrictVersioning
// switches to a compare-and-swap against the version stamped when the call
// started, dropping any response that arrives after further edits.
type Assistant struct {
	store    *store.Store
	enhancer TextEnhancer
	pending  *PendingSet
	strict   bool
}

// AssistantOption configures an Assistant.
type AssistantOption func(*Assistant)

// WithStrictVersioning makes the assistant drop AI responses that arrive
// after the document has been edited again, instead of applying them.
func WithStrictVersioning() AssistantOption {
	return func(a *Assistant) { a.strict = true }
}

// NewAssistant creates an assistant bound to the given store and enhancer.
func NewAssistant(s *store.Store, enhancer TextEnhancer, opts ...AssistantOption) *Assistant {
	a := &Assistant{
		store:    s,
		enhancer: enhancer,
		pending:  NewPendingSet(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Pending exposes the in-progress indicator keyed by operation identity.
func (a *Assistant) Pending() *PendingSet {
	return a.pending
}

// EnhanceSummary runs AI enhancement over the summary and applies the result.
// Blank summaries are skipped. Returns whether a replacement was applied.
func (a *Assistant) EnhanceSummary(ctx context.Context) bool {
	return a.enhanceSummary(ctx, llm.KindSummary)
}

// FixSummary runs the grammar/professionalism fix over the summary instead of
// the full rewrite.
func (a *Assistant) FixSummary(ctx context.Context) bool {
	return a.enhanceSummary(ctx, llm.KindFix)
}

func (a *Assistant) enhanceSummary(ctx context.Context, kind llm.EnhanceKind) bool {
	text := a.store.Current().Summary
	if strings.TrimSpace(text) == "" {
		return false
	}

	key := PendingSummary()
	a.pending.Mark(key)
	defer a.pending.Clear(key)
	stamp := a.store.Version()

	improved := a.enhancer.Enhance(ctx, text, kind)
	return a.apply(stamp, SetSummary(a.store.Current(), improved))
}

// EnhanceExperience runs AI enhancement over one experience entry's
// description, keyed by the entry id. Unknown ids and blank descriptions are
// skipped. Returns whether a replacement was applied.
func (a *Assistant) EnhanceExperience(ctx context.Context, id string) bool {
	var text string
	found := false
	for _, e := range a.store.Current().Experience {
		if e.ID == id {
			text = e.Description
			found = true
			break
		}
	}
	if !found || strings.TrimSpace(text) == "" {
		return false
	}

	key := PendingExperience(id)
	a.pending.Mark(key)
	defer a.pending.Clear(key)
	stamp := a.store.Version()

	improved := a.enhancer.Enhance(ctx, text, llm.KindExperience)
	return a.apply(stamp, UpdateExperienceField(a.store.Current(), id, FieldDescription, improved))
}

// EnhanceAll enhances the summary and every experience description in one
// pass. The AI calls run concurrently; results are applied sequentially after
// all calls resolve. Returns the number of applied replacements.
func (a *Assistant) EnhanceAll(ctx context.Context) int {
	doc := a.store.Current()

	type slot struct {
		key      string
		id       string // empty for the summary slot
		text     string
		improved string
	}

	var slots []*slot
	if strings.TrimSpace(doc.Summary) != "" {
		slots = append(slots, &slot{key: PendingSummary(), text: doc.Summary})
	}
	for _, e := range doc.Experience {
		if strings.TrimSpace(e.Description) != "" {
			slots = append(slots, &slot{key: PendingExperience(e.ID), id: e.ID, text: e.Description})
		}
	}
	if len(slots) == 0 {
		return 0
	}

	for _, s := range slots {
		a.pending.Mark(s.key)
	}
	stamp := a.store.Version()

	g, gCtx := errgroup.WithContext(ctx)
	for _, s := range slots {
		g.Go(func() error {
			kind := llm.KindExperience
			if s.id == "" {
				kind = llm.KindSummary
			}
			s.improved = a.enhancer.Enhance(gCtx, s.text, kind)
			return nil
		})
	}
	// The enhancer contract is silent-failure, so Wait never returns an error.
	_ = g.Wait()

	applied := 0
	for _, s := range slots {
		var next document.Resume
		if s.id == "" {
			next = SetSummary(a.store.Current(), s.improved)
		} else {
			next = UpdateExperienceField(a.store.Current(), s.id, FieldDescription, s.improved)
		}
		if a.apply(stamp, next) {
			applied++
			stamp = a.store.Version()
		}
		a.pending.Clear(s.key)
	}
	return applied
}

func (a *Assistant) apply(stamp uint64, next document.Resume) bool {
	if a.strict {
		return a.store.ReplaceIf(stamp, next)
	}
	a.store.Replace(next)
	return true
}
