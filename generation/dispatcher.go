// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package generation turns a submit from the prompt bar into a queued request.
// Nothing leaves the process; the queue is what a backend client would drain.
package generation

import (
	"time"

	"promptbar/core/primitives/hash"
	"promptbar/state"
	promptlog "promptbar/utils/log"
)

func l() *promptlog.PromptLogger {
	return promptlog.L().With("component", "generation")
}

// Dispatcher implements the prompt bar's submit action.
type Dispatcher struct {
	store   *state.Store
	now     func() time.Time
	lastErr error
}

func NewDispatcher(store *state.Store) *Dispatcher {
	return &Dispatcher{store: store, now: time.Now}
}

// WithClock overrides the time source.
func (d *Dispatcher) WithClock(now func() time.Time) *Dispatcher {
	if now != nil {
		d.now = now
	}
	return d
}

// Submit queues the current prompt for the given tab. Failures are logged and
// kept for LastError; the call itself never fails.
func (d *Dispatcher) Submit(contextID string) {
	prompt := d.store.Text()

	checks := d.store.Checks()
	if d.store.Stale() {
		checks = state.RunCheckers(prompt)
	}

	req := state.Request{
		Tab:        contextID,
		Prompt:     prompt,
		Loras:      checks.Loras,
		Embeddings: checks.Embeddings,
		CreatedAt:  d.now(),
	}

	id, err := hash.String(req)
	if err != nil {
		d.lastErr = err
		l().Errorf("hash request: %v", err)
		return
	}
	req.ID = id

	if err := d.store.Enqueue(req); err != nil {
		d.lastErr = err
		l().Warnf("submit for %s rejected: %v", contextID, err)
		return
	}

	d.lastErr = nil
	l().Infow("request queued", "id", req.ID, "tab", contextID, "words", checks.Words)
}

func (d *Dispatcher) LastError() error { return d.lastErr }
