// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package debounce holds a single cancellable scheduled task that runs inside
// the Bubble Tea event loop.
//
// Bubble Tea cannot cancel a command once it has been returned, so a Timer
// cancels by superseding: every Replace bumps a sequence number and only the
// FireMsg carrying the current sequence is accepted. At most one task is ever
// pending per Timer.
package debounce

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var lastID int64

func nextID() int64 {
	return atomic.AddInt64(&lastID, 1)
}

// Scheduler schedules fn to produce a message after d. tea.Tick is the default.
type Scheduler func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd

// FireMsg is delivered when a scheduled task elapses.
type FireMsg[T any] struct {
	id    int64
	seq   int64
	Value T
	At    time.Time
}

// Timer is the owned handle for one pending task.
type Timer[T any] struct {
	id       int64
	seq      int64
	pending  bool
	delay    time.Duration
	schedule Scheduler
}

func New[T any](delay time.Duration) *Timer[T] {
	return &Timer[T]{
		id:       nextID(),
		delay:    delay,
		schedule: tea.Tick,
	}
}

// WithScheduler swaps the scheduler. Used by tests to drive time by hand.
func (t *Timer[T]) WithScheduler(s Scheduler) *Timer[T] {
	if s != nil {
		t.schedule = s
	}
	return t
}

// Replace cancels the pending task, if any, and schedules a new one carrying v.
func (t *Timer[T]) Replace(v T) tea.Cmd {
	t.Cancel()
	t.seq++
	t.pending = true

	id, seq := t.id, t.seq
	return t.schedule(t.delay, func(at time.Time) tea.Msg {
		return FireMsg[T]{id: id, seq: seq, Value: v, At: at}
	})
}

// Cancel drops the pending task. A FireMsg already in flight is ignored by Accept.
func (t *Timer[T]) Cancel() {
	if !t.pending {
		return
	}
	t.pending = false
	t.seq++
}

func (t *Timer[T]) Pending() bool { return t.pending }

// Accept reports whether msg is the fire of the currently pending task and
// returns its value. Accepting releases the task.
func (t *Timer[T]) Accept(msg tea.Msg) (T, bool) {
	var zero T

	fire, ok := msg.(FireMsg[T])
	if !ok || fire.id != t.id {
		return zero, false
	}
	if !t.pending || fire.seq != t.seq {
		return zero, false
	}

	t.pending = false
	return fire.Value, true
}
