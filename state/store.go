// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package state

import (
	"errors"
	"fmt"
	"time"

	"promptbar/core/primitives/hash"
)

var (
	ErrQueueFull  = errors.New("generation queue is full")
	ErrUnknownTab = errors.New("unknown tab")
	ErrNoTabs     = errors.New("no tabs configured")
)

// Request is one submitted generation request.
type Request struct {
	ID         string
	Tab        string
	Prompt     string
	Loras      []string
	Embeddings []string
	CreatedAt  time.Time
}

// Store is the application state shared by the prompt bar and the views.
// It is only touched from the Bubble Tea update loop and is not goroutine-safe.
type Store struct {
	text      string
	checks    Checks
	checked   bool
	tabs      []string
	activeTab string
	queue     []Request
	maxQueue  int
}

// New builds a store with the given tabs; the first one is active.
// maxQueue <= 0 means the queue is unbounded.
func New(tabs []string, maxQueue int) (*Store, error) {
	if len(tabs) == 0 {
		return nil, ErrNoTabs
	}
	cp := make([]string, len(tabs))
	copy(cp, tabs)

	return &Store{
		tabs:      cp,
		activeTab: cp[0],
		maxQueue:  maxQueue,
	}, nil
}

func (s *Store) SetText(value string) {
	s.text = value
}

func (s *Store) Text() string { return s.text }

// ValidateText runs the prompt checkers and keeps the result.
func (s *Store) ValidateText(value string) {
	s.checks = RunCheckers(value)
	s.checked = true
	l().Debugw("prompt checked",
		"valid", s.checks.Valid,
		"words", s.checks.Words,
		"loras", len(s.checks.Loras),
		"embeddings", len(s.checks.Embeddings),
	)
}

// Checks returns the result of the last ValidateText call.
func (s *Store) Checks() Checks { return s.checks }

// Stale reports whether the text changed since it was last checked.
func (s *Store) Stale() bool {
	return !s.checked || s.checks.Text != s.text
}

func (s *Store) ActiveContextID() string { return s.activeTab }

func (s *Store) Tabs() []string {
	cp := make([]string, len(s.tabs))
	copy(cp, s.tabs)
	return cp
}

func (s *Store) SetActiveTab(name string) error {
	for _, t := range s.tabs {
		if t == name {
			s.activeTab = name
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownTab, name)
}

// NextTab activates the tab after the current one, wrapping around.
func (s *Store) NextTab() string {
	for i, t := range s.tabs {
		if t == s.activeTab {
			s.activeTab = s.tabs[(i+1)%len(s.tabs)]
			break
		}
	}
	return s.activeTab
}

// IsReady reports whether a submit is currently permitted.
func (s *Store) IsReady() bool {
	return !Blank(s.text) && !s.queueFull()
}

func (s *Store) queueFull() bool {
	return s.maxQueue > 0 && len(s.queue) >= s.maxQueue
}

func (s *Store) Enqueue(r Request) error {
	if s.queueFull() {
		return fmt.Errorf("%w (%d pending)", ErrQueueFull, len(s.queue))
	}
	s.queue = append(s.queue, r)
	return nil
}

// Queue returns a copy of the pending requests, oldest first.
func (s *Store) Queue() []Request {
	cp := make([]Request, len(s.queue))
	copy(cp, s.queue)
	return cp
}

func (s *Store) MaxQueue() int { return s.maxQueue }

// Clear drops every pending request and returns how many were dropped.
func (s *Store) Clear() int {
	n := len(s.queue)
	s.queue = nil
	return n
}

type snapshot struct {
	Text      string
	ActiveTab string
	Queue     []string
	Valid     bool
}

// Fingerprint hashes the observable state. Views use it to skip re-rendering
// when nothing changed.
func (s *Store) Fingerprint() (string, error) {
	ids := make([]string, 0, len(s.queue))
	for _, r := range s.queue {
		ids = append(ids, r.ID)
	}
	return hash.String(snapshot{
		Text:      s.text,
		ActiveTab: s.activeTab,
		Queue:     ids,
		Valid:     s.checks.Valid,
	})
}
