// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package statusview

import (
	"time"

	"promptbar/state"
	"promptbar/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// Height is the number of lines the status panel renders.
const Height = 6

// Source is the slice of app state the panel summarizes.
type Source interface {
	ActiveContextID() string
	Checks() state.Checks
	Queue() []state.Request
	MaxQueue() int
	IsReady() bool
}

type Translator interface {
	T(key string) string
}

type Model struct {
	source  Source
	tr      Translator
	version string
	lang    string

	content string

	// Loading state
	checking bool
	ticking  bool
	spinner  int
}

func New(version, lang string, source Source, tr Translator) *Model {
	m := &Model{
		source:  source,
		tr:      tr,
		version: version,
		lang:    lang,
	}
	m.Refresh()
	return m
}

// Refresh rebuilds the panel from the current state.
func (m *Model) Refresh() {
	m.content = m.buildContent()
}

// Checking reports whether the spinner is shown.
func (m *Model) Checking() bool { return m.checking }

// SetChecking toggles the "validation pending" spinner. It returns the tick
// command that drives the animation when one is not already running.
func (m *Model) SetChecking(checking bool) tea.Cmd {
	m.checking = checking
	m.Refresh()
	if !checking || m.ticking {
		return nil
	}
	m.ticking = true
	return m.spinnerTickCmd()
}

func (m *Model) spinnerTickCmd() tea.Cmd {
	return tea.Tick(ui.SpinnerInterval, func(t time.Time) tea.Msg {
		return SpinnerTickMsg(t)
	})
}
