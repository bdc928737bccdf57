// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package commandinput

import (
	"promptbar/registry"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is the ":" command bar.
type Model struct {
	input       textinput.Model
	active      bool
	errorMsg    string
	history     []string
	histPos     int
	suggestions []string
	selected    int
}

// New creates a new command input model.
func New() *Model {
	ti := textinput.New()
	ti.Prompt = ": "
	ti.CharLimit = 256

	return &Model{input: ti}
}

// Visible returns true if the command bar is shown.
func (m *Model) Visible() bool { return m.active }

// Value is the current input line.
func (m *Model) Value() string { return m.input.Value() }

// Error is the error shown under the bar, if any.
func (m *Model) Error() string { return m.errorMsg }

// Suggestions are the command names matching the typed prefix.
func (m *Model) Suggestions() []string { return m.suggestions }

// Show makes the command bar visible and focuses the input.
func (m *Model) Show() tea.Cmd {
	m.active = true
	m.errorMsg = ""
	m.input.Reset()
	m.histPos = len(m.history)
	m.refreshSuggestions()
	return m.input.Focus()
}

// Hide hides the command bar and clears its state.
func (m *Model) Hide() {
	m.active = false
	m.input.Blur()
	m.input.Reset()
	m.suggestions = nil
	m.selected = 0
}

// ShowError reopens the bar with an error message under it.
func (m *Model) ShowError(msg string) tea.Cmd {
	m.active = true
	m.errorMsg = msg
	return m.input.Focus()
}

func (m *Model) refreshSuggestions() {
	m.suggestions = registry.Suggest(m.input.Value())
	if m.selected >= len(m.suggestions) {
		m.selected = 0
	}
}
