// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package promptinput

import (
	"promptbar/core/debounce"

	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case debounce.FireMsg[string]:
		if text, ok := m.validation.Accept(msg); ok {
			m.store.ValidateText(text)
		}
		return nil

	case tea.WindowSizeMsg:
		m.SetWidth(msg.Width)
		return nil

	case tea.KeyMsg:
		if !m.area.Focused() {
			return nil
		}
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.area, cmd = m.area.Update(msg)
	return cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyEsc {
		m.area.Blur()
		return func() tea.Msg { return BlurredMsg{} }
	}

	key, shift := keyPress(msg)
	if m.KeyPressed(key, shift) {
		contextID := m.store.ActiveContextID()
		return func() tea.Msg { return SubmittedMsg{ContextID: contextID} }
	}
	if key == KeyEnter {
		// The text area only knows plain enter as "insert newline".
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	}

	before := m.area.Value()
	var cmd tea.Cmd
	m.area, cmd = m.area.Update(msg)

	if after := m.area.Value(); after != before {
		return tea.Batch(cmd, m.TextChanged(after))
	}
	return cmd
}

// keyPress maps a terminal key to (key, shiftHeld). Terminals do not report
// shift on enter, so alt+enter and ctrl+j stand in for shift+enter.
func keyPress(msg tea.KeyMsg) (string, bool) {
	switch {
	case msg.Type == tea.KeyEnter && msg.Alt:
		return KeyEnter, true
	case msg.Type == tea.KeyEnter:
		return KeyEnter, false
	case msg.Type == tea.KeyCtrlJ:
		return KeyEnter, true
	}
	return msg.String(), false
}

// TextChanged forwards an edit to the store and restarts the validation
// quiet period. The returned command delivers the validation when it elapses.
func (m *Model) TextChanged(newText string) tea.Cmd {
	if m.area.Value() != newText {
		m.area.SetValue(newText)
	}
	m.store.SetText(newText)
	return m.validation.Replace(newText)
}

// KeyPressed handles the submit key. It returns true when the key was consumed
// and the default newline must not be inserted.
//
// Enter while not ready is left to the text area on purpose: it inserts a
// newline instead of being swallowed.
func (m *Model) KeyPressed(key string, shiftHeld bool) bool {
	if key != KeyEnter || shiftHeld {
		return false
	}
	if !m.store.IsReady() {
		return false
	}

	contextID := m.store.ActiveContextID()
	m.submitter.Submit(contextID)
	l().Infow("submit", "context", contextID)
	return true
}

func (m *Model) focusFromShortcut() tea.Cmd {
	if !m.mounted {
		return nil
	}
	return m.Focus()
}
