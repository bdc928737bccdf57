// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package commandinput

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if !m.active {
		return nil
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return cmd
	}

	switch key.String() {
	case "enter":
		val := strings.TrimSpace(m.input.Value())
		if val == "" {
			m.Hide()
			return nil
		}
		m.history = append(m.history, val)
		m.errorMsg = ""
		m.Hide()
		return func() tea.Msg { return SubmitMsg{Command: val} }

	case "esc":
		m.errorMsg = ""
		m.Hide()
		return nil

	case "up":
		if len(m.history) > 0 && m.histPos > 0 {
			m.histPos--
			m.input.SetValue(m.history[m.histPos])
			m.input.CursorEnd()
		}
		return nil

	case "down":
		if m.histPos < len(m.history)-1 {
			m.histPos++
			m.input.SetValue(m.history[m.histPos])
		} else {
			m.histPos = len(m.history)
			m.input.Reset()
		}
		m.input.CursorEnd()
		return nil

	case "tab":
		if len(m.suggestions) > 0 {
			m.input.SetValue(m.suggestions[m.selected] + " ")
			m.input.CursorEnd()
			m.refreshSuggestions()
		}
		return nil

	case "shift+tab":
		if len(m.suggestions) > 0 {
			m.selected = (m.selected + 1) % len(m.suggestions)
		}
		return nil
	}

	// Clear error when user edits
	if m.errorMsg != "" && (key.Type == tea.KeyRunes || key.Type == tea.KeyBackspace) {
		m.errorMsg = ""
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	m.refreshSuggestions()
	return cmd
}
