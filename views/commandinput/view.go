// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package commandinput

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	barStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#303030")).
			Foreground(lipgloss.Color("#00d7ff")).
			Padding(0, 1)

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff5f87")).
			Bold(true).
			Padding(0, 1)

	suggestionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#808080")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00d7ff")).
			Bold(true)
)

// View renders the command bar, its suggestions and an optional error.
func (m *Model) View() string {
	if !m.active {
		return ""
	}

	view := barStyle.Render(m.input.View())

	// Only hint while the command name is still being typed.
	if len(m.suggestions) > 0 && !strings.Contains(m.input.Value(), " ") {
		parts := make([]string, len(m.suggestions))
		for i, s := range m.suggestions {
			if i == m.selected {
				s = selectedStyle.Render(s)
			}
			parts[i] = s
		}
		view += "\n" + suggestionStyle.Render(strings.Join(parts, "  "))
	}

	if m.errorMsg != "" {
		view += "\n" + errStyle.Render(m.errorMsg)
	}

	return view
}
