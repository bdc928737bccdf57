// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package confirmdialog

import (
	"fmt"
	"strings"

	"promptbar/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ResultMsg carries the answer once the dialog closes.
type ResultMsg struct {
	Confirmed bool
}

type Model struct {
	visible bool
	message string
}

func New() *Model { return &Model{} }

func (m *Model) Visible() bool { return m.visible }

// Ask opens the dialog with a yes/no question.
func (m *Model) Ask(message string) {
	m.visible = true
	m.message = message
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !m.visible {
		return nil
	}

	switch key.String() {
	case "y", "Y":
		m.visible = false
		return func() tea.Msg { return ResultMsg{Confirmed: true} }
	case "n", "N", "esc":
		m.visible = false
		return func() tea.Msg { return ResultMsg{Confirmed: false} }
	}
	return nil
}

func (m *Model) View() string {
	if !m.visible {
		return ""
	}

	lines := []string{
		fmt.Sprintf("⚠️  %s", m.message),
		"",
		"[y] Yes   [n] No",
	}

	contentWidth := 0
	for _, l := range lines {
		contentWidth = max(contentWidth, lipgloss.Width(l))
	}

	const hPad = 2
	padded := make([]string, 0, len(lines)+2)
	padded = append(padded, "")
	for _, l := range lines {
		padded = append(padded, strings.Repeat(" ", hPad)+l)
	}
	padded = append(padded, "")

	return ui.RenderFramedBox("Confirm", "", strings.Join(padded, "\n"), "", contentWidth+hPad*2+4)
}
