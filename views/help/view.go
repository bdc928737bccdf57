// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package helpview

import (
	"fmt"
	"strings"

	"promptbar/ui"
	"promptbar/views/helpbar"

	"github.com/charmbracelet/lipgloss"
)

var (
	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00d7ff"))

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#808080"))
)

var footer = footerStyle.Render("[press q or esc to go back]")

func (m *Model) View() string {
	return ui.RenderFramedBox(m.title, "", m.viewport.View(), footer, m.width)
}

func (m *Model) content() string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Commands"))
	b.WriteString("\n")
	for _, c := range m.commands {
		fmt.Fprintf(&b, ":%-15s %s\n", c.Name, c.Description)
	}

	if len(m.keys) > 0 {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render("Keys"))
		b.WriteString("\n")
		for _, k := range m.keys {
			fmt.Fprintf(&b, " %s %s\n", helpbar.KeyStyle.Render(fmt.Sprintf("%-15s", k.Key)), k.Desc)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
