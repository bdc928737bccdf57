// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package queueview

import (
	"fmt"
	"strings"

	"promptbar/i18n"
	"promptbar/ui"

	"github.com/charmbracelet/lipgloss"
)

const colGap = 2

var (
	// id, tab, prompt, extras, time
	baseColumns = []int{16, 14, 20, 9, 8}
	flexColumns = []int{2}

	emptyStyle = lipgloss.NewStyle().Faint(true)
)

func (m *Model) View() string {
	title := fmt.Sprintf("%s (%d)", m.tr.T(i18n.KeyQueueTitle), len(m.requests))
	if limit := m.source.MaxQueue(); limit > 0 {
		title = fmt.Sprintf("%s (%d/%d)", m.tr.T(i18n.KeyQueueTitle), len(m.requests), limit)
	}

	if len(m.requests) == 0 {
		return ui.RenderFramedBox(title, "", emptyStyle.Render(m.tr.T(i18n.KeyQueueEmpty)), "", m.width)
	}

	header := m.formatRow("ID", "TAB", "PROMPT", "EXTRAS", "TIME")
	box := ui.RenderFramedBox(title, header, m.viewport.View(), "", m.width)
	if m.confirm.Visible() {
		return lipgloss.JoinVertical(lipgloss.Left, m.confirm.View(), box)
	}
	return box
}

func (m *Model) columns() []int {
	return ui.DistributeColumns(m.width-4, len(baseColumns)-1, colGap, baseColumns, flexColumns)
}

func (m *Model) formatRow(cells ...string) string {
	cols := m.columns()
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = fit(c, cols[i])
	}
	return strings.Join(parts, strings.Repeat(" ", colGap))
}

func (m *Model) renderRows() string {
	lines := make([]string, 0, len(m.requests))
	for _, r := range m.requests {
		extras := fmt.Sprintf("%dL %dE", len(r.Loras), len(r.Embeddings))
		prompt := strings.Join(strings.Fields(r.Prompt), " ")
		lines = append(lines, m.formatRow(r.ID, r.Tab, prompt, extras, r.CreatedAt.Format("15:04:05")))
	}
	return strings.Join(lines, "\n")
}

// fit pads or truncates s to exactly width cells.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) > width {
		r := []rune(s)
		for len(r) > 0 && lipgloss.Width(string(r)) > width-1 {
			r = r[:len(r)-1]
		}
		return string(r) + "…"
	}
	return s + strings.Repeat(" ", width-lipgloss.Width(s))
}
