// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package helpbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type HelpEntry struct {
	Key  string
	Desc string
}

type Model struct {
	globalHelp  []HelpEntry
	viewHelp    []HelpEntry
	width       int
	minColWidth int
}

const (
	defaultMinColWidth = 20
	rowsPerColumn      = 3
)

func New(width int) *Model {
	return &Model{
		globalHelp:  []HelpEntry{{Key: "q", Desc: "quit"}, {Key: "?", Desc: "help"}},
		width:       width,
		minColWidth: defaultMinColWidth,
	}
}

func (m *Model) WithGlobalHelp(entries []HelpEntry) *Model {
	m.globalHelp = entries
	return m
}

func (m *Model) WithViewHelp(entries []HelpEntry) *Model {
	m.viewHelp = entries
	return m
}

func (m *Model) SetWidth(width int) *Model {
	m.width = width
	return m
}

// View renders the help entries in columns to the right of info.
func (m *Model) View(info string) string {
	allHelp := append(append([]HelpEntry{}, m.viewHelp...), m.globalHelp...)
	if len(allHelp) == 0 {
		return info
	}

	infoWidth := lipgloss.Width(info)
	availableWidth := m.width - infoWidth - 2
	if availableWidth < m.minColWidth {
		return info
	}

	numCols := (len(allHelp) + rowsPerColumn - 1) / rowsPerColumn
	maxCols := max(availableWidth/m.minColWidth, 1)
	numCols = min(numCols, maxCols)

	// Columns fill top-to-bottom; whatever does not fit is dropped.
	columns := make([][]HelpEntry, numCols)
	for i, entry := range allHelp {
		col := i / rowsPerColumn
		if col >= numCols {
			break
		}
		columns[col] = append(columns[col], entry)
	}

	var renderedCols []string
	for colIdx, col := range columns {
		maxKeyLen := 0
		for _, entry := range col {
			maxKeyLen = max(maxKeyLen, lipgloss.Width("<"+entry.Key+">"))
		}

		lines := make([]string, 0, len(col))
		for _, entry := range col {
			keyText := "<" + entry.Key + ">"
			padding := maxKeyLen - lipgloss.Width(keyText)
			lines = append(lines, KeyStyle.Render(keyText)+strings.Repeat(" ", padding+2)+entry.Desc)
		}

		if colIdx > 0 {
			renderedCols = append(renderedCols, "   ")
		}
		renderedCols = append(renderedCols, strings.Join(lines, "\n"))
	}

	helpBlock := lipgloss.NewStyle().
		Width(availableWidth).
		Align(lipgloss.Left).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, renderedCols...))

	if info == "" {
		return helpBlock
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, info, "  ", helpBlock)
}
