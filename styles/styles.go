// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package styles

import "github.com/charmbracelet/lipgloss"

var (
	NoticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00d7ff")).
			Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff5f87")).
			Bold(true).
			Padding(0, 1)

	CrumbSeparator = lipgloss.NewStyle().Faint(true)
)

// Rainbow colors the view stack breadcrumbs, one style per depth.
var Rainbow = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("39")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("213")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("214")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("42")),
}
