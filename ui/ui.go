// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	FrameTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")).
			Bold(true)

	FrameHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("75")).
				Bold(true)

	FrameBorderColor   = lipgloss.Color("117")
	FocusBorderColor   = lipgloss.Color("213")
	InvalidBorderColor = lipgloss.Color("196")
)

// RenderFramedBox draws a bordered frame with title, optional header, and content.
// If width <= 0, defaults to content width + padding.
// ANSI sequences in content are preserved.
func RenderFramedBox(title, header, content, footer string, width int) string {
	return RenderFramedBoxColor(title, header, content, footer, width, FrameBorderColor)
}

// RenderFramedBoxColor is RenderFramedBox with a custom border color.
func RenderFramedBoxColor(title, header, content, footer string, width int, border lipgloss.TerminalColor) string {
	lines := strings.Split(content, "\n")
	var footerLines []string
	if footer != "" {
		footerLines = strings.Split(footer, "\n")
	}

	contentWidth := lipgloss.Width(header)
	for _, l := range append(lines, footerLines...) {
		if w := lipgloss.Width(l); w > contentWidth {
			contentWidth = w
		}
	}
	if width <= 0 {
		width = contentWidth + 4
	}

	titleStyled := ""
	if title != "" {
		titleStyled = FrameTitleStyle.Render(" " + title + " ")
	}
	borderStyle := lipgloss.NewStyle().Foreground(border)
	inner := width - 2

	leftPad := (inner - lipgloss.Width(titleStyled)) / 2
	if leftPad < 0 {
		leftPad = 0
	}
	rightPad := inner - leftPad - lipgloss.Width(titleStyled)
	if rightPad < 0 {
		rightPad = 0
	}

	boxLines := []string{fmt.Sprintf("%s%s%s%s%s",
		borderStyle.Render("╭"),
		borderStyle.Render(strings.Repeat("─", leftPad)),
		titleStyled,
		borderStyle.Render(strings.Repeat("─", rightPad)),
		borderStyle.Render("╮"),
	)}

	row := func(s string) string {
		return borderStyle.Render("│") + padLine(" "+s, inner) + borderStyle.Render("│")
	}

	if header != "" {
		boxLines = append(boxLines, row(FrameHeaderStyle.Render(header)))
	}
	for _, l := range lines {
		boxLines = append(boxLines, row(l))
	}
	for _, fl := range footerLines {
		boxLines = append(boxLines, row(fl))
	}

	boxLines = append(boxLines, borderStyle.Render("╰"+strings.Repeat("─", inner)+"╯"))
	return strings.Join(boxLines, "\n")
}

// padLine fits a line to width, preserving ANSI sequences
func padLine(line string, width int) string {
	l := lipgloss.Width(line)
	if l >= width {
		return lipgloss.NewStyle().MaxWidth(width).Render(line)
	}
	return line + strings.Repeat(" ", width-l)
}
