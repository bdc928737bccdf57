// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package app

import (
	"promptbar/styles"
	"promptbar/ui"
	"promptbar/views/helpbar"
	"promptbar/views/view"

	"github.com/charmbracelet/lipgloss"
)

func (m *Model) View() string {
	// Build global help - exclude "?" when already in help view
	globalHelp := []helpbar.HelpEntry{{Key: ":", Desc: "Command"}, {Key: "?", Desc: "Help"}}
	if m.currentView.Name() == view.NameHelp {
		globalHelp = []helpbar.HelpEntry{{Key: ":", Desc: "Command"}}
	}

	viewHelp := m.currentView.ShortHelpItems()
	if m.prompt.Focused() {
		viewHelp = m.prompt.ShortHelpItems()
	}

	help := helpbar.New(m.viewWidth).
		WithGlobalHelp(globalHelp).
		WithViewHelp(viewHelp).
		View(m.status.View())

	parts := []string{help, m.prompt.View()}

	if m.commandInput.Visible() {
		parts = append(parts, ui.RenderFramedBox("", "", m.commandInput.View(), "", m.viewWidth))
	}

	parts = append(parts, m.currentView.View(), m.renderStackBar())

	if m.notice != "" {
		style := styles.NoticeStyle
		if m.noticeErr {
			style = styles.ErrorStyle
		}
		parts = append(parts, style.Render(m.notice))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
