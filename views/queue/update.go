// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package queueview

import (
	"fmt"

	"promptbar/commands/api"
	"promptbar/views/confirmdialog"

	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = contentLines(msg.Height)
		m.viewport.SetContent(m.renderRows())
		return nil

	case confirmdialog.ResultMsg:
		if !msg.Confirmed {
			return nil
		}
		n := m.source.Clear()
		m.Refresh()
		l().Infow("queue cleared", "dropped", n)
		return api.Notice(fmt.Sprintf("cleared %d request(s)", n))

	case tea.KeyMsg:
		if m.confirm.Visible() {
			return m.confirm.Update(msg)
		}
		switch msg.String() {
		case "g":
			m.viewport.GotoTop()
			return nil
		case "G":
			m.viewport.GotoBottom()
			return nil
		case "x":
			if len(m.requests) > 0 {
				m.confirm.Ask(fmt.Sprintf("Clear %d queued request(s)?", len(m.requests)))
			}
			return nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return cmd
}
