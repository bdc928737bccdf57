// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package helpview

import (
	"promptbar/ui"
	"promptbar/views/helpbar"
	"promptbar/views/view"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const ViewName = view.NameHelp

type CommandInfo struct {
	Name        string
	Description string
}

type Model struct {
	viewport viewport.Model
	title    string
	commands []CommandInfo
	keys     []helpbar.HelpEntry
	width    int
	height   int
}

func New(width, height int, title string, cmds []CommandInfo, keys []helpbar.HelpEntry) *Model {
	m := &Model{
		viewport: viewport.New(width, contentLines(height)),
		title:    title,
		commands: cmds,
		keys:     keys,
		width:    width,
		height:   height,
	}
	m.viewport.SetContent(m.content())
	return m
}

func contentLines(height int) int {
	return ui.FrameContentLines(height, "", footer)
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Name() string { return ViewName }

func (m *Model) OnEnter() tea.Cmd { return nil }

func (m *Model) OnExit() tea.Cmd { return nil }

func (m *Model) ShortHelpItems() []helpbar.HelpEntry {
	return []helpbar.HelpEntry{
		{Key: "j/k", Desc: "Scroll"},
		{Key: "esc", Desc: "Close"},
	}
}
