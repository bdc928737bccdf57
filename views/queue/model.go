// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package queueview

import (
	"promptbar/state"
	"promptbar/ui"
	"promptbar/views/confirmdialog"
	"promptbar/views/helpbar"
	"promptbar/views/view"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const ViewName = view.NameQueue

// Source is what the queue view reads from.
type Source interface {
	Queue() []state.Request
	MaxQueue() int
	Clear() int
}

type Translator interface {
	T(key string) string
}

type Model struct {
	viewport viewport.Model
	confirm  *confirmdialog.Model
	source   Source
	tr       Translator
	requests []state.Request
	width    int
	height   int
}

func New(width, height int, source Source, tr Translator) *Model {
	m := &Model{
		viewport: viewport.New(width, contentLines(height)),
		confirm:  confirmdialog.New(),
		source:   source,
		tr:       tr,
		width:    width,
		height:   height,
	}
	m.Refresh()
	return m
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Name() string { return ViewName }

func (m *Model) OnEnter() tea.Cmd {
	m.Refresh()
	return nil
}

func (m *Model) OnExit() tea.Cmd { return nil }

// contentLines leaves room for the frame borders and the column header.
func contentLines(height int) int {
	return ui.FrameContentLines(height, "header", "")
}

// HasActiveDialog reports whether the clear confirmation is open.
func (m *Model) HasActiveDialog() bool { return m.confirm.Visible() }

// Len is the number of requests currently shown.
func (m *Model) Len() int { return len(m.requests) }

// Refresh re-reads the queue and redraws the rows.
func (m *Model) Refresh() {
	m.requests = m.source.Queue()
	m.viewport.SetContent(m.renderRows())
	m.viewport.GotoBottom()
}

func (m *Model) ShortHelpItems() []helpbar.HelpEntry {
	return []helpbar.HelpEntry{
		{Key: "j/k", Desc: "Down/up"},
		{Key: "g/G", Desc: "Top/bottom"},
		{Key: "x", Desc: "Clear queue"},
	}
}
