// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package view

import (
	"promptbar/views/helpbar"

	tea "github.com/charmbracelet/bubbletea"
)

// View is anything the app can mount below the prompt bar.
// OnEnter and OnExit are the mount and unmount hooks.
type View interface {
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View() string
	Name() string
	OnEnter() tea.Cmd
	OnExit() tea.Cmd
	ShortHelpItems() []helpbar.HelpEntry
}
