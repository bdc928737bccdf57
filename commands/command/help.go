// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package command

import (
	"promptbar/args"
	"promptbar/registry"
	"promptbar/views/view"

	tea "github.com/charmbracelet/bubbletea"
)

type Help struct{}

func init() { registry.Register(Help{}) }

func (Help) Name() string        { return "help" }
func (Help) Description() string { return "Show all available commands" }

func (Help) Execute(ctx any, _ args.Args) tea.Cmd {
	return func() tea.Msg {
		return view.NavigateToMsg{ViewName: view.NameHelp}
	}
}
