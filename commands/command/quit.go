// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package command

import (
	"promptbar/args"
	"promptbar/registry"

	tea "github.com/charmbracelet/bubbletea"
)

type Quit struct{}

func init() { registry.Register(Quit{}) }

func (Quit) Name() string        { return "quit" }
func (Quit) Description() string { return "Exit promptbar" }

func (Quit) Execute(any, args.Args) tea.Cmd {
	return tea.Quit
}
