// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package command

import (
	"fmt"
	"strings"

	"promptbar/args"
	"promptbar/commands/api"
	"promptbar/registry"

	tea "github.com/charmbracelet/bubbletea"
)

// Tab switches the active tab. Without an argument it cycles to the next one.
type Tab struct{}

func init() { registry.Register(Tab{}) }

func (Tab) Name() string        { return "tab" }
func (Tab) Description() string { return "Switch the active tab (tab <name>)" }

func (Tab) Execute(ctx any, a args.Args) tea.Cmd {
	c, ok := api.ContextFrom(ctx)
	if !ok || c.Store == nil {
		return api.Fail(api.ErrNoContext)
	}

	name := a.First()
	if name == "" {
		return api.Notice("tab: " + c.Store.NextTab())
	}

	if err := c.Store.SetActiveTab(name); err != nil {
		return api.Fail(fmt.Errorf("%w (tabs: %s)", err, strings.Join(c.Store.Tabs(), ", ")))
	}
	return api.Notice("tab: " + name)
}
