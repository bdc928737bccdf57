// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package command

import (
	"fmt"

	"promptbar/args"
	"promptbar/commands/api"
	"promptbar/registry"

	tea "github.com/charmbracelet/bubbletea"
)

// Clear empties the generation queue.
type Clear struct{}

func init() { registry.Register(Clear{}) }

func (Clear) Name() string        { return "clear" }
func (Clear) Description() string { return "Drop every queued request" }

func (Clear) Execute(ctx any, _ args.Args) tea.Cmd {
	c, ok := api.ContextFrom(ctx)
	if !ok || c.Store == nil {
		return api.Fail(api.ErrNoContext)
	}
	n := c.Store.Clear()
	return api.Notice(fmt.Sprintf("cleared %d request(s)", n))
}
