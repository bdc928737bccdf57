// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package registry

import (
	"sort"
	"strings"

	"promptbar/args"

	tea "github.com/charmbracelet/bubbletea"
)

// Command is something the user can run from the command bar.
// ctx is the app-provided context (commands/api.Context).
type Command interface {
	Name() string
	Description() string
	Execute(ctx any, args args.Args) tea.Cmd
}

var commands = map[string]Command{}

// Register a new command (called from command package init functions)
func Register(cmd Command) {
	commands[cmd.Name()] = cmd
}

// Get returns a command by name
func Get(name string) (Command, bool) {
	cmd, ok := commands[name]
	return cmd, ok
}

// All returns every registered command sorted by name.
func All() []Command {
	cmds := make([]Command, 0, len(commands))
	for _, c := range commands {
		cmds = append(cmds, c)
	}
	sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name() < cmds[j].Name() })
	return cmds
}

// Suggest returns the sorted command names that start with prefix.
func Suggest(prefix string) []string {
	var out []string
	for name := range commands {
		if prefix == "" || strings.HasPrefix(name, prefix) {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}
