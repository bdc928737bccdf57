// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package api

import (
	"promptbar/state"

	tea "github.com/charmbracelet/bubbletea"
)

// Context is what commands may act on.
type Context struct {
	Store *state.Store
}

// ErrorMsg reports a failed command back to the command bar.
type ErrorMsg struct {
	Err error
}

// NoticeMsg is a one-line confirmation shown in the status line.
type NoticeMsg struct {
	Text string
}

// Fail wraps err as a command result.
func Fail(err error) tea.Cmd {
	return func() tea.Msg { return ErrorMsg{Err: err} }
}

func Notice(text string) tea.Cmd {
	return func() tea.Msg { return NoticeMsg{Text: text} }
}

// ContextFrom unwraps the registry's untyped context.
func ContextFrom(ctx any) (Context, bool) {
	switch c := ctx.(type) {
	case Context:
		return c, true
	case *Context:
		if c != nil {
			return *c, true
		}
	}
	return Context{}, false
}
