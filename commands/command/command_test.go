// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package command

import (
	"testing"

	"promptbar/args"
	"promptbar/commands/api"
	"promptbar/registry"
	"promptbar/state"
	"promptbar/views/view"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func newContext(t *testing.T) api.Context {
	t.Helper()
	s, err := state.New([]string{"txt2img", "img2img"}, 4)
	require.NoError(t, err)
	return api.Context{Store: s}
}

func TestRegistered(t *testing.T) {
	require.Equal(t, []string{"clear", "help", "quit", "tab"}, registry.Suggest(""))
	require.Equal(t, []string{"tab"}, registry.Suggest("t"))
}

func TestParseInput_FindsCommandAndArgs(t *testing.T) {
	cmd, a, err := api.ParseInput("  tab img2img --force ")
	require.NoError(t, err)
	require.Equal(t, "tab", cmd.Name())
	require.Equal(t, []string{"img2img"}, a.Positionals)
	require.True(t, a.Has("force"))

	_, _, err = api.ParseInput("   ")
	require.ErrorIs(t, err, api.ErrEmptyCommand)

	_, _, err = api.ParseInput("generate now")
	require.EqualError(t, err, "unknown command: generate now")
}

func TestTab(t *testing.T) {
	ctx := newContext(t)

	msg := Tab{}.Execute(ctx, args.Parse([]string{"img2img"}))()
	require.Equal(t, api.NoticeMsg{Text: "tab: img2img"}, msg)
	require.Equal(t, "img2img", ctx.Store.ActiveContextID())

	msg = Tab{}.Execute(ctx, args.Parse(nil))()
	require.Equal(t, api.NoticeMsg{Text: "tab: txt2img"}, msg)

	msg = Tab{}.Execute(&ctx, args.Parse([]string{"canvas"}))()
	errMsg, ok := msg.(api.ErrorMsg)
	require.True(t, ok, "expected ErrorMsg, got %T", msg)
	require.ErrorIs(t, errMsg.Err, state.ErrUnknownTab)
	require.Equal(t, "txt2img", ctx.Store.ActiveContextID())
}

func TestClear(t *testing.T) {
	ctx := newContext(t)
	require.NoError(t, ctx.Store.Enqueue(state.Request{ID: "a"}))
	require.NoError(t, ctx.Store.Enqueue(state.Request{ID: "b"}))

	msg := Clear{}.Execute(ctx, args.Args{})()
	require.Equal(t, api.NoticeMsg{Text: "cleared 2 request(s)"}, msg)
	require.Empty(t, ctx.Store.Queue())
}

func TestCommands_WithoutContextFail(t *testing.T) {
	for _, c := range []registry.Command{Tab{}, Clear{}} {
		msg := c.Execute(nil, args.Args{})()
		errMsg, ok := msg.(api.ErrorMsg)
		require.True(t, ok, "%s: expected ErrorMsg, got %T", c.Name(), msg)
		require.ErrorIs(t, errMsg.Err, api.ErrNoContext)
	}
}

func TestHelpAndQuit(t *testing.T) {
	require.Equal(t, view.NavigateToMsg{ViewName: view.NameHelp}, Help{}.Execute(nil, args.Args{})())
	require.IsType(t, tea.QuitMsg{}, Quit{}.Execute(nil, args.Args{})())
}
