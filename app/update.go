// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package app

import (
	"fmt"

	"promptbar/commands/api"
	"promptbar/core/debounce"
	"promptbar/i18n"
	"promptbar/views/commandinput"
	"promptbar/views/promptinput"
	statusview "promptbar/views/status"
	"promptbar/views/view"

	tea "github.com/charmbracelet/bubbletea"
)

// Lines taken by everything except the current view: the prompt frame, the
// stack bar and the notice line.
const chromeLines = 2 + 1 + 1

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m, m.updateForResize(msg)

	case debounce.FireMsg[string]:
		cmd := m.prompt.Update(msg)
		return m, tea.Batch(cmd, m.sync())

	case promptinput.SubmittedMsg:
		if err := m.dispatcher.LastError(); err != nil {
			m.setError(err)
		} else {
			m.setNotice(fmt.Sprintf("%s: %s", m.tr.T(i18n.KeyStatusQueued), msg.ContextID))
		}
		return m, m.sync()

	case promptinput.BlurredMsg:
		return m, nil

	case commandinput.SubmitMsg:
		cmd, parsedArgs, err := api.ParseInput(msg.Command)
		if err != nil {
			return m, m.commandInput.ShowError(err.Error())
		}
		l().Debugw("command", "name", cmd.Name(), "args", parsedArgs.String())
		return m, cmd.Execute(api.Context{Store: m.store}, parsedArgs)

	case api.ErrorMsg:
		l().Warnf("command failed: %v", msg.Err)
		return m, tea.Batch(m.commandInput.ShowError(msg.Err.Error()), m.sync())

	case api.NoticeMsg:
		m.setNotice(msg.Text)
		return m, m.sync()

	case view.NavigateToMsg:
		if msg.Replace {
			return m, m.replaceView(msg.ViewName, msg.Payload)
		}
		return m, m.switchToView(msg.ViewName, msg.Payload)

	case view.NavigateBackMsg:
		return m, m.goBack()

	case statusview.SpinnerTickMsg:
		return m, m.status.Update(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	default:
		return m, m.delegate(msg)
	}
}

// delegate hands anything else (cursor blinks, viewport messages) to the
// prompt and the current view.
func (m *Model) delegate(msg tea.Msg) tea.Cmd {
	return tea.Batch(m.prompt.Update(msg), m.currentView.Update(msg), m.commandInput.Update(msg))
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global shortcuts win over whatever has focus.
	if cmd, ok := m.hotkeys.Dispatch(msg); ok {
		if m.prompt.Focused() && m.commandInput.Visible() {
			m.commandInput.Hide()
		}
		return m, cmd
	}

	if msg.Type == tea.KeyCtrlC {
		return m, m.quit()
	}

	if m.commandInput.Visible() {
		return m, m.commandInput.Update(msg)
	}

	if m.prompt.Focused() {
		cmd := m.prompt.Update(msg)
		return m, tea.Batch(cmd, m.sync())
	}

	// An open dialog in the current view takes every key.
	if d, ok := m.currentView.(interface{ HasActiveDialog() bool }); ok && d.HasActiveDialog() {
		return m, m.currentView.Update(msg)
	}

	switch msg.String() {
	case ":":
		return m, m.commandInput.Show()

	case "tab":
		m.setNotice("tab: " + m.store.NextTab())
		return m, m.sync()

	case "i":
		return m, m.prompt.Focus()

	case "?":
		if m.currentView.Name() == view.NameHelp {
			return m, nil
		}
		return m, m.switchToView(view.NameHelp, nil)

	case "esc", "q":
		return m, m.goBack()
	}

	return m, m.currentView.Update(msg)
}

func (m *Model) goBack() tea.Cmd {
	if m.viewStack.Len() == 0 {
		return m.quit()
	}

	exitCmd := m.currentView.OnExit()
	m.currentView = m.viewStack.Pop()
	enterCmd := m.currentView.OnEnter()
	resizeCmd := handleViewResize(m.currentView, m.viewWidth, m.viewHeight)

	return tea.Batch(exitCmd, enterCmd, resizeCmd)
}

func (m *Model) quit() tea.Cmd {
	exitCmd := m.currentView.OnExit()
	m.Close()
	return tea.Batch(exitCmd, tea.Quit)
}

// sync refreshes everything derived from the store after a state change and
// keeps the status spinner in step with the pending validation.
func (m *Model) sync() tea.Cmd {
	fp, err := m.store.Fingerprint()
	if err != nil {
		l().Errorf("fingerprint: %v", err)
	}
	if err != nil || fp != m.fingerprint {
		m.fingerprint = fp
		if r, ok := m.currentView.(interface{ Refresh() }); ok {
			r.Refresh()
		}
	}
	return m.status.SetChecking(m.prompt.ValidationPending())
}

func (m *Model) setNotice(text string) {
	m.notice = text
	m.noticeErr = false
}

func (m *Model) setError(err error) {
	m.notice = err.Error()
	m.noticeErr = true
}

func (m *Model) updateForResize(msg tea.WindowSizeMsg) tea.Cmd {
	m.terminalWidth = msg.Width
	m.terminalHeight = msg.Height

	m.viewWidth = msg.Width
	m.viewHeight = max(msg.Height-statusview.Height-m.cfg.Height-chromeLines, 3)

	m.prompt.SetWidth(msg.Width)
	return handleViewResize(m.currentView, m.viewWidth, m.viewHeight)
}

func handleViewResize(v view.View, width, height int) tea.Cmd {
	return v.Update(tea.WindowSizeMsg{Width: width, Height: height})
}
