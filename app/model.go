// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package app

import (
	"fmt"

	"promptbar/config"
	"promptbar/core/debounce"
	"promptbar/core/hotkeys"
	"promptbar/generation"
	"promptbar/i18n"
	"promptbar/state"
	"promptbar/styles"
	"promptbar/views/commandinput"
	"promptbar/views/promptinput"
	queueview "promptbar/views/queue"
	statusview "promptbar/views/status"
	"promptbar/views/view"
	"promptbar/views/viewstack"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model holds app state
type Model struct {
	cfg        config.Config
	store      *state.Store
	dispatcher *generation.Dispatcher
	tr         *i18n.Translator
	hotkeys    *hotkeys.Registry

	prompt       *promptinput.Model
	status       *statusview.Model
	commandInput *commandinput.Model

	views       map[string]view.Factory
	currentView view.View
	viewStack   viewstack.Stack

	terminalWidth  int
	terminalHeight int
	viewWidth      int
	viewHeight     int

	notice      string
	noticeErr   bool
	fingerprint string
}

type Option func(*promptinput.Options)

// WithScheduler replaces tea.Tick for the prompt's validation timer.
func WithScheduler(s debounce.Scheduler) Option {
	return func(o *promptinput.Options) { o.Scheduler = s }
}

func New(cfg config.Config, opts ...Option) (*Model, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	store, err := state.New(cfg.Tabs, cfg.MaxQueue)
	if err != nil {
		return nil, err
	}
	if cfg.DefaultTab != "" {
		if err := store.SetActiveTab(cfg.DefaultTab); err != nil {
			return nil, fmt.Errorf("default tab: %w", err)
		}
	}

	tr := i18n.New(cfg.Language)
	keys := hotkeys.NewRegistry()
	dispatcher := generation.NewDispatcher(store)

	promptOpts := promptinput.Options{
		Delay:     cfg.Debounce,
		FocusKey:  cfg.FocusKey,
		CharLimit: cfg.CharLimit,
		Height:    cfg.Height,
		Hotkeys:   keys,
	}
	for _, o := range opts {
		o(&promptOpts)
	}

	m := &Model{
		cfg:          cfg,
		store:        store,
		dispatcher:   dispatcher,
		tr:           tr,
		hotkeys:      keys,
		prompt:       promptinput.New(store, dispatcher, tr, promptOpts),
		status:       statusview.New(version, tr.Language().String(), store, tr),
		commandInput: commandinput.New(),
		views:        map[string]view.Factory{},
		viewStack:    viewstack.Stack{},
		viewWidth:    80,
		viewHeight:   10,
	}
	m.registerViews()
	m.prompt.SetWidth(m.viewWidth)

	m.currentView, _ = m.views[queueview.ViewName](m.viewWidth, m.viewHeight, nil)
	return m, nil
}

// Init mounts the prompt and the first view.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.prompt.OnEnter(), m.currentView.OnEnter(), m.sync())
}

// Close unmounts the prompt. Safe to call more than once.
func (m *Model) Close() {
	m.prompt.OnExit()
}

func (m *Model) Store() *state.Store { return m.store }

func (m *Model) Prompt() *promptinput.Model { return m.prompt }

func (m *Model) CurrentView() view.View { return m.currentView }

func (m *Model) CommandInput() *commandinput.Model { return m.commandInput }

func (m *Model) Notice() string { return m.notice }

func (m *Model) switchToView(name string, data any) tea.Cmd {
	factory, ok := m.views[name]
	if !ok {
		l().Warnf("no view registered for %q", name)
		return nil
	}

	exitCmd := m.currentView.OnExit()

	newView, loadCmd := factory(m.viewWidth, m.viewHeight, data)
	resizeCmd := handleViewResize(newView, m.viewWidth, m.viewHeight)

	m.viewStack.Push(m.currentView)
	m.currentView = newView

	enterCmd := newView.OnEnter()

	return tea.Batch(exitCmd, resizeCmd, loadCmd, enterCmd)
}

func (m *Model) replaceView(name string, data any) tea.Cmd {
	factory, ok := m.views[name]
	if !ok {
		l().Warnf("no view registered for %q", name)
		return nil
	}

	exitCmd := m.currentView.OnExit()

	newView, loadCmd := factory(m.viewWidth, m.viewHeight, data)
	resizeCmd := handleViewResize(newView, m.viewWidth, m.viewHeight)

	m.currentView = newView
	m.viewStack.Reset()

	enterCmd := newView.OnEnter()

	return tea.Batch(exitCmd, resizeCmd, loadCmd, enterCmd)
}

func (m *Model) renderStackBar() string {
	stack := append(m.viewStack.Views(), m.currentView)

	var parts []string
	for i, v := range stack {
		if i > 0 {
			parts = append(parts, styles.CrumbSeparator.Render(" → "))
		}
		style := styles.Rainbow[i%len(styles.Rainbow)]
		parts = append(parts, style.Render(fmt.Sprintf(" %s ", v.Name())))
	}

	return lipgloss.JoinHorizontal(lipgloss.Left, parts...)
}
