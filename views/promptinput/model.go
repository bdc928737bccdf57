// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package promptinput

import (
	"time"

	"promptbar/core/debounce"
	"promptbar/core/hotkeys"
	"promptbar/i18n"
	"promptbar/views/helpbar"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

type Options struct {
	Delay     time.Duration
	FocusKey  string
	CharLimit int
	Height    int

	// Hotkeys receives the focus shortcut while mounted. Nil disables it.
	Hotkeys *hotkeys.Registry

	// Scheduler overrides tea.Tick for the validation timer.
	Scheduler debounce.Scheduler
}

type Model struct {
	area      textarea.Model
	store     Store
	submitter Submitter
	tr        Translator

	validation *debounce.Timer[string]

	hotkeys  *hotkeys.Registry
	focusKey string
	binding  *hotkeys.Binding

	mounted bool
	width   int
}

func New(store Store, submitter Submitter, tr Translator, opts Options) *Model {
	if opts.Delay <= 0 {
		opts.Delay = DefaultDelay
	}
	if opts.FocusKey == "" {
		opts.FocusKey = DefaultFocusKey
	}
	if opts.Height <= 0 {
		opts.Height = 3
	}

	ta := textarea.New()
	ta.Placeholder = tr.T(i18n.KeyPromptPlaceholder)
	ta.Prompt = ""
	ta.ShowLineNumbers = false
	ta.CharLimit = opts.CharLimit
	ta.SetHeight(opts.Height)

	return &Model{
		area:       ta,
		store:      store,
		submitter:  submitter,
		tr:         tr,
		validation: debounce.New[string](opts.Delay).WithScheduler(opts.Scheduler),
		hotkeys:    opts.Hotkeys,
		focusKey:   opts.FocusKey,
	}
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Name() string { return ViewName }

// OnEnter mounts the prompt: it loads the stored text, binds the focus
// shortcut and takes focus.
func (m *Model) OnEnter() tea.Cmd {
	if m.mounted {
		return nil
	}
	m.mounted = true

	if text := m.store.Text(); m.area.Value() != text {
		m.area.SetValue(text)
	}

	if m.hotkeys != nil {
		b, err := m.hotkeys.Register(m.focusKey, m.focusFromShortcut)
		if err != nil {
			l().Warnf("focus shortcut unavailable: %v", err)
		} else {
			m.binding = b
		}
	}

	return m.Focus()
}

// OnExit unmounts the prompt: pending validation is dropped and the focus
// shortcut is released. Safe to call more than once.
func (m *Model) OnExit() tea.Cmd {
	m.validation.Cancel()
	m.binding.Release()
	m.binding = nil
	m.mounted = false
	m.area.Blur()
	return nil
}

func (m *Model) Mounted() bool { return m.mounted }

func (m *Model) Focus() tea.Cmd {
	if !m.mounted {
		return nil
	}
	return m.area.Focus()
}

func (m *Model) Blur() { m.area.Blur() }

func (m *Model) Focused() bool { return m.area.Focused() }

func (m *Model) Value() string { return m.area.Value() }

// ValidationPending reports whether a validation is waiting for the quiet period.
func (m *Model) ValidationPending() bool { return m.validation.Pending() }

// Invalid is computed on read from the stored text.
func (m *Model) Invalid() bool {
	return IsInvalid(m.store.Text())
}

func (m *Model) SetWidth(width int) {
	m.width = width
	// Two border columns plus one space of padding per side.
	inner := width - 4
	if inner < 1 {
		inner = 1
	}
	m.area.SetWidth(inner)
}

func (m *Model) ShortHelpItems() []helpbar.HelpEntry {
	return []helpbar.HelpEntry{
		{Key: "enter", Desc: "Generate"},
		{Key: "alt+enter", Desc: "Newline"},
		{Key: m.focusKey, Desc: "Focus prompt"},
		{Key: "esc", Desc: "Leave prompt"},
	}
}
