// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package app

import (
	"promptbar/config"
	"promptbar/i18n"
	"promptbar/registry"
	helpview "promptbar/views/help"
	"promptbar/views/helpbar"
	queueview "promptbar/views/queue"
	"promptbar/views/view"

	tea "github.com/charmbracelet/bubbletea"

	_ "promptbar/commands" // triggers autoload
)

const version string = "dev"

// Run starts the terminal program and blocks until it exits.
func Run(cfg config.Config) error {
	m, err := New(cfg)
	if err != nil {
		return err
	}
	// The focus shortcut is released however the program ends.
	defer m.Close()

	l().Infow("starting", "version", version, "lang", m.tr.Language().String(), "tab", m.store.ActiveContextID())

	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m *Model) registerView(name string, factory view.Factory) {
	m.views[name] = factory
}

func (m *Model) registerViews() {
	m.registerView(queueview.ViewName, func(w, h int, _ any) (view.View, tea.Cmd) {
		return queueview.New(w, h, m.store, m.tr), nil
	})
	m.registerView(helpview.ViewName, func(w, h int, _ any) (view.View, tea.Cmd) {
		return helpview.New(w, h, m.tr.T(i18n.KeyHelpTitle), commandInfos(), m.keyHelp()), nil
	})
}

func commandInfos() []helpview.CommandInfo {
	all := registry.All()
	infos := make([]helpview.CommandInfo, 0, len(all))
	for _, c := range all {
		infos = append(infos, helpview.CommandInfo{Name: c.Name(), Description: c.Description()})
	}
	return infos
}

func (m *Model) keyHelp() []helpbar.HelpEntry {
	return []helpbar.HelpEntry{
		{Key: m.cfg.FocusKey, Desc: "Focus the prompt"},
		{Key: "enter", Desc: "Generate (when ready)"},
		{Key: "alt+enter", Desc: "Insert a newline"},
		{Key: "ctrl+j", Desc: "Insert a newline"},
		{Key: ":", Desc: "Command bar"},
		{Key: "tab", Desc: "Next tab"},
		{Key: "i", Desc: "Focus the prompt"},
		{Key: "?", Desc: "This help"},
		{Key: "esc/q", Desc: "Back or quit"},
		{Key: "ctrl+c", Desc: "Quit"},
	}
}
