// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package statusview

import (
	"fmt"
	"strings"

	"promptbar/i18n"
	"promptbar/ui"

	"github.com/charmbracelet/lipgloss"
)

var (
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	readyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	notReadyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

func (m *Model) View() string { return m.content }

func (m *Model) buildContent() string {
	checks := m.source.Checks()

	readiness := notReadyStyle.Render("● " + m.tr.T(i18n.KeyStatusNotReady))
	if m.source.IsReady() {
		readiness = readyStyle.Render("● " + m.tr.T(i18n.KeyStatusReady))
	}

	prompt := fmt.Sprintf("%d words", checks.Words)
	if m.checking {
		prompt = ui.SpinnerCharAt(m.spinner) + " " + m.tr.T(i18n.KeyStatusChecking)
	}

	queue := fmt.Sprintf("%d", len(m.source.Queue()))
	if limit := m.source.MaxQueue(); limit > 0 {
		queue = fmt.Sprintf("%d/%d", len(m.source.Queue()), limit)
	}

	return fmt.Sprintf(
		"%s %s\n%s %s\n%s %s\n%s %s\n%s %s %s\n%s %s",
		labelStyle.Render("Tab:    "), m.source.ActiveContextID(),
		labelStyle.Render("Version:"), m.version,
		labelStyle.Render("Lang:   "), m.lang,
		labelStyle.Render("Prompt: "), prompt,
		labelStyle.Render("Extras: "), list("lora", checks.Loras), list("emb", checks.Embeddings),
		labelStyle.Render("Queue:  "), queue+" "+readiness,
	)
}

func list(label string, items []string) string {
	if len(items) == 0 {
		return label + ": -"
	}
	return label + ": " + strings.Join(items, ",")
}
