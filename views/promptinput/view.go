// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package promptinput

import (
	"fmt"

	"promptbar/i18n"
	"promptbar/ui"

	"github.com/charmbracelet/lipgloss"
)

func (m *Model) View() string {
	title := fmt.Sprintf("%s · %s", m.tr.T(i18n.KeyPromptTitle), m.store.ActiveContextID())

	var border lipgloss.TerminalColor = ui.FrameBorderColor
	switch {
	case m.Invalid():
		border = ui.InvalidBorderColor
	case m.area.Focused():
		border = ui.FocusBorderColor
	}

	return ui.RenderFramedBoxColor(title, "", m.area.View(), "", m.width, border)
}
