// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package statusview

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(SpinnerTickMsg); ok {
		// The animation stops by itself once nothing is pending.
		if !m.checking {
			m.ticking = false
			m.Refresh()
			return nil
		}
		m.spinner++
		m.Refresh()
		return m.spinnerTickCmd()
	}
	return nil
}
