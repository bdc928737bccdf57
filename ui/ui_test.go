// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func TestRenderFramedBox_FixedWidth(t *testing.T) {
	box := RenderFramedBox("Prompt", "", "a cat\non a mat", "", 30)
	lines := strings.Split(box, "\n")

	require.Len(t, lines, 4)
	for _, line := range lines {
		require.Equal(t, 30, lipgloss.Width(line), "line %q", line)
	}
	require.Contains(t, lines[0], "Prompt")
	require.Contains(t, lines[1], "a cat")
}

func TestRenderFramedBox_AutoWidth(t *testing.T) {
	box := RenderFramedBox("", "head", "body", "foot", 0)
	lines := strings.Split(box, "\n")

	require.Len(t, lines, 5)
	require.Equal(t, lipgloss.Width(lines[0]), lipgloss.Width(lines[2]))
}

func TestSpinnerCharAt_Wraps(t *testing.T) {
	require.NotEmpty(t, SpinnerMarker())
	require.Equal(t, SpinnerCharAt(0), SpinnerMarker())
	require.NotPanics(t, func() { SpinnerCharAt(-3); SpinnerCharAt(1 << 20) })
}

func TestFrameContentLines(t *testing.T) {
	require.Equal(t, 8, FrameContentLines(10, "", ""))
	require.Equal(t, 6, FrameContentLines(10, "head", "foot"))
	require.Equal(t, 5, FrameContentLines(10, "a\nb", "c"))
	require.Equal(t, 1, FrameContentLines(2, "head", ""))
}

func TestDistributeColumns(t *testing.T) {
	// Spare width goes to the flexible column.
	require.Equal(t, []int{10, 30, 8}, DistributeColumns(52, 2, 2, []int{10, 20, 8}, []int{1}))
	// Overflow is taken from the flexible column first.
	require.Equal(t, []int{10, 12, 8}, DistributeColumns(34, 2, 2, []int{10, 20, 8}, []int{1}))
}
