// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package hotkeys

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func altKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: true}
}

func TestDispatch_RunsBoundHandler(t *testing.T) {
	r := NewRegistry()
	calls := 0

	_, err := r.Register(" alt+a ", func() tea.Cmd {
		calls++
		return nil
	})
	require.NoError(t, err)
	require.True(t, r.Bound("alt+a"))

	_, handled := r.Dispatch(altKey('a'))
	require.True(t, handled)
	require.Equal(t, 1, calls)

	_, handled = r.Dispatch(altKey('b'))
	require.False(t, handled)
	require.Equal(t, 1, calls)
}

func TestDispatch_IsCaseSensitive(t *testing.T) {
	r := NewRegistry()
	calls := 0

	_, err := r.Register("alt+a", func() tea.Cmd { calls++; return nil })
	require.NoError(t, err)

	_, handled := r.Dispatch(altKey('A'))
	require.False(t, handled, "alt+A is a different key")
	require.Zero(t, calls)
	require.False(t, r.Bound("alt+A"))

	_, err = r.Register("alt+A", nil)
	require.NoError(t, err)
	require.True(t, r.Bound("alt+A"))
}

func TestRegister_Conflicts(t *testing.T) {
	r := NewRegistry()

	_, err := r.Register("alt+a", nil)
	require.NoError(t, err)

	_, err = r.Register("alt+a", nil)
	require.True(t, errors.Is(err, ErrKeyBound), "got %v", err)

	_, err = r.Register("  ", nil)
	require.ErrorIs(t, err, ErrEmptyKey)
}

func TestRelease_IsIdempotentAndFreesKey(t *testing.T) {
	r := NewRegistry()
	calls := 0

	b, err := r.Register("alt+a", func() tea.Cmd { calls++; return nil })
	require.NoError(t, err)

	b.Release()
	b.Release()
	require.True(t, b.Released())
	require.False(t, r.Bound("alt+a"))

	_, handled := r.Dispatch(altKey('a'))
	require.False(t, handled)
	require.Zero(t, calls)

	// A stale release must not drop a newer owner of the same key.
	next, err := r.Register("alt+a", func() tea.Cmd { calls++; return nil })
	require.NoError(t, err)
	b.Release()
	require.True(t, r.Bound("alt+a"))

	_, handled = r.Dispatch(altKey('a'))
	require.True(t, handled)
	require.Equal(t, 1, calls)
	require.Equal(t, "alt+a", next.Key())
}

func TestRelease_NilBinding(t *testing.T) {
	var b *Binding
	require.NotPanics(t, b.Release)
	require.True(t, b.Released())
}
