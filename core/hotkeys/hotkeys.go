// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package hotkeys

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

var ErrEmptyKey = errors.New("empty hotkey")

// ErrKeyBound is returned when another binding already owns the key.
var ErrKeyBound = errors.New("hotkey already bound")

type Handler func() tea.Cmd

// Registry maps global key combinations to handlers. It is owned by the
// application model and only touched from the Bubble Tea update loop.
type Registry struct {
	bindings map[string]*Binding
}

// Binding is a registration handle. Release removes it from the registry.
type Binding struct {
	key      string
	handler  Handler
	registry *Registry
	released bool
}

func NewRegistry() *Registry {
	return &Registry{bindings: map[string]*Binding{}}
}

// Normalize trims a key so it compares equal to tea.KeyMsg.String(). Case is
// kept: "alt+A" is shift+alt+a and does not match "alt+a".
func Normalize(key string) string {
	return strings.TrimSpace(key)
}

func (r *Registry) Register(key string, h Handler) (*Binding, error) {
	key = Normalize(key)
	if key == "" {
		return nil, ErrEmptyKey
	}
	if _, taken := r.bindings[key]; taken {
		return nil, fmt.Errorf("%w: %s", ErrKeyBound, key)
	}

	b := &Binding{key: key, handler: h, registry: r}
	r.bindings[key] = b
	l().Debugf("bound %s", key)
	return b, nil
}

// Dispatch runs the handler bound to msg, if any.
func (r *Registry) Dispatch(msg tea.KeyMsg) (tea.Cmd, bool) {
	b, ok := r.bindings[Normalize(msg.String())]
	if !ok || b.released {
		return nil, false
	}
	if b.handler == nil {
		return nil, true
	}
	return b.handler(), true
}

func (r *Registry) Bound(key string) bool {
	_, ok := r.bindings[Normalize(key)]
	return ok
}

func (b *Binding) Key() string { return b.key }

// Release is safe to call more than once.
func (b *Binding) Release() {
	if b == nil || b.released {
		return
	}
	b.released = true
	if cur, ok := b.registry.bindings[b.key]; ok && cur == b {
		delete(b.registry.bindings, b.key)
	}
	l().Debugf("released %s", b.key)
}

func (b *Binding) Released() bool { return b == nil || b.released }
