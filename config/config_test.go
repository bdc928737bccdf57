// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"promptbar/args"

	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("PROMPTBAR_ENV", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("PROMPTBAR_LANG", "")
	return dir
}

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, AppName, "config.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	isolate(t)

	cfg, err := Load(args.Parse(nil))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.Equal(t, 500*time.Millisecond, cfg.Debounce)
	require.Equal(t, "alt+a", cfg.FocusKey)
}

func TestLoad_LayersFileEnvAndFlags(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, `
language: fr
debounce: 750ms
tabs: [txt2img, img2img]
default_tab: img2img
max_queue: 2
`)
	t.Setenv("PROMPTBAR_LANG", "es")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load(args.Parse([]string{"--debounce=250", "--focus-key=ctrl+p"}))
	require.NoError(t, err)

	require.Equal(t, "es", cfg.Language, "env beats file")
	require.Equal(t, "warn", cfg.LogLevel)
	require.Equal(t, 250*time.Millisecond, cfg.Debounce, "flag beats file")
	require.Equal(t, "ctrl+p", cfg.FocusKey)
	require.Equal(t, []string{"txt2img", "img2img"}, cfg.Tabs)
	require.Equal(t, "img2img", cfg.DefaultTab)
	require.Equal(t, 2, cfg.MaxQueue)
}

func TestLoad_ExplicitMissingFileFails(t *testing.T) {
	isolate(t)

	_, err := Load(args.Parse([]string{"--config=/nonexistent/promptbar.yaml"}))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_BadYAML(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "tabs: [unterminated")

	_, err := Load(args.Parse(nil))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"no tabs":         func(c *Config) { c.Tabs = nil },
		"unknown default": func(c *Config) { c.DefaultTab = "nodes" },
		"zero debounce":   func(c *Config) { c.Debounce = 0 },
		"negative queue":  func(c *Config) { c.MaxQueue = -1 },
		"negative limit":  func(c *Config) { c.CharLimit = -5 },
		"empty focus key": func(c *Config) { c.FocusKey = "" },
		"plain rune key":  func(c *Config) { c.FocusKey = "e" },
		"enter key":       func(c *Config) { c.FocusKey = "enter" },
		"esc key":         func(c *Config) { c.FocusKey = "esc" },
		"tab key":         func(c *Config) { c.FocusKey = "tab" },
		"bare modifier":   func(c *Config) { c.FocusKey = "ctrl+" },
		"quit key":        func(c *Config) { c.FocusKey = "ctrl+c" },
		"newline key":     func(c *Config) { c.FocusKey = "alt+enter" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}

	require.NoError(t, Default().Validate())

	for _, key := range []string{"alt+a", "ctrl+e", " ctrl+p "} {
		cfg := Default()
		cfg.FocusKey = key
		require.NoError(t, cfg.Validate(), key)
	}
}

func TestLoad_BadDebounceFlag(t *testing.T) {
	isolate(t)

	_, err := Load(args.Parse([]string{"--debounce=soon"}))
	require.ErrorIs(t, err, ErrInvalid)
}

func TestLoad_FileDebounceForms(t *testing.T) {
	cases := map[string]time.Duration{
		"750":   750 * time.Millisecond,
		"1s":    time.Second,
		"250ms": 250 * time.Millisecond,
	}
	for raw, want := range cases {
		t.Run(raw, func(t *testing.T) {
			dir := isolate(t)
			writeConfig(t, dir, "debounce: "+raw+"\nmax_queue: 3\n")

			cfg, err := Load(args.Parse(nil))
			require.NoError(t, err)
			require.Equal(t, want, cfg.Debounce)
			require.Equal(t, 3, cfg.MaxQueue)
			require.Equal(t, Default().Tabs, cfg.Tabs, "unset keys keep defaults")
		})
	}
}

func TestLoad_BadFileDebounce(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "debounce: soon\n")

	_, err := Load(args.Parse(nil))
	require.ErrorIs(t, err, ErrInvalid)
}
