// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"promptbar/args"

	"gopkg.in/yaml.v3"
)

const AppName = "promptbar"

var ErrInvalid = errors.New("invalid config")

// Config holds every tunable of the prompt bar.
type Config struct {
	Env        string        `yaml:"env"`
	LogLevel   string        `yaml:"log_level"`
	Language   string        `yaml:"language"`
	Debounce   time.Duration `yaml:"debounce"`
	FocusKey   string        `yaml:"focus_key"`
	Tabs       []string      `yaml:"tabs"`
	DefaultTab string        `yaml:"default_tab"`
	MaxQueue   int           `yaml:"max_queue"`
	CharLimit  int           `yaml:"char_limit"`
	Height     int           `yaml:"height"`
}

func Default() Config {
	return Config{
		Env:        "prod",
		Language:   "en",
		Debounce:   500 * time.Millisecond,
		FocusKey:   "alt+a",
		Tabs:       []string{"txt2img", "img2img", "unifiedCanvas"},
		DefaultTab: "txt2img",
		MaxQueue:   8,
		CharLimit:  0,
		Height:     3,
	}
}

// Load builds the config from defaults, then the YAML file, then the
// environment, then command line flags. A missing default file is not an error;
// a missing file named with --config is.
func Load(cli args.Args) (Config, error) {
	cfg := Default()

	path, explicit := cli.Get("config"), cli.Has("config")
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			if explicit || !errors.Is(err, os.ErrNotExist) {
				return cfg, err
			}
		}
	}

	cfg.mergeEnv()
	if err := cfg.mergeFlags(cli); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

// DefaultPath is $XDG_CONFIG_HOME/promptbar/config.yaml, or the same under
// ~/.config. Empty when neither can be determined.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName, "config.yaml")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", AppName, "config.yaml")
	}
	return ""
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// UnmarshalYAML reads debounce through parseDuration so the file accepts the
// same forms as the flag. Keys missing from the file keep their current value.
func (c *Config) UnmarshalYAML(node *yaml.Node) error {
	type plain Config

	rest := *node
	rest.Content = nil
	var debounce *yaml.Node
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == "debounce" {
			debounce = node.Content[i+1]
			continue
		}
		rest.Content = append(rest.Content, node.Content[i], node.Content[i+1])
	}

	if err := rest.Decode((*plain)(c)); err != nil {
		return err
	}
	if debounce != nil {
		d, err := parseDuration(debounce.Value)
		if err != nil {
			return fmt.Errorf("%w: debounce %q: %v", ErrInvalid, debounce.Value, err)
		}
		c.Debounce = d
	}
	return nil
}

func (c *Config) mergeEnv() {
	if v := os.Getenv("PROMPTBAR_ENV"); v != "" {
		c.Env = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("PROMPTBAR_LANG"); v != "" {
		c.Language = v
	}
}

func (c *Config) mergeFlags(cli args.Args) error {
	if v := cli.Get("lang"); v != "" {
		c.Language = v
	}
	if v := cli.Get("tab"); v != "" {
		c.DefaultTab = v
	}
	if v := cli.Get("focus-key"); v != "" {
		c.FocusKey = v
	}
	if v := cli.Get("debounce"); v != "" {
		d, err := parseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: debounce %q: %v", ErrInvalid, v, err)
		}
		c.Debounce = d
	}
	return nil
}

// parseDuration accepts Go durations ("750ms") and bare milliseconds ("750").
func parseDuration(v string) (time.Duration, error) {
	if ms, err := strconv.Atoi(v); err == nil {
		return time.Duration(ms) * time.Millisecond, nil
	}
	return time.ParseDuration(v)
}

func (c Config) Validate() error {
	switch {
	case len(c.Tabs) == 0:
		return fmt.Errorf("%w: no tabs", ErrInvalid)
	case !slices.Contains(c.Tabs, c.DefaultTab):
		return fmt.Errorf("%w: default tab %q is not one of %v", ErrInvalid, c.DefaultTab, c.Tabs)
	case c.Debounce <= 0:
		return fmt.Errorf("%w: debounce must be positive, got %s", ErrInvalid, c.Debounce)
	case c.MaxQueue < 0:
		return fmt.Errorf("%w: max_queue must not be negative", ErrInvalid)
	case c.CharLimit < 0:
		return fmt.Errorf("%w: char_limit must not be negative", ErrInvalid)
	case c.FocusKey == "":
		return fmt.Errorf("%w: focus_key is empty", ErrInvalid)
	case !modifiedKey(c.FocusKey):
		return fmt.Errorf("%w: focus_key %q needs a ctrl+ or alt+ modifier", ErrInvalid, c.FocusKey)
	}
	return nil
}

// modifiedKey reports whether key is a ctrl+ or alt+ combination that the
// prompt does not already use for typing or quitting.
func modifiedKey(key string) bool {
	key = strings.TrimSpace(key)
	switch key {
	case "ctrl+c", "ctrl+j", "alt+enter":
		return false
	}
	rest, ok := strings.CutPrefix(key, "ctrl+")
	if !ok {
		rest, ok = strings.CutPrefix(key, "alt+")
	}
	return ok && rest != ""
}
