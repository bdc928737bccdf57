// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package api

import (
	"strings"

	"promptbar/args"
	"promptbar/registry"
)

// ParseInput takes a full input string like "tab img2img --force".
// It returns the matching Command and parsed Args.
func ParseInput(input string) (registry.Command, args.Args, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, args.Args{}, ErrEmptyCommand
	}

	parts := strings.Fields(input)

	// Longest matching command name wins.
	for i := len(parts); i > 0; i-- {
		if c, found := registry.Get(strings.Join(parts[:i], " ")); found {
			return c, args.Parse(parts[i:]), nil
		}
	}

	return nil, args.Args{}, ErrUnknownCommand(input)
}
