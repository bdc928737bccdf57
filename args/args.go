// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package args

import (
	"fmt"
	"strings"
)

// Args holds both positional arguments and flag values.
type Args struct {
	Positionals []string
	Flags       map[string]string
}

// Parse separates flags (--flag or --flag=value) from positionals.
// A bare --flag is recorded as "true".
func Parse(parts []string) Args {
	a := Args{
		Flags:       make(map[string]string),
		Positionals: []string{},
	}

	for _, p := range parts {
		if strings.HasPrefix(p, "--") && len(p) > 2 {
			p = strings.TrimPrefix(p, "--")
			if eq := strings.Index(p, "="); eq != -1 {
				a.Flags[p[:eq]] = p[eq+1:]
			} else {
				a.Flags[p] = "true"
			}
		} else {
			a.Positionals = append(a.Positionals, p)
		}
	}

	return a
}

// Get returns the string value of a flag or empty string if not present.
func (a *Args) Get(name string) string {
	return a.Flags[name]
}

// Has returns true if a flag was provided.
func (a *Args) Has(name string) bool {
	_, ok := a.Flags[name]
	return ok
}

// First returns the first positional or "".
func (a *Args) First() string {
	if len(a.Positionals) == 0 {
		return ""
	}
	return a.Positionals[0]
}

// String provides a debug-friendly representation.
func (a Args) String() string {
	return fmt.Sprintf("Args{Positionals=%v, Flags=%v}", a.Positionals, a.Flags)
}
