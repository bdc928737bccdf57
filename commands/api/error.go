// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package api

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyCommand = errors.New("empty command")
	ErrNoContext    = errors.New("command needs an app context")
	ErrUsage        = errors.New("usage")
)

func ErrUnknownCommand(input string) error {
	return fmt.Errorf("unknown command: %s", input)
}

func Usage(text string) error {
	return fmt.Errorf("%w: %s", ErrUsage, text)
}
