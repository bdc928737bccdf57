// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package promptinput is the prompt text area.
//
// Every edit is forwarded to the store at once. A validation pass is forwarded
// only after the user stops typing for the debounce delay. Enter submits when
// the store says it is ready; Shift+Enter always inserts a newline.
package promptinput

import (
	"regexp"
	"time"

	promptlog "promptbar/utils/log"
	"promptbar/views/view"
)

const ViewName = view.NamePrompt

const (
	DefaultDelay    = 500 * time.Millisecond
	DefaultFocusKey = "alt+a"
	KeyEnter        = "enter"
)

func l() *promptlog.PromptLogger {
	return promptlog.L().With("view", ViewName)
}

// Store is the state the prompt bar reads and proposes updates to.
type Store interface {
	SetText(value string)
	ValidateText(value string)
	Text() string
	ActiveContextID() string
	IsReady() bool
}

// Submitter receives the submit action. It is fire-and-forget.
type Submitter interface {
	Submit(contextID string)
}

// Translator resolves static UI strings.
type Translator interface {
	T(key string) string
}

var blankPattern = regexp.MustCompile(`^[\s\r\n]+$`)

// IsInvalid reports whether text should be flagged: empty, or only spaces and
// line breaks. The flag is visual only and blocks nothing.
func IsInvalid(text string) bool {
	return len(text) == 0 || blankPattern.MatchString(text)
}
