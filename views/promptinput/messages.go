// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package promptinput

// SubmittedMsg is emitted after the submit action ran.
type SubmittedMsg struct {
	ContextID string
}

// BlurredMsg is emitted when the user leaves the prompt with esc.
type BlurredMsg struct{}
