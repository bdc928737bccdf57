// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package view

type NavigateToMsg struct {
	ViewName string
	Payload  any
	// Replace indicates whether the target view should replace the current
	// view (i.e., not be pushed onto the navigation stack). When false,
	// the view manager should push the new view onto the history stack.
	Replace bool
}

type NavigateBackMsg struct{}
