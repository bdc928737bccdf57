// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package ui

import "strings"

// FrameContentLines is the number of content lines that fit in a framed box
// of frameHeight lines: the two borders, the header and the footer are
// subtracted. Never less than one.
func FrameContentLines(frameHeight int, header, footer string) int {
	headerLines := 0
	if header != "" {
		headerLines = len(strings.Split(header, "\n"))
	}
	footerLines := 0
	if footer != "" {
		footerLines = len(strings.Split(footer, "\n"))
	}

	return max(frameHeight-2-headerLines-footerLines, 1)
}
