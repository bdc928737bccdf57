// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package ui

import (
	"time"

	"github.com/briandowns/spinner"
)

// SpinnerCharset is the briandowns/spinner charset used for activity markers.
const SpinnerCharset = 14

// SpinnerInterval is how often the marker advances.
const SpinnerInterval = 100 * time.Millisecond

// SpinnerCharAt returns the spinner character for the given frame index.
// Falls back to an ellipsis if the charset is not available.
func SpinnerCharAt(frame int) string {
	frames := spinner.CharSets[SpinnerCharset]
	if len(frames) == 0 {
		return "…"
	}
	if frame < 0 {
		frame = -frame
	}
	return frames[frame%len(frames)]
}

// SpinnerMarker returns the first spinner character, used as an idle marker.
func SpinnerMarker() string {
	return SpinnerCharAt(0)
}
