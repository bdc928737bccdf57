// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package app

import promptlog "promptbar/utils/log"

func l() *promptlog.PromptLogger {
	return promptlog.L().With("component", "app")
}
