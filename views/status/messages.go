// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package statusview

import "time"

type SpinnerTickMsg time.Time
