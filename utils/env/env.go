// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025-2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

//nolint:staticcheck
package env

import (
	"os"
)

// DEBUG_STRICT mirrors the -debug-strict flag, when "1" every edit re-validates the run-length encoding
// and crashes on the first violation.
func DEBUG_STRICT() bool {
	str := os.Getenv("RUNPIX_DEBUG_STRICT")
	return str == "1"
}
