// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2024-2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package check

import (
	"fmt"
)

// Check asserts that the given condition is true, if it is not this is assumed to be an unrecoverable
// violation of the state of the program and will result in a panic. E.g.
//
//	for i, run := range runs {
//		check.Check(run.Length > 0, "runs must never be empty")
//	}
func Check(shouldBeTrue bool, assertMsg string) {
	if !shouldBeTrue {
		panic("check failed: " + assertMsg)
	}
}

// Checkf asserts that the given condition is true, if it is not this is assumed to be an unrecoverable
// violation of the state of the program and will result in a panic. E.g.
//
//	check.Checkf(x < width, "x:%d out of bounds for width %d", x, width)
//
// Checkf is a variant which will format the message according to normal go printf semantics.
func Checkf(shouldBeTrue bool, format string, a ...any) {
	if !shouldBeTrue {
		panic("check failed: " + fmt.Sprintf(format, a...))
	}
}

// NoErr asserts that the given error is in fact nil, if it is not error then it's assumed to be an
// unrecoverable error and will result in a panic.
func NoErr(err error, msg string) {
	Checkf(err == nil, "%s: %s", msg, err)
}

// NoErrf asserts that the given error is in fact nil, if it is not error then it's assumed to be an
// unrecoverable error and will result in a panic. Formatting the message according normal go printf
// semantics.
func NoErrf(err error, format string, args ...any) {
	Checkf(err == nil, format+": %s", append(args, err)...)
}
