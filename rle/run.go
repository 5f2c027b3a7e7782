// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package rle

import (
	"strconv"

	"github.com/Lexer747/runpix/colour"
)

// Run is [Run.Length] consecutive pixels in row-major order which all share [Run.Colour]. Runs only exist
// inside of a [Sequence].
type Run struct {
	Colour colour.Colour
	Length int
}

// String is in the form "length:r_g_b".
func (r Run) String() string {
	return strconv.Itoa(r.Length) + ":" + r.Colour.String()
}
