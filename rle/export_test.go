// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package rle

import "slices"

// Unchecked builds a sequence without any validation so that [Sequence.Check] can be tested against broken
// encodings.
var Unchecked = func(width, height int, runs []Run) *Sequence {
	return &Sequence{width: width, height: height, runs: slices.Clone(runs)}
}
