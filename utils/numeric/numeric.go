// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2024-2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package numeric

import (
	"math"

	"golang.org/x/exp/constraints"
)

// InRange reports whether [lo] <= [v] <= [hi].
func InRange[T constraints.Integer](v, lo, hi T) bool {
	return v >= lo && v <= hi
}

// Clamp restricts [v] to the closed interval [lo, hi].
func Clamp[T constraints.Integer | constraints.Float](v, lo, hi T) T {
	return max(lo, min(v, hi))
}

// Area is width*height, it is zero when either dimension is not positive.
func Area[T constraints.Integer](width, height T) T {
	if width <= 0 || height <= 0 {
		return 0
	}
	return width * height
}

// AreaFits reports whether [Area] of [width] and [height] can be represented as an int.
func AreaFits(width, height int) bool {
	if width <= 0 || height <= 0 {
		return true
	}
	return width <= math.MaxInt/height
}

// AddFits reports whether [a]+[b] of two non-negative ints can be represented as an int.
func AddFits(a, b int) bool {
	return a <= math.MaxInt-b
}

// Split is the inverse of a row-major linearisation, returning the x and y of the [linear] index in a grid
// which is [width] wide.
func Split[T constraints.Integer](linear, width T) (x, y T) {
	return linear % width, linear / width
}
