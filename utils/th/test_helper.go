// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2024-2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

// th stands for "test helper"
package th

import (
	"fmt"
	"reflect"

	"github.com/google/go-cmp/cmp"
	"pgregory.net/rapid"

	"github.com/Lexer747/runpix/colour"
	"github.com/Lexer747/runpix/pixgrid"
)

var AllowAllUnexported = cmp.Exporter(func(reflect.Type) bool { return true })

// Sized is anything with image dimensions, e.g. [pixgrid.Grid] and rle.Sequence.
type Sized interface {
	Width() int
	Height() int
}

// DrawColour draws any 24-bit colour.
func DrawColour(t *rapid.T, label string) colour.Colour {
	t.Helper()
	return colour.Colour{
		R: rapid.Byte().Draw(t, label+" red"),
		G: rapid.Byte().Draw(t, label+" green"),
		B: rapid.Byte().Draw(t, label+" blue"),
	}
}

// DrawPalette draws between 1 and 4 distinct colours. Grids drawn from a small palette have long runs which
// is far more interesting for a run-length encoding than uniformly random pixels.
func DrawPalette(t *rapid.T) []colour.Colour {
	t.Helper()
	size := rapid.IntRange(1, 4).Draw(t, "palette size")
	palette := make([]colour.Colour, 0, size)
	seen := map[colour.Colour]struct{}{}
	for i := range size {
		c := DrawColour(t, fmt.Sprintf("palette %d", i))
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		palette = append(palette, c)
	}
	return palette
}

// DrawGrid draws a grid of at least 1x1 and at most [maxSide] in each dimension.
func DrawGrid(t *rapid.T, maxSide int) *pixgrid.Grid {
	t.Helper()
	var (
		width   = rapid.IntRange(1, maxSide).Draw(t, "width")
		height  = rapid.IntRange(1, maxSide).Draw(t, "height")
		palette = DrawPalette(t)
	)
	return DrawGridOf(t, width, height, palette)
}

// DrawGridOf draws a [width] by [height] grid using only colours from [palette].
func DrawGridOf(t *rapid.T, width, height int, palette []colour.Colour) *pixgrid.Grid {
	t.Helper()
	g := pixgrid.New(width, height)
	pick := rapid.SampledFrom(palette)
	for y := range height {
		for x := range width {
			err := g.Set(x, y, pick.Draw(t, fmt.Sprintf("pixel (%d,%d)", x, y)))
			if err != nil {
				t.Fatalf("DrawGridOf: %s", err)
			}
		}
	}
	return g
}

// DrawPixel draws a coordinate within [g].
func DrawPixel(t *rapid.T, g Sized, label string) (int, int) {
	t.Helper()
	x := rapid.IntRange(0, g.Width()-1).Draw(t, label+" x")
	y := rapid.IntRange(0, g.Height()-1).Draw(t, label+" y")
	return x, y
}
