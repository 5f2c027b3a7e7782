// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

// Package pixgrid is the plain, uncompressed image: a width by height array of [colour.Colour] stored in
// row-major order.
package pixgrid

import (
	"slices"
	"strconv"
	"strings"

	"github.com/Lexer747/runpix/colour"
	"github.com/Lexer747/runpix/utils/check"
	"github.com/Lexer747/runpix/utils/errors"
	"github.com/Lexer747/runpix/utils/numeric"
	"github.com/Lexer747/runpix/utils/sliceutils"
)

const ErrOutOfBounds = errors.Sentinel("pixel out of bounds")

// Grid is a raw image, the zero value is a valid 0x0 image. Every pixel of a new grid is [colour.Black].
type Grid struct {
	width, height int
	pixels        []colour.Colour
}

func New(width, height int) *Grid {
	check.Checkf(width >= 0 && height >= 0, "negative grid dimensions %dx%d", width, height)
	check.Checkf(numeric.AreaFits(width, height), "%dx%d has more pixels than an int can count", width, height)
	return &Grid{
		width:  width,
		height: height,
		pixels: make([]colour.Colour, numeric.Area(width, height)),
	}
}

// FromGrey builds a grey scale grid from [rows], where rows[y][x] is the intensity of pixel (x, y). All rows
// must be the same length.
func FromGrey(rows [][]uint8) *Grid {
	if len(rows) == 0 {
		return New(0, 0)
	}
	g := New(len(rows[0]), len(rows))
	for y, row := range rows {
		check.Checkf(len(row) == g.width, "row %d has %d pixels, expected %d", y, len(row), g.width)
		for x, intensity := range row {
			g.pixels[g.linear(x, y)] = colour.Grey(intensity)
		}
	}
	return g
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

func (g *Grid) InBounds(x, y int) bool {
	return numeric.InRange(x, 0, g.width-1) && numeric.InRange(y, 0, g.height-1)
}

// ColourAt panics if (x, y) is not [Grid.InBounds].
func (g *Grid) ColourAt(x, y int) colour.Colour {
	check.Checkf(g.InBounds(x, y), "(%d,%d) is outside of %dx%d", x, y, g.width, g.height)
	return g.pixels[g.linear(x, y)]
}

func (g *Grid) Set(x, y int, c colour.Colour) error {
	if !g.InBounds(x, y) {
		return errors.Wrapf(ErrOutOfBounds, "(%d,%d) is outside of %dx%d", x, y, g.width, g.height)
	}
	g.pixels[g.linear(x, y)] = c
	return nil
}

// Fill writes [c] to the [n] pixels starting at the row-major index [start].
func (g *Grid) Fill(start, n int, c colour.Colour) {
	check.Checkf(start >= 0 && n >= 0 && start+n <= len(g.pixels),
		"fill of %d pixels from %d overflows %d pixels", n, start, len(g.pixels))
	for i := range n {
		g.pixels[start+i] = c
	}
}

// Pixels is a copy of every pixel in row-major order.
func (g *Grid) Pixels() []colour.Colour {
	return slices.Clone(g.pixels)
}

// Rows is a copy of the grid split into its rows, rows[y][x] is pixel (x, y).
func (g *Grid) Rows() [][]colour.Colour {
	if g.width == 0 {
		return [][]colour.Colour{}
	}
	return sliceutils.SplitN(g.Pixels(), g.width)
}

func (g *Grid) Clone() *Grid {
	return &Grid{width: g.width, height: g.height, pixels: slices.Clone(g.pixels)}
}

func (g *Grid) Equal(other *Grid) bool {
	return g.width == other.width && g.height == other.height && slices.Equal(g.pixels, other.pixels)
}

// String consists of the dimensions and the four corners and the centre of the grid.
func (g *Grid) String() string {
	var b strings.Builder
	b.WriteString("Width: " + strconv.Itoa(g.width) + "\n")
	b.WriteString("Height: " + strconv.Itoa(g.height) + "\n")
	if len(g.pixels) == 0 {
		return b.String()
	}
	corner := func(name string, x, y int) {
		b.WriteString(name + ": " + g.ColourAt(x, y).String() + "\n")
	}
	corner("NW", 0, 0)
	corner("NE", g.width-1, 0)
	corner("SE", g.width-1, g.height-1)
	corner("SW", 0, g.height-1)
	corner("Center", g.width/2, g.height/2)
	return b.String()
}

func (g *Grid) linear(x, y int) int {
	return y*g.width + x
}
