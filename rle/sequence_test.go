// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package rle_test

import (
	"math"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/Lexer747/runpix/colour"
	"github.com/Lexer747/runpix/rle"
)

func TestNew(t *testing.T) {
	t.Parallel()
	s := rle.New(4, 3)
	assert.Equal(t, 4, s.Width())
	assert.Equal(t, 3, s.Height())
	assert.Equal(t, 12, s.Pixels())
	assert.Equal(t, 12, s.TotalPixels())
	assert.Equal(t, 1, s.RunCount())
	assertRuns(t, []rle.Run{grey(0, 12)}, s)
	assert.Equal(t, "(4,3,[12:0_0_0])", s.String())
}

func TestNewZeroArea(t *testing.T) {
	t.Parallel()
	s := rle.New(0, 7)
	assert.Equal(t, 0, s.RunCount())
	assert.Equal(t, 0, s.TotalPixels())
	assert.NilError(t, s.Check())
	assert.Equal(t, "(0,7,[])", s.String())

	var zero rle.Sequence
	assert.NilError(t, zero.Check())
	assert.Equal(t, 0, len(runsOf(&zero)))
}

func TestNewNegativePanics(t *testing.T) {
	t.Parallel()
	assert.Assert(t, is.Panics(func() { rle.New(-1, 2) }))
	assert.Assert(t, is.Panics(func() { rle.New(1<<62+1, 4) }))
}

func TestFromRuns(t *testing.T) {
	t.Parallel()
	s, err := rle.FromRuns(3, 2,
		[]colour.Colour{colour.Grey(0), colour.Grey(100), colour.Grey(0), colour.Grey(100)},
		[]int{1, 2, 2, 1},
	)
	assert.NilError(t, err)
	assertRuns(t, []rle.Run{grey(0, 1), grey(100, 2), grey(0, 2), grey(100, 1)}, s)
	assert.Equal(t, grey(100, 2), s.Run(1))
	assert.Assert(t, is.Panics(func() { s.Run(4) }))
}

func TestFromRuns_Errors(t *testing.T) {
	t.Parallel()
	sad := []fromRunsTest{
		{
			Name: "mismatched slices", Width: 2, Height: 1,
			Colours: []colour.Colour{colour.Black}, Lengths: []int{1, 1},
			Err: "got 1 colours but 2 lengths",
		},
		{
			Name: "negative dimensions", Width: -2, Height: 1,
			Err: "negative dimensions -2x1",
		},
		{
			Name: "sum too small", Width: 2, Height: 2,
			Colours: []colour.Colour{colour.Black, colour.White}, Lengths: []int{1, 1},
			Err:     "runs cover 2 pixels, a 2x2 image has 4",
			IsCheck: true,
		},
		{
			Name: "empty run", Width: 2, Height: 1,
			Colours: []colour.Colour{colour.Black, colour.White, colour.Black}, Lengths: []int{1, 0, 1},
			Err:     "run 1 has length 0",
			IsCheck: true,
		},
		{
			Name: "neighbouring duplicates", Width: 2, Height: 1,
			Colours: []colour.Colour{colour.White, colour.White}, Lengths: []int{1, 1},
			Err:     "runs 0 and 1 are both 255_255_255",
			IsCheck: true,
		},
		{
			Name: "area overflows", Width: 1<<62 + 1, Height: 4,
			Colours: []colour.Colour{colour.Black}, Lengths: []int{4},
			Err:     "a 4611686018427387905x4 image has more pixels than an int can count",
			IsCheck: true,
		},
		{
			Name: "lengths wrap around", Width: 2, Height: 2,
			Colours: []colour.Colour{colour.Black, colour.White, colour.Black}, Lengths: []int{math.MaxInt, math.MaxInt, 6},
			Err:     "runs cover more pixels than an int can count",
			IsCheck: true,
		},
		{
			Name: "no runs", Width: 2, Height: 1,
			Colours: []colour.Colour{}, Lengths: []int{},
			Err:     "no runs for a 2x1 image",
			IsCheck: true,
		},
	}
	for _, tc := range sad {
		t.Run(tc.Name, tc.Run)
	}
}

type fromRunsTest struct {
	Name          string
	Width, Height int
	Colours       []colour.Colour
	Lengths       []int
	Err           string
	IsCheck       bool
}

func (tc fromRunsTest) Run(t *testing.T) {
	t.Parallel()
	s, err := rle.FromRuns(tc.Width, tc.Height, tc.Colours, tc.Lengths)
	assert.Assert(t, s == nil)
	assert.ErrorContains(t, err, tc.Err)
	assert.Equal(t, tc.IsCheck, errorsIs(err, rle.ErrInvariant))
}

func TestCloneAndEqual(t *testing.T) {
	t.Parallel()
	s := rle.Encode(fromColumns([][]uint8{{1, 1}, {2, 2}}))
	c := s.Clone()
	assert.Assert(t, s.Equal(c))
	c.SetPixel(0, 0, colour.Grey(2))
	assert.Assert(t, !s.Equal(c))
	assert.Equal(t, "(2,2,[1:1_1_1 1:2_2_2 1:1_1_1 1:2_2_2])", s.String())
	assert.Equal(t, "(2,2,[2:2_2_2 1:1_1_1 1:2_2_2])", c.String())
	assert.Assert(t, !s.Equal(rle.New(4, 1)))
}

func TestColourAt(t *testing.T) {
	t.Parallel()
	g := fromColumns([][]uint8{{0, 3, 6}, {1, 4, 7}, {2, 5, 8}})
	s := rle.Encode(g)
	// Scan backwards to force the cursor to rewind every time.
	for y := g.Height() - 1; y >= 0; y-- {
		for x := g.Width() - 1; x >= 0; x-- {
			assert.Check(t, is.Equal(g.ColourAt(x, y), s.ColourAt(x, y)), "(%d,%d)", x, y)
		}
	}
	assert.Assert(t, is.Panics(func() { s.ColourAt(3, 0) }))
}
