// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package rle_test

import (
	"slices"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/Lexer747/runpix/colour"
	"github.com/Lexer747/runpix/pixgrid"
	"github.com/Lexer747/runpix/rle"
)

// linearised [0,100,100,0,0,100]
func scenarioTwo() *rle.Sequence {
	return rle.Encode(pixgrid.FromGrey([][]uint8{
		{0, 100, 100},
		{0, 0, 100},
	}))
}

func TestLocatorAdvance(t *testing.T) {
	t.Parallel()
	l := scenarioTwo().Locator()
	starts := []int{}
	visited := []rle.Run{}
	for {
		starts = append(starts, l.Start())
		visited = append(visited, l.Current())
		if !l.HasNext() {
			break
		}
		assert.NilError(t, l.Advance())
	}
	assert.DeepEqual(t, []int{0, 1, 3, 5}, starts)
	assert.DeepEqual(t, []rle.Run{grey(0, 1), grey(100, 2), grey(0, 2), grey(100, 1)}, visited)
	assert.Equal(t, 3, l.Index())

	err := l.Advance()
	assert.Assert(t, errorsIs(err, rle.ErrExhausted), "got %v", err)
	assert.Equal(t, 3, l.Index(), "a failed advance must not move")

	l.Reset()
	assert.Equal(t, 0, l.Index())
	assert.Equal(t, 0, l.Start())
	assert.Equal(t, grey(0, 1), l.Current())
}

func TestLocatorSeek(t *testing.T) {
	t.Parallel()
	l := scenarioTwo().Locator()

	run, offset, err := l.Seek(2)
	assert.NilError(t, err)
	assert.Equal(t, grey(100, 2), run)
	assert.Equal(t, 1, offset)

	run, offset, err = l.Seek(4)
	assert.NilError(t, err)
	assert.Equal(t, grey(0, 2), run)
	assert.Equal(t, 1, offset)
	assert.Equal(t, 3, l.Start())

	// Within the current run is still forwards enough.
	run, offset, err = l.Seek(3)
	assert.NilError(t, err)
	assert.Equal(t, grey(0, 2), run)
	assert.Equal(t, 0, offset)

	_, _, err = l.Seek(2)
	assert.Assert(t, errorsIs(err, rle.ErrSeekBackwards), "got %v", err)

	_, _, err = l.Seek(6)
	assert.Assert(t, errorsIs(err, rle.ErrExhausted), "got %v", err)

	run, offset, err = l.Seek(5)
	assert.NilError(t, err)
	assert.Equal(t, grey(100, 1), run)
	assert.Equal(t, 0, offset)
}

func TestLocatorEmpty(t *testing.T) {
	t.Parallel()
	l := rle.New(0, 0).Locator()
	assert.Assert(t, !l.HasNext())
	assert.Assert(t, errorsIs(l.Advance(), rle.ErrExhausted))
	_, _, err := l.Seek(0)
	assert.Assert(t, errorsIs(err, rle.ErrExhausted))
	assert.Assert(t, is.Panics(func() { l.Current() }))
}

func TestLocatorStaleAfterMutation(t *testing.T) {
	t.Parallel()
	s := scenarioTwo()
	l := s.Locator()
	_, _, err := l.Seek(4)
	assert.NilError(t, err)

	// Setting a pixel to the colour it already has is not a mutation.
	s.SetPixel(0, 0, colour.Grey(0))
	assert.NilError(t, l.Advance())

	s.SetPixel(0, 0, colour.Grey(100))
	assert.Assert(t, errorsIs(l.Advance(), rle.ErrStale))
	_, _, err = l.Seek(5)
	assert.Assert(t, errorsIs(err, rle.ErrStale))
	assert.Assert(t, is.Panics(func() { l.Current() }))
	assert.Assert(t, is.Panics(func() { l.HasNext() }))

	l.Reset()
	assert.Equal(t, grey(100, 3), l.Current())
	run, offset, err := l.Seek(4)
	assert.NilError(t, err)
	assert.Equal(t, grey(0, 2), run)
	assert.Equal(t, 1, offset)
}

func TestLocatorAllRestarts(t *testing.T) {
	t.Parallel()
	s := scenarioTwo()
	l := s.Locator()
	first := []rle.Run{}
	for run := range l.All() {
		first = append(first, run)
		if len(first) == 2 {
			break
		}
	}
	assert.DeepEqual(t, []rle.Run{grey(0, 1), grey(100, 2)}, first)
	assert.DeepEqual(t, runsOf(s), slices.Collect(l.All()))
	assert.Equal(t, 4, len(slices.Collect(l.All())))
}

func TestLocatorIsIndependentOfCursor(t *testing.T) {
	t.Parallel()
	s := scenarioTwo()
	l := s.Locator()
	_, _, err := l.Seek(5)
	assert.NilError(t, err)
	// Reading through the sequence moves only the sequence's own cursor.
	assert.Equal(t, colour.Grey(0), s.ColourAt(0, 0))
	assert.Equal(t, 5, l.Start())
	assert.Equal(t, 0, s.Cursor().Start())
}
