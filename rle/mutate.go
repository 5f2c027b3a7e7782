// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package rle

import (
	"slices"

	"github.com/Lexer747/runpix/colour"
	"github.com/Lexer747/runpix/utils/check"
)

// SetPixel changes the colour of pixel (x, y), which must be inside the image, keeping the encoding as
// compressed as possible.
//
// The run containing the pixel is split into at most three runs: the pixels before it, the pixel itself
// in the new colour, and the pixels after it. The new single pixel run is then merged with whichever
// neighbours share its colour. So an edit changes the run count by at most two in either direction and only
// ever touches the edited run and its two neighbours.
//
// Every [Locator] of the sequence is stale afterwards, except for the sequence's own cursor which is left on
// the run now containing (x, y).
func (s *Sequence) SetPixel(x, y int, c colour.Colour) {
	linear := s.linear(x, y)
	run, offset := s.locate(linear)
	if run.Colour == c {
		return
	}
	index := s.cursor.index

	replacement := make([]Run, 0, 3)
	if offset > 0 {
		replacement = append(replacement, Run{Colour: run.Colour, Length: offset})
	}
	middle := index + len(replacement)
	replacement = append(replacement, Run{Colour: c, Length: 1})
	if after := run.Length - offset - 1; after > 0 {
		replacement = append(replacement, Run{Colour: run.Colour, Length: after})
	}
	s.runs = slices.Replace(s.runs, index, index+1, replacement...)

	middleStart := linear
	if middle > 0 && s.runs[middle-1].Colour == c {
		middleStart -= s.runs[middle-1].Length
		s.runs[middle-1].Length += s.runs[middle].Length
		s.runs = slices.Delete(s.runs, middle, middle+1)
		middle--
	}
	if middle+1 < len(s.runs) && s.runs[middle+1].Colour == c {
		s.runs[middle].Length += s.runs[middle+1].Length
		s.runs = slices.Delete(s.runs, middle+1, middle+2)
	}

	s.generation++
	s.cursor.resync(middle, middleStart)

	if s.strict {
		check.NoErrf(s.Check(), "SetPixel(%d, %d, %s) broke the encoding", x, y, c)
	}
}
