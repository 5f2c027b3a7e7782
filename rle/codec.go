// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package rle

import (
	"github.com/Lexer747/runpix/colour"
	"github.com/Lexer747/runpix/pixgrid"
	"github.com/Lexer747/runpix/utils/check"
)

// Grid is a raw image which can be encoded, [pixgrid.Grid] is the usual implementation.
type Grid interface {
	Width() int
	Height() int
	ColourAt(x, y int) colour.Colour
}

var _ Grid = (*pixgrid.Grid)(nil)
var _ Grid = (*Sequence)(nil)

// Encode scans [g] once in row-major order, closing a run every time the colour changes.
func Encode(g Grid) *Sequence {
	s := &Sequence{width: g.Width(), height: g.Height()}
	if s.Pixels() == 0 {
		return s
	}
	acc := Run{Colour: g.ColourAt(0, 0)}
	for y := range s.height {
		for x := range s.width {
			c := g.ColourAt(x, y)
			if c == acc.Colour {
				acc.Length++
				continue
			}
			s.runs = append(s.runs, acc)
			acc = Run{Colour: c, Length: 1}
		}
	}
	s.runs = append(s.runs, acc)
	return s
}

// Decode expands every run back into a raw image. A sequence whose runs do not cover exactly its pixels is
// a programming error and panics, use [Sequence.Check] first on untrusted input.
func Decode(s *Sequence) *pixgrid.Grid {
	g := pixgrid.New(s.width, s.height)
	cursor := 0
	for run := range s.Runs() {
		check.Checkf(cursor+run.Length <= s.Pixels(), "runs overflow %d pixels at run %s", s.Pixels(), run)
		g.Fill(cursor, run.Length, run.Colour)
		cursor += run.Length
	}
	check.Checkf(cursor == s.Pixels(), "runs only cover %d of %d pixels", cursor, s.Pixels())
	return g
}
