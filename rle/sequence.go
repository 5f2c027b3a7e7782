// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

// Package rle is a run-length encoding of an image which stays compressed while single pixels are edited.
//
// A [Sequence] is built once, either from dimensions ([New]), from explicit runs ([FromRuns]) or from a raw
// image ([Encode]). It is then mutated pixel by pixel with [Sequence.SetPixel], which splits and merges only
// the runs around the edited pixel, and finally converted back with [Decode].
package rle

import (
	"iter"
	"slices"
	"strconv"

	"github.com/Lexer747/runpix/colour"
	"github.com/Lexer747/runpix/utils/check"
	"github.com/Lexer747/runpix/utils/errors"
	"github.com/Lexer747/runpix/utils/numeric"
	"github.com/Lexer747/runpix/utils/sliceutils"
)

// Sequence is the ordered list of runs of an image, after every exported method returns:
//   - the runs cover exactly Width*Height pixels.
//   - no run is empty.
//   - no two neighbouring runs have the same colour.
//
// A Sequence has a single owner, it performs no locking. Callers sharing one between goroutines must hold an
// exclusive lock for the duration of every call. The zero value is an empty 0x0 image.
type Sequence struct {
	width, height int
	runs          []Run

	// cursor is the sequence's own [Locator], shared by [Sequence.SetPixel] and [Sequence.ColourAt] so that
	// edits in scan order never search from the first run.
	cursor *Locator
	// generation is bumped by every mutation, any [Locator] from an older generation is stale.
	generation uint64
	strict     bool
}

// New is a black image of [width] by [height] which is a single run, or no runs if the area is zero.
func New(width, height int) *Sequence {
	check.Checkf(width >= 0 && height >= 0, "negative dimensions %dx%d", width, height)
	check.Checkf(numeric.AreaFits(width, height), "%dx%d has more pixels than an int can count", width, height)
	s := &Sequence{width: width, height: height}
	if area := numeric.Area(width, height); area > 0 {
		s.runs = []Run{{Colour: colour.Black, Length: area}}
	}
	return s
}

// FromRuns builds run i from colours[i] and lengths[i]. The input must already be a valid encoding: equal
// slice lengths, no empty runs, no neighbouring duplicate colours and lengths summing to width*height.
// Anything else is an error, nothing is merged or repaired.
func FromRuns(width, height int, colours []colour.Colour, lengths []int) (*Sequence, error) {
	if width < 0 || height < 0 {
		return nil, errors.Errorf("negative dimensions %dx%d", width, height)
	}
	if !numeric.AreaFits(width, height) {
		return nil, errors.WrapErr(ErrInvariant, errors.Errorf("a %dx%d image has more pixels than an int can count", width, height))
	}
	if len(colours) != len(lengths) {
		return nil, errors.Errorf("got %d colours but %d lengths", len(colours), len(lengths))
	}
	s := &Sequence{width: width, height: height, runs: make([]Run, len(colours))}
	for i := range colours {
		s.runs[i] = Run{Colour: colours[i], Length: lengths[i]}
	}
	if err := s.Check(); err != nil {
		return nil, errors.Wrapf(err, "invalid runs for a %dx%d image", width, height)
	}
	return s, nil
}

func (s *Sequence) Width() int  { return s.width }
func (s *Sequence) Height() int { return s.height }

// Pixels is Width*Height.
func (s *Sequence) Pixels() int { return numeric.Area(s.width, s.height) }

func (s *Sequence) RunCount() int { return len(s.runs) }

// TotalPixels sums every run, for a valid sequence this is always [Sequence.Pixels].
func (s *Sequence) TotalPixels() int {
	return sliceutils.Fold(s.runs, 0, func(r Run, total int) int { return total + r.Length })
}

// Run returns the [i]th run, panicking if there is no such run.
func (s *Sequence) Run(i int) Run {
	check.Checkf(i >= 0 && i < len(s.runs), "run %d out of range of %d runs", i, len(s.runs))
	return s.runs[i]
}

// Runs iterates every run in order. Mutating the sequence during the iteration will panic.
func (s *Sequence) Runs() iter.Seq[Run] {
	return s.Locator().All()
}

// SetStrict controls whether [Sequence.SetPixel] validates the whole sequence after every edit, panicking
// if the edit broke the encoding. Strict mode is O(runs) per edit and intended for tests and debugging.
func (s *Sequence) SetStrict(strict bool) {
	s.strict = strict
}

func (s *Sequence) Strict() bool { return s.strict }

// ColourAt is the colour of pixel (x, y), which must be inside the image.
func (s *Sequence) ColourAt(x, y int) colour.Colour {
	run, _ := s.locate(s.linear(x, y))
	return run.Colour
}

// Cursor is a copy of the position the sequence last located, after [Sequence.SetPixel] it is always the
// run which now contains the edited pixel.
func (s *Sequence) Cursor() *Locator {
	c := *s.ensureCursor()
	return &c
}

func (s *Sequence) Clone() *Sequence {
	return &Sequence{
		width:  s.width,
		height: s.height,
		runs:   slices.Clone(s.runs),
		strict: s.strict,
	}
}

// Equal reports if both sequences have the same dimensions and runs.
func (s *Sequence) Equal(other *Sequence) bool {
	return s.width == other.width && s.height == other.height && slices.Equal(s.runs, other.runs)
}

// String is in the form "(width,height,[length:r_g_b ...])".
func (s *Sequence) String() string {
	return "(" + strconv.Itoa(s.width) + "," + strconv.Itoa(s.height) + ",[" +
		sliceutils.JoinFunc(s.runs, Run.String, " ") + "])"
}

func (s *Sequence) linear(x, y int) int {
	check.Checkf(numeric.InRange(x, 0, s.width-1) && numeric.InRange(y, 0, s.height-1),
		"(%d,%d) is outside of %dx%d", x, y, s.width, s.height)
	return y*s.width + x
}

func (s *Sequence) ensureCursor() *Locator {
	if s.cursor == nil {
		s.cursor = s.Locator()
	}
	return s.cursor
}

// locate moves the sequence's cursor to the run containing [linear], only rewinding to the first run when
// [linear] is behind the cursor.
func (s *Sequence) locate(linear int) (Run, int) {
	c := s.ensureCursor()
	if c.stale() || linear < c.start {
		c.Reset()
	}
	run, offset, err := c.Seek(linear)
	check.NoErrf(err, "locating pixel %d in %s", linear, s)
	return run, offset
}
