// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package rle

import (
	"iter"

	"github.com/Lexer747/runpix/utils/check"
	"github.com/Lexer747/runpix/utils/errors"
)

const (
	// ErrExhausted is returned when a [Locator] is asked to move past the last run.
	ErrExhausted = errors.Sentinel("no more runs")
	// ErrSeekBackwards is returned when [Locator.Seek] is given a pixel before the current run.
	ErrSeekBackwards = errors.Sentinel("locator only seeks forwards")
	// ErrStale is returned when the [Sequence] was mutated since the [Locator] was last reset.
	ErrStale = errors.Sentinel("locator is stale, the sequence was mutated")
)

// Locator is a read only, forward only position in a [Sequence]: the current run and the row-major pixel
// index at which that run begins. It never owns or changes the runs. Any mutation of the sequence makes the
// locator stale, [Locator.Reset] makes it usable again.
//
// Construct with [Sequence.Locator], the zero value is not usable.
type Locator struct {
	seq        *Sequence
	index      int
	start      int
	generation uint64
}

// Locator is positioned at the first run of [s].
func (s *Sequence) Locator() *Locator {
	return &Locator{seq: s, generation: s.generation}
}

// Reset rewinds to the first run and re-synchronises a stale locator.
func (l *Locator) Reset() {
	l.index = 0
	l.start = 0
	l.generation = l.seq.generation
}

// Index is the position of the current run in the sequence.
func (l *Locator) Index() int { return l.index }

// Start is the row-major pixel index of the first pixel of the current run.
func (l *Locator) Start() int { return l.start }

// HasNext reports if [Locator.Advance] would succeed.
func (l *Locator) HasNext() bool {
	check.Check(!l.stale(), ErrStale.Error())
	return l.index+1 < len(l.seq.runs)
}

// Current is the run the locator is on, it panics for an empty sequence or a stale locator.
func (l *Locator) Current() Run {
	check.Check(!l.stale(), ErrStale.Error())
	check.Check(l.index < len(l.seq.runs), "Current() of an empty sequence")
	return l.seq.runs[l.index]
}

// Advance moves onto the next run, returning [ErrExhausted] if already on the last run.
func (l *Locator) Advance() error {
	if l.stale() {
		return ErrStale
	}
	if l.index+1 >= len(l.seq.runs) {
		return errors.Wrapf(ErrExhausted, "cannot advance past run %d", l.index)
	}
	l.start += l.seq.runs[l.index].Length
	l.index++
	return nil
}

// Seek advances until the current run contains the pixel at row-major index [linear], returning that run
// and the offset of [linear] within it. Seek never moves backwards: a [linear] before the current run is
// [ErrSeekBackwards] and one past the end of the image is [ErrExhausted].
func (l *Locator) Seek(linear int) (Run, int, error) {
	if l.stale() {
		return Run{}, 0, ErrStale
	}
	if linear < l.start {
		return Run{}, 0, errors.Wrapf(ErrSeekBackwards, "pixel %d is before the current run at %d", linear, l.start)
	}
	if linear >= l.seq.Pixels() {
		return Run{}, 0, errors.Wrapf(ErrExhausted, "pixel %d is past the end of %d pixels", linear, l.seq.Pixels())
	}
	for linear >= l.start+l.seq.runs[l.index].Length {
		if err := l.Advance(); err != nil {
			return Run{}, 0, err
		}
	}
	return l.seq.runs[l.index], linear - l.start, nil
}

// All resets the locator then yields every run in order.
func (l *Locator) All() iter.Seq[Run] {
	return func(yield func(Run) bool) {
		l.Reset()
		if len(l.seq.runs) == 0 {
			return
		}
		for {
			if !yield(l.Current()) {
				return
			}
			if !l.HasNext() {
				return
			}
			check.NoErr(l.Advance(), "advancing while iterating runs")
		}
	}
}

func (l *Locator) stale() bool {
	return l.generation != l.seq.generation
}

// resync points the locator at run [index] which begins at pixel [start] in the current generation.
func (l *Locator) resync(index, start int) {
	l.index = index
	l.start = start
	l.generation = l.seq.generation
}
