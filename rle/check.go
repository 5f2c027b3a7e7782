// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package rle

import (
	"github.com/Lexer747/runpix/colour"
	"github.com/Lexer747/runpix/utils/errors"
	"github.com/Lexer747/runpix/utils/numeric"
)

// ErrInvariant is wrapped by every violation [Sequence.Check] reports.
const ErrInvariant = errors.Sentinel("run-length invariant violated")

// Check walks every run once and reports, as a single joined error, all of:
//   - an empty sequence for an image with pixels.
//   - runs which are empty.
//   - neighbouring runs with the same colour.
//   - runs covering a different number of pixels than the image has, counting only non-empty runs.
//   - dimensions or run lengths too large to count in an int.
//
// A nil result means the sequence is a valid encoding. Check is for tests and debugging, a correct
// [Sequence] never fails it.
func (s *Sequence) Check() error {
	var errs []error
	violation := func(format string, args ...any) {
		errs = append(errs, errors.WrapErr(ErrInvariant, errors.Errorf(format, args...)))
	}

	if !numeric.AreaFits(s.width, s.height) {
		violation("a %dx%d image has more pixels than an int can count", s.width, s.height)
		return errors.Join(errs...)
	}
	if s.Pixels() > 0 && len(s.runs) == 0 {
		violation("no runs for a %dx%d image", s.width, s.height)
	}
	total := 0
	overflowed := false
	var previous colour.Colour
	for i, run := range s.runs {
		if run.Length < 1 {
			violation("run %d has length %d", i, run.Length)
		} else if overflowed || !numeric.AddFits(total, run.Length) {
			overflowed = true
		} else {
			total += run.Length
		}
		if i > 0 && run.Colour == previous {
			violation("runs %d and %d are both %s", i-1, i, run.Colour)
		}
		previous = run.Colour
	}
	if overflowed {
		violation("runs cover more pixels than an int can count, a %dx%d image has %d", s.width, s.height, s.Pixels())
	} else if total != s.Pixels() {
		violation("runs cover %d pixels, a %dx%d image has %d", total, s.width, s.height, s.Pixels())
	}
	return errors.Join(errs...)
}
