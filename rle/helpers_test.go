// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package rle_test

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gotest.tools/v3/assert"

	"github.com/Lexer747/runpix/colour"
	"github.com/Lexer747/runpix/pixgrid"
	"github.com/Lexer747/runpix/rle"
	"github.com/Lexer747/runpix/utils/errors"
)

var errorsIs = errors.Is

// grey is a run of [length] pixels of intensity [v].
func grey(v uint8, length int) rle.Run {
	return rle.Run{Colour: colour.Grey(v), Length: length}
}

func runsOf(s *rle.Sequence) []rle.Run {
	return slices.Collect(s.Runs())
}

func assertRuns(t *testing.T, expected []rle.Run, s *rle.Sequence) {
	t.Helper()
	if diff := cmp.Diff(expected, runsOf(s)); diff != "" {
		t.Errorf("runs mismatch (-expected +actual):\n%s", diff)
	}
	assert.NilError(t, s.Check())
}

// fromColumns mirrors how images are often written down in tests, columns[x][y] is pixel (x, y).
func fromColumns(columns [][]uint8) *pixgrid.Grid {
	g := pixgrid.New(len(columns), len(columns[0]))
	for x, column := range columns {
		for y, v := range column {
			if err := g.Set(x, y, colour.Grey(v)); err != nil {
				panic(err)
			}
		}
	}
	return g
}
