// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package editscript_test

import (
	"os"
	"path/filepath"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
	"pgregory.net/rapid"

	"github.com/Lexer747/runpix/colour"
	"github.com/Lexer747/runpix/editscript"
	"github.com/Lexer747/runpix/rle"
	"github.com/Lexer747/runpix/utils/th"
)

const threeForms = `
edits:
  - {x: 0, y: 0, colour: "#ff8800"}
  - {x: 1, y: 0, grey: 128}
  - {x: 2, y: 1, rgb: [1, 2, 3]}
`

func TestParse(t *testing.T) {
	t.Parallel()
	script, err := editscript.Parse([]byte(threeForms))
	assert.NilError(t, err)
	assert.Assert(t, is.Len(script.Edits, 3))

	expected := []colour.Colour{{R: 0xff, G: 0x88}, colour.Grey(128), {R: 1, G: 2, B: 3}}
	for i, e := range script.Edits {
		c, err := e.Resolve()
		assert.NilError(t, err)
		assert.Equal(t, expected[i], c)
	}
}

func TestApply(t *testing.T) {
	t.Parallel()
	script, err := editscript.Parse([]byte(threeForms))
	assert.NilError(t, err)
	s := rle.New(3, 2)
	changed, err := script.Apply(s)
	assert.NilError(t, err)
	assert.Equal(t, 3, changed)
	assert.NilError(t, s.Check())
	assert.Equal(t, s.String(), "(3,2,[1:255_136_0 1:128_128_128 3:0_0_0 1:1_2_3])")

	// Applying twice is idempotent.
	changed, err = script.Apply(s)
	assert.NilError(t, err)
	assert.Equal(t, 0, changed)
}

type validateTest struct {
	Name     string
	Script   string
	Expected []string
}

func (tc validateTest) Run(t *testing.T) {
	t.Helper()
	t.Run(tc.Name, func(t *testing.T) {
		t.Parallel()
		script, err := editscript.Parse([]byte(tc.Script))
		assert.NilError(t, err)
		s := rle.New(2, 2)
		before := s.Clone()
		_, err = script.Apply(s)
		assert.Assert(t, err != nil)
		for _, msg := range tc.Expected {
			assert.ErrorContains(t, err, msg)
		}
		assert.Assert(t, s.Equal(before), "a rejected script must not edit the image")
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()
	tests := []validateTest{
		{
			Name:     "out of bounds",
			Script:   "edits: [{x: 0, y: 0, grey: 1}, {x: 2, y: 0, grey: 1}, {x: 0, y: -1, grey: 1}]",
			Expected: []string{"edits[1] (2, 0) is outside a 2x2 image", "edits[2] (0, -1) is outside a 2x2 image"},
		},
		{
			Name:     "no colour",
			Script:   "edits: [{x: 0, y: 0}]",
			Expected: []string{"edits[0] caused by: exactly one of colour, grey or rgb is required, got 0"},
		},
		{
			Name:     "two colours",
			Script:   `edits: [{x: 0, y: 0, grey: 3, colour: "#000000"}]`,
			Expected: []string{"exactly one of colour, grey or rgb is required, got 2"},
		},
		{
			Name:     "grey range",
			Script:   "edits: [{x: 1, y: 1, grey: 256}]",
			Expected: []string{"grey out of range 256, should be within 0 and 255"},
		},
		{
			Name:   "rgb range",
			Script: "edits: [{x: 1, y: 1, rgb: [-1, 0, 300]}]",
			Expected: []string{
				"red component out of range -1, should be within 0 and 255",
				"blue component out of range 300, should be within 0 and 255",
			},
		},
		{
			Name:     "rgb arity",
			Script:   "edits: [{x: 1, y: 1, rgb: [1, 2]}]",
			Expected: []string{"rgb needs 3 components got 2"},
		},
		{
			Name:     "bad css",
			Script:   `edits: [{x: 1, y: 1, colour: "#12"}]`,
			Expected: []string{`Wrong number of digits for colour "#12", should be 6 hex digits`},
		},
	}
	for _, test := range tests {
		test.Run(t)
	}
}

func TestParseRejectsBadYAML(t *testing.T) {
	t.Parallel()
	_, err := editscript.Parse([]byte("edits: {x: [1"))
	assert.ErrorContains(t, err, "decode edit script")
}

func TestLoad(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "edits.yaml")
	assert.NilError(t, os.WriteFile(path, []byte(threeForms), 0o600))
	script, err := editscript.Load(path)
	assert.NilError(t, err)
	assert.Assert(t, is.Len(script.Edits, 3))

	_, err = editscript.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "couldn't read edit script")
}

func TestApplyMatchesGrid_Property(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		grid := th.DrawGrid(t, 8)
		s := rle.Encode(grid)
		var script editscript.Script
		for range rapid.IntRange(0, 20).Draw(t, "edits") {
			x, y := th.DrawPixel(t, grid, "pixel")
			c := th.DrawColour(t, "colour")
			script.Edits = append(script.Edits, editscript.Edit{X: x, Y: y, RGB: []int{int(c.R), int(c.G), int(c.B)}})
			if err := grid.Set(x, y, c); err != nil {
				t.Fatalf("Set(%d, %d) failed: %s", x, y, err)
			}
		}
		if _, err := script.Apply(s); err != nil {
			t.Fatalf("Apply() failed: %s", err)
		}
		if err := s.Check(); err != nil {
			t.Fatalf("Check() failed: %s", err)
		}
		if !rle.Encode(grid).Equal(s) {
			t.Fatalf("script result differs from editing the grid:\n%s\n%s", rle.Encode(grid), s)
		}
	})
}
