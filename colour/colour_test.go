// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025-2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package colour_test

import (
	"image/color"
	"testing"

	"gotest.tools/v3/assert"
	"pgregory.net/rapid"

	"github.com/Lexer747/runpix/colour"
	"github.com/Lexer747/runpix/utils/errors"
)

func TestParseCSS(t *testing.T) {
	t.Parallel()
	happy := []CSSTest{
		{input: "#1e750b", Expected: colour.Colour{R: 30, G: 117, B: 11}},
		{input: "#00FF00", Expected: colour.Colour{R: 0, G: 255, B: 0}},
		{input: "#FF0000", Expected: colour.Colour{R: 255, G: 0, B: 0}},
		{input: "#0000FF", Expected: colour.Colour{R: 0, G: 0, B: 255}},
		{input: "2a2a2a", Expected: colour.Grey(42)},
	}
	for _, tc := range happy {
		t.Run(tc.input, tc.Run)
	}
}

func TestParseCSS_Errors(t *testing.T) {
	t.Parallel()
	sad := []CSSTest{
		{input: "#1e750b000", Err: errors.Errorf(`Wrong number of digits for colour "#1e750b000", should be 6 hex digits`)},
		{input: "###112233", Err: errors.Errorf(`Wrong number of digits for colour "###112233", should be 6 hex digits`)},
		{input: "#GG0000", Err: errors.Errorf(`Couldn't parse RGB values for "#GG0000" caused by: strconv.ParseInt: parsing "GG": invalid syntax`)},
		{input: "#-1-2-3", Err: errors.Errorf(`Couldn't parse RGB values for "#-1-2-3" caused by: red component out of range -1, should be within 0 and 255
green component out of range -2, should be within 0 and 255
blue component out of range -3, should be within 0 and 255`)},
	}
	for _, tc := range sad {
		t.Run(tc.input, tc.Run)
	}
}

type CSSTest struct {
	Err      error
	input    string
	Expected colour.Colour
}

func (tc CSSTest) Run(t *testing.T) {
	t.Parallel()
	c, err := colour.ParseCSS(tc.input)
	if tc.Err == nil {
		assert.NilError(t, err)
	} else {
		assert.Error(t, err, tc.Err.Error())
	}
	assert.Equal(t, tc.Expected, c)
}

func TestCSS_Property(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		c := colour.Colour{
			R: rapid.Byte().Draw(t, "red"),
			G: rapid.Byte().Draw(t, "green"),
			B: rapid.Byte().Draw(t, "blue"),
		}
		parsed, err := colour.ParseCSS(c.CSS())
		if err != nil {
			t.Fatalf("ParseCSS(%q) failed: %s", c.CSS(), err)
		}
		if parsed != c {
			t.Fatalf("ParseCSS(%q) = %s, expected %s", c.CSS(), parsed, c)
		}
		if colour.FromColor(c) != c {
			t.Fatalf("FromColor() did not round trip %s", c)
		}
	})
}

func TestFromColor(t *testing.T) {
	t.Parallel()
	assert.Equal(t, colour.Grey(128), colour.FromColor(color.Gray{Y: 128}))
	assert.Equal(t, colour.Colour{R: 1, G: 2, B: 3}, colour.FromColor(color.NRGBA{R: 1, G: 2, B: 3, A: 0xff}))
}

func TestFromInts(t *testing.T) {
	t.Parallel()
	c, err := colour.FromInts(0, 128, 255)
	assert.NilError(t, err)
	assert.Equal(t, colour.Colour{R: 0, G: 128, B: 255}, c)
	_, err = colour.FromInts(256, 0, 0)
	assert.Error(t, err, "red component out of range 256, should be within 0 and 255")
}

func TestString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "42_42_42", colour.Grey(42).String())
	assert.Equal(t, "#2a2a2a", colour.Grey(42).CSS())
	assert.Assert(t, colour.Grey(42).IsGrey())
	assert.Equal(t, 0.0, colour.Black.Luminance())
	assert.Assert(t, colour.White.Luminance() > 0.99)
}

func TestToGrey(t *testing.T) {
	t.Parallel()
	assert.Equal(t, colour.White, colour.White.ToGrey())
	assert.Equal(t, colour.Grey(7), colour.Grey(7).ToGrey())
	assert.Equal(t, colour.Grey(76), colour.Colour{R: 255}.ToGrey())
	assert.Equal(t, colour.Grey(150), colour.Colour{G: 255}.ToGrey())
}
