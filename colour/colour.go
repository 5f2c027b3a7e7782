// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025-2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

// Package colour is the 24-bit pixel colour shared by the raw grid and the run-length encoding.
package colour

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/Lexer747/runpix/utils/errors"
	"github.com/Lexer747/runpix/utils/numeric"
)

// Colour is three 8-bit channels, two colours are the same colour exactly when they are == to each other.
type Colour struct {
	R, G, B uint8
}

var (
	Black = Colour{}
	White = Colour{R: 0xff, G: 0xff, B: 0xff}
)

var _ color.Color = Colour{}

// Grey is a colour with all three channels set to [intensity].
func Grey(intensity uint8) Colour {
	return Colour{R: intensity, G: intensity, B: intensity}
}

// FromInts is the range checked way to build a colour from untyped values, every channel must be within 0
// and 255.
func FromInts(red, green, blue int) (Colour, error) {
	var err error
	if !numeric.InRange(red, 0, 255) {
		err = errors.Join(err, errors.Errorf("red component out of range %d, should be within 0 and 255", red))
	}
	if !numeric.InRange(green, 0, 255) {
		err = errors.Join(err, errors.Errorf("green component out of range %d, should be within 0 and 255", green))
	}
	if !numeric.InRange(blue, 0, 255) {
		err = errors.Join(err, errors.Errorf("blue component out of range %d, should be within 0 and 255", blue))
	}
	if err != nil {
		return Colour{}, err
	}
	// G115: These are not an integer overflow because we bounds check above ^
	return Colour{R: uint8(red), G: uint8(green), B: uint8(blue)}, nil //nolint:gosec
}

// FromColor converts any [color.Color] by dropping alpha (after un-premultiplying) and the low byte of each
// 16-bit channel.
func FromColor(c color.Color) Colour {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Colour{R: n.R, G: n.G, B: n.B}
}

// RGBA implements [color.Color], a [Colour] is always opaque.
func (c Colour) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

func (c Colour) IsGrey() bool {
	return c.R == c.G && c.G == c.B
}

// String is in the form "r_g_b", e.g. "42_42_42".
func (c Colour) String() string {
	return strconv.Itoa(int(c.R)) + "_" + strconv.Itoa(int(c.G)) + "_" + strconv.Itoa(int(c.B))
}

// CSS is the colour in the "#rrggbb" form accepted by [ParseCSS].
func (c Colour) CSS() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseCSS parses "#rrggbb", the '#' is optional.
func ParseCSS(s string) (Colour, error) {
	trimmed := strings.TrimPrefix(s, "#")
	if len(trimmed) != 6 {
		return Colour{}, errors.Errorf("Wrong number of digits for colour %q, should be 6 hex digits", s)
	}
	r, rerr := strconv.ParseInt(trimmed[0:2], 16, 16)
	g, gerr := strconv.ParseInt(trimmed[2:4], 16, 16)
	b, berr := strconv.ParseInt(trimmed[4:6], 16, 16)
	if err := errors.Join(rerr, gerr, berr); err != nil {
		return Colour{}, errors.Wrapf(err, "Couldn't parse RGB values for %q", s)
	}
	c, err := FromInts(int(r), int(g), int(b))
	if err != nil {
		return Colour{}, errors.Wrapf(err, "Couldn't parse RGB values for %q", s)
	}
	return c, nil
}

// Luminance computes the CCIR 601 luminance of the colour within 0 and 1.0.
//
// CCIR 601: https://en.wikipedia.org/wiki/Rec._601
func (c Colour) Luminance() float64 {
	const max8Bit = 255.0
	r := float64(c.R) / max8Bit
	g := float64(c.G) / max8Bit
	b := float64(c.B) / max8Bit
	return (0.299 * r) + (0.587 * g) + (0.114 * b)
}

// ToGrey is the grey with the same [Colour.Luminance].
func (c Colour) ToGrey() Colour {
	if c.IsGrey() {
		return c
	}
	return Grey(uint8(numeric.Clamp(math.Round(c.Luminance()*255), 0, 255)))
}
