// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

// Package editscript reads a YAML list of pixel edits and applies them to a [rle.Sequence]:
//
//	edits:
//	  - {x: 0, y: 0, colour: "#ff8800"}
//	  - {x: 1, y: 0, grey: 128}
//	  - {x: 2, y: 0, rgb: [1, 2, 3]}
//
// Every edit must set exactly one of colour, grey or rgb. A script is validated as a whole before any edit is
// applied, so a bad script never leaves a half edited image.
package editscript

import (
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Lexer747/runpix/colour"
	"github.com/Lexer747/runpix/rle"
	"github.com/Lexer747/runpix/utils/errors"
	"github.com/Lexer747/runpix/utils/numeric"
)

type Script struct {
	Edits []Edit `yaml:"edits"`
}

type Edit struct {
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Colour string `yaml:"colour,omitempty"`
	Grey   *int   `yaml:"grey,omitempty"`
	RGB    []int  `yaml:"rgb,omitempty,flow"`
}

func Parse(input []byte) (Script, error) {
	var script Script
	if err := yaml.Unmarshal(input, &script); err != nil {
		return Script{}, errors.Wrap(err, "decode edit script")
	}
	return script, nil
}

func Load(path string) (Script, error) {
	input, err := os.ReadFile(path)
	if err != nil {
		return Script{}, errors.Wrapf(err, "couldn't read edit script %q", path)
	}
	script, err := Parse(input)
	if err != nil {
		return Script{}, errors.Wrapf(err, "in %q", path)
	}
	return script, nil
}

// Resolve returns the colour this edit paints.
func (e Edit) Resolve() (colour.Colour, error) {
	forms := 0
	if e.Colour != "" {
		forms++
	}
	if e.Grey != nil {
		forms++
	}
	if e.RGB != nil {
		forms++
	}
	if forms != 1 {
		return colour.Colour{}, errors.Errorf("exactly one of colour, grey or rgb is required, got %d", forms)
	}
	switch {
	case e.Colour != "":
		return colour.ParseCSS(e.Colour)
	case e.Grey != nil:
		if !numeric.InRange(*e.Grey, 0, 255) {
			return colour.Colour{}, errors.Errorf("grey out of range %d, should be within 0 and 255", *e.Grey)
		}
		return colour.Grey(uint8(*e.Grey)), nil //nolint:gosec
	default:
		if len(e.RGB) != 3 {
			return colour.Colour{}, errors.Errorf("rgb needs 3 components got %d", len(e.RGB))
		}
		return colour.FromInts(e.RGB[0], e.RGB[1], e.RGB[2])
	}
}

// Validate reports every edit which can't be applied to a width by height image.
func (s Script) Validate(width, height int) error {
	_, err := s.resolve(width, height)
	return err
}

func (s Script) resolve(width, height int) ([]colour.Colour, error) {
	colours := make([]colour.Colour, len(s.Edits))
	var errs []error
	for i, e := range s.Edits {
		if !numeric.InRange(e.X, 0, width-1) || !numeric.InRange(e.Y, 0, height-1) {
			errs = append(errs, errors.Errorf("edits[%d] (%d, %d) is outside a %dx%d image", i, e.X, e.Y, width, height))
			continue
		}
		c, err := e.Resolve()
		if err != nil {
			errs = append(errs, errors.Wrapf(err, "edits[%d]", i))
			continue
		}
		colours[i] = c
	}
	return colours, errors.Join(errs...)
}

// Apply validates the script against [seq] then applies each edit in order with [rle.Sequence.SetPixel]. It
// returns how many edits changed a pixel's colour.
func (s Script) Apply(seq *rle.Sequence) (int, error) {
	colours, err := s.resolve(seq.Width(), seq.Height())
	if err != nil {
		return 0, err
	}
	changed := 0
	for i, e := range s.Edits {
		if seq.ColourAt(e.X, e.Y) != colours[i] {
			changed++
		}
		seq.SetPixel(e.X, e.Y, colours[i])
	}
	slog.Debug("applied edit script", "edits", len(s.Edits), "changed", changed, "runs", seq.RunCount())
	return changed, nil
}
