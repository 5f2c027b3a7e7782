// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package rle

import (
	"gopkg.in/yaml.v3"

	"github.com/Lexer747/runpix/colour"
	"github.com/Lexer747/runpix/utils/errors"
	"github.com/Lexer747/runpix/utils/iterutils"
)

// Record is the flat, human readable form of a [Sequence]: its dimensions and the ordered (length, red,
// green, blue) tuples of its runs.
type Record struct {
	Width  int         `yaml:"width"`
	Height int         `yaml:"height"`
	Runs   []RunRecord `yaml:"runs"`
}

// RunRecord holds plain ints so that a hand written record can be range checked by [FromRecord].
type RunRecord struct {
	Length int `yaml:"length"`
	R      int `yaml:"r"`
	G      int `yaml:"g"`
	B      int `yaml:"b"`
}

// MarshalYAML writes each run on a single line, e.g. "{length: 3, r: 0, g: 0, b: 0}".
func (r RunRecord) MarshalYAML() (any, error) {
	type plain RunRecord
	n := &yaml.Node{}
	if err := n.Encode(plain(r)); err != nil {
		return nil, err
	}
	n.Style = yaml.FlowStyle
	return n, nil
}

func (s *Sequence) Record() Record {
	toRecord := func(r Run) RunRecord {
		return RunRecord{Length: r.Length, R: int(r.Colour.R), G: int(r.Colour.G), B: int(r.Colour.B)}
	}
	runs := make([]RunRecord, 0, len(s.runs))
	for run := range iterutils.Map(s.Runs(), toRecord) {
		runs = append(runs, run)
	}
	return Record{Width: s.width, Height: s.height, Runs: runs}
}

// FromRecord validates [rec] in the same way as [FromRuns], in addition every channel must be within 0 and
// 255.
func FromRecord(rec Record) (*Sequence, error) {
	colours := make([]colour.Colour, len(rec.Runs))
	lengths := make([]int, len(rec.Runs))
	for i, run := range rec.Runs {
		c, err := colour.FromInts(run.R, run.G, run.B)
		if err != nil {
			return nil, errors.Wrapf(err, "run %d has an invalid colour", i)
		}
		colours[i] = c
		lengths[i] = run.Length
	}
	return FromRuns(rec.Width, rec.Height, colours, lengths)
}
