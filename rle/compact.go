// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2024-2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package rle

import (
	"encoding/binary"
	"io"

	"github.com/Lexer747/runpix/colour"
	"github.com/Lexer747/runpix/utils/errors"
)

// ReadSequence is the function you want when you have a byte stream and wish to de-serialise the result
// into a [Sequence]. This byte stream should've been encoded with [Sequence.AsCompact], otherwise an error
// will occur. The decoded sequence is always checked with [Sequence.Check].
func ReadSequence(r io.Reader) (*Sequence, error) {
	toReadFrom, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "While reading into Sequence{}")
	}
	s := &Sequence{}
	_, err = s.FromCompact(toReadFrom)
	if err != nil {
		return nil, errors.Wrap(err, "While reading into Sequence{}")
	}
	return s, nil
}

type Compact interface {
	// AsCompact convert a [Compact]ing thing into bytes
	AsCompact(w io.Writer) error

	// FromCompact converts raw bytes back into said thing
	FromCompact(input []byte) (int, error)
}

var _ Compact = (&Sequence{})

type Identifier byte

const (
	_ Identifier = 0

	SequenceID Identifier = 1

	_ Identifier = 0xff
)

// Lens in Bytes
const (
	int64Len  = 8
	idLen     = 1
	colourLen = 3

	headerLen = idLen + int64Len + int64Len + int64Len
	runLen    = int64Len + colourLen
)

// AsCompact writes the sequence as its id, width, height and run count followed by every run as its length
// and then its red, green and blue bytes. Integers are little endian int64s.
func (s *Sequence) AsCompact(w io.Writer) error {
	ret := make([]byte, s.byteLen())
	_ = s.write(ret)
	_, err := w.Write(ret)
	return err
}

// FromCompact replaces [s] with the sequence encoded at the start of [input], returning the number of bytes
// consumed. On error [s] is left unchanged.
func (s *Sequence) FromCompact(input []byte) (int, error) {
	if len(input) < headerLen {
		return 0, errors.Errorf("Cannot read Sequence, need %d bytes for the header got %d", headerLen, len(input))
	}
	i, err := readID(input, SequenceID)
	if err != nil {
		return i, errors.Wrap(err, "while reading compact Sequence")
	}
	var width, height, count int64
	i += readInt64(input[i:], &width)
	i += readInt64(input[i:], &height)
	i += readInt64(input[i:], &count)
	if width < 0 || height < 0 || count < 0 {
		return i, errors.Errorf("Negative header values width:%d height:%d runs:%d", width, height, count)
	}
	if int64(len(input)-i)/runLen < count {
		return i, errors.Errorf("Cannot read %d runs, only %d bytes remain", count, len(input)-i)
	}
	read := Sequence{width: int(width), height: int(height), runs: make([]Run, count)}
	for index := range read.runs {
		i += readRun(input[i:], &read.runs[index])
	}
	if err := read.Check(); err != nil {
		return i, errors.Wrap(err, "while reading compact Sequence")
	}
	*s = read
	return i, nil
}

func (s *Sequence) write(ret []byte) int {
	i := writeByte(ret, SequenceID)
	i += writeInt(ret[i:], s.width)
	i += writeInt(ret[i:], s.height)
	i += writeLen(ret[i:], s.runs)
	for _, run := range s.runs {
		i += writeRun(ret[i:], run)
	}
	return i
}

func (s *Sequence) byteLen() int {
	return headerLen + len(s.runs)*runLen
}

func writeRun(b []byte, r Run) int {
	i := writeInt(b, r.Length)
	i += writeColour(b[i:], r.Colour)
	return i
}

func readRun(b []byte, r *Run) int {
	var length int64
	i := readInt64(b, &length)
	r.Length = int(length)
	i += readColour(b[i:], &r.Colour)
	return i
}

func writeColour(b []byte, c colour.Colour) int {
	b[0], b[1], b[2] = c.R, c.G, c.B
	return colourLen
}

func readColour(b []byte, c *colour.Colour) int {
	c.R, c.G, c.B = b[0], b[1], b[2]
	return colourLen
}

func readID(b []byte, id Identifier) (int, error) {
	if len(b) <= 0 {
		return 0, errors.Errorf("Cannot read id, not enough bytes")
	}
	if id != Identifier(b[0]) {
		return 0, errors.Errorf("Unexpected id %d != %d", b[0], id)
	}
	return 1, nil
}

func writeByte[b ~byte](buf []byte, toWrite b) int {
	buf[0] = byte(toWrite)
	return 1
}

func writeLen[S ~[]T, T any](b []byte, slice S) int {
	binary.LittleEndian.PutUint64(b, uint64(len(slice)))
	return int64Len
}

func readInt64(b []byte, i *int64) int {
	//nolint:gosec
	// G115 converting to a int64 is an overflow but we are simply reading the raw bits to the buffer
	// which started life as a int64.
	*i = int64(binary.LittleEndian.Uint64(b))
	return int64Len
}

func writeInt(b []byte, i int) int {
	//nolint:gosec
	// G115 converting to a uint64 is an overflow but we are simply writing the raw bits to the buffer for later.
	binary.LittleEndian.PutUint64(b, uint64(i))
	return int64Len
}
