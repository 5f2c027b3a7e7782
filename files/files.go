// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

// Package files stores a [rle.Sequence] on disk. A file is the 4 byte [Magic] followed by a single zstd frame
// holding the compact form written by [rle.Sequence.AsCompact].
package files

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/Lexer747/runpix/rle"
	"github.com/Lexer747/runpix/utils/check"
	"github.com/Lexer747/runpix/utils/errors"
)

// Magic prefixes every file.
const Magic = "RPIX"

// Ext is the extension the CLI uses for encoded images.
const Ext = ".rle"

// MaxDecodedSize bounds the uncompressed compact form [Read] accepts, about 24 million runs.
const MaxDecodedSize = 256 << 20

const ErrNotRunpix = errors.Sentinel("not a runpix file")

// Write compresses [s] and writes it to [w].
func Write(w io.Writer, s *rle.Sequence) error {
	var raw bytes.Buffer
	if err := s.AsCompact(&raw); err != nil {
		return errors.Wrap(err, "while compacting sequence")
	}
	enc := encoders.Get().(*zstd.Encoder)
	out := enc.EncodeAll(raw.Bytes(), []byte(Magic))
	encoders.Put(enc)
	_, err := w.Write(out)
	return err
}

// Read is the inverse of [Write], the returned sequence has passed [rle.Sequence.Check].
func Read(r io.Reader) (*rle.Sequence, error) {
	input, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if !bytes.HasPrefix(input, []byte(Magic)) {
		return nil, errors.WrapErr(ErrNotRunpix, errors.Errorf("missing %q header", Magic))
	}
	dec := decoders.Get().(*zstd.Decoder)
	raw, err := dec.DecodeAll(input[len(Magic):], nil)
	decoders.Put(dec)
	if err != nil {
		return nil, errors.Wrap(err, "while decompressing")
	}
	s := &rle.Sequence{}
	n, err := s.FromCompact(raw)
	if err != nil {
		return nil, err
	}
	if n != len(raw) {
		return nil, errors.Errorf("%d trailing bytes after sequence", len(raw)-n)
	}
	return s, nil
}

// SaveFile writes [s] to a temporary file beside [path] which then replaces [path], so a failed save never
// leaves [path] half written.
func SaveFile(path string, s *rle.Sequence) error {
	slog.Debug("saving sequence", "path", path, "runs", s.RunCount(), "width", s.Width(), "height", s.Height())
	return replaceFile(path, func(w io.Writer) error { return Write(w, s) })
}

func replaceFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrapf(err, "couldn't create %q", path)
	}
	defer func() {
		if err != nil {
			err = errors.Join(err, os.Remove(f.Name()))
		}
	}()
	if err := write(f); err != nil {
		return errors.Join(errors.Wrapf(err, "couldn't write %q", path), f.Close())
	}
	if err := f.Chmod(0o644); err != nil {
		return errors.Join(errors.Wrapf(err, "couldn't write %q", path), f.Close())
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "couldn't write %q", path)
	}
	return errors.Wrapf(os.Rename(f.Name(), path), "couldn't replace %q", path)
}

// LoadFile reads a sequence saved with [SaveFile].
func LoadFile(path string) (*rle.Sequence, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "couldn't open %q", path)
	}
	defer f.Close()
	s, err := Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "couldn't load %q", path)
	}
	slog.Debug("loaded sequence", "path", path, "runs", s.RunCount(), "width", s.Width(), "height", s.Height())
	return s, nil
}

var encoders = sync.Pool{
	New: func() any {
		enc, err := zstd.NewWriter(
			nil,
			zstd.WithEncoderConcurrency(1),
			zstd.WithEncoderLevel(zstd.SpeedBetterCompression),
			zstd.WithLowerEncoderMem(true),
		)
		check.NoErr(err, "zstd encoder options")
		return enc
	},
}

var decoders = sync.Pool{
	New: func() any {
		dec, err := zstd.NewReader(
			nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(true),
			zstd.WithDecoderMaxMemory(MaxDecodedSize),
		)
		check.NoErr(err, "zstd decoder options")
		return dec
	},
}
