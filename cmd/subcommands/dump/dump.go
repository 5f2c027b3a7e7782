// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package dump

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Lexer747/runpix/files"
	"github.com/Lexer747/runpix/rle"
	hex "github.com/Lexer747/runpix/utils/bytes"
	"github.com/Lexer747/runpix/utils/check"
	"github.com/Lexer747/runpix/utils/exit"
	"github.com/Lexer747/runpix/utils/flags"
	"github.com/Lexer747/runpix/utils/iterutils"
	"github.com/Lexer747/runpix/utils/numeric"
)

type Config struct {
	toYAML *bool
	toHex  *bool

	*flag.FlagSet
}

func GetFlags() *Config {
	f := flag.NewFlagSet("", flag.ContinueOnError)
	ret := &Config{
		toYAML:  f.Bool("yaml", false, "writes the runs as a yaml record"),
		toHex:   f.Bool("hex", false, "writes the uncompressed binary form as hex"),
		FlagSet: f,
	}
	f.Usage = func() {
		w := f.Output()
		fmt.Fprintf(w, "Usage of %s: reads '%s' files and prints every run to the stdout\n"+
			"\t dump [-yaml][-hex] FILES\n\n"+
			"e.g. %s dump photo%s\n", os.Args[0], files.Ext, os.Args[0], files.Ext)
		flags.PrintFlagsFilter(f, flags.NoFilter())
	}
	return ret
}

func RunDump(c *Config) {
	check.Check(c.Parsed(), "flags not parsed")
	toPrint := c.Args()
	if len(toPrint) == 0 {
		fmt.Fprintf(os.Stderr, "No files found, exiting. Use -h/--help to print usage instructions.\n")
		exit.Success()
	}
	mode := Runs
	// In precedence order of flags
	switch {
	case *c.toYAML:
		mode = YAML
	case *c.toHex:
		mode = Hex
	}
	for _, file := range toPrint {
		s, err := files.LoadFile(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load %q, %s\n", file, err.Error())
			continue
		}
		exit.OnErrorMsgf(Dump(os.Stdout, s, mode), "Failed to print %q", file)
	}
}

type Mode int

const (
	Runs Mode = iota
	YAML
	Hex
)

func Dump(w io.Writer, s *rle.Sequence, mode Mode) error {
	switch mode {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s.Record()); err != nil {
			return err
		}
		return enc.Close()
	case Hex:
		var b bytes.Buffer
		if err := s.AsCompact(&b); err != nil {
			return err
		}
		for _, line := range hex.HexLines(b.Bytes(), 16) {
			fmt.Fprintln(w, line)
		}
		return nil
	default:
		fmt.Fprintf(w, "%dx%d: %d runs covering %d pixels\n", s.Width(), s.Height(), s.RunCount(), s.TotalPixels())
		l := s.Locator()
		for i, run := range iterutils.Enumerate(l.All()) {
			x, y := numeric.Split(l.Start(), s.Width())
			fmt.Fprintf(w, "%d: (%d, %d) %d x %s\n", i, x, y, run.Length, run.Colour.CSS())
		}
		return nil
	}
}
