// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package decode

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Lexer747/runpix/files"
	"github.com/Lexer747/runpix/pixgrid"
	"github.com/Lexer747/runpix/rle"
	"github.com/Lexer747/runpix/utils/application"
	"github.com/Lexer747/runpix/utils/check"
	"github.com/Lexer747/runpix/utils/errors"
	"github.com/Lexer747/runpix/utils/exit"
	"github.com/Lexer747/runpix/utils/flags"
)

type Config struct {
	logFile *string
	output  *string

	*flag.FlagSet
}

func GetFlags() *Config {
	f := flag.NewFlagSet("", flag.ContinueOnError)
	ret := &Config{
		logFile: f.String("l", "", "write logs to `file`. (default no logs written)"),
		output:  f.String("o", "", "write the png to `file`. (default the input path with a '.png' extension)"),
		FlagSet: f,
	}
	f.Usage = func() {
		w := f.Output()
		fmt.Fprintf(w, "Usage of %s: decodes a '%s' file back into a png\n"+
			"\t decode [-o OUT.png] FILE\n\n"+
			"e.g. %s decode photo%s\n", os.Args[0], files.Ext, os.Args[0], files.Ext)
		flags.PrintFlagsFilter(f, flags.NoFilter())
	}
	return ret
}

func RunDecode(c *Config) {
	check.Check(c.Parsed(), "flags not parsed")
	closeLogFile := application.InitLogging(*c.logFile, nil)
	defer closeLogFile()

	if c.NArg() != 1 {
		fmt.Fprint(os.Stderr, "Expected exactly one file to decode. Use -h/--help to print usage instructions.\n")
		exit.Silent()
	}
	in := c.Arg(0)
	out := *c.output
	if out == "" {
		out = strings.TrimSuffix(in, filepath.Ext(in)) + ".png"
	}
	exit.OnErrorMsgf(Decode(in, out), "Couldn't decode %q", in)
}

// Decode loads the sequence at [in] and writes it as a png to [out].
func Decode(in, out string) (err error) {
	s, err := files.LoadFile(in)
	if err != nil {
		return err
	}
	f, err := os.Create(out)
	if err != nil {
		return errors.Wrapf(err, "couldn't create %q", out)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	slog.Debug("writing png", "path", out, "width", s.Width(), "height", s.Height())
	return pixgrid.WritePNG(f, rle.Decode(s))
}
