// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package encode

import (
	"flag"
	"fmt"
	"io"
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
	cpuprofile *string
	logFile    *string
	memprofile *string
	output     *string

	*flag.FlagSet
}

func GetFlags() *Config {
	f := flag.NewFlagSet("", flag.ContinueOnError)
	ret := &Config{
		cpuprofile: f.String("debug-cpuprofile", "", "write cpu profile to `file`"),
		logFile:    f.String("l", "", "write logs to `file`. (default no logs written)"),
		memprofile: f.String("debug-memprofile", "", "write memory profile to `file`"),
		output:     f.String("o", "", "write the encoding to `file`. (default the input path with a '"+files.Ext+"' extension)"),
		FlagSet:    f,
	}
	f.Usage = func() {
		w := f.Output()
		fmt.Fprintf(w, "Usage of %s: reads a png, gif, jpeg, bmp, tiff or webp image and run-length encodes it\n"+
			"\t encode [-o OUT%s] IMAGE\n\n"+
			"e.g. %s encode photo.png\n", os.Args[0], files.Ext, os.Args[0])
		flags.PrintFlagsFilter(f, flags.ExcludePrefix("debug"))
	}
	return ret
}

func RunEncode(c *Config) {
	check.Check(c.Parsed(), "flags not parsed")
	closeLogFile := application.InitLogging(*c.logFile, nil)
	defer closeLogFile()
	closeProfile := application.InitCPUProfiling(*c.cpuprofile)
	defer closeProfile()
	closeMemProfile := application.InitMemProfile(*c.memprofile)
	defer closeMemProfile()

	if c.NArg() != 1 {
		fmt.Fprint(os.Stderr, "Expected exactly one image to encode. Use -h/--help to print usage instructions.\n")
		exit.Silent()
	}
	in := c.Arg(0)
	out := *c.output
	if out == "" {
		out = strings.TrimSuffix(in, filepath.Ext(in)) + files.Ext
	}
	err := Encode(os.Stdout, in, out)
	exit.OnErrorMsgf(err, "Couldn't encode %q", in)
}

// Encode reads the image at [in] and saves its encoding to [out], writing a one line summary to [w].
func Encode(w io.Writer, in, out string) error {
	f, err := os.Open(in)
	if err != nil {
		return err
	}
	defer f.Close()
	grid, format, err := pixgrid.ReadImage(f)
	if err != nil {
		return errors.Wrap(err, "couldn't decode image")
	}
	slog.Debug("decoded image", "path", in, "format", format, "grid", grid.String())
	s := rle.Encode(grid)
	if err := files.SaveFile(out, s); err != nil {
		return err
	}
	fmt.Fprintf(w, "%s (%s %dx%d) -> %s: %d runs for %d pixels\n",
		in, format, s.Width(), s.Height(), out, s.RunCount(), s.Pixels())
	return nil
}
