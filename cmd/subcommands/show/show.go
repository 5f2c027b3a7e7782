// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package show

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/Lexer747/runpix/colour"
	"github.com/Lexer747/runpix/files"
	"github.com/Lexer747/runpix/rle"
	"github.com/Lexer747/runpix/terminal/ansi"
	"github.com/Lexer747/runpix/utils/application"
	"github.com/Lexer747/runpix/utils/check"
	"github.com/Lexer747/runpix/utils/exit"
	"github.com/Lexer747/runpix/utils/flags"
)

type Config struct {
	grey    *bool
	logFile *string
	width   *int

	*flag.FlagSet
}

func GetFlags() *Config {
	f := flag.NewFlagSet("", flag.ContinueOnError)
	ret := &Config{
		grey:    f.Bool("grey", false, "draws every pixel as the grey of the same luminance"),
		logFile: f.String("l", "", "write logs to `file`. (default no logs written)"),
		width:   f.Int("width", 0, "the most `columns` to draw with. (default the terminal width, or unlimited when not a terminal)"),
		FlagSet: f,
	}
	f.Usage = func() {
		w := f.Output()
		fmt.Fprintf(w, "Usage of %s: draws '%s' files to a 24-bit colour terminal\n"+
			"\t show [-width N] FILES\n\n"+
			"e.g. %s show photo%s\n", os.Args[0], files.Ext, os.Args[0], files.Ext)
		flags.PrintFlagsFilter(f, flags.NoFilter())
	}
	return ret
}

func RunShow(c *Config) {
	check.Check(c.Parsed(), "flags not parsed")
	closeLogFile := application.InitLogging(*c.logFile, nil)
	defer closeLogFile()
	toPrint := c.Args()
	if len(toPrint) == 0 {
		fmt.Fprintf(os.Stderr, "No files found, exiting. Use -h/--help to print usage instructions.\n")
		exit.Success()
	}
	o := Options{MaxWidth: *c.width, Grey: *c.grey}
	if o.MaxWidth <= 0 {
		o.MaxWidth = terminalWidth(os.Stdout)
	}
	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for _, file := range toPrint {
		s, err := files.LoadFile(file)
		exit.OnErrorMsgf(err, "Couldn't show %q", file)
		Render(w, s, o)
	}
}

func terminalWidth(f *os.File) int {
	fd := int(f.Fd()) //nolint:gosec
	if !term.IsTerminal(fd) {
		return 0
	}
	width, height, err := term.GetSize(fd)
	if err != nil {
		slog.Info("couldn't get terminal size", "err", err)
		return 0
	}
	slog.Debug("terminal size", "width", width, "height", height)
	return width
}

type Options struct {
	// MaxWidth is the most columns to draw, images wider than this are sampled down by a whole factor. Zero
	// or less never samples.
	MaxWidth int
	Grey     bool
}

// Render draws [s] with one upper half block per two vertically adjacent pixels, the top pixel as the
// foreground and the bottom as the background.
func Render(w io.Writer, s *rle.Sequence, o Options) {
	step := 1
	if o.MaxWidth > 0 && s.Width() > o.MaxWidth {
		step = (s.Width() + o.MaxWidth - 1) / o.MaxWidth
	}
	g := rle.Decode(s)
	at := func(x, y int) colour.Colour {
		if o.Grey {
			return g.ColourAt(x, y).ToGrey()
		}
		return g.ColourAt(x, y)
	}
	for y := 0; y < s.Height(); y += 2 * step {
		for x := 0; x < s.Width(); x += step {
			top := at(x, y)
			if y+step >= s.Height() {
				fmt.Fprint(w, fg(halfBlock, top))
				continue
			}
			fmt.Fprint(w, fg(bg(halfBlock, at(x, y+step)), top))
		}
		fmt.Fprintln(w)
	}
}

const halfBlock = "▀"

func fg(s string, c colour.Colour) string { return ansi.TrueColour(s, c.R, c.G, c.B) }
func bg(s string, c colour.Colour) string { return ansi.TrueColourBackground(s, c.R, c.G, c.B) }
