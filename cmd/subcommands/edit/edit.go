// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package edit

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Lexer747/runpix/editscript"
	"github.com/Lexer747/runpix/files"
	"github.com/Lexer747/runpix/utils/application"
	"github.com/Lexer747/runpix/utils/check"
	"github.com/Lexer747/runpix/utils/env"
	"github.com/Lexer747/runpix/utils/exit"
	"github.com/Lexer747/runpix/utils/flags"
)

type Config struct {
	cpuprofile  *string
	debugStrict *bool
	logFile     *string
	output      *string
	script      *string

	*flag.FlagSet
}

func GetFlags() *Config {
	f := flag.NewFlagSet("", flag.ContinueOnError)
	ret := &Config{
		cpuprofile: f.String("debug-cpuprofile", "", "write cpu profile to `file`"),
		debugStrict: f.Bool("debug-strict", false, "validates the whole encoding after every pixel edit and crashes on"+
			" the first broken invariant. Also enabled by RUNPIX_DEBUG_STRICT=1."),
		logFile: f.String("l", "", "write logs to `file`. (default no logs written)"),
		output:  f.String("o", "", "write the edited encoding to `file`. (default overwrite the input)"),
		script:  f.String("script", "", "the yaml edit script `file` to apply"),
		FlagSet: f,
	}
	f.Usage = func() {
		w := f.Output()
		fmt.Fprintf(w, "Usage of %s: applies a yaml edit script to a '%s' file\n"+
			"\t edit -script EDITS.yaml [-o OUT%s] FILE\n\n"+
			"where EDITS.yaml looks like:\n"+
			"\tedits:\n"+
			"\t  - {x: 0, y: 0, colour: \"#ff8800\"}\n"+
			"\t  - {x: 1, y: 0, grey: 128}\n"+
			"\t  - {x: 2, y: 0, rgb: [1, 2, 3]}\n\n", os.Args[0], files.Ext, files.Ext)
		flags.PrintFlagsFilter(f, flags.ExcludePrefix("debug"))
	}
	return ret
}

func RunEdit(c *Config) {
	check.Check(c.Parsed(), "flags not parsed")
	closeLogFile := application.InitLogging(*c.logFile, nil)
	defer closeLogFile()
	closeProfile := application.InitCPUProfiling(*c.cpuprofile)
	defer closeProfile()

	if c.NArg() != 1 || *c.script == "" {
		fmt.Fprint(os.Stderr, "Expected -script and exactly one file to edit. Use -h/--help to print usage instructions.\n")
		exit.Silent()
	}
	in := c.Arg(0)
	out := *c.output
	if out == "" {
		out = in
	}
	strict := *c.debugStrict || env.DEBUG_STRICT()
	err := Edit(os.Stdout, Options{In: in, Out: out, Script: *c.script, Strict: strict})
	exit.OnErrorMsgf(err, "Couldn't edit %q", in)
}

type Options struct {
	In, Out, Script string
	Strict          bool
}

// Edit loads [Options.In], applies the script and saves the result to [Options.Out], which may be
// [Options.In]. Nothing is written when the script doesn't fit the image, and [files.SaveFile] only replaces
// [Options.Out] once the whole encoding is written.
func Edit(w io.Writer, o Options) error {
	script, err := editscript.Load(o.Script)
	if err != nil {
		return err
	}
	s, err := files.LoadFile(o.In)
	if err != nil {
		return err
	}
	s.SetStrict(o.Strict)
	before := s.RunCount()
	changed, err := script.Apply(s)
	if err != nil {
		return err
	}
	slog.Debug("edited", "in", o.In, "out", o.Out, "strict", o.Strict, "changed", changed)
	if err := files.SaveFile(o.Out, s); err != nil {
		return err
	}
	fmt.Fprintf(w, "%s -> %s: %d of %d edits changed a pixel, %d runs -> %d runs\n",
		o.In, o.Out, changed, len(script.Edits), before, s.RunCount())
	return nil
}
