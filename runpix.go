// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2024-2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Lexer747/runpix/cmd/subcommands/decode"
	"github.com/Lexer747/runpix/cmd/subcommands/dump"
	"github.com/Lexer747/runpix/cmd/subcommands/edit"
	"github.com/Lexer747/runpix/cmd/subcommands/encode"
	"github.com/Lexer747/runpix/cmd/subcommands/show"
	"github.com/Lexer747/runpix/cmd/subcommands/version"
	"github.com/Lexer747/runpix/terminal/ansi"
	"github.com/Lexer747/runpix/utils/application"
	"github.com/Lexer747/runpix/utils/errors"
	"github.com/Lexer747/runpix/utils/exit"
)

// Set at link time with -ldflags "-X main.COMMIT=...".
//
//nolint:staticcheck
var (
	COMMIT     string
	GO_VERSION string
	BRANCH     string
	TIMESTAMP  string
	TAG        string
)

var programName = ansi.Green("runpix")

const (
	encodeString  = "encode"
	decodeString  = "decode"
	editString    = "edit"
	dumpString    = "dump"
	showString    = "show"
	versionString = "version"
)

type subcommand struct {
	subcommandName string
	description    string
}

var commandsUsage = []subcommand{
	{
		subcommandName: ansi.Red(encodeString),
		description: programName + " " + ansi.Red(encodeString) +
			" IMAGE\n    will run-length encode an image into a '.rle' file.",
	},
	{
		subcommandName: ansi.Red(decodeString),
		description: programName + " " + ansi.Red(decodeString) +
			" FILE\n    will decode a '.rle' file back into a png.",
	},
	{
		subcommandName: ansi.Red(editString),
		description: programName + " " + ansi.Red(editString) +
			" -script EDITS.yaml FILE\n    will set the pixels listed in a yaml script, re-using the encoding.",
	},
	{
		subcommandName: ansi.Red(dumpString),
		description: programName + " " + ansi.Red(dumpString) +
			" will print every run found in '.rle' files to stdout.",
	},
	{
		subcommandName: ansi.Red(showString),
		description: programName + " " + ansi.Red(showString) +
			" will draw '.rle' files in a 24-bit colour terminal.",
	},
	{
		subcommandName: ansi.Red(versionString),
		description:    programName + " " + ansi.Red(versionString) + " will print the build details.",
	},
}

var mainDescription = programName + " stores images as runs of equal colour and edits them pixel by pixel" +
	" without decoding."

func main() {
	info := application.MakeBuildInfo(COMMIT, GO_VERSION, BRANCH, TIMESTAMP, TAG)
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case encodeString:
			c := encode.GetFlags()
			FlagParseError(c.Parse(os.Args[2:]))
			encode.RunEncode(c)
			exit.Success()
		case decodeString:
			c := decode.GetFlags()
			FlagParseError(c.Parse(os.Args[2:]))
			decode.RunDecode(c)
			exit.Success()
		case editString:
			c := edit.GetFlags()
			FlagParseError(c.Parse(os.Args[2:]))
			edit.RunEdit(c)
			exit.Success()
		case dumpString:
			c := dump.GetFlags()
			FlagParseError(c.Parse(os.Args[2:]))
			dump.RunDump(c)
			exit.Success()
		case showString:
			c := show.GetFlags()
			FlagParseError(c.Parse(os.Args[2:]))
			show.RunShow(c)
			exit.Success()
		case versionString:
			c := version.GetFlags(info)
			FlagParseError(c.Parse(os.Args[2:]))
			version.RunVersion(c)
			exit.Success()
		default:
			// fallthrough
		}
	}
	f := flag.NewFlagSet("", flag.ContinueOnError)
	f.Usage = func() {
		fmt.Fprint(f.Output(), "  "+mainDescription+"\n\n")
		for _, cmd := range commandsUsage {
			fmt.Fprint(f.Output(), "  "+cmd.subcommandName+"\n")
			fmt.Fprint(f.Output(), "      "+cmd.description+"\n")
		}
		fmt.Fprintf(f.Output(), "call any of the above subcommands with --help for extra details on those commands.\n")
	}
	FlagParseError(f.Parse(os.Args[1:]))
	f.Usage()
	exit.Silent()
}

func FlagParseError(err error) {
	if errors.Is(err, flag.ErrHelp) {
		exit.Silent()
	} else {
		exit.OnError(err)
	}
}
