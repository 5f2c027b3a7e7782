// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025-2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package version

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Lexer747/runpix/terminal/ansi"
	"github.com/Lexer747/runpix/utils/application"
)

type Config struct {
	*application.BuildInfo
	*flag.FlagSet
}

func GetFlags(info *application.BuildInfo) *Config {
	f := flag.NewFlagSet("", flag.ContinueOnError)
	ret := &Config{
		BuildInfo: info,
		FlagSet:   f,
	}
	return ret
}

func RunVersion(c *Config) {
	Print(os.Stdout, c.BuildInfo)
}

func Print(w io.Writer, info *application.BuildInfo) {
	versionColour := ansi.Cyan
	detailsColour := ansi.Gray
	const header = "runpix version: %s\n"
	if info == nil {
		fmt.Fprintf(w, header, versionColour("local build"))
		return
	}
	var b strings.Builder
	const details = "Details - Commit:%s Branch:%q GoVersion:%q BuildTimestamp:%s\n"
	fmt.Fprintf(&b, header, versionColour(info.Tag()))
	b.WriteString(detailsColour(
		fmt.Sprintf(details,
			info.Commit(),
			info.Branch(),
			info.GoVersion(),
			info.BuildTimestamp(),
		),
	))
	fmt.Fprint(w, b.String())
}
