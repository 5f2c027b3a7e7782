// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2024-2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package bytes

import (
	"fmt"
	"strings"

	"github.com/Lexer747/runpix/utils/sliceutils"
)

// HexPrint will print a buffer as hexadecimal values.
func HexPrint(buffer []byte) string {
	var b strings.Builder
	b.WriteString("[")
	for i, bite := range buffer {
		fmt.Fprintf(&b, "0x%x", bite)
		if i < len(buffer)-1 {
			b.WriteString(", ")
		}
	}
	b.WriteString("]")
	return b.String()
}

// HexLines is [HexPrint] over every [perLine] bytes, each line is prefixed with its offset.
func HexLines(buffer []byte, perLine int) []string {
	lines := sliceutils.SplitN(buffer, perLine)
	ret := make([]string, len(lines))
	for i, line := range lines {
		ret[i] = fmt.Sprintf("%08x: %s", i*perLine, HexPrint(line))
	}
	return ret
}
