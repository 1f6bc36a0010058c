// Copyright (c) 2024 The Falcon Contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

// Package diag prints fatal compiler diagnostics, colorized the way
// original_source/src/display.c's color_printf/error_printf did.
package diag

import (
	"fmt"
	"os"
)

// Stage names the pipeline stage that raised a fatal error, used both for
// the process exit code and for the diagnostic prefix.
type Stage int

const (
	Lexical Stage = iota + 1
	Syntactic
	Semantic
	RegisterExhaustion
	Internal
)

func (s Stage) String() string {
	switch s {
	case Lexical:
		return "lexical error"
	case Syntactic:
		return "syntax error"
	case Semantic:
		return "semantic error"
	case RegisterExhaustion:
		return "register allocation error"
	case Internal:
		return "internal error"
	default:
		return "error"
	}
}

// exit code per stage, matching spec §7's taxonomy. 0 and 1 are reserved
// for success and CLI usage errors respectively.
func (s Stage) exitCode() int {
	switch s {
	case Lexical:
		return 2
	case Syntactic:
		return 3
	case Semantic:
		return 4
	case RegisterExhaustion:
		return 5
	default:
		return 6
	}
}

// ANSI SGR color codes, matching original_source/src/rw2rvc2.h's
// dprint_color_t.
const (
	colRed    = 31
	colGreen  = 32
	colYellow = 33
	colBlue   = 34
)

// ColorEnabled controls whether Fatalf/Warnf/Section wrap output in ANSI
// escapes. compiler.Run sets this from config.Display.Color, which
// cmd/rw2rvc2 turns off when stderr is not a terminal.
var ColorEnabled = true

func colorf(color int, w *os.File, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if ColorEnabled {
		fmt.Fprintf(w, "\x1b[%dm%s\x1b[0m\n", color, msg)
	} else {
		fmt.Fprintln(w, msg)
	}
}

// Fatalf prints a red diagnostic naming the stage to stderr and exits the
// process with the stage's exit code. It never returns.
func Fatalf(stage Stage, format string, args ...interface{}) {
	colorf(colRed, os.Stderr, "%s: %s", stage, fmt.Sprintf(format, args...))
	os.Exit(stage.exitCode())
}

// Warnf prints a yellow, non-fatal diagnostic to stderr.
func Warnf(format string, args ...interface{}) {
	colorf(colYellow, os.Stderr, "warning: %s", fmt.Sprintf(format, args...))
}

// Section prints a green section header, used by the -z debug dump to
// separate the token/AST/IR listings.
func Section(format string, args ...interface{}) {
	colorf(colGreen, os.Stdout, "# == %s ==", fmt.Sprintf(format, args...))
}

// Comment writes a line to stdout prefixed with the assembler
// comment-out string, matching ASM_COMMENTOUT_STR from
// original_source/src/rw2rvc2.h, used by the -z dump so diagnostics stay
// valid assembly.
func Comment(line string) {
	fmt.Printf("# %s\n", line)
}
