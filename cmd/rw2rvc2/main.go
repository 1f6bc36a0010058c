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

// Command rw2rvc2 compiles a C subset to RISC-V (RV64) assembly text.
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"rw2rvc2/compiler"
	"rw2rvc2/internal/config"
)

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: rw2rvc2 [-z] [-config path] <source-file-or-code>")
}

func main() {
	debugDump := flag.Bool("z", false, "emit token/AST/IR debug dumps as assembler comments")
	configPath := flag.String("config", "", "path to an optional TOML configuration file")
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *debugDump {
		cfg.EnableDebugDumps()
	}
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		cfg.Display.Color = false
	}

	source := readSource(flag.Arg(0))
	asm := compiler.Run(source, cfg)
	fmt.Print(asm)
}

// readSource treats arg as a file path when it names a readable file, and
// as literal source text otherwise, per spec §6.
func readSource(arg string) string {
	if data, err := os.ReadFile(arg); err == nil {
		return string(data)
	}
	return arg
}
