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

// Package compiler wires the five pipeline stages — lexer, parser, IR
// builder, register allocator, emitter — into the single entry point the
// CLI calls, the way the teacher's compile.CompileTheWorld drove
// falcon's pipeline.
package compiler

import (
	"rw2rvc2/codegen"
	"rw2rvc2/internal/config"
	"rw2rvc2/internal/diag"
	"rw2rvc2/ir"
	"rw2rvc2/lexer"
	"rw2rvc2/parse"
)

// Run compiles source to RISC-V assembly text, driving every stage in
// order and honoring cfg's debug-dump flags (spec §6's `-z` behavior).
// Any stage failure is fatal via internal/diag and never returns here —
// see recoverInternal below for the one exception (unreachable code
// paths), which still exits through the same diagnostic path.
func Run(source string, cfg *config.Config) (asm string) {
	defer recoverInternal()

	diag.ColorEnabled = cfg.Display.Color

	toks := lexer.Tokenize([]byte(source))
	if cfg.Debug.DumpTokens {
		dumpTokens(toks)
	}

	prog := parse.Parse(toks)
	if cfg.Debug.DumpAST {
		dumpAST(prog)
	}

	lowered := ir.Build(prog)
	if cfg.Debug.DumpIRBefore {
		dumpIR("before register allocation", lowered)
	}

	alloc := codegen.NewAllocator()
	if err := alloc.Allocate(lowered); err != nil {
		diag.Fatalf(diag.RegisterExhaustion, "%s", err)
	}
	if cfg.Debug.DumpIRAfter {
		dumpIR("after register allocation", lowered)
	}

	return codegen.Emit(lowered, alloc, int32(cfg.Codegen.WordSize), cfg.Codegen.WarnOnCommonLocals)
}

// recoverInternal funnels any panic that escapes a stage — an unreachable
// switch arm, a runtime fault such as an out-of-range index — through the same
// fatal-diagnostic exit point, mirroring the teacher's utils.Unimplement/
// utils.ShouldNotReachHere convention of a single panic funnel.
func recoverInternal() {
	if r := recover(); r != nil {
		diag.Fatalf(diag.Internal, "%v", r)
	}
}
