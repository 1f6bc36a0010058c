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

package codegen

import (
	"fmt"
	"strings"

	"rw2rvc2/internal/diag"
	"rw2rvc2/ir"
)

// DefaultWordSize is the stack slot width in bytes used for the
// prologue/epilogue and the call-site save area, matching
// COMPILE_WORD_SIZE in original_source/src/rw2rvc2.h (8 for RV64's
// doubleword sd/ld). Emit's caller may override it from
// config.Config.Codegen.WordSize.
const DefaultWordSize = 8

// Emit renders an already-allocated ir.Program as RISC-V assembly text.
// allocator supplies the call-site snapshots recorded during register
// allocation. wordSize sizes every stack slot the prologue, epilogue and
// call sites touch; warnOnCommonLocals gates a diagnostic when a global
// falls back to .comm, per SPEC_FULL.md §2.3 (a tentative definition that
// silently becomes a common symbol is a frequent source of
// multiple-definition surprises at link time).
func Emit(prog *ir.Program, alloc *Allocator, wordSize int32, warnOnCommonLocals bool) string {
	var b strings.Builder
	emitData(&b, prog, warnOnCommonLocals)
	emitText(&b, prog, alloc, wordSize)
	return b.String()
}

// emitData writes the .data section: non-zero constant globals first,
// then every remaining global as a .comm, matching gen_riscv's two-pass
// loop over the symbol dictionary in original_source/src/codegen.c.
func emitData(b *strings.Builder, prog *ir.Program, warnOnCommonLocals bool) {
	fmt.Fprintln(b, "\t.section .data")

	prog.Globals.ForEach(func(sym ir.Symbol) {
		if sym.HasNonZeroInit {
			fmt.Fprintf(b, "%s:\n", sym.Name)
			fmt.Fprintf(b, "\t.word\t%d\n", sym.InitValue)
		}
	})
	fmt.Fprintln(b)

	prog.Globals.ForEach(func(sym ir.Symbol) {
		if !sym.HasNonZeroInit {
			if warnOnCommonLocals {
				diag.Warnf("global %q has no non-zero initializer, emitting as .comm", sym.Name)
			}
			fmt.Fprintf(b, "\t.comm %s, 4, 4\n", sym.Name)
		}
	})
	fmt.Fprintln(b)
}

func emitText(b *strings.Builder, prog *ir.Program, alloc *Allocator, wordSize int32) {
	for _, in := range prog.Instrs {
		emitInstr(b, in, alloc, wordSize)
	}
}

func reg(i int32) string {
	return RegString(i)
}

func emitInstr(b *strings.Builder, in ir.Instr, alloc *Allocator, wordSize int32) {
	switch in.Op {
	case ir.FUNC_DEF:
		fmt.Fprintln(b, "\t.section .text")
		fmt.Fprintf(b, "\t.global %s\n", in.Name)
		fmt.Fprintf(b, "\t.type %s, @function\n", in.Name)
		fmt.Fprintf(b, "%s:\n", in.Name)
		fmt.Fprintf(b, "\tsd\tra, -%d(sp)\n", wordSize)
		fmt.Fprintf(b, "\tsd\ts0, -%d(sp)\n", wordSize*2)
		fmt.Fprintln(b, "\tmv\ts0, sp")
		fmt.Fprintf(b, "\taddi\tsp, sp, -%d\n", wordSize*2)

	case ir.FUNC_CALL:
		site := alloc.CallSiteAt(in.RHS)
		frame := int32(len(site.Live))*wordSize + wordSize
		fmt.Fprintf(b, "\taddi\tsp, sp, -%d\n", frame)
		fmt.Fprintln(b, "\tsd\tra, 0(sp)")
		for j, r := range site.Live {
			fmt.Fprintf(b, "\tsd\t%s, %d(sp)\n", reg(r), int32(j)*wordSize+wordSize)
		}
		fmt.Fprintf(b, "\tcall\t%s\n", in.Name)
		for j := len(site.Live) - 1; j >= 0; j-- {
			fmt.Fprintf(b, "\tld\t%s, %d(sp)\n", reg(site.Live[j]), int32(j)*wordSize+wordSize)
		}
		fmt.Fprintln(b, "\tld\tra, 0(sp)")
		fmt.Fprintf(b, "\taddi\tsp, sp, %d\n", frame)
		fmt.Fprintf(b, "\tmv\t%s, a0\n", reg(in.LHS))

	case ir.FUNC_PARAM:
		fmt.Fprintf(b, "\tsw\t%s, 0(%s)\n", reg(in.RHS), reg(in.LHS))

	case ir.FUNC_ARG:
		fmt.Fprintf(b, "\tmv\t%s, %s\n", reg(in.LHS), reg(in.RHS))

	case ir.FUNC_END:
		fmt.Fprintf(b, "\t.size %s, . - %s\n\n", in.Name, in.Name)

	case ir.IMM:
		fmt.Fprintf(b, "\tli\t%s, %d\n", reg(in.LHS), in.RHS)

	case ir.MOV:
		fmt.Fprintf(b, "\tmv\t%s, %s\n", reg(in.LHS), reg(in.RHS))

	case ir.LOADADDR:
		fmt.Fprintf(b, "\tla\t%s, %s\n", reg(in.LHS), in.Name)

	case ir.RETURN:
		if in.LHS != -1 {
			fmt.Fprintf(b, "\tmv\ta0, %s\n", reg(in.LHS))
		}
		fmt.Fprintf(b, "\tld\tra, -%d(s0)\n", wordSize)
		fmt.Fprintf(b, "\tld\ts0, -%d(s0)\n", wordSize*2)
		fmt.Fprintf(b, "\taddi\tsp, sp, %d\n", wordSize*2)
		fmt.Fprintln(b, "\tret")

	case ir.PLUS:
		fmt.Fprintf(b, "\tadd\t%s, %s, %s\n", reg(in.LHS), reg(in.LHS), reg(in.RHS))
	case ir.MINUS:
		fmt.Fprintf(b, "\tsub\t%s, %s, %s\n", reg(in.LHS), reg(in.LHS), reg(in.RHS))
	case ir.MUL:
		fmt.Fprintf(b, "\tmul\t%s, %s, %s\n", reg(in.LHS), reg(in.LHS), reg(in.RHS))
	case ir.DIV:
		fmt.Fprintf(b, "\tdiv\t%s, %s, %s\n", reg(in.LHS), reg(in.LHS), reg(in.RHS))
	case ir.MOD:
		fmt.Fprintf(b, "\trem\t%s, %s, %s\n", reg(in.LHS), reg(in.LHS), reg(in.RHS))
	case ir.AND:
		fmt.Fprintf(b, "\tand\t%s, %s, %s\n", reg(in.LHS), reg(in.LHS), reg(in.RHS))
	case ir.OR:
		fmt.Fprintf(b, "\tor\t%s, %s, %s\n", reg(in.LHS), reg(in.LHS), reg(in.RHS))
	case ir.XOR:
		fmt.Fprintf(b, "\txor\t%s, %s, %s\n", reg(in.LHS), reg(in.LHS), reg(in.RHS))
	case ir.NOT:
		fmt.Fprintf(b, "\tnot\t%s, %s\n", reg(in.LHS), reg(in.LHS))

	case ir.STORE:
		fmt.Fprintf(b, "\tsw\t%s, 0(%s)\n", reg(in.RHS), reg(in.LHS))
	case ir.LOAD:
		fmt.Fprintf(b, "\tlw\t%s, 0(%s)\n", reg(in.LHS), reg(in.RHS))

	case ir.BEQZ:
		fmt.Fprintf(b, "\tbeqz\t%s, .L%d\n", reg(in.LHS), in.RHS)

	case ir.SLT:
		fmt.Fprintf(b, "\tslt\t%s, %s, %s\n", reg(in.LHS), reg(in.LHS), reg(in.RHS))
	case ir.SLET:
		fmt.Fprintf(b, "\tslt\t%s, %s, %s\n", reg(in.LHS), reg(in.LHS), reg(in.RHS))
		fmt.Fprintf(b, "\txori\t%s, %s, 1\n", reg(in.LHS), reg(in.LHS))

	case ir.LEFT_OP:
		// sllw, not sll: see SPEC_FULL.md §4.5.
		fmt.Fprintf(b, "\tsllw\t%s, %s, %s\n", reg(in.LHS), reg(in.LHS), reg(in.RHS))
	case ir.RIGHT_OP:
		fmt.Fprintf(b, "\tsrl\t%s, %s, %s\n", reg(in.LHS), reg(in.LHS), reg(in.RHS))

	case ir.JUMP:
		fmt.Fprintf(b, "\tj\t.L%d\n", in.LHS)
	case ir.LABEL:
		fmt.Fprintf(b, ".L%d:\n", in.LHS)

	case ir.EQ_OP, ir.NE_OP, ir.KILL, ir.KILL_ARG, ir.NOP:
		// EQ_OP/NE_OP lower fully to MINUS(+NOT) before reaching the
		// emitter; KILL/KILL_ARG/NOP carry no runtime effect.

	default:
		diag.Fatalf(diag.Internal, "unexpected IR opcode in emitter: %v", in.Op)
	}
}
