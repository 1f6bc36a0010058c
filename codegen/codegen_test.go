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
	"testing"

	"github.com/stretchr/testify/require"

	"rw2rvc2/ir"
	"rw2rvc2/lexer"
	"rw2rvc2/parse"
)

func allocatedProgram(t *testing.T, src string) (*ir.Program, *Allocator) {
	t.Helper()
	toks := lexer.Tokenize([]byte(src))
	prog := parse.Parse(toks)
	lowered := ir.Build(prog)
	alloc := NewAllocator()
	require.NoError(t, alloc.Allocate(lowered))
	return lowered, alloc
}

func TestAllocateAssignsFirstFreeRegister(t *testing.T) {
	lowered, _ := allocatedProgram(t, "int f() { return 1; }")
	var imm *ir.Instr
	for i := range lowered.Instrs {
		if lowered.Instrs[i].Op == ir.IMM {
			imm = &lowered.Instrs[i]
		}
	}
	require.NotNil(t, imm)
	require.EqualValues(t, 0, imm.LHS) // t0
}

func TestAllocateRewritesKillToNop(t *testing.T) {
	lowered, _ := allocatedProgram(t, "int f() { return 1 + 2; }")
	for _, in := range lowered.Instrs {
		require.NotEqual(t, ir.KILL, in.Op)
	}
}

func TestAllocateExhaustionFails(t *testing.T) {
	alloc := NewAllocator()
	for i := 0; i < NumTempRegs; i++ {
		_, err := alloc.alloc(int32(i))
		require.NoError(t, err)
	}
	_, err := alloc.alloc(int32(NumTempRegs))
	require.ErrorIs(t, err, ErrRegisterExhausted)
}

func TestEmitReturnsStatementEmitsEpilogueAndRet(t *testing.T) {
	lowered, alloc := allocatedProgram(t, "int f() { return 1; }")
	asm := Emit(lowered, alloc, DefaultWordSize, true)
	require.Contains(t, asm, "li\tt0, 1")
	require.Contains(t, asm, "mv\ta0, t0")
	require.Contains(t, asm, "ret")
}

func TestEmitGlobalWithNonZeroInitUsesDataWord(t *testing.T) {
	lowered, alloc := allocatedProgram(t, "int g = 7; int f() { return 0; }")
	asm := Emit(lowered, alloc, DefaultWordSize, true)
	require.Contains(t, asm, "g:\n\t.word\t7")
}

func TestEmitGlobalWithoutInitUsesComm(t *testing.T) {
	lowered, alloc := allocatedProgram(t, "int g; int f() { return 0; }")
	asm := Emit(lowered, alloc, DefaultWordSize, true)
	require.Contains(t, asm, ".comm g, 4, 4")
}

func TestEmitLeftShiftUsesSllw(t *testing.T) {
	lowered, alloc := allocatedProgram(t, "int f() { return 1 << 2; }")
	asm := Emit(lowered, alloc, DefaultWordSize, true)
	require.Contains(t, asm, "sllw\t")
	require.NotContains(t, asm, "\tsll\t")
}
