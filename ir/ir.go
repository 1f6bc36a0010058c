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

// Package ir defines the flat three-address instruction stream that sits
// between the AST and the register allocator, and the Builder that lowers
// an *ast.Program into it.
package ir

//go:generate go run golang.org/x/tools/cmd/stringer -type Op -output op_string.go

// Op is an IR opcode. The ordering matches spec §4.3's opcode list.
type Op int

const (
	PLUS Op = iota
	MINUS
	MUL
	DIV
	MOD
	AND
	OR
	XOR
	NOT
	EQ_OP
	NE_OP
	SLT
	SLET
	LEFT_OP
	RIGHT_OP
	IMM
	MOV
	RETURN
	KILL
	KILL_ARG
	LOAD
	STORE
	LOADADDR
	BEQZ
	JUMP
	LABEL
	FUNC_DEF
	FUNC_END
	FUNC_CALL
	FUNC_ARG
	FUNC_PARAM
	NOP
)

// Instr is one flat three-address instruction. Not every field is
// meaningful for every Op; see each lowering rule in Builder for the exact
// contract, mirroring original_source/src/rw2rvc2.h's ir_t{op,lhs,rhs,name}.
type Instr struct {
	Op   Op
	LHS  int32
	RHS  int32
	Name string
}

// Program is the output of lowering: the flat instruction stream plus the
// symbol table recording every global, in declaration order
// (the emitter needs this order for deterministic .data/.comm output).
type Program struct {
	Instrs []Instr
	Globals *SymbolTable
}
