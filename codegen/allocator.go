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

// Package codegen turns an ir.Program into RISC-V (RV64) assembly text: a
// linear-scan register allocator rewrites virtual register numbers to
// physical indices in place, then the emitter walks the rewritten stream.
package codegen

import (
	"errors"

	"rw2rvc2/ir"
)

// TempRegs is the physical register pool, in allocation order. Argument
// slots occupy the tail so that argument i maps to index NumTempRegs-1-i,
// matching original_source/src/regalloc.c's TEMP_REGS.
var TempRegs = [...]string{
	"t0", "t1", "t2", "t3", "t4", "t5", "t6",
	"a7", "a6", "a5", "a4", "a3", "a2", "a1", "a0",
}

const NumTempRegs = len(TempRegs)

// ErrRegisterExhausted is returned when the allocator runs out of physical
// registers. The original C allocator returned the sentinel value -10 from
// find_allocatable_reg and let it flow silently into the emitted
// instruction stream; spec §9 calls that out as a defect to fix, so here
// it surfaces as a real error instead.
var ErrRegisterExhausted = errors.New("register allocation exhausted: no free temporary register")

// RegString returns the assembly mnemonic for a physical register index.
func RegString(index int32) string {
	if index < 0 || int(index) >= NumTempRegs {
		return ""
	}
	return TempRegs[index]
}

// CallSite is one snapshot of which physical registers were live across a
// FUNC_CALL, so the emitter knows which caller-saved registers to spill
// around the call. Indexed by the ordinal stored in the FUNC_CALL
// instruction's RHS field, matching get_using_regs's contract.
type CallSite struct {
	Live []int32
}

// Allocator runs the linear-scan pass described in spec §4.4 over an
// ir.Program's instruction stream, rewriting it in place.
type Allocator struct {
	regMap    map[int32]int32 // virtual register -> physical index
	used      [NumTempRegs]bool
	callSites []CallSite
}

// NewAllocator returns an allocator with an empty register map.
func NewAllocator() *Allocator {
	return &Allocator{regMap: map[int32]int32{}}
}

// alloc returns the physical index bound to virtual register v, allocating
// a fresh one if v hasn't been seen before.
func (a *Allocator) alloc(v int32) (int32, error) {
	if p, ok := a.regMap[v]; ok {
		return p, nil
	}
	for i := 0; i < NumTempRegs; i++ {
		if !a.used[i] {
			a.used[i] = true
			a.regMap[v] = int32(i)
			return int32(i), nil
		}
	}
	return 0, ErrRegisterExhausted
}

// allocArgument forces virtual register v into the physical argument slot
// for position arg (index NumTempRegs-1-arg), per spec §4.4.
func (a *Allocator) allocArgument(v int32, arg int32) (int32, error) {
	index := int32(NumTempRegs) - 1 - arg
	if a.used[index] {
		return 0, ErrRegisterExhausted
	}
	a.used[index] = true
	a.regMap[v] = index
	return index, nil
}

func (a *Allocator) release(v int32) {
	if p, ok := a.regMap[v]; ok {
		a.used[p] = false
	}
}

func (a *Allocator) recordCallSite() int32 {
	var live []int32
	for i, u := range a.used {
		if u {
			live = append(live, int32(i))
		}
	}
	a.callSites = append(a.callSites, CallSite{Live: live})
	return int32(len(a.callSites) - 1)
}

// CallSiteAt retrieves a previously recorded snapshot by ordinal.
func (a *Allocator) CallSiteAt(ordinal int32) CallSite {
	return a.callSites[ordinal]
}

// Allocate rewrites prog.Instrs in place, replacing virtual register
// numbers with physical indices and KILL instructions with NOP, matching
// allocate_regs's per-opcode dispatch in original_source/src/regalloc.c.
func (a *Allocator) Allocate(prog *ir.Program) error {
	for i := range prog.Instrs {
		in := &prog.Instrs[i]
		var err error

		switch in.Op {
		case ir.IMM, ir.LOADADDR:
			in.LHS, err = a.alloc(in.LHS)

		case ir.FUNC_ARG:
			in.RHS, err = a.alloc(in.RHS)
			if err == nil {
				in.LHS, err = a.allocArgument(in.RHS, in.LHS)
			}

		case ir.FUNC_CALL:
			in.RHS = a.recordCallSite()
			in.LHS, err = a.alloc(in.LHS)

		case ir.MOV, ir.PLUS, ir.MINUS, ir.MUL, ir.DIV, ir.MOD,
			ir.EQ_OP, ir.NE_OP, ir.SLT, ir.SLET,
			ir.LEFT_OP, ir.RIGHT_OP, ir.OR, ir.LOAD:
			in.LHS, err = a.alloc(in.LHS)
			if err == nil {
				in.RHS, err = a.alloc(in.RHS)
			}

		case ir.FUNC_PARAM:
			in.LHS = a.regMap[in.LHS]
			in.RHS = int32(NumTempRegs) - 1 - in.RHS

		case ir.STORE:
			in.LHS = a.regMap[in.LHS]
			in.RHS, err = a.alloc(in.RHS)

		case ir.RETURN, ir.BEQZ, ir.NOT:
			if in.LHS != -1 {
				in.LHS = a.regMap[in.LHS]
			}

		case ir.KILL:
			a.release(in.LHS)
			in.Op = ir.NOP

		case ir.KILL_ARG:
			a.used[int32(NumTempRegs)-1-in.LHS] = false
		}

		if err != nil {
			return err
		}
	}
	return nil
}
