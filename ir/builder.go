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

package ir

import (
	"rw2rvc2/ast"
	"rw2rvc2/internal/diag"
)

// Builder walks an *ast.Program and lowers it to a flat Instr stream.
// regno and label are explicit fields rather than the static locals
// gen_ir_sub used in original_source/src/ir.c, per the "explicit context
// objects" redesign note.
type Builder struct {
	instrs  []Instr
	regno   int32
	label   int32
	globals *SymbolTable
	locals  map[string]bool // globals, parameters and assigned names, for the "uninitialized identifier" check
}

// NewBuilder returns a Builder with fresh counters.
func NewBuilder() *Builder {
	return &Builder{globals: NewSymbolTable(), locals: map[string]bool{}}
}

// Build lowers prog into a flat Program.
func Build(prog *ast.Program) *Program {
	b := NewBuilder()
	for _, decl := range prog.Decls {
		b.lowerTopLevel(decl)
	}
	return &Program{Instrs: b.instrs, Globals: b.globals}
}

func (b *Builder) emit(op Op, lhs, rhs int32, name string) int32 {
	b.instrs = append(b.instrs, Instr{Op: op, LHS: lhs, RHS: rhs, Name: name})
	return lhs
}

func (b *Builder) lowerTopLevel(n ast.Node) {
	switch decl := n.(type) {
	case *ast.FuncDef:
		b.lowerFuncDef(decl)
	case *ast.VarInitDeclList:
		for _, v := range decl.List {
			b.declareGlobal(v)
		}
	default:
		diag.Fatalf(diag.Internal, "unexpected top-level declaration %T", n)
	}
}

// declareGlobal records a global in D. A non-zero constant initializer
// lands in .data at emit time; anything else (no initializer, or an
// initializer of exactly 0) becomes a .comm, per spec §4.3.
func (b *Builder) declareGlobal(decl *ast.VarDecl) {
	sym := Symbol{Name: decl.Name}
	if decl.Init != nil {
		c, ok := decl.Init.(*ast.ConstExpr)
		if !ok {
			diag.Fatalf(diag.Semantic, "global %q: initializer must be a constant", decl.Name)
		}
		if c.Value != 0 {
			sym.HasNonZeroInit = true
			sym.InitValue = c.Value
		}
	}
	b.globals.Declare(sym)
	b.locals[decl.Name] = true
}

// lowerFuncDef lowers FUNC_DEF, one FUNC_PARAM per parameter, the body,
// then FUNC_END, per spec §4.3.
func (b *Builder) lowerFuncDef(fn *ast.FuncDef) {
	b.emit(FUNC_DEF, -1, -1, fn.Name)

	for i, param := range fn.Params {
		t := b.regno
		b.regno++
		b.emit(LOADADDR, t, 0, param.Name)
		b.emit(FUNC_PARAM, t, int32(i), param.Name)
		b.emit(KILL, t, 0, "")
		b.emit(KILL_ARG, int32(i), 0, "")
		b.locals[param.Name] = true
	}

	b.lowerStatement(fn.Body)
	b.emit(FUNC_END, -1, -1, fn.Name)
}

// lowerStatement lowers a statement node; statements never produce a
// result register.
func (b *Builder) lowerStatement(n ast.Node) {
	switch s := n.(type) {
	case *ast.CompoundStmt:
		for _, stmt := range s.List {
			b.lowerStatement(stmt)
		}
	case *ast.ExpressionStmt:
		if s.Expr != nil {
			b.lowerExpr(s.Expr)
		}
	case *ast.ReturnStmt:
		if s.Expr == nil {
			b.emit(RETURN, -1, 0, "")
			return
		}
		re := b.lowerExpr(s.Expr)
		b.emit(RETURN, re, 0, "")
		b.emit(KILL, re, 0, "")
	case *ast.IfStmt:
		b.lowerIf(s)
	case *ast.VarInitDeclList:
		diag.Fatalf(diag.Semantic, "local variable declarations are not supported")
	default:
		diag.Fatalf(diag.Internal, "unexpected statement %T", n)
	}
}

func (b *Builder) lowerIf(s *ast.IfStmt) {
	rc := b.lowerExpr(s.Cond)
	l1 := b.label
	b.label++
	b.emit(BEQZ, rc, l1, "")
	b.emit(KILL, rc, 0, "")
	b.lowerStatement(s.Branches.Then)

	if s.Branches.Else != nil {
		l2 := b.label
		b.label++
		b.emit(JUMP, l2, 0, "")
		b.emit(LABEL, l1, 0, "")
		b.lowerStatement(s.Branches.Else)
		b.emit(LABEL, l2, 0, "")
	} else {
		b.emit(LABEL, l1, 0, "")
	}
}

// lowerExpr lowers an expression node and returns the virtual register
// holding its value.
func (b *Builder) lowerExpr(n ast.Node) int32 {
	switch e := n.(type) {
	case *ast.ConstExpr:
		r := b.regno
		b.regno++
		b.emit(IMM, r, e.Value, "")
		return r
	case *ast.IdentExpr:
		return b.lowerIdent(e.Name)
	case *ast.AssignExpr:
		return b.lowerAssign(e)
	case *ast.UnaryExpr:
		return b.lowerUnary(e)
	case *ast.BinaryExpr:
		return b.lowerBinary(e)
	case *ast.FuncCallExpr:
		return b.lowerCall(e)
	default:
		diag.Fatalf(diag.Internal, "unexpected expression %T", n)
		panic("unreachable")
	}
}

func (b *Builder) lowerIdent(name string) int32 {
	if _, ok := b.globals.Lookup(name); !ok {
		if !b.locals[name] {
			diag.Fatalf(diag.Semantic, "uninitialized identifier: %s", name)
		}
	}
	addr := b.regno
	b.regno++
	b.emit(LOADADDR, addr, 0, name)
	val := b.regno
	b.regno++
	b.emit(LOAD, val, addr, "")
	b.emit(KILL, addr, 0, "")
	return val
}

func (b *Builder) lowerAssign(e *ast.AssignExpr) int32 {
	ident, ok := e.LHS.(*ast.IdentExpr)
	if !ok {
		diag.Fatalf(diag.Semantic, "assignment target must be an identifier")
	}

	rhs := b.lowerExpr(e.RHS)
	if _, declared := b.globals.Lookup(ident.Name); !declared {
		b.globals.Declare(Symbol{Name: ident.Name}) // dict_append(d, name, 0) in the original
	}
	b.locals[ident.Name] = true
	lhs := b.lowerIdent(ident.Name)

	t := b.regno
	b.regno++
	b.emit(LOADADDR, t, -1, ident.Name)
	b.emit(STORE, t, rhs, "")
	b.emit(KILL, lhs, 0, "")
	b.emit(KILL, rhs, 0, "")
	b.emit(KILL, t, 0, "")
	return t
}

// lowerUnary applies the binary-arithmetic lowering rule from spec §4.3
// with a synthesized `IMM rn, 0` standing in for the missing left operand:
// evaluate the zero, then the real operand, emit the op with
// destination=zero_reg, KILL the operand register.
func (b *Builder) lowerUnary(e *ast.UnaryExpr) int32 {
	zero := b.regno
	b.regno++
	b.emit(IMM, zero, 0, "")

	rhs := b.lowerExpr(e.Operand)

	switch e.Op {
	case ast.PLUS:
		b.emit(PLUS, zero, rhs, "")
	case ast.MINUS:
		b.emit(MINUS, zero, rhs, "")
	default:
		diag.Fatalf(diag.Internal, "unexpected unary operator %v", e.Op)
	}
	b.emit(KILL, rhs, 0, "")
	return zero
}

// binaryOp maps an ast.Kind binary operator to its IR opcode for the
// straightforward arithmetic/bitwise cases.
var binaryOp = map[ast.Kind]Op{
	ast.PLUS: PLUS,
	ast.MINUS: MINUS,
	ast.MUL: MUL,
	ast.DIV: DIV,
	ast.MOD: MOD,
	ast.AND: AND,
	ast.OR: OR,
	ast.XOR: XOR,
	ast.LEFT_OP: LEFT_OP,
	ast.RIGHT_OP: RIGHT_OP,
}

func (b *Builder) lowerBinary(e *ast.BinaryExpr) int32 {
	switch e.Op {
	case ast.AND_OP:
		return b.lowerLogicalAnd(e)
	case ast.OR_OP:
		return b.lowerLogicalOr(e)
	case ast.EQ_OP, ast.NE_OP:
		return b.lowerEquality(e)
	case ast.LESS_OP, ast.GREATER_OP, ast.LE_OP, ast.GE_OP:
		return b.lowerRelational(e)
	}

	op, ok := binaryOp[e.Op]
	if !ok {
		diag.Fatalf(diag.Internal, "unexpected binary operator %v", e.Op)
	}
	lhs := b.lowerExpr(e.LHS)
	rhs := b.lowerExpr(e.RHS)
	b.emit(op, lhs, rhs, "")
	b.emit(KILL, rhs, 0, "")
	return lhs
}

// lowerLogicalAnd implements `a && b` as `!(!a | !b)`, per spec §4.3.
func (b *Builder) lowerLogicalAnd(e *ast.BinaryExpr) int32 {
	lhs := b.lowerExpr(e.LHS)
	b.emit(NOT, lhs, 0, "")
	rhs := b.lowerExpr(e.RHS)
	b.emit(NOT, rhs, 0, "")
	b.emit(OR, lhs, rhs, "")
	b.emit(KILL, rhs, 0, "")
	b.emit(NOT, lhs, 0, "")
	return lhs
}

// lowerLogicalOr implements `a || b` as a bitwise OR of the two operand
// values, with no NOTs (unlike lowerLogicalAnd).
func (b *Builder) lowerLogicalOr(e *ast.BinaryExpr) int32 {
	lhs := b.lowerExpr(e.LHS)
	rhs := b.lowerExpr(e.RHS)
	b.emit(OR, lhs, rhs, "")
	b.emit(KILL, rhs, 0, "")
	return lhs
}

func (b *Builder) lowerEquality(e *ast.BinaryExpr) int32 {
	lhs := b.lowerExpr(e.LHS)
	rhs := b.lowerExpr(e.RHS)
	b.emit(MINUS, lhs, rhs, "")
	b.emit(KILL, rhs, 0, "")
	if e.Op == ast.EQ_OP {
		b.emit(NOT, lhs, 0, "")
	}
	return lhs
}

// lowerRelational swaps operands for `>` and `<=` so the emitter only
// needs SLT/SLET, per spec §4.3.
func (b *Builder) lowerRelational(e *ast.BinaryExpr) int32 {
	left, right := e.LHS, e.RHS
	strict := e.Op == ast.LESS_OP || e.Op == ast.GREATER_OP
	if e.Op == ast.GREATER_OP || e.Op == ast.LE_OP {
		left, right = right, left
	}

	lhs := b.lowerExpr(left)
	rhs := b.lowerExpr(right)
	op := SLET
	if strict {
		op = SLT
	}
	b.emit(op, lhs, rhs, "")
	b.emit(KILL, rhs, 0, "")
	return lhs
}

func (b *Builder) lowerCall(e *ast.FuncCallExpr) int32 {
	for i, arg := range e.Args {
		ri := b.lowerExpr(arg)
		b.emit(FUNC_ARG, int32(i), ri, "")
		b.emit(KILL, ri, 0, "")
		b.emit(KILL_ARG, int32(i), 0, "")
	}
	r := b.regno
	b.regno++
	b.emit(FUNC_CALL, r, -1, e.Name)
	return r
}
