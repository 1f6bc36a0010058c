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

// Package ast defines the abstract syntax tree produced by the parser.
//
// Per the "tagged variants over inheritance" design note, each grammar
// shape gets its own Go struct carrying exactly the fields it needs,
// instead of one wide struct with mostly-nil optional fields (the shape
// the original C sources used). A Node interface ties them together so
// the IR builder can still dispatch on kind with a type switch.
package ast

import "rw2rvc2/token"

//go:generate go run golang.org/x/tools/cmd/stringer -type Kind -output kind_string.go

// Kind tags a Node's grammar shape. It exists mainly for debug dumps and
// fast switch dispatch; the payload itself always lives on the concrete
// struct.
type Kind int

const (
	PLUS Kind = iota
	MINUS
	MUL
	DIV
	MOD
	OR
	AND
	XOR
	CONST
	IDENT
	RETURN
	IF
	COMPOUND_STATEMENTS
	STATEMENTS
	EXPRESSION
	ASSIGN
	OR_OP
	AND_OP
	EQ_OP
	NE_OP
	GREATER_OP
	LESS_OP
	GE_OP
	LE_OP
	RIGHT_OP
	LEFT_OP
	TYPE
	VAR_DEC
	VAR_DEC_STATIC
	VAR_INIT_DLIST
	FUNC_DEF
	FUNC_CALL
	FUNC_ARG
	FUNC_ALIST
	FUNC_PARAM
	FUNC_PLIST
	PROGRAM
	THEN_ELSE
)

// Node is implemented by every AST node.
type Node interface {
	Kind() Kind
}

// BinaryExpr covers every two-operand arithmetic, bitwise, relational and
// logical operator. Opt can name the token the operator was parsed from;
// the parser leaves it at its zero value and the IR builder dispatches on
// Op alone.
type BinaryExpr struct {
	Op  Kind
	Opt token.Kind
	LHS Node
	RHS Node
}

func (n *BinaryExpr) Kind() Kind { return n.Op }

// UnaryExpr covers unary + and -. Operand is the parsed right-hand side;
// the IR builder synthesizes the implicit `IMM 0` left operand per spec
// §4.3 and combines it with Operand.
type UnaryExpr struct {
	Op      Kind
	Operand Node
}

func (n *UnaryExpr) Kind() Kind { return n.Op }

// ConstExpr is an integer literal.
type ConstExpr struct {
	Value int32
}

func (n *ConstExpr) Kind() Kind { return CONST }

// IdentExpr references a declared identifier by name.
type IdentExpr struct {
	Name string
}

func (n *IdentExpr) Kind() Kind { return IDENT }

// AssignExpr is `LHS = RHS` after compound-assignment desugaring has
// already rewritten `LHS OP= RHS` into `LHS = LHS OP RHS`.
type AssignExpr struct {
	LHS Node
	RHS Node
}

func (n *AssignExpr) Kind() Kind { return ASSIGN }

// ExpressionStmt wraps the top of an expression statement, mirroring the
// grammar's explicit EXPRESSION production.
type ExpressionStmt struct {
	Expr Node
}

func (n *ExpressionStmt) Kind() Kind { return EXPRESSION }

// ReturnStmt is `return expr;` (Expr nil for a bare `return;`).
type ReturnStmt struct {
	Expr Node
}

func (n *ReturnStmt) Kind() Kind { return RETURN }

// ThenElse holds the two branches of an IfStmt.
type ThenElse struct {
	Then Node
	Else Node // nil when there is no else-branch
}

func (n *ThenElse) Kind() Kind { return THEN_ELSE }

// IfStmt is `if (Cond) ...`.
type IfStmt struct {
	Cond     Node
	Branches *ThenElse
}

func (n *IfStmt) Kind() Kind { return IF }

// CompoundStmt is a `{ ... }` block: zero or more statements, in order.
type CompoundStmt struct {
	List []Node
}

func (n *CompoundStmt) Kind() Kind { return COMPOUND_STATEMENTS }

// StatementList is a flat run of statements inside a compound statement.
type StatementList struct {
	List []Node
}

func (n *StatementList) Kind() Kind { return STATEMENTS }

// VarDecl declares one variable, with an optional initializer expression.
type VarDecl struct {
	Name string
	Init Node // nil when uninitialized
}

func (n *VarDecl) Kind() Kind { return VAR_DEC }

// VarInitDeclList is a comma-separated init_declarator_list.
type VarInitDeclList struct {
	List []*VarDecl
}

func (n *VarInitDeclList) Kind() Kind { return VAR_INIT_DLIST }

// FuncParam is one entry of a parameter_list; this subset only has `int`
// parameters so no type node is carried beyond the name.
type FuncParam struct {
	Name string
}

func (n *FuncParam) Kind() Kind { return FUNC_PARAM }

// FuncDef is a full function definition: name, ordered parameters, body.
type FuncDef struct {
	Name   string
	Params []*FuncParam
	Body   *CompoundStmt
}

func (n *FuncDef) Kind() Kind { return FUNC_DEF }

// FuncCallExpr is `name(args...)`.
type FuncCallExpr struct {
	Name string
	Args []Node
}

func (n *FuncCallExpr) Kind() Kind { return FUNC_CALL }

// Program is the translation_unit root: an ordered list of top-level
// function definitions and global variable declarations.
type Program struct {
	Decls []Node
}

func (n *Program) Kind() Kind { return PROGRAM }
