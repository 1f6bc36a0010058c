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

package parse

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rw2rvc2/ast"
	"rw2rvc2/lexer"
)

func parseSource(t *testing.T, src string) *ast.Program {
	t.Helper()
	return Parse(lexer.Tokenize([]byte(src)))
}

func TestParseGlobalVarDecl(t *testing.T) {
	prog := parseSource(t, "int x = 5;")
	require.Len(t, prog.Decls, 1)
	list, ok := prog.Decls[0].(*ast.VarInitDeclList)
	require.True(t, ok)
	require.Len(t, list.List, 1)
	require.Equal(t, "x", list.List[0].Name)
	c, ok := list.List[0].Init.(*ast.ConstExpr)
	require.True(t, ok)
	require.EqualValues(t, 5, c.Value)
}

func TestParseFunctionDefinitionWithParams(t *testing.T) {
	prog := parseSource(t, "int add(int a, int b) { return a + b; }")
	require.Len(t, prog.Decls, 1)
	fn, ok := prog.Decls[0].(*ast.FuncDef)
	require.True(t, ok)
	require.Equal(t, "add", fn.Name)
	require.Len(t, fn.Params, 2)
	require.Equal(t, "a", fn.Params[0].Name)
	require.Equal(t, "b", fn.Params[1].Name)
	require.Len(t, fn.Body.List, 1)

	ret, ok := fn.Body.List[0].(*ast.ReturnStmt)
	require.True(t, ok)
	bin, ok := ret.Expr.(*ast.BinaryExpr)
	require.True(t, ok)
	require.Equal(t, ast.PLUS, bin.Op)
}

func TestParseAssignmentRewindDoesNotConsumeConditional(t *testing.T) {
	prog := parseSource(t, "int f() { return 1 == 1; }")
	fn := prog.Decls[0].(*ast.FuncDef)
	ret := fn.Body.List[0].(*ast.ReturnStmt)
	bin, ok := ret.Expr.(*ast.BinaryExpr)
	require.True(t, ok)
	require.Equal(t, ast.EQ_OP, bin.Op)
}

func TestParseCompoundAssignmentDesugars(t *testing.T) {
	prog := parseSource(t, "int f() { x += 1; return 0; }")
	fn := prog.Decls[0].(*ast.FuncDef)
	stmt := fn.Body.List[0].(*ast.ExpressionStmt)
	assign, ok := stmt.Expr.(*ast.AssignExpr)
	require.True(t, ok)
	bin, ok := assign.RHS.(*ast.BinaryExpr)
	require.True(t, ok)
	require.Equal(t, ast.PLUS, bin.Op)
	lhsIdent, ok := bin.LHS.(*ast.IdentExpr)
	require.True(t, ok)
	require.Equal(t, "x", lhsIdent.Name)
}

func TestParseIfElse(t *testing.T) {
	prog := parseSource(t, "int f() { if (1) return 1; else return 0; }")
	fn := prog.Decls[0].(*ast.FuncDef)
	ifStmt, ok := fn.Body.List[0].(*ast.IfStmt)
	require.True(t, ok)
	require.NotNil(t, ifStmt.Branches.Then)
	require.NotNil(t, ifStmt.Branches.Else)
}

func TestParseFunctionCallArguments(t *testing.T) {
	prog := parseSource(t, "int f() { return g(1, 2, x); }")
	fn := prog.Decls[0].(*ast.FuncDef)
	ret := fn.Body.List[0].(*ast.ReturnStmt)
	call, ok := ret.Expr.(*ast.FuncCallExpr)
	require.True(t, ok)
	require.Equal(t, "g", call.Name)
	require.Len(t, call.Args, 3)
}

func TestParseOperatorPrecedence(t *testing.T) {
	// 1 + 2 * 3 must parse as 1 + (2 * 3).
	prog := parseSource(t, "int f() { return 1 + 2 * 3; }")
	fn := prog.Decls[0].(*ast.FuncDef)
	ret := fn.Body.List[0].(*ast.ReturnStmt)
	top, ok := ret.Expr.(*ast.BinaryExpr)
	require.True(t, ok)
	require.Equal(t, ast.PLUS, top.Op)
	rhs, ok := top.RHS.(*ast.BinaryExpr)
	require.True(t, ok)
	require.Equal(t, ast.MUL, rhs.Op)
}
