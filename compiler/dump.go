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

package compiler

import (
	"fmt"

	"rw2rvc2/ast"
	"rw2rvc2/internal/diag"
	"rw2rvc2/ir"
	"rw2rvc2/token"
)

// dumpTokens prints the token stream, one per line, each as an assembler
// comment so -z output stays valid assembly, per spec §6.
func dumpTokens(toks []token.Token) {
	diag.Section("tokens")
	for _, t := range toks {
		diag.Comment(t.String())
	}
}

// dumpAST prints the parsed tree, indented by nesting depth.
func dumpAST(prog *ast.Program) {
	diag.Section("ast")
	for _, decl := range prog.Decls {
		dumpNode(decl, 0)
	}
}

func dumpNode(n ast.Node, depth int) {
	if n == nil {
		return
	}
	diag.Comment(fmt.Sprintf("%s%s", indent(depth), describeNode(n)))

	switch v := n.(type) {
	case *ast.BinaryExpr:
		dumpNode(v.LHS, depth+1)
		dumpNode(v.RHS, depth+1)
	case *ast.UnaryExpr:
		dumpNode(v.Operand, depth+1)
	case *ast.AssignExpr:
		dumpNode(v.LHS, depth+1)
		dumpNode(v.RHS, depth+1)
	case *ast.ExpressionStmt:
		dumpNode(v.Expr, depth+1)
	case *ast.ReturnStmt:
		dumpNode(v.Expr, depth+1)
	case *ast.IfStmt:
		dumpNode(v.Cond, depth+1)
		dumpNode(v.Branches.Then, depth+1)
		dumpNode(v.Branches.Else, depth+1)
	case *ast.CompoundStmt:
		for _, s := range v.List {
			dumpNode(s, depth+1)
		}
	case *ast.VarInitDeclList:
		for _, d := range v.List {
			dumpNode(d, depth+1)
		}
	case *ast.VarDecl:
		dumpNode(v.Init, depth+1)
	case *ast.FuncDef:
		for _, p := range v.Params {
			dumpNode(p, depth+1)
		}
		dumpNode(v.Body, depth+1)
	case *ast.FuncCallExpr:
		for _, a := range v.Args {
			dumpNode(a, depth+1)
		}
	}
}

func describeNode(n ast.Node) string {
	switch v := n.(type) {
	case *ast.ConstExpr:
		return fmt.Sprintf("CONST %d", v.Value)
	case *ast.IdentExpr:
		return fmt.Sprintf("IDENT %s", v.Name)
	case *ast.FuncDef:
		return fmt.Sprintf("FUNC_DEF %s", v.Name)
	case *ast.FuncCallExpr:
		return fmt.Sprintf("FUNC_CALL %s", v.Name)
	case *ast.FuncParam:
		return fmt.Sprintf("FUNC_PARAM %s", v.Name)
	case *ast.VarDecl:
		return fmt.Sprintf("VAR_DEC %s", v.Name)
	default:
		return n.Kind().String()
	}
}

func indent(depth int) string {
	s := ""
	for i := 0; i < depth; i++ {
		s += "  "
	}
	return s
}

// dumpIR prints the flat instruction stream, labeled with which side of
// register allocation it reflects.
func dumpIR(label string, prog *ir.Program) {
	diag.Section("ir " + label)
	for _, in := range prog.Instrs {
		diag.Comment(fmt.Sprintf("%v %d, %d, %q", in.Op, in.LHS, in.RHS, in.Name))
	}
}
