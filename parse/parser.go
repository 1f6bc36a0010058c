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

// Package parse is a recursive-descent parser for the C subset, producing
// an *ast.Program. Every production function is a pure function of the
// shared token cursor: there is no package-level state, per the "explicit
// context objects" design note.
package parse

import (
	"rw2rvc2/ast"
	"rw2rvc2/internal/diag"
	"rw2rvc2/token"
)

// Parser walks a fixed token slice with a single cursor.
type Parser struct {
	toks []token.Token
	pos  int
}

// New returns a Parser positioned at the first token.
func New(toks []token.Token) *Parser {
	return &Parser{toks: toks}
}

// Parse parses a full translation_unit.
func Parse(toks []token.Token) *ast.Program {
	p := New(toks)
	return p.parseProgram()
}

func (p *Parser) cur() token.Token {
	return p.toks[p.pos]
}

func (p *Parser) at(k token.Kind) bool {
	return p.cur().Kind == k
}

func (p *Parser) advance() token.Token {
	t := p.cur()
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

// expect consumes the cursor only if the current token is k; otherwise it
// aborts with a fatal diagnostic naming the expected and actual token.
func (p *Parser) expect(k token.Kind) token.Token {
	if !p.at(k) {
		t := p.cur()
		diag.Fatalf(diag.Syntactic, "%d:%d: expected %s, got %s", t.Pos.Line, t.Pos.Column, k, t.Kind)
	}
	return p.advance()
}

func parseError(t token.Token) {
	diag.Fatalf(diag.Syntactic, "%d:%d: unexpected token %s", t.Pos.Line, t.Pos.Column, t.Kind)
}

// --- translation_unit := external_declaration+ -----------------------------

func (p *Parser) parseProgram() *ast.Program {
	prog := &ast.Program{}
	for !p.at(token.EOF) {
		prog.Decls = append(prog.Decls, p.parseExternalDeclaration())
	}
	return prog
}

// external_declaration := function_definition | declaration
//
// Both start with `type_specifier declarator`; we look past the declarator
// to decide which production applies: a '(' after the name means a
// function, anything else (',' '=' ';') means a variable declaration list.
func (p *Parser) parseExternalDeclaration() ast.Node {
	p.expect(token.INT) // type_specifier: this subset only has `int`
	name := p.expect(token.IDENT).Name

	if p.at(token.LEFT_PAREN) {
		params := p.parseParameterList()
		body := p.parseCompoundStatement()
		return &ast.FuncDef{Name: name, Params: params, Body: body}
	}

	list := p.parseInitDeclaratorListRest(name)
	p.expect(token.SEMICOLON)
	return list
}

// declarator := IDENT ( '(' parameter_list? ')' )?
// parameter_list := parameter_declaration ( ',' parameter_declaration )*
// parameter_declaration := type_specifier declarator
func (p *Parser) parseParameterList() []*ast.FuncParam {
	p.expect(token.LEFT_PAREN)
	var params []*ast.FuncParam
	if !p.at(token.RIGHT_PAREN) {
		for {
			p.expect(token.INT)
			params = append(params, &ast.FuncParam{Name: p.expect(token.IDENT).Name})
			if !p.at(token.COMMA) {
				break
			}
			p.advance()
		}
	}
	p.expect(token.RIGHT_PAREN)
	return params
}

// init_declarator_list := init_declarator ( ',' init_declarator )*
// init_declarator      := declarator ( '=' assignment_expression )?
//
// firstName is the identifier already consumed by the caller while
// disambiguating function vs. variable declarations.
func (p *Parser) parseInitDeclaratorListRest(firstName string) *ast.VarInitDeclList {
	list := &ast.VarInitDeclList{}
	list.List = append(list.List, p.parseInitDeclaratorRest(firstName))
	for p.at(token.COMMA) {
		p.advance()
		name := p.expect(token.IDENT).Name
		list.List = append(list.List, p.parseInitDeclaratorRest(name))
	}
	return list
}

func (p *Parser) parseInitDeclaratorRest(name string) *ast.VarDecl {
	decl := &ast.VarDecl{Name: name}
	if p.at(token.EQUAL) {
		p.advance()
		decl.Init = p.parseAssignmentExpression()
	}
	return decl
}

// compound_statement := '{' declaration_list? statement_list? '}'
//
// This subset rejects local variable declarations (spec §4.3, §9): a
// `declaration` found inside a compound statement is parsed (so the
// grammar stays intact) but is rejected by the IR builder, not silently
// turned into a global per the original implementation's `.comm` bug.
func (p *Parser) parseCompoundStatement() *ast.CompoundStmt {
	p.expect(token.LEFT_BRACE)
	block := &ast.CompoundStmt{}
	for !p.at(token.RIGHT_BRACE) {
		block.List = append(block.List, p.parseStatement())
	}
	p.expect(token.RIGHT_BRACE)
	return block
}

// statement := compound_statement
//            | jump_statement
//            | selection_statement
//            | expression_statement
func (p *Parser) parseStatement() ast.Node {
	switch p.cur().Kind {
	case token.LEFT_BRACE:
		return p.parseCompoundStatement()
	case token.RETURN:
		return p.parseJumpStatement()
	case token.IF:
		return p.parseSelectionStatement()
	case token.INT:
		return p.parseLocalDeclaration()
	default:
		return p.parseExpressionStatement()
	}
}

// A local `int x = 1;` declaration. Parsed so the grammar is complete, but
// flagged as unsupported when lowered to IR (spec §4.3's acknowledged
// gap — see SPEC_FULL.md §4.5).
func (p *Parser) parseLocalDeclaration() ast.Node {
	p.advance() // `int`
	name := p.expect(token.IDENT).Name
	list := p.parseInitDeclaratorListRest(name)
	p.expect(token.SEMICOLON)
	return list
}

// jump_statement := RETURN expression? ';'
func (p *Parser) parseJumpStatement() ast.Node {
	p.expect(token.RETURN)
	stmt := &ast.ReturnStmt{}
	if !p.at(token.SEMICOLON) {
		stmt.Expr = p.parseExpression()
	}
	p.expect(token.SEMICOLON)
	return stmt
}

// selection_statement := IF '(' expression ')' statement ( ELSE statement )?
func (p *Parser) parseSelectionStatement() ast.Node {
	p.expect(token.IF)
	p.expect(token.LEFT_PAREN)
	cond := p.parseExpression()
	p.expect(token.RIGHT_PAREN)

	branches := &ast.ThenElse{Then: p.parseStatement()}
	if p.at(token.ELSE) {
		p.advance()
		branches.Else = p.parseStatement()
	}
	return &ast.IfStmt{Cond: cond, Branches: branches}
}

// expression_statement := expression? ';'
func (p *Parser) parseExpressionStatement() ast.Node {
	if p.at(token.SEMICOLON) {
		p.advance()
		return &ast.ExpressionStmt{}
	}
	expr := p.parseExpression()
	p.expect(token.SEMICOLON)
	return &ast.ExpressionStmt{Expr: expr}
}

// expression := assignment_expression
func (p *Parser) parseExpression() ast.Node {
	return p.parseAssignmentExpression()
}

// compoundAssignOps maps a compound-assignment token to the binary
// operator it desugars through: `x OP= y` becomes `x = x OP y`.
var compoundAssignOps = map[token.Kind]ast.Kind{
	token.MUL_ASSIGN:   ast.MUL,
	token.DIV_ASSIGN:   ast.DIV,
	token.MOD_ASSIGN:   ast.MOD,
	token.ADD_ASSIGN:   ast.PLUS,
	token.SUB_ASSIGN:   ast.MINUS,
	token.LEFT_ASSIGN:  ast.LEFT_OP,
	token.RIGHT_ASSIGN: ast.RIGHT_OP,
}

// assignment_expression := conditional_expression
//                         | unary_expression ASSIGN_OP assignment_expression
//
// Assignment-target detection uses the rewind strategy from spec §4.2 and
// §9: parse a unary_expression, and if the next token isn't an assignment
// operator, rewind and reparse as a conditional_expression.
func (p *Parser) parseAssignmentExpression() ast.Node {
	save := p.pos
	lhs, ok := p.tryParseUnaryExpression()
	if ok {
		if p.at(token.EQUAL) {
			p.advance()
			return &ast.AssignExpr{LHS: lhs, RHS: p.parseAssignmentExpression()}
		}
		if op, isCompound := compoundAssignOps[p.cur().Kind]; isCompound {
			p.advance()
			rhs := p.parseAssignmentExpression()
			return &ast.AssignExpr{LHS: lhs, RHS: &ast.BinaryExpr{Op: op, LHS: lhs, RHS: rhs}}
		}
	}
	p.pos = save
	return p.parseConditionalExpression()
}

func (p *Parser) parseConditionalExpression() ast.Node {
	return p.parseLogicalOr()
}

func (p *Parser) parseLogicalOr() ast.Node {
	lhs := p.parseLogicalAnd()
	for p.at(token.OR_OP) {
		p.advance()
		lhs = &ast.BinaryExpr{Op: ast.OR_OP, LHS: lhs, RHS: p.parseLogicalAnd()}
	}
	return lhs
}

func (p *Parser) parseLogicalAnd() ast.Node {
	lhs := p.parseInclusiveOr()
	for p.at(token.AND_OP) {
		p.advance()
		lhs = &ast.BinaryExpr{Op: ast.AND_OP, LHS: lhs, RHS: p.parseInclusiveOr()}
	}
	return lhs
}

func (p *Parser) parseInclusiveOr() ast.Node {
	lhs := p.parseExclusiveOr()
	for p.at(token.OR) {
		p.advance()
		lhs = &ast.BinaryExpr{Op: ast.OR, LHS: lhs, RHS: p.parseExclusiveOr()}
	}
	return lhs
}

func (p *Parser) parseExclusiveOr() ast.Node {
	lhs := p.parseAnd()
	for p.at(token.XOR) {
		p.advance()
		lhs = &ast.BinaryExpr{Op: ast.XOR, LHS: lhs, RHS: p.parseAnd()}
	}
	return lhs
}

func (p *Parser) parseAnd() ast.Node {
	lhs := p.parseEquality()
	for p.at(token.AND) {
		p.advance()
		lhs = &ast.BinaryExpr{Op: ast.AND, LHS: lhs, RHS: p.parseEquality()}
	}
	return lhs
}

func (p *Parser) parseEquality() ast.Node {
	lhs := p.parseRelational()
	for {
		var op ast.Kind
		switch p.cur().Kind {
		case token.EQ_OP:
			op = ast.EQ_OP
		case token.NE_OP:
			op = ast.NE_OP
		default:
			return lhs
		}
		p.advance()
		lhs = &ast.BinaryExpr{Op: op, LHS: lhs, RHS: p.parseRelational()}
	}
}

func (p *Parser) parseRelational() ast.Node {
	lhs := p.parseShift()
	for {
		var op ast.Kind
		switch p.cur().Kind {
		case token.LESS_OP:
			op = ast.LESS_OP
		case token.GREATER_OP:
			op = ast.GREATER_OP
		case token.LE_OP:
			op = ast.LE_OP
		case token.GE_OP:
			op = ast.GE_OP
		default:
			return lhs
		}
		p.advance()
		lhs = &ast.BinaryExpr{Op: op, LHS: lhs, RHS: p.parseShift()}
	}
}

func (p *Parser) parseShift() ast.Node {
	lhs := p.parseAdditive()
	for {
		var op ast.Kind
		switch p.cur().Kind {
		case token.LEFT_OP:
			op = ast.LEFT_OP
		case token.RIGHT_OP:
			op = ast.RIGHT_OP
		default:
			return lhs
		}
		p.advance()
		lhs = &ast.BinaryExpr{Op: op, LHS: lhs, RHS: p.parseAdditive()}
	}
}

func (p *Parser) parseAdditive() ast.Node {
	lhs := p.parseMultiplicative()
	for {
		var op ast.Kind
		switch p.cur().Kind {
		case token.PLUS:
			op = ast.PLUS
		case token.MINUS:
			op = ast.MINUS
		default:
			return lhs
		}
		p.advance()
		lhs = &ast.BinaryExpr{Op: op, LHS: lhs, RHS: p.parseMultiplicative()}
	}
}

func (p *Parser) parseMultiplicative() ast.Node {
	lhs := p.parseUnary()
	for {
		var op ast.Kind
		switch p.cur().Kind {
		case token.MUL:
			op = ast.MUL
		case token.DIV:
			op = ast.DIV
		case token.MOD:
			op = ast.MOD
		default:
			return lhs
		}
		p.advance()
		lhs = &ast.BinaryExpr{Op: op, LHS: lhs, RHS: p.parseUnary()}
	}
}

// unary := postfix | ('+'|'-') cast
func (p *Parser) parseUnary() ast.Node {
	switch p.cur().Kind {
	case token.PLUS:
		p.advance()
		return &ast.UnaryExpr{Op: ast.PLUS, Operand: p.parseUnary()}
	case token.MINUS:
		p.advance()
		return &ast.UnaryExpr{Op: ast.MINUS, Operand: p.parseUnary()}
	default:
		return p.parsePostfix()
	}
}

// tryParseUnaryExpression parses with parsePostfix (no unary +/- prefix)
// and reports whether the current token could start one, for the
// assignment-target rewind in parseAssignmentExpression.
func (p *Parser) tryParseUnaryExpression() (ast.Node, bool) {
	if !p.at(token.IDENT) && !p.at(token.NUM) && !p.at(token.LEFT_PAREN) {
		return nil, false
	}
	return p.parsePostfix(), true
}

// postfix := primary ( '(' argument_list? ')' )*
//
// Only an identifier can be called, and only with a single argument list;
// a call result or a parenthesized expression is not followed by '('.
func (p *Parser) parsePostfix() ast.Node {
	if p.at(token.IDENT) {
		name := p.cur().Name
		p.advance()
		if p.at(token.LEFT_PAREN) {
			return p.parseFuncCallRest(name)
		}
		return &ast.IdentExpr{Name: name}
	}
	return p.parsePrimary()
}

func (p *Parser) parseFuncCallRest(name string) ast.Node {
	p.expect(token.LEFT_PAREN)
	call := &ast.FuncCallExpr{Name: name}
	if !p.at(token.RIGHT_PAREN) {
		for {
			call.Args = append(call.Args, p.parseAssignmentExpression())
			if !p.at(token.COMMA) {
				break
			}
			p.advance()
		}
	}
	p.expect(token.RIGHT_PAREN)
	return call
}

// primary := '(' expression ')' | IDENT | INT_LIT
func (p *Parser) parsePrimary() ast.Node {
	switch p.cur().Kind {
	case token.LEFT_PAREN:
		p.advance()
		expr := p.parseExpression()
		p.expect(token.RIGHT_PAREN)
		return expr
	case token.NUM:
		v := p.cur().Value
		p.advance()
		return &ast.ConstExpr{Value: v}
	case token.IDENT:
		name := p.cur().Name
		p.advance()
		return &ast.IdentExpr{Name: name}
	default:
		parseError(p.cur())
		panic("unreachable")
	}
}
