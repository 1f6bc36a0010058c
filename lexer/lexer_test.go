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

package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rw2rvc2/token"
)

func kinds(toks []token.Token) []token.Kind {
	ks := make([]token.Kind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}
	return ks
}

func TestTokenizeSimpleExpression(t *testing.T) {
	toks := Tokenize([]byte("x = 1 + 2;"))
	require.Equal(t, []token.Kind{
		token.IDENT, token.EQUAL, token.NUM, token.PLUS, token.NUM, token.SEMICOLON, token.EOF,
	}, kinds(toks))
	require.Equal(t, int32(1), toks[2].Value)
	require.Equal(t, int32(2), toks[4].Value)
}

func TestTokenizeKeywordsAndIdentifiers(t *testing.T) {
	toks := Tokenize([]byte("int returnValue if"))
	require.Equal(t, []token.Kind{token.INT, token.IDENT, token.IF, token.EOF}, kinds(toks))
	require.Equal(t, "returnValue", toks[1].Name)
}

func TestTokenizeMultiByteOperatorsPreferLongestMatch(t *testing.T) {
	toks := Tokenize([]byte("a <<= b >>= c << d >> e <= f >= g == h != i"))
	require.Equal(t, []token.Kind{
		token.IDENT, token.LEFT_ASSIGN, token.IDENT, token.RIGHT_ASSIGN, token.IDENT,
		token.LEFT_OP, token.IDENT, token.RIGHT_OP, token.IDENT, token.LE_OP, token.IDENT,
		token.GE_OP, token.IDENT, token.EQ_OP, token.IDENT, token.NE_OP, token.IDENT, token.EOF,
	}, kinds(toks))
}

func TestTokenizeSkipsBlockComments(t *testing.T) {
	toks := Tokenize([]byte("1 /* comment\nspanning lines */ + 2"))
	require.Equal(t, []token.Kind{token.NUM, token.PLUS, token.NUM, token.EOF}, kinds(toks))
}

func TestTokenizeTracksLineAndColumn(t *testing.T) {
	toks := Tokenize([]byte("a\nb"))
	require.Equal(t, 1, toks[0].Pos.Line)
	require.Equal(t, 2, toks[1].Pos.Line)
}
