// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package formula

import (
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	toks, err := Tokenize(" a1 <-> (_b ->!c)\t& d |e^f ")
	require.NoError(t, err)
	kinds := make([]Kind, len(toks))
	texts := make([]string, len(toks))
	for k, tok := range toks {
		kinds[k] = tok.Kind
		texts[k] = tok.Text
	}
	assert.Equal(t, []Kind{IDENT, IFF, LPAREN, IDENT, IMP, NOT, IDENT, RPAREN, AND, IDENT, OR, IDENT, XOR, IDENT}, kinds)
	assert.Equal(t, []string{"a1", "<->", "(", "_b", "->", "!", "c", ")", "&", "d", "|", "e", "^", "f"}, texts)
	// positions are computed on the input without whitespace
	assert.Equal(t, 0, toks[0].Pos)
	assert.Equal(t, 2, toks[1].Pos)
	assert.Equal(t, 5, toks[2].Pos)
}

func TestTokenizeErrors(t *testing.T) {
	var lexTests = []struct {
		input string
		pos   int
	}{
		{"a $ b", 1},
		{"1a", 0},
		{"a & 2", 2},
		{"a - b", 1},
		{"a <- b", 1},
		{"a = b", 1},
	}
	for _, tt := range lexTests {
		_, err := Tokenize(tt.input)
		require.Error(t, err, tt.input)
		assert.True(t, errors.Is(err, ErrLex), "%q: expected lex error, actual %v", tt.input, err)
		var lerr *LexError
		require.True(t, errors.As(err, &lerr))
		assert.Equal(t, tt.pos, lerr.Pos, tt.input)
	}
}

func TestLexErrorNear(t *testing.T) {
	var nearTests = []struct {
		input string
		near  string
	}{
		{"a $ b", "$b"},
		{"a & $bcdefghijklm", "$bcdefghij"},
		// the euro sign is 3 bytes long and is not cut in the middle
		{"a & €€€€€", "€€€"},
		{"a & é", "é"},
	}
	for _, tt := range nearTests {
		_, err := Tokenize(tt.input)
		var lerr *LexError
		require.True(t, errors.As(err, &lerr), tt.input)
		assert.Equal(t, tt.near, lerr.Near, tt.input)
		assert.True(t, utf8.ValidString(lerr.Near), tt.input)
	}
}

func TestParsePrecedence(t *testing.T) {
	a, b, c, d := Var("a"), Var("b"), Var("c"), Var("d")
	var parseTests = []struct {
		input    string
		expected Expr
	}{
		{"a", a},
		{"a & b | c", Or(And(a, b), c)},
		{"a | b & c", Or(a, And(b, c))},
		{"a -> b -> c", Implies(a, Implies(b, c))},
		{"a <-> b <-> c", Iff(a, Iff(b, c))},
		{"!a & b", And(Neg(a), b)},
		{"!(a & b)", Neg(And(a, b))},
		{"!!a", Neg(Neg(a))},
		{"a & b & c", And(And(a, b), c)},
		{"a | b | c", Or(Or(a, b), c)},
		{"a ^ b ^ c", Xor(Xor(a, b), c)},
		{"a ^ b & c", Xor(a, And(b, c))},
		{"a | b ^ c", Or(a, Xor(b, c))},
		{"a -> b | c", Implies(a, Or(b, c))},
		{"a <-> b -> c", Iff(a, Implies(b, c))},
		{"a -> b <-> c", Iff(Implies(a, b), c)},
		{"(a -> b) -> c", Implies(Implies(a, b), c)},
		{"(a & !c) | (b ^ d)", Or(And(a, Neg(c)), Xor(b, d))},
		{"((a))", a},
	}
	for _, tt := range parseTests {
		actual, err := Parse(tt.input)
		require.NoError(t, err, tt.input)
		if diff := cmp.Diff(tt.expected, actual); diff != "" {
			t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.input, diff)
		}
	}
}

func TestParseErrors(t *testing.T) {
	var errTests = []struct {
		input string
		msg   string
	}{
		{"(a & b", MsgUnterminated},
		{"a &", MsgEndOfInput},
		{"", MsgEndOfInput},
		{"   ", MsgEndOfInput},
		{"!", MsgEndOfInput},
		{"a b", MsgTrailing},
		{"a & b)", MsgTrailing},
		{"(a b)", MsgUnterminated},
		{")", MsgUnexpected},
		{"& a", MsgUnexpected},
		{"a & | b", MsgUnexpected},
		{"()", MsgUnexpected},
	}
	for _, tt := range errTests {
		_, err := Parse(tt.input)
		require.Error(t, err, tt.input)
		assert.True(t, errors.Is(err, ErrSyntax), "%q: expected syntax error, actual %v", tt.input, err)
		var serr *SyntaxError
		require.True(t, errors.As(err, &serr), tt.input)
		assert.Equal(t, tt.msg, serr.Msg, tt.input)
	}
}

func TestParseLexError(t *testing.T) {
	_, err := Parse("a $ b")
	assert.ErrorIs(t, err, ErrLex)
	assert.NotErrorIs(t, err, ErrSyntax)
}

func TestStringRoundTrip(t *testing.T) {
	for _, s := range []string{
		"a & b | c",
		"a -> b -> c",
		"!(a <-> !b) ^ c",
		"(a & !c) | (b ^ d)",
	} {
		e := MustParse(s)
		again, err := Parse(e.String())
		require.NoError(t, err, e.String())
		assert.True(t, Equal(e, again), "%s != %s", e, again)
	}
	assert.Equal(t, "((a & b) | !c)", MustParse("a&b|!c").String())
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { MustParse("a &") })
}
