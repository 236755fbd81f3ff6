// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package formula

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperatorTable(t *testing.T) {
	var opTests = []struct {
		op       Op
		expected [4]bool // 00, 01, 10, 11
	}{
		{OPand, [4]bool{false, false, false, true}},
		{OPor, [4]bool{false, true, true, true}},
		{OPxor, [4]bool{false, true, true, false}},
		{OPimp, [4]bool{true, true, false, true}},
		{OPbiimp, [4]bool{true, false, false, true}},
	}
	for _, tt := range opTests {
		actual := [4]bool{
			tt.op.Apply(false, false),
			tt.op.Apply(false, true),
			tt.op.Apply(true, false),
			tt.op.Apply(true, true),
		}
		assert.Equal(t, tt.expected, actual, tt.op.String())
	}
}

func TestSimplify(t *testing.T) {
	var simplifyTests = []struct {
		input    Expr
		expected string
	}{
		{And(True, Var("x")), "x"},
		{And(Var("x"), False), "0"},
		{Or(Var("x"), True), "1"},
		{Or(False, Var("x")), "x"},
		{Xor(True, Var("x")), "!x"},
		{Xor(Var("x"), False), "x"},
		{Implies(False, Var("x")), "1"},
		{Implies(True, Var("x")), "x"},
		{Implies(Var("x"), True), "1"},
		{Implies(Var("x"), False), "!x"},
		{Iff(Var("x"), True), "x"},
		{Iff(False, Var("x")), "!x"},
		{Neg(Neg(Var("x"))), "x"},
		{Neg(True), "0"},
		{Xor(True, Neg(Var("x"))), "x"},
		{MustParse("a & a"), "a"},
		{MustParse("a | a"), "a"},
		{MustParse("a ^ a"), "0"},
		{MustParse("a -> a"), "1"},
		{MustParse("a <-> a"), "1"},
		{MustParse("a & !a"), "0"},
		{MustParse("!a | a"), "1"},
		{MustParse("a ^ !a"), "1"},
		{MustParse("a <-> !a"), "0"},
		{MustParse("a -> !a"), "!a"},
		{MustParse("!a -> a"), "a"},
		{MustParse("(a & b) | (a & b)"), "(a & b)"},
		{MustParse("a & b"), "(a & b)"},
	}
	for _, tt := range simplifyTests {
		actual := Simplify(tt.input)
		assert.Equal(t, tt.expected, actual.String(), "Simplify(%s)", tt.input)
	}
}

func TestSimplifyShares(t *testing.T) {
	e := MustParse("(a & b) | !c")
	assert.Same(t, e, Simplify(e))
	s := Substitute(e, "c", true)
	// (a & b) | false == (a & b), which is the left subtree of e
	assert.Same(t, e.(*Binary).L, Simplify(s))
}

func TestSubstitute(t *testing.T) {
	e := MustParse("(a & !c) | (b ^ d)")
	before := e.String()
	low := Substitute(e, "a", false)
	assert.Equal(t, "((0 & !c) | (b ^ d))", low.String())
	// the input is left unchanged and unrelated subtrees are shared
	assert.Equal(t, before, e.String())
	assert.Same(t, e.(*Binary).R, low.(*Binary).R)
	// substituting a variable that does not occur returns e itself
	assert.Same(t, e, Substitute(e, "z", true))
	assert.Equal(t, "(b ^ d)", Simplify(low).String())
}

func TestFreeVariables(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c", "d"}, FreeVariables(MustParse("(d & !c) | (b ^ a) -> a")))
	assert.Empty(t, FreeVariables(True))
	assert.True(t, Occurs(MustParse("a & !b"), "b"))
	assert.False(t, Occurs(MustParse("a & !b"), "c"))
}

// randomExpr returns a random formula over the variables in vars.
func randomExpr(r *rand.Rand, vars []string, depth int) Expr {
	if depth == 0 || r.Intn(4) == 0 {
		switch r.Intn(8) {
		case 0:
			return True
		case 1:
			return False
		}
		return Var(vars[r.Intn(len(vars))])
	}
	if r.Intn(5) == 0 {
		return Neg(randomExpr(r, vars, depth-1))
	}
	return &Binary{Op(r.Intn(5)), randomExpr(r, vars, depth-1), randomExpr(r, vars, depth-1)}
}

// TestSimplifyEquivalence checks that Simplify preserves the semantics of
// random formulas, and that it always folds closed formulas to a constant.
func TestSimplifyEquivalence(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	vars := []string{"a", "b", "c"}
	for i := 0; i < 300; i++ {
		e := randomExpr(r, vars, 5)
		s := Simplify(e)
		for k := 0; k < 8; k++ {
			env := map[string]bool{"a": k&1 != 0, "b": k&2 != 0, "c": k&4 != 0}
			require.Equal(t, Eval(e, env), Eval(s, env), "Simplify(%s) = %s", e, s)
			closed := e
			for _, v := range vars {
				closed = Substitute(closed, v, env[v])
			}
			c := Simplify(closed)
			require.True(t, IsConst(c), "Simplify(%s) = %s is not a constant", closed, c)
			require.Equal(t, Eval(e, env), IsTrue(c))
		}
	}
}
