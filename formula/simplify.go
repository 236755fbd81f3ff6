// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package formula

import "sort"

// Simplify returns a formula equivalent to e obtained by constant folding. The
// rewriting is done in a single bottom-up pass and always terminates. A
// formula without variables simplifies to a Literal, so that the result of
// substituting all the variables of e can be checked with IsTrue and IsFalse.
//
// Besides folding constants, we use the neutral and absorbing elements of each
// operator, remove double negations, and rewrite operations between a formula
// and itself (or its negation), like x & x or x ^ !x. Subtrees that do not
// change are shared with e.
func Simplify(e Expr) Expr {
	switch e := e.(type) {
	case *Not:
		x := Simplify(e.X)
		switch x.(type) {
		case Literal, *Not:
			return negate(x)
		}
		if x == e.X {
			return e
		}
		return &Not{x}
	case *Binary:
		return simplifyBinary(e, Simplify(e.L), Simplify(e.R))
	}
	return e
}

// negate returns the negation of a simplified formula.
func negate(x Expr) Expr {
	switch x := x.(type) {
	case Literal:
		return !x
	case *Not:
		return x.X
	}
	return &Not{x}
}

func simplifyBinary(e *Binary, l, r Expr) Expr {
	lc, lconst := l.(Literal)
	rc, rconst := r.(Literal)
	switch {
	case lconst && rconst:
		return Literal(e.Op.Apply(bool(lc), bool(rc)))
	case lconst:
		return foldleft(e.Op, bool(lc), r)
	case rconst:
		return foldright(e.Op, l, bool(rc))
	case Equal(l, r):
		switch e.Op {
		case OPand, OPor:
			return l
		case OPxor:
			return False
		default:
			return True
		}
	case complement(l, r):
		switch e.Op {
		case OPand, OPbiimp:
			return False
		case OPor, OPxor:
			return True
		default:
			// (x -> !x) == !x and (!x -> x) == x
			return r
		}
	}
	if l == e.L && r == e.R {
		return e
	}
	return &Binary{e.Op, l, r}
}

// foldleft simplifies (c op x) when c is a constant.
func foldleft(op Op, c bool, x Expr) Expr {
	switch op {
	case OPand:
		if c {
			return x
		}
		return False
	case OPor:
		if c {
			return True
		}
		return x
	case OPxor:
		if c {
			return negate(x)
		}
		return x
	case OPimp:
		if c {
			return x
		}
		return True
	}
	// OPbiimp
	if c {
		return x
	}
	return negate(x)
}

// foldright simplifies (x op c) when c is a constant. Only implication is not
// commutative.
func foldright(op Op, x Expr, c bool) Expr {
	if op == OPimp {
		if c {
			return True
		}
		return negate(x)
	}
	return foldleft(op, c, x)
}

// complement reports whether one of a or b is the negation of the other.
func complement(a, b Expr) bool {
	if n, ok := a.(*Not); ok && Equal(n.X, b) {
		return true
	}
	if n, ok := b.(*Not); ok && Equal(n.X, a) {
		return true
	}
	return false
}

// ************************************************************

// Substitute returns the formula obtained by replacing every occurrence of
// variable name in e with the constant value. The result shares all the
// subtrees of e that do not contain name, and e is left unchanged.
func Substitute(e Expr, name string, value bool) Expr {
	switch e := e.(type) {
	case Var:
		if string(e) == name {
			return Literal(value)
		}
	case *Not:
		if x := Substitute(e.X, name, value); x != e.X {
			return &Not{x}
		}
	case *Binary:
		l := Substitute(e.L, name, value)
		r := Substitute(e.R, name, value)
		if l != e.L || r != e.R {
			return &Binary{e.Op, l, r}
		}
	}
	return e
}

// FreeVariables returns the names of the variables occurring in e, sorted in
// alphabetical order and without duplicates.
func FreeVariables(e Expr) []string {
	seen := make(map[string]bool)
	collect(e, seen)
	res := make([]string, 0, len(seen))
	for v := range seen {
		res = append(res, v)
	}
	sort.Strings(res)
	return res
}

func collect(e Expr, seen map[string]bool) {
	switch e := e.(type) {
	case Var:
		seen[string(e)] = true
	case *Not:
		collect(e.X, seen)
	case *Binary:
		collect(e.L, seen)
		collect(e.R, seen)
	}
}

// Occurs reports whether variable name appears in e.
func Occurs(e Expr, name string) bool {
	switch e := e.(type) {
	case Var:
		return string(e) == name
	case *Not:
		return Occurs(e.X, name)
	case *Binary:
		return Occurs(e.L, name) || Occurs(e.R, name)
	}
	return false
}

// Eval returns the value of e for the given assignment. Variables that are not
// in env are considered false.
func Eval(e Expr, env map[string]bool) bool {
	switch e := e.(type) {
	case Literal:
		return bool(e)
	case Var:
		return env[string(e)]
	case *Not:
		return !Eval(e.X, env)
	case *Binary:
		return e.Op.Apply(Eval(e.L, env), Eval(e.R, env))
	}
	return false
}
