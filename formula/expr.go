// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package formula

import "strings"

// Expr is a node in a formula tree. The concrete types are Literal, Var, *Not
// and *Binary. Trees are never modified after construction; functions such as
// Simplify and Substitute return new trees that may share subtrees with their
// input.
type Expr interface {
	String() string
	write(sb *strings.Builder)
}

// Literal is a Boolean constant.
type Literal bool

// Var is a propositional variable.
type Var string

// Not is the negation of X.
type Not struct {
	X Expr
}

// Binary is the application of a binary connective.
type Binary struct {
	Op   Op
	L, R Expr
}

// True and False are the two constant formulas.
var (
	True  Expr = Literal(true)
	False Expr = Literal(false)
)

// And returns the conjunction (l & r).
func And(l, r Expr) Expr { return &Binary{OPand, l, r} }

// Or returns the disjunction (l | r).
func Or(l, r Expr) Expr { return &Binary{OPor, l, r} }

// Xor returns the exclusive or (l ^ r).
func Xor(l, r Expr) Expr { return &Binary{OPxor, l, r} }

// Implies returns the implication (l -> r).
func Implies(l, r Expr) Expr { return &Binary{OPimp, l, r} }

// Iff returns the equivalence (l <-> r).
func Iff(l, r Expr) Expr { return &Binary{OPbiimp, l, r} }

// Neg returns the negation of e.
func Neg(e Expr) Expr { return &Not{e} }

// IsTrue reports whether e is the constant true. It only looks at the root of
// e, so it should be called on the result of Simplify.
func IsTrue(e Expr) bool {
	l, ok := e.(Literal)
	return ok && bool(l)
}

// IsFalse reports whether e is the constant false (see IsTrue).
func IsFalse(e Expr) bool {
	l, ok := e.(Literal)
	return ok && !bool(l)
}

// IsConst reports whether e is a Literal.
func IsConst(e Expr) bool {
	_, ok := e.(Literal)
	return ok
}

// ************************************************************

// The textual form of a tree is fully parenthesized, so that two trees are
// structurally equal exactly when their strings are equal. Constants are
// printed as 0 and 1, which cannot be confused with identifiers.

func (l Literal) String() string {
	if l {
		return "1"
	}
	return "0"
}

func (v Var) String() string { return string(v) }

func (n *Not) String() string { return tostring(n) }

func (b *Binary) String() string { return tostring(b) }

func tostring(e Expr) string {
	var sb strings.Builder
	e.write(&sb)
	return sb.String()
}

func (l Literal) write(sb *strings.Builder) {
	sb.WriteString(l.String())
}

func (v Var) write(sb *strings.Builder) {
	sb.WriteString(string(v))
}

func (n *Not) write(sb *strings.Builder) {
	sb.WriteByte('!')
	n.X.write(sb)
}

func (b *Binary) write(sb *strings.Builder) {
	sb.WriteByte('(')
	b.L.write(sb)
	sb.WriteByte(' ')
	sb.WriteString(b.Op.Symbol())
	sb.WriteByte(' ')
	b.R.write(sb)
	sb.WriteByte(')')
}

// ************************************************************

// Equal reports whether a and b are structurally identical.
func Equal(a, b Expr) bool {
	switch a := a.(type) {
	case Literal:
		bl, ok := b.(Literal)
		return ok && a == bl
	case Var:
		bv, ok := b.(Var)
		return ok && a == bv
	case *Not:
		bn, ok := b.(*Not)
		return ok && (a == bn || Equal(a.X, bn.X))
	case *Binary:
		bb, ok := b.(*Binary)
		if !ok {
			return false
		}
		if a == bb {
			return true
		}
		return a.Op == bb.Op && Equal(a.L, bb.L) && Equal(a.R, bb.R)
	}
	return false
}

// Size returns the number of nodes in e.
func Size(e Expr) int {
	switch e := e.(type) {
	case *Not:
		return 1 + Size(e.X)
	case *Binary:
		return 1 + Size(e.L) + Size(e.R)
	}
	return 1
}
