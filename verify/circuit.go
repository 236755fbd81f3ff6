// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package verify

import (
	"errors"
	"fmt"

	"github.com/dalzilio/robdd"
	"github.com/dalzilio/robdd/formula"
	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
)

// ErrUndecided is returned when the solver cannot decide equivalence.
var ErrUndecided = errors.New("solver could not decide equivalence")

// circuit encodes formulas and diagrams in the same gini circuit. Each
// variable name is associated with a single input.
type circuit struct {
	c     *logic.C
	vars  map[string]z.Lit
	names []string // inputs in order of creation
}

func newcircuit() *circuit {
	return &circuit{
		c:    logic.NewC(),
		vars: make(map[string]z.Lit),
	}
}

func (ct *circuit) input(name string) z.Lit {
	if m, ok := ct.vars[name]; ok {
		return m
	}
	m := ct.c.Lit()
	ct.vars[name] = m
	ct.names = append(ct.names, name)
	return m
}

func (ct *circuit) formula(f formula.Expr) (z.Lit, error) {
	switch f := f.(type) {
	case formula.Literal:
		if f {
			return ct.c.T, nil
		}
		return ct.c.F, nil
	case formula.Var:
		return ct.input(string(f)), nil
	case *formula.Not:
		x, err := ct.formula(f.X)
		return x.Not(), err
	case *formula.Binary:
		l, err := ct.formula(f.L)
		if err != nil {
			return z.LitNull, err
		}
		r, err := ct.formula(f.R)
		if err != nil {
			return z.LitNull, err
		}
		switch f.Op {
		case formula.OPand:
			return ct.c.And(l, r), nil
		case formula.OPor:
			return ct.c.Or(l, r), nil
		case formula.OPxor:
			return ct.c.Xor(l, r), nil
		case formula.OPimp:
			return ct.c.Implies(l, r), nil
		case formula.OPbiimp:
			return ct.c.Xor(l, r).Not(), nil
		}
		return z.LitNull, fmt.Errorf("unknown operator %s", f.Op)
	}
	return z.LitNull, fmt.Errorf("unexpected expression %T", f)
}

// diagram encodes the diagram with the given root. Each decision node
// becomes a multiplexer choosing between its high and low successors.
func (ct *circuit) diagram(e *robdd.Engine, root int) (z.Lit, error) {
	lits := make(map[int]z.Lit)
	err := e.Allnodes(func(id int, v string, low, high int) error {
		switch id {
		case e.False():
			lits[id] = ct.c.F
		case e.True():
			lits[id] = ct.c.T
		default:
			lits[id] = ct.c.Choice(ct.input(v), lits[high], lits[low])
		}
		return nil
	}, root)
	if err != nil {
		return z.LitNull, err
	}
	return lits[root], nil
}

// Counterexample returns an assignment on which the formula f and the diagram
// with the given root disagree, or nil if they denote the same function. The
// assignment gives a value to every variable of f and of the diagram.
func Counterexample(e *robdd.Engine, root int, f formula.Expr) (map[string]bool, error) {
	if f == nil {
		return nil, errors.New("nil formula in call to Counterexample")
	}
	ct := newcircuit()
	fl, err := ct.formula(f)
	if err != nil {
		return nil, err
	}
	dl, err := ct.diagram(e, root)
	if err != nil {
		return nil, err
	}
	diff := ct.c.Xor(fl, dl)
	if diff == ct.c.F {
		return nil, nil
	}
	g := gini.New()
	ct.c.ToCnf(g)
	// the constant input of the circuit is true
	g.Add(ct.c.T)
	g.Add(0)
	g.Assume(diff)
	switch g.Solve() {
	case -1:
		return nil, nil
	case 1:
		res := make(map[string]bool, len(ct.names))
		for _, name := range ct.names {
			res[name] = g.Value(ct.vars[name])
		}
		return res, nil
	}
	return nil, ErrUndecided
}

// Equivalent reports whether the diagram with the given root denotes the same
// Boolean function as f.
func Equivalent(e *robdd.Engine, root int, f formula.Expr) (bool, error) {
	cex, err := Counterexample(e, root, f)
	if err != nil {
		return false, err
	}
	return cex == nil, nil
}
