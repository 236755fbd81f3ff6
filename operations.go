// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"fmt"
	"math/big"
	"sort"
)

// checkptr returns an error if n is not a valid id.
func (e *Engine) checkptr(n int) error {
	if n < 0 || n >= len(e.nodes) {
		return seterror(ErrUnknownNode, "node %d", n)
	}
	return nil
}

// Size returns the number of nodes in the table, constants included.
func (e *Engine) Size() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.size()
}

// IsTerminal reports whether n is one of the two constants.
func (e *Engine) IsTerminal(n int) bool {
	return n == bddzero || n == bddone
}

// Node returns the variable tested by node n and the ids of its low (false)
// and high (true) branches. For the constants, the variable is the empty
// string and both branches are the constant itself.
func (e *Engine) Node(n int) (variable string, low int, high int, err error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if err := e.checkptr(n); err != nil {
		return "", -1, -1, err
	}
	return e.varname(n), e.low(n), e.high(n), nil
}

// Var returns the variable tested by node n, or the empty string if n is a
// constant or an unknown id.
func (e *Engine) Var(n int) string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.checkptr(n) != nil {
		return ""
	}
	return e.varname(n)
}

func (e *Engine) varname(n int) string {
	if n < 2 {
		return ""
	}
	return e.varnames[e.level(n)]
}

// ************************************************************

// Allnodes applies function f over all the nodes reachable from the nodes in
// the sequence n..., or all the nodes in the table if n is absent. The
// parameters to function f are the id, the name of the variable, and the ids of
// the low and high successors of each node. The two constant nodes (True and
// False) have always the id 1 and 0 respectively, an empty variable name, and
// are always visited first. Each node is visited exactly once, and a node is
// always visited after its successors.
//
// We stop the computation and return an error if f returns an error at some
// point. The nodes are collected before the first call to f, and f is called
// without holding the engine lock, so it can use the engine (even Build).
//
// The following is an example of a callback handler that counts the number of
// active nodes in the diagram:
//     acc := new(int)
//     e.Allnodes(func(id int, v string, low, high int) error {
//       *acc++
//        return nil
//      })
func (e *Engine) Allnodes(f func(id int, variable string, low, high int) error, n ...int) error {
	type entry struct {
		id, low, high int
		variable      string
	}
	var nodes []entry
	collect := func(id int, v string, low, high int) error {
		nodes = append(nodes, entry{id, low, high, v})
		return nil
	}
	e.mu.RLock()
	for _, v := range n {
		if err := e.checkptr(v); err != nil {
			e.mu.RUnlock()
			return fmt.Errorf("wrong node in call to Allnodes: %w", err)
		}
	}
	if len(n) == 0 {
		e.allnodes(collect)
	} else {
		e.allnodesfrom(collect, n)
	}
	e.mu.RUnlock()
	for _, k := range nodes {
		if err := f(k.id, k.variable, k.low, k.high); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) allnodes(f func(id int, variable string, low, high int) error) error {
	for k := range e.nodes {
		if err := f(k, e.varname(k), e.low(k), e.high(k)); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) allnodesfrom(f func(id int, variable string, low, high int) error, n []int) error {
	if err := f(bddzero, "", bddzero, bddzero); err != nil {
		return err
	}
	if err := f(bddone, "", bddone, bddone); err != nil {
		return err
	}
	visited := map[int]bool{bddzero: true, bddone: true}
	var visit func(k int) error
	visit = func(k int) error {
		if visited[k] {
			return nil
		}
		visited[k] = true
		if err := visit(e.low(k)); err != nil {
			return err
		}
		if err := visit(e.high(k)); err != nil {
			return err
		}
		return f(k, e.varname(k), e.low(k), e.high(k))
	}
	for _, k := range n {
		if err := visit(k); err != nil {
			return err
		}
	}
	return nil
}

// Reachable returns the sorted list of ids reachable from root, constants
// excluded.
func (e *Engine) Reachable(root int) ([]int, error) {
	res := []int{}
	err := e.Allnodes(func(id int, _ string, _, _ int) error {
		if id > 1 {
			res = append(res, id)
		}
		return nil
	}, root)
	if err != nil {
		return nil, err
	}
	sort.Ints(res)
	return res, nil
}

// ************************************************************

// Eval returns the value of the function denoted by root for the given
// assignment of its variables. We return an error if we reach a node testing
// a variable that is not in assignment.
func (e *Engine) Eval(root int, assignment map[string]bool) (bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if err := e.checkptr(root); err != nil {
		return false, err
	}
	n := root
	for n > 1 {
		v := e.varname(n)
		value, ok := assignment[v]
		if !ok {
			return false, fmt.Errorf("no value for variable %s in call to Eval", v)
		}
		if value {
			n = e.high(n)
		} else {
			n = e.low(n)
		}
	}
	return n == bddone, nil
}

// positions returns a function giving the position in ordering of the
// variable tested by each node; constants are after all the variables. We
// check that the diagram rooted at root is ordered according to ordering.
func (e *Engine) positions(root int, ordering []string) (func(n int) int, error) {
	index := make(map[string]int, len(ordering))
	for k, v := range ordering {
		index[v] = k
	}
	pos := func(n int) int {
		if n < 2 {
			return len(ordering)
		}
		return index[e.varname(n)]
	}
	err := e.allnodesfrom(func(id int, v string, low, high int) error {
		if id < 2 {
			return nil
		}
		if _, ok := index[v]; !ok {
			return orderingerror("variable %s of node %d is not in the ordering", v, id)
		}
		if pos(low) <= pos(id) || pos(high) <= pos(id) {
			return orderingerror("node %d (%s) is not ordered according to the ordering", id, v)
		}
		return nil
	}, []int{root})
	return pos, err
}

// Satcount computes the number of satisfying variable assignments for the
// function denoted by root, over the variables in ordering. We return a result
// using arbitrary-precision arithmetic to avoid possible overflows. The
// ordering must be compatible with the one used to build root.
func (e *Engine) Satcount(root int, ordering []string) (*big.Int, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if err := e.checkptr(root); err != nil {
		return nil, err
	}
	pos, err := e.positions(root, ordering)
	if err != nil {
		return nil, err
	}
	res := big.NewInt(0)
	// We compute 2^level with a bit shift 1 << level
	res.SetBit(res, pos(root), 1)
	satc := make(map[int]*big.Int)
	return res.Mul(res, e.satcount(root, pos, satc)), nil
}

func (e *Engine) satcount(n int, pos func(int) int, satc map[int]*big.Int) *big.Int {
	if n < 2 {
		return big.NewInt(int64(n))
	}
	// we use satc to memoize the value of satcount for each nodes
	res, ok := satc[n]
	if ok {
		return res
	}
	low := e.low(n)
	high := e.high(n)

	res = big.NewInt(0)
	two := big.NewInt(0)
	two.SetBit(two, pos(low)-pos(n)-1, 1)
	res.Add(res, two.Mul(two, e.satcount(low, pos, satc)))
	two = big.NewInt(0)
	two.SetBit(two, pos(high)-pos(n)-1, 1)
	res.Add(res, two.Mul(two, e.satcount(high, pos, satc)))
	satc[n] = res
	return res
}

// Allsat iterates through all legal variable assignments for root and calls
// the function f on each of them. We pass an int slice of the same length as
// ordering to f where each entry is either 0 if the variable is false, 1 if it
// is true, and -1 if it is a don't care. The slice is reused between calls. We
// stop and return an error if f returns an error at some point.
//
// The following is an example of a callback handler that counts the number of
// possible assignments (such that we do not count don't care twice):
//     acc := new(int)
//     e.Allsat(n, ordering, func(varset []int) error {
//       *acc++
//        return nil
//      })
func (e *Engine) Allsat(root int, ordering []string, f func([]int) error) error {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if err := e.checkptr(root); err != nil {
		return fmt.Errorf("wrong node in call to Allsat: %w", err)
	}
	pos, err := e.positions(root, ordering)
	if err != nil {
		return err
	}
	prof := make([]int, len(ordering))
	for k := range prof {
		prof[k] = -1
	}
	return e.allsat(root, pos, prof, f)
}

func (e *Engine) allsat(n int, pos func(int) int, prof []int, f func([]int) error) error {
	if n == 1 {
		return f(prof)
	}
	if n == 0 {
		return nil
	}

	if low := e.low(n); low != 0 {
		prof[pos(n)] = 0
		for v := pos(low) - 1; v > pos(n); v-- {
			prof[v] = -1
		}
		if err := e.allsat(low, pos, prof, f); err != nil {
			return err
		}
	}

	if high := e.high(n); high != 0 {
		prof[pos(n)] = 1
		for v := pos(high) - 1; v > pos(n); v-- {
			prof[v] = -1
		}
		if err := e.allsat(high, pos, prof, f); err != nil {
			return err
		}
	}
	return nil
}
