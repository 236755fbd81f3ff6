// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"errors"
	"strconv"
	"strings"
	"sync"

	"github.com/dalzilio/robdd/formula"
	"go.uber.org/zap"
)

// Engine builds Reduced Ordered Binary Decision Diagrams from formulas. All the
// diagrams built by an engine share the same node table, so two equivalent
// formulas built with the same ordering always get the same root id.
//
// An Engine is safe for concurrent use. Builds are serialized, while read-only
// operations (such as Node, Allnodes or PrintDot) can run in parallel with each
// other.
type Engine struct {
	mu sync.RWMutex
	hudd
	varset
	cache buildcache
	configs
}

// New returns an engine that contains only the two constant nodes, with id 0
// for False and 1 for True.
func New(options ...Option) *Engine {
	c := makeconfigs(options...)
	return &Engine{
		hudd:    makehudd(c.nodesize),
		varset:  makevarset(),
		cache:   makebuildcache(c.cachesize),
		configs: *c,
	}
}

// True returns the id of the constant true.
func (e *Engine) True() int {
	return bddone
}

// False returns the id of the constant false.
func (e *Engine) False() int {
	return bddzero
}

// From returns the id of a constant node from a boolean value.
func (e *Engine) From(v bool) int {
	if v {
		return bddone
	}
	return bddzero
}

// ************************************************************

// Build returns the id of the root node of the diagram for f, testing
// variables in the order given by ordering. The diagram is obtained by
// Shannon expansion: we build the diagrams for f with the first variable of
// the ordering replaced by false and by true, using the rest of the ordering,
// and join them with a node testing this variable.
//
// The ordering must be a list of distinct variable names that includes all the
// variables needed to decide f. It can mention variables that do not occur in
// f. We return an *OrderingError (matching ErrOrdering) when the ordering is
// exhausted before the formula simplifies to a constant. Nodes created before
// an error are kept in the table, which stays consistent.
func (e *Engine) Build(f formula.Expr, ordering []string) (int, error) {
	if f == nil {
		return -1, errors.New("nil formula in call to Build")
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.maxvarnum > 0 && len(ordering) > e.maxvarnum {
		return -1, seterror(ErrVarLimit, "ordering has %d variables (limit %d)", len(ordering), e.maxvarnum)
	}
	levels, err := e.setvars(ordering)
	if err != nil {
		return -1, err
	}
	b := &builder{
		Engine:   e,
		ordering: ordering,
		levels:   levels,
	}
	if e.memoize {
		// suffixes use variable indices, since names are not restricted
		b.suffixes = make([]string, len(ordering)+1)
		for k := len(levels) - 1; k >= 0; k-- {
			b.suffixes[k] = strconv.Itoa(int(levels[k])) + "," + b.suffixes[k+1]
		}
	}
	produced := e.produced
	res, err := b.build(f, 0)
	if err != nil {
		e.logger.Debug("build failed",
			zap.Stringer("formula", f),
			zap.Strings("ordering", ordering),
			zap.Error(err))
		return -1, err
	}
	e.logger.Debug("build",
		zap.Stringer("formula", f),
		zap.Strings("ordering", ordering),
		zap.Int("root", res),
		zap.Int("new", e.produced-produced),
		zap.Int("nodes", len(e.nodes)))
	return res, nil
}

// BuildString parses text and builds the corresponding diagram. When ordering
// is nil, we use the alphabetical order of the free variables of the formula
// (see DefaultOrdering).
func (e *Engine) BuildString(text string, ordering []string) (int, error) {
	f, err := formula.Parse(text)
	if err != nil {
		return -1, err
	}
	if ordering == nil {
		ordering = DefaultOrdering(f)
	}
	return e.Build(f, ordering)
}

// DefaultOrdering returns the free variables of f sorted alphabetically.
func DefaultOrdering(f formula.Expr) []string {
	return formula.FreeVariables(f)
}

// ParseOrdering splits a comma-separated list of variable names. Spaces
// around names are ignored. It returns nil for an empty string.
func ParseOrdering(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	res := strings.Split(s, ",")
	for k, v := range res {
		res[k] = strings.TrimSpace(v)
	}
	return res
}

// ************************************************************

// builder holds the state of a single call to Build.
type builder struct {
	*Engine
	ordering []string // variables in the order they are tested
	levels   []int32  // index of each variable of ordering in the registry
	suffixes []string // suffixes[k] identifies levels[k:] in cache keys; nil if no cache
}

func (b *builder) build(f formula.Expr, depth int) (int, error) {
	// Simplify first to handle trivial cases
	s := formula.Simplify(f)
	if formula.IsTrue(s) {
		return bddone, nil
	}
	if formula.IsFalse(s) {
		return bddzero, nil
	}
	if depth == len(b.ordering) {
		err := &OrderingError{
			Msg:      "ordering exhausted before the formula reduces to a constant",
			Residual: formula.FreeVariables(s),
		}
		b.logger.Warn("ordering inconsistent with formula",
			zap.Strings("ordering", b.ordering),
			zap.Strings("residual", err.Residual))
		return -1, err
	}
	var key string
	if b.suffixes != nil {
		key = cachekey(s.String(), b.suffixes[depth])
		if res, ok := b.cache.match(key); ok {
			return res, nil
		}
	}
	v := b.ordering[depth]
	low, err := b.build(formula.Substitute(s, v, false), depth+1)
	if err != nil {
		return -1, err
	}
	high, err := b.build(formula.Substitute(s, v, true), depth+1)
	if err != nil {
		return -1, err
	}
	res, err := b.makenode(b.levels[depth], low, high)
	if err != nil {
		return -1, err
	}
	if b.suffixes != nil {
		b.cache.set(key, res)
	}
	return res, nil
}
