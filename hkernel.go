// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import "go.uber.org/zap"

// makenode returns the id of the node testing the variable at level with
// branches low and high. It is the only place where nodes are created, which
// ensures that no node has two equal children and that there is at most one
// node for each triplet (level, low, high).
func (e *Engine) makenode(level int32, low int, high int) (int, error) {
	e.uniqueAccess++
	// check whether children are equal, in which case we can skip the node
	if low == high {
		return low, nil
	}
	// otherwise try to find an existing node using the unique table
	if res, ok := e.nodehash(level, low, high); ok {
		e.uniqueHit++
		return res, nil
	}
	e.uniqueMiss++
	if e.maxnodesize > 0 && len(e.nodes) >= e.maxnodesize {
		e.logger.Warn("node table limit reached",
			zap.Int("maxnodesize", e.maxnodesize),
			zap.String("variable", e.varnames[level]))
		return -1, seterror(ErrNodeLimit, "cannot allocate node for %s (limit %d)", e.varnames[level], e.maxnodesize)
	}
	return e.setnode(level, low, high), nil
}
