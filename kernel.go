// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"errors"
)

// _MAXVAR is the maximal number of distinct variables in an engine. We use an
// int32 to index variables in the uniqueness table.
const _MAXVAR int32 = 0x1FFFFF

// _DEFAULTNODESIZE is the initial capacity of the node table.
const _DEFAULTNODESIZE int = 1024

// ErrOrdering is matched by the *OrderingError returned when an ordering is
// not consistent with the formula it is used to build.
var ErrOrdering = errors.New("inconsistent variable ordering")

// ErrNodeLimit is returned when a build needs more nodes than allowed by the
// Maxnodesize option.
var ErrNodeLimit = errors.New("node table limit reached")

// ErrVarLimit is returned when an ordering has more variables than allowed by
// the Maxvarnum option, or when an engine runs out of variable indices.
var ErrVarLimit = errors.New("too many variables")

// ErrUnknownNode is returned when accessing an id outside of the node table.
var ErrUnknownNode = errors.New("unknown node")
