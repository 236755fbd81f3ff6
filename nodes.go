// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

// huddnode is an entry in the node table. Constants have level -1 and point
// to themselves.
type huddnode struct {
	level int32 // Index of the variable in the engine registry
	low   int   // Reference to the false branch
	high  int   // Reference to the true branch
}

// huddkey is the key used in the uniqueness table.
type huddkey struct {
	level int32
	low   int
	high  int
}

// The two constants are always at index 0 (false) and 1 (true).
const (
	bddzero = 0
	bddone  = 1
)

var constnodes = [2]huddnode{
	bddzero: {level: -1, low: bddzero, high: bddzero},
	bddone:  {level: -1, low: bddone, high: bddone},
}
