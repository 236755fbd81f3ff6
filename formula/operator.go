// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package formula

// Op describes the binary connectives available in formulas.
type Op int

const (
	OPand   Op = iota // Boolean conjunction
	OPxor             // Exclusive or
	OPor              // Disjunction
	OPimp             // Implication
	OPbiimp           // Equivalence
)

var opnames = [5]string{
	OPand:   "and",
	OPxor:   "xor",
	OPor:    "or",
	OPimp:   "imp",
	OPbiimp: "biimp",
}

var opsymbols = [5]string{
	OPand:   "&",
	OPxor:   "^",
	OPor:    "|",
	OPimp:   "->",
	OPbiimp: "<->",
}

func (op Op) String() string {
	return opnames[op]
}

// Symbol returns the concrete syntax of op.
func (op Op) Symbol() string {
	return opsymbols[op]
}

var opres = [5][2][2]bool{
	//                         00     01              10     11
	OPand:   {0: {0: false, 1: false}, 1: {0: false, 1: true}}, // 0001
	OPxor:   {0: {0: false, 1: true}, 1: {0: true, 1: false}},  // 0110
	OPor:    {0: {0: false, 1: true}, 1: {0: true, 1: true}},   // 0111
	OPimp:   {0: {0: true, 1: true}, 1: {0: false, 1: true}},   // 1101
	OPbiimp: {0: {0: true, 1: false}, 1: {0: false, 1: true}},  // 1001
}

// Apply returns the value of (l op r).
func (op Op) Apply(l, r bool) bool {
	return opres[op][b2i(l)][b2i(r)]
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
