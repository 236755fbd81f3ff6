// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package formula

// Kind is the type of a lexical token.
type Kind int

const (
	IDENT  Kind = iota // identifier [A-Za-z_][A-Za-z0-9_]*
	LPAREN             // (
	RPAREN             // )
	NOT                // !
	AND                // &
	OR                 // |
	XOR                // ^
	IMP                // ->
	IFF                // <->
)

var kindnames = [...]string{
	IDENT:  "identifier",
	LPAREN: "(",
	RPAREN: ")",
	NOT:    "!",
	AND:    "&",
	OR:     "|",
	XOR:    "^",
	IMP:    "->",
	IFF:    "<->",
}

func (k Kind) String() string {
	return kindnames[k]
}

// Token is a lexical unit. Pos is the byte offset of the token in the input
// once whitespace has been removed.
type Token struct {
	Kind Kind
	Text string
	Pos  int
}

func (t Token) String() string {
	return t.Text
}

// binary associates each binary operator token with its operator, its
// precedence (higher binds tighter) and whether it associates to the right.
var binary = map[Kind]struct {
	op    Op
	prec  int
	right bool
}{
	IFF: {OPbiimp, 1, true},
	IMP: {OPimp, 2, true},
	OR:  {OPor, 3, false},
	XOR: {OPxor, 4, false},
	AND: {OPand, 5, false},
}

// notprec is the minimal precedence used for the operand of a negation; it is
// above all binary operators.
const notprec = 6
