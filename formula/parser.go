// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package formula

// Parse returns the formula tree for s. Binary operators are, from the lowest
// to the highest precedence: <->, ->, |, ^ and &. Negation binds tighter than
// all of them. Implication and equivalence associate to the right, the other
// operators to the left, so that "a -> b -> c" is "a -> (b -> c)" and
// "a & b & c" is "(a & b) & c".
func Parse(s string) (Expr, error) {
	toks, err := Tokenize(s)
	if err != nil {
		return nil, err
	}
	return ParseTokens(toks)
}

// ParseTokens is like Parse but starts from an already tokenized input.
func ParseTokens(toks []Token) (Expr, error) {
	p := &parser{toks: toks}
	e, err := p.expr(0)
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.toks) {
		return nil, p.errorf(MsgTrailing)
	}
	return e, nil
}

// MustParse is like Parse but panics if s cannot be parsed. It simplifies
// the initialization of formulas in tests and examples.
func MustParse(s string) Expr {
	e, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return e
}

type parser struct {
	toks []Token
	pos  int
}

// errorf returns a syntax error located at the current token.
func (p *parser) errorf(msg string) error {
	if p.pos >= len(p.toks) {
		end := 0
		if n := len(p.toks); n > 0 {
			end = p.toks[n-1].Pos + len(p.toks[n-1].Text)
		}
		return &SyntaxError{Pos: end, Msg: msg}
	}
	t := p.toks[p.pos]
	return &SyntaxError{Pos: t.Pos, Msg: msg, Tok: t.Text}
}

// expr parses an operand followed by all the binary operators with a
// precedence of at least minprec (precedence climbing).
func (p *parser) expr(minprec int) (Expr, error) {
	lhs, err := p.operand()
	if err != nil {
		return nil, err
	}
	for p.pos < len(p.toks) {
		op, ok := binary[p.toks[p.pos].Kind]
		if !ok || op.prec < minprec {
			break
		}
		p.pos++
		next := op.prec + 1
		if op.right {
			next = op.prec
		}
		rhs, err := p.expr(next)
		if err != nil {
			return nil, err
		}
		lhs = &Binary{op.op, lhs, rhs}
	}
	return lhs, nil
}

// operand parses a variable, a negation, or a parenthesized group.
func (p *parser) operand() (Expr, error) {
	if p.pos >= len(p.toks) {
		return nil, p.errorf(MsgEndOfInput)
	}
	t := p.toks[p.pos]
	switch t.Kind {
	case IDENT:
		p.pos++
		return Var(t.Text), nil
	case NOT:
		p.pos++
		x, err := p.expr(notprec)
		if err != nil {
			return nil, err
		}
		return &Not{x}, nil
	case LPAREN:
		p.pos++
		x, err := p.expr(0)
		if err != nil {
			return nil, err
		}
		if p.pos >= len(p.toks) || p.toks[p.pos].Kind != RPAREN {
			return nil, p.errorf(MsgUnterminated)
		}
		p.pos++
		return x, nil
	}
	return nil, p.errorf(MsgUnexpected)
}
