// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package formula

import (
	"errors"
	"fmt"
)

// ErrLex and ErrSyntax are the sentinels matched (with errors.Is) by every
// error returned from Tokenize and Parse.
var (
	ErrLex    = errors.New("lex error")
	ErrSyntax = errors.New("syntax error")
)

// Messages used in syntax errors.
const (
	MsgEndOfInput   = "unexpected end of input"
	MsgUnterminated = "unterminated group"
	MsgTrailing     = "trailing input"
	MsgUnexpected   = "unexpected token"
)

// LexError reports a character that cannot start a token. Pos is an offset in
// the input stripped of whitespace and Near is the text starting there.
type LexError struct {
	Pos  int
	Near string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("unexpected character at %d: %q", e.Pos, e.Near)
}

func (e *LexError) Unwrap() error {
	return ErrLex
}

// SyntaxError reports a malformed token sequence. Pos is the offset of the
// offending token, or the length of the input when we ran out of tokens.
type SyntaxError struct {
	Pos int
	Msg string
	Tok string
}

func (e *SyntaxError) Error() string {
	if e.Tok != "" {
		return fmt.Sprintf("%s at %d (%q)", e.Msg, e.Pos, e.Tok)
	}
	return fmt.Sprintf("%s at %d", e.Msg, e.Pos)
}

func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}
