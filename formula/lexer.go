// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package formula

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokenize splits s into a sequence of tokens. Whitespace is removed before
// scanning, so positions in tokens and errors refer to the stripped input.
// The operators -> and <-> are matched before single character tokens. We
// return a *LexError on the first character that cannot start a token.
func Tokenize(s string) ([]Token, error) {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	toks := make([]Token, 0, len(s))
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case isidentstart(c):
			j := i + 1
			for j < len(s) && isident(s[j]) {
				j++
			}
			toks = append(toks, Token{IDENT, s[i:j], i})
			i = j
		case strings.HasPrefix(s[i:], "<->"):
			toks = append(toks, Token{IFF, "<->", i})
			i += 3
		case strings.HasPrefix(s[i:], "->"):
			toks = append(toks, Token{IMP, "->", i})
			i += 2
		default:
			k, ok := single[c]
			if !ok {
				return nil, &LexError{Pos: i, Near: near(s, i)}
			}
			toks = append(toks, Token{k, s[i : i+1], i})
			i++
		}
	}
	return toks, nil
}

var single = map[byte]Kind{
	'(': LPAREN,
	')': RPAREN,
	'!': NOT,
	'&': AND,
	'|': OR,
	'^': XOR,
}

func isidentstart(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || c == '_'
}

func isident(c byte) bool {
	return isidentstart(c) || ('0' <= c && c <= '9')
}

// near returns at most 10 bytes of s starting at i, without splitting a
// multi-byte character.
func near(s string, i int) string {
	j := len(s)
	if j-i > 10 {
		j = i + 10
		for j > i+1 && !utf8.RuneStart(s[j]) {
			j--
		}
	}
	return s[i:j]
}
