// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package formula defines propositional formulas: a tokenizer and a precedence
climbing parser for their textual syntax, and the operations needed to build a
decision diagram from a formula tree, namely constant folding (Simplify),
substitution of a variable by a constant (Substitute), and the computation of
free variables.

Syntax

Identifiers match [A-Za-z_][A-Za-z0-9_]*. Operators are, by increasing
precedence:

	<->   equivalence     (right associative)
	->    implication     (right associative)
	|     disjunction
	^     exclusive or
	&     conjunction
	!     negation        (prefix)

Parentheses can be used for grouping and whitespace is not significant. There
is no syntax for constants; they only appear in trees as the result of
Substitute and Simplify.
*/
package formula
