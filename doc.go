// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package robdd builds Reduced Ordered Binary Decision Diagrams (ROBDD) from
propositional formulas, such as "(a & !c) | (b ^ d)". A ROBDD is a canonical
representation of a Boolean function: once we fix an order on variables, two
equivalent formulas have the same diagram.

Basics

An Engine stores a table of nodes shared by all the diagrams it builds. Each
node is identified by an integer id, with the convention that 1 (respectively
0) is the id of the constant function True (respectively False). Other nodes
test a variable and have a low (false) and a high (true) successor.

Method Build takes a formula (see package formula for the syntax and the
parser) and an ordering, that is a list of variable names, and returns the id of
the root of the diagram. Diagrams are obtained by Shannon expansion: we replace
the first variable of the ordering with false and true, build the diagrams for
the two resulting formulas with the rest of the ordering, and join them with a
node testing the variable. Nodes are created using a uniqueness table, which
ensures that:

	no node has two equal successors (the test would be useless);
	no two nodes test the same variable with the same successors.

As a consequence, equivalent formulas built with the same ordering on the same
engine always have the same root id.

Memory and caches

Nodes are never deleted from an engine, so ids stay valid for the whole life of
an engine and diagrams can be safely exported after a build (see PrintDot or
Allnodes). By default, we also cache the result of building each simplified
sub-formula with a given suffix of the ordering, so that equal sub-formulas
reached through different paths are expanded only once. Options Maxnodesize
and Maxvarnum can be used to bound the resources used by a build.

An engine is safe for concurrent use: builds are serialized and queries use a
read lock. Distinct engines share no state.
*/
package robdd
