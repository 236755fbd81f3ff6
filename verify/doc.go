// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package verify provides independent checks that a diagram built by a
robdd.Engine denotes the same Boolean function as the formula it was built
from.

Function Equivalent encodes both the formula and the diagram in a single
and-inverter circuit and asks the gini SAT solver whether their exclusive or is
satisfiable. Function TruthTable compiles the formula with the expr language
and compares it with the diagram on every assignment of its variables. The
second method is exponential and limited to MaxTableVars variables.
*/
package verify
