// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"
)

// Stats returns information about the engine: size of the tables and accesses
// to the uniqueness table and the build cache.
func (e *Engine) Stats() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	res := fmt.Sprintf("Varnum:     %d\n", len(e.varnames))
	res += e.hudd.stats()
	res += "==============\n"
	res += e.cache.cacheStat.String()
	return res
}

// ******************************************************************************************************

// Print returns a one-line description of node n.
func (e *Engine) Print(n int) string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	switch {
	case n == 0:
		return "False"
	case n == 1:
		return "True"
	case n < 0:
		return "Error"
	case n >= len(e.nodes):
		return fmt.Sprintf("Error (%d not a valid index)", n)
	}
	return fmt.Sprintf("(%d[%s] ? %d : %d)", n, e.varname(n), e.low(n), e.high(n))
}

// reachable returns the list of ids reachable from n, constants included,
// sorted in increasing order.
func (e *Engine) reachable(n int) []int {
	nodes := []int{}
	e.allnodesfrom(func(id int, _ string, _, _ int) error {
		nodes = append(nodes, id)
		return nil
	}, []int{n})
	sort.Ints(nodes)
	return nodes
}

// PrintTable outputs a textual representation of the diagram with root n, with
// one line for each internal node giving its id, its variable, and the ids of
// its low and high successors.
func (e *Engine) PrintTable(w io.Writer, n int) error {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if err := e.checkptr(n); err != nil {
		return err
	}
	if n == 0 {
		_, err := fmt.Fprintln(w, "False")
		return err
	}
	if n == 1 {
		_, err := fmt.Fprintln(w, "True")
		return err
	}
	if _, err := fmt.Fprintf(w, "root: %d\n", n); err != nil {
		return err
	}
	return e.print_table(w, e.reachable(n))
}

// PrintAll prints the totality of the node table.
func (e *Engine) PrintAll(w io.Writer) error {
	e.mu.RLock()
	defer e.mu.RUnlock()
	nodes := make([]int, len(e.nodes))
	for k := range nodes {
		nodes[k] = k
	}
	return e.print_table(w, nodes)
}

func (e *Engine) print_table(w io.Writer, nodes []int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	for _, n := range nodes {
		if n > 1 {
			fmt.Fprintf(tw, "%d\t[%s]\t? %d\t: %d\n", n, e.varname(n), e.low(n), e.high(n))
		}
	}
	return tw.Flush()
}

// ******************************************************************************************************

// Example of AUT output for the diagram of a & b, with ordering [a, b]. Node 2
// tests b and node 3, the root, tests a. The initial state is the root.
//
// des(3,8,4)
// (0, "S.`False`", 0)
// (1, "S.`True`", 1)
// (2, "S.`b`", 2)
// (2, "E.`0`", 0)
// (2, "E.`1`", 1)
// (3, "S.`a`", 3)
// (3, "E.`0`", 0)
// (3, "E.`1`", 2)

// PrintAut prints a textual, graph-like, description representing the diagram
// with root n using the AUT format. The file can be displayed using the nd tool.
func (e *Engine) PrintAut(w io.Writer, n int) error {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if err := e.checkptr(n); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	e.print_aut(bw, e.reachable(n), n)
	return bw.Flush()
}

// FPrintAut is like PrintAut but writes in the file filename, or on the
// standard output if filename is "-".
func (e *Engine) FPrintAut(filename string, n int) error {
	return fprint(filename, func(w io.Writer) error { return e.PrintAut(w, n) })
}

func (e *Engine) print_aut(w *bufio.Writer, nodes []int, root int) {
	index := make(map[int]int, len(nodes))
	for k, v := range nodes {
		index[v] = k
	}
	cnodes := len(nodes)
	fmt.Fprintf(w, "des(%d,%d,%d)\n", index[root], 3*cnodes-4, cnodes)
	fmt.Fprintln(w, "(0, \"S."+"`"+"False"+"`"+"\", 0)")
	fmt.Fprintln(w, "(1, \"S."+"`"+"True"+"`"+"\", 1)")
	for _, k := range nodes {
		if k > 1 {
			fmt.Fprintf(w, "(%d, \"S."+"`"+"%s"+"`"+"\", %[1]d)\n", index[k], e.varname(k))
			fmt.Fprintf(w, "(%d, \"E."+"`"+"0"+"`"+"\", %d)\n", index[k], index[e.low(k)])
			fmt.Fprintf(w, "(%d, \"E."+"`"+"1"+"`"+"\", %d)\n", index[k], index[e.high(k)])
		}
	}
}

// ******************************************************************************************************

// PrintDot prints a graph-like description of the diagram with root n using
// the DOT format. Decision nodes are circles labelled with their variable; the
// low branch is a red dashed arc and the high branch a blue solid one.
func (e *Engine) PrintDot(w io.Writer, n int) error {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if err := e.checkptr(n); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	e.print_dot(bw, e.reachable(n))
	return bw.Flush()
}

// FPrintDot is like PrintDot but writes in the file filename, or on the
// standard output if filename is "-".
func (e *Engine) FPrintDot(filename string, n int) error {
	return fprint(filename, func(w io.Writer) error { return e.PrintDot(w, n) })
}

// print_dot returns a GraphViz DOT file from a list of nodes.
func (e *Engine) print_dot(w *bufio.Writer, nodes []int) {
	fmt.Fprintln(w, "// ROBDD")
	fmt.Fprintln(w, "digraph {")
	fmt.Fprintln(w, "\trankdir=TB")
	fmt.Fprintln(w, "\t0 [label=0 fillcolor=\"#ffcccc\" shape=box style=filled]")
	fmt.Fprintln(w, "\t1 [label=1 fillcolor=\"#ccffcc\" shape=box style=filled]")
	for _, v := range nodes {
		if v > 1 {
			fmt.Fprintf(w, "\t%d [label=%q shape=circle]\n", v, e.varname(v))
			fmt.Fprintf(w, "\t%d -> %d [label=0 color=red style=dashed]\n", v, e.low(v))
			fmt.Fprintf(w, "\t%d -> %d [label=1 color=blue style=solid]\n", v, e.high(v))
		}
	}
	fmt.Fprintln(w, "}")
}

func fprint(filename string, print func(io.Writer) error) error {
	if filename == "-" {
		return print(os.Stdout)
	}
	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := print(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
