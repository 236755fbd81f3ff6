// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package verify

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/dalzilio/robdd"
	"github.com/dalzilio/robdd/formula"
	"github.com/expr-lang/expr"
)

// MaxTableVars is the maximal number of variables accepted by TruthTable.
const MaxTableVars = 16

// ErrTooManyVariables is returned by TruthTable when the table would have more
// than 2^MaxTableVars rows.
var ErrTooManyVariables = errors.New("too many variables for a truth table")

// MismatchError reports an assignment on which a formula and a diagram
// disagree.
type MismatchError struct {
	Assignment map[string]bool
	Formula    bool // value of the formula
	Diagram    bool // value of the diagram
}

func (e *MismatchError) Error() string {
	names := make([]string, 0, len(e.Assignment))
	for v := range e.Assignment {
		names = append(names, v)
	}
	sort.Strings(names)
	for k, v := range names {
		names[k] = fmt.Sprintf("%s=%d", v, b2i(e.Assignment[v]))
	}
	return fmt.Sprintf("diagram differs from formula on [%s]: formula is %t, diagram is %t",
		strings.Join(names, " "), e.Formula, e.Diagram)
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// render returns the text of f in the syntax of the expr language, where each
// variable v is replaced with names[v].
func render(f formula.Expr, names map[string]string) string {
	var sb strings.Builder
	var write func(f formula.Expr)
	write = func(f formula.Expr) {
		switch f := f.(type) {
		case formula.Literal:
			if f {
				sb.WriteString("true")
			} else {
				sb.WriteString("false")
			}
		case formula.Var:
			sb.WriteString(names[string(f)])
		case *formula.Not:
			sb.WriteString("!(")
			write(f.X)
			sb.WriteByte(')')
		case *formula.Binary:
			sb.WriteByte('(')
			if f.Op == formula.OPimp {
				sb.WriteString("!(")
				write(f.L)
				sb.WriteString(") || ")
			} else {
				write(f.L)
				sb.WriteString(exprops[f.Op])
			}
			write(f.R)
			sb.WriteByte(')')
		}
	}
	write(f)
	return sb.String()
}

var exprops = map[formula.Op]string{
	formula.OPand:   " && ",
	formula.OPor:    " || ",
	formula.OPxor:   " != ",
	formula.OPbiimp: " == ",
}

// TruthTable compares the value of f, evaluated with the expr language, and
// of the diagram with the given root on every assignment of the variables of
// ordering and of f. When w is not nil we print one row for each assignment.
// We return a *MismatchError for the first assignment where the two values
// differ.
func TruthTable(w io.Writer, e *robdd.Engine, root int, f formula.Expr, ordering []string) error {
	if f == nil {
		return errors.New("nil formula in call to TruthTable")
	}
	vars := append([]string{}, ordering...)
	seen := make(map[string]bool, len(ordering))
	for _, v := range ordering {
		seen[v] = true
	}
	for _, v := range formula.FreeVariables(f) {
		if !seen[v] {
			vars = append(vars, v)
		}
	}
	if len(vars) > MaxTableVars {
		return fmt.Errorf("%d variables (limit %d): %w", len(vars), MaxTableVars, ErrTooManyVariables)
	}

	// expr identifiers cannot clash with keywords such as "in" or "not"
	names := make(map[string]string, len(vars))
	env := make(map[string]interface{}, len(vars))
	for k, v := range vars {
		names[v] = fmt.Sprintf("v%d", k)
		env[names[v]] = false
	}
	prg, err := expr.Compile(render(f, names), expr.Env(env), expr.AsBool())
	if err != nil {
		return fmt.Errorf("cannot compile formula %s: %w", f, err)
	}

	var tw *tabwriter.Writer
	if w != nil {
		tw = tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
		fmt.Fprintf(tw, "%s\tformula\tdiagram\n", strings.Join(vars, "\t"))
	}
	var mismatch *MismatchError
	assignment := make(map[string]bool, len(vars))
	row := make([]string, len(vars))
	n := len(vars)
	for k := 0; k < 1<<n; k++ {
		for i, v := range vars {
			value := (k>>(n-1-i))&1 == 1
			assignment[v] = value
			env[names[v]] = value
			row[i] = fmt.Sprint(b2i(value))
		}
		out, err := expr.Run(prg, env)
		if err != nil {
			return err
		}
		fvalue, ok := out.(bool)
		if !ok {
			return fmt.Errorf("formula %s evaluates to %T", f, out)
		}
		dvalue, err := e.Eval(root, assignment)
		if err != nil {
			return err
		}
		if tw != nil {
			fmt.Fprintf(tw, "%s\t%d\t%d\n", strings.Join(row, "\t"), b2i(fvalue), b2i(dvalue))
		}
		if fvalue != dvalue && mismatch == nil {
			cex := make(map[string]bool, len(assignment))
			for v, b := range assignment {
				cex[v] = b
			}
			mismatch = &MismatchError{Assignment: cex, Formula: fvalue, Diagram: dvalue}
		}
	}
	if tw != nil {
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	if mismatch != nil {
		return mismatch
	}
	return nil
}
