// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dalzilio/robdd"
	"github.com/dalzilio/robdd/formula"
	"github.com/dalzilio/robdd/internal/render"
	"github.com/dalzilio/robdd/verify"
	"go.uber.org/zap"
)

type buildFlags struct {
	ordering string
	verify   bool
	stats    bool
}

func (a *app) field(label string, format string, args ...interface{}) {
	a.colors.label.Fprintf(a.stdout, "%s: ", label)
	a.colors.value.Fprintf(a.stdout, format, args...)
	fmt.Fprintln(a.stdout)
}

// runBuild parses text, builds its diagram and writes the requested outputs.
func (a *app) runBuild(ctx context.Context, text string, flags *buildFlags) error {
	f, err := formula.Parse(text)
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}
	ordering := robdd.ParseOrdering(flags.ordering)
	kind := "user-defined"
	if ordering == nil {
		ordering = robdd.DefaultOrdering(f)
		kind = "alphabetical"
	}

	e := robdd.New(a.cfg.EngineOptions(a.logger)...)
	root, err := e.Build(f, ordering)
	if err != nil {
		return fmt.Errorf("cannot build diagram: %w", err)
	}

	a.field("Formula", "%s", text)
	a.field("Parsed", "%s", f)
	a.field("Ordering ("+kind+")", "%s", strings.Join(ordering, ", "))
	a.field("Root ID", "%d", root)

	if err := a.writeOutput(ctx, e, root); err != nil {
		// the diagram is still valid, we only report the problem
		a.logger.Warn("cannot write diagram", zap.Error(err))
		a.colors.fail.Fprintf(a.stderr, "Warning: %s\n", err)
	}

	if flags.verify {
		if err := a.check(e, root, f, ordering); err != nil {
			return err
		}
	}
	if flags.stats {
		fmt.Fprintln(a.stdout, e.Stats())
	}
	return nil
}

func (a *app) writeOutput(ctx context.Context, e *robdd.Engine, root int) error {
	name := a.cfg.Output
	switch a.cfg.Format {
	case "none":
		return nil
	case "aut":
		path := name + ".aut"
		if err := e.FPrintAut(path, root); err != nil {
			return err
		}
		a.field("Output", "%s", path)
		return nil
	}
	var buf bytes.Buffer
	if err := e.PrintDot(&buf, root); err != nil {
		return err
	}
	r := &render.Renderer{
		DotBinary:      a.cfg.Render.DotBinary,
		OnlineFallback: a.cfg.Render.OnlineFallback,
		OnlineURL:      a.cfg.Render.OnlineURL,
		Logger:         a.logger,
	}
	res, err := r.Render(ctx, buf.Bytes(), name, a.cfg.Format)
	if err != nil {
		return err
	}
	if res.URL != "" {
		a.field("Graphviz not found, view online", "%s", res.URL)
		return nil
	}
	a.field("Output", "%s", res.Path)
	return nil
}

func (a *app) check(e *robdd.Engine, root int, f formula.Expr, ordering []string) error {
	cex, err := verify.Counterexample(e, root, f)
	if err != nil {
		return fmt.Errorf("verification failed: %w", err)
	}
	if cex != nil {
		return fmt.Errorf("verification failed: diagram differs from formula on %v", cex)
	}
	a.colors.label.Fprint(a.stdout, "Verification (SAT): ")
	a.colors.ok.Fprintln(a.stdout, "equivalent")

	a.colors.label.Fprint(a.stdout, "Verification (truth table): ")
	err = verify.TruthTable(nil, e, root, f, ordering)
	switch {
	case err == nil:
		a.colors.ok.Fprintln(a.stdout, "equivalent")
	case errors.Is(err, verify.ErrTooManyVariables):
		fmt.Fprintf(a.stdout, "skipped (more than %d variables)\n", verify.MaxTableVars)
	default:
		fmt.Fprintln(a.stdout)
		return fmt.Errorf("verification failed: %w", err)
	}
	return nil
}
