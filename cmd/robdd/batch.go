// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"text/tabwriter"

	"github.com/dalzilio/robdd"
	"github.com/dalzilio/robdd/formula"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func newBatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "batch [file]",
		Short: "Build the diagrams of a list of formulas",
		Long: `Reads one formula per line, from file or from the standard input, and builds
the diagrams concurrently, each one with its own engine. A line can end with
a semicolon followed by a comma-separated ordering. Blank lines and lines
starting with # are ignored. Results are printed in input order.

Example:
  a & b
  (a & !c) | (b ^ d) ; d, c, b, a`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				file, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer file.Close()
				in = file
			}
			jobs, err := readJobs(in)
			if err != nil {
				return err
			}
			return runBatch(cmd.Context(), jobs, a.stdout, a.cfg.EngineOptions(a.logger), a.logger)
		},
	}
}

type job struct {
	line     int
	text     string
	ordering []string // nil for the default ordering
}

type result struct {
	done     bool
	parsed   formula.Expr
	ordering []string
	root     int
	size     int
}

// readJobs returns the formulas in r, one per line.
func readJobs(r io.Reader) ([]job, error) {
	jobs := []job{}
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		j := job{line: line, text: text}
		if k := strings.IndexByte(text, ';'); k >= 0 {
			j.text = strings.TrimSpace(text[:k])
			j.ordering = robdd.ParseOrdering(text[k+1:])
		}
		jobs = append(jobs, j)
	}
	return jobs, scanner.Err()
}

// runBatch builds all the jobs in parallel and prints the results in input
// order. We stop at the first error.
func runBatch(ctx context.Context, jobs []job, w io.Writer, options []robdd.Option, logger *zap.Logger) error {
	results := make([]result, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for k, j := range jobs {
		k, j := k, j
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f, err := formula.Parse(j.text)
			if err != nil {
				return fmt.Errorf("line %d: %w", j.line, err)
			}
			ordering := j.ordering
			if ordering == nil {
				ordering = robdd.DefaultOrdering(f)
			}
			e := robdd.New(options...)
			root, err := e.Build(f, ordering)
			if err != nil {
				return fmt.Errorf("line %d: %w", j.line, err)
			}
			results[k] = result{
				done:     true,
				parsed:   f,
				ordering: ordering,
				root:     root,
				size:     e.Size(),
			}
			return nil
		})
	}
	err := g.Wait()
	if err != nil {
		logger.Warn("batch interrupted", zap.Error(err))
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "LINE\tFORMULA\tORDERING\tROOT\tNODES")
	for k, res := range results {
		if !res.done {
			continue
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\n", jobs[k].line, res.parsed, strings.Join(res.ordering, ","), res.root, res.size)
	}
	if ferr := tw.Flush(); ferr != nil && err == nil {
		err = ferr
	}
	return err
}
