// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Command robdd builds the Reduced Ordered Binary Decision Diagram of a
// propositional formula and renders it with Graphviz.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dalzilio/robdd/internal/config"
	"github.com/dalzilio/robdd/internal/logging"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app holds the state shared by the commands.
type app struct {
	// Global flags
	configPath string
	output     string
	format     string
	verbose    bool
	colorMode  string

	cfg    *config.Config
	logger *zap.Logger
	stdout io.Writer
	stderr io.Writer
	colors palette
}

// palette is the set of colours used in the output of the command.
type palette struct {
	label *color.Color
	value *color.Color
	ok    *color.Color
	fail  *color.Color
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func newPalette(w io.Writer, mode string) (palette, error) {
	var enabled bool
	switch mode {
	case "always":
		enabled = true
	case "never":
		enabled = false
	case "auto", "":
		enabled = isTerminal(w)
	default:
		return palette{}, fmt.Errorf("invalid color mode: %s (valid: auto, always, never)", mode)
	}
	p := palette{
		label: color.New(color.Bold),
		value: color.New(color.FgCyan),
		ok:    color.New(color.FgGreen),
		fail:  color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{p.label, p.value, p.ok, p.fail} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p, nil
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr, logger: zap.NewNop()}
	b := &buildFlags{}

	rootCmd := &cobra.Command{
		Use:   "robdd [formula]",
		Short: "Build the ROBDD of a propositional formula",
		Long: `robdd builds the Reduced Ordered Binary Decision Diagram of a propositional
formula by Shannon expansion, and renders it with Graphviz.

Formulas use identifiers, parentheses and the operators (by increasing
precedence) <->, ->, |, ^, & and !.

Example:
  robdd "(a & !c) | (b ^ d)" --ordering a,b,c,d -o diagram --format svg`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBuild(cmd.Context(), args[0], b)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", config.DefaultPath, "configuration file")
	pf.StringVarP(&a.output, "output", "o", "", "base name of the output files (default from config: robdd_output)")
	pf.StringVar(&a.format, "format", "", "output format: png, svg, pdf, dot, aut or none (default from config: png)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	pf.StringVar(&a.colorMode, "color", "auto", "colorize output: auto, always or never")

	f := rootCmd.Flags()
	f.StringVar(&b.ordering, "ordering", "", "comma-separated variable ordering (default: alphabetical)")
	f.BoolVar(&b.verify, "verify", false, "check the diagram against the formula")
	f.BoolVar(&b.stats, "stats", false, "print engine statistics")

	rootCmd.AddCommand(newBatchCmd(a))
	return rootCmd
}

// setup loads the configuration, applies the command line flags and builds
// the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output = a.output
	}
	if flags.Changed("format") {
		cfg.Format = a.format
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Format, a.verbose)
	if err != nil {
		return err
	}
	a.logger = logger

	a.colors, err = newPalette(a.stdout, a.colorMode)
	return err
}

func main() {
	rootCmd := newRootCmd(os.Stdout, os.Stderr)
	if err := rootCmd.Execute(); err != nil {
		fail, _ := newPalette(os.Stderr, "auto")
		fail.fail.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
