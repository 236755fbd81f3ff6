// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dalzilio/robdd"
	"github.com/dalzilio/robdd/formula"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// run executes the command with args and returns what it prints on the
// standard output and the standard error.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("ROBDD_LOG_LEVEL", "")
	t.Setenv("ROBDD_OUTPUT", "")
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	config := filepath.Join(t.TempDir(), "missing.yaml")
	cmd.SetArgs(append(args, "--config", config, "--color", "never"))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestBuildCommand(t *testing.T) {
	t.Setenv("ROBDD_DOT", "")
	name := filepath.Join(t.TempDir(), "diagram")
	out, _, err := run(t, "", "(a & !c) | (b ^ d)", "-o", name, "--format", "dot")
	require.NoError(t, err)
	for _, line := range []string{
		"Formula: (a & !c) | (b ^ d)",
		"Parsed: ((a & !c) | (b ^ d))",
		"Ordering (alphabetical): a, b, c, d",
		"Root ID: 8",
		"Output: " + name + ".dot",
	} {
		assert.Contains(t, out, line+"\n")
	}
	content, err := os.ReadFile(name + ".dot")
	require.NoError(t, err)
	assert.Contains(t, string(content), "digraph {")
}

func TestBuildCommandOrdering(t *testing.T) {
	out, _, err := run(t, "", "a & b", "--ordering", "b, a", "--format", "none")
	require.NoError(t, err)
	assert.Contains(t, out, "Ordering (user-defined): b, a\n")
	assert.NotContains(t, out, "Output:")
}

func TestBuildCommandAut(t *testing.T) {
	name := filepath.Join(t.TempDir(), "diagram")
	out, _, err := run(t, "", "a & b", "-o", name, "--format", "aut")
	require.NoError(t, err)
	assert.Contains(t, out, "Output: "+name+".aut\n")
	content, err := os.ReadFile(name + ".aut")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "des(3,8,4)"))
}

func TestBuildCommandFallback(t *testing.T) {
	t.Setenv("ROBDD_DOT", "robdd-no-such-binary")
	name := filepath.Join(t.TempDir(), "diagram")
	out, _, err := run(t, "", "a | b", "-o", name, "--format", "png")
	require.NoError(t, err)
	assert.Contains(t, out, "Graphviz not found, view online: https://dreampuf.github.io/GraphvizOnline/#")
	assert.FileExists(t, name+".dot")
}

func TestBuildCommandVerify(t *testing.T) {
	out, _, err := run(t, "", "(a -> b) <-> (!b -> !a)", "--format", "none", "--verify", "--stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Root ID: 1\n")
	assert.Contains(t, out, "Verification (SAT): equivalent\n")
	assert.Contains(t, out, "Verification (truth table): equivalent\n")
	assert.Contains(t, out, "Cache Hits:")
}

func TestBuildCommandErrors(t *testing.T) {
	_, _, err := run(t, "", "a & (b | c", "--format", "none")
	assert.ErrorIs(t, err, formula.ErrSyntax)
	assert.ErrorContains(t, err, "parse error")

	_, _, err = run(t, "", "a & b", "--ordering", "a", "--format", "none")
	assert.ErrorIs(t, err, robdd.ErrOrdering)

	_, _, err = run(t, "", "a & b", "--format", "gif")
	assert.ErrorContains(t, err, "invalid format")

	_, _, err = run(t, "")
	assert.Error(t, err)
}

//********************************************************************************************

const batchInput = `# some formulas
a & b

(a & !c) | (b ^ d) ; d, c, b, a
a ^ a
x1 -> x2 -> x3
`

func TestReadJobs(t *testing.T) {
	jobs, err := readJobs(strings.NewReader(batchInput))
	require.NoError(t, err)
	require.Len(t, jobs, 4)
	assert.Equal(t, job{line: 2, text: "a & b"}, jobs[0])
	assert.Equal(t, job{line: 4, text: "(a & !c) | (b ^ d)", ordering: []string{"d", "c", "b", "a"}}, jobs[1])
	assert.Equal(t, 5, jobs[2].line)
	assert.Equal(t, 6, jobs[3].line)
}

func TestBatchCommand(t *testing.T) {
	defer goleak.VerifyNone(t)
	out, _, err := run(t, batchInput, "batch")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, []string{"LINE", "FORMULA", "ORDERING", "ROOT", "NODES"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"2", "(a", "&", "b)", "a,b", "3", "4"}, strings.Fields(lines[1]))
	assert.Equal(t, "4", strings.Fields(lines[2])[0])
	assert.Contains(t, lines[2], "d,c,b,a")
	assert.Equal(t, []string{"5", "(a", "^", "a)", "a", "0", "2"}, strings.Fields(lines[3]))
	assert.Equal(t, "6", strings.Fields(lines[4])[0])
}

func TestBatchCommandFile(t *testing.T) {
	defer goleak.VerifyNone(t)
	path := filepath.Join(t.TempDir(), "formulas.txt")
	require.NoError(t, os.WriteFile(path, []byte("a | b\n"), 0644))
	out, _, err := run(t, "", "batch", path)
	require.NoError(t, err)
	assert.Contains(t, out, "(a | b)")

	_, _, err = run(t, "", "batch", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestBatchCommandError(t *testing.T) {
	defer goleak.VerifyNone(t)
	_, _, err := run(t, "a & b\n\nb & (c\n", "batch")
	require.Error(t, err)
	assert.ErrorContains(t, err, "line 3")
	assert.ErrorIs(t, err, formula.ErrSyntax)
}
