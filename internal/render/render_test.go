// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package render

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const source = "digraph {\n\t0 [label=0]\n\t1 [label=1]\n}\n"

func TestRenderDot(t *testing.T) {
	name := filepath.Join(t.TempDir(), "out")
	r := &Renderer{DotBinary: "robdd-no-such-binary"}
	res, err := r.Render(context.Background(), []byte(source), name, "dot")
	require.NoError(t, err)
	assert.Equal(t, name+".dot", res.Path)
	assert.Empty(t, res.URL)
	content, err := os.ReadFile(res.Path)
	require.NoError(t, err)
	assert.Equal(t, source, string(content))
}

func TestRenderFallback(t *testing.T) {
	name := filepath.Join(t.TempDir(), "out")
	r := &Renderer{
		DotBinary:      "robdd-no-such-binary",
		OnlineFallback: true,
		OnlineURL:      "https://dreampuf.github.io/GraphvizOnline/#",
	}
	res, err := r.Render(context.Background(), []byte(source), name, "png")
	require.NoError(t, err)
	assert.Empty(t, res.Path)
	require.True(t, strings.HasPrefix(res.URL, r.OnlineURL))
	assert.NotContains(t, res.URL, " ")
	decoded, err := url.PathUnescape(strings.TrimPrefix(res.URL, r.OnlineURL))
	require.NoError(t, err)
	assert.Equal(t, source, decoded)
	// the DOT file is written even when the image is not
	assert.FileExists(t, name+".dot")

	r.OnlineFallback = false
	_, err = r.Render(context.Background(), []byte(source), name, "png")
	assert.ErrorIs(t, err, ErrNoDot)
}

func TestRenderFormat(t *testing.T) {
	r := &Renderer{}
	_, err := r.Render(context.Background(), []byte(source), filepath.Join(t.TempDir(), "out"), "gif")
	assert.ErrorContains(t, err, "unsupported output format")
}

// fakedot installs a script that copies its input file to its output file,
// with the same arguments as dot.
func fakedot(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts not available")
	}
	path := filepath.Join(t.TempDir(), "fakedot")
	require.NoError(t, os.WriteFile(path, []byte(script), 0755))
	return path
}

func TestRenderBinary(t *testing.T) {
	dot := fakedot(t, "#!/bin/sh\ncp \"$4\" \"$3\"\n")
	name := filepath.Join(t.TempDir(), "out")
	r := &Renderer{DotBinary: dot}
	res, err := r.Render(context.Background(), []byte(source), name, "svg")
	require.NoError(t, err)
	assert.Equal(t, name+".svg", res.Path)
	assert.Empty(t, res.URL)
	content, err := os.ReadFile(res.Path)
	require.NoError(t, err)
	assert.Equal(t, source, string(content))
}

func TestRenderBinaryFails(t *testing.T) {
	dot := fakedot(t, "#!/bin/sh\necho 'syntax error in line 1' >&2\nexit 1\n")
	r := &Renderer{DotBinary: dot, OnlineFallback: true}
	_, err := r.Render(context.Background(), []byte(source), filepath.Join(t.TempDir(), "out"), "png")
	assert.ErrorContains(t, err, "syntax error in line 1")
}
