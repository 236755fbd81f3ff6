// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package render converts DOT descriptions of diagrams into images using the
// Graphviz dot tool.
package render

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// ErrNoDot is returned when the dot binary cannot be found and there is no
// online fallback.
var ErrNoDot = errors.New("graphviz dot binary not found")

// Result describes the output of a rendering. Path is the generated file. URL
// is set instead of an image when dot is not available and the online
// fallback is enabled.
type Result struct {
	DotPath string
	Path    string
	URL     string
}

// Renderer calls the dot binary to convert DOT files.
type Renderer struct {
	DotBinary      string
	OnlineFallback bool
	OnlineURL      string
	Logger         *zap.Logger
}

// Formats lists the formats accepted by Render.
var Formats = []string{"dot", "png", "svg", "pdf"}

func validformat(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}

// Render writes the DOT source in file name.dot and, unless format is "dot",
// converts it into file name.format.
func (r *Renderer) Render(ctx context.Context, dot []byte, name, format string) (Result, error) {
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if !validformat(format) {
		return Result{}, fmt.Errorf("unsupported output format %q (valid: %v)", format, Formats)
	}
	res := Result{DotPath: name + ".dot"}
	if err := os.WriteFile(res.DotPath, dot, 0644); err != nil {
		return Result{}, fmt.Errorf("failed to write DOT file: %w", err)
	}
	if format == "dot" {
		res.Path = res.DotPath
		return res, nil
	}

	binary := r.DotBinary
	if binary == "" {
		binary = "dot"
	}
	path, err := exec.LookPath(binary)
	if err != nil {
		if !r.OnlineFallback {
			return res, fmt.Errorf("%s: %w", binary, ErrNoDot)
		}
		logger.Warn("dot binary not found, using online fallback",
			zap.String("binary", binary),
			zap.Error(err))
		res.URL = r.OnlineURL + url.PathEscape(string(dot))
		return res, nil
	}

	res.Path = name + "." + format
	cmd := exec.CommandContext(ctx, path, "-T"+format, "-o", res.Path, res.DotPath)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return res, fmt.Errorf("dot failed: %w: %s", err, strings.TrimSpace(string(out)))
	}
	logger.Debug("rendered diagram",
		zap.String("dot", path),
		zap.String("output", res.Path))
	return res, nil
}
