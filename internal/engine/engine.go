package engine

import (
	"context"
	"fmt"
	"io"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/vk/pybundle/internal/ctxlog"
	"github.com/vk/pybundle/internal/pyresource"
	"github.com/vk/pybundle/internal/starlarkres"
)

// fileOptions enables the language features packaging scripts rely on:
// top-level control flow for filtering resources and set literals.
var fileOptions = &syntax.FileOptions{
	Set:             true,
	TopLevelControl: true,
}

// Engine executes packaging scripts.
type Engine struct {
	outW io.Writer
}

// New creates an Engine whose script print output goes to outW.
func New(outW io.Writer) *Engine {
	return &Engine{outW: outW}
}

// ExecScript converts the discovered resources into scripting values and
// executes the script at path with them predeclared as `resources`. The
// script's global bindings are returned for callers that inspect results.
func (e *Engine) ExecScript(ctx context.Context, path string, resources []pyresource.Resource) (starlark.StringDict, error) {
	logger := ctxlog.FromContext(ctx)

	values, err := starlarkres.ToValues(resources)
	if err != nil {
		return nil, fmt.Errorf("failed to convert resources for script: %w", err)
	}

	predeclared := starlark.StringDict{
		"resources": starlark.NewList(values),
	}

	thread := &starlark.Thread{
		Name: "packaging",
		Print: func(_ *starlark.Thread, msg string) {
			fmt.Fprintln(e.outW, msg)
		},
	}

	logger.Debug("Executing packaging script.", "path", path, "resources", len(values))
	globals, err := starlark.ExecFileOptions(fileOptions, thread, path, nil, predeclared)
	if err != nil {
		// Starlark eval errors carry their own backtrace; pass them through
		// unchanged so the CLI can render it.
		return nil, err
	}

	logger.Debug("Packaging script finished.", "globals", len(globals))
	return globals, nil
}
