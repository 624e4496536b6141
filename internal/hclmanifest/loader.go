package hclmanifest

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/pybundle/internal/ctxlog"
	"github.com/vk/pybundle/internal/manifest"
)

// Loader is the HCL-specific implementation of the manifest.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot decodes the top-level blocks of a manifest file. Scan block bodies
// are captured raw so the owning collector can decode them later.
type fileRoot struct {
	Bundle *bundleBlock `hcl:"bundle,block"`
	Scans  []*scanBlock `hcl:"scan,block"`
}

type bundleBlock struct {
	Name   string `hcl:"name"`
	Script string `hcl:"script"`
}

type scanBlock struct {
	Kind    string   `hcl:"kind,label"`
	Name    string   `hcl:"name,label"`
	Options hcl.Body `hcl:",remain"`
}

// Load parses and validates the manifest at path.
func (l *Loader) Load(ctx context.Context, path string) (*manifest.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL manifest loader started.", "path", path)

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve manifest path %s: %w", path, err)
	}

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(absPath)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, diags)
	}

	workspace := manifest.Workspace{
		Root: filepath.Dir(absPath),
		Path: absPath,
	}
	evalCtx := newEvalContext(workspace)

	var root fileRoot
	if diags := gohcl.DecodeBody(hclFile.Body, evalCtx, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode manifest %s: %w", path, diags)
	}

	model, err := l.translate(&root, workspace, evalCtx)
	if err != nil {
		return nil, err
	}

	logger.Debug("HCL manifest loaded.", "bundle", model.Bundle.Name, "scans", len(model.Scans))
	return model, nil
}

// translate converts the HCL-specific schema into the agnostic model and
// enforces the manifest's structural rules.
func (l *Loader) translate(root *fileRoot, ws manifest.Workspace, evalCtx *hcl.EvalContext) (*manifest.Model, error) {
	if root.Bundle == nil {
		return nil, fmt.Errorf("manifest must contain exactly one bundle block")
	}
	if root.Bundle.Script == "" {
		return nil, fmt.Errorf("bundle block must set a packaging script")
	}

	script := root.Bundle.Script
	if !filepath.IsAbs(script) {
		script = filepath.Join(ws.Root, script)
	}

	model := &manifest.Model{
		Bundle: &manifest.Bundle{
			Name:   root.Bundle.Name,
			Script: script,
		},
		Workspace:   ws,
		EvalContext: evalCtx,
	}

	seen := make(map[string]struct{})
	for _, s := range root.Scans {
		key := s.Kind + "." + s.Name
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("duplicate scan block %q", key)
		}
		seen[key] = struct{}{}

		model.Scans = append(model.Scans, &manifest.Scan{
			Kind:    s.Kind,
			Name:    s.Name,
			Options: s.Options,
		})
	}

	return model, nil
}

// newEvalContext builds the evaluation context available to manifest
// expressions. Scripts refer to workspace.root to anchor relative paths.
func newEvalContext(ws manifest.Workspace) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"workspace": cty.ObjectVal(map[string]cty.Value{
				"root":     cty.StringVal(ws.Root),
				"manifest": cty.StringVal(ws.Path),
			}),
		},
	}
}
