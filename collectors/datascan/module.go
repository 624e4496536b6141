// Package datascan collects non-module data files belonging to a Python
// package.
package datascan

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"

	"github.com/vk/pybundle/internal/ctxlog"
	"github.com/vk/pybundle/internal/discovery"
	"github.com/vk/pybundle/internal/manifest"
	"github.com/vk/pybundle/internal/pyresource"
	"github.com/vk/pybundle/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Options defines the arguments of a `scan "data"` block.
type Options struct {
	// Path is the package directory to walk.
	Path string `hcl:"path"`

	// Package is the fully qualified name of the package rooted at Path.
	// Files in subdirectories get the subdirectory appended in dotted form.
	Package string `hcl:"package"`
}

// Collector walks one configured package directory.
type Collector struct {
	root string
	pkg  string
}

// Configure implements registry.Collector.
func (c *Collector) Configure(ctx context.Context, scan *manifest.Scan, model *manifest.Model) error {
	var opts Options
	if diags := gohcl.DecodeBody(scan.Options, model.EvalContext, &opts); diags.HasErrors() {
		return fmt.Errorf("failed to decode data scan options: %w", diags)
	}
	if opts.Path == "" || opts.Package == "" {
		return fmt.Errorf("data scan requires both path and package")
	}

	root := opts.Path
	if !filepath.IsAbs(root) {
		root = filepath.Join(model.Workspace.Root, root)
	}

	c.root = root
	c.pkg = opts.Package
	return nil
}

// Collect implements registry.Collector. Python sources and compiled
// bytecode are skipped; everything else in the tree is package data.
func (c *Collector) Collect(ctx context.Context) ([]pyresource.Resource, error) {
	logger := ctxlog.FromContext(ctx)

	var resources []pyresource.Resource
	err := filepath.WalkDir(c.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == "__pycache__" {
				return filepath.SkipDir
			}
			return nil
		}

		switch strings.ToLower(filepath.Ext(path)) {
		case ".py", ".pyc":
			return nil
		}

		rel, err := filepath.Rel(c.root, path)
		if err != nil {
			return err
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		resources = append(resources, pyresource.ResourceData{
			Package: discovery.JoinPackage(c.pkg, filepath.Dir(rel)),
			Name:    filepath.Base(rel),
			Data:    data,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("data scan of %s failed: %w", c.root, err)
	}

	logger.Debug("Data scan complete.", "root", c.root, "package", c.pkg, "resources", len(resources))
	return resources, nil
}

// Register registers the collector with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterCollector("data", func() registry.Collector { return &Collector{} })
}
