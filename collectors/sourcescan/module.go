// Package sourcescan collects Python source modules from a directory tree.
package sourcescan

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"

	"github.com/vk/pybundle/internal/ctxlog"
	"github.com/vk/pybundle/internal/discovery"
	"github.com/vk/pybundle/internal/manifest"
	"github.com/vk/pybundle/internal/pyresource"
	"github.com/vk/pybundle/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Options defines the arguments of a `scan "source"` block.
type Options struct {
	// Path is the directory to walk, relative to the workspace root unless
	// absolute.
	Path string `hcl:"path"`

	// Bytecode additionally emits a bytecode compilation request for every
	// discovered module.
	Bytecode bool `hcl:"bytecode,optional"`

	// OptimizeLevel is the bytecode optimization level (0, 1, or 2).
	OptimizeLevel int `hcl:"optimize_level,optional"`
}

// Collector walks one configured source tree.
type Collector struct {
	root     string
	bytecode bool
	level    pyresource.OptimizationLevel
}

// Configure implements registry.Collector.
func (c *Collector) Configure(ctx context.Context, scan *manifest.Scan, model *manifest.Model) error {
	var opts Options
	if diags := gohcl.DecodeBody(scan.Options, model.EvalContext, &opts); diags.HasErrors() {
		return fmt.Errorf("failed to decode source scan options: %w", diags)
	}
	if opts.Path == "" {
		return fmt.Errorf("source scan requires a non-empty path")
	}

	level, err := pyresource.OptimizationLevelFromInt(opts.OptimizeLevel)
	if err != nil {
		return err
	}

	root := opts.Path
	if !filepath.IsAbs(root) {
		root = filepath.Join(model.Workspace.Root, root)
	}

	c.root = root
	c.bytecode = opts.Bytecode
	c.level = level
	return nil
}

// Collect implements registry.Collector. WalkDir visits entries in lexical
// order, so results are deterministic for a given tree.
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

		rel, err := filepath.Rel(c.root, path)
		if err != nil {
			return err
		}
		name, isPackage, ok := discovery.ModuleNameFromPath(rel)
		if !ok {
			return nil
		}

		source, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		resources = append(resources, pyresource.ModuleSource{
			Name:      name,
			Source:    source,
			IsPackage: isPackage,
		})
		if c.bytecode {
			resources = append(resources, pyresource.ModuleBytecodeRequest{
				Name:          name,
				Source:        source,
				OptimizeLevel: c.level,
				IsPackage:     isPackage,
			})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("source scan of %s failed: %w", c.root, err)
	}

	logger.Debug("Source scan complete.", "root", c.root, "resources", len(resources))
	return resources, nil
}

// Register registers the collector with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterCollector("source", func() registry.Collector { return &Collector{} })
}
