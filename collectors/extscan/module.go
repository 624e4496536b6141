// Package extscan collects compiled extension modules (.so / .pyd) from a
// directory tree.
package extscan

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

// Options defines the arguments of a `scan "extension"` block.
type Options struct {
	// Path is the directory to walk.
	Path string `hcl:"path"`

	// Static marks the discovered extensions as statically linkable object
	// code rather than dynamic libraries.
	Static bool `hcl:"static,optional"`
}

// Collector walks one configured extension directory.
type Collector struct {
	root   string
	static bool
}

// Configure implements registry.Collector.
func (c *Collector) Configure(ctx context.Context, scan *manifest.Scan, model *manifest.Model) error {
	var opts Options
	if diags := gohcl.DecodeBody(scan.Options, model.EvalContext, &opts); diags.HasErrors() {
		return fmt.Errorf("failed to decode extension scan options: %w", diags)
	}
	if opts.Path == "" {
		return fmt.Errorf("extension scan requires a non-empty path")
	}

	root := opts.Path
	if !filepath.IsAbs(root) {
		root = filepath.Join(model.Workspace.Root, root)
	}

	c.root = root
	c.static = opts.Static
	return nil
}

// Collect implements registry.Collector.
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
			return nil
		}

		base := filepath.Base(path)
		stem, suffix, ok := splitExtensionName(base)
		if !ok {
			return nil
		}

		rel, err := filepath.Rel(c.root, path)
		if err != nil {
			return err
		}

		payload, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		name := discovery.JoinPackage("", filepath.ToSlash(filepath.Dir(rel)))
		name = discovery.JoinPackage(name, stem)
		data := pyresource.ExtensionModuleData{
			Name:                name,
			InitFn:              "PyInit_" + stem,
			ExtensionFileSuffix: suffix,
			ExtensionData:       payload,
		}

		if c.static {
			resources = append(resources, pyresource.ExtensionModuleStaticallyLinked{Data: data})
		} else {
			resources = append(resources, pyresource.ExtensionModuleDynamicLibrary{Data: data})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("extension scan of %s failed: %w", c.root, err)
	}

	logger.Debug("Extension scan complete.", "root", c.root, "resources", len(resources))
	return resources, nil
}

// splitExtensionName separates "mod.cpython-311-x86_64.so" into the module
// stem "mod" and the full suffix ".cpython-311-x86_64.so". Only .so and .pyd
// files qualify.
func splitExtensionName(base string) (stem, suffix string, ok bool) {
	switch strings.ToLower(filepath.Ext(base)) {
	case ".so", ".pyd":
	default:
		return "", "", false
	}

	i := strings.Index(base, ".")
	if i <= 0 {
		return "", "", false
	}
	return base[:i], base[i:], true
}

// Register registers the collector with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterCollector("extension", func() registry.Collector { return &Collector{} })
}
