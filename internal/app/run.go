package app

import (
	"context"
	"fmt"

	"github.com/vk/pybundle/internal/ctxlog"
	"github.com/vk/pybundle/internal/discovery"
	"github.com/vk/pybundle/internal/engine"
	"github.com/vk/pybundle/internal/pyresource"
)

// Run executes the main application logic: discover resources per the
// manifest, then hand them to the packaging script.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	resources, err := discovery.Run(ctx, a.registry, a.model)
	if err != nil {
		return fmt.Errorf("resource discovery failed: %w", err)
	}
	a.logger.Info("Resource discovery finished.", "total", len(resources))
	for kind, count := range countByKind(resources) {
		a.logger.Debug("Discovered resources.", "kind", kind, "count", count)
	}

	eng := engine.New(a.outW)
	if _, err := eng.ExecScript(ctx, a.model.Bundle.Script, resources); err != nil {
		return fmt.Errorf("packaging script failed: %w", err)
	}

	a.logger.Info("Packaging script finished.", "bundle", a.model.Bundle.Name)
	a.logger.Debug("App.Run method finished.")
	return nil
}

// countByKind tallies resources per variant for the run summary.
func countByKind(resources []pyresource.Resource) map[string]int {
	counts := make(map[string]int)
	for _, r := range resources {
		switch r.(type) {
		case pyresource.ModuleSource:
			counts["module_source"]++
		case pyresource.ModuleBytecodeRequest:
			counts["module_bytecode_request"]++
		case pyresource.ModuleBytecode:
			counts["module_bytecode"]++
		case pyresource.ResourceData:
			counts["resource_data"]++
		case pyresource.ExtensionModuleDynamicLibrary:
			counts["extension_dynamic_library"]++
		case pyresource.ExtensionModuleStaticallyLinked:
			counts["extension_statically_linked"]++
		}
	}
	return counts
}
