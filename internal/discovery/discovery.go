package discovery

import (
	"context"
	"fmt"

	"github.com/vk/pybundle/internal/ctxlog"
	"github.com/vk/pybundle/internal/manifest"
	"github.com/vk/pybundle/internal/pyresource"
	"github.com/vk/pybundle/internal/registry"
)

// Run executes every scan block in the manifest and returns the aggregated
// resources. Scans run sequentially in manifest order; within a scan the
// collector guarantees a deterministic order.
func Run(ctx context.Context, reg *registry.Registry, model *manifest.Model) ([]pyresource.Resource, error) {
	logger := ctxlog.FromContext(ctx)

	var resources []pyresource.Resource
	for _, scan := range model.Scans {
		factory, ok := reg.Lookup(scan.Kind)
		if !ok {
			// Validate catches this at startup; reaching it here means the
			// registry changed after validation.
			return nil, fmt.Errorf("no collector registered for scan kind %q", scan.Kind)
		}

		collector := factory()
		if err := collector.Configure(ctx, scan, model); err != nil {
			return nil, fmt.Errorf("scan %s.%s: %w", scan.Kind, scan.Name, err)
		}

		found, err := collector.Collect(ctx)
		if err != nil {
			return nil, fmt.Errorf("scan %s.%s: %w", scan.Kind, scan.Name, err)
		}

		logger.Debug("Scan finished.", "kind", scan.Kind, "name", scan.Name, "resources", len(found))
		resources = append(resources, found...)
	}

	return resources, nil
}
