package registry

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/vk/pybundle/internal/ctxlog"
	"github.com/vk/pybundle/internal/manifest"
	"github.com/vk/pybundle/internal/pyresource"
)

// Module is the interface that all built-in collector packages implement to
// be registered.
type Module interface {
	Register(r *Registry)
}

// Collector discovers resources for a single configured scan block.
type Collector interface {
	// Configure decodes the scan block's options against the manifest's
	// evaluation context. It is called exactly once, before Collect.
	Configure(ctx context.Context, scan *manifest.Scan, model *manifest.Model) error

	// Collect performs the discovery pass and returns the resources found,
	// in a deterministic order.
	Collect(ctx context.Context) ([]pyresource.Resource, error)
}

// Factory creates a fresh, unconfigured Collector. Each scan block gets its
// own instance.
type Factory func() Collector

// Registry holds the collector factories for a single application instance.
type Registry struct {
	factories map[string]Factory
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// RegisterCollector registers a factory for the given scan kind. A duplicate
// registration is a programmer error and panics.
func (r *Registry) RegisterCollector(kind string, f Factory) {
	if _, exists := r.factories[kind]; exists {
		panic(fmt.Sprintf("collector for scan kind '%s' already registered", kind))
	}
	slog.Debug("Registering collector.", "kind", kind)
	r.factories[kind] = f
}

// Lookup returns the factory for a scan kind.
func (r *Registry) Lookup(kind string) (Factory, bool) {
	f, ok := r.factories[kind]
	return f, ok
}

// Kinds returns the registered scan kinds, sorted.
func (r *Registry) Kinds() []string {
	kinds := make([]string, 0, len(r.factories))
	for k := range r.factories {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// Validate performs a parity check between the manifest and the compiled
// collectors: every scan block's kind must have a registered factory.
func (r *Registry) Validate(ctx context.Context, model *manifest.Model) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Validating manifest against registered collectors.", "scans", len(model.Scans))

	var missing []string
	for _, scan := range model.Scans {
		if _, ok := r.factories[scan.Kind]; !ok {
			missing = append(missing, fmt.Sprintf("scan %q uses unknown kind %q", scan.Name, scan.Kind))
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("manifest validation failed:\n  - %s", strings.Join(missing, "\n  - "))
	}
	return nil
}
