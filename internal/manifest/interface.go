package manifest

import "context"

// Loader is the interface for a format-specific manifest loader.
type Loader interface {
	// Load reads the manifest at path, validates it, and translates it into
	// the format-agnostic model.
	Load(ctx context.Context, path string) (*Model, error)
}
