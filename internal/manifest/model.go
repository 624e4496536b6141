package manifest

import "github.com/hashicorp/hcl/v2"

// Model is the unified representation of a project manifest after loading.
type Model struct {
	Bundle    *Bundle
	Scans     []*Scan
	Workspace Workspace

	// EvalContext carries the variables (e.g. workspace paths) available to
	// expressions in late-bound scan options.
	EvalContext *hcl.EvalContext
}

// Bundle describes the executable being assembled.
type Bundle struct {
	// Name is the bundle's identifier.
	Name string

	// Script is the path to the Starlark packaging script, resolved against
	// the workspace root.
	Script string
}

// Scan declares one discovery pass. Its options body stays undecoded here;
// the collector registered for Kind decodes it with the model's eval context.
type Scan struct {
	// Kind selects the collector, e.g. "source", "data", "extension".
	Kind string

	// Name distinguishes multiple scans of the same kind.
	Name string

	// Options is the raw remainder of the scan block.
	Options hcl.Body
}

// Workspace locates the manifest on disk so relative paths have an anchor.
type Workspace struct {
	// Root is the directory containing the manifest file.
	Root string

	// Path is the manifest file itself.
	Path string
}
