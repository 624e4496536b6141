// Package registry provides the central "glue" for the collector system.
//
// The Registry maps the scan kinds used in manifests (e.g. "source") to the
// compiled Go collector implementations. During application startup the
// registry is populated by the built-in collector modules and then validated
// against the loaded manifest, so a manifest referring to an unknown scan
// kind fails before any discovery work begins.
package registry
