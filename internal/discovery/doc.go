// Package discovery drives the resource discovery engine: it walks the
// manifest's scan blocks, instantiates the registered collector for each, and
// aggregates the discovered resources in manifest order.
//
// It also hosts the path-to-module-name translation shared by the filesystem
// collectors.
package discovery
