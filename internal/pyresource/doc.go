// Package pyresource defines the domain model for packageable Python
// resources: module source code, bytecode compilation requests, package data
// files, and native extension modules.
//
// Resources are plain value records produced by the discovery engine. They
// carry their payload bytes directly, so a resource is self-contained once
// collected and never reads back from the filesystem.
package pyresource
