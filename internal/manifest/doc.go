// Package manifest defines the format-agnostic model of a pybundle project
// manifest and the Loader interface that format-specific implementations
// (currently HCL) satisfy.
//
// A manifest names the packaging script to run and declares the resource
// scans the discovery engine should perform before the script executes.
package manifest
