// Package hclmanifest provides the concrete HCL implementation of the
// manifest.Loader interface. It owns all HCL parsing and the construction of
// the evaluation context exposed to manifest expressions.
package hclmanifest
