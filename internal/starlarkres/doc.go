// Package starlarkres binds discovered Python resources into the Starlark
// value system.
//
// Each resource kind gets a matching immutable value type that owns a private
// copy of the underlying record and exposes a fixed allowlist of attributes.
// The attribute allowlists are the single source of truth per kind: both
// attribute lookup and dir() are driven by them, so exposing a withheld field
// later is a one-line change next to its Attr case.
//
// Values support display/repr, truthiness (always true), structural
// comparison, and attribute probing. Everything else (indexing, iteration,
// hashing, calling, attribute assignment) is unsupported and surfaces as an
// operation-not-supported error inside the evaluator.
package starlarkres
