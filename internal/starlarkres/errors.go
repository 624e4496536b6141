package starlarkres

import "fmt"

// UnsupportedOperationError reports an operation that a wrapped resource
// value does not support: an attribute outside the kind's allowlist, hashing,
// or any other capability the value deliberately lacks.
type UnsupportedOperationError struct {
	// Op is the operator spelling, e.g. ".spam" or "hash()".
	Op string

	// Left is the kind name of the value the operation was applied to.
	Left string

	// Right is the kind name of the right operand for binary operations,
	// empty otherwise.
	Right string
}

// Error implements the error interface.
func (e *UnsupportedOperationError) Error() string {
	if e.Right != "" {
		return fmt.Sprintf("unsupported operation %s between %s and %s", e.Op, e.Left, e.Right)
	}
	return fmt.Sprintf("unsupported operation %s on %s", e.Op, e.Left)
}

// unsupportedAttr builds the error for an attribute access outside a kind's
// allowlist.
func unsupportedAttr(kind, attr string) *UnsupportedOperationError {
	return &UnsupportedOperationError{Op: "." + attr, Left: kind}
}

// UnsupportedConversionError reports a resource variant that has no
// scripting-value representation. Today this only applies to already-compiled
// bytecode modules.
type UnsupportedConversionError struct {
	// Kind names the offending resource variant.
	Kind string
}

// Error implements the error interface.
func (e *UnsupportedConversionError) Error() string {
	return fmt.Sprintf("resource kind %s has no scripting value representation", e.Kind)
}
