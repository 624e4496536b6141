package pyresource

import "fmt"

// Resource is the closed set of packageable Python resource kinds. The
// variant set is fixed at design time; the marker method keeps the set
// sealed to this package.
type Resource interface {
	isResource()
}

// ModuleSource is a Python module defined by its source code.
type ModuleSource struct {
	// Name is the fully qualified module name, e.g. "foo.bar".
	Name string

	// Source holds the module's raw source code.
	Source []byte

	// IsPackage indicates whether the module is a package (__init__).
	IsPackage bool
}

// ModuleBytecodeRequest asks for a module's source to be compiled to
// bytecode at a specific optimization level during packaging.
type ModuleBytecodeRequest struct {
	Name          string
	Source        []byte
	OptimizeLevel OptimizationLevel
	IsPackage     bool
}

// ModuleBytecode is a module whose bytecode has already been produced.
// No scripting-value representation exists for this variant yet.
type ModuleBytecode struct {
	Name          string
	Bytecode      []byte
	OptimizeLevel OptimizationLevel
	IsPackage     bool
}

// ResourceData is a non-module data file belonging to a Python package.
type ResourceData struct {
	// Package is the fully qualified name of the owning package.
	Package string

	// Name is the resource's filename within the package.
	Name string

	// Data holds the raw file contents.
	Data []byte
}

// ExtensionModuleData describes a compiled extension module that pybundle
// itself obtained, either for static linking or as a shared library.
type ExtensionModuleData struct {
	// Name is the fully qualified module name.
	Name string

	// InitFn is the name of the module's initialization function, if known.
	InitFn string

	// ExtensionFileSuffix is the platform file suffix, e.g. ".so" or ".pyd".
	ExtensionFileSuffix string

	// ExtensionData holds the raw library contents.
	ExtensionData []byte

	// IsPackage indicates whether the extension provides a package.
	IsPackage bool
}

// DistributionExtensionModule describes an extension module shipped by a
// Python distribution. Its display name derives from the Module field.
type DistributionExtensionModule struct {
	// Module is the fully qualified module name as recorded by the
	// distribution's metadata.
	Module string

	// InitFn is the name of the module's initialization function.
	InitFn string

	// Required indicates the distribution cannot function without the
	// extension being present.
	Required bool
}

// ExtensionModuleDynamicLibrary is an extension module that exists as a
// standalone dynamic library.
type ExtensionModuleDynamicLibrary struct {
	Data ExtensionModuleData
}

// ExtensionModuleStaticallyLinked is an extension module whose object code
// can be linked into the produced executable.
type ExtensionModuleStaticallyLinked struct {
	Data ExtensionModuleData
}

func (ModuleSource) isResource()                    {}
func (ModuleBytecodeRequest) isResource()           {}
func (ModuleBytecode) isResource()                  {}
func (ResourceData) isResource()                    {}
func (ExtensionModuleDynamicLibrary) isResource()   {}
func (ExtensionModuleStaticallyLinked) isResource() {}

// OptimizationLevel is the 3-valued CPython bytecode optimization level.
type OptimizationLevel int

const (
	// OptimizationZero performs no optimization (-O not given).
	OptimizationZero OptimizationLevel = iota

	// OptimizationOne strips assert statements (-O).
	OptimizationOne

	// OptimizationTwo additionally strips docstrings (-OO).
	OptimizationTwo
)

// OptimizationLevelFromInt converts a user-supplied integer into an
// OptimizationLevel, rejecting anything outside 0..2.
func OptimizationLevelFromInt(v int) (OptimizationLevel, error) {
	switch v {
	case 0:
		return OptimizationZero, nil
	case 1:
		return OptimizationOne, nil
	case 2:
		return OptimizationTwo, nil
	default:
		return 0, fmt.Errorf("invalid bytecode optimization level %d: must be 0, 1, or 2", v)
	}
}

// Value returns the level as its integer form (0, 1, or 2).
func (l OptimizationLevel) Value() int {
	return int(l)
}

// String returns the level's name, e.g. "One".
func (l OptimizationLevel) String() string {
	switch l {
	case OptimizationZero:
		return "Zero"
	case OptimizationOne:
		return "One"
	case OptimizationTwo:
		return "Two"
	default:
		return fmt.Sprintf("OptimizationLevel(%d)", int(l))
	}
}
