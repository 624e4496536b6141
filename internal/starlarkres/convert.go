package starlarkres

import (
	"fmt"

	"github.com/vk/pybundle/internal/pyresource"
	"go.starlark.net/starlark"
)

// ToValue converts a discovered resource into its scripting value. The
// mapping is total and deterministic over every resource variant except
// already-compiled bytecode modules, which return UnsupportedConversionError
// until a value representation for them exists.
func ToValue(r pyresource.Resource) (starlark.Value, error) {
	switch r := r.(type) {
	case pyresource.ModuleSource:
		return NewSourceModule(r), nil
	case pyresource.ModuleBytecodeRequest:
		return NewBytecodeModule(r), nil
	case pyresource.ModuleBytecode:
		return nil, &UnsupportedConversionError{Kind: "ModuleBytecode"}
	case pyresource.ResourceData:
		return NewResourceData(r), nil
	case pyresource.ExtensionModuleDynamicLibrary:
		return NewDynamicLibraryExtensionModule(r.Data), nil
	case pyresource.ExtensionModuleStaticallyLinked:
		return NewStaticallyLinkedExtensionModule(r.Data), nil
	default:
		return nil, fmt.Errorf("unknown resource variant %T", r)
	}
}

// ToValues converts a slice of resources, failing on the first resource that
// has no value representation.
func ToValues(resources []pyresource.Resource) ([]starlark.Value, error) {
	values := make([]starlark.Value, 0, len(resources))
	for _, r := range resources {
		v, err := ToValue(r)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}
