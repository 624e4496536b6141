package starlarkres

import (
	"fmt"

	"github.com/vk/pybundle/internal/pyresource"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Kind names as reported to the Starlark runtime via Type(). These appear in
// error messages and in type(x) results inside packaging scripts.
const (
	TypeSourceModule    = "PythonSourceModule"
	TypeBytecodeModule  = "PythonBytecodeModule"
	TypeResourceData    = "PythonResourceData"
	TypeExtensionModule = "PythonExtensionModule"
)

// Attribute allowlists, one per kind, kept sorted. These are the single
// source of truth: Attr and AttrNames must agree with them exactly. Raw
// source, bytecode, and data payloads are deliberately absent until packaging
// scripts are allowed to consume them.
var (
	sourceModuleAttrNames    = []string{"is_package", "name"}
	bytecodeModuleAttrNames  = []string{"is_package", "name", "optimize_level"}
	resourceDataAttrNames    = []string{"name", "package"}
	extensionModuleAttrNames = []string{"name"}
)

var (
	_ starlark.HasAttrs   = (*SourceModule)(nil)
	_ starlark.Comparable = (*SourceModule)(nil)
	_ starlark.HasAttrs   = (*BytecodeModule)(nil)
	_ starlark.Comparable = (*BytecodeModule)(nil)
	_ starlark.HasAttrs   = (*ResourceData)(nil)
	_ starlark.Comparable = (*ResourceData)(nil)
	_ starlark.HasAttrs   = (*ExtensionModule)(nil)
	_ starlark.Comparable = (*ExtensionModule)(nil)
)

// cloneBytes copies a payload so the wrapped value's lifetime is independent
// of the discovery engine's record.
func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append([]byte(nil), b...)
}

// attrNamesCopy hands the evaluator its own slice; dir() results must not
// alias the allowlist.
func attrNamesCopy(names []string) []string {
	return append([]string(nil), names...)
}

// SourceModule is the scripting value for a Python source module.
type SourceModule struct {
	module pyresource.ModuleSource
}

// NewSourceModule wraps a source module record, copying its payload.
func NewSourceModule(m pyresource.ModuleSource) *SourceModule {
	m.Source = cloneBytes(m.Source)
	return &SourceModule{module: m}
}

// String implements starlark.Value. The repr form is identical.
func (m *SourceModule) String() string {
	return fmt.Sprintf("PythonSourceModule<name=%s>", m.module.Name)
}

// Type implements starlark.Value.
func (m *SourceModule) Type() string { return TypeSourceModule }

// Freeze implements starlark.Value. The value is immutable from birth.
func (m *SourceModule) Freeze() {}

// Truth implements starlark.Value. A resource handle is never falsy.
func (m *SourceModule) Truth() starlark.Bool { return starlark.True }

// Hash implements starlark.Value. Resource values are not hashable.
func (m *SourceModule) Hash() (uint32, error) {
	return 0, &UnsupportedOperationError{Op: "hash()", Left: TypeSourceModule}
}

// Attr implements starlark.HasAttrs.
func (m *SourceModule) Attr(name string) (starlark.Value, error) {
	switch name {
	case "name":
		return starlark.String(m.module.Name), nil
	case "is_package":
		return starlark.Bool(m.module.IsPackage), nil
	}
	return nil, unsupportedAttr(TypeSourceModule, name)
}

// AttrNames implements starlark.HasAttrs.
func (m *SourceModule) AttrNames() []string { return attrNamesCopy(sourceModuleAttrNames) }

// CompareSameType implements starlark.Comparable with a structural,
// field-wise ordering over the wrapped record.
func (m *SourceModule) CompareSameType(op syntax.Token, y starlark.Value, depth int) (bool, error) {
	return compareOp(op, structuralCompare(m.module, y.(*SourceModule).module))
}

// BytecodeModule is the scripting value for a bytecode compilation request.
type BytecodeModule struct {
	module pyresource.ModuleBytecodeRequest
}

// NewBytecodeModule wraps a bytecode request record, copying its payload.
func NewBytecodeModule(m pyresource.ModuleBytecodeRequest) *BytecodeModule {
	m.Source = cloneBytes(m.Source)
	return &BytecodeModule{module: m}
}

// String implements starlark.Value. The repr form is identical.
func (m *BytecodeModule) String() string {
	return fmt.Sprintf("PythonBytecodeModule<name=%s; level=%s>", m.module.Name, m.module.OptimizeLevel)
}

// Type implements starlark.Value.
func (m *BytecodeModule) Type() string { return TypeBytecodeModule }

// Freeze implements starlark.Value.
func (m *BytecodeModule) Freeze() {}

// Truth implements starlark.Value.
func (m *BytecodeModule) Truth() starlark.Bool { return starlark.True }

// Hash implements starlark.Value.
func (m *BytecodeModule) Hash() (uint32, error) {
	return 0, &UnsupportedOperationError{Op: "hash()", Left: TypeBytecodeModule}
}

// Attr implements starlark.HasAttrs. optimize_level surfaces as the plain
// integer 0, 1, or 2.
func (m *BytecodeModule) Attr(name string) (starlark.Value, error) {
	switch name {
	case "name":
		return starlark.String(m.module.Name), nil
	case "optimize_level":
		return starlark.MakeInt(m.module.OptimizeLevel.Value()), nil
	case "is_package":
		return starlark.Bool(m.module.IsPackage), nil
	}
	return nil, unsupportedAttr(TypeBytecodeModule, name)
}

// AttrNames implements starlark.HasAttrs.
func (m *BytecodeModule) AttrNames() []string { return attrNamesCopy(bytecodeModuleAttrNames) }

// CompareSameType implements starlark.Comparable.
func (m *BytecodeModule) CompareSameType(op syntax.Token, y starlark.Value, depth int) (bool, error) {
	return compareOp(op, structuralCompare(m.module, y.(*BytecodeModule).module))
}

// ResourceData is the scripting value for a package data file.
type ResourceData struct {
	data pyresource.ResourceData
}

// NewResourceData wraps a data resource record, copying its payload.
func NewResourceData(d pyresource.ResourceData) *ResourceData {
	d.Data = cloneBytes(d.Data)
	return &ResourceData{data: d}
}

// String implements starlark.Value. The repr form is identical.
func (d *ResourceData) String() string {
	return fmt.Sprintf("PythonResourceData<package=%s, name=%s>", d.data.Package, d.data.Name)
}

// Type implements starlark.Value.
func (d *ResourceData) Type() string { return TypeResourceData }

// Freeze implements starlark.Value.
func (d *ResourceData) Freeze() {}

// Truth implements starlark.Value.
func (d *ResourceData) Truth() starlark.Bool { return starlark.True }

// Hash implements starlark.Value.
func (d *ResourceData) Hash() (uint32, error) {
	return 0, &UnsupportedOperationError{Op: "hash()", Left: TypeResourceData}
}

// Attr implements starlark.HasAttrs.
func (d *ResourceData) Attr(name string) (starlark.Value, error) {
	switch name {
	case "package":
		return starlark.String(d.data.Package), nil
	case "name":
		return starlark.String(d.data.Name), nil
	}
	return nil, unsupportedAttr(TypeResourceData, name)
}

// AttrNames implements starlark.HasAttrs.
func (d *ResourceData) AttrNames() []string { return attrNamesCopy(resourceDataAttrNames) }

// CompareSameType implements starlark.Comparable.
func (d *ResourceData) CompareSameType(op syntax.Token, y starlark.Value, depth int) (bool, error) {
	return compareOp(op, structuralCompare(d.data, y.(*ResourceData).data))
}

// extensionFlavor distinguishes where an extension module came from.
type extensionFlavor int

const (
	flavorDistribution extensionFlavor = iota
	flavorStaticallyLinked
	flavorDynamicLibrary
)

// ExtensionModule is the scripting value for a native extension module. One
// value type covers all three flavors; only the derived name is exposed.
type ExtensionModule struct {
	flavor extensionFlavor

	// Exactly one of the two records below is meaningful, selected by flavor.
	dist pyresource.DistributionExtensionModule
	data pyresource.ExtensionModuleData
}

// NewDistributionExtensionModule wraps a distribution-provided extension.
// There is no dispatch entry for this flavor; callers construct it directly.
func NewDistributionExtensionModule(m pyresource.DistributionExtensionModule) *ExtensionModule {
	return &ExtensionModule{flavor: flavorDistribution, dist: m}
}

// NewStaticallyLinkedExtensionModule wraps a statically-linkable extension.
func NewStaticallyLinkedExtensionModule(d pyresource.ExtensionModuleData) *ExtensionModule {
	d.ExtensionData = cloneBytes(d.ExtensionData)
	return &ExtensionModule{flavor: flavorStaticallyLinked, data: d}
}

// NewDynamicLibraryExtensionModule wraps a dynamic-library extension.
func NewDynamicLibraryExtensionModule(d pyresource.ExtensionModuleData) *ExtensionModule {
	d.ExtensionData = cloneBytes(d.ExtensionData)
	return &ExtensionModule{flavor: flavorDynamicLibrary, data: d}
}

// name derives the module name per flavor: distribution extensions use the
// distribution metadata's module field, the others their own name field.
func (m *ExtensionModule) name() string {
	if m.flavor == flavorDistribution {
		return m.dist.Module
	}
	return m.data.Name
}

// String implements starlark.Value. The repr form is identical.
func (m *ExtensionModule) String() string {
	return fmt.Sprintf("PythonExtensionModule<name=%s>", m.name())
}

// Type implements starlark.Value.
func (m *ExtensionModule) Type() string { return TypeExtensionModule }

// Freeze implements starlark.Value.
func (m *ExtensionModule) Freeze() {}

// Truth implements starlark.Value.
func (m *ExtensionModule) Truth() starlark.Bool { return starlark.True }

// Hash implements starlark.Value.
func (m *ExtensionModule) Hash() (uint32, error) {
	return 0, &UnsupportedOperationError{Op: "hash()", Left: TypeExtensionModule}
}

// Attr implements starlark.HasAttrs.
func (m *ExtensionModule) Attr(name string) (starlark.Value, error) {
	switch name {
	case "name":
		return starlark.String(m.name()), nil
	}
	return nil, unsupportedAttr(TypeExtensionModule, name)
}

// AttrNames implements starlark.HasAttrs.
func (m *ExtensionModule) AttrNames() []string { return attrNamesCopy(extensionModuleAttrNames) }

// CompareSameType implements starlark.Comparable. Flavors order before the
// flavor's record is compared structurally.
func (m *ExtensionModule) CompareSameType(op syntax.Token, y starlark.Value, depth int) (bool, error) {
	o := y.(*ExtensionModule)
	cmp := compareInts(int64(m.flavor), int64(o.flavor))
	if cmp == 0 {
		if m.flavor == flavorDistribution {
			cmp = structuralCompare(m.dist, o.dist)
		} else {
			cmp = structuralCompare(m.data, o.data)
		}
	}
	return compareOp(op, cmp)
}
