package engine_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.starlark.net/starlark"

	"github.com/vk/pybundle/internal/engine"
	"github.com/vk/pybundle/internal/pyresource"
	"github.com/vk/pybundle/internal/starlarkres"
)

func writeScript(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "pack.star")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestExecScriptExposesResources(t *testing.T) {
	script := writeScript(t, `
for r in resources:
    print(r)

count = len(resources)
`)

	var out bytes.Buffer
	eng := engine.New(&out)

	globals, err := eng.ExecScript(context.Background(), script, []pyresource.Resource{
		pyresource.ModuleSource{Name: "pkg", IsPackage: true},
		pyresource.ResourceData{Package: "pkg", Name: "a.txt"},
	})
	require.NoError(t, err)

	require.Equal(t, starlark.MakeInt(2), globals["count"])
	require.Contains(t, out.String(), "PythonSourceModule<name=pkg>")
	require.Contains(t, out.String(), "PythonResourceData<package=pkg, name=a.txt>")
}

func TestExecScriptSurfacesAttributeErrors(t *testing.T) {
	script := writeScript(t, `x = resources[0].source`)

	eng := engine.New(&bytes.Buffer{})
	_, err := eng.ExecScript(context.Background(), script, []pyresource.Resource{
		pyresource.ModuleSource{Name: "pkg"},
	})
	require.Error(t, err)

	var opErr *starlarkres.UnsupportedOperationError
	require.ErrorAs(t, err, &opErr)
	require.Equal(t, ".source", opErr.Op)
}

func TestExecScriptFailsOnUnconvertibleResource(t *testing.T) {
	script := writeScript(t, `pass`)

	eng := engine.New(&bytes.Buffer{})
	_, err := eng.ExecScript(context.Background(), script, []pyresource.Resource{
		pyresource.ModuleBytecode{Name: "pkg"},
	})
	require.Error(t, err)

	var convErr *starlarkres.UnsupportedConversionError
	require.ErrorAs(t, err, &convErr)
}
