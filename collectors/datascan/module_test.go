package datascan_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/pybundle/collectors/datascan"
	"github.com/vk/pybundle/internal/hclmanifest"
	"github.com/vk/pybundle/internal/pyresource"
	"github.com/vk/pybundle/internal/registry"
)

func setupScan(t *testing.T, manifestHCL string, files map[string]string) registry.Collector {
	t.Helper()

	dir := t.TempDir()
	for rel, contents := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	}

	manifestPath := filepath.Join(dir, "pybundle.hcl")
	require.NoError(t, os.WriteFile(manifestPath, []byte(manifestHCL), 0o644))

	model, err := hclmanifest.NewLoader().Load(context.Background(), manifestPath)
	require.NoError(t, err)
	require.NotEmpty(t, model.Scans)

	r := registry.New()
	(&datascan.Module{}).Register(r)
	factory, ok := r.Lookup("data")
	require.True(t, ok)

	c := factory()
	require.NoError(t, c.Configure(context.Background(), model.Scans[0], model))
	return c
}

func TestCollectPackageData(t *testing.T) {
	c := setupScan(t, `
bundle {
  name   = "demo"
  script = "pack.star"
}

scan "data" "assets" {
  path    = "src/app"
  package = "app"
}
`, map[string]string{
		"src/app/config.json":          `{"k": 1}`,
		"src/app/skip.py":              "x = 1\n",
		"src/app/templates/index.html": "<html/>",
	})

	resources, err := c.Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, resources, 2)

	cfg := resources[0].(pyresource.ResourceData)
	require.Equal(t, "app", cfg.Package)
	require.Equal(t, "config.json", cfg.Name)
	require.Equal(t, `{"k": 1}`, string(cfg.Data))

	tmpl := resources[1].(pyresource.ResourceData)
	require.Equal(t, "app.templates", tmpl.Package)
	require.Equal(t, "index.html", tmpl.Name)
}

func TestConfigureRequiresPackage(t *testing.T) {
	dir := t.TempDir()
	manifestPath := filepath.Join(dir, "pybundle.hcl")
	require.NoError(t, os.WriteFile(manifestPath, []byte(`
bundle {
  name   = "demo"
  script = "pack.star"
}

scan "data" "assets" {
  path    = "src/app"
  package = ""
}
`), 0o644))

	model, err := hclmanifest.NewLoader().Load(context.Background(), manifestPath)
	require.NoError(t, err)

	r := registry.New()
	(&datascan.Module{}).Register(r)
	factory, _ := r.Lookup("data")

	err = factory().Configure(context.Background(), model.Scans[0], model)
	require.Error(t, err)
	require.Contains(t, err.Error(), "path and package")
}
