package hclmanifest_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/pybundle/internal/hclmanifest"
)

// writeManifest writes an HCL manifest into a fresh temp dir and returns its
// path.
func writeManifest(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "pybundle.hcl")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadManifest(t *testing.T) {
	path := writeManifest(t, `
bundle {
  name   = "demo"
  script = "pack.star"
}

scan "source" "app" {
  path           = "src"
  bytecode       = true
  optimize_level = 1
}

scan "data" "assets" {
  path    = "src/app"
  package = "app"
}
`)

	model, err := hclmanifest.NewLoader().Load(context.Background(), path)
	require.NoError(t, err)

	require.Equal(t, "demo", model.Bundle.Name)
	require.Equal(t, filepath.Join(filepath.Dir(path), "pack.star"), model.Bundle.Script)
	require.Equal(t, filepath.Dir(path), model.Workspace.Root)

	require.Len(t, model.Scans, 2)
	require.Equal(t, "source", model.Scans[0].Kind)
	require.Equal(t, "app", model.Scans[0].Name)
	require.Equal(t, "data", model.Scans[1].Kind)
	require.Equal(t, "assets", model.Scans[1].Name)

	require.NotNil(t, model.EvalContext)
	require.Contains(t, model.EvalContext.Variables, "workspace")
}

func TestLoadManifestRequiresBundle(t *testing.T) {
	path := writeManifest(t, `
scan "source" "app" {
  path = "src"
}
`)

	_, err := hclmanifest.NewLoader().Load(context.Background(), path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "bundle block")
}

func TestLoadManifestRejectsDuplicateScans(t *testing.T) {
	path := writeManifest(t, `
bundle {
  name   = "demo"
  script = "pack.star"
}

scan "source" "app" {
  path = "src"
}

scan "source" "app" {
  path = "other"
}
`)

	_, err := hclmanifest.NewLoader().Load(context.Background(), path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "duplicate scan block")
}

func TestLoadManifestMissingFile(t *testing.T) {
	_, err := hclmanifest.NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "nope.hcl"))
	require.Error(t, err)
}
