package registry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/pybundle/internal/manifest"
	"github.com/vk/pybundle/internal/pyresource"
	"github.com/vk/pybundle/internal/registry"
)

// nopCollector satisfies registry.Collector for registration tests.
type nopCollector struct{}

func (nopCollector) Configure(context.Context, *manifest.Scan, *manifest.Model) error {
	return nil
}

func (nopCollector) Collect(context.Context) ([]pyresource.Resource, error) {
	return nil, nil
}

func newNop() registry.Collector { return nopCollector{} }

func TestRegisterAndLookup(t *testing.T) {
	r := registry.New()
	r.RegisterCollector("source", newNop)

	f, ok := r.Lookup("source")
	require.True(t, ok)
	require.NotNil(t, f)

	_, ok = r.Lookup("unknown")
	require.False(t, ok)

	require.Equal(t, []string{"source"}, r.Kinds())
}

func TestDuplicateRegistrationPanics(t *testing.T) {
	r := registry.New()
	r.RegisterCollector("source", newNop)

	require.Panics(t, func() {
		r.RegisterCollector("source", newNop)
	})
}

func TestValidateFlagsUnknownKinds(t *testing.T) {
	r := registry.New()
	r.RegisterCollector("source", newNop)

	model := &manifest.Model{
		Scans: []*manifest.Scan{
			{Kind: "source", Name: "ok"},
			{Kind: "wasm", Name: "bad"},
		},
	}

	err := r.Validate(context.Background(), model)
	require.Error(t, err)
	require.Contains(t, err.Error(), `unknown kind "wasm"`)

	model.Scans = model.Scans[:1]
	require.NoError(t, r.Validate(context.Background(), model))
}
