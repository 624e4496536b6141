package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/pybundle/internal/ctxlog"
	"github.com/vk/pybundle/internal/manifest"
	"github.com/vk/pybundle/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	model    *manifest.Model
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and registry, the
// manifest loaded, and the registry validated against it.
func NewApp(outW io.Writer, appConfig *Config, loader manifest.Loader, modules ...registry.Module) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := loader.Load(ctx, appConfig.ManifestPath)
	if err != nil {
		// A failure to load the manifest is a fatal startup error.
		panic(fmt.Errorf("failed to load manifest: %w", err))
	}
	logger.Debug("Manifest loaded.", "bundle", model.Bundle.Name, "scans", len(model.Scans))

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreCollectors
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All collector modules registered.", "kinds", reg.Kinds())

	if err := reg.Validate(ctx, model); err != nil {
		// A manifest naming an unknown scan kind is a user error, but one we
		// cannot proceed past.
		panic(err)
	}
	logger.Debug("Registry validation passed.")

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		model:    model,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Model returns the loaded manifest model. This is primarily for testing.
func (a *App) Model() *manifest.Model {
	return a.model
}
