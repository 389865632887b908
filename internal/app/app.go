package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/seedgridgo/internal/config"
	"github.com/vk/seedgridgo/internal/ctxlog"
	"github.com/vk/seedgridgo/internal/hclloader"
	"github.com/vk/seedgridgo/internal/registry"
	"github.com/vk/seedgridgo/internal/seedtrack"
)

// App encapsulates the host's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	tracker  *seedtrack.Tracker
	model    *config.Model
}

// NewApp constructs the host application. When no modules are passed, the
// compiled-in core modules are registered; tests inject their own. Startup
// failures (an unreadable or malformed graph) panic and are recovered at
// the entrypoint.
func NewApp(outW io.Writer, appConfig *Config, modules ...registry.Module) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	tracker := seedtrack.New()

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules(tracker)
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All node modules registered.", "types", reg.Keys())

	loader := hclloader.NewLoader()
	model, err := loader.Load(ctx, appConfig.GraphPath)
	if err != nil {
		// A failure to load the graph is a fatal startup error.
		panic(fmt.Errorf("failed to load graph: %w", err))
	}
	logger.Debug("Graph loaded.", "nodes", len(model.Nodes))

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		tracker:  tracker,
		model:    model,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Tracker returns the process-wide seed tracker. This is primarily for testing.
func (a *App) Tracker() *seedtrack.Tracker {
	return a.tracker
}
