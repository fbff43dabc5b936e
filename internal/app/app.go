package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/simwire/simwire/internal/ctxlog"
	"github.com/simwire/simwire/internal/domain"
	"github.com/simwire/simwire/internal/factory"
	"github.com/simwire/simwire/internal/hcldriver"
	"github.com/simwire/simwire/internal/register"
	"github.com/simwire/simwire/internal/simtime"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	reg     *register.Registry
	factory *factory.Factory
	loader  *hcldriver.Loader
	config  *Config
}

// NewApp constructs a fully wired application: an isolated logger, a fresh
// register with the calendar converter installed, and a factory populated
// from the given modules. With no modules the built-in domain model is used.
func NewApp(outW io.Writer, cfg *Config, modules ...factory.Module) *App {
	logger := newLogger(cfg, outW)
	logger.Debug("Logger configured successfully.")

	reg := register.New(logger)
	register.RegisterConverter(reg, func(_ *register.Registry, raw string) (simtime.Time, error) {
		parsed, err := simtime.Parse(raw)
		if err != nil {
			return simtime.Time{}, register.NewConversionError(raw, "simtime.Time", err.Error())
		}
		return parsed, nil
	})

	f := factory.New(reg, logger)
	if len(modules) == 0 {
		modules = []factory.Module{domain.Module{}}
	}
	for _, mod := range modules {
		mod.Register(f)
	}
	logger.Debug("All model modules registered.", "classes", f.Classes())

	return &App{
		outW:    outW,
		logger:  logger,
		reg:     reg,
		factory: f,
		loader:  hcldriver.NewLoader(),
		config:  cfg,
	}
}

// Registry returns the application's register. This is primarily for testing.
func (a *App) Registry() *register.Registry {
	return a.reg
}

// Factory returns the application's object factory.
func (a *App) Factory() *factory.Factory {
	return a.factory
}

// Run loads the model files, resolves every staged field in a single Reset
// pass, and dispatches the Initialise callbacks at the configured start time.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "model_path", a.config.ModelPath)

	if err := a.loader.Load(ctx, a.factory, a.config.ModelPath); err != nil {
		return fmt.Errorf("model load failed: %w", err)
	}

	if err := a.reg.Reset(); err != nil {
		return fmt.Errorf("model configuration failed: %w", err)
	}
	a.logger.Info("Model wired and configured.")

	if a.config.StartTime != "" {
		start, err := simtime.Parse(a.config.StartTime)
		if err != nil {
			return fmt.Errorf("invalid start time: %w", err)
		}
		a.reg.DoTimeCallbacks("Initialise", start)
		a.logger.Info("Initialise callbacks dispatched.", "time", start.String())
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
