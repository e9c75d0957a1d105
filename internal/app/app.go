// Package app implements the application layer for cascade.
package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"go.trai.ch/cascade/internal/adapters/telemetry"
	"go.trai.ch/cascade/internal/core/domain"
	"go.trai.ch/cascade/internal/core/ports"
	"go.trai.ch/cascade/internal/engine/pipeline"
	"go.trai.ch/cascade/internal/engine/runner"
	"go.trai.ch/zerr"
)

// TracerName is the instrumentation name of the run spans.
const TracerName = "cascade"

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	executor     ports.Executor
	logger       ports.Logger
	renderer     ports.Renderer
	resolver     ports.VersionResolver
	store        ports.StampStore
	hasher       ports.Hasher
	platform     domain.Platform

	environ func() []string
	getwd   func() (string, error)
	config  *domain.Config
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	executor ports.Executor,
	log ports.Logger,
	renderer ports.Renderer,
	resolver ports.VersionResolver,
	store ports.StampStore,
	hasher ports.Hasher,
	platform domain.Platform,
) *App {
	return &App{
		configLoader: loader,
		executor:     executor,
		logger:       log,
		renderer:     renderer,
		resolver:     resolver,
		store:        store,
		hasher:       hasher,
		platform:     platform,
		environ:      os.Environ,
		getwd:        os.Getwd,
	}
}

// WithEnviron replaces the inherited environment.
// This is primarily used for testing.
func (a *App) WithEnviron(environ []string) *App {
	a.environ = func() []string { return environ }
	return a
}

// WithWorkDir pins the working directory instead of asking the OS.
// This is primarily used for testing.
func (a *App) WithWorkDir(dir string) *App {
	a.getwd = func() (string, error) { return dir, nil }
	return a
}

// Defaults returns the flag defaults declared in the project configuration.
func (a *App) Defaults() (domain.Options, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return domain.Options{}, err
	}
	return cfg.Defaults, nil
}

// Run executes the build-and-test pipeline with the given options.
func (a *App) Run(ctx context.Context, opts domain.Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	cwd, err := a.workDir()
	if err != nil {
		return err
	}

	rc := domain.NewRuntimeContext(cwd, a.platform, a.environ())
	pipeline.InitEnvironment(rc, cfg, a.resolver, a.logger)

	buildPath, forceInstall, err := pipeline.EnsureBuildPath(filepath.Join(cwd, cfg.BuildDir), opts.CleanBuild)
	if err != nil {
		return err
	}
	if forceInstall && !opts.InstallDependencies {
		a.logger.Info("clean build: dependencies will be installed")
		opts = opts.WithForcedInstall()
	}

	tracer, shutdown := telemetry.Install(TracerName, a.renderer)
	defer func() {
		_ = shutdown(context.WithoutCancel(ctx))
	}()

	commands := pipeline.Commands{
		Config:    cfg,
		Platform:  a.platform,
		WorkDir:   cwd,
		BuildPath: buildPath,
		Options:   opts,
	}
	p := pipeline.New(
		commands,
		rc,
		runner.New(a.executor, a.renderer, tracer),
		tracer,
		a.renderer,
		a.logger,
		a.store,
		a.hasher,
	)

	if err := p.Run(ctx); err != nil {
		return errors.Join(domain.ErrRunFailed, err)
	}
	return nil
}

func (a *App) loadConfig() (*domain.Config, error) {
	if a.config != nil {
		return a.config, nil
	}
	cwd, err := a.workDir()
	if err != nil {
		return nil, err
	}
	cfg, err := a.configLoader.Load(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	a.config = cfg
	return cfg, nil
}

func (a *App) workDir() (string, error) {
	cwd, err := a.getwd()
	if err != nil {
		return "", zerr.Wrap(domain.ErrWorkDirUnavailable, err.Error())
	}
	return cwd, nil
}
