package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.trai.ch/cascade/internal/core/domain"
	"go.trai.ch/cascade/internal/core/ports"
	"go.trai.ch/cascade/internal/engine/coverage"
)

// Step names, also used as span names.
const (
	StepInstall  = "conan install"
	StepGenerate = "cmake generate"
	StepBuild    = "cmake build"
	StepTest     = "test"
)

// CommandRunner runs a single external command and reports its failure.
type CommandRunner interface {
	Run(ctx context.Context, step string, cmd *domain.CommandLine, rc *domain.RuntimeContext, opts ...ports.SpanOption) error
}

// Pipeline sequences the external commands of one run. Every step returns
// the first error it meets and no later step runs after a failure.
type Pipeline struct {
	commands Commands
	runtime  *domain.RuntimeContext
	runner   CommandRunner
	tracer   ports.Tracer
	renderer ports.Renderer
	logger   ports.Logger
	store    ports.StampStore
	hasher   ports.Hasher
}

// New creates a Pipeline.
func New(
	commands Commands,
	rc *domain.RuntimeContext,
	runner CommandRunner,
	tracer ports.Tracer,
	renderer ports.Renderer,
	logger ports.Logger,
	store ports.StampStore,
	hasher ports.Hasher,
) *Pipeline {
	return &Pipeline{
		commands: commands,
		runtime:  rc,
		runner:   runner,
		tracer:   tracer,
		renderer: renderer,
		logger:   logger,
		store:    store,
		hasher:   hasher,
	}
}

// Steps returns the names of the steps Run will execute, in order.
func (p *Pipeline) Steps() []string {
	o := p.commands.Options
	var steps []string
	if o.RunsBuild() {
		if o.InstallDependencies {
			steps = append(steps, StepInstall)
		}
		steps = append(steps, StepGenerate, StepBuild)
	}
	if o.RunsTest() {
		steps = append(steps, StepTest)
	}
	return steps
}

// Run executes the build half and then the test half, as selected by the options.
func (p *Pipeline) Run(ctx context.Context) error {
	p.tracer.EmitPlan(ctx, p.Steps())

	o := p.commands.Options
	if o.RunsBuild() {
		if err := p.InstallDependencies(ctx); err != nil {
			return err
		}
		if err := p.Generate(ctx); err != nil {
			return err
		}
		if err := p.Build(ctx); err != nil {
			return err
		}
	}

	if o.RunsTest() {
		return p.Test(ctx)
	}
	return nil
}

// InstallDependencies runs the package installer when requested.
func (p *Pipeline) InstallDependencies(ctx context.Context) error {
	if !p.commands.Options.InstallDependencies {
		return nil
	}
	return p.runner.Run(ctx, StepInstall, p.commands.Install(), p.runtime)
}

// Generate runs the build-system configure step. A build directory that was
// configured with a different generator only produces a warning.
func (p *Pipeline) Generate(ctx context.Context) error {
	stamp := p.stamp()
	p.checkStamp(stamp)

	if err := p.runner.Run(ctx, StepGenerate, p.commands.Generate(), p.runtime); err != nil {
		return err
	}

	if err := p.store.Put(p.commands.BuildPath, stamp); err != nil {
		p.logger.Warn(fmt.Sprintf("could not record build configuration: %v", err))
	}
	return nil
}

// Build runs the build step.
func (p *Pipeline) Build(ctx context.Context) error {
	return p.runner.Run(ctx, StepBuild, p.commands.Build(), p.runtime)
}

// Test runs the test command Repeat times and then prints the coverage summary
// when coverage is measured.
func (p *Pipeline) Test(ctx context.Context) error {
	cmd := p.commands.Test()
	for i := range p.commands.Options.Repeat {
		p.renderer.Notice(fmt.Sprintf("test repeat: %d", i))
		if err := p.runner.Run(ctx, StepTest, cmd, p.runtime, ports.WithAttribute("repeat", i)); err != nil {
			return err
		}
	}

	if !p.commands.Options.MeasureCoverage {
		return nil
	}
	return p.reportCoverage()
}

func (p *Pipeline) reportCoverage() error {
	path := p.commands.ReportPath()
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		p.logger.Warn("coverage report not found: " + path)
		return nil
	}

	summary, ok, err := coverage.ReadReport(path, p.commands.Options.CoberturaFormat)
	if err != nil {
		return err
	}
	if ok {
		p.renderer.Banner(summary.String())
	}
	return nil
}

func (p *Pipeline) stamp() domain.Stamp {
	gen := p.commands.Generator()
	return domain.Stamp{
		Generator:   domain.NewCommandLine(gen[0], gen[1:]...).String(),
		Fingerprint: p.hasher.Fingerprint(gen...),
	}
}

func (p *Pipeline) checkStamp(current domain.Stamp) {
	previous, err := p.store.Get(p.commands.BuildPath)
	if err != nil {
		p.logger.Warn(fmt.Sprintf("ignoring build configuration record: %v", err))
		return
	}
	if previous != nil && previous.Fingerprint != current.Fingerprint {
		p.logger.Warn(fmt.Sprintf(
			"build directory was generated with %s, now %s; run with --clean if cmake rejects the cache",
			previous.Generator, current.Generator,
		))
	}
}
