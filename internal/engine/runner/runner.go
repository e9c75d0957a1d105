// Package runner executes external commands for the pipeline.
package runner

import (
	"context"

	"go.trai.ch/cascade/internal/core/domain"
	"go.trai.ch/cascade/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner echoes each command in a banner, runs it inside a span and turns
// a non-zero exit status into an error. Callers stop at the first error.
type Runner struct {
	executor ports.Executor
	renderer ports.Renderer
	tracer   ports.Tracer
}

// New creates a Runner.
func New(executor ports.Executor, renderer ports.Renderer, tracer ports.Tracer) *Runner {
	return &Runner{
		executor: executor,
		renderer: renderer,
		tracer:   tracer,
	}
}

// Run executes cmd as the step named step, with the variables written to rc
// layered over the process environment.
func (r *Runner) Run(
	ctx context.Context,
	step string,
	cmd *domain.CommandLine,
	rc *domain.RuntimeContext,
	opts ...ports.SpanOption,
) error {
	line := cmd.String()
	r.renderer.Banner(line)

	opts = append([]ports.SpanOption{ports.WithAttribute("command", line)}, opts...)
	ctx, span := r.tracer.Start(ctx, step, opts...)
	defer span.End()

	var env []string
	if rc != nil {
		env = rc.Overrides()
	}

	code, err := r.executor.Execute(ctx, cmd, env)
	span.SetAttribute("exit_code", code)
	if err != nil {
		err = zerr.With(zerr.Wrap(err, "running "+step), "command", line)
		span.RecordError(err)
		return err
	}

	if code != 0 {
		err = zerr.Wrap(domain.ErrCommandFailed, "running "+step)
		err = zerr.With(err, "exit_code", code)
		err = zerr.With(err, "command", line)
		span.RecordError(err)
		return err
	}

	return nil
}
