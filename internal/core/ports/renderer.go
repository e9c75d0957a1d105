package ports

import "time"

// Renderer is the abstraction for terminal output of a run.
// It receives step lifecycle events from the telemetry bridge and the
// banners printed around every external command.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// OnPlanEmit is called once with the names of the steps about to run, in order.
	OnPlanEmit(steps []string)

	// OnStepStart is called when a step begins.
	// spanID: unique identifier for this step execution
	// name: human-readable step name
	// startTime: when the step started
	OnStepStart(spanID, name string, startTime time.Time)

	// OnStepComplete is called when a step finishes.
	// err is nil if the step succeeded.
	OnStepComplete(spanID string, endTime time.Time, err error)

	// Banner prints msg inside a border of asterisks.
	Banner(msg string)

	// Notice prints a plain informational line.
	Notice(msg string)
}
