package ports

import "context"

// Tracer starts spans around pipeline steps.
//
//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks
type Tracer interface {
	// Start creates a span and a context carrying it.
	Start(ctx context.Context, name string, opts ...SpanOption) (context.Context, Span)

	// EmitPlan announces the ordered step names of a run.
	EmitPlan(ctx context.Context, steps []string)
}

// Span is a single traced step.
type Span interface {
	End()
	RecordError(err error)
	SetAttribute(key string, value any)
}

// SpanConfig holds per-span settings.
type SpanConfig struct {
	Attributes map[string]any
}

// SpanOption configures a span at start.
type SpanOption func(*SpanConfig)

// WithAttribute sets an attribute when the span starts.
func WithAttribute(key string, value any) SpanOption {
	return func(c *SpanConfig) {
		if c.Attributes == nil {
			c.Attributes = make(map[string]any)
		}
		c.Attributes[key] = value
	}
}
