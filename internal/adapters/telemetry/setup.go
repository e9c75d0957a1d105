package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/cascade/internal/core/ports"
)

// Install registers a global tracer provider whose only processor forwards
// spans to renderer, and returns a tracer bound to it plus a shutdown func.
func Install(name string, renderer ports.Renderer) (*OTelTracer, func(context.Context) error) {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(NewBridge(renderer)),
	)
	otel.SetTracerProvider(tp)

	return NewOTelTracer(name).WithRenderer(renderer), tp.Shutdown
}
