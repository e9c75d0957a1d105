package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/cascade/internal/adapters/telemetry"
	"go.trai.ch/cascade/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestBridge_StartAndEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRenderer := mocks.NewMockRenderer(ctrl)

	var startedID string
	mockRenderer.EXPECT().OnStepStart(gomock.Any(), "cmake build", gomock.Any()).
		Do(func(spanID, _ string, _ any) { startedID = spanID })
	mockRenderer.EXPECT().OnStepComplete(gomock.Any(), gomock.Any(), nil).
		Do(func(spanID string, _ any, _ error) { assert.Equal(t, startedID, spanID) })

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewBridge(mockRenderer)))
	_, span := tp.Tracer("test").Start(context.Background(), "cmake build")
	span.End()
}

func TestBridge_EndWithError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRenderer := mocks.NewMockRenderer(ctrl)

	mockRenderer.EXPECT().OnStepStart(gomock.Any(), gomock.Any(), gomock.Any())
	mockRenderer.EXPECT().OnStepComplete(gomock.Any(), gomock.Any(), gomock.Any()).
		Do(func(_ string, _ any, err error) {
			assert.EqualError(t, err, "exit status 2")
		})

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewBridge(mockRenderer)))
	_, span := tp.Tracer("test").Start(context.Background(), "unit tests")
	span.SetStatus(codes.Error, "exit status 2")
	span.End()
}

func TestBridge_EndWithEmptyErrorDescription(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRenderer := mocks.NewMockRenderer(ctrl)

	mockRenderer.EXPECT().OnStepStart(gomock.Any(), gomock.Any(), gomock.Any())
	mockRenderer.EXPECT().OnStepComplete(gomock.Any(), gomock.Any(), gomock.Any()).
		Do(func(_ string, _ any, err error) {
			assert.EqualError(t, err, "step failed")
		})

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewBridge(mockRenderer)))
	_, span := tp.Tracer("test").Start(context.Background(), "unit tests")
	span.SetStatus(codes.Error, "")
	span.End()
}

func TestBridge_NilRenderer(_ *testing.T) {
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewBridge(nil)))
	_, span := tp.Tracer("test").Start(context.Background(), "step")
	span.End()
}

func TestBridge_FlushAndShutdown(t *testing.T) {
	bridge := telemetry.NewBridge(nil)
	assert.NoError(t, bridge.ForceFlush(context.Background()))
	assert.NoError(t, bridge.Shutdown(context.Background()))
}
