package tracing

import (
	"context"
	"time"

	"github.com/agentx-labs/jdkx/internal/operation"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Span attribute keys for operation spans.
const (
	AttrOperationName     = "operation.name"
	AttrOperationProgress = "operation.progress"
	AttrDurationMs        = "operation.duration_ms"
	AttrErrorMessage      = "error.message"
)

// Event names recorded on operation spans.
const (
	EventOperationStarted  = "operation.started"
	EventOperationFinished = "operation.finished"
)

// Executor runs operations inside a span named after the operation's display
// name. It implements operation.Executor.
type Executor struct {
	tracer trace.Tracer
}

// NewExecutor returns an Executor that records spans with tracer.
func NewExecutor(tracer trace.Tracer) *Executor {
	return &Executor{tracer: tracer}
}

var _ operation.Executor = (*Executor)(nil)

// Run starts a span, runs fn with the span's context, and ends the span.
// The error from fn is recorded and returned unchanged.
func (e *Executor) Run(ctx context.Context, desc operation.Descriptor, fn func(ctx context.Context) error) error {
	ctx, span := e.tracer.Start(ctx, desc.DisplayName,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String(AttrOperationName, desc.DisplayName),
			attribute.String(AttrOperationProgress, desc.ProgressDisplayName),
		),
	)
	defer span.End()

	start := time.Now()
	span.AddEvent(EventOperationStarted)
	err := fn(ctx)
	span.SetAttributes(attribute.Float64(AttrDurationMs, float64(time.Since(start).Microseconds())/1000.0))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.String(AttrErrorMessage, err.Error()))
		return err
	}
	span.AddEvent(EventOperationFinished)
	span.SetStatus(codes.Ok, "")
	return nil
}
