package reconcile

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Default tracer name for reconciliation spans.
const defaultTracerName = "lumen"

// WithTracing enables an OpenTelemetry span around each full-map
// reconciliation pass (mount and update). Per-property application is
// not traced individually.
func WithTracing(tracerName string) Option {
	return func(r *Reconciler) {
		if tracerName == "" {
			tracerName = defaultTracerName
		}
		r.tracer = otel.Tracer(tracerName)
	}
}

// startSpan starts a pass-level span when tracing is enabled. The
// returned span is nil otherwise.
func (r *Reconciler) startSpan(ctx context.Context, op, tag string) (context.Context, trace.Span) {
	if r.tracer == nil {
		return ctx, nil
	}
	return r.tracer.Start(ctx, op,
		trace.WithAttributes(attribute.String("lumen.element", tag)))
}
