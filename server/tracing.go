package server

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const defaultTracerName = "rroute"

// tracer starts one server span per dispatched request using the global provider.
type tracer struct {
	tracer trace.Tracer
}

func newTracer(name string) *tracer {
	if name == "" {
		name = defaultTracerName
	}
	return &tracer{tracer: otel.Tracer(name)}
}

func (t *tracer) start(ctx context.Context, method, path, requestID string) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, "rroute.dispatch",
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("http.method", method),
			attribute.String("http.target", path),
			attribute.String("rroute.request_id", requestID),
		),
	)
}

// finish names the span after the matched route and records the outcome.
func (t *tracer) finish(span trace.Span, method, route string, status int) {
	if route != "" {
		span.SetName(method + " " + route)
		span.SetAttributes(attribute.String("http.route", route))
	}
	span.SetAttributes(attribute.Int("http.status_code", status))

	if status >= http.StatusInternalServerError {
		span.SetStatus(codes.Error, http.StatusText(status))
	}
	span.End()
}
