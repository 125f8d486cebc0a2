package api

import (
	"net/http"

	"github.com/signalsfoundry/flapper-rig/internal/logging"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/signalsfoundry/flapper-rig/internal/api"

const runIDHeader = "X-Run-Id"

// RunIDMiddleware ensures a run_id is present on the request context,
// sourcing it from the X-Run-Id header when provided, and attaches a
// per-request logger annotated with run_id and route. The run ID is
// echoed back on the response.
func RunIDMiddleware(base logging.Logger, route string, next http.Handler) http.Handler {
	if base == nil {
		base = logging.Noop()
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if incoming := r.Header.Get(runIDHeader); incoming != "" {
			ctx = logging.ContextWithRunID(ctx, incoming)
		}

		ctx, reqLog := logging.WithRunLogger(ctx, base.With(logging.String("route", route)))
		ctx = logging.ContextWithLogger(ctx, reqLog)

		w.Header().Set(runIDHeader, logging.RunIDFromContext(ctx))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// TracingMiddleware enriches request spans with standard attributes and
// ensures a server span exists when no tracing middleware is configured
// upstream.
func TracingMiddleware(route string, next http.Handler) http.Handler {
	tracer := otel.Tracer(tracerName)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		span := trace.SpanFromContext(ctx)
		created := false
		spanName := r.Method + " " + route
		if !span.SpanContext().IsValid() {
			ctx, span = tracer.Start(ctx, spanName, trace.WithSpanKind(trace.SpanKindServer))
			created = true
		} else {
			span.SetName(spanName)
		}

		attrs := []attribute.KeyValue{
			attribute.String("http.request.method", r.Method),
			attribute.String("http.route", route),
		}
		if runID := logging.RunIDFromContext(ctx); runID != "" {
			attrs = append(attrs, attribute.String("run_id", runID))
		}
		span.SetAttributes(attrs...)

		next.ServeHTTP(w, r.WithContext(ctx))

		if created {
			span.End()
		}
	})
}
