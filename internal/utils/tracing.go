package utils

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "app-ampm"

// TraceOperation traces an operation with timing and attributes
func TraceOperation(ctx context.Context, operationName string, attributes map[string]interface{}) (context.Context, trace.Span, func()) {
	start := time.Now()

	otelAttrs := make([]attribute.KeyValue, 0, len(attributes))
	for k, v := range attributes {
		otelAttrs = append(otelAttrs, toAttribute(k, v))
	}

	spanCtx, span := otel.Tracer(tracerName).Start(ctx, operationName, trace.WithAttributes(otelAttrs...))

	cleanup := func() {
		AddTimingToSpan(span, start)
		span.End()
	}

	return spanCtx, span, cleanup
}

// TraceStoreOperation traces a record store read or write
func TraceStoreOperation(ctx context.Context, operation, backend, key string) (context.Context, trace.Span, func()) {
	return TraceOperation(ctx, "store."+operation, map[string]interface{}{
		"store.operation": operation,
		"store.backend":   backend,
		"store.key":       key,
	})
}

// TraceLedgerOperation traces one ledger mutation or view
func TraceLedgerOperation(ctx context.Context, operation, actorID string) (context.Context, trace.Span, func()) {
	return TraceOperation(ctx, "ledger."+operation, map[string]interface{}{
		"ledger.operation": operation,
		"ledger.actor_id":  actorID,
	})
}

// TraceAuditOperation traces an audit operation
func TraceAuditOperation(ctx context.Context, action, resource, resourceID string) (context.Context, trace.Span, func()) {
	return TraceOperation(ctx, "audit."+action, map[string]interface{}{
		"audit.action":      action,
		"audit.resource":    resource,
		"audit.resource_id": resourceID,
	})
}

// AddTimingToSpan adds timing information to an existing span
func AddTimingToSpan(span trace.Span, startTime time.Time) {
	duration := time.Since(startTime)
	span.SetAttributes(
		attribute.Int64("duration_ms", duration.Milliseconds()),
		attribute.String("duration", duration.String()),
	)
}

// RecordErrorInSpan records an error in a span with additional context
func RecordErrorInSpan(span trace.Span, err error, context map[string]interface{}) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	for k, v := range context {
		span.SetAttributes(toAttribute(k, v))
	}
}

// AddSpanAttribute adds a single attribute to a span
func AddSpanAttribute(span trace.Span, key string, value interface{}) {
	span.SetAttributes(toAttribute(key, value))
}

func toAttribute(key string, value interface{}) attribute.KeyValue {
	switch val := value.(type) {
	case string:
		return attribute.String(key, val)
	case int:
		return attribute.Int(key, val)
	case int64:
		return attribute.Int64(key, val)
	case bool:
		return attribute.Bool(key, val)
	case float64:
		return attribute.Float64(key, val)
	default:
		return attribute.String(key, "unknown_type")
	}
}
