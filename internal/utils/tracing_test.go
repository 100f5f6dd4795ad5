package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func withRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(provider)
	t.Cleanup(func() { otel.SetTracerProvider(previous) })
	return recorder
}

func attrMap(attrs []attribute.KeyValue) map[string]attribute.Value {
	out := make(map[string]attribute.Value, len(attrs))
	for _, kv := range attrs {
		out[string(kv.Key)] = kv.Value
	}
	return out
}

func TestTraceOperation(t *testing.T) {
	recorder := withRecorder(t)

	ctx, span, cleanup := TraceOperation(context.Background(), "test_operation", map[string]interface{}{
		"string_attr":  "value",
		"int_attr":     42,
		"int64_attr":   int64(123),
		"bool_attr":    true,
		"float64_attr": 3.14,
		"unknown_attr": struct{}{},
	})
	require.NotNil(t, ctx)
	require.NotNil(t, span)
	cleanup()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "test_operation", ended[0].Name())

	attrs := attrMap(ended[0].Attributes())
	assert.Equal(t, "value", attrs["string_attr"].AsString())
	assert.Equal(t, int64(42), attrs["int_attr"].AsInt64())
	assert.Equal(t, int64(123), attrs["int64_attr"].AsInt64())
	assert.True(t, attrs["bool_attr"].AsBool())
	assert.Equal(t, 3.14, attrs["float64_attr"].AsFloat64())
	assert.Equal(t, "unknown_type", attrs["unknown_attr"].AsString())
	assert.Contains(t, attrs, "duration_ms")
}

func TestTraceStoreOperation(t *testing.T) {
	recorder := withRecorder(t)

	_, _, cleanup := TraceStoreOperation(context.Background(), "load", "mongo", "ampm_members")
	cleanup()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "store.load", ended[0].Name())
	attrs := attrMap(ended[0].Attributes())
	assert.Equal(t, "mongo", attrs["store.backend"].AsString())
	assert.Equal(t, "ampm_members", attrs["store.key"].AsString())
}

func TestTraceLedgerOperation(t *testing.T) {
	recorder := withRecorder(t)

	_, _, cleanup := TraceLedgerOperation(context.Background(), "upsert_payment", "u1")
	cleanup()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "ledger.upsert_payment", ended[0].Name())
	assert.Equal(t, "u1", attrMap(ended[0].Attributes())["ledger.actor_id"].AsString())
}

func TestTraceAuditOperation(t *testing.T) {
	recorder := withRecorder(t)

	_, _, cleanup := TraceAuditOperation(context.Background(), "delete", "member", "m1")
	cleanup()

	require.Len(t, recorder.Ended(), 1)
	assert.Equal(t, "audit.delete", recorder.Ended()[0].Name())
}

func TestRecordErrorInSpan(t *testing.T) {
	recorder := withRecorder(t)

	_, span, cleanup := TraceOperation(context.Background(), "failing", nil)
	RecordErrorInSpan(span, errors.New("boom"), map[string]interface{}{"store.key": "ampm_users"})
	cleanup()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Len(t, ended[0].Events(), 1)
	assert.Equal(t, "ampm_users", attrMap(ended[0].Attributes())["store.key"].AsString())
}

func TestAddSpanAttributeAndTiming(t *testing.T) {
	recorder := withRecorder(t)

	_, span, cleanup := TraceOperation(context.Background(), "attrs", nil)
	AddSpanAttribute(span, "members", 3)
	AddTimingToSpan(span, time.Now().Add(-time.Second))
	cleanup()

	attrs := attrMap(recorder.Ended()[0].Attributes())
	assert.Equal(t, int64(3), attrs["members"].AsInt64())
	assert.Contains(t, attrs, "duration")
}
