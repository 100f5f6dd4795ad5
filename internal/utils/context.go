package utils

import "context"

type contextKey string

const requestIDKey contextKey = "request_id"

// ContextWithRequestID stores the request id for code below the HTTP layer
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFromContext returns the request id, or "" if none was stored
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
