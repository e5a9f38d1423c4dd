// Package requestctx carries the per-request correlation ID through
// context so handlers and stores can tag their log lines.
package requestctx

import "context"

type contextKey struct{}

var requestIDKey contextKey

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestID returns the correlation ID, or "" outside a request.
func GetRequestID(ctx context.Context) string {
	value, _ := ctx.Value(requestIDKey).(string)
	return value
}
