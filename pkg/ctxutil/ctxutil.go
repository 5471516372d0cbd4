// Package ctxutil carries request-scoped values through context.Context.
package ctxutil

import "context"

type ctxKey string

const (
	requestIDKey ctxKey = "request_id"
	routeKey     ctxKey = "route"
)

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithRoute stores a slot the router fills with the matched pattern.
func WithRoute(ctx context.Context) (context.Context, *string) {
	slot := new(string)
	return context.WithValue(ctx, routeKey, slot), slot
}

// SetRoute records the matched route pattern if a slot is present.
func SetRoute(ctx context.Context, pattern string) {
	if slot, ok := ctx.Value(routeKey).(*string); ok {
		*slot = pattern
	}
}
