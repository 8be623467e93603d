package flight

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc/metadata"
)

// HeaderTraceID carries the request trace id in both directions.
const HeaderTraceID = "typemap-trace-id"

type contextKey int

const traceIDKey contextKey = iota

// WithTraceID returns a context carrying id.
func WithTraceID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, traceIDKey, id)
}

// TraceIDFromContext returns the trace id, or "" if the request was not enriched.
func TraceIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(traceIDKey).(string)
	return id
}

// EnrichContext attaches a trace id taken from the incoming header, or a
// fresh UUID when the client sent none. Enriched contexts are returned unchanged.
func EnrichContext(ctx context.Context) context.Context {
	if TraceIDFromContext(ctx) != "" {
		return ctx
	}
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(HeaderTraceID); len(values) > 0 && values[0] != "" {
			return WithTraceID(ctx, values[0])
		}
	}
	return WithTraceID(ctx, uuid.NewString())
}
