package flight

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// UnaryServerInterceptor assigns a trace id and echoes it in the response header.
func UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		ctx = EnrichContext(ctx)
		// SetHeader fails only after headers are sent, which cannot happen before the handler runs.
		_ = grpc.SetHeader(ctx, metadata.Pairs(HeaderTraceID, TraceIDFromContext(ctx)))
		return handler(ctx, req)
	}
}

// StreamServerInterceptor is UnaryServerInterceptor for streaming RPCs.
// It must run before the auth interceptor so rejected calls still carry an id.
func StreamServerInterceptor() grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, _ *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		ctx := EnrichContext(ss.Context())
		// Headers are not sent yet, so SetHeader cannot fail here.
		_ = ss.SetHeader(metadata.Pairs(HeaderTraceID, TraceIDFromContext(ctx)))
		return handler(srv, &wrappedServerStream{ServerStream: ss, ctx: ctx})
	}
}

type wrappedServerStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (w *wrappedServerStream) Context() context.Context {
	return w.ctx
}
