// Package flight serves the type-mapping registry over Arrow Flight.
package flight

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/apache/arrow-go/v18/arrow/flight"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/hugr-lab/typemap/auth"
	"github.com/hugr-lab/typemap/internal/serialize"
)

// Server implements the Flight service handlers.
// Embeds BaseFlightServer so RPCs it does not serve return Unimplemented.
type Server struct {
	flight.BaseFlightServer

	allocator    memory.Allocator
	logger       *slog.Logger
	compressor   *serialize.Compressor
	decompressor *serialize.Decompressor
}

func newServer(allocator memory.Allocator, logger *slog.Logger) (*Server, error) {
	compressor, err := serialize.NewCompressor()
	if err != nil {
		return nil, fmt.Errorf("create compressor: %w", err)
	}
	decompressor, err := serialize.NewDecompressor()
	if err != nil {
		compressor.Close()
		return nil, fmt.Errorf("create decompressor: %w", err)
	}

	return &Server{
		allocator:    allocator,
		logger:       logger,
		compressor:   compressor,
		decompressor: decompressor,
	}, nil
}

// Close releases the zstd codecs. Call it after the gRPC server stopped.
func (s *Server) Close() error {
	s.decompressor.Close()
	return s.compressor.Close()
}

// log returns the server logger annotated with the request trace id and caller.
func (s *Server) log(ctx context.Context) *slog.Logger {
	logger := s.logger.With("trace_id", TraceIDFromContext(ctx))
	if identity := auth.IdentityFromContext(ctx); identity != "" {
		logger = logger.With("identity", identity)
	}
	return logger
}
