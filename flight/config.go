package flight

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/apache/arrow-go/v18/arrow/flight"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"google.golang.org/grpc"

	"github.com/hugr-lab/typemap"
	"github.com/hugr-lab/typemap/auth"
)

// ServerConfig contains configuration for the typemap Flight service.
type ServerConfig struct {
	// Auth provides authentication logic.
	// OPTIONAL: If nil, no authentication (all requests allowed).
	Auth auth.Authenticator

	// Allocator for Arrow memory management.
	// OPTIONAL: Uses memory.DefaultAllocator if nil.
	Allocator memory.Allocator

	// Logger for internal logging.
	// OPTIONAL: Uses slog.Default() if nil and LogLevel is nil.
	Logger *slog.Logger

	// LogLevel creates a text logger on stderr with that level.
	// OPTIONAL: Ignored when Logger is set.
	LogLevel *slog.Level

	// MaxMessageSize sets maximum gRPC message size in bytes.
	// OPTIONAL: If 0, uses gRPC default (4MB). MUST NOT be negative.
	MaxMessageSize int
}

// ErrInvalidConfig indicates ServerConfig validation failed.
var ErrInvalidConfig = errors.New("invalid server config")

// NewServer registers the typemap Flight service on the provided gRPC server.
//
// Does NOT start the gRPC server; the caller controls the lifecycle via
// grpcServer.Serve and GracefulStop, then calls Close on the result.
//
//	config := flight.ServerConfig{Auth: auth.StaticToken(token, "client")}
//	grpcServer := grpc.NewServer(flight.ServerOptions(config)...)
//	svc, err := flight.NewServer(grpcServer, config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer svc.Close()
//	lis, _ := net.Listen("tcp", ":50051")
//	grpcServer.Serve(lis)
func NewServer(grpcServer *grpc.Server, config ServerConfig) (*Server, error) {
	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	allocator := config.Allocator
	if allocator == nil {
		allocator = memory.DefaultAllocator
	}
	logger := serverLogger(config)

	s, err := newServer(allocator, logger)
	if err != nil {
		return nil, err
	}
	flight.RegisterFlightServiceServer(grpcServer, s)

	logger.Info("typemap Flight service registered",
		"has_auth", config.Auth != nil,
		"max_message_size", config.MaxMessageSize,
		"fingerprint", fmt.Sprintf("%016x", typemap.Fingerprint()),
	)
	return s, nil
}

func serverLogger(config ServerConfig) *slog.Logger {
	if config.Logger != nil {
		return config.Logger
	}
	if config.LogLevel != nil {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: *config.LogLevel}))
	}
	return slog.Default()
}

func validateConfig(config ServerConfig) error {
	if config.MaxMessageSize < 0 {
		return errors.New("max message size must not be negative")
	}
	return nil
}

// ServerOptions returns gRPC server options for config: trace id and
// authentication interceptors plus message size limits.
func ServerOptions(config ServerConfig) []grpc.ServerOption {
	unary := []grpc.UnaryServerInterceptor{UnaryServerInterceptor()}
	stream := []grpc.StreamServerInterceptor{StreamServerInterceptor()}
	if config.Auth != nil {
		unary = append(unary, auth.UnaryServerInterceptor(config.Auth))
		stream = append(stream, auth.StreamServerInterceptor(config.Auth))
	}

	opts := []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(unary...),
		grpc.ChainStreamInterceptor(stream...),
	}
	if config.MaxMessageSize > 0 {
		opts = append(opts,
			grpc.MaxRecvMsgSize(config.MaxMessageSize),
			grpc.MaxSendMsgSize(config.MaxMessageSize),
		)
	}
	return opts
}
