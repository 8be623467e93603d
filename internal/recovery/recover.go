// Package recovery turns panics raised while decoding or classifying
// caller-supplied Arrow payloads into gRPC errors.
package recovery

import (
	"log/slog"
	"runtime/debug"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// RecoverToValue runs fn and converts a panic into a codes.Internal status.
// The panic is logged with its stack trace.
//
//	mappings, err := recovery.RecoverToValue(logger, "map_scalar", func() ([]Result, error) {
//	    return mapBatch(reader)
//	})
func RecoverToValue[T any](logger *slog.Logger, operation string, fn func() (T, error)) (result T, err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Panic recovered",
				"operation", operation,
				"panic", r,
				"stack", string(debug.Stack()),
			)

			var zero T
			result = zero
			err = status.Errorf(codes.Internal, "%s panicked: %v", operation, r)
		}
	}()

	return fn()
}

// RecoverToError is RecoverToValue for functions without a result.
func RecoverToError(logger *slog.Logger, operation string, fn func() error) error {
	_, err := RecoverToValue(logger, operation, func() (struct{}, error) {
		return struct{}{}, fn()
	})
	return err
}
