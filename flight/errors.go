package flight

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/hugr-lab/typemap"
	"github.com/hugr-lab/typemap/internal/msgpack"
)

// ErrInvalidBody is wrapped by errors decoding an action body.
var ErrInvalidBody = errors.New("invalid action body")

// toStatus converts a request-level error into a gRPC status.
// Errors that already carry a status are returned unchanged.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	switch {
	case errors.Is(err, ErrInvalidBody), errors.Is(err, msgpack.ErrEmpty):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, typemap.ErrUnsupported):
		return status.Error(codes.Unimplemented, err.Error())
	case errors.Is(err, typemap.ErrUnknownType), errors.Is(err, typemap.ErrNilType), errors.Is(err, typemap.ErrNilScalar):
		return status.Error(codes.InvalidArgument, err.Error())
	}
	return status.Error(codes.Internal, err.Error())
}
