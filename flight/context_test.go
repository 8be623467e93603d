package flight

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/hugr-lab/typemap"
	"github.com/hugr-lab/typemap/internal/msgpack"
)

func TestEnrichContext(t *testing.T) {
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(HeaderTraceID, "abc"))
	assert.Equal(t, "abc", TraceIDFromContext(EnrichContext(ctx)))

	fresh := EnrichContext(context.Background())
	id := TraceIDFromContext(fresh)
	require.NotEmpty(t, id)
	assert.Equal(t, id, TraceIDFromContext(EnrichContext(fresh)), "enriching twice must keep the id")
}

func TestToStatus(t *testing.T) {
	assert.NoError(t, toStatus(nil))
	assert.Equal(t, codes.InvalidArgument, status.Code(toStatus(msgpack.ErrEmpty)))
	assert.Equal(t, codes.InvalidArgument, status.Code(toStatus(typemap.ErrUnknownType)))

	_, err := typemap.FromSQL(typemap.SQLGeometry)
	assert.Equal(t, codes.Unimplemented, status.Code(toStatus(err)))

	already := status.Error(codes.NotFound, "gone")
	assert.Equal(t, already, toStatus(already))

	assert.Equal(t, codes.Internal, status.Code(toStatus(assert.AnError)))
}
