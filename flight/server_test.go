package flight_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	flightpb "github.com/apache/arrow-go/v18/arrow/flight"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/hugr-lab/typemap"
	"github.com/hugr-lab/typemap/auth"
	"github.com/hugr-lab/typemap/flight"
	"github.com/hugr-lab/typemap/internal/msgpack"
	"github.com/hugr-lab/typemap/internal/serialize"
)

// newTestClient starts a Flight server on a random port and returns a client for it.
func newTestClient(t *testing.T, authenticator auth.Authenticator) flightpb.Client {
	t.Helper()

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	debugLevel := slog.LevelDebug
	config := flight.ServerConfig{
		Auth:     authenticator,
		LogLevel: &debugLevel,
	}
	grpcServer := grpc.NewServer(flight.ServerOptions(config)...)
	svc, err := flight.NewServer(grpcServer, config)
	require.NoError(t, err)

	go func() {
		_ = grpcServer.Serve(lis)
	}()

	client, err := flightpb.NewClientWithMiddleware(lis.Addr().String(), nil, nil,
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)

	t.Cleanup(func() {
		client.Close()
		grpcServer.GracefulStop()
		svc.Close()
	})
	return client
}

func doAction(ctx context.Context, t *testing.T, client flightpb.Client, actionType string, body any) ([][]byte, error) {
	t.Helper()

	var payload []byte
	if body != nil {
		var err error
		payload, err = msgpack.Encode(body)
		require.NoError(t, err)
	}

	stream, err := client.DoAction(ctx, &flightpb.Action{Type: actionType, Body: payload})
	if err != nil {
		return nil, err
	}
	var bodies [][]byte
	for {
		res, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return bodies, nil
		}
		if err != nil {
			return nil, err
		}
		bodies = append(bodies, res.GetBody())
	}
}

func mappingResults(t *testing.T, bodies [][]byte) []msgpack.MappingResult {
	t.Helper()
	out := make([]msgpack.MappingResult, len(bodies))
	for i, b := range bodies {
		require.NoError(t, msgpack.Decode(b, &out[i]))
	}
	return out
}

func TestListActions(t *testing.T) {
	client := newTestClient(t, nil)

	stream, err := client.ListActions(context.Background(), &flightpb.Empty{})
	require.NoError(t, err)

	var names []string
	for {
		at, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		names = append(names, at.GetType())
	}
	assert.ElementsMatch(t, []string{
		flight.ActionMapPhysical, flight.ActionMapSQL, flight.ActionMapScalar,
		flight.ActionFingerprint, flight.ActionListKinds,
	}, names)
}

func TestMapPhysical(t *testing.T) {
	client := newTestClient(t, nil)

	schema := arrow.NewSchema([]arrow.Field{
		{Name: "id", Type: arrow.PrimitiveTypes.Int32},
		{Name: "name", Type: arrow.BinaryTypes.String},
		{Name: "created", Type: &arrow.TimestampType{Unit: arrow.Microsecond, TimeZone: "UTC"}},
		{Name: "tags", Type: arrow.ListOf(arrow.BinaryTypes.String)},
	}, nil)

	bodies, err := doAction(context.Background(), t, client, flight.ActionMapPhysical,
		msgpack.MapPhysicalRequest{Schema: flightpb.SerializeSchema(schema, memory.DefaultAllocator)})
	require.NoError(t, err)

	results := mappingResults(t, bodies)
	require.Len(t, results, 4)

	assert.Equal(t, msgpack.MappingResult{Name: "id", Physical: "int32", Host: "Int", SQL: "INTEGER"}, results[0])
	assert.Equal(t, "VARCHAR", results[1].SQL)
	assert.Equal(t, "DATE", results[2].SQL)
	assert.Equal(t, "Datetime", results[2].Host)
	assert.Equal(t, "tags", results[3].Name)
	assert.Contains(t, results[3].Error, "unsupported physical type")
	assert.Empty(t, results[3].SQL)
}

func TestMapSQL(t *testing.T) {
	client := newTestClient(t, nil)

	bodies, err := doAction(context.Background(), t, client, flight.ActionMapSQL,
		msgpack.MapSQLRequest{Types: []string{"BIGINT", "int4", "DECIMAL(10,2)", "timestamptz", "bogus"}})
	require.NoError(t, err)

	results := mappingResults(t, bodies)
	require.Len(t, results, 5)

	assert.Equal(t, msgpack.MappingResult{Name: "BIGINT", Physical: "int64", Host: "Int", SQL: "BIGINT"}, results[0])
	assert.Equal(t, "int8", results[1].Physical)
	assert.Equal(t, "INTEGER", results[1].SQL)
	assert.Equal(t, "Float", results[2].Host)
	assert.Contains(t, results[3].Error, "unsupported sql type")
	assert.Contains(t, results[4].Error, "unknown type")
}

func TestMapSQLEmpty(t *testing.T) {
	client := newTestClient(t, nil)

	_, err := doAction(context.Background(), t, client, flight.ActionMapSQL, msgpack.MapSQLRequest{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = doAction(context.Background(), t, client, flight.ActionMapSQL, nil)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func writeBatch(t *testing.T, record arrow.Record) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := ipc.NewWriter(&buf, ipc.WithSchema(record.Schema()))
	require.NoError(t, w.Write(record))
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestMapScalar(t *testing.T) {
	client := newTestClient(t, nil)

	schema := arrow.NewSchema([]arrow.Field{
		{Name: "answer", Type: arrow.PrimitiveTypes.Int32},
		{Name: "label", Type: arrow.BinaryTypes.String},
		{Name: "span", Type: arrow.FixedWidthTypes.MonthInterval},
	}, nil)
	b := array.NewRecordBuilder(memory.DefaultAllocator, schema)
	defer b.Release()
	b.Field(0).(*array.Int32Builder).Append(42)
	b.Field(1).(*array.StringBuilder).Append("x")
	b.Field(2).(*array.MonthIntervalBuilder).Append(arrow.MonthInterval(5))
	record := b.NewRecord()
	defer record.Release()

	bodies, err := doAction(context.Background(), t, client, flight.ActionMapScalar,
		msgpack.MapScalarRequest{Batch: writeBatch(t, record)})
	require.NoError(t, err)

	results := mappingResults(t, bodies)
	require.Len(t, results, 3)
	assert.Equal(t, msgpack.MappingResult{Name: "answer", Physical: "int32", Host: "Int", SQL: "INTEGER"}, results[0])
	assert.Equal(t, "VARCHAR", results[1].SQL)
	assert.Equal(t, "INTERVAL_YEAR_MONTH", results[2].SQL)
}

func TestMapScalarInvalidBatch(t *testing.T) {
	client := newTestClient(t, nil)

	_, err := doAction(context.Background(), t, client, flight.ActionMapScalar,
		msgpack.MapScalarRequest{Batch: []byte("garbage")})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	schema := arrow.NewSchema([]arrow.Field{{Name: "a", Type: arrow.PrimitiveTypes.Int64}}, nil)
	b := array.NewRecordBuilder(memory.DefaultAllocator, schema)
	defer b.Release()
	empty := b.NewRecord()
	defer empty.Release()

	_, err = doAction(context.Background(), t, client, flight.ActionMapScalar,
		msgpack.MapScalarRequest{Batch: writeBatch(t, empty)})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestFingerprintAndKinds(t *testing.T) {
	client := newTestClient(t, nil)

	bodies, err := doAction(context.Background(), t, client, flight.ActionFingerprint, nil)
	require.NoError(t, err)
	require.Len(t, bodies, 1)
	var fp msgpack.FingerprintResult
	require.NoError(t, msgpack.Decode(bodies[0], &fp))
	assert.Equal(t, typemap.Fingerprint(), fp.Fingerprint)
	assert.Equal(t, len(typemap.SQLTypes()), fp.SQLTypes)

	bodies, err = doAction(context.Background(), t, client, flight.ActionListKinds, nil)
	require.NoError(t, err)
	require.Len(t, bodies, 1)
	var kinds msgpack.KindsResult
	require.NoError(t, msgpack.Decode(bodies[0], &kinds))
	assert.Len(t, kinds.HostTypes, 10)
	assert.Len(t, kinds.SQLTypes, 48)
	assert.Contains(t, kinds.ExpressionKinds, "ScalarSubquery")
}

func TestUnknownAction(t *testing.T) {
	client := newTestClient(t, nil)

	_, err := doAction(context.Background(), t, client, "drop_everything", nil)
	assert.Equal(t, codes.Unimplemented, status.Code(err))
}

func TestMappingsFlight(t *testing.T) {
	client := newTestClient(t, nil)
	ctx := context.Background()

	listing, err := client.ListFlights(ctx, &flightpb.Criteria{})
	require.NoError(t, err)
	info, err := listing.Recv()
	require.NoError(t, err)
	require.Equal(t, flight.MappingsPath, info.GetFlightDescriptor().GetPath())

	schema, err := flightpb.DeserializeSchema(info.GetSchema(), memory.DefaultAllocator)
	require.NoError(t, err)
	assert.True(t, schema.Equal(serialize.MappingSchema))

	info, err = client.GetFlightInfo(ctx, &flightpb.FlightDescriptor{
		Type: flightpb.DescriptorPATH,
		Path: flight.MappingsPath,
	})
	require.NoError(t, err)
	require.Len(t, info.GetEndpoint(), 1)

	stream, err := client.DoGet(ctx, info.GetEndpoint()[0].GetTicket())
	require.NoError(t, err)
	reader, err := flightpb.NewRecordReader(stream)
	require.NoError(t, err)
	defer reader.Release()

	var rows int64
	for reader.Next() {
		rows += reader.Record().NumRows()
	}
	require.NoError(t, reader.Err())
	assert.EqualValues(t, len(typemap.ArrowTypes())+len(typemap.SQLTypes()), rows)
}

func TestGetFlightInfoErrors(t *testing.T) {
	client := newTestClient(t, nil)
	ctx := context.Background()

	_, err := client.GetFlightInfo(ctx, &flightpb.FlightDescriptor{
		Type: flightpb.DescriptorPATH,
		Path: []string{"main", "users"},
	})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = client.GetFlightInfo(ctx, &flightpb.FlightDescriptor{
		Type: flightpb.DescriptorCMD,
		Cmd:  []byte("mappings"),
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	stream, err := client.DoGet(ctx, &flightpb.Ticket{Ticket: []byte("forged")})
	require.NoError(t, err)
	_, err = stream.Recv()
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestAuthentication(t *testing.T) {
	client := newTestClient(t, auth.StaticToken("s3cret", "tester"))

	_, err := doAction(context.Background(), t, client, flight.ActionFingerprint, nil)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	bad := metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer wrong")
	_, err = doAction(bad, t, client, flight.ActionFingerprint, nil)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	good := metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer s3cret")
	bodies, err := doAction(good, t, client, flight.ActionFingerprint, nil)
	require.NoError(t, err)
	assert.Len(t, bodies, 1)
}

func TestTraceIDHeader(t *testing.T) {
	client := newTestClient(t, nil)

	ctx := metadata.AppendToOutgoingContext(context.Background(), flight.HeaderTraceID, "trace-123")
	stream, err := client.ListActions(ctx, &flightpb.Empty{})
	require.NoError(t, err)

	header, err := stream.Header()
	require.NoError(t, err)
	assert.Equal(t, []string{"trace-123"}, header.Get(flight.HeaderTraceID))

	stream, err = client.ListActions(context.Background(), &flightpb.Empty{})
	require.NoError(t, err)
	header, err = stream.Header()
	require.NoError(t, err)
	require.Len(t, header.Get(flight.HeaderTraceID), 1)
	assert.Len(t, header.Get(flight.HeaderTraceID)[0], 36)
}

func TestNewServerInvalidConfig(t *testing.T) {
	_, err := flight.NewServer(grpc.NewServer(), flight.ServerConfig{MaxMessageSize: -1})
	require.ErrorIs(t, err, flight.ErrInvalidConfig)
}
