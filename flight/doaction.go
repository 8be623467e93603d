package flight

import (
	"bytes"
	"context"
	"fmt"

	"github.com/apache/arrow-go/v18/arrow/flight"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/scalar"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/hugr-lab/typemap"
	"github.com/hugr-lab/typemap/internal/msgpack"
	"github.com/hugr-lab/typemap/internal/recovery"
	"github.com/hugr-lab/typemap/sqlname"
)

// Action types served by DoAction.
const (
	ActionMapPhysical = "map_physical"
	ActionMapSQL      = "map_sql"
	ActionMapScalar   = "map_scalar"
	ActionFingerprint = "fingerprint"
	ActionListKinds   = "list_kinds"
)

var actionTypes = []*flight.ActionType{
	{Type: ActionMapPhysical, Description: "Map every field of an IPC schema. Body: msgpack {schema: bytes}."},
	{Type: ActionMapSQL, Description: "Map SQL type names. Body: msgpack {types: [string]}."},
	{Type: ActionMapScalar, Description: "Map row 0 of every column of an IPC stream. Body: msgpack {batch: bytes}."},
	{Type: ActionFingerprint, Description: "Return the registry fingerprint."},
	{Type: ActionListKinds, Description: "Return host types, SQL types and expression kinds."},
}

// ListActions advertises the actions DoAction accepts.
func (s *Server) ListActions(_ *flight.Empty, stream flight.FlightService_ListActionsServer) error {
	for _, at := range actionTypes {
		if err := stream.Send(at); err != nil {
			return err
		}
	}
	return nil
}

// DoAction dispatches mapping requests. Mapping actions send one result per
// item; an item that cannot be mapped carries its error in the result
// instead of failing the call.
func (s *Server) DoAction(action *flight.Action, stream flight.FlightService_DoActionServer) error {
	ctx := EnrichContext(stream.Context())
	logger := s.log(ctx)

	logger.Debug("DoAction called",
		"action", action.GetType(),
		"body_size", len(action.GetBody()),
	)

	var (
		results []any
		err     error
	)
	switch action.GetType() {
	case ActionMapPhysical:
		results, err = s.mapPhysical(action.GetBody())
	case ActionMapSQL:
		results, err = s.mapSQL(action.GetBody())
	case ActionMapScalar:
		results, err = recovery.RecoverToValue(logger, ActionMapScalar, func() ([]any, error) {
			return s.mapScalar(action.GetBody())
		})
	case ActionFingerprint:
		results = []any{msgpack.FingerprintResult{
			Fingerprint: typemap.Fingerprint(),
			ArrowTypes:  len(typemap.ArrowTypes()),
			SQLTypes:    len(typemap.SQLTypes()),
		}}
	case ActionListKinds:
		results = []any{listKinds()}
	default:
		return status.Errorf(codes.Unimplemented, "unknown action type: %s", action.GetType())
	}
	if err != nil {
		logger.Warn("DoAction failed", "action", action.GetType(), "error", err)
		return toStatus(err)
	}

	return s.sendResults(ctx, stream, results)
}

func (s *Server) sendResults(ctx context.Context, stream flight.FlightService_DoActionServer, results []any) error {
	for _, r := range results {
		if err := ctx.Err(); err != nil {
			return status.FromContextError(err).Err()
		}
		body, err := msgpack.Encode(r)
		if err != nil {
			return status.Errorf(codes.Internal, "encode result: %v", err)
		}
		if err := stream.Send(&flight.Result{Body: body}); err != nil {
			return err
		}
	}
	return nil
}

func (s *Server) mapPhysical(body []byte) ([]any, error) {
	var req msgpack.MapPhysicalRequest
	if err := msgpack.Decode(body, &req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}
	schema, err := flight.DeserializeSchema(req.Schema, s.allocator)
	if err != nil {
		return nil, fmt.Errorf("%w: schema: %w", ErrInvalidBody, err)
	}

	results := make([]any, 0, schema.NumFields())
	for _, field := range schema.Fields() {
		m, err := typemap.FromPhysical(field.Type)
		results = append(results, mappingResult(field.Name, m, err))
	}
	return results, nil
}

func (s *Server) mapSQL(body []byte) ([]any, error) {
	var req msgpack.MapSQLRequest
	if err := msgpack.Decode(body, &req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}
	if len(req.Types) == 0 {
		return nil, fmt.Errorf("%w: no types", ErrInvalidBody)
	}

	results := make([]any, 0, len(req.Types))
	for _, name := range req.Types {
		m, err := sqlname.Map(name)
		results = append(results, mappingResult(name, m, err))
	}
	return results, nil
}

// mapScalar classifies the value in row 0 of every column of the first
// record in the stream.
func (s *Server) mapScalar(body []byte) ([]any, error) {
	var req msgpack.MapScalarRequest
	if err := msgpack.Decode(body, &req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}

	reader, err := ipc.NewReader(bytes.NewReader(req.Batch), ipc.WithAllocator(s.allocator))
	if err != nil {
		return nil, fmt.Errorf("%w: batch: %w", ErrInvalidBody, err)
	}
	defer reader.Release()

	if !reader.Next() {
		if err := reader.Err(); err != nil {
			return nil, fmt.Errorf("%w: batch: %w", ErrInvalidBody, err)
		}
		return nil, fmt.Errorf("%w: batch has no records", ErrInvalidBody)
	}
	record := reader.Record()
	if record.NumRows() == 0 {
		return nil, fmt.Errorf("%w: batch has no rows", ErrInvalidBody)
	}

	results := make([]any, 0, record.NumCols())
	for i, col := range record.Columns() {
		name := record.ColumnName(i)
		value, err := scalar.GetScalar(col, 0)
		if err != nil {
			results = append(results, mappingResult(name, typemap.Mapping{}, err))
			continue
		}
		m, err := typemap.FromScalar(value)
		results = append(results, mappingResult(name, m, err))
	}
	return results, nil
}

func mappingResult(name string, m typemap.Mapping, err error) msgpack.MappingResult {
	if err != nil {
		return msgpack.MappingResult{Name: name, Error: err.Error()}
	}
	return msgpack.MappingResult{
		Name:     name,
		Physical: m.Physical.String(),
		Host:     m.Host.String(),
		SQL:      m.SQL.String(),
	}
}

func listKinds() msgpack.KindsResult {
	var kinds msgpack.KindsResult
	for _, t := range typemap.HostTypes() {
		kinds.HostTypes = append(kinds.HostTypes, t.String())
	}
	for _, t := range typemap.SQLTypes() {
		kinds.SQLTypes = append(kinds.SQLTypes, t.String())
	}
	for _, k := range typemap.RexTypes() {
		kinds.ExpressionKinds = append(kinds.ExpressionKinds, k.String())
	}
	return kinds
}
