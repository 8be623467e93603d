package flight

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/flight"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/hugr-lab/typemap/internal/recovery"
	"github.com/hugr-lab/typemap/internal/serialize"
)

// DoGet streams the mapping table carried by a ticket from ListFlights or
// GetFlightInfo.
func (s *Server) DoGet(ticket *flight.Ticket, stream flight.FlightService_DoGetServer) error {
	ctx := EnrichContext(stream.Context())
	logger := s.log(ctx)

	var records []arrow.Record
	err := recovery.RecoverToError(logger, "DoGet", func() error {
		var err error
		records, err = s.readTicket(ticket.GetTicket())
		return err
	})
	if err != nil {
		logger.Warn("Invalid ticket", "error", err)
		if _, ok := status.FromError(err); ok {
			return err
		}
		return status.Errorf(codes.InvalidArgument, "invalid ticket: %v", err)
	}
	defer func() {
		for _, rec := range records {
			rec.Release()
		}
	}()

	writer := flight.NewRecordWriter(stream, ipc.WithSchema(serialize.MappingSchema), ipc.WithAllocator(s.allocator))
	defer writer.Close()

	var rows int64
	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return status.FromContextError(err).Err()
		}
		if err := writer.Write(rec); err != nil {
			logger.Error("Failed to write record", "error", err)
			return status.Errorf(codes.Internal, "failed to write record: %v", err)
		}
		rows += rec.NumRows()
	}

	logger.Debug("DoGet completed", "rows", rows)
	return nil
}
