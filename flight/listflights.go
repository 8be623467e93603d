package flight

import (
	"github.com/apache/arrow-go/v18/arrow/flight"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/hugr-lab/typemap/internal/serialize"
)

// ListFlights returns one FlightInfo describing the mapping table.
// Criteria are ignored.
func (s *Server) ListFlights(_ *flight.Criteria, stream flight.FlightService_ListFlightsServer) error {
	ctx := EnrichContext(stream.Context())
	logger := s.log(ctx)

	info, err := s.mappingsInfo(&flight.FlightDescriptor{
		Type: flight.DescriptorPATH,
		Path: MappingsPath,
	})
	if err != nil {
		logger.Error("Failed to build mapping table", "error", err)
		return err
	}

	if err := stream.Send(info); err != nil {
		logger.Error("Failed to send FlightInfo", "error", err)
		return status.Errorf(codes.Internal, "failed to send flight info: %v", err)
	}
	return nil
}

func (s *Server) mappingsInfo(desc *flight.FlightDescriptor) (*flight.FlightInfo, error) {
	ticket, rawSize, err := s.tableTicket()
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to serialize mapping table: %v", err)
	}

	s.logger.Debug("Mapping table serialized",
		"uncompressed_bytes", rawSize,
		"compressed_bytes", len(ticket),
	)

	return &flight.FlightInfo{
		Schema:           flight.SerializeSchema(serialize.MappingSchema, s.allocator),
		FlightDescriptor: desc,
		Endpoint: []*flight.FlightEndpoint{
			{Ticket: &flight.Ticket{Ticket: ticket}},
		},
		TotalRecords: -1,
		TotalBytes:   int64(len(ticket)),
	}, nil
}
