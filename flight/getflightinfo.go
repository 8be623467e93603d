package flight

import (
	"context"
	"slices"

	"github.com/apache/arrow-go/v18/arrow/flight"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// GetFlightInfo returns the schema and ticket of the mapping table.
// The descriptor must be PATH ["typemap", "mappings"].
func (s *Server) GetFlightInfo(ctx context.Context, desc *flight.FlightDescriptor) (*flight.FlightInfo, error) {
	ctx = EnrichContext(ctx)
	s.log(ctx).Debug("GetFlightInfo called",
		"type", desc.GetType(),
		"path", desc.GetPath(),
	)

	if desc.GetType() != flight.DescriptorPATH {
		return nil, status.Error(codes.InvalidArgument, "descriptor must be PATH type")
	}
	if !slices.Equal(desc.GetPath(), MappingsPath) {
		return nil, status.Errorf(codes.NotFound, "unknown flight path: %v", desc.GetPath())
	}

	return s.mappingsInfo(desc)
}
