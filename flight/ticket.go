package flight

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"

	"github.com/hugr-lab/typemap/internal/serialize"
)

// MappingsPath is the descriptor path of the mapping table.
var MappingsPath = []string{"typemap", "mappings"}

// tableTicket returns the mapping table as zstd-compressed IPC stream bytes.
// The ticket is self-contained, so DoGet needs no server-side state.
func (s *Server) tableTicket() (ticket []byte, rawSize int, err error) {
	data, err := serialize.SerializeTable(s.allocator)
	if err != nil {
		return nil, 0, err
	}
	return s.compressor.Compress(data), len(data), nil
}

// readTicket decodes a ticket produced by tableTicket.
// Caller must Release the returned records.
func (s *Server) readTicket(ticket []byte) ([]arrow.Record, error) {
	if len(ticket) == 0 {
		return nil, fmt.Errorf("empty ticket")
	}
	data, err := s.decompressor.Decompress(ticket)
	if err != nil {
		return nil, err
	}
	return serialize.ReadTable(data, s.allocator)
}
