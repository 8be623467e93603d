// Package serialize renders the mapping registry as an Arrow table.
// Used by ListFlights and DoGet to publish the full decision table.
package serialize

import (
	"bytes"
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/hugr-lab/typemap"
)

// MappingSchema is the schema of the mapping table. physical, host and sql
// are null for types that are not supported.
var MappingSchema = arrow.NewSchema([]arrow.Field{
	{Name: "universe", Type: arrow.BinaryTypes.String, Nullable: false},
	{Name: "type_name", Type: arrow.BinaryTypes.String, Nullable: false},
	{Name: "support", Type: arrow.BinaryTypes.String, Nullable: false},
	{Name: "physical", Type: arrow.BinaryTypes.String, Nullable: true},
	{Name: "host", Type: arrow.BinaryTypes.String, Nullable: true},
	{Name: "sql", Type: arrow.BinaryTypes.String, Nullable: true},
}, nil)

// MappingTable builds one row per Arrow type id and one per SQL type.
// Caller must Release the record.
func MappingTable(allocator memory.Allocator) arrow.Record {
	builder := array.NewRecordBuilder(allocator, MappingSchema)
	defer builder.Release()

	universe := builder.Field(0).(*array.StringBuilder)
	typeName := builder.Field(1).(*array.StringBuilder)
	support := builder.Field(2).(*array.StringBuilder)
	physical := builder.Field(3).(*array.StringBuilder)
	host := builder.Field(4).(*array.StringBuilder)
	sql := builder.Field(5).(*array.StringBuilder)

	appendMapping := func(m typemap.Mapping, ok bool) {
		if !ok {
			physical.AppendNull()
			host.AppendNull()
			sql.AppendNull()
			return
		}
		physical.Append(m.Physical.String())
		host.Append(m.Host.String())
		sql.Append(m.SQL.String())
	}

	for _, id := range typemap.ArrowTypes() {
		h, s, decision := typemap.ClassifyID(id)
		universe.Append(string(typemap.UniversePhysical))
		typeName.Append(id.String())
		support.Append(decision.String())

		if decision != typemap.Supported {
			appendMapping(typemap.Mapping{}, false)
			continue
		}
		physical.Append(physicalName(id))
		host.Append(h.String())
		sql.Append(s.String())
	}

	for _, t := range typemap.SQLTypes() {
		universe.Append(string(typemap.UniverseSQL))
		typeName.Append(t.String())
		support.Append(typemap.TriageSQL(t).String())

		m, err := typemap.FromSQL(t)
		appendMapping(m, err == nil)
	}

	return builder.NewRecord()
}

// physicalName renders a representative descriptor for id, or the id name
// for types whose descriptor needs parameters the id does not carry.
func physicalName(id arrow.Type) string {
	if dt, ok := representative(id); ok {
		return dt.String()
	}
	return id.String()
}

func representative(id arrow.Type) (arrow.DataType, bool) {
	switch id {
	case arrow.NULL:
		return arrow.Null, true
	case arrow.BOOL:
		return arrow.FixedWidthTypes.Boolean, true
	case arrow.INT8:
		return arrow.PrimitiveTypes.Int8, true
	case arrow.UINT8:
		return arrow.PrimitiveTypes.Uint8, true
	case arrow.INT16:
		return arrow.PrimitiveTypes.Int16, true
	case arrow.UINT16:
		return arrow.PrimitiveTypes.Uint16, true
	case arrow.INT32:
		return arrow.PrimitiveTypes.Int32, true
	case arrow.UINT32:
		return arrow.PrimitiveTypes.Uint32, true
	case arrow.INT64:
		return arrow.PrimitiveTypes.Int64, true
	case arrow.UINT64:
		return arrow.PrimitiveTypes.Uint64, true
	case arrow.FLOAT16:
		return arrow.FixedWidthTypes.Float16, true
	case arrow.FLOAT32:
		return arrow.PrimitiveTypes.Float32, true
	case arrow.FLOAT64:
		return arrow.PrimitiveTypes.Float64, true
	case arrow.DATE32:
		return arrow.PrimitiveTypes.Date32, true
	case arrow.DATE64:
		return arrow.PrimitiveTypes.Date64, true
	case arrow.TIMESTAMP:
		return &arrow.TimestampType{Unit: arrow.Microsecond}, true
	case arrow.TIME32:
		return arrow.FixedWidthTypes.Time32ms, true
	case arrow.TIME64:
		return arrow.FixedWidthTypes.Time64us, true
	case arrow.INTERVAL_MONTHS:
		return arrow.FixedWidthTypes.MonthInterval, true
	case arrow.INTERVAL_DAY_TIME:
		return arrow.FixedWidthTypes.DayTimeInterval, true
	case arrow.INTERVAL_MONTH_DAY_NANO:
		return arrow.FixedWidthTypes.MonthDayNanoInterval, true
	case arrow.STRING:
		return arrow.BinaryTypes.String, true
	case arrow.LARGE_STRING:
		return arrow.BinaryTypes.LargeString, true
	case arrow.STRING_VIEW:
		return arrow.BinaryTypes.StringView, true
	case arrow.BINARY:
		return arrow.BinaryTypes.Binary, true
	case arrow.LARGE_BINARY:
		return arrow.BinaryTypes.LargeBinary, true
	case arrow.BINARY_VIEW:
		return arrow.BinaryTypes.BinaryView, true
	case arrow.DECIMAL128:
		return &arrow.Decimal128Type{Precision: 38, Scale: 0}, true
	case arrow.DECIMAL256:
		return &arrow.Decimal256Type{Precision: 76, Scale: 0}, true
	}
	return nil, false
}

// SerializeTable writes the mapping table as an Arrow IPC stream.
func SerializeTable(allocator memory.Allocator) ([]byte, error) {
	record := MappingTable(allocator)
	defer record.Release()

	var buf bytes.Buffer
	writer := ipc.NewWriter(&buf, ipc.WithSchema(MappingSchema), ipc.WithAllocator(allocator))
	defer writer.Close()

	if err := writer.Write(record); err != nil {
		return nil, fmt.Errorf("failed to write IPC record: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close IPC writer: %w", err)
	}

	return buf.Bytes(), nil
}

// ReadTable decodes an IPC stream produced by SerializeTable.
// Caller must Release the returned records.
func ReadTable(data []byte, allocator memory.Allocator) ([]arrow.Record, error) {
	reader, err := ipc.NewReader(bytes.NewReader(data), ipc.WithAllocator(allocator))
	if err != nil {
		return nil, fmt.Errorf("failed to open IPC reader: %w", err)
	}
	defer reader.Release()

	if !reader.Schema().Equal(MappingSchema) {
		return nil, fmt.Errorf("unexpected table schema: %s", reader.Schema())
	}

	var records []arrow.Record
	for reader.Next() {
		rec := reader.Record()
		rec.Retain()
		records = append(records, rec)
	}
	if err := reader.Err(); err != nil {
		for _, rec := range records {
			rec.Release()
		}
		return nil, fmt.Errorf("failed to read IPC record: %w", err)
	}
	return records, nil
}
