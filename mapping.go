package typemap

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
)

// Mapping ties one physical, host and SQL type together.
//
// Values returned by FromPhysical, FromSQL and FromScalar are consistent by
// construction. A Mapping assembled by hand with NewMapping is not validated.
type Mapping struct {
	Physical arrow.DataType
	Host     HostType
	SQL      SQLType
}

// NewMapping assembles a Mapping from caller-supplied parts without validation.
func NewMapping(physical arrow.DataType, host HostType, sql SQLType) Mapping {
	return Mapping{Physical: physical, Host: host, SQL: sql}
}

// Equal reports whether both mappings carry the same triple.
// Physical types are compared with arrow.TypeEqual so parameters must match.
func (m Mapping) Equal(other Mapping) bool {
	if m.Host != other.Host || m.SQL != other.SQL {
		return false
	}
	if m.Physical == nil || other.Physical == nil {
		return m.Physical == nil && other.Physical == nil
	}
	return arrow.TypeEqual(m.Physical, other.Physical)
}

func (m Mapping) String() string {
	physical := "<nil>"
	if m.Physical != nil {
		physical = m.Physical.String()
	}
	return fmt.Sprintf("%s/%s/%s", physical, m.Host, m.SQL)
}

// FromPhysical classifies an Arrow data type.
//
// The descriptor is stored in the result unchanged, so units, time zones,
// precision and scale survive even though the SQL side collapses them
// (every temporal type reports DATE). Nested and container types, durations
// and fixed-size binaries fail with an *UnsupportedError.
func FromPhysical(dt arrow.DataType) (Mapping, error) {
	if dt == nil {
		return Mapping{}, ErrNilType
	}

	host, sql, support := classifyPhysical(dt.ID())
	switch support {
	case Supported:
		return Mapping{Physical: dt, Host: host, SQL: sql}, nil
	case Unsupported:
		return Mapping{}, unsupported(UniversePhysical, dt)
	}
	return Mapping{}, fmt.Errorf("%w: arrow type id %s has no mapping decision", ErrUnknownType, dt.ID())
}

// classifyPhysical holds the physical side of the registry. Every arrow.Type
// constant has an explicit arm; there is no default so that a new upstream
// type id shows up as Untriaged in the conformance test.
func classifyPhysical(id arrow.Type) (HostType, SQLType, Support) {
	switch id {
	case arrow.NULL:
		return HostNone, SQLNull, Supported
	case arrow.BOOL:
		return HostBool, SQLBoolean, Supported
	case arrow.INT8, arrow.UINT8:
		return HostInt, SQLTinyInt, Supported
	case arrow.INT16, arrow.UINT16:
		return HostInt, SQLSmallInt, Supported
	case arrow.INT32, arrow.UINT32:
		return HostInt, SQLInteger, Supported
	case arrow.INT64, arrow.UINT64:
		return HostInt, SQLBigInt, Supported
	case arrow.FLOAT16, arrow.FLOAT32, arrow.FLOAT64:
		return HostFloat, SQLFloat, Supported

	case arrow.TIMESTAMP, arrow.DATE32, arrow.DATE64, arrow.TIME32, arrow.TIME64:
		return HostDatetime, SQLDate, Supported
	case arrow.INTERVAL_MONTHS:
		return HostDatetime, SQLIntervalYearMonth, Supported
	case arrow.INTERVAL_DAY_TIME:
		return HostDatetime, SQLIntervalDay, Supported
	case arrow.INTERVAL_MONTH_DAY_NANO:
		return HostDatetime, SQLIntervalMonth, Supported

	case arrow.BINARY, arrow.LARGE_BINARY, arrow.BINARY_VIEW:
		return HostBytes, SQLBinary, Supported
	case arrow.STRING, arrow.LARGE_STRING, arrow.STRING_VIEW:
		return HostStr, SQLVarChar, Supported
	case arrow.DECIMAL32, arrow.DECIMAL64, arrow.DECIMAL128, arrow.DECIMAL256:
		return HostFloat, SQLDecimal, Supported

	case arrow.DURATION, arrow.FIXED_SIZE_BINARY:
		return 0, 0, Unsupported
	case arrow.LIST, arrow.LARGE_LIST, arrow.FIXED_SIZE_LIST, arrow.LIST_VIEW, arrow.LARGE_LIST_VIEW,
		arrow.STRUCT, arrow.SPARSE_UNION, arrow.DENSE_UNION, arrow.DICTIONARY, arrow.MAP,
		arrow.RUN_END_ENCODED, arrow.EXTENSION:
		return 0, 0, Unsupported
	}
	return 0, 0, Untriaged
}

// FromSQL picks a default physical type for a SQL type.
//
// SQL names underspecify width and precision, so the result is a best effort
// and the round trip SQL -> physical -> SQL is not the identity: INTEGER
// yields Int8, which FromPhysical reports as TINYINT. Types without a safe
// physical counterpart fail with an *UnsupportedError.
func FromSQL(t SQLType) (Mapping, error) {
	if !t.IsValid() {
		return Mapping{}, fmt.Errorf("%w: %s", ErrUnknownType, t)
	}

	physical, host, support := sqlDefault(t)
	switch support {
	case Supported:
		return Mapping{Physical: physical, Host: host, SQL: t}, nil
	case Unsupported:
		return Mapping{}, unsupported(UniverseSQL, t)
	}
	return Mapping{}, fmt.Errorf("%w: sql type %s has no mapping decision", ErrUnknownType, t)
}

func sqlDefault(t SQLType) (arrow.DataType, HostType, Support) {
	switch t {
	case SQLBigInt:
		return arrow.PrimitiveTypes.Int64, HostInt, Supported
	case SQLInteger:
		return arrow.PrimitiveTypes.Int8, HostInt, Supported
	case SQLSmallInt:
		return arrow.PrimitiveTypes.Int16, HostInt, Supported
	case SQLTinyInt:
		return arrow.PrimitiveTypes.Int8, HostInt, Supported
	case SQLChar:
		return arrow.PrimitiveTypes.Uint8, HostInt, Supported
	case SQLBoolean:
		return arrow.FixedWidthTypes.Boolean, HostBool, Supported
	case SQLDate:
		return arrow.PrimitiveTypes.Date64, HostDatetime, Supported
	case SQLDecimal, SQLFloat:
		return &arrow.Decimal128Type{Precision: 1, Scale: 1}, HostFloat, Supported
	case SQLDouble:
		return &arrow.Decimal256Type{Precision: 1, Scale: 1}, HostFloat, Supported
	case SQLBinary:
		return arrow.BinaryTypes.Binary, HostBytes, Supported
	case SQLVarBinary:
		return arrow.BinaryTypes.LargeBinary, HostBytes, Supported
	case SQLVarChar:
		return arrow.BinaryTypes.String, HostStr, Supported
	case SQLNull:
		return arrow.Null, HostNone, Supported

	case SQLInterval, SQLIntervalDay, SQLIntervalDayHour, SQLIntervalDayMinute, SQLIntervalDaySecond,
		SQLIntervalHour, SQLIntervalHourMinute, SQLIntervalHourSecond, SQLIntervalMinute,
		SQLIntervalMinuteSecond, SQLIntervalMonth, SQLIntervalSecond, SQLIntervalYear,
		SQLIntervalYearMonth:
		return nil, 0, Unsupported
	case SQLTime, SQLTimeWithLocalTimeZone, SQLTimestamp, SQLTimestampWithLocalTimeZone:
		return nil, 0, Unsupported
	case SQLReal:
		return nil, 0, Unsupported
	case SQLAny, SQLArray, SQLColumnList, SQLCursor, SQLDistinct, SQLDynamicStar, SQLGeometry,
		SQLMap, SQLMultiset, SQLOther, SQLRow, SQLSarg, SQLStructured, SQLSymbol, SQLUnknown:
		return nil, 0, Unsupported
	}
	return nil, 0, Untriaged
}
