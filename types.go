package typemap

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=HostType -trimprefix=Host -output=hosttype_string.go
//go:generate go tool stringer -type=SQLType -linecomment -output=sqltype_string.go
//go:generate go tool stringer -type=RexType -trimprefix=Rex -output=rextype_string.go

// HostType is the category of native value a caller sees for a physical type.
type HostType int

const (
	_ HostType = iota // zero value is invalid

	HostArray
	HostBool
	HostBytes
	HostDatetime
	HostFloat
	HostInt
	HostList
	HostNone
	HostObject
	HostStr

	hostTypeEnd
)

// IsValid reports whether t is one of the declared host types.
func (t HostType) IsValid() bool {
	return t > 0 && t < hostTypeEnd
}

// HostTypes returns every host type in declaration order.
func HostTypes() []HostType {
	out := make([]HostType, 0, int(hostTypeEnd)-1)
	for t := HostArray; t < hostTypeEnd; t++ {
		out = append(out, t)
	}
	return out
}

// ParseHostType resolves a host type name such as "Int" or "datetime".
func ParseHostType(name string) (HostType, error) {
	for _, t := range HostTypes() {
		if strings.EqualFold(t.String(), strings.TrimSpace(name)) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: host type %q", ErrUnknownType, name)
}

// SQLType is an ANSI SQL logical type name.
type SQLType int

const (
	_ SQLType = iota // zero value is invalid

	SQLAny                        // ANY
	SQLArray                      // ARRAY
	SQLBigInt                     // BIGINT
	SQLBinary                     // BINARY
	SQLBoolean                    // BOOLEAN
	SQLChar                       // CHAR
	SQLColumnList                 // COLUMN_LIST
	SQLCursor                     // CURSOR
	SQLDate                       // DATE
	SQLDecimal                    // DECIMAL
	SQLDistinct                   // DISTINCT
	SQLDouble                     // DOUBLE
	SQLDynamicStar                // DYNAMIC_STAR
	SQLFloat                      // FLOAT
	SQLGeometry                   // GEOMETRY
	SQLInteger                    // INTEGER
	SQLInterval                   // INTERVAL
	SQLIntervalDay                // INTERVAL_DAY
	SQLIntervalDayHour            // INTERVAL_DAY_HOUR
	SQLIntervalDayMinute          // INTERVAL_DAY_MINUTE
	SQLIntervalDaySecond          // INTERVAL_DAY_SECOND
	SQLIntervalHour               // INTERVAL_HOUR
	SQLIntervalHourMinute         // INTERVAL_HOUR_MINUTE
	SQLIntervalHourSecond         // INTERVAL_HOUR_SECOND
	SQLIntervalMinute             // INTERVAL_MINUTE
	SQLIntervalMinuteSecond       // INTERVAL_MINUTE_SECOND
	SQLIntervalMonth              // INTERVAL_MONTH
	SQLIntervalSecond             // INTERVAL_SECOND
	SQLIntervalYear               // INTERVAL_YEAR
	SQLIntervalYearMonth          // INTERVAL_YEAR_MONTH
	SQLMap                        // MAP
	SQLMultiset                   // MULTISET
	SQLNull                       // NULL
	SQLOther                      // OTHER
	SQLReal                       // REAL
	SQLRow                        // ROW
	SQLSarg                       // SARG
	SQLSmallInt                   // SMALLINT
	SQLStructured                 // STRUCTURED
	SQLSymbol                     // SYMBOL
	SQLTime                       // TIME
	SQLTimeWithLocalTimeZone      // TIME_WITH_LOCAL_TIME_ZONE
	SQLTimestamp                  // TIMESTAMP
	SQLTimestampWithLocalTimeZone // TIMESTAMP_WITH_LOCAL_TIME_ZONE
	SQLTinyInt                    // TINYINT
	SQLUnknown                    // UNKNOWN
	SQLVarBinary                  // VARBINARY
	SQLVarChar                    // VARCHAR

	sqlTypeEnd
)

// IsValid reports whether t is one of the declared SQL types.
func (t SQLType) IsValid() bool {
	return t > 0 && t < sqlTypeEnd
}

// IsInteger returns true for the exact integer types.
func (t SQLType) IsInteger() bool {
	switch t {
	case SQLTinyInt, SQLSmallInt, SQLInteger, SQLBigInt:
		return true
	}
	return false
}

// IsInterval returns true for INTERVAL and every INTERVAL_* qualifier.
func (t SQLType) IsInterval() bool {
	return t >= SQLInterval && t <= SQLIntervalYearMonth
}

// SQLTypes returns every SQL type in declaration order.
func SQLTypes() []SQLType {
	out := make([]SQLType, 0, int(sqlTypeEnd)-1)
	for t := SQLAny; t < sqlTypeEnd; t++ {
		out = append(out, t)
	}
	return out
}

// ParseSQLType resolves a canonical ANSI name ("BIGINT", "interval_day") to its SQLType.
// Dialect aliases are handled by the sqlname package.
func ParseSQLType(name string) (SQLType, error) {
	key := strings.ToUpper(strings.TrimSpace(name))
	for _, t := range SQLTypes() {
		if t.String() == key {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: sql type %q", ErrUnknownType, name)
}

// RexType classifies the kind of a row expression in a logical plan.
type RexType int

const (
	_ RexType = iota

	RexAlias
	RexLiteral
	RexCall
	RexReference
	RexScalarSubquery
	RexOther

	rexTypeEnd
)

// RexTypes returns every expression kind in declaration order.
func RexTypes() []RexType {
	out := make([]RexType, 0, int(rexTypeEnd)-1)
	for t := RexAlias; t < rexTypeEnd; t++ {
		out = append(out, t)
	}
	return out
}
