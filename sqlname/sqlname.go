// Package sqlname resolves the type names that SQL engines and drivers report
// to typemap.SQLType values.
//
// DuckDB may report either the short form (e.g., "TIMESTAMPTZ") or the full
// SQL form (e.g., "TIMESTAMP WITH TIME ZONE"). Postgres reports its own
// catalog names ("int4", "bpchar", "_text"). Both are folded into the ANSI
// names known to typemap.
package sqlname

import (
	"fmt"
	"strings"

	"github.com/hugr-lab/typemap"
)

// aliases maps normalized dialect names to ANSI SQL types.
// Canonical ANSI names are not listed; they resolve through typemap.ParseSQLType.
var aliases = map[string]typemap.SQLType{
	// Integer types
	"INT":       typemap.SQLInteger,
	"INT4":      typemap.SQLInteger,
	"INT32":     typemap.SQLInteger,
	"SIGNED":    typemap.SQLInteger,
	"UINTEGER":  typemap.SQLInteger,
	"UINT4":     typemap.SQLInteger,
	"INT8":      typemap.SQLBigInt,
	"INT64":     typemap.SQLBigInt,
	"LONG":      typemap.SQLBigInt,
	"UBIGINT":   typemap.SQLBigInt,
	"UINT8":     typemap.SQLBigInt,
	"INT2":      typemap.SQLSmallInt,
	"INT16":     typemap.SQLSmallInt,
	"SHORT":     typemap.SQLSmallInt,
	"USMALLINT": typemap.SQLSmallInt,
	"UINT2":     typemap.SQLSmallInt,
	"INT1":      typemap.SQLTinyInt,
	"UTINYINT":  typemap.SQLTinyInt,
	"UINT1":     typemap.SQLTinyInt,
	// 128-bit integers have no ANSI integer type.
	"HUGEINT":  typemap.SQLDecimal,
	"INT128":   typemap.SQLDecimal,
	"UHUGEINT": typemap.SQLDecimal,
	"UINT128":  typemap.SQLDecimal,
	"VARINT":   typemap.SQLDecimal,

	// Exact and approximate numerics
	"NUMERIC":          typemap.SQLDecimal,
	"DEC":              typemap.SQLDecimal,
	"FLOAT4":           typemap.SQLReal,
	"FLOAT8":           typemap.SQLDouble,
	"DOUBLE PRECISION": typemap.SQLDouble,

	// Strings
	"STRING":            typemap.SQLVarChar,
	"TEXT":              typemap.SQLVarChar,
	"NAME":              typemap.SQLVarChar,
	"NVARCHAR":          typemap.SQLVarChar,
	"CHARACTER VARYING": typemap.SQLVarChar,
	"BPCHAR":            typemap.SQLChar,
	"CHARACTER":         typemap.SQLChar,
	"NCHAR":             typemap.SQLChar,

	// Binary
	"BLOB":           typemap.SQLVarBinary,
	"BYTEA":          typemap.SQLVarBinary,
	"BYTES":          typemap.SQLVarBinary,
	"BINARY VARYING": typemap.SQLVarBinary,
	"BIT":            typemap.SQLBinary,
	"BITSTRING":      typemap.SQLBinary,

	// Boolean
	"BOOL":    typemap.SQLBoolean,
	"LOGICAL": typemap.SQLBoolean,

	// Temporal
	"TIMESTAMP WITH TIME ZONE":    typemap.SQLTimestampWithLocalTimeZone,
	"TIMESTAMP_TZ":                typemap.SQLTimestampWithLocalTimeZone,
	"TIMESTAMPTZ":                 typemap.SQLTimestampWithLocalTimeZone,
	"TIMESTAMP WITHOUT TIME ZONE": typemap.SQLTimestamp,
	"TIMESTAMP_S":                 typemap.SQLTimestamp,
	"TIMESTAMP_SEC":               typemap.SQLTimestamp,
	"TIMESTAMP_MS":                typemap.SQLTimestamp,
	"TIMESTAMP_NS":                typemap.SQLTimestamp,
	"TIMESTAMP_US":                typemap.SQLTimestamp,
	"DATETIME":                    typemap.SQLTimestamp,
	"TIME WITH TIME ZONE":         typemap.SQLTimeWithLocalTimeZone,
	"TIMETZ":                      typemap.SQLTimeWithLocalTimeZone,
	"TIME WITHOUT TIME ZONE":      typemap.SQLTime,

	// Nested
	"LIST":   typemap.SQLArray,
	"STRUCT": typemap.SQLRow,
	"RECORD": typemap.SQLRow,

	// Types the engines know that ANSI does not
	"UUID":  typemap.SQLOther,
	"JSON":  typemap.SQLOther,
	"JSONB": typemap.SQLOther,
	"UNION": typemap.SQLOther,
	"ENUM":  typemap.SQLOther,
}

// Resolve maps a dialect type name to its ANSI SQL type.
//
// Parameter lists are dropped ("DECIMAL(10,2)" resolves to DECIMAL), array
// suffixes and Postgres "_" element prefixes resolve to ARRAY when the element
// name itself resolves.
func Resolve(name string) (typemap.SQLType, error) {
	key := normalize(name)
	if key == "" {
		return 0, fmt.Errorf("%w: empty type name", typemap.ErrUnknownType)
	}
	if elem, ok := arrayElement(key); ok {
		if _, err := Resolve(elem); err != nil {
			return 0, fmt.Errorf("%w: array of %q", typemap.ErrUnknownType, name)
		}
		return typemap.SQLArray, nil
	}
	if t, ok := aliases[key]; ok {
		return t, nil
	}
	t, err := typemap.ParseSQLType(key)
	if err != nil {
		return 0, fmt.Errorf("%w: sql type name %q", typemap.ErrUnknownType, name)
	}
	return t, nil
}

// Map resolves a dialect type name and returns its default mapping.
func Map(name string) (typemap.Mapping, error) {
	t, err := Resolve(name)
	if err != nil {
		return typemap.Mapping{}, err
	}
	return typemap.FromSQL(t)
}

// arrayElement strips one array suffix ("INTEGER[]", "VARCHAR[3]") or the
// Postgres "_" prefix from a normalized name.
func arrayElement(key string) (string, bool) {
	if strings.HasSuffix(key, "]") {
		if i := strings.LastIndex(key, "["); i >= 0 {
			return key[:i], true
		}
		return "", true
	}
	if elem, ok := strings.CutPrefix(key, "_"); ok {
		return elem, true
	}
	return "", false
}

// normalize upper-cases name, removes parenthesized parameter lists and
// folds whitespace runs.
func normalize(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	depth := 0
	for _, r := range name {
		switch {
		case r == '(':
			depth++
		case r == ')':
			if depth > 0 {
				depth--
			}
		case depth == 0:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(strings.ToUpper(b.String())), " ")
}
