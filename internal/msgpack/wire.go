package msgpack

// MapPhysicalRequest is the body of the map_physical action.
type MapPhysicalRequest struct {
	// Schema holds an Arrow IPC serialized schema; one mapping per field.
	Schema []byte `msgpack:"schema"`
}

// MapSQLRequest is the body of the map_sql action.
type MapSQLRequest struct {
	Types []string `msgpack:"types"`
}

// MapScalarRequest is the body of the map_scalar action.
type MapScalarRequest struct {
	// Batch holds an Arrow IPC stream; row 0 of each column is classified.
	Batch []byte `msgpack:"batch"`
}

// MappingResult is one action result. Error is set instead of the mapping
// fields when the item could not be mapped.
type MappingResult struct {
	Name     string `msgpack:"name"`
	Physical string `msgpack:"physical,omitempty"`
	Host     string `msgpack:"host,omitempty"`
	SQL      string `msgpack:"sql,omitempty"`
	Error    string `msgpack:"error,omitempty"`
}

// FingerprintResult is the result of the fingerprint action.
type FingerprintResult struct {
	Fingerprint uint64 `msgpack:"fingerprint"`
	ArrowTypes  int    `msgpack:"arrow_types"`
	SQLTypes    int    `msgpack:"sql_types"`
}

// KindsResult is the result of the list_kinds action.
type KindsResult struct {
	HostTypes       []string `msgpack:"host_types"`
	SQLTypes        []string `msgpack:"sql_types"`
	ExpressionKinds []string `msgpack:"expression_kinds"`
}
