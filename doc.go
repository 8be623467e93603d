// Package typemap reconciles three type universes at a SQL engine boundary:
// Apache Arrow physical types, ANSI SQL logical types and the host value
// categories a caller sees.
//
// Given any one representation the registry produces a consistent Mapping
// triple or fails with an error matching ErrUnsupported:
//
//	m, err := typemap.FromPhysical(arrow.PrimitiveTypes.Int32)
//	// m.Host == typemap.HostInt, m.SQL == typemap.SQLInteger
//
//	m, err = typemap.FromSQL(typemap.SQLVarChar)
//	// m.Physical == arrow.BinaryTypes.String, m.Host == typemap.HostStr
//
//	m, err = typemap.FromScalar(scalar.NewInt32Scalar(42))
//	// same mapping as FromPhysical(arrow.PrimitiveTypes.Int32)
//
// # Lossy directions
//
// The SQL side collapses information. Every temporal physical type reports
// DATE and every decimal reports DECIMAL, while the Mapping keeps the input
// descriptor so units, time zones, precision and scale are not lost.
// FromSQL picks a default physical type and the round trip is not the
// identity: INTEGER yields Int8, which maps back to TINYINT.
//
// # Unsupported types
//
// Nested and container types (lists, structs, maps, unions, dictionaries,
// run-end encoded, extensions) as well as durations and fixed-size binaries
// are rejected. Triage exposes the decision for every Arrow type id and
// Fingerprint hashes the whole decision table.
//
// # Flight service
//
// The flight subpackage registers an Arrow Flight service on a
// user-provided grpc.Server. It answers mapping requests through DoAction
// and serves the full mapping table through ListFlights, GetFlightInfo and
// DoGet. cmd/typemapd runs it as a standalone daemon.
//
// # Concurrency
//
// All functions are pure and safe for concurrent use. Mappings are built per
// call and never cached.
package typemap
