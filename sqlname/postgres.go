package sqlname

import (
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/hugr-lab/typemap"
)

// pgTypes is only read after construction.
var pgTypes = sync.OnceValue(pgtype.NewMap)

// FromPostgresOID resolves a Postgres type OID, as reported in a row
// description, through the pgx type registry.
func FromPostgresOID(oid uint32) (typemap.SQLType, error) {
	t, ok := pgTypes().TypeForOID(oid)
	if !ok {
		return 0, fmt.Errorf("%w: postgres oid %d", typemap.ErrUnknownType, oid)
	}
	if _, ok := t.Codec.(*pgtype.ArrayCodec); ok {
		return typemap.SQLArray, nil
	}
	return Resolve(t.Name)
}
