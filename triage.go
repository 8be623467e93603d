package typemap

import (
	"fmt"
	"strings"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/zeebo/xxh3"
)

// Support is the registry decision for a single type.
type Support int

const (
	// Untriaged means the registry has no decision for the type yet.
	Untriaged Support = iota
	Supported
	Unsupported
)

func (s Support) String() string {
	switch s {
	case Supported:
		return "supported"
	case Unsupported:
		return "unsupported"
	}
	return "untriaged"
}

// Triage reports the registry decision for an Arrow type id.
func Triage(id arrow.Type) Support {
	_, _, support := classifyPhysical(id)
	return support
}

// ClassifyID returns the host and SQL types every descriptor with the given
// id maps to. Both are zero unless the decision is Supported.
func ClassifyID(id arrow.Type) (HostType, SQLType, Support) {
	return classifyPhysical(id)
}

// TriageSQL reports the registry decision for a SQL type.
func TriageSQL(t SQLType) Support {
	if !t.IsValid() {
		return Untriaged
	}
	_, _, support := sqlDefault(t)
	return support
}

// maxArrowTypeID bounds the walk in ArrowTypes.
const maxArrowTypeID = 1 << 10

// ArrowTypes returns every type id the linked Arrow library defines, in id order.
func ArrowTypes() []arrow.Type {
	var ids []arrow.Type
	for id := arrow.Type(0); id < maxArrowTypeID; id++ {
		if strings.HasPrefix(id.String(), "Type(") {
			break
		}
		ids = append(ids, id)
	}
	return ids
}

// Fingerprint hashes the whole triage table with xxh3.
//
// The value changes whenever a decision or classification changes, or when
// the Arrow library adds a type id. It is stable across processes otherwise.
func Fingerprint() uint64 {
	h := xxh3.New()
	for _, id := range ArrowTypes() {
		host, sql, support := classifyPhysical(id)
		if support != Supported {
			fmt.Fprintf(h, "physical|%s|%s\n", id, support)
			continue
		}
		fmt.Fprintf(h, "physical|%s|%s|%s|%s\n", id, support, host, sql)
	}
	for _, t := range SQLTypes() {
		physical, host, support := sqlDefault(t)
		if support != Supported {
			fmt.Fprintf(h, "sql|%s|%s\n", t, support)
			continue
		}
		fmt.Fprintf(h, "sql|%s|%s|%s|%s\n", t, support, physical, host)
	}
	return h.Sum64()
}
