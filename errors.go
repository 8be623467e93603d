package typemap

import (
	"errors"
	"fmt"
)

// Universe names the type system an offending type belongs to.
type Universe string

const (
	UniversePhysical Universe = "physical"
	UniverseSQL      Universe = "sql"
)

var (
	// ErrUnsupported is matched by every *UnsupportedError via errors.Is.
	ErrUnsupported = errors.New("unsupported type")

	// ErrUnknownType is returned for enum values outside the declared set
	// and for names that do not resolve to any type.
	ErrUnknownType = errors.New("unknown type")

	// ErrNilType is returned when a nil arrow.DataType is classified.
	ErrNilType = errors.New("nil physical type")

	// ErrNilScalar is returned when a nil scalar is passed to inference.
	ErrNilScalar = errors.New("nil scalar value")
)

// UnsupportedError reports a type for which no mapping is defined.
type UnsupportedError struct {
	Universe Universe
	// Type is the offending arrow.DataType or SQLType.
	Type fmt.Stringer
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("typemap: unsupported %s type: %s", e.Universe, e.Type)
}

// Unwrap lets errors.Is match ErrUnsupported.
func (e *UnsupportedError) Unwrap() error {
	return ErrUnsupported
}

func unsupported(u Universe, t fmt.Stringer) error {
	return &UnsupportedError{Universe: u, Type: t}
}
