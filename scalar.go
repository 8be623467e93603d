package typemap

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/scalar"
)

// FromScalar infers the physical type of a concrete value and classifies it.
//
// Inference and classification are separate steps: a dictionary, list or
// struct scalar is inferred successfully and then rejected by FromPhysical.
func FromScalar(s scalar.Scalar) (Mapping, error) {
	dt, err := InferPhysical(s)
	if err != nil {
		return Mapping{}, err
	}
	return FromPhysical(dt)
}

// InferPhysical derives the Arrow data type of a scalar from its tag and payload.
//
// Parameterised types are rebuilt from the scalar's own descriptor. Dictionary
// scalars keep their index type and infer the value type from the decoded
// dictionary entry.
func InferPhysical(s scalar.Scalar) (arrow.DataType, error) {
	if s == nil {
		return nil, ErrNilScalar
	}

	switch v := s.(type) {
	case *scalar.Null:
		return arrow.Null, nil
	case *scalar.Boolean:
		return arrow.FixedWidthTypes.Boolean, nil
	case *scalar.Int8:
		return arrow.PrimitiveTypes.Int8, nil
	case *scalar.Int16:
		return arrow.PrimitiveTypes.Int16, nil
	case *scalar.Int32:
		return arrow.PrimitiveTypes.Int32, nil
	case *scalar.Int64:
		return arrow.PrimitiveTypes.Int64, nil
	case *scalar.Uint8:
		return arrow.PrimitiveTypes.Uint8, nil
	case *scalar.Uint16:
		return arrow.PrimitiveTypes.Uint16, nil
	case *scalar.Uint32:
		return arrow.PrimitiveTypes.Uint32, nil
	case *scalar.Uint64:
		return arrow.PrimitiveTypes.Uint64, nil
	case *scalar.Float16:
		return arrow.FixedWidthTypes.Float16, nil
	case *scalar.Float32:
		return arrow.PrimitiveTypes.Float32, nil
	case *scalar.Float64:
		return arrow.PrimitiveTypes.Float64, nil

	case *scalar.Decimal128:
		if dt, ok := v.DataType().(*arrow.Decimal128Type); ok {
			return &arrow.Decimal128Type{Precision: dt.Precision, Scale: dt.Scale}, nil
		}
	case *scalar.Decimal256:
		if dt, ok := v.DataType().(*arrow.Decimal256Type); ok {
			return &arrow.Decimal256Type{Precision: dt.Precision, Scale: dt.Scale}, nil
		}

	case *scalar.String:
		return arrow.BinaryTypes.String, nil
	case *scalar.LargeString:
		return arrow.BinaryTypes.LargeString, nil
	case *scalar.Binary:
		return arrow.BinaryTypes.Binary, nil
	case *scalar.LargeBinary:
		return arrow.BinaryTypes.LargeBinary, nil
	case *scalar.FixedSizeBinary:
		if dt, ok := v.DataType().(*arrow.FixedSizeBinaryType); ok {
			return &arrow.FixedSizeBinaryType{ByteWidth: dt.ByteWidth}, nil
		}

	case *scalar.Date32:
		return arrow.PrimitiveTypes.Date32, nil
	case *scalar.Date64:
		return arrow.PrimitiveTypes.Date64, nil
	case *scalar.Time32:
		if dt, ok := v.DataType().(*arrow.Time32Type); ok {
			return &arrow.Time32Type{Unit: dt.Unit}, nil
		}
	case *scalar.Time64:
		if dt, ok := v.DataType().(*arrow.Time64Type); ok {
			return &arrow.Time64Type{Unit: dt.Unit}, nil
		}
	case *scalar.Timestamp:
		if dt, ok := v.DataType().(*arrow.TimestampType); ok {
			return &arrow.TimestampType{Unit: dt.Unit, TimeZone: dt.TimeZone}, nil
		}
	case *scalar.Duration:
		if dt, ok := v.DataType().(*arrow.DurationType); ok {
			return &arrow.DurationType{Unit: dt.Unit}, nil
		}
	case *scalar.MonthInterval:
		return arrow.FixedWidthTypes.MonthInterval, nil
	case *scalar.DayTimeInterval:
		return arrow.FixedWidthTypes.DayTimeInterval, nil
	case *scalar.MonthDayNanoInterval:
		return arrow.FixedWidthTypes.MonthDayNanoInterval, nil

	case *scalar.Dictionary:
		return inferDictionary(v)

	case *scalar.List, *scalar.LargeList, *scalar.FixedSizeList, *scalar.Map, *scalar.Struct,
		*scalar.SparseUnion, *scalar.DenseUnion, *scalar.RunEndEncoded, *scalar.Extension:
		// Nested descriptors already carry their child fields.
		return s.DataType(), nil
	}

	// Scalar kinds without an arm above are described by their own type.
	if dt := s.DataType(); dt != nil {
		return dt, nil
	}
	return nil, fmt.Errorf("%w: scalar %T has no data type", ErrNilType, s)
}

func inferDictionary(d *scalar.Dictionary) (arrow.DataType, error) {
	dictType, ok := d.DataType().(*arrow.DictionaryType)
	if !ok {
		return d.DataType(), nil
	}

	value, err := d.GetEncodedValue()
	if err != nil {
		return nil, fmt.Errorf("typemap: decode dictionary value: %w", err)
	}
	valueType, err := InferPhysical(value)
	if err != nil {
		return nil, fmt.Errorf("typemap: infer dictionary value: %w", err)
	}

	return &arrow.DictionaryType{
		IndexType: dictType.IndexType,
		ValueType: valueType,
		Ordered:   dictType.Ordered,
	}, nil
}
