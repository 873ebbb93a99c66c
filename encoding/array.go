package encoding

import (
	"fmt"
	"math"

	"github.com/structbio/bcif/errs"
	"github.com/structbio/bcif/format"
)

// Numeric enumerates the element types a ByteArray step can produce.
type Numeric interface {
	int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64 | float32 | float64
}

// Array is a decoded column payload: either Numbers[T] for one of the
// numeric element types, or Strings. The set of implementations is closed.
type Array interface {
	// Len returns the number of elements.
	Len() int
	// DataType returns the wire type of the elements, or 0 for Strings,
	// which have no ByteArray representation.
	DataType() format.DataType

	isArray()
}

// Numbers is a numeric column payload.
type Numbers[T Numeric] []T

func (a Numbers[T]) Len() int { return len(a) }

func (a Numbers[T]) DataType() format.DataType { return dataTypeOf[T]() }

func (Numbers[T]) isArray() {}

// Strings is a string column payload.
type Strings []string

func (a Strings) Len() int { return len(a) }

func (Strings) DataType() format.DataType { return 0 }

func (Strings) isArray() {}

func dataTypeOf[T Numeric]() format.DataType {
	var zero T
	switch any(zero).(type) {
	case int8:
		return format.TypeInt8
	case int16:
		return format.TypeInt16
	case int32:
		return format.TypeInt32
	case int64:
		return format.TypeInt64
	case uint8:
		return format.TypeUint8
	case uint16:
		return format.TypeUint16
	case uint32:
		return format.TypeUint32
	case uint64:
		return format.TypeUint64
	case float32:
		return format.TypeFloat32
	default:
		return format.TypeFloat64
	}
}

// Equal reports deep element-wise equality of two decoded payloads.
// Arrays of different element types are never equal. NaN elements compare
// equal to NaN so that a decoded payload always equals itself.
func Equal(a, b Array) bool {
	switch x := a.(type) {
	case Strings:
		y, ok := b.(Strings)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if x[i] != y[i] {
				return false
			}
		}

		return true
	case Numbers[float32]:
		y, ok := b.(Numbers[float32])

		return ok && floatsEqual(x, y)
	case Numbers[float64]:
		y, ok := b.(Numbers[float64])

		return ok && floatsEqual(x, y)
	default:
		return intArraysEqual(a, b)
	}
}

func floatsEqual[T float32 | float64](x, y Numbers[T]) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			nan := math.IsNaN(float64(x[i])) && math.IsNaN(float64(y[i]))
			if !nan {
				return false
			}
		}
	}

	return true
}

func intArraysEqual(a, b Array) bool {
	switch x := a.(type) {
	case Numbers[int8]:
		y, ok := b.(Numbers[int8])
		return ok && sliceEqual(x, y)
	case Numbers[int16]:
		y, ok := b.(Numbers[int16])
		return ok && sliceEqual(x, y)
	case Numbers[int32]:
		y, ok := b.(Numbers[int32])
		return ok && sliceEqual(x, y)
	case Numbers[int64]:
		y, ok := b.(Numbers[int64])
		return ok && sliceEqual(x, y)
	case Numbers[uint8]:
		y, ok := b.(Numbers[uint8])
		return ok && sliceEqual(x, y)
	case Numbers[uint16]:
		y, ok := b.(Numbers[uint16])
		return ok && sliceEqual(x, y)
	case Numbers[uint32]:
		y, ok := b.(Numbers[uint32])
		return ok && sliceEqual(x, y)
	case Numbers[uint64]:
		y, ok := b.(Numbers[uint64])
		return ok && sliceEqual(x, y)
	default:
		return false
	}
}

func sliceEqual[T Numeric](x, y Numbers[T]) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}

	return true
}

// Ints widens an integer payload to []int64. It reports false for float or
// string payloads and for uint64 values beyond the int64 range.
func Ints(a Array) ([]int64, bool) {
	return asInt64s(a)
}

// Floats widens a float payload to []float64. It reports false for integer
// and string payloads.
func Floats(a Array) ([]float64, bool) {
	return asFloat64s(a)
}

// asInt64s widens an integer payload to []int64. It reports false for
// float or string payloads and for uint64 values beyond the int64 range.
func asInt64s(a Array) ([]int64, bool) {
	switch v := a.(type) {
	case Numbers[int8]:
		return widenInts(v), true
	case Numbers[int16]:
		return widenInts(v), true
	case Numbers[int32]:
		return widenInts(v), true
	case Numbers[int64]:
		return []int64(v), true
	case Numbers[uint8]:
		return widenInts(v), true
	case Numbers[uint16]:
		return widenInts(v), true
	case Numbers[uint32]:
		return widenInts(v), true
	case Numbers[uint64]:
		out := make([]int64, len(v))
		for i, x := range v {
			if x > math.MaxInt64 {
				return nil, false
			}
			out[i] = int64(x)
		}

		return out, true
	default:
		return nil, false
	}
}

func widenInts[T int8 | int16 | int32 | uint8 | uint16 | uint32](vs Numbers[T]) []int64 {
	out := make([]int64, len(vs))
	for i, v := range vs {
		out[i] = int64(v)
	}

	return out
}

// asFloat64s widens a float payload to []float64.
func asFloat64s(a Array) ([]float64, bool) {
	switch v := a.(type) {
	case Numbers[float32]:
		out := make([]float64, len(v))
		for i, x := range v {
			out[i] = float64(x)
		}

		return out, true
	case Numbers[float64]:
		return []float64(v), true
	default:
		return nil, false
	}
}

// makeNumbers builds a typed integer payload of type t from int64 values,
// failing if any value is out of range for t.
func makeNumbers(t format.DataType, vs []int64) (Array, error) {
	switch t {
	case format.TypeInt8:
		return narrowInts[int8](t, vs, math.MinInt8, math.MaxInt8)
	case format.TypeInt16:
		return narrowInts[int16](t, vs, math.MinInt16, math.MaxInt16)
	case format.TypeInt32:
		return narrowInts[int32](t, vs, math.MinInt32, math.MaxInt32)
	case format.TypeInt64:
		out := make(Numbers[int64], len(vs))
		copy(out, vs)

		return out, nil
	case format.TypeUint8:
		return narrowInts[uint8](t, vs, 0, math.MaxUint8)
	case format.TypeUint16:
		return narrowInts[uint16](t, vs, 0, math.MaxUint16)
	case format.TypeUint32:
		return narrowInts[uint32](t, vs, 0, math.MaxUint32)
	case format.TypeUint64:
		out := make(Numbers[uint64], len(vs))
		for i, v := range vs {
			if v < 0 {
				return nil, fmt.Errorf("%w: value %d out of range for %s", errs.ErrEncodingParameter, v, t)
			}
			out[i] = uint64(v)
		}

		return out, nil
	default:
		return nil, fmt.Errorf("%w: %s is not an integer type", errs.ErrEncodingParameter, t)
	}
}

func narrowInts[T int8 | int16 | int32 | uint8 | uint16 | uint32](t format.DataType, vs []int64, lo, hi int64) (Numbers[T], error) {
	out := make(Numbers[T], len(vs))
	for i, v := range vs {
		if v < lo || v > hi {
			return nil, fmt.Errorf("%w: value %d out of range for %s", errs.ErrEncodingParameter, v, t)
		}
		out[i] = T(v)
	}

	return out, nil
}

// makeFloats builds a typed float payload of type t from float64 values.
func makeFloats(t format.DataType, vs []float64) (Array, error) {
	switch t {
	case format.TypeFloat32:
		out := make(Numbers[float32], len(vs))
		for i, v := range vs {
			out[i] = float32(v)
		}

		return out, nil
	case format.TypeFloat64:
		out := make(Numbers[float64], len(vs))
		copy(out, vs)

		return out, nil
	default:
		return nil, fmt.Errorf("%w: %s is not a float type", errs.ErrEncodingParameter, t)
	}
}

// fitInts returns the given values as the smallest signed payload that
// holds them all, preferring Int32 to match the published format and
// falling back to Int64 only when required.
func fitInts(vs []int64) Array {
	for _, v := range vs {
		if v < math.MinInt32 || v > math.MaxInt32 {
			out := make(Numbers[int64], len(vs))
			copy(out, vs)

			return out
		}
	}
	out := make(Numbers[int32], len(vs))
	for i, v := range vs {
		out[i] = int32(v)
	}

	return out
}
