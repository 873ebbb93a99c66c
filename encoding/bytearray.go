package encoding

import (
	"fmt"
	"math"

	"github.com/structbio/bcif/endian"
	"github.com/structbio/bcif/errs"
	"github.com/structbio/bcif/format"
	"github.com/structbio/bcif/internal/pool"
)

// wireEngine is the byte order of the BinaryCIF wire format.
var wireEngine = endian.GetLittleEndianEngine()

func decodeByteArray(raw []byte, s ByteArray) (Array, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	size := s.Type.Size()
	if len(raw)%size != 0 {
		return nil, fmt.Errorf("%w: ByteArray payload of %d bytes is not a multiple of %s element size %d",
			errs.ErrEncodingParameter, len(raw), s.Type, size)
	}
	n := len(raw) / size

	switch s.Type {
	case format.TypeInt8:
		out := make(Numbers[int8], n)
		for i := range out {
			out[i] = int8(raw[i])
		}

		return out, nil
	case format.TypeUint8:
		out := make(Numbers[uint8], n)
		copy(out, raw)

		return out, nil
	case format.TypeInt16:
		out := make(Numbers[int16], n)
		for i := range out {
			out[i] = int16(wireEngine.Uint16(raw[2*i:]))
		}

		return out, nil
	case format.TypeUint16:
		out := make(Numbers[uint16], n)
		for i := range out {
			out[i] = wireEngine.Uint16(raw[2*i:])
		}

		return out, nil
	case format.TypeInt32:
		out := make(Numbers[int32], n)
		for i := range out {
			out[i] = int32(wireEngine.Uint32(raw[4*i:]))
		}

		return out, nil
	case format.TypeUint32:
		out := make(Numbers[uint32], n)
		for i := range out {
			out[i] = wireEngine.Uint32(raw[4*i:])
		}

		return out, nil
	case format.TypeInt64:
		out := make(Numbers[int64], n)
		for i := range out {
			out[i] = int64(wireEngine.Uint64(raw[8*i:]))
		}

		return out, nil
	case format.TypeUint64:
		out := make(Numbers[uint64], n)
		for i := range out {
			out[i] = wireEngine.Uint64(raw[8*i:])
		}

		return out, nil
	case format.TypeFloat32:
		out := make(Numbers[float32], n)
		for i := range out {
			out[i] = math.Float32frombits(wireEngine.Uint32(raw[4*i:]))
		}

		return out, nil
	default:
		out := make(Numbers[float64], n)
		for i := range out {
			out[i] = math.Float64frombits(wireEngine.Uint64(raw[8*i:]))
		}

		return out, nil
	}
}

// encodeByteArray serializes arr little-endian. When s.Type is zero the
// array's own element type is used; otherwise the array is converted first,
// failing on any value the requested type cannot represent exactly.
func encodeByteArray(arr Array, s ByteArray) ([]byte, ByteArray, error) {
	t := s.Type
	if t == 0 {
		t = arr.DataType()
	}
	if t == 0 {
		return nil, s, fmt.Errorf("%w: ByteArray cannot encode a string payload", errs.ErrEncodingParameter)
	}
	if t != arr.DataType() {
		conv, err := convertNumbers(arr, t)
		if err != nil {
			return nil, s, err
		}
		arr = conv
	}

	buf := pool.GetColumnBuffer()
	defer pool.PutColumnBuffer(buf)
	buf.Grow(arr.Len() * t.Size())

	switch vs := arr.(type) {
	case Numbers[int8]:
		for _, v := range vs {
			buf.B = append(buf.B, byte(v))
		}
	case Numbers[uint8]:
		buf.B = append(buf.B, vs...)
	case Numbers[int16]:
		for _, v := range vs {
			buf.B = wireEngine.AppendUint16(buf.B, uint16(v))
		}
	case Numbers[uint16]:
		for _, v := range vs {
			buf.B = wireEngine.AppendUint16(buf.B, v)
		}
	case Numbers[int32]:
		for _, v := range vs {
			buf.B = wireEngine.AppendUint32(buf.B, uint32(v))
		}
	case Numbers[uint32]:
		for _, v := range vs {
			buf.B = wireEngine.AppendUint32(buf.B, v)
		}
	case Numbers[int64]:
		for _, v := range vs {
			buf.B = wireEngine.AppendUint64(buf.B, uint64(v))
		}
	case Numbers[uint64]:
		for _, v := range vs {
			buf.B = wireEngine.AppendUint64(buf.B, v)
		}
	case Numbers[float32]:
		for _, v := range vs {
			buf.B = wireEngine.AppendUint32(buf.B, math.Float32bits(v))
		}
	case Numbers[float64]:
		for _, v := range vs {
			buf.B = wireEngine.AppendUint64(buf.B, math.Float64bits(v))
		}
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, ByteArray{Type: t}, nil
}

// convertNumbers converts a numeric payload to element type t, integer to
// integer or float to float only, with range checks.
func convertNumbers(arr Array, t format.DataType) (Array, error) {
	if t.IsFloat() != arr.DataType().IsFloat() {
		return nil, fmt.Errorf("%w: cannot convert %s payload to %s", errs.ErrEncodingParameter, arr.DataType(), t)
	}
	if t.IsFloat() {
		fs, _ := asFloat64s(arr)

		return makeFloats(t, fs)
	}

	vs, ok := asInt64s(arr)
	if !ok {
		return nil, fmt.Errorf("%w: cannot convert %s payload to %s", errs.ErrEncodingParameter, arr.DataType(), t)
	}

	return makeNumbers(t, vs)
}
