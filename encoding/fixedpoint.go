package encoding

import (
	"fmt"
	"math"

	"github.com/structbio/bcif/errs"
	"github.com/structbio/bcif/format"
)

func decodeFixedPoint(in Array, s FixedPoint) (Array, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	vs, ok := asInt64s(in)
	if !ok {
		return nil, fmt.Errorf("%w: FixedPoint requires an integer input, got %s", errs.ErrEncodingParameter, in.DataType())
	}

	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = float64(v) / s.Factor
	}

	dst := s.SrcType
	if dst == 0 {
		dst = format.TypeFloat64
	}

	return makeFloats(dst, out)
}

// encodeFixedPoint multiplies by the factor and rounds to the nearest
// integer, ties away from zero. The step is lossy for values carrying more
// precision than the factor preserves.
func encodeFixedPoint(in Array, s FixedPoint) (Array, FixedPoint, error) {
	if err := s.Validate(); err != nil {
		return nil, s, err
	}
	fs, ok := asFloat64s(in)
	if !ok {
		return nil, s, fmt.Errorf("%w: FixedPoint requires a float input, got %s", errs.ErrEncodingParameter, in.DataType())
	}

	out := make(Numbers[int32], len(fs))
	for i, f := range fs {
		r := math.Round(f * s.Factor)
		if r < math.MinInt32 || r > math.MaxInt32 || math.IsNaN(r) {
			return nil, s, fmt.Errorf("%w: FixedPoint value %v with factor %v does not fit Int32",
				errs.ErrEncodingParameter, f, s.Factor)
		}
		out[i] = int32(r)
	}

	return out, FixedPoint{Factor: s.Factor, SrcType: in.DataType()}, nil
}
