package encoding

import (
	"fmt"

	"github.com/structbio/bcif/errs"
	"github.com/structbio/bcif/format"
)

func decodeDelta(in Array, s Delta) (Array, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	diffs, ok := asInt64s(in)
	if !ok {
		return nil, fmt.Errorf("%w: Delta requires an integer input, got %s", errs.ErrEncodingParameter, in.DataType())
	}

	out := make([]int64, len(diffs))
	acc := s.Origin
	for i, d := range diffs {
		acc += d
		out[i] = acc
	}

	dst := s.SrcType
	if dst == 0 {
		dst = format.TypeInt32
	}

	return makeNumbers(dst, out)
}

// encodeDelta stores the first element as-is (origin 0) and every later
// element as the difference from its predecessor.
func encodeDelta(in Array) (Array, Delta, error) {
	vs, ok := asInt64s(in)
	if !ok {
		return nil, Delta{}, fmt.Errorf("%w: Delta requires an integer input, got %s", errs.ErrEncodingParameter, in.DataType())
	}

	diffs := make([]int64, len(vs))
	prev := int64(0)
	for i, v := range vs {
		diffs[i] = v - prev
		prev = v
	}

	return fitInts(diffs), Delta{Origin: 0, SrcType: in.DataType()}, nil
}
