package encoding

import (
	"fmt"

	"github.com/structbio/bcif/errs"
	"github.com/structbio/bcif/format"
)

func decodeRunLength(in Array, s RunLength) (Array, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	pairs, ok := asInt64s(in)
	if !ok {
		return nil, fmt.Errorf("%w: RunLength requires an integer input, got %s", errs.ErrEncodingParameter, in.DataType())
	}
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("%w: RunLength input length %d is odd", errs.ErrEncodingParameter, len(pairs))
	}

	total := 0
	for i := 1; i < len(pairs); i += 2 {
		n := pairs[i]
		if n <= 0 {
			return nil, fmt.Errorf("%w: RunLength run of %d", errs.ErrEncodingParameter, n)
		}
		total += int(n)
	}
	if s.SrcSize > 0 && total != int(s.SrcSize) {
		return nil, fmt.Errorf("%w: RunLength expands to %d values, srcSize declares %d",
			errs.ErrEncodingParameter, total, s.SrcSize)
	}

	out := make([]int64, 0, total)
	for i := 0; i < len(pairs); i += 2 {
		value, run := pairs[i], pairs[i+1]
		for j := int64(0); j < run; j++ {
			out = append(out, value)
		}
	}

	dst := s.SrcType
	if dst == 0 {
		dst = format.TypeInt32
	}

	return makeNumbers(dst, out)
}

// encodeRunLength groups maximal runs of equal adjacent elements into
// flattened (value, run length) pairs.
func encodeRunLength(in Array) (Array, RunLength, error) {
	vs, ok := asInt64s(in)
	if !ok {
		return nil, RunLength{}, fmt.Errorf("%w: RunLength requires an integer input, got %s", errs.ErrEncodingParameter, in.DataType())
	}

	pairs := make([]int64, 0, 8)
	for i := 0; i < len(vs); {
		j := i + 1
		for j < len(vs) && vs[j] == vs[i] {
			j++
		}
		pairs = append(pairs, vs[i], int64(j-i))
		i = j
	}

	step := RunLength{SrcType: in.DataType(), SrcSize: int32(len(vs))}

	return fitInts(pairs), step, nil
}
