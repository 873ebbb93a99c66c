package encoding

import (
	"fmt"
	"math"

	"github.com/structbio/bcif/errs"
	"github.com/structbio/bcif/format"
)

func decodeIntervalQuantization(in Array, s IntervalQuantization) (Array, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	vs, ok := asInt64s(in)
	if !ok {
		return nil, fmt.Errorf("%w: IntervalQuantization requires an integer input, got %s",
			errs.ErrEncodingParameter, in.DataType())
	}

	delta := (s.Max - s.Min) / float64(s.NumSteps-1)
	out := make([]float64, len(vs))
	for i, v := range vs {
		if v < 0 || v >= int64(s.NumSteps) {
			return nil, fmt.Errorf("%w: IntervalQuantization level %d outside [0, %d)",
				errs.ErrEncodingParameter, v, s.NumSteps)
		}
		out[i] = s.Min + float64(v)*delta
	}

	dst := s.SrcType
	if dst == 0 {
		dst = format.TypeFloat64
	}

	return makeFloats(dst, out)
}

// encodeIntervalQuantization maps each float onto the nearest of NumSteps
// levels spanning [Min, Max], clamping values outside the interval.
func encodeIntervalQuantization(in Array, s IntervalQuantization) (Array, IntervalQuantization, error) {
	if err := s.Validate(); err != nil {
		return nil, s, err
	}
	if s.Max == s.Min {
		return nil, s, fmt.Errorf("%w: IntervalQuantization cannot encode with min == max == %v",
			errs.ErrEncodingParameter, s.Min)
	}
	fs, ok := asFloat64s(in)
	if !ok {
		return nil, s, fmt.Errorf("%w: IntervalQuantization requires a float input, got %s",
			errs.ErrEncodingParameter, in.DataType())
	}

	delta := (s.Max - s.Min) / float64(s.NumSteps-1)
	out := make(Numbers[int32], len(fs))
	for i, f := range fs {
		level := math.Round((f - s.Min) / delta)
		if level < 0 || math.IsNaN(level) {
			level = 0
		} else if level > float64(s.NumSteps-1) {
			level = float64(s.NumSteps - 1)
		}
		out[i] = int32(level)
	}

	completed := s
	completed.SrcType = in.DataType()

	return out, completed, nil
}
