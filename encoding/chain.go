package encoding

import (
	"fmt"

	"github.com/structbio/bcif/errs"
)

// Decode reconstructs the typed payload from raw bytes by undoing the steps
// in reverse application order: the last step of the chain is the one whose
// output is raw, so it is undone first. The terminal step must be a
// ByteArray or StringArray, the only steps that touch raw bytes.
func Decode(raw []byte, steps []Step) (Array, error) {
	if len(steps) == 0 {
		return nil, fmt.Errorf("%w: empty encoding chain", errs.ErrFormat)
	}

	var cur Array
	for i := len(steps) - 1; i >= 0; i-- {
		var err error
		switch s := steps[i].(type) {
		case ByteArray:
			if cur != nil {
				return nil, fmt.Errorf("%w: ByteArray must be the terminal step of its chain", errs.ErrEncodingParameter)
			}
			cur, err = decodeByteArray(raw, s)
		case StringArray:
			if cur != nil {
				return nil, fmt.Errorf("%w: StringArray must be the terminal step of its chain", errs.ErrEncodingParameter)
			}
			cur, err = decodeStringArray(raw, s)
		case FixedPoint:
			cur, err = withInput(cur, s, decodeFixedPoint)
		case IntervalQuantization:
			cur, err = withInput(cur, s, decodeIntervalQuantization)
		case RunLength:
			cur, err = withInput(cur, s, decodeRunLength)
		case Delta:
			cur, err = withInput(cur, s, decodeDelta)
		case IntegerPacking:
			cur, err = withInput(cur, s, decodeIntegerPacking)
		}
		if err != nil {
			return nil, err
		}
	}
	if cur == nil {
		return nil, fmt.Errorf("%w: chain never decodes its raw bytes (missing ByteArray or StringArray step)",
			errs.ErrEncodingParameter)
	}

	return cur, nil
}

func withInput[S Step](cur Array, s S, decode func(Array, S) (Array, error)) (Array, error) {
	if cur == nil {
		return nil, fmt.Errorf("%w: %s cannot be the terminal step of a chain, it does not operate on raw bytes",
			errs.ErrEncodingParameter, s.Kind())
	}

	return decode(cur, s)
}

// Encode applies the steps in application order to arr and returns the raw
// payload together with the fully-parameterized steps: sizes, source types,
// dictionaries and packing widths the encoder chose are filled in so the
// returned chain decodes the payload back to arr. An empty chain defaults
// to the conservative passthrough: a single ByteArray for numeric payloads
// or a single StringArray for string payloads.
func Encode(arr Array, steps []Step) ([]byte, []Step, error) {
	if arr == nil {
		return nil, nil, fmt.Errorf("%w: nil array", errs.ErrUsage)
	}
	if len(steps) == 0 {
		steps = DefaultChain(arr)
	}

	completed := make([]Step, len(steps))
	cur := arr
	var raw []byte
	for i, step := range steps {
		if raw != nil {
			return nil, nil, fmt.Errorf("%w: %s follows the terminal step of its chain",
				errs.ErrEncodingParameter, step.Kind())
		}

		var err error
		switch s := step.(type) {
		case ByteArray:
			raw, completed[i], err = encodeByteArray(cur, s)
		case StringArray:
			raw, completed[i], err = encodeStringArray(cur, s)
		case FixedPoint:
			cur, completed[i], err = encodeFixedPoint(cur, s)
		case IntervalQuantization:
			cur, completed[i], err = encodeIntervalQuantization(cur, s)
		case RunLength:
			cur, completed[i], err = encodeRunLength(cur)
		case Delta:
			cur, completed[i], err = encodeDelta(cur)
		case IntegerPacking:
			cur, completed[i], err = encodeIntegerPacking(cur, s)
		}
		if err != nil {
			return nil, nil, err
		}
	}
	if raw == nil {
		return nil, nil, fmt.Errorf("%w: chain never reaches raw bytes (missing ByteArray or StringArray step)",
			errs.ErrEncodingParameter)
	}

	return raw, completed, nil
}

// DefaultChain returns the conservative no-compression chain for arr: a
// plain StringArray for strings, a plain ByteArray otherwise.
func DefaultChain(arr Array) []Step {
	if _, ok := arr.(Strings); ok {
		return []Step{StringArray{}}
	}

	return []Step{ByteArray{}}
}
