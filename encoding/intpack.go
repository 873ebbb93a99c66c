package encoding

import (
	"fmt"
	"math"

	"github.com/structbio/bcif/errs"
	"github.com/structbio/bcif/format"
)

// packingBounds returns the sentinel values of a packed width: the upper
// sentinel chains positive magnitudes, the lower sentinel (signed widths
// only) chains negative ones.
func packingBounds(byteCount int32, isUnsigned bool) (upper, lower int64) {
	bits := uint(8 * byteCount)
	if isUnsigned {
		return int64(1)<<bits - 1, 0
	}
	upper = int64(1)<<(bits-1) - 1

	return upper, -upper - 1
}

func decodeIntegerPacking(in Array, s IntegerPacking) (Array, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	packed, ok := asInt64s(in)
	if !ok {
		return nil, fmt.Errorf("%w: IntegerPacking requires an integer input, got %s",
			errs.ErrEncodingParameter, in.DataType())
	}

	upper, lower := packingBounds(s.ByteCount, s.IsUnsigned)
	out := make([]int64, 0, len(packed))
	acc := int64(0)
	chaining := false
	for _, v := range packed {
		if v == upper || (!s.IsUnsigned && v == lower) {
			acc += v
			chaining = true
			continue
		}
		out = append(out, acc+v)
		acc = 0
		chaining = false
	}
	if chaining {
		return nil, fmt.Errorf("%w: IntegerPacking input ends inside a sentinel chain", errs.ErrEncodingParameter)
	}
	if s.SrcSize > 0 && len(out) != int(s.SrcSize) {
		return nil, fmt.Errorf("%w: IntegerPacking unpacked to %d values, srcSize declares %d",
			errs.ErrEncodingParameter, len(out), s.SrcSize)
	}

	return makeNumbers(format.TypeInt32, out)
}

// encodeIntegerPacking packs each integer into ByteCount-wide entries,
// emitting sentinel entries until the remaining magnitude fits. A zero
// ByteCount selects the width with the smallest packed byte size, and
// unsignedness is inferred from the data.
func encodeIntegerPacking(in Array, s IntegerPacking) (Array, IntegerPacking, error) {
	vs, ok := asInt64s(in)
	if !ok {
		return nil, s, fmt.Errorf("%w: IntegerPacking requires an integer input, got %s",
			errs.ErrEncodingParameter, in.DataType())
	}
	for _, v := range vs {
		if v < math.MinInt32 || v > math.MaxInt32 {
			return nil, s, fmt.Errorf("%w: IntegerPacking value %d does not fit Int32", errs.ErrEncodingParameter, v)
		}
	}

	completed := s
	if completed.ByteCount == 0 {
		completed.IsUnsigned = !hasNegative(vs)
		completed.ByteCount = bestPackingWidth(vs, completed.IsUnsigned)
	}
	if err := completed.Validate(); err != nil {
		return nil, s, err
	}
	if completed.IsUnsigned && hasNegative(vs) {
		return nil, s, fmt.Errorf("%w: IntegerPacking cannot pack negative values unsigned", errs.ErrEncodingParameter)
	}
	completed.SrcSize = int32(len(vs))

	packed := packInts(vs, completed.ByteCount, completed.IsUnsigned)
	out, err := makePacked(packed, completed.ByteCount, completed.IsUnsigned)
	if err != nil {
		return nil, s, err
	}

	return out, completed, nil
}

func hasNegative(vs []int64) bool {
	for _, v := range vs {
		if v < 0 {
			return true
		}
	}

	return false
}

// bestPackingWidth picks the width with the smallest total packed size,
// preferring the narrower width on ties.
func bestPackingWidth(vs []int64, isUnsigned bool) int32 {
	best := int32(4)
	bestSize := 4 * len(vs)
	for _, width := range []int32{2, 1} {
		size := int(width) * packedLen(vs, width, isUnsigned)
		if size <= bestSize {
			best = width
			bestSize = size
		}
	}

	return best
}

func packedLen(vs []int64, byteCount int32, isUnsigned bool) int {
	upper, lower := packingBounds(byteCount, isUnsigned)
	n := 0
	for _, v := range vs {
		if v >= 0 {
			n += int(v/upper) + 1
		} else {
			n += int(v/lower) + 1
		}
	}

	return n
}

func packInts(vs []int64, byteCount int32, isUnsigned bool) []int64 {
	upper, lower := packingBounds(byteCount, isUnsigned)
	out := make([]int64, 0, packedLen(vs, byteCount, isUnsigned))
	for _, v := range vs {
		for v >= upper {
			out = append(out, upper)
			v -= upper
		}
		for !isUnsigned && v <= lower {
			out = append(out, lower)
			v -= lower
		}
		out = append(out, v)
	}

	return out
}

func makePacked(vs []int64, byteCount int32, isUnsigned bool) (Array, error) {
	var t format.DataType
	switch {
	case byteCount == 1 && isUnsigned:
		t = format.TypeUint8
	case byteCount == 1:
		t = format.TypeInt8
	case byteCount == 2 && isUnsigned:
		t = format.TypeUint16
	case byteCount == 2:
		t = format.TypeInt16
	case isUnsigned:
		t = format.TypeUint32
	default:
		t = format.TypeInt32
	}

	return makeNumbers(t, vs)
}
