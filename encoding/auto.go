package encoding

import "math"

// AutoChain picks an encoding chain for arr by probing the data:
//
//   - integer payloads with long runs get RunLength, monotonic-leaning
//     payloads get Delta, and both are followed by IntegerPacking with an
//     auto-selected width; payloads with values beyond the Int32 range stay
//     on the plain passthrough, which IntegerPacking cannot represent;
//   - string payloads get a StringArray whose index array reuses the same
//     probe;
//   - float payloads stay on the lossless ByteArray passthrough, FixedPoint
//     being lossy is only ever applied on explicit request.
//
// The result is a valid chain shape for Encode; all data-dependent
// parameters are filled in by Encode itself.
func AutoChain(arr Array) []Step {
	switch v := arr.(type) {
	case Strings:
		indices := indexProbe(v)
		return []Step{StringArray{DataEncoding: append(intChain(indices), ByteArray{})}}
	case Numbers[float32], Numbers[float64]:
		return []Step{ByteArray{}}
	default:
		vs, ok := asInt64s(arr)
		if !ok {
			return DefaultChain(arr)
		}

		return append(intChain(vs), ByteArray{})
	}
}

func intChain(vs []int64) []Step {
	if !fitsInt32(vs) {
		// IntegerPacking unpacks to 32-bit values; wider payloads stay on
		// the plain passthrough.
		return nil
	}

	steps := make([]Step, 0, 3)
	if runsProfitable(vs) {
		steps = append(steps, RunLength{})
	} else if mostlyMonotonic(vs) {
		steps = append(steps, Delta{})
	}

	return append(steps, IntegerPacking{})
}

func fitsInt32(vs []int64) bool {
	for _, v := range vs {
		if v < math.MinInt32 || v > math.MaxInt32 {
			return false
		}
	}

	return true
}

// runsProfitable reports whether run-length pairs take fewer entries than
// the values themselves.
func runsProfitable(vs []int64) bool {
	if len(vs) < 4 {
		return false
	}
	runs := 0
	for i := 0; i < len(vs); {
		j := i + 1
		for j < len(vs) && vs[j] == vs[i] {
			j++
		}
		runs++
		i = j
	}

	return 2*runs < len(vs)
}

// mostlyMonotonic reports whether at least three quarters of the adjacent
// deltas keep the same sign, the shape where delta encoding shrinks values.
func mostlyMonotonic(vs []int64) bool {
	if len(vs) < 4 {
		return false
	}
	up, down := 0, 0
	for i := 1; i < len(vs); i++ {
		switch {
		case vs[i] > vs[i-1]:
			up++
		case vs[i] < vs[i-1]:
			down++
		}
	}
	n := len(vs) - 1

	return 4*up >= 3*n || 4*down >= 3*n
}

// indexProbe reproduces the dictionary index array a StringArray encode
// would emit, so the numeric probe sees the data the nested chain will
// actually encode.
func indexProbe(rows Strings) []int64 {
	byValue := make(map[string]int64, len(rows))
	indices := make([]int64, len(rows))
	for i, v := range rows {
		if v == "" {
			indices[i] = -1
			continue
		}
		idx, seen := byValue[v]
		if !seen {
			idx = int64(len(byValue))
			byValue[v] = idx
		}
		indices[i] = idx
	}

	return indices
}
