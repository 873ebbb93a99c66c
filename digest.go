package bcif

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/structbio/bcif/encoding"
)

// digestArray hashes the decoded content of an array, prefixed with its
// element type so payloads of different types never collide trivially.
func digestArray(arr encoding.Array) uint64 {
	h := xxhash.New()
	var buf [8]byte

	binary.LittleEndian.PutUint32(buf[:4], uint32(arr.DataType()))
	_, _ = h.Write(buf[:4])

	switch vs := arr.(type) {
	case encoding.Strings:
		for _, s := range vs {
			binary.LittleEndian.PutUint64(buf[:], uint64(len(s)))
			_, _ = h.Write(buf[:])
			_, _ = h.WriteString(s)
		}
	case encoding.Numbers[float32]:
		for _, v := range vs {
			binary.LittleEndian.PutUint32(buf[:4], math.Float32bits(v))
			_, _ = h.Write(buf[:4])
		}
	case encoding.Numbers[float64]:
		for _, v := range vs {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
			_, _ = h.Write(buf[:])
		}
	case encoding.Numbers[uint64]:
		for _, v := range vs {
			binary.LittleEndian.PutUint64(buf[:], v)
			_, _ = h.Write(buf[:])
		}
	default:
		// The remaining integer payloads all widen to int64.
		ints, _ := encoding.Ints(arr)
		for _, v := range ints {
			binary.LittleEndian.PutUint64(buf[:], uint64(v))
			_, _ = h.Write(buf[:])
		}
	}

	return h.Sum64()
}
