// Package endian provides byte order utilities for binary encoding and decoding.
//
// It combines the ByteOrder and AppendByteOrder interfaces from
// encoding/binary into a single EndianEngine interface so that codecs can
// both read fixed-width values and append them without an intermediate
// scratch buffer.
//
// BinaryCIF stores all multi-byte values little-endian, so
// GetLittleEndianEngine is the engine used throughout this module; the
// big-endian engine exists for tests and for reuse of the codec outside the
// BinaryCIF wire format.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
//
// It is satisfied by binary.LittleEndian and binary.BigEndian, making it
// fully compatible with existing standard-library code. The returned
// engines are immutable, stateless and safe for concurrent use.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
