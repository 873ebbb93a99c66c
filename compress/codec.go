// Package compress provides whole-file container codecs for BinaryCIF
// payloads. Compression is not part of the BinaryCIF format itself, but
// files are commonly stored and served gzip-compressed; the reader detects
// the container by its magic bytes and decompresses transparently.
package compress

import (
	"bytes"
	"fmt"

	"github.com/structbio/bcif/errs"
	"github.com/structbio/bcif/format"
)

// Compressor compresses a fully-buffered payload.
//
// The returned slice is newly allocated and owned by the caller; the input
// slice is not modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor is the inverse of Compressor for the same container format.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions of a container format.
type Codec interface {
	Compressor
	Decompressor
}

// Container magic bytes.
var (
	magicGzip = []byte{0x1f, 0x8b}
	magicZstd = []byte{0x28, 0xb5, 0x2f, 0xfd}
	magicLZ4  = []byte{0x04, 0x22, 0x4d, 0x18}
	magicS2   = []byte{0xff, 0x06, 0x00, 0x00}
)

// Detect identifies the container compression of data by its magic bytes.
// A bare msgpack payload (a BinaryCIF file always starts with a msgpack
// map) matches none of the magics and reports CompressionNone.
func Detect(data []byte) format.CompressionType {
	switch {
	case bytes.HasPrefix(data, magicGzip):
		return format.CompressionGzip
	case bytes.HasPrefix(data, magicZstd):
		return format.CompressionZstd
	case bytes.HasPrefix(data, magicLZ4):
		return format.CompressionLZ4
	case bytes.HasPrefix(data, magicS2):
		return format.CompressionS2
	default:
		return format.CompressionNone
	}
}

// ForType returns the codec for the given compression type.
func ForType(t format.CompressionType) (Codec, error) {
	switch t {
	case format.CompressionNone:
		return NewNoOpCodec(), nil
	case format.CompressionGzip:
		return NewGzipCodec(), nil
	case format.CompressionZstd:
		return NewZstdCodec(), nil
	case format.CompressionS2:
		return NewS2Codec(), nil
	case format.CompressionLZ4:
		return NewLZ4Codec(), nil
	default:
		return nil, fmt.Errorf("%w: unknown compression type %d", errs.ErrUsage, t)
	}
}
