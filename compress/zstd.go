package compress

// ZstdCodec handles the Zstandard container.
//
// Two backends exist behind build tags: valyala/gozstd when cgo is
// available and the pure-Go klauspost/compress/zstd otherwise. Both produce
// standard zstd frames and are wire-compatible with each other.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}

// NewZstdCodec creates a new Zstandard codec with default settings.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}
