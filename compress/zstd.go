package compress

import "github.com/arloliu/hilbert/format"

// ZstdCompressor provides Zstandard compression for trace payloads.
//
// The default build uses the pure Go klauspost/compress implementation. Building
// with cgo enabled and the gozstd tag switches to the valyala/gozstd bindings; both
// produce standard zstd frames and can read each other's output.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a Zstd compressor.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

// Type returns format.CompressionZstd.
func (c ZstdCompressor) Type() format.CompressionType {
	return format.CompressionZstd
}
