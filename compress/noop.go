package compress

import "github.com/arloliu/hilbert/format"

// NoOpCompressor stores payloads as they are.
//
// Both directions return the input slice itself without copying, so callers must
// not modify the input while the result is in use.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Type returns format.CompressionNone.
func (c NoOpCompressor) Type() format.CompressionType {
	return format.CompressionNone
}

// Compress returns data unchanged.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data unchanged; size is ignored.
func (c NoOpCompressor) Decompress(data []byte, _ int) ([]byte, error) {
	return data, nil
}
