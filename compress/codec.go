package compress

import (
	"fmt"

	"github.com/arloliu/hilbert/format"
)

// Compressor compresses a complete trace payload.
//
// Memory management:
//   - The returned slice is owned by the caller unless documented otherwise
//   - The input slice is not modified
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload produced by the matching Compressor.
//
// size is the uncompressed length recorded next to the payload. Implementations
// use it to allocate the output once; callers must still verify the returned
// length since corrupted input may decode to a different size.
type Decompressor interface {
	Decompress(data []byte, size int) ([]byte, error)
}

// Codec combines both directions and reports the compression type it implements.
type Codec interface {
	Compressor
	Decompressor
	Type() format.CompressionType
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the built-in Codec for compressionType.
//
// Built-in codecs are stateless values backed by pooled encoders and are safe
// for concurrent use.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
