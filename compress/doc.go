// Package compress provides the payload codecs of hilbert trace files.
//
// A trace payload stores one byte per coordinate for every decode step. Consecutive
// steps differ in few coordinates, so general-purpose compressors shrink payloads
// well. The codec used is recorded in the trace header as a format.CompressionType.
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): payload stored as is
//   - Zstd (format.CompressionZstd): best ratio, pooled klauspost encoders
//   - S2 (format.CompressionS2): balanced speed and ratio
//   - LZ4 (format.CompressionLZ4): fastest decompression
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	packed, _ := codec.Compress(payload)
//	payload, _ = codec.Decompress(packed, len(payload))
//
// # Build Tags
//
// Zstd defaults to the pure Go implementation from github.com/klauspost/compress.
// Building with cgo and the gozstd tag uses github.com/valyala/gozstd instead:
//
//	go build -tags gozstd ./...
//
// # Thread Safety
//
// All codecs are stateless values and safe for concurrent use; encoder state is
// kept in sync.Pools.
package compress
