// Package hilbert converts between positions along an n-dimensional Hilbert curve
// and the grid points they visit, using John Skilling's transpose algorithm.
//
// The curve covers a grid with dims dimensions and 2^bits cells per axis. Every
// cell is visited exactly once, and consecutive cells differ by one step along a
// single axis, so nearby indices map to nearby points.
//
// # Core Features
//
//   - Any number of dimensions, 1 to 8 bits per axis, indices up to 64 bits
//   - Batched encode and decode with optional goroutine fan-out
//   - Step observers exposing the intermediate coordinates of every decode step
//   - CSV snapshot export and compact binary traces for animation tools
//
// # Basic Usage
//
// Encoding points:
//
//	import "github.com/arloliu/hilbert"
//
//	idx, err := hilbert.Encode(hilbert.Point{3, 5}, 2, 3)
//	if err != nil {
//	    return err
//	}
//
// Decoding indices:
//
//	points, err := hilbert.Decode([]uint64{0, 1, 2, 3}, 2, 1)
//	// points: [[0 0] [0 1] [1 1] [1 0]]
//
// Walking the whole curve:
//
//	for idx, p := range hilbert.Walk(2, 3) {
//	    fmt.Println(idx, p)
//	}
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the curve package.
// For repeated calls on the same curve shape create a Codec once with NewCodec.
// The snapshot and trace packages build on the observer interface to persist
// decode steps.
package hilbert

import (
	"iter"

	"github.com/arloliu/hilbert/curve"
)

// Point is a cell of the grid, one coordinate per dimension.
type Point = curve.Point

// Step labels one decode step with 1-based bit and dimension numbers.
type Step = curve.Step

// Codec converts between points and curve indices for one curve shape.
type Codec = curve.Codec

// CodecOption configures a Codec.
type CodecOption = curve.CodecOption

// Observer receives the intermediate coordinates of a decode after every step.
type Observer = curve.Observer

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc = curve.ObserverFunc

// NewCodec creates a codec for a dims-dimensional curve with bits bits per axis.
func NewCodec(dims, bits int, opts ...CodecOption) (*Codec, error) {
	return curve.NewCodec(dims, bits, opts...)
}

// WithObserver reports every decode step to obs.
func WithObserver(obs Observer) CodecOption {
	return curve.WithObserver(obs)
}

// WithWorkers splits large batches across n goroutines, n <= 0 selects GOMAXPROCS.
func WithWorkers(n int) CodecOption {
	return curve.WithWorkers(n)
}

// WithParallelThreshold sets the smallest batch size that is split across workers.
func WithParallelThreshold(n int) CodecOption {
	return curve.WithParallelThreshold(n)
}

// Encode returns the curve index of point on a dims x bits curve.
func Encode(point Point, dims, bits int) (uint64, error) {
	codec, err := curve.NewCodec(dims, bits)
	if err != nil {
		return 0, err
	}

	return codec.EncodeOne(point)
}

// EncodeBatch returns the curve index of every point on a dims x bits curve.
func EncodeBatch(points []Point, dims, bits int, opts ...CodecOption) ([]uint64, error) {
	codec, err := curve.NewCodec(dims, bits, opts...)
	if err != nil {
		return nil, err
	}

	return codec.Encode(points)
}

// Decode returns the point at every curve index of a dims x bits curve.
//
// Pass WithObserver to receive the intermediate coordinates of every step.
func Decode(indices []uint64, dims, bits int, opts ...CodecOption) ([]Point, error) {
	codec, err := curve.NewCodec(dims, bits, opts...)
	if err != nil {
		return nil, err
	}

	return codec.Decode(indices)
}

// walkChunk is the number of indices Walk decodes per batch.
const walkChunk = 4096

// Walk iterates every cell of a dims x bits curve in curve order, yielding the
// index and point of each cell.
//
// Cells are decoded in batches, so arbitrarily large curves can be walked without
// materializing the whole path. An invalid shape yields nothing.
func Walk(dims, bits int) iter.Seq2[uint64, Point] {
	return func(yield func(uint64, Point) bool) {
		codec, err := curve.NewCodec(dims, bits)
		if err != nil {
			return
		}

		maxIndex := codec.MaxIndex()
		indices := make([]uint64, 0, walkChunk)
		for start := uint64(0); ; start += walkChunk {
			indices = indices[:0]
			for idx := start; len(indices) < walkChunk; idx++ {
				indices = append(indices, idx)
				if idx == maxIndex {
					break
				}
			}

			points, err := codec.Decode(indices)
			if err != nil {
				return
			}
			for i, p := range points {
				if !yield(indices[i], p) {
					return
				}
			}

			if indices[len(indices)-1] == maxIndex {
				return
			}
		}
	}
}
