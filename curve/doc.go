// Package curve maps points of a d-dimensional grid to positions along a Hilbert curve
// and back, using John Skilling's transpose algorithm.
//
// # Overview
//
// A grid with d dimensions and b bits per axis has 2^(d*b) cells. The Hilbert curve
// visits every cell exactly once, and consecutive cells along the curve always differ
// by exactly one in exactly one coordinate. The package converts between:
//
//   - Points: one uint32 coordinate per dimension, each in [0, 2^b-1]
//   - Indices: a uint64 curve position in [0, 2^(d*b)-1]
//
// Both directions operate on batches. Each batch item is transformed independently,
// so a batch result always equals the concatenation of single-item results.
//
// # Limits
//
// Bits per axis must be in [1, 8] and d*b must not exceed 64 so that an index fits in
// a uint64. Shapes outside these limits are rejected with errs.ErrInvalidWidth.
//
// # Usage
//
//	codec, err := curve.NewCodec(2, 3)
//	if err != nil {
//	    return err
//	}
//
//	indices, _ := codec.Encode([]curve.Point{{0, 0}, {7, 0}})
//	points, _ := codec.Decode(indices)
//
// # Observing Decode Steps
//
// WithObserver registers an Observer that receives a snapshot of every batch item
// after each decode step. Steps are labeled 1-based as (bit, dim) and arrive from
// (b, d) down to (1, 1). The snapshot package provides ready made observers that
// collect snapshots in memory or write them as CSV files.
//
// # Concurrency
//
// A Codec is immutable and safe for concurrent use. WithWorkers additionally splits a
// single large batch into contiguous chunks processed by separate goroutines; the
// results are identical to sequential processing.
package curve
