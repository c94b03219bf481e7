// Package bitplane converts between integers and bit-plane tensors, and between plain
// binary and reflected-binary (Gray) code.
//
// A Tensor has the shape (batch, dims, width) and stores one bit per byte, most
// significant bit first. Lane (item, dim) holds the width bits of one coordinate.
// The flattened form of an item interleaves its lanes bit-major: flat position
// k*dims + d is bit k of lane d. That ordering makes the most significant bits of
// every axis lead the curve index.
package bitplane

import (
	"fmt"

	"github.com/arloliu/hilbert/errs"
	"github.com/arloliu/hilbert/format"
	"github.com/arloliu/hilbert/internal/pool"
)

// Tensor is an exclusively owned bit-plane working set for one transform call.
//
// Note: Tensor is NOT thread-safe as a whole, but distinct items may be mutated
// from different goroutines because items never share storage.
type Tensor struct {
	bits    []byte
	batch   int
	dims    int
	width   int
	release func()
}

// Validate checks a (dims, width) pair against the supported limits.
//
// Returns errs.ErrInvalidWidth if width is outside [1, format.MaxBits], dims is not
// positive, or dims*width exceeds format.MaxIndexBits.
func Validate(dims, width int) error {
	if width < 1 || width > format.MaxBits {
		return fmt.Errorf("%w: %d bits per axis, want 1..%d", errs.ErrInvalidWidth, width, format.MaxBits)
	}
	if dims < 1 {
		return fmt.Errorf("%w: %d dimensions, want at least 1", errs.ErrInvalidWidth, dims)
	}
	if dims*width > format.MaxIndexBits {
		return fmt.Errorf("%w: %d dims x %d bits exceeds %d index bits",
			errs.ErrInvalidWidth, dims, width, format.MaxIndexBits)
	}

	return nil
}

// NewTensor returns a zeroed tensor backed by pooled storage.
// Call Release when the tensor is no longer needed.
func NewTensor(batch, dims, width int) (*Tensor, error) {
	if err := Validate(dims, width); err != nil {
		return nil, err
	}
	if batch < 0 {
		return nil, fmt.Errorf("%w: negative batch size %d", errs.ErrOutOfRange, batch)
	}

	bits, release := pool.GetByteSlice(batch * dims * width)

	return &Tensor{
		bits:    bits,
		batch:   batch,
		dims:    dims,
		width:   width,
		release: release,
	}, nil
}

// Release hands the backing storage back to the pool. The tensor must not be used
// afterwards. Calling Release more than once is safe.
func (t *Tensor) Release() {
	if t.release == nil {
		return
	}
	t.release()
	t.release = nil
	t.bits = nil
}

// Batch returns the number of items.
func (t *Tensor) Batch() int { return t.batch }

// Dims returns the number of lanes per item.
func (t *Tensor) Dims() int { return t.dims }

// Width returns the number of bits per lane.
func (t *Tensor) Width() int { return t.width }

// Lane returns the width bits of coordinate dim of item, MSB first.
// The returned slice aliases the tensor.
func (t *Tensor) Lane(item, dim int) []byte {
	off := (item*t.dims + dim) * t.width
	return t.bits[off : off+t.width : off+t.width]
}

// Bit returns bit of lane (item, dim). Bit 0 is the most significant.
func (t *Tensor) Bit(item, dim, bit int) byte {
	return t.bits[(item*t.dims+dim)*t.width+bit]
}

// Flatten appends the interleaved bit sequence of item to dst.
func (t *Tensor) Flatten(item int, dst []byte) []byte {
	row := t.row(item)
	for k := 0; k < t.width; k++ {
		for d := 0; d < t.dims; d++ {
			dst = append(dst, row[d*t.width+k])
		}
	}

	return dst
}

// Unflatten overwrites item with the interleaved bit sequence src.
// src must hold exactly dims*width bits.
func (t *Tensor) Unflatten(item int, src []byte) {
	row := t.row(item)
	for p, b := range src {
		k, d := p/t.dims, p%t.dims
		row[d*t.width+k] = b
	}
}

// Pack returns the flattened bits of item as an integer, first bit most significant.
func (t *Tensor) Pack(item int) uint64 {
	row := t.row(item)

	var v uint64
	for k := 0; k < t.width; k++ {
		for d := 0; d < t.dims; d++ {
			v = v<<1 | uint64(row[d*t.width+k])
		}
	}

	return v
}

// ToGray replaces the flattened bit sequence of every item in [start, end) with its
// Gray code.
func (t *Tensor) ToGray(start, end int) {
	var buf [format.MaxIndexBits]byte
	for item := start; item < end; item++ {
		flat := t.Flatten(item, buf[:0])
		BinaryToGrayInPlace(flat)
		t.Unflatten(item, flat)
	}
}

// FromGray is the inverse of ToGray.
func (t *Tensor) FromGray(start, end int) {
	var buf [format.MaxIndexBits]byte
	for item := start; item < end; item++ {
		flat := t.Flatten(item, buf[:0])
		GrayToBinaryInPlace(flat)
		t.Unflatten(item, flat)
	}
}

func (t *Tensor) row(item int) []byte {
	size := t.dims * t.width
	off := item * size

	return t.bits[off : off+size : off+size]
}
