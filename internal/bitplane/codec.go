package bitplane

import (
	"fmt"

	"github.com/arloliu/hilbert/errs"
	"github.com/arloliu/hilbert/format"
)

// ToBitPlanes unpacks the lowest dims*width bits of every value, MSB first, into a
// tensor of dims lanes with width bits each. Higher bits are ignored; range checks
// belong to the caller.
//
// The returned tensor uses pooled storage and must be released by the caller.
//
// Returns errs.ErrInvalidWidth for unsupported (dims, width) pairs.
func ToBitPlanes(values []uint64, dims, width int) (*Tensor, error) {
	t, err := NewTensor(len(values), dims, width)
	if err != nil {
		return nil, err
	}

	total := dims * width
	var buf [format.MaxIndexBits]byte
	for item, v := range values {
		t.Unflatten(item, UnpackBits(v, total, buf[:0]))
	}

	return t, nil
}

// FromCoordinates builds a tensor from row-major coordinates: coords[i*dims+d] is
// coordinate d of item i. Each coordinate contributes its lowest width bits.
//
// Returns errs.ErrDimensionMismatch if len(coords) is not a multiple of dims.
func FromCoordinates(coords []uint32, dims, width int) (*Tensor, error) {
	if err := Validate(dims, width); err != nil {
		return nil, err
	}
	if len(coords)%dims != 0 {
		return nil, fmt.Errorf("%w: %d coordinates do not split into %d dimensions",
			errs.ErrDimensionMismatch, len(coords), dims)
	}

	t, err := NewTensor(len(coords)/dims, dims, width)
	if err != nil {
		return nil, err
	}

	for i, c := range coords {
		lane := t.bits[i*width : (i+1)*width]
		for k := range lane {
			lane[k] = byte(c>>(width-1-k)) & 1
		}
	}

	return t, nil
}

// FromBitPlanes packs every lane of t back into an integer coordinate and returns the
// coordinates row-major (batch*dims values).
//
// Returns errs.ErrDimensionMismatch if t has a different lane count than dims, and
// errs.ErrInvalidWidth if its lane width differs from width.
func FromBitPlanes(t *Tensor, dims, width int) ([]uint32, error) {
	if t.dims != dims {
		return nil, fmt.Errorf("%w: tensor has %d dimensions, want %d", errs.ErrDimensionMismatch, t.dims, dims)
	}
	if t.width != width {
		return nil, fmt.Errorf("%w: tensor has %d bits per axis, want %d", errs.ErrInvalidWidth, t.width, width)
	}

	coords := make([]uint32, t.batch*t.dims)
	for i := range coords {
		coords[i] = packLane(t.bits[i*width : (i+1)*width])
	}

	return coords, nil
}

// packLane left-pads lane to format.MaxBits and packs it, MSB first.
func packLane(lane []byte) uint32 {
	var padded [format.MaxBits]byte
	copy(padded[format.MaxBits-len(lane):], lane)

	var v uint32
	for _, b := range padded {
		v = v<<1 | uint32(b)
	}

	return v
}

// UnpackBits appends the lowest n bits of v to dst, most significant first.
func UnpackBits(v uint64, n int, dst []byte) []byte {
	for p := n - 1; p >= 0; p-- {
		dst = append(dst, byte(v>>p)&1)
	}

	return dst
}

// PackBits packs a bit sequence into an integer, first bit most significant.
func PackBits(bits []byte) uint64 {
	var v uint64
	for _, b := range bits {
		v = v<<1 | uint64(b&1)
	}

	return v
}
