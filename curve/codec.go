package curve

import (
	"fmt"

	"github.com/arloliu/hilbert/errs"
	"github.com/arloliu/hilbert/internal/bitplane"
	"github.com/arloliu/hilbert/internal/options"
	"github.com/arloliu/hilbert/internal/parallel"
	"github.com/arloliu/hilbert/internal/pool"
	"github.com/arloliu/hilbert/internal/skilling"
)

// MaxPathLength is the largest number of cells Path will materialize.
const MaxPathLength = 1 << 24

// Codec maps points of a dims-dimensional grid with 2^bits cells per axis to their
// position along the Hilbert curve and back.
//
// A Codec is immutable after construction and safe for concurrent use. Every call
// owns its scratch storage exclusively for the duration of the call.
type Codec struct {
	*CodecConfig
}

// NewCodec creates a codec for a dims-dimensional curve with bits bits per axis.
//
// Returns errs.ErrInvalidWidth if bits is outside [1, 8], dims is not positive or
// dims*bits exceeds 64, or the error of the first failing option.
//
// Example:
//
//	codec, err := curve.NewCodec(2, 3)
//	if err != nil {
//	    return err
//	}
//	idx, _ := codec.EncodeOne(curve.Point{3, 5})
func NewCodec(dims, bits int, opts ...CodecOption) (*Codec, error) {
	config, err := newCodecConfig(dims, bits)
	if err != nil {
		return nil, err
	}
	if err := options.Apply(config, opts...); err != nil {
		return nil, err
	}

	return &Codec{CodecConfig: config}, nil
}

// Encode returns the curve index of every point.
//
// All points are validated before any work starts. Returns errs.ErrDimensionMismatch
// if a point does not have Dims coordinates and errs.ErrOutOfRange if a coordinate
// exceeds MaxCoordinate.
func (c *Codec) Encode(points []Point) ([]uint64, error) {
	if err := c.validatePoints(points); err != nil {
		return nil, err
	}

	coords, release := pool.GetUint32Slice(len(points) * c.dims)
	defer release()
	for i, p := range points {
		copy(coords[i*c.dims:], p)
	}

	tensor, err := bitplane.FromCoordinates(coords, c.dims, c.bits)
	if err != nil {
		return nil, err
	}
	defer tensor.Release()

	indices := make([]uint64, len(points))
	err = c.forChunks(len(points), func(start, end int) error {
		skilling.Run(tensor, skilling.Forward, start, end)
		tensor.FromGray(start, end)
		for i := start; i < end; i++ {
			indices[i] = tensor.Pack(i)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return indices, nil
}

// EncodeOne returns the curve index of a single point.
func (c *Codec) EncodeOne(p Point) (uint64, error) {
	indices, err := c.Encode([]Point{p})
	if err != nil {
		return 0, err
	}

	return indices[0], nil
}

// Decode returns the point at every curve index.
//
// All indices are validated before any work starts. Returns errs.ErrOutOfRange if an
// index exceeds MaxIndex. When an Observer is configured it receives a snapshot of
// the whole batch after every transform step.
func (c *Codec) Decode(indices []uint64) ([]Point, error) {
	if err := c.validateIndices(indices); err != nil {
		return nil, err
	}

	tensor, err := bitplane.ToBitPlanes(indices, c.dims, c.bits)
	if err != nil {
		return nil, err
	}
	defer tensor.Release()

	if c.observer != nil {
		tensor.ToGray(0, len(indices))
		var snapErr error
		skilling.RunObserved(tensor, skilling.Reverse, func(s skilling.Step, t *bitplane.Tensor) {
			if snapErr != nil {
				return
			}
			points, err := c.points(t)
			if err != nil {
				snapErr = err
				return
			}
			c.observer.Observe(Step{Bit: s.Bit + 1, Dim: s.Dim + 1}, points)
		})
		if snapErr != nil {
			return nil, snapErr
		}
	} else {
		err = c.forChunks(len(indices), func(start, end int) error {
			tensor.ToGray(start, end)
			skilling.Run(tensor, skilling.Reverse, start, end)

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return c.points(tensor)
}

// DecodeOne returns the point at a single curve index.
func (c *Codec) DecodeOne(index uint64) (Point, error) {
	points, err := c.Decode([]uint64{index})
	if err != nil {
		return nil, err
	}

	return points[0], nil
}

// Path returns every cell of the grid in curve order.
//
// Returns errs.ErrOutOfRange if the grid has more than MaxPathLength cells.
func (c *Codec) Path() ([]Point, error) {
	if c.IndexBits() > 24 {
		return nil, fmt.Errorf("%w: grid of 2^%d cells exceeds path limit of %d",
			errs.ErrOutOfRange, c.IndexBits(), MaxPathLength)
	}

	indices := make([]uint64, c.MaxIndex()+1)
	for i := range indices {
		indices[i] = uint64(i)
	}

	return c.Decode(indices)
}

// points converts the lanes of t into freshly allocated points. All points of one
// call share a single backing array.
func (c *Codec) points(t *bitplane.Tensor) ([]Point, error) {
	coords, err := bitplane.FromBitPlanes(t, c.dims, c.bits)
	if err != nil {
		return nil, err
	}

	points := make([]Point, t.Batch())
	for i := range points {
		lo, hi := i*c.dims, (i+1)*c.dims
		points[i] = Point(coords[lo:hi:hi])
	}

	return points, nil
}

// forChunks runs fn over [0, n) on the calling goroutine, or split across the
// configured workers once n reaches the parallel threshold.
func (c *Codec) forChunks(n int, fn func(start, end int) error) error {
	workers := c.workers
	if n < c.threshold {
		workers = 1
	}

	return parallel.For(n, workers, fn)
}

func (c *Codec) validatePoints(points []Point) error {
	maxCoord := c.MaxCoordinate()
	for i, p := range points {
		if len(p) != c.dims {
			return fmt.Errorf("%w: point %d has %d coordinates, want %d",
				errs.ErrDimensionMismatch, i, len(p), c.dims)
		}
		for d, v := range p {
			if v > maxCoord {
				return fmt.Errorf("%w: point %d coordinate %d is %d, max %d",
					errs.ErrOutOfRange, i, d, v, maxCoord)
			}
		}
	}

	return nil
}

func (c *Codec) validateIndices(indices []uint64) error {
	maxIndex := c.MaxIndex()
	for i, idx := range indices {
		if idx > maxIndex {
			return fmt.Errorf("%w: index %d at position %d exceeds max %d",
				errs.ErrOutOfRange, idx, i, maxIndex)
		}
	}

	return nil
}
