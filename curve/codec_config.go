package curve

import (
	"fmt"

	"github.com/arloliu/hilbert/internal/bitplane"
	"github.com/arloliu/hilbert/internal/options"
)

// DefaultParallelThreshold is the smallest batch that WithWorkers fans out.
// Smaller batches always run on the calling goroutine.
const DefaultParallelThreshold = 1024

// CodecConfig holds the immutable settings of a Codec.
type CodecConfig struct {
	dims      int
	bits      int
	workers   int
	threshold int
	observer  Observer
}

// newCodecConfig validates the curve shape and applies the defaults: sequential
// execution and no observer.
func newCodecConfig(dims, bits int) (*CodecConfig, error) {
	if err := bitplane.Validate(dims, bits); err != nil {
		return nil, err
	}

	return &CodecConfig{
		dims:      dims,
		bits:      bits,
		workers:   1,
		threshold: DefaultParallelThreshold,
	}, nil
}

// Dims returns the number of dimensions of the curve.
func (c *CodecConfig) Dims() int { return c.dims }

// Bits returns the number of bits per axis.
func (c *CodecConfig) Bits() int { return c.bits }

// IndexBits returns the width of a curve index, dims*bits.
func (c *CodecConfig) IndexBits() int { return c.dims * c.bits }

// MaxCoordinate returns the largest valid coordinate, 2^bits-1.
func (c *CodecConfig) MaxCoordinate() uint32 { return uint32(1)<<c.bits - 1 }

// MaxIndex returns the largest valid curve index, 2^(dims*bits)-1.
func (c *CodecConfig) MaxIndex() uint64 {
	if c.IndexBits() == 64 {
		return ^uint64(0)
	}

	return uint64(1)<<c.IndexBits() - 1
}

// Observer returns the configured step observer, or nil.
func (c *CodecConfig) Observer() Observer { return c.observer }

// CodecOption represents a functional option for configuring a Codec.
type CodecOption = options.Option[*CodecConfig]

// WithObserver reports every decode step to obs. A nil observer disables reporting.
//
// Observed decodes run single-threaded in step order regardless of WithWorkers;
// the decoded points are identical either way.
func WithObserver(obs Observer) CodecOption {
	return options.NoError(func(c *CodecConfig) {
		c.observer = obs
	})
}

// WithWorkers splits large batches across n goroutines. n <= 0 selects GOMAXPROCS,
// 1 (the default) keeps every call on the calling goroutine.
func WithWorkers(n int) CodecOption {
	return options.NoError(func(c *CodecConfig) {
		c.workers = n
	})
}

// WithParallelThreshold sets the smallest batch size that is split across workers.
func WithParallelThreshold(n int) CodecOption {
	return options.New(func(c *CodecConfig) error {
		if n < 1 {
			return fmt.Errorf("invalid parallel threshold: %d", n)
		}
		c.threshold = n

		return nil
	})
}
