package trace

import (
	"fmt"

	"github.com/arloliu/hilbert/curve"
	"github.com/arloliu/hilbert/errs"
	"github.com/arloliu/hilbert/internal/bitplane"
	"github.com/arloliu/hilbert/internal/hash"
	"github.com/arloliu/hilbert/internal/options"
	"github.com/arloliu/hilbert/internal/pool"
)

// Encoder assembles a trace file from decode step snapshots.
//
// Steps are added in the order they should be replayed. Every snapshot must hold
// the same number of points. An Encoder is not safe for concurrent use and can
// produce a single trace.
type Encoder struct {
	*EncoderConfig

	steps      []curve.Step
	seen       map[curve.Step]struct{}
	payload    *pool.ByteBuffer
	pointCount int
	finished   bool
}

// NewEncoder creates an encoder for a dims x bits curve.
//
// Returns errs.ErrInvalidWidth for an impossible curve shape or the error of the
// first failing option.
func NewEncoder(dims, bits int, opts ...EncoderOption) (*Encoder, error) {
	if err := bitplane.Validate(dims, bits); err != nil {
		return nil, err
	}

	config := newEncoderConfig(dims, bits)
	if err := options.Apply(config, opts...); err != nil {
		return nil, err
	}

	return &Encoder{
		EncoderConfig: config,
		seen:          make(map[curve.Step]struct{}),
		payload:       pool.GetTraceBuffer(),
		pointCount:    -1,
	}, nil
}

// AddStep appends the snapshot of one decode step.
//
// The step label must lie within the curve shape and must not repeat. The first
// snapshot fixes the point count of the trace. A failed call leaves the encoder
// unchanged.
func (e *Encoder) AddStep(step curve.Step, points []curve.Point) error {
	if e.finished {
		return errs.ErrEncoderFinished
	}

	dims, bits := int(e.header.Dims), int(e.header.Bits)
	if step.Bit < 1 || step.Bit > bits || step.Dim < 1 || step.Dim > dims {
		return fmt.Errorf("%w: step %s outside %d bits x %d dims", errs.ErrOutOfRange, step, bits, dims)
	}
	if _, dup := e.seen[step]; dup {
		return fmt.Errorf("duplicate step %s", step)
	}
	if len(e.steps) == MaxSteps {
		return fmt.Errorf("%w: step count exceeds %d", errs.ErrOutOfRange, MaxSteps)
	}
	if e.pointCount >= 0 && len(points) != e.pointCount {
		return fmt.Errorf("%w: step %s has %d points, want %d",
			errs.ErrDimensionMismatch, step, len(points), e.pointCount)
	}
	if total := (len(e.steps) + 1) * len(points) * dims; int64(total) > MaxPayload {
		return fmt.Errorf("%w: payload of %d bytes exceeds %d", errs.ErrOutOfRange, total, uint32(MaxPayload))
	}

	maxCoord := uint32(1)<<bits - 1
	for i, p := range points {
		if len(p) != dims {
			return fmt.Errorf("%w: point %d of step %s has %d coordinates, want %d",
				errs.ErrDimensionMismatch, i, step, len(p), dims)
		}
		for d, v := range p {
			if v > maxCoord {
				return fmt.Errorf("%w: point %d coordinate %d is %d, max %d",
					errs.ErrOutOfRange, i, d, v, maxCoord)
			}
		}
	}

	e.payload.Grow(len(points) * dims)
	for _, p := range points {
		for _, v := range p {
			_ = e.payload.WriteByte(byte(v))
		}
	}

	e.pointCount = len(points)
	e.steps = append(e.steps, step)
	e.seen[step] = struct{}{}

	return nil
}

// Len returns the number of steps added so far.
func (e *Encoder) Len() int {
	return len(e.steps)
}

// Finish compresses the payload and returns the complete trace.
//
// The encoder cannot be used afterwards. Returns errs.ErrEmptyTrace when no step
// was added.
func (e *Encoder) Finish() ([]byte, error) {
	if e.finished {
		return nil, errs.ErrEncoderFinished
	}
	if len(e.steps) == 0 {
		return nil, errs.ErrEmptyTrace
	}

	e.finished = true
	defer func() {
		pool.PutTraceBuffer(e.payload)
		e.payload = nil
	}()

	raw := e.payload.Bytes()
	compressed, err := e.codec.Compress(raw)
	if err != nil {
		return nil, fmt.Errorf("compress trace payload: %w", err)
	}
	if int64(len(compressed)) > MaxPayload {
		return nil, fmt.Errorf("%w: compressed payload of %d bytes", errs.ErrOutOfRange, len(compressed))
	}

	h := e.header
	h.StepCount = uint16(len(e.steps))
	h.PointCount = uint32(e.pointCount)
	h.PayloadOffset = uint32(StepTableOffset + len(e.steps)*StepEntrySize)
	h.PayloadSize = uint32(len(raw))
	h.CompressedSize = uint32(len(compressed))
	h.Checksum = hash.Checksum(raw)

	out := make([]byte, 0, int(h.PayloadOffset)+len(compressed))
	out = append(out, h.Bytes()...)
	for _, s := range e.steps {
		out = e.engine.AppendUint16(out, uint16(s.Bit))
		out = e.engine.AppendUint16(out, uint16(s.Dim))
	}
	out = append(out, compressed...)

	return out, nil
}
