package trace

import (
	"fmt"
	"iter"

	"github.com/arloliu/hilbert/compress"
	"github.com/arloliu/hilbert/curve"
	"github.com/arloliu/hilbert/endian"
	"github.com/arloliu/hilbert/errs"
	"github.com/arloliu/hilbert/internal/hash"
)

// Decoder provides random access to the step snapshots of a trace.
//
// NewDecoder validates the whole file up front, so accessors never fail on a
// decoder that was created successfully except for unknown steps. With
// format.CompressionNone the decoder references data directly; callers must not
// modify data while the decoder is in use.
type Decoder struct {
	header  Header
	engine  endian.EndianEngine
	steps   []curve.Step
	index   map[curve.Step]int
	payload []byte
}

// NewDecoder parses and verifies a trace.
//
// Returns:
//   - errs.ErrInvalidHeaderSize, errs.ErrInvalidMagicNumber or errs.ErrInvalidHeaderFlags
//     for a malformed header
//   - errs.ErrEmptyTrace when the trace holds no steps
//   - errs.ErrInvalidPayloadOffset when the payload does not follow the step table
//   - errs.ErrInvalidPayloadSize when section sizes disagree with the data
//   - errs.ErrChecksumMismatch when the payload does not match its xxHash64
func NewDecoder(data []byte) (*Decoder, error) {
	header, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}
	if header.StepCount == 0 {
		return nil, errs.ErrEmptyTrace
	}

	tableEnd := StepTableOffset + header.StepTableSize()
	if int(header.PayloadOffset) != tableEnd {
		return nil, fmt.Errorf("%w: payload at %d, step table ends at %d",
			errs.ErrInvalidPayloadOffset, header.PayloadOffset, tableEnd)
	}
	if want := tableEnd + int(header.CompressedSize); len(data) != want {
		return nil, fmt.Errorf("%w: trace is %d bytes, header describes %d",
			errs.ErrInvalidPayloadSize, len(data), want)
	}
	if want := int(header.StepCount) * header.SnapshotSize(); int(header.PayloadSize) != want {
		return nil, fmt.Errorf("%w: payload is %d bytes, %d steps need %d",
			errs.ErrInvalidPayloadSize, header.PayloadSize, header.StepCount, want)
	}

	d := &Decoder{
		header: header,
		engine: header.Flag.Engine(),
		steps:  make([]curve.Step, header.StepCount),
		index:  make(map[curve.Step]int, header.StepCount),
	}
	if err := d.parseSteps(data[StepTableOffset:tableEnd]); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(header.Flag.Compression())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidHeaderFlags, err)
	}
	payload, err := codec.Decompress(data[tableEnd:], int(header.PayloadSize))
	if err != nil {
		return nil, fmt.Errorf("decompress trace payload: %w", err)
	}
	if len(payload) != int(header.PayloadSize) {
		return nil, fmt.Errorf("%w: payload decompressed to %d bytes, want %d",
			errs.ErrInvalidPayloadSize, len(payload), header.PayloadSize)
	}
	if !hash.Verify(payload, header.Checksum) {
		return nil, fmt.Errorf("%w: want 0x%016x", errs.ErrChecksumMismatch, header.Checksum)
	}
	d.payload = payload

	return d, nil
}

func (d *Decoder) parseSteps(table []byte) error {
	dims, bits := int(d.header.Dims), int(d.header.Bits)

	for i := range d.steps {
		entry := table[i*StepEntrySize:]
		step := curve.Step{
			Bit: int(d.engine.Uint16(entry[0:2])),
			Dim: int(d.engine.Uint16(entry[2:4])),
		}
		if step.Bit < 1 || step.Bit > bits || step.Dim < 1 || step.Dim > dims {
			return fmt.Errorf("%w: step %d is %s, outside %d bits x %d dims",
				errs.ErrOutOfRange, i, step, bits, dims)
		}
		if _, dup := d.index[step]; dup {
			return fmt.Errorf("%w: duplicate step %s", errs.ErrInvalidHeaderFlags, step)
		}
		d.steps[i] = step
		d.index[step] = i
	}

	return nil
}

// Header returns the parsed header.
func (d *Decoder) Header() Header {
	return d.header
}

// Dims returns the number of dimensions of the traced curve.
func (d *Decoder) Dims() int {
	return int(d.header.Dims)
}

// Bits returns the number of bits per axis of the traced curve.
func (d *Decoder) Bits() int {
	return int(d.header.Bits)
}

// Len returns the number of steps.
func (d *Decoder) Len() int {
	return len(d.steps)
}

// PointCount returns the number of points of every snapshot.
func (d *Decoder) PointCount() int {
	return int(d.header.PointCount)
}

// Steps returns the step labels in file order.
func (d *Decoder) Steps() []curve.Step {
	return append([]curve.Step(nil), d.steps...)
}

// Points returns a fresh copy of the snapshot of step.
//
// Returns errs.ErrStepNotFound when the trace does not contain step.
func (d *Decoder) Points(step curve.Step) ([]curve.Point, error) {
	i, ok := d.index[step]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errs.ErrStepNotFound, step)
	}

	return d.snapshot(i), nil
}

// All iterates the snapshots in file order.
func (d *Decoder) All() iter.Seq2[curve.Step, []curve.Point] {
	return func(yield func(curve.Step, []curve.Point) bool) {
		for i, step := range d.steps {
			if !yield(step, d.snapshot(i)) {
				return
			}
		}
	}
}

func (d *Decoder) snapshot(i int) []curve.Point {
	dims := int(d.header.Dims)
	size := d.header.SnapshotSize()
	raw := d.payload[i*size : (i+1)*size]

	coords := make([]uint32, size)
	for j, b := range raw {
		coords[j] = uint32(b)
	}

	points := make([]curve.Point, d.header.PointCount)
	for j := range points {
		lo, hi := j*dims, (j+1)*dims
		points[j] = curve.Point(coords[lo:hi:hi])
	}

	return points
}
