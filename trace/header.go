package trace

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/hilbert/errs"
	"github.com/arloliu/hilbert/internal/bitplane"
)

// Header is the fixed-size section at the start of a trace file.
type Header struct {
	// Flag is a packed field for byte order, magic number and compression.
	Flag Flag // byte offset 0-2
	// Bits is the number of bits per axis.
	Bits uint8 // byte offset 3
	// Dims is the number of dimensions.
	Dims uint16 // byte offset 4-5
	// StepCount is the number of recorded decode steps.
	StepCount uint16 // byte offset 6-7
	// PointCount is the number of points in every step snapshot.
	PointCount uint32 // byte offset 8-11
	// PayloadOffset is the byte offset of the payload, right after the step table.
	PayloadOffset uint32 // byte offset 12-15
	// PayloadSize is the uncompressed payload size.
	PayloadSize uint32 // byte offset 16-19
	// CompressedSize is the stored payload size.
	CompressedSize uint32 // byte offset 20-23
	// Checksum is the xxHash64 of the uncompressed payload.
	Checksum uint64 // byte offset 24-31
}

// NewHeader creates a header for a dims x bits curve. Counts, sizes and the
// checksum are set when the encoder finishes.
func NewHeader(dims, bits int) *Header {
	return &Header{
		Flag: NewFlag(),
		Bits: uint8(bits),
		Dims: uint16(dims),
	}
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be exactly 32 bytes)
//
// Returns:
//   - error: ErrInvalidHeaderSize, flag validation errors, or ErrInvalidWidth for
//     an impossible curve shape
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return fmt.Errorf("%w: got %d bytes, want %d", errs.ErrInvalidHeaderSize, len(data), HeaderSize)
	}

	h.Flag.Options = binary.LittleEndian.Uint16(data[0:2])
	h.Flag.CompressionType = data[2]
	if err := h.Flag.Validate(); err != nil {
		return err
	}

	engine := h.Flag.Engine()
	h.Bits = data[3]
	h.Dims = engine.Uint16(data[4:6])
	h.StepCount = engine.Uint16(data[6:8])
	h.PointCount = engine.Uint32(data[8:12])
	h.PayloadOffset = engine.Uint32(data[12:16])
	h.PayloadSize = engine.Uint32(data[16:20])
	h.CompressedSize = engine.Uint32(data[20:24])
	h.Checksum = engine.Uint64(data[24:32])

	return bitplane.Validate(int(h.Dims), int(h.Bits))
}

// Bytes serializes the header.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)
	engine := h.Flag.Engine()

	binary.LittleEndian.PutUint16(b[0:2], h.Flag.Options)
	b[2] = h.Flag.CompressionType
	b[3] = h.Bits
	engine.PutUint16(b[4:6], h.Dims)
	engine.PutUint16(b[6:8], h.StepCount)
	engine.PutUint32(b[8:12], h.PointCount)
	engine.PutUint32(b[12:16], h.PayloadOffset)
	engine.PutUint32(b[16:20], h.PayloadSize)
	engine.PutUint32(b[20:24], h.CompressedSize)
	engine.PutUint64(b[24:32], h.Checksum)

	return b
}

// StepTableSize returns the size of the step table in bytes.
func (h *Header) StepTableSize() int {
	return int(h.StepCount) * StepEntrySize
}

// SnapshotSize returns the uncompressed size of one step snapshot in bytes.
func (h *Header) SnapshotSize() int {
	return int(h.PointCount) * int(h.Dims)
}

// ParseHeader parses a Header from the start of data.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: got %d bytes, want at least %d",
			errs.ErrInvalidHeaderSize, len(data), HeaderSize)
	}

	h := Header{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return Header{}, err
	}

	return h, nil
}
