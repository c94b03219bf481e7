package trace

import (
	"fmt"

	"github.com/arloliu/hilbert/endian"
	"github.com/arloliu/hilbert/errs"
	"github.com/arloliu/hilbert/format"
)

// Flag holds the packed options and compression type of a trace header.
type Flag struct {
	// Options is a packed field.
	// Bit 1 is the endianness flag, 0 means little-endian, 1 means big-endian.
	// Bits 0, 2 and 3 are reserved and must be 0.
	// Bits 4-15 hold the magic number, 0xC5A0 for version 1 traces.
	//
	// Options itself is always stored little-endian so readers can find the
	// byte order of the remaining fields.
	Options uint16

	// CompressionType is the format.CompressionType of the payload.
	CompressionType uint8
}

// NewFlag creates a little-endian, uncompressed version 1 flag.
func NewFlag() Flag {
	return Flag{
		Options:         MagicTraceV1Opt,
		CompressionType: uint8(format.CompressionNone),
	}
}

// IsBigEndian returns whether multi-byte fields are big-endian.
func (f Flag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithBigEndian sets big-endian byte order.
func (f *Flag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// WithLittleEndian sets little-endian byte order.
func (f *Flag) WithLittleEndian() {
	f.Options &^= EndiannessMask
}

// MagicNumber returns bits 4-15 of Options.
func (f Flag) MagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// Compression returns the payload compression type.
func (f Flag) Compression() format.CompressionType {
	return format.CompressionType(f.CompressionType)
}

// SetCompression sets the payload compression type.
func (f *Flag) SetCompression(c format.CompressionType) {
	f.CompressionType = uint8(c)
}

// Engine returns the endian engine selected by the flag.
func (f Flag) Engine() endian.EndianEngine {
	return endian.Select(f.IsBigEndian())
}

// Validate checks the magic number, the reserved bits and the compression type.
func (f Flag) Validate() error {
	if f.MagicNumber() != MagicTraceV1Opt {
		return fmt.Errorf("%w: 0x%04X", errs.ErrInvalidMagicNumber, f.MagicNumber())
	}
	if f.Options&ReservedBitsMask != 0 {
		return fmt.Errorf("%w: reserved bits set 0x%04X", errs.ErrInvalidHeaderFlags, f.Options)
	}
	if !f.Compression().IsValid() {
		return fmt.Errorf("%w: unknown compression 0x%02X", errs.ErrInvalidHeaderFlags, f.CompressionType)
	}

	return nil
}
