// Package errs defines the sentinel errors returned by hilbert packages.
//
// Errors are wrapped with additional context using fmt.Errorf and the %w verb,
// so callers should compare with errors.Is:
//
//	if errors.Is(err, errs.ErrOutOfRange) {
//	    // handle bad input
//	}
package errs

import "errors"

// Curve codec errors.
var (
	// ErrInvalidWidth is returned when bits per axis is outside [1, 8], the dimension
	// count is not positive, or dims*bits exceeds the 64-bit index width.
	ErrInvalidWidth = errors.New("invalid curve width")

	// ErrDimensionMismatch is returned when a point's arity or a tensor's dimension
	// count does not match the codec's dimension count.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrOutOfRange is returned when a coordinate or curve index falls outside the
	// grid's representable domain.
	ErrOutOfRange = errors.New("value out of range")
)

// Trace file errors.
var (
	ErrInvalidHeaderSize    = errors.New("invalid header size")
	ErrInvalidMagicNumber   = errors.New("invalid magic number")
	ErrInvalidHeaderFlags   = errors.New("invalid header flags")
	ErrInvalidPayloadOffset = errors.New("invalid payload offset")
	ErrChecksumMismatch     = errors.New("payload checksum mismatch")
	ErrEmptyTrace           = errors.New("trace has no steps")
	ErrStepNotFound         = errors.New("step not found")
	ErrInvalidPayloadSize   = errors.New("invalid payload size")
	ErrEncoderFinished      = errors.New("trace encoder already finished")
)
