package trace

import "math"

const (
	// Bit masks of the options field
	EndiannessMask   = 0x0002 // bit 1: 0=little, 1=big
	ReservedBitsMask = 0x000D // bits 0, 2 and 3 must be zero
	MagicNumberMask  = 0xFFF0 // bits 4-15

	MagicTraceV1Opt = 0xC5A0 // version 1 magic number of trace files
)

// offsets and section sizes in the trace file
const (
	HeaderSize      = 32         // fixed header size in bytes
	StepEntrySize   = 4          // bit uint16 + dim uint16
	StepTableOffset = HeaderSize // the step table directly follows the header

	MaxSteps   = math.MaxUint16 // step count is stored as uint16
	MaxPayload = math.MaxUint32 // payload sizes are stored as uint32
)
