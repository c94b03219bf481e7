// Package endian selects the byte order of trace files.
//
// A trace records its byte order in the header flag. Writers pick an engine with
// Select or the Little/Big helpers, readers recover it from the flag bit:
//
//	engine := endian.Select(flag.IsBigEndian())
//	steps := engine.Uint16(data[6:8])
//
// Engines combine binary.ByteOrder and binary.AppendByteOrder, so both fixed
// offset writes and appends go through one value. All engines are immutable and
// safe for concurrent use.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine reads, writes and appends fixed-size integers in one byte order.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine, the default of trace files.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// Select returns the big-endian engine when bigEndian is set and the
// little-endian engine otherwise.
func Select(bigEndian bool) EndianEngine {
	if bigEndian {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// Native returns the engine matching the host byte order.
func Native() EndianEngine {
	var probe uint16 = 0x0100
	if (*[2]byte)(unsafe.Pointer(&probe))[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsBigEndian reports whether engine writes the most significant byte first.
func IsBigEndian(engine EndianEngine) bool {
	var b [2]byte
	engine.PutUint16(b[:], 0x0102)

	return b[0] == 0x01
}

// Name returns "little" or "big" for display.
func Name(engine EndianEngine) string {
	if IsBigEndian(engine) {
		return "big"
	}

	return "little"
}
