// Package trace stores the complete step history of a Hilbert curve decode in a
// compact binary file.
//
// A trace holds one snapshot per decode step: the intermediate coordinates of every
// decoded point after that step. Animation and plotting tools replay the snapshots
// in file order.
//
// # File Structure
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Header (32 bytes, fixed)                                │
//	├─────────────────────────────────────────────────────────┤
//	│ Step Table (StepCount × 4 bytes)                        │
//	│  - bit uint16, dim uint16 (1-based labels)              │
//	├─────────────────────────────────────────────────────────┤
//	│ Payload (compressed, optional)                          │
//	│  - one byte per coordinate                              │
//	│  - step-major, then point-major, then dimension         │
//	└─────────────────────────────────────────────────────────┘
//
// # Header Format
//
//	Bytes  | Field          | Type   | Description
//	-------|----------------|--------|----------------------------------------
//	0-1    | Options        | uint16 | endianness bit 1, magic 0xC5A0 bits 4-15
//	2      | Compression    | uint8  | format.CompressionType of the payload
//	3      | Bits           | uint8  | bits per axis
//	4-5    | Dims           | uint16 | number of dimensions
//	6-7    | StepCount      | uint16 | entries in the step table
//	8-11   | PointCount     | uint32 | points per snapshot
//	12-15  | PayloadOffset  | uint32 | byte offset of the payload
//	16-19  | PayloadSize    | uint32 | uncompressed payload size
//	20-23  | CompressedSize | uint32 | stored payload size
//	24-31  | Checksum       | uint64 | xxHash64 of the uncompressed payload
//
// Options is always little-endian. The remaining multi-byte fields and the step
// table use the byte order selected by the endianness bit.
//
// # Usage
//
//	data, err := trace.Record(2, 3, trace.WithCompression(format.CompressionZstd))
//	if err != nil {
//	    return err
//	}
//
//	dec, err := trace.NewDecoder(data)
//	if err != nil {
//	    return err
//	}
//	for step, points := range dec.All() {
//	    fmt.Println(step, len(points))
//	}
package trace
