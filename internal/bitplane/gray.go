package bitplane

// BinaryToGray returns the reflected-binary code of bits.
//
// The first bit is kept and every later bit is XORed with the previous original bit.
func BinaryToGray(bits []byte) []byte {
	gray := make([]byte, len(bits))
	copy(gray, bits)
	BinaryToGrayInPlace(gray)

	return gray
}

// BinaryToGrayInPlace is BinaryToGray without allocation. It walks from the least
// significant end so every XOR still sees the original neighbor.
func BinaryToGrayInPlace(bits []byte) {
	for i := len(bits) - 1; i > 0; i-- {
		bits[i] ^= bits[i-1]
	}
}

// GrayToBinary decodes a reflected-binary sequence.
//
// Each output bit depends on the previously reconstructed bit, so the conversion is a
// left-to-right scan with an accumulator.
func GrayToBinary(gray []byte) []byte {
	bits := make([]byte, len(gray))
	copy(bits, gray)
	GrayToBinaryInPlace(bits)

	return bits
}

// GrayToBinaryInPlace is GrayToBinary without allocation.
func GrayToBinaryInPlace(gray []byte) {
	var acc byte
	for i, g := range gray {
		acc ^= g
		gray[i] = acc
	}
}
