package bitplane

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBinaryToGray(t *testing.T) {
	tests := []struct {
		name string
		bits []byte
		want []byte
	}{
		{"empty", []byte{}, []byte{}},
		{"single bit", []byte{1}, []byte{1}},
		{"uses original neighbor", []byte{1, 1, 1}, []byte{1, 0, 0}},
		{"alternating", []byte{1, 0, 1, 0}, []byte{1, 1, 1, 1}},
		{"six", []byte{1, 1, 0}, []byte{1, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := append([]byte(nil), tt.bits...)
			require.Equal(t, tt.want, BinaryToGray(in))
			require.Equal(t, tt.bits, in, "input must not be modified")
		})
	}
}

func TestGrayToBinary(t *testing.T) {
	tests := []struct {
		name string
		gray []byte
		want []byte
	}{
		{"empty", []byte{}, []byte{}},
		{"single bit", []byte{0}, []byte{0}},
		{"uses reconstructed neighbor", []byte{1, 0, 0}, []byte{1, 1, 1}},
		{"all ones", []byte{1, 1, 1, 1}, []byte{1, 0, 1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := append([]byte(nil), tt.gray...)
			require.Equal(t, tt.want, GrayToBinary(in))
			require.Equal(t, tt.gray, in, "input must not be modified")
		})
	}
}

func TestGray_RoundTripAllByteValues(t *testing.T) {
	for v := range uint64(256) {
		bits := UnpackBits(v, 8, nil)
		gray := BinaryToGray(bits)

		require.Equal(t, v^(v>>1), PackBits(gray))
		require.Equal(t, bits, GrayToBinary(gray))
	}
}

func TestGray_ConsecutiveValuesDifferInOneBit(t *testing.T) {
	prev := BinaryToGray(UnpackBits(0, 6, nil))
	for v := uint64(1); v < 64; v++ {
		cur := BinaryToGray(UnpackBits(v, 6, nil))

		diff := 0
		for i := range cur {
			if cur[i] != prev[i] {
				diff++
			}
		}
		require.Equal(t, 1, diff, "gray(%d) vs gray(%d)", v-1, v)
		prev = cur
	}
}

func BenchmarkGrayToBinaryInPlace(b *testing.B) {
	bits := UnpackBits(0xDEADBEEFCAFEF00D, 64, nil)
	b.ReportAllocs()
	for b.Loop() {
		GrayToBinaryInPlace(bits)
	}
}
