package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetByteSlice(t *testing.T) {
	t.Run("exact length", func(t *testing.T) {
		s, cleanup := GetByteSlice(24)
		defer cleanup()

		require.Len(t, s, 24)
	})

	t.Run("reused slices are zeroed", func(t *testing.T) {
		s, cleanup := GetByteSlice(16)
		for i := range s {
			s[i] = 1
		}
		cleanup()

		again, cleanup2 := GetByteSlice(8)
		defer cleanup2()
		for _, b := range again {
			require.Zero(t, b)
		}
	})

	t.Run("zero size", func(t *testing.T) {
		s, cleanup := GetByteSlice(0)
		defer cleanup()

		require.Empty(t, s)
	})
}

func TestGetUint32Slice(t *testing.T) {
	s, cleanup := GetUint32Slice(5)
	for i := range s {
		s[i] = uint32(i + 1)
	}
	cleanup()

	again, cleanup2 := GetUint32Slice(5)
	defer cleanup2()
	require.Equal(t, []uint32{0, 0, 0, 0, 0}, again)
}

func BenchmarkGetByteSlice(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		s, cleanup := GetByteSlice(1024)
		s[0] = 1
		cleanup()
	}
}
