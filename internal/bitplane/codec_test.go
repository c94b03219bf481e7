package bitplane

import (
	"testing"

	"github.com/arloliu/hilbert/errs"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		dims    int
		width   int
		wantErr bool
	}{
		{"2d 1 bit", 2, 1, false},
		{"3d 8 bits", 3, 8, false},
		{"8d 8 bits fills the index", 8, 8, false},
		{"64d 1 bit", 64, 1, false},
		{"zero bits", 2, 0, true},
		{"nine bits", 2, 9, true},
		{"zero dims", 0, 4, true},
		{"negative dims", -1, 4, true},
		{"index wider than 64 bits", 9, 8, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.dims, tt.width)
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrInvalidWidth)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestToBitPlanes(t *testing.T) {
	t.Run("interleaves bit-major", func(t *testing.T) {
		// 0b10_01_11 with dims=2, width=3: flat bits 1 0 0 1 1 1
		// lane 0 takes flat positions 0,2,4 -> 1 0 1
		// lane 1 takes flat positions 1,3,5 -> 0 1 1
		tensor, err := ToBitPlanes([]uint64{0b100111}, 2, 3)
		require.NoError(t, err)
		defer tensor.Release()

		require.Equal(t, 1, tensor.Batch())
		require.Equal(t, 2, tensor.Dims())
		require.Equal(t, 3, tensor.Width())
		require.Equal(t, []byte{1, 0, 1}, tensor.Lane(0, 0))
		require.Equal(t, []byte{0, 1, 1}, tensor.Lane(0, 1))
		require.Equal(t, byte(1), tensor.Bit(0, 1, 2))
	})

	t.Run("ignores bits above the index width", func(t *testing.T) {
		tensor, err := ToBitPlanes([]uint64{0xFF00 | 0b0110}, 2, 2)
		require.NoError(t, err)
		defer tensor.Release()

		require.Equal(t, uint64(0b0110), tensor.Pack(0))
	})

	t.Run("batch items are independent", func(t *testing.T) {
		values := []uint64{0, 63, 21, 42}
		tensor, err := ToBitPlanes(values, 3, 2)
		require.NoError(t, err)
		defer tensor.Release()

		for i, v := range values {
			require.Equal(t, v, tensor.Pack(i))
		}
	})

	t.Run("rejects invalid width", func(t *testing.T) {
		_, err := ToBitPlanes([]uint64{1}, 2, 9)
		require.ErrorIs(t, err, errs.ErrInvalidWidth)

		_, err = ToBitPlanes([]uint64{1}, 0, 2)
		require.ErrorIs(t, err, errs.ErrInvalidWidth)
	})
}

func TestFromCoordinates(t *testing.T) {
	t.Run("lanes hold coordinates MSB first", func(t *testing.T) {
		tensor, err := FromCoordinates([]uint32{5, 2, 7, 0}, 2, 3)
		require.NoError(t, err)
		defer tensor.Release()

		require.Equal(t, 2, tensor.Batch())
		require.Equal(t, []byte{1, 0, 1}, tensor.Lane(0, 0))
		require.Equal(t, []byte{0, 1, 0}, tensor.Lane(0, 1))
		require.Equal(t, []byte{1, 1, 1}, tensor.Lane(1, 0))
		require.Equal(t, []byte{0, 0, 0}, tensor.Lane(1, 1))
	})

	t.Run("arity mismatch", func(t *testing.T) {
		_, err := FromCoordinates([]uint32{1, 2, 3}, 2, 3)
		require.ErrorIs(t, err, errs.ErrDimensionMismatch)
	})

	t.Run("empty batch", func(t *testing.T) {
		tensor, err := FromCoordinates(nil, 3, 4)
		require.NoError(t, err)
		defer tensor.Release()

		require.Equal(t, 0, tensor.Batch())
	})
}

func TestFromBitPlanes(t *testing.T) {
	t.Run("round trips coordinates", func(t *testing.T) {
		for width := 1; width <= 8; width++ {
			maxCoord := uint32(1)<<width - 1
			coords := []uint32{0, maxCoord, maxCoord / 2, 1 % (maxCoord + 1), maxCoord, 0}

			tensor, err := FromCoordinates(coords, 3, width)
			require.NoError(t, err)

			got, err := FromBitPlanes(tensor, 3, width)
			tensor.Release()
			require.NoError(t, err)
			require.Equal(t, coords, got, "width %d", width)
		}
	})

	t.Run("dimension mismatch", func(t *testing.T) {
		tensor, err := NewTensor(1, 3, 2)
		require.NoError(t, err)
		defer tensor.Release()

		_, err = FromBitPlanes(tensor, 2, 2)
		require.ErrorIs(t, err, errs.ErrDimensionMismatch)
	})

	t.Run("width mismatch", func(t *testing.T) {
		tensor, err := NewTensor(1, 2, 2)
		require.NoError(t, err)
		defer tensor.Release()

		_, err = FromBitPlanes(tensor, 2, 3)
		require.ErrorIs(t, err, errs.ErrInvalidWidth)
	})
}

func TestPackUnpackBits(t *testing.T) {
	bits := UnpackBits(0b1011, 6, nil)
	require.Equal(t, []byte{0, 0, 1, 0, 1, 1}, bits)
	require.Equal(t, uint64(0b1011), PackBits(bits))

	full := UnpackBits(^uint64(0), 64, nil)
	require.Len(t, full, 64)
	require.Equal(t, ^uint64(0), PackBits(full))

	require.Empty(t, UnpackBits(7, 0, nil))
	require.Equal(t, uint64(0), PackBits(nil))
}
