package pool

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(1024)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, 1024, cap(bb.B))
}

func TestByteBuffer_WriteAndReset(t *testing.T) {
	bb := NewByteBuffer(8)

	n, err := bb.Write([]byte("hilbert"))
	require.NoError(t, err)
	require.Equal(t, 7, n)
	require.NoError(t, bb.WriteByte('!'))
	require.Equal(t, []byte("hilbert!"), bb.Bytes())

	capBefore := cap(bb.B)
	bb.Reset()
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, capBefore, cap(bb.B), "Reset should keep capacity")
}

func TestByteBuffer_Grow(t *testing.T) {
	t.Run("no-op when capacity suffices", func(t *testing.T) {
		bb := NewByteBuffer(64)
		bb.Grow(32)
		assert.Equal(t, 64, cap(bb.B))
	})

	t.Run("small buffer grows by default size", func(t *testing.T) {
		bb := NewByteBuffer(4)
		_, _ = bb.Write([]byte("abcd"))
		bb.Grow(1)
		assert.Equal(t, 4+TraceBufferDefaultSize, cap(bb.B))
		assert.Equal(t, []byte("abcd"), bb.Bytes())
	})

	t.Run("grows by at least the requested size", func(t *testing.T) {
		bb := NewByteBuffer(0)
		bb.Grow(TraceBufferDefaultSize * 2)
		assert.GreaterOrEqual(t, cap(bb.B), TraceBufferDefaultSize*2)
	})

	t.Run("large buffer grows by a quarter", func(t *testing.T) {
		size := TraceBufferDefaultSize * 8
		bb := NewByteBuffer(size)
		bb.B = bb.B[:size]
		bb.Grow(1)
		assert.Equal(t, size+size/4, cap(bb.B))
	})
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(16)
	_, _ = bb.Write([]byte{1, 2, 3})

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)
	require.NoError(t, err)
	require.Equal(t, int64(3), n)
	require.Equal(t, []byte{1, 2, 3}, out.Bytes())
}

func TestByteBufferPool(t *testing.T) {
	t.Run("returned buffers are reset", func(t *testing.T) {
		p := NewByteBufferPool(32, 1024)
		bb := p.Get()
		_, _ = bb.Write([]byte("data"))
		p.Put(bb)

		again := p.Get()
		require.Equal(t, 0, again.Len())
	})

	t.Run("nil put is ignored", func(t *testing.T) {
		p := NewByteBufferPool(32, 1024)
		require.NotPanics(t, func() { p.Put(nil) })
	})

	t.Run("oversized buffers are dropped", func(t *testing.T) {
		p := NewByteBufferPool(32, 64)
		bb := NewByteBuffer(128)
		p.Put(bb)

		got := p.Get()
		require.NotNil(t, got)
		require.NotSame(t, bb, got)
	})

	t.Run("default trace pool", func(t *testing.T) {
		bb := GetTraceBuffer()
		require.NotNil(t, bb)
		require.Equal(t, 0, bb.Len())
		PutTraceBuffer(bb)
	})
}
