package pool

import "sync"

// Slice pools for the scratch storage of a single transform call.
var (
	byteSlicePool = sync.Pool{
		New: func() any { return &[]byte{} },
	}
	uint32SlicePool = sync.Pool{
		New: func() any { return &[]uint32{} },
	}
)

// GetByteSlice retrieves a zeroed byte slice of length size from the pool.
//
// The caller owns the slice exclusively until it calls the returned cleanup
// function, after which the slice must not be used.
//
// Example:
//
//	bits, cleanup := pool.GetByteSlice(batch * dims * width)
//	defer cleanup()
func GetByteSlice(size int) ([]byte, func()) {
	ptr, _ := byteSlicePool.Get().(*[]byte)
	slice := *ptr

	if cap(slice) < size {
		slice = make([]byte, size)
	} else {
		slice = slice[:size]
		clear(slice)
	}
	*ptr = slice

	return slice, func() { byteSlicePool.Put(ptr) }
}

// GetUint32Slice retrieves a zeroed uint32 slice of length size from the pool.
// See GetByteSlice for the ownership rules.
func GetUint32Slice(size int) ([]uint32, func()) {
	ptr, _ := uint32SlicePool.Get().(*[]uint32)
	slice := *ptr

	if cap(slice) < size {
		slice = make([]uint32, size)
	} else {
		slice = slice[:size]
		clear(slice)
	}
	*ptr = slice

	return slice, func() { uint32SlicePool.Put(ptr) }
}
