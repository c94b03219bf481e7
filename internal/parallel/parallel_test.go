package parallel

import (
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWorkers(t *testing.T) {
	require.Equal(t, runtime.GOMAXPROCS(0), Workers(0))
	require.Equal(t, runtime.GOMAXPROCS(0), Workers(-3))
	require.Equal(t, 7, Workers(7))
}

func TestFor(t *testing.T) {
	t.Run("covers every index exactly once", func(t *testing.T) {
		for _, workers := range []int{1, 2, 3, 8, 64} {
			for _, n := range []int{1, 2, 7, 100, 1023} {
				hits := make([]int32, n)
				err := For(n, workers, func(start, end int) error {
					for i := start; i < end; i++ {
						atomic.AddInt32(&hits[i], 1)
					}
					return nil
				})
				require.NoError(t, err)
				for i, h := range hits {
					require.Equal(t, int32(1), h, "index %d (n=%d, workers=%d)", i, n, workers)
				}
			}
		}
	})

	t.Run("single worker runs once on whole range", func(t *testing.T) {
		var calls [][2]int
		err := For(10, 1, func(start, end int) error {
			calls = append(calls, [2]int{start, end})
			return nil
		})
		require.NoError(t, err)
		require.Equal(t, [][2]int{{0, 10}}, calls)
	})

	t.Run("ranges are contiguous and ordered by start", func(t *testing.T) {
		var mu sync.Mutex
		ranges := map[int]int{}
		err := For(10, 3, func(start, end int) error {
			mu.Lock()
			ranges[start] = end
			mu.Unlock()
			return nil
		})
		require.NoError(t, err)
		require.Equal(t, map[int]int{0: 4, 4: 8, 8: 10}, ranges)
	})

	t.Run("empty range", func(t *testing.T) {
		called := false
		err := For(0, 4, func(start, end int) error {
			called = true
			return nil
		})
		require.NoError(t, err)
		require.False(t, called)
	})

	t.Run("propagates errors", func(t *testing.T) {
		errBoom := errors.New("boom")
		err := For(100, 4, func(start, end int) error {
			if start == 0 {
				return errBoom
			}
			return nil
		})
		require.ErrorIs(t, err, errBoom)
	})
}
