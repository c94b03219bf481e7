// Package parallel splits index ranges into contiguous chunks and runs them on a
// bounded group of goroutines.
package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Workers normalizes a requested worker count. Values <= 0 select GOMAXPROCS.
func Workers(n int) int {
	if n <= 0 {
		return runtime.GOMAXPROCS(0)
	}

	return n
}

// For calls fn for contiguous ranges [start, end) covering [0, n), using at most
// workers goroutines. It blocks until every range is done and returns the first
// error reported by fn.
//
// With a single worker, or when n is too small to split, fn runs once on the
// calling goroutine with the whole range.
func For(n, workers int, fn func(start, end int) error) error {
	if n <= 0 {
		return nil
	}

	workers = min(Workers(workers), n)
	if workers == 1 {
		return fn(0, n)
	}

	chunkSize := (n + workers - 1) / workers

	var g errgroup.Group
	g.SetLimit(workers)

	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		g.Go(func() error {
			return fn(start, end)
		})
	}

	return g.Wait()
}
