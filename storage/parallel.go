package storage

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// parallelThreshold is the cell count below which loops run on the caller's
// goroutine.
const parallelThreshold = 1 << 14

// parallelFor calls fn over disjoint [lo, hi) chunks of rows. Chunks run on
// at most GOMAXPROCS goroutines and all finish before parallelFor returns.
func parallelFor(rows, cols int, fn func(lo, hi int)) error {
	if rows*cols < parallelThreshold || rows < 2 {
		fn(0, rows)
		return nil
	}

	workers := runtime.GOMAXPROCS(0)
	chunk := (rows + workers - 1) / workers

	var g errgroup.Group
	g.SetLimit(workers)

	for lo := 0; lo < rows; lo += chunk {
		hi := min(lo+chunk, rows)
		g.Go(func() error {
			fn(lo, hi)
			return nil
		})
	}
	return g.Wait()
}
