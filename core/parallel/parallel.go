// Package parallel provides the worker helpers used to spread independent
// units of work, such as per-fold classifier builds, across CPU cores.
package parallel

import (
	"runtime"
	"sync"
)

// Parallelize splits items across the available CPU cores and runs fn once
// per chunk with the half-open range it should handle.
func Parallelize(items int, fn func(start, end int)) {
	if items == 0 {
		return
	}

	numWorkers := runtime.NumCPU()
	if numWorkers > items {
		numWorkers = items
	}

	// Ceiling division so the last chunk picks up the remainder.
	chunkSize := (items + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		start := i * chunkSize
		end := start + chunkSize
		if end > items {
			end = items
		}
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}

// ForEach runs fn for every index in [0, items) using Parallelize and
// returns the error from the lowest-indexed item that failed. Each index
// is an independent unit of work; fn must not share mutable state across
// indices.
func ForEach(items int, fn func(i int) error) error {
	if items == 0 {
		return nil
	}
	errs := make([]error, items)
	Parallelize(items, func(start, end int) {
		for i := start; i < end; i++ {
			errs[i] = fn(i)
		}
	})
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// ForEachSequentialBelow runs fn sequentially when items does not exceed
// threshold, avoiding goroutine overhead for small workloads.
func ForEachSequentialBelow(items, threshold int, fn func(i int) error) error {
	if items <= threshold {
		for i := 0; i < items; i++ {
			if err := fn(i); err != nil {
				return err
			}
		}
		return nil
	}
	return ForEach(items, fn)
}
