// Package utils holds small helpers shared by the neuronet packages.
package utils

import "sync"

// MultiThread runs f for every integer in [start, end), spread across the given number of
// goroutines. Each goroutine takes opsPerThread consecutive integers at a time until the range is
// exhausted. MultiThread returns once every call to f has returned.
//
// f must be safe to call concurrently for distinct integers. If workers < 2 or the range fits in a
// single batch, f is simply called in order on the calling goroutine.
func MultiThread(start, end int, f func(int), opsPerThread, workers int) {
	if opsPerThread < 1 {
		opsPerThread = 1
	}

	if workers < 2 || end-start <= opsPerThread {
		for i := start; i < end; i++ {
			f(i)
		}
		return
	}

	index := start
	var indexMux sync.Mutex

	var wg sync.WaitGroup

	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()

			for {
				indexMux.Lock()
				if index >= end {
					indexMux.Unlock()
					return
				}

				i := index
				index += opsPerThread
				indexMux.Unlock()

				e := i + opsPerThread
				if e > end {
					e = end
				}

				for ; i < e; i++ {
					f(i)
				}
			}
		}()
	}

	wg.Wait()
}
