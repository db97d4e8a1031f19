// Package workpool runs indexed jobs on a fixed number of goroutines.
//
// Jobs are identified by their index in [0,total). Each index is handed to
// exactly one worker, so jobs may write to slot i of a shared slice without
// locking. Cancellation is observed between jobs only; a job that already
// started runs to completion.
package workpool

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// ProgressFunc receives the number of finished jobs and the total. Calls are
// serialized and done is strictly increasing.
type ProgressFunc func(done, total int)

// Run executes job(i) for every i in [0,total) on workers goroutines and
// waits for all of them. workers ≤ 0 means runtime.GOMAXPROCS(0); the pool
// never starts more workers than jobs. progress may be nil.
//
// Returns ctx.Err() when the context was cancelled before every job ran,
// nil otherwise.
//
// Complexity: O(total) dispatch overhead plus the jobs themselves.
func Run(ctx context.Context, total, workers int, job func(i int), progress ProgressFunc) error {
	if total <= 0 {
		return ctx.Err()
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > total {
		workers = total
	}

	queue := make(chan int, workers*2)
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		finished int
		skipped  atomic.Bool
	)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range queue {
				if ctx.Err() != nil {
					skipped.Store(true)
					continue
				}
				job(i)
				if progress != nil {
					mu.Lock()
					finished++
					progress(finished, total)
					mu.Unlock()
				}
			}
		}()
	}

feed:
	for i := 0; i < total; i++ {
		select {
		case <-ctx.Done():
			skipped.Store(true)
			break feed
		case queue <- i:
		}
	}
	close(queue)
	wg.Wait()

	if skipped.Load() {
		return ctx.Err()
	}

	return nil
}
