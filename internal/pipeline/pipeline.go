package pipeline

import (
	"context"
	"runtime"
	"sync"

	"stylometer/internal/metrics"
)

type Processor[T any] func(ctx context.Context, item T) error

// Process runs fn over items on a fixed pool of workers and collects every
// error. Items not yet dispatched when ctx is canceled are skipped and the
// context error is reported once.
func Process[T any](ctx context.Context, items []T, workers int, fn Processor[T]) []error {
	if len(items) == 0 || fn == nil {
		return nil
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
		if workers < 1 {
			workers = 1
		}
	}
	workers = min(workers, len(items))

	jobs := make(chan T)
	errs := make(chan error, len(items)+1)
	var wg sync.WaitGroup

	metrics.DocumentsPending.Add(float64(len(items)))
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range jobs {
				if err := fn(ctx, item); err != nil {
					errs <- err
				}
				metrics.DocumentsPending.Dec()
			}
		}()
	}

	dispatched := 0
dispatch:
	for _, item := range items {
		if err := ctx.Err(); err != nil {
			errs <- err
			break
		}
		select {
		case <-ctx.Done():
			errs <- ctx.Err()
			break dispatch
		case jobs <- item:
			dispatched++
		}
	}
	close(jobs)
	wg.Wait()
	metrics.DocumentsPending.Sub(float64(len(items) - dispatched))
	close(errs)

	out := make([]error, 0, len(errs))
	for err := range errs {
		out = append(out, err)
	}
	return out
}
