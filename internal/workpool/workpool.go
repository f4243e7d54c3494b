// Package workpool runs independent, CPU-bound jobs on a bounded set of
// goroutines and hands results back in submission order.
package workpool

import (
	"context"
	"fmt"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"
)

// Job computes the result for submission seq.
type Job[T any] func(ctx context.Context, seq int) (T, error)

// result pairs a job's output with its submission sequence id
type result[T any] struct {
	seq   int
	value T
}

// Workers returns n, or the number of CPUs when n is not positive.
func Workers(n int) int {
	if n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// Run executes jobs 0..n-1 with at most workers running at once. The
// returned slice is ordered by sequence id regardless of completion order.
// The first failing job stops jobs not yet started and its error is
// returned; so does cancelling ctx.
func Run[T any](ctx context.Context, workers, n int, job Job[T]) ([]T, error) {
	if n == 0 {
		return nil, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(Workers(workers))
	results := make(chan result[T], n)

	go func() {
		for seq := range n {
			if gctx.Err() != nil {
				break
			}
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				value, err := job(gctx, seq)
				if err != nil {
					return fmt.Errorf("job %d: %w", seq, err)
				}
				results <- result[T]{seq: seq, value: value}
				return nil
			})
		}
		g.Wait()
		close(results)
	}()

	collected := make([]result[T], 0, n)
	for r := range results {
		collected = append(collected, r)
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if len(collected) < n {
		return nil, ctx.Err()
	}

	slices.SortFunc(collected, func(a, b result[T]) int {
		return a.seq - b.seq
	})

	values := make([]T, len(collected))
	for i, r := range collected {
		values[i] = r.value
	}
	return values, nil
}
