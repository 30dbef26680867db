package mont

import (
	"context"
	"fmt"
	"math/big"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ReduceVec sets dst[i] to src[i] * R^-1 mod n for every i.
// Nil entries of dst are allocated.
// It stops at the first input that is out of range.
//
// Panics if dst and src have different lengths.
func (r *Reducer) ReduceVec(dst, src []*big.Int) error {
	r.prepareVec(dst, src)

	for i := range src {
		if err := r.ReduceTo(dst[i], src[i]); err != nil {
			return fmt.Errorf("index %d: %w", i, err)
		}
	}
	return nil
}

// ReduceVecParallel is the parallel version of [Reducer.ReduceVec].
// If workers <= 0, runtime.NumCPU() workers are used.
// Entries of dst after the first failing index may or may not be written.
//
// Panics if dst and src have different lengths.
func (r *Reducer) ReduceVecParallel(ctx context.Context, dst, src []*big.Int, workers int) error {
	r.prepareVec(dst, src)
	if len(src) == 0 {
		return ctx.Err()
	}

	workSize := workers
	if workSize <= 0 {
		workSize = runtime.NumCPU()
	}
	workSize = min(workSize, len(src))

	g, gctx := errgroup.WithContext(ctx)

	batchJobs := make(chan int)
	g.Go(func() error {
		defer close(batchJobs)
		for i := range src {
			if err := gctx.Err(); err != nil {
				return err
			}

			select {
			case batchJobs <- i:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < workSize; w++ {
		g.Go(func() error {
			for i := range batchJobs {
				if err := r.ReduceTo(dst[i], src[i]); err != nil {
					return fmt.Errorf("index %d: %w", i, err)
				}
			}
			return nil
		})
	}

	return g.Wait()
}

func (r *Reducer) prepareVec(dst, src []*big.Int) {
	if len(dst) != len(src) {
		panic("length mismatch")
	}

	for i := range dst {
		if dst[i] == nil {
			dst[i] = big.NewInt(0)
		}
	}
}
