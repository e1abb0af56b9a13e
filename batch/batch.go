package batch

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

// Run solves problems concurrently with at most workers in flight
// (workers ≤ 0 means runtime.NumCPU()). Outcomes are returned in input order.
//
// A failing problem records its error in Outcome.Err and does not stop the
// others; Run itself fails only when ctx is done, in which case unfinished
// outcomes are discarded and ctx.Err() is returned.
func Run(ctx context.Context, problems []Problem, workers int) ([]Outcome, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	out := make([]Outcome, len(problems))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, p := range problems {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			began := time.Now()
			answer, err := p.Solve(gctx)
			out[i] = Outcome{Problem: p, Answer: answer, Err: err, Elapsed: time.Since(began)}
			// a solver that stopped on cancellation aborts the run
			if ctxErr := gctx.Err(); ctxErr != nil {
				return ctxErr
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
