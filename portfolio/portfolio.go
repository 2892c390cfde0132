// Package portfolio runs independent walksat attempts over a shared
// formula and returns the first model found. Local search is sensitive to
// its starting point, so a handful of restarts with different seeds is
// usually far more effective than a single attempt with a larger budget.
package portfolio

import (
	"context"
	"math/rand"
	"runtime"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/crillab/walksat/solver"
)

// Options control a portfolio run.
type Options struct {
	Attempts int   // How many independent searches to run. Defaults to 1.
	MaxFlips int   // Flip budget of each attempt.
	Seed     int64 // Base seed; attempt i derives its generator from Seed+i.
	Workers  int   // Maximum concurrent attempts. Defaults to the number of CPUs.
}

// A Result is the outcome of a portfolio run.
type Result struct {
	Status  solver.Status
	Model   solver.Assignment // Model of the formula, only meaningful when Status is Sat
	Attempt int               // Index of the attempt that found the model
	Stats   solver.Stats      // Statistics of that attempt
}

// Solve runs up to opts.Attempts independent searches of f and returns as
// soon as one of them finds a model. The formula is shared read-only;
// every attempt owns its assignment and randomness source, so runs with
// the same options are reproducible regardless of scheduling.
//
// The context is checked between attempts only: a single search has no
// suspension point and always runs to budget exhaustion. Solve returns a
// Result with status Indet when every attempt exhausted its budget, and
// an error only for malformed input or a cancelled context.
func Solve(ctx context.Context, f *solver.Formula, opts Options) (Result, error) {
	if err := f.Validate(); err != nil {
		return Result{}, err
	}
	attempts := opts.Attempts
	if attempts < 1 {
		attempts = 1
	}
	workers := opts.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	found := make(chan Result, 1)
	grp := new(errgroup.Group)
	grp.SetLimit(workers)
	for i := 0; i < attempts; i++ {
		i := i
		grp.Go(func() error {
			if runCtx.Err() != nil {
				return nil
			}
			w, err := solver.New(f, opts.MaxFlips, rand.New(rand.NewSource(opts.Seed+int64(i))))
			if err != nil {
				return err
			}
			status := w.Solve()
			log.WithFields(log.Fields{
				"attempt": i,
				"status":  status.String(),
				"flips":   w.Stats.NbFlips,
			}).Debug("search attempt finished")
			if status == solver.Sat {
				select {
				case found <- Result{Status: solver.Sat, Model: w.Model(), Attempt: i, Stats: w.Stats}:
					cancel()
				default:
				}
			}
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return Result{}, err
	}
	select {
	case res := <-found:
		return res, nil
	default:
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	return Result{Status: solver.Indet}, nil
}
