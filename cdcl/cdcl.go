// Package cdcl decides satisfiability of 3-SAT formulas with a complete,
// conflict-driven solver (gini). It complements the incomplete local
// search in package solver: an exhausted walksat run says nothing about
// the instance, while a cdcl run settles it either way.
package cdcl

import (
	"context"
	"errors"
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/inter"
	"github.com/go-air/gini/z"

	"github.com/crillab/walksat/solver"
)

// ErrIncomplete is returned when the context is cancelled before the
// underlying solver reaches a verdict.
var ErrIncomplete = errors.New("cancelled before a verdict was reached")

const (
	satisfiable   = 1
	unsatisfiable = -1
)

// pollPeriod is how often the asynchronous solve is tested for completion.
const pollPeriod = 10 * time.Millisecond

// Solve decides whether f is satisfiable. It returns Sat together with a
// model, Unsat with a nil assignment, or an error wrapping ErrIncomplete
// if ctx was cancelled first.
func Solve(ctx context.Context, f *solver.Formula) (solver.Status, solver.Assignment, error) {
	if err := f.Validate(); err != nil {
		return solver.Indet, nil, err
	}
	g := gini.New()
	for _, clause := range f.Clauses {
		for _, lit := range clause {
			g.Add(z.Dimacs2Lit(int(lit)))
		}
		g.Add(z.LitNull)
	}
	switch waitForVerdict(ctx, g.GoSolve()) {
	case satisfiable:
		model := solver.NewAssignment(f.NbVars)
		for v := 1; v <= f.NbVars; v++ {
			model[v] = g.Value(z.Dimacs2Lit(v))
		}
		return solver.Sat, model, nil
	case unsatisfiable:
		return solver.Unsat, nil, nil
	}
	return solver.Indet, nil, ErrIncomplete
}

// waitForVerdict polls the asynchronous solve, stopping it if the context
// is cancelled first.
func waitForVerdict(ctx context.Context, gs inter.Solve) int {
	t := time.NewTicker(pollPeriod)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return gs.Stop()
		case <-t.C:
			if result, ok := gs.Test(); ok {
				return result
			}
		}
	}
}
