package solver

import (
	"fmt"
	"math/rand"
	"time"
)

const verbosePeriod = 100000 // How many flips between two progress lines in verbose mode.

// Stats are statistics about the resolution of the problem.
// They are provided for information purpose only.
type Stats struct {
	NbFlips  int // How many flips were applied
	NbNoise  int // How many flips came from the noise branch
	NbGreedy int // How many flips came from the greedy branch
}

// A Walker looks for a model of a formula through stochastic local
// search. Starting from a random assignment, it repeatedly picks an
// unsatisfied clause and flips one of its three variables, choosing with
// equal probability between a uniformly random flip and the flip leaving
// the fewest clauses unsatisfied.
//
// A Walker is incomplete: it can find a model but can never refute one,
// and a run that exhausts its flip budget says nothing about
// satisfiability. Each Walker owns its assignment and randomness source,
// so independent Walkers sharing a Formula can safely run concurrently.
type Walker struct {
	Verbose    bool  // Indicates whether the solver should display information during solving or not. False by default
	MaxFlips   int   // Flip budget for one call to Solve
	Stats      Stats // Statistics about the solving process
	f          *Formula
	rng        *rand.Rand
	assignment Assignment
	status     Status
}

// New makes a walker for the given formula with the given flip budget.
// If rng is nil, a generator seeded with the current time is used; pass
// an explicit generator for reproducible runs.
// New returns an error if the formula is not well-formed or if maxFlips
// is negative.
func New(f *Formula, maxFlips int, rng *rand.Rand) (*Walker, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	if maxFlips < 0 {
		return nil, fmt.Errorf("negative flip budget %d", maxFlips)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Walker{
		MaxFlips: maxFlips,
		f:        f,
		rng:      rng,
	}, nil
}

// Solve looks for a model of the formula and returns the corresponding
// status: Sat if one was found, Indet if the flip budget was exhausted
// first. A Walker never returns Unsat.
//
// Every variable is first given an independent random binding. Each
// iteration then reevaluates the whole formula, so an initially
// satisfying assignment is detected even with a zero budget, and a
// formula with no clause is solved without consuming any budget.
func (w *Walker) Solve() Status {
	w.Stats = Stats{}
	w.status = Indet
	w.assignment = NewAssignment(w.f.NbVars)
	for v := 1; v <= w.f.NbVars; v++ {
		w.assignment[v] = w.rng.Intn(2) == 1
	}
	for nbFlips := 0; ; nbFlips++ {
		nbUnsat := w.f.unsatisfied(w.assignment)
		if nbUnsat == 0 {
			w.status = Sat
			return w.status
		}
		if nbFlips == w.MaxFlips {
			return w.status
		}
		if w.Verbose && nbFlips%verbosePeriod == 0 {
			fmt.Printf("c flip %d: %d unsatisfied clauses\n", nbFlips, nbUnsat)
		}
		clause := w.f.Clauses[w.f.firstUnsat(w.assignment, w.rng.Intn(len(w.f.Clauses)))]
		var v int
		if w.rng.Intn(2) == 0 {
			v = clause[w.rng.Intn(3)].Var()
			w.Stats.NbNoise++
		} else {
			v = w.bestFlip(clause)
			w.Stats.NbGreedy++
		}
		w.assignment.Flip(v)
		w.Stats.NbFlips++
	}
}

// bestFlip returns the variable of c whose flip leaves the fewest clauses
// unsatisfied. Each candidate is scored by toggling it, reevaluating the
// formula and toggling it back; the first-seen minimum wins, so ties keep
// the candidate appearing earliest in the clause.
func (w *Walker) bestFlip(c Clause) int {
	best := -1
	bestScore := len(w.f.Clauses) + 1
	for _, lit := range c {
		v := lit.Var()
		w.assignment.Flip(v)
		score := w.f.unsatisfied(w.assignment)
		w.assignment.Flip(v)
		if score < bestScore {
			bestScore = score
			best = v
		}
	}
	return best
}

// Status returns the status of the last call to Solve, or Indet if Solve
// was never called.
func (w *Walker) Status() Status {
	return w.status
}

// Model returns the assignment reached by the last call to Solve. It is a
// model of the formula only if Solve returned Sat; after an exhausted run
// it is the last assignment examined and carries no guarantee beyond
// diagnostic use.
func (w *Walker) Model() Assignment {
	return w.assignment
}

// OutputModel outputs the result and model for the formula on stdout.
func (w *Walker) OutputModel() {
	if w.status == Sat {
		fmt.Printf("s SATISFIABLE\nv ")
		for _, lit := range w.assignment.Lits() {
			fmt.Printf("%d ", lit)
		}
		fmt.Printf("\n")
	} else {
		fmt.Printf("s INDETERMINATE\n")
	}
}

// Search makes a walker for f with the given budget and randomness
// source, runs it, and returns whether a model was found together with
// the final assignment.
func Search(f *Formula, maxFlips int, rng *rand.Rand) (solved bool, model Assignment, err error) {
	w, err := New(f, maxFlips, rng)
	if err != nil {
		return false, nil, err
	}
	status := w.Solve()
	return status == Sat, w.Model(), nil
}
