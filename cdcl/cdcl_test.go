package cdcl

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crillab/walksat/solver"
)

func TestSolveSat(t *testing.T) {
	f, err := solver.ParseSlice([][]int{{1, 2, 3}, {-1, -2, 4}, {2, -3, -4}})
	require.NoError(t, err)

	status, model, err := Solve(context.Background(), f)
	require.NoError(t, err)
	require.Equal(t, solver.Sat, status)

	nb, err := solver.Unsatisfied(f, model)
	require.NoError(t, err)
	assert.Zero(t, nb, "returned model should satisfy every clause")
}

func TestSolveUnsat(t *testing.T) {
	f, err := solver.ParseSlice([][]int{{1, 1, 1}, {-1, -1, -1}})
	require.NoError(t, err)

	status, model, err := Solve(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, solver.Unsat, status)
	assert.Nil(t, model)
}

func TestSolveInvalidFormula(t *testing.T) {
	f := &solver.Formula{NbVars: 2, Clauses: []solver.Clause{{1, 2, 3}}}
	_, _, err := Solve(context.Background(), f)
	assert.ErrorIs(t, err, solver.ErrVarOutOfRange)
}

// The complete solver must agree with the walksat evaluator: any instance
// walksat solves is declared satisfiable here as well.
func TestSolveAgreesWithWalksat(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	f, err := solver.Random3SAT(rng, 20, 60)
	require.NoError(t, err)

	solved, _, err := solver.Search(f, 200000, rng)
	require.NoError(t, err)
	if !solved {
		t.Skip("local search exhausted its budget, nothing to cross-check")
	}

	status, model, err := Solve(context.Background(), f)
	require.NoError(t, err)
	require.Equal(t, solver.Sat, status)
	nb, err := solver.Unsatisfied(f, model)
	require.NoError(t, err)
	assert.Zero(t, nb)
}
