/*
Package solver implements a WALKSAT-style stochastic local search for
boolean satisfiability over 3-literal clauses.

Its input can be either a DIMACS CNF stream, a slice of clauses, or a
solver.Formula built by hand. The solver then looks for a model, i.e a set
of bindings for all variables that makes every clause true. The search is
incomplete: it can find a model but never prove there is none, and it is
bounded by a flip budget that is the only guarantee of termination.

Describing a formula

A formula can be described in several ways:

1. parse a DIMACS stream (io.Reader). If the io.Reader produces the following content:

    p cnf 4 3
    1 2 3 0
    -1 -2 4 0
    2 -3 -4 0

the programmer can create the Formula by doing:

    f, err := solver.ParseCNF(r)

2. create the equivalent list of list of literals:

    f, err := solver.ParseSlice([][]int{
        {1, 2, 3},
        {-1, -2, 4},
        {2, -3, -4},
    })

3. generate a random instance, for instance at the phase-transition
clause/variable ratio:

    f, err := solver.Random3SAT(rng, 100, int(100*solver.PhaseTransitionRatio))

Solving a formula

To solve a formula, one creates a walker with a flip budget and a
randomness source, then calls Solve. Solve returns Sat when a model was
found and Indet when the budget ran out; a walker never returns Unsat.

    w, err := solver.New(f, 100000, rng)
    if err != nil {
        // malformed input
    }
    if w.Solve() == solver.Sat {
        model := w.Model()
        // model[v] is the binding of variable v, for v in 1..f.NbVars
    }

Passing a nil randomness source seeds one from the current time. Two runs
with generators seeded identically follow the exact same flip trajectory.

The one-call form returns the solved flag and the assignment directly:

    solved, model, err := solver.Search(f, 100000, rng)

Independent attempts with different seeds can run concurrently on the
same Formula, each owning its private Walker; see the portfolio package.
*/
package solver
