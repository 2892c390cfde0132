package solver

import (
	"fmt"
	"math/rand"
)

// PhaseTransitionRatio is the clause/variable ratio at which random 3-SAT
// instances are empirically hardest. Below it most instances are
// satisfiable, above it most are not.
const PhaseTransitionRatio = 4.26

// Random3SAT generates a random 3-SAT formula with nbVars variables and
// nbClauses clauses. Each clause gets 3 distinct variables drawn
// uniformly, each negated with probability 1/2. Duplicate clauses are
// possible.
func Random3SAT(rng *rand.Rand, nbVars, nbClauses int) (*Formula, error) {
	if nbVars < 3 {
		return nil, fmt.Errorf("%w: %d vars, need at least 3 to build clauses over distinct variables", ErrInvalidFormula, nbVars)
	}
	if nbClauses < 0 {
		return nil, fmt.Errorf("%w: negative clause count %d", ErrInvalidFormula, nbClauses)
	}
	f := &Formula{NbVars: nbVars, Clauses: make([]Clause, nbClauses)}
	for i := range f.Clauses {
		var vars [3]int
		vars[0] = 1 + rng.Intn(nbVars)
		for {
			vars[1] = 1 + rng.Intn(nbVars)
			if vars[1] != vars[0] {
				break
			}
		}
		for {
			vars[2] = 1 + rng.Intn(nbVars)
			if vars[2] != vars[0] && vars[2] != vars[1] {
				break
			}
		}
		for j, v := range vars {
			lit := Lit(v)
			if rng.Intn(2) == 0 {
				lit = -lit
			}
			f.Clauses[i][j] = lit
		}
	}
	return f, nil
}
