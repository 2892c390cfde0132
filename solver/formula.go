package solver

import "fmt"

// A Clause is an ordered triple of literals. It is satisfied by an
// assignment iff at least one of its literals is true under it.
type Clause [3]Lit

// CNF returns a DIMACS CNF representation of the clause.
func (c Clause) CNF() string {
	return fmt.Sprintf("%d %d %d 0", c[0], c[1], c[2])
}

// sat reports whether a satisfies c. Scanning stops at the first true
// literal. It assumes a binds every variable of c.
func (c Clause) sat(a Assignment) bool {
	for _, lit := range c {
		if a[lit.Var()] == lit.IsPositive() {
			return true
		}
	}
	return false
}

// A Formula is a list of 3-literal clauses & a nb of vars.
// Variables are numbered 1 to NbVars. A Formula is read-only during a
// search run and may be shared by concurrent runs.
type Formula struct {
	NbVars  int      // Total nb of vars
	Clauses []Clause // Ordered list of clauses
}

// Validate checks that the formula is well-formed: a positive number of
// variables, no null literal, every variable within [1, NbVars]. The
// returned error wraps ErrInvalidFormula or ErrVarOutOfRange.
func (f *Formula) Validate() error {
	if f.NbVars < 1 {
		return fmt.Errorf("%w: formula declares %d variables", ErrInvalidFormula, f.NbVars)
	}
	for i, c := range f.Clauses {
		for _, lit := range c {
			if lit == 0 {
				return fmt.Errorf("%w: null literal in clause %d", ErrInvalidFormula, i)
			}
			if lit.Var() > f.NbVars {
				return fmt.Errorf("%w: literal %d in clause %d for formula with %d vars only", ErrVarOutOfRange, lit, i, f.NbVars)
			}
		}
	}
	return nil
}

// CNF returns a DIMACS CNF representation of the formula.
func (f *Formula) CNF() string {
	res := fmt.Sprintf("p cnf %d %d\n", f.NbVars, len(f.Clauses))
	for _, clause := range f.Clauses {
		res += fmt.Sprintf("%s\n", clause.CNF())
	}
	return res
}

// unsatisfied counts the clauses of f that a does not satisfy. It assumes
// f and a were validated.
func (f *Formula) unsatisfied(a Assignment) int {
	nb := 0
	for _, c := range f.Clauses {
		if !c.sat(a) {
			nb++
		}
	}
	return nb
}

// firstUnsat returns the index of the first unsatisfied clause found when
// scanning cyclically from start, or -1 if a satisfies f. Starting the
// scan at a random index avoids a positional bias toward low-indexed
// clauses.
func (f *Formula) firstUnsat(a Assignment, start int) int {
	for k := range f.Clauses {
		idx := (start + k) % len(f.Clauses)
		if !f.Clauses[idx].sat(a) {
			return idx
		}
	}
	return -1
}
