package solver

import "fmt"

// An Assignment binds each variable of a formula to a boolean value.
// Variables are numbered from 1, so an assignment for a formula with n
// variables has length n+1 and index 0 is unused.
type Assignment []bool

// NewAssignment returns an all-false assignment for nbVars variables.
func NewAssignment(nbVars int) Assignment {
	return make(Assignment, nbVars+1)
}

// Flip toggles the binding of variable v.
func (a Assignment) Flip(v int) {
	a[v] = !a[v]
}

// Copy returns an independent copy of a.
func (a Assignment) Copy() Assignment {
	res := make(Assignment, len(a))
	copy(res, a)
	return res
}

// Lits returns the assignment as a list of signed DIMACS literals, one
// per variable in increasing order.
func (a Assignment) Lits() []Lit {
	if len(a) == 0 {
		return nil
	}
	res := make([]Lit, 0, len(a)-1)
	for v := 1; v < len(a); v++ {
		if a[v] {
			res = append(res, Lit(v))
		} else {
			res = append(res, Lit(-v))
		}
	}
	return res
}

// Unsatisfied returns the number of clauses of f that a does not satisfy,
// i.e 0 iff a is a model of f. It validates both arguments: the returned
// error wraps ErrInvalidFormula, ErrVarOutOfRange or
// ErrIncompleteAssignment. The assignment is not modified.
func Unsatisfied(f *Formula, a Assignment) (int, error) {
	if err := f.Validate(); err != nil {
		return 0, err
	}
	if len(a) < f.NbVars+1 {
		return 0, fmt.Errorf("%w: assignment of length %d for %d variables", ErrIncompleteAssignment, len(a), f.NbVars)
	}
	return f.unsatisfied(a), nil
}
