package solver

// Describes basic types and constants that are used in the solver

// Status is the outcome of a solving attempt.
type Status byte

const (
	// Indet means the search ended without finding a model and without proving unsatisfiability.
	Indet = Status(iota)
	// Sat means a model was found.
	Sat
	// Unsat means the formula was proven unsatisfiable.
	Unsat
)

func (s Status) String() string {
	switch s {
	case Indet:
		return "INDETERMINATE"
	case Sat:
		return "SAT"
	case Unsat:
		return "UNSAT"
	default:
		panic("invalid status")
	}
}

// A Lit is a signed literal in the DIMACS convention: its magnitude is a
// 1-based variable index, its sign the polarity. Thus the literal -3 means
// "variable 3 must be false". The zero value is not a valid literal.
type Lit int32

// Var returns the 1-based variable index of l.
func (l Lit) Var() int {
	if l < 0 {
		return int(-l)
	}
	return int(l)
}

// IsPositive is true iff l is > 0.
func (l Lit) IsPositive() bool {
	return l > 0
}

// Negation returns -l, i.e the positive version of l if it is negative,
// or the negative version otherwise.
func (l Lit) Negation() Lit {
	return -l
}
