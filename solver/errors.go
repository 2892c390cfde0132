package solver

import "errors"

// Errors reported when validating formulas and assignments at the public
// boundary. The inner evaluation loop assumes well-formed input and
// performs no checks of its own, so callers constructing formulas by hand
// should validate them once before solving.
var (
	// ErrInvalidFormula means a clause does not have exactly 3 nonzero
	// literals, or the declared number of variables is not positive.
	ErrInvalidFormula = errors.New("invalid formula")
	// ErrVarOutOfRange means a literal references a variable above the
	// declared number of variables.
	ErrVarOutOfRange = errors.New("variable out of range")
	// ErrIncompleteAssignment means an assignment lacks a binding for a
	// variable referenced by the formula.
	ErrIncompleteAssignment = errors.New("incomplete assignment")
)
