package solver

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseSlice parses a slice of slices of ints and returns the equivalent
// formula. Each inner slice must hold exactly 3 nonzero literals. NbVars
// is set to the highest variable index appearing in the clauses.
func ParseSlice(cnf [][]int) (*Formula, error) {
	var f Formula
	f.Clauses = make([]Clause, len(cnf))
	for i, line := range cnf {
		if len(line) != 3 {
			return nil, fmt.Errorf("%w: clause %d has %d literals, want 3", ErrInvalidFormula, i, len(line))
		}
		for j, val := range line {
			if val == 0 {
				return nil, fmt.Errorf("%w: null literal in clause %d", ErrInvalidFormula, i)
			}
			lit := Lit(val)
			f.Clauses[i][j] = lit
			if v := lit.Var(); v > f.NbVars {
				f.NbVars = v
			}
		}
	}
	return &f, nil
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// readInt reads an int from r.
// 'b' is the last read byte. It can be a space, a '-' or a digit.
// The int can be negated.
// All spaces before the int value are ignored.
// Can return EOF.
func readInt(b *byte, r *bufio.Reader) (res int, err error) {
	for err == nil && isSpace(*b) {
		*b, err = r.ReadByte()
	}
	if err == io.EOF {
		return res, io.EOF
	}
	if err != nil {
		return res, fmt.Errorf("could not read digit: %v", err)
	}
	neg := 1
	if *b == '-' {
		neg = -1
		*b, err = r.ReadByte()
		if err != nil {
			return 0, fmt.Errorf("cannot read int: %v", err)
		}
	}
	for err == nil {
		if *b < '0' || *b > '9' {
			return 0, fmt.Errorf("cannot read int: %q is not a digit", *b)
		}
		res = 10*res + int(*b-'0')
		*b, err = r.ReadByte()
		if isSpace(*b) {
			break
		}
	}
	res *= neg
	return res, err
}

func parseHeader(r *bufio.Reader) (nbVars, nbClauses int, err error) {
	line, err := r.ReadString('\n')
	if err != nil {
		return 0, 0, fmt.Errorf("cannot read header: %v", err)
	}
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return 0, 0, fmt.Errorf("invalid syntax %q in header", line)
	}
	nbVars, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("nbvars not an int : %q", fields[1])
	}
	nbClauses, err = strconv.Atoi(fields[2])
	if err != nil {
		return 0, 0, fmt.Errorf("nbClauses not an int : '%s'", fields[2])
	}
	return nbVars, nbClauses, nil
}

// ParseCNF parses a DIMACS CNF stream and returns the corresponding
// formula. Since the solver only deals with 3-SAT, a clause that does not
// have exactly 3 literals is an error.
func ParseCNF(f io.Reader) (*Formula, error) {
	r := bufio.NewReader(f)
	var (
		nbClauses int
		res       Formula
	)
	b, err := r.ReadByte()
	for err == nil {
		if b == 'c' { // Ignore comment
			b, err = r.ReadByte()
			for err == nil && b != '\n' {
				b, err = r.ReadByte()
			}
		} else if b == 'p' { // Parse header
			res.NbVars, nbClauses, err = parseHeader(r)
			if err != nil {
				return nil, fmt.Errorf("cannot parse CNF header: %v", err)
			}
			res.Clauses = make([]Clause, 0, nbClauses)
		} else {
			lits := make([]Lit, 0, 3)
			for {
				val, err := readInt(&b, r)
				if err == io.EOF {
					if len(lits) != 0 { // This is not a trailing space at the end...
						return nil, fmt.Errorf("%w: unfinished clause while EOF found", ErrInvalidFormula)
					}
					break // When there are only several useless spaces at the end of the file, that is ok
				}
				if err != nil {
					return nil, fmt.Errorf("cannot parse clause: %v", err)
				}
				if val == 0 {
					if len(lits) != 3 {
						return nil, fmt.Errorf("%w: clause %d has %d literals, want 3", ErrInvalidFormula, len(res.Clauses), len(lits))
					}
					res.Clauses = append(res.Clauses, Clause{lits[0], lits[1], lits[2]})
					break
				}
				if val > res.NbVars || -val > res.NbVars {
					return nil, fmt.Errorf("%w: literal %d for formula with %d vars only", ErrVarOutOfRange, val, res.NbVars)
				}
				lits = append(lits, Lit(val))
			}
		}
		b, err = r.ReadByte()
	}
	if err != io.EOF {
		return nil, err
	}
	return &res, nil
}
