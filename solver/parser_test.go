package solver

import (
	"errors"
	"strings"
	"testing"
)

const sampleCNF = `c sample 3-SAT instance
p cnf 4 3
1 2 3 0
-1 -2 4 0
2 -3 -4 0
`

func TestParseCNF(t *testing.T) {
	f, err := ParseCNF(strings.NewReader(sampleCNF))
	if err != nil {
		t.Fatal(err)
	}
	if f.NbVars != 4 {
		t.Errorf("expected 4 vars, got %d", f.NbVars)
	}
	if len(f.Clauses) != 3 {
		t.Fatalf("expected 3 clauses, got %d", len(f.Clauses))
	}
	if f.Clauses[1] != (Clause{-1, -2, 4}) {
		t.Errorf("invalid second clause: %v", f.Clauses[1])
	}
	if err := f.Validate(); err != nil {
		t.Errorf("parsed formula does not validate: %v", err)
	}
}

func TestParseCNFRoundTrip(t *testing.T) {
	f, err := ParseCNF(strings.NewReader(sampleCNF))
	if err != nil {
		t.Fatal(err)
	}
	f2, err := ParseCNF(strings.NewReader(f.CNF()))
	if err != nil {
		t.Fatalf("could not reparse CNF output: %v", err)
	}
	if f2.NbVars != f.NbVars || len(f2.Clauses) != len(f.Clauses) {
		t.Fatalf("round trip changed the formula: %d/%d vars, %d/%d clauses", f.NbVars, f2.NbVars, len(f.Clauses), len(f2.Clauses))
	}
	for i := range f.Clauses {
		if f.Clauses[i] != f2.Clauses[i] {
			t.Errorf("clause %d changed: %v vs %v", i, f.Clauses[i], f2.Clauses[i])
		}
	}
}

var parseErrorTests = []struct {
	name string
	cnf  string
	want error
}{
	{"short clause", "p cnf 3 1\n1 2 0\n", ErrInvalidFormula},
	{"long clause", "p cnf 4 1\n1 2 3 4 0\n", ErrInvalidFormula},
	{"literal out of range", "p cnf 2 1\n1 2 3 0\n", ErrVarOutOfRange},
	{"unfinished clause", "p cnf 3 1\n1 2 3\n", ErrInvalidFormula},
}

func TestParseCNFErrors(t *testing.T) {
	for _, tt := range parseErrorTests {
		if _, err := ParseCNF(strings.NewReader(tt.cnf)); !errors.Is(err, tt.want) {
			t.Errorf("%s: expected error %v, got %v", tt.name, tt.want, err)
		}
	}
}

func TestParseSlice(t *testing.T) {
	f, err := ParseSlice([][]int{{1, 2, 3}, {-2, -3, 4}})
	if err != nil {
		t.Fatal(err)
	}
	if f.NbVars != 4 {
		t.Errorf("expected 4 vars, got %d", f.NbVars)
	}
	if len(f.Clauses) != 2 {
		t.Errorf("expected 2 clauses, got %d", len(f.Clauses))
	}
}

func TestParseSliceErrors(t *testing.T) {
	if _, err := ParseSlice([][]int{{1, 2}}); !errors.Is(err, ErrInvalidFormula) {
		t.Errorf("expected ErrInvalidFormula for binary clause, got %v", err)
	}
	if _, err := ParseSlice([][]int{{1, 0, 2}}); !errors.Is(err, ErrInvalidFormula) {
		t.Errorf("expected ErrInvalidFormula for null literal, got %v", err)
	}
}
