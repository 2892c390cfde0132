package solver

import (
	"errors"
	"math/rand"
	"testing"
)

func TestRandom3SAT(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	f, err := Random3SAT(rng, 25, 100)
	if err != nil {
		t.Fatal(err)
	}
	if f.NbVars != 25 {
		t.Errorf("expected 25 vars, got %d", f.NbVars)
	}
	if len(f.Clauses) != 100 {
		t.Fatalf("expected 100 clauses, got %d", len(f.Clauses))
	}
	if err := f.Validate(); err != nil {
		t.Fatalf("generated formula does not validate: %v", err)
	}
	for i, c := range f.Clauses {
		if c[0].Var() == c[1].Var() || c[0].Var() == c[2].Var() || c[1].Var() == c[2].Var() {
			t.Errorf("clause %d references a variable twice: %v", i, c)
		}
	}
}

func TestRandom3SATDeterminism(t *testing.T) {
	f1, err := Random3SAT(rand.New(rand.NewSource(4)), 10, 42)
	if err != nil {
		t.Fatal(err)
	}
	f2, err := Random3SAT(rand.New(rand.NewSource(4)), 10, 42)
	if err != nil {
		t.Fatal(err)
	}
	for i := range f1.Clauses {
		if f1.Clauses[i] != f2.Clauses[i] {
			t.Fatalf("clause %d differs between identically seeded runs: %v vs %v", i, f1.Clauses[i], f2.Clauses[i])
		}
	}
}

func TestRandom3SATErrors(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if _, err := Random3SAT(rng, 2, 10); !errors.Is(err, ErrInvalidFormula) {
		t.Errorf("expected ErrInvalidFormula for 2 vars, got %v", err)
	}
	if _, err := Random3SAT(rng, 5, -1); !errors.Is(err, ErrInvalidFormula) {
		t.Errorf("expected ErrInvalidFormula for negative clause count, got %v", err)
	}
}
