package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/crillab/walksat/solver"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check file.cnf model",
		Short: "Verify that a model satisfies a DIMACS CNF formula",
		Long: `check reads a formula and a model file containing signed DIMACS
literals and reports whether the model satisfies every clause. The model
file format matches the output of solve, so it can be fed back directly:
's' and 'c' lines are ignored, a leading "v" on a line is skipped.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := parseCNFFile(args[0])
			if err != nil {
				return err
			}
			model, err := parseModelFile(args[1], f.NbVars)
			if err != nil {
				return err
			}
			nb, err := solver.Unsatisfied(f, model)
			if err != nil {
				return err
			}
			if nb != 0 {
				return fmt.Errorf("model leaves %d of %d clauses unsatisfied", nb, len(f.Clauses))
			}
			fmt.Printf("c model verified: all %d clauses satisfied\n", len(f.Clauses))
			return nil
		},
	}
}

// parseModelFile reads a model as signed DIMACS literals and checks that
// it binds every variable in [1, nbVars].
func parseModelFile(path string, nbVars int) (solver.Assignment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %v", path, err)
	}
	defer f.Close()

	model := solver.NewAssignment(nbVars)
	seen := make([]bool, nbVars+1)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "c") || strings.HasPrefix(line, "s") {
			continue
		}
		line = strings.TrimPrefix(line, "v")
		for _, tok := range strings.Fields(line) {
			val, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("invalid literal %q in %q", tok, path)
			}
			if val == 0 {
				continue
			}
			v := val
			if v < 0 {
				v = -v
			}
			if v > nbVars {
				return nil, fmt.Errorf("literal %d for formula with %d vars only", val, nbVars)
			}
			model[v] = val > 0
			seen[v] = true
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("could not read %q: %v", path, err)
	}
	for v := 1; v <= nbVars; v++ {
		if !seen[v] {
			return nil, fmt.Errorf("%w: no binding for var %d in %q", solver.ErrIncompleteAssignment, v, path)
		}
	}
	return model, nil
}
