package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/crillab/walksat/solver"
)

func newGenCmd() *cobra.Command {
	var (
		nbVars int
		ratio  float64
		seed   int64
		output string
	)
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a random 3-SAT instance in DIMACS CNF format",
		Long: `gen emits a random 3-SAT formula at the given clause/variable ratio.
The default ratio of 4.26 sits at the phase transition, where random
instances are empirically hardest to solve.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			rng := rand.New(rand.NewSource(seed))
			f, err := solver.Random3SAT(rng, nbVars, int(float64(nbVars)*ratio))
			if err != nil {
				return err
			}
			var out io.Writer = os.Stdout
			if output != "" {
				file, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("could not create %q: %v", output, err)
				}
				defer file.Close()
				out = file
			}
			fmt.Fprintf(out, "c random 3-SAT: %d vars, ratio %.2f, seed %d\n", nbVars, ratio, seed)
			_, err = io.WriteString(out, f.CNF())
			return err
		},
	}
	cmd.Flags().IntVar(&nbVars, "vars", 100, "number of variables")
	cmd.Flags().Float64Var(&ratio, "ratio", solver.PhaseTransitionRatio, "clause/variable ratio")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = derive from current time)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}
