package main

import (
	"context"
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/crillab/walksat/cdcl"
	"github.com/crillab/walksat/portfolio"
	"github.com/crillab/walksat/solver"
)

func newSolveCmd() *cobra.Command {
	var (
		flips    int
		attempts int
		workers  int
		seed     int64
		complete bool
		timeout  time.Duration
	)
	cmd := &cobra.Command{
		Use:   "solve file.cnf",
		Short: "Look for a model of a DIMACS CNF formula",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := parseCNFFile(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("c solving %s: %d vars, %d clauses\n", args[0], f.NbVars, len(f.Clauses))
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			ctx := context.Background()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}
			start := time.Now()
			res, err := portfolio.Solve(ctx, f, portfolio.Options{
				Attempts: attempts,
				MaxFlips: flips,
				Seed:     seed,
				Workers:  workers,
			})
			if err != nil {
				return err
			}
			log.WithFields(log.Fields{
				"status":   res.Status.String(),
				"duration": time.Since(start),
				"seed":     seed,
			}).Debug("portfolio finished")
			if res.Status == solver.Sat {
				fmt.Printf("c model found by attempt %d after %d flips\n", res.Attempt, res.Stats.NbFlips)
				outputModel(res.Model)
				return nil
			}
			if !complete {
				fmt.Printf("s INDETERMINATE\n")
				return nil
			}
			fmt.Printf("c local search exhausted, escalating to complete solver\n")
			status, model, err := cdcl.Solve(ctx, f)
			if err != nil {
				return err
			}
			switch status {
			case solver.Sat:
				outputModel(model)
			case solver.Unsat:
				fmt.Printf("s UNSATISFIABLE\n")
			default:
				fmt.Printf("s INDETERMINATE\n")
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&flips, "flips", 1000000, "flip budget of each attempt")
	cmd.Flags().IntVar(&attempts, "attempts", 8, "number of independent attempts")
	cmd.Flags().IntVar(&workers, "workers", 0, "max concurrent attempts (0 = number of CPUs)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "base random seed (0 = derive from current time)")
	cmd.Flags().BoolVar(&complete, "complete", false, "settle exhausted instances with a complete CDCL solver")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "overall time limit (0 = none)")
	return cmd
}

func parseCNFFile(path string) (*solver.Formula, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %v", path, err)
	}
	defer f.Close()
	res, err := solver.ParseCNF(f)
	if err != nil {
		return nil, fmt.Errorf("could not parse DIMACS file %q: %v", path, err)
	}
	return res, nil
}

func outputModel(model solver.Assignment) {
	fmt.Printf("s SATISFIABLE\nv ")
	for _, lit := range model.Lits() {
		fmt.Printf("%d ", lit)
	}
	fmt.Printf("\n")
}
