package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "walksat",
		Short: "A stochastic local search solver for 3-SAT",
		Long: `walksat looks for models of 3-SAT formulas in DIMACS CNF format using
WALKSAT-style stochastic local search: independent randomized attempts,
each flipping variables of unsatisfied clauses until a model is found or
the flip budget runs out. Exhausted instances can optionally be settled
by a complete CDCL solver.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")
	rootCmd.AddCommand(newSolveCmd(), newGenCmd(), newCheckCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
