package main

import (
	"os"

	"github.com/aretw0/switchback/internal/catalog"
	"github.com/aretw0/switchback/internal/cli"
	"github.com/spf13/cobra"
)

// solveCmd represents the solve command
var solveCmd = &cobra.Command{
	Use:       "solve [puzzle]",
	Short:     "Solve a built-in puzzle",
	Long:      `Runs a breadth-first search on the named puzzle and prints the shortest move sequence, one move per line.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: catalog.Names(),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		name := "portal"
		if len(args) > 0 {
			name = args[0]
		}
		return cli.RunSolve(cli.SolveOptions{
			Puzzle: name,
			Config: cfg,
			Out:    os.Stdout,
		})
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().Bool("frames", false, "Print the board after every move")
	solveCmd.Flags().Bool("markdown", false, "Print a rendered markdown report instead of the move list")
	solveCmd.Flags().Bool("metrics", false, "Print search metrics in Prometheus text format")
	solveCmd.Flags().StringSlice("order", nil, "Move enumeration order, e.g. down,right,up,left")
	solveCmd.Flags().Int("max-states", 0, "Stop after exploring this many states (0 = unlimited)")

	// Make 'solve' the default if no command is provided
	rootCmd.RunE = solveCmd.RunE
}
