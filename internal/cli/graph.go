package cli

import (
	"fmt"
	"io"

	"github.com/aretw0/switchback/internal/config"
	"github.com/aretw0/switchback/internal/presentation/graph"
)

// RunGraph solves the named puzzle and prints its solution path as a Mermaid diagram.
func RunGraph(w io.Writer, name string, cfg config.Config) error {
	initial, err := loadPuzzle(name, cfg)
	if err != nil {
		return err
	}
	solver, err := createSolver(cfg, nil)
	if err != nil {
		return err
	}

	sol, ok := solver.Solve(initial)
	if !ok {
		return fmt.Errorf("puzzle %s has no solution", name)
	}

	out, err := graph.GenerateMermaid(initial, sol.Moves)
	if err != nil {
		return err
	}
	fmt.Fprint(w, out)
	return nil
}
