package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/switchback/pkg/domain"
	"github.com/aretw0/switchback/pkg/search"
	"github.com/aretw0/switchback/pkg/toggle"
)

// Report builds a markdown summary of a search: the move table when solved,
// followed by the search statistics.
func Report(name string, initial toggle.State, moves []domain.Move, stats search.Stats) (string, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", name)

	if !stats.Found {
		sb.WriteString("**No solution.**\n\n")
	} else {
		fmt.Fprintf(&sb, "Solved in **%d** moves.\n\n", len(moves))
		sb.WriteString("| # | Move | Position | Flags |\n")
		sb.WriteString("|---|------|----------|-------|\n")

		current := initial
		for i, m := range moves {
			next, ok := current.Apply(m)
			if !ok {
				return "", fmt.Errorf("%w: step %d (%s)", toggle.ErrIllegalMove, i+1, m)
			}
			flags := Flags(next)
			if flags == "" {
				flags = "-"
			}
			fmt.Fprintf(&sb, "| %d | %s | %s | %s |\n", i+1, m, next.Pos(), flags)
			current = next
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Search\n\n")
	fmt.Fprintf(&sb, "- Expanded: %d\n", stats.Expanded)
	fmt.Fprintf(&sb, "- Visited: %d\n", stats.Visited)
	fmt.Fprintf(&sb, "- Duplicates: %d\n", stats.Duplicates)
	fmt.Fprintf(&sb, "- Peak frontier: %d\n", stats.MaxFrontier)
	return sb.String(), nil
}
