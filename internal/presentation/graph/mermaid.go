package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/switchback/pkg/domain"
	"github.com/aretw0/switchback/pkg/toggle"
)

// GenerateMermaid produces a Mermaid flowchart of the states visited along a
// solution. Each node shows the token position and flags; each edge is
// labelled with the move taken.
// Styling:
// - Start: ((Circle))
// - Goal: [[Subroutine]]
// - Intermediate: [Rectangle]
func GenerateMermaid(initial toggle.State, moves []domain.Move) (string, error) {
	states := []toggle.State{initial}
	current := initial
	for i, m := range moves {
		next, ok := current.Apply(m)
		if !ok {
			return "", fmt.Errorf("%w: step %d (%s)", toggle.ErrIllegalMove, i+1, m)
		}
		states = append(states, next)
		current = next
	}

	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for i, s := range states {
		opener, closer := "[", "]"
		switch {
		case i == 0:
			opener, closer = "((", "))"
		case i == len(states)-1 && s.IsTerminal():
			opener, closer = "[[", "]]"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", nodeID(i), opener, label(s), closer))
	}

	for i, m := range moves {
		sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n", nodeID(i), m, nodeID(i+1)))
	}

	sb.WriteString("\n    %% Overlay Styles\n")
	// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme
	sb.WriteString("    classDef flagged fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
	sb.WriteString("    classDef goal fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

	for i, s := range states {
		if i == len(states)-1 && s.IsTerminal() {
			sb.WriteString(fmt.Sprintf("    class %s goal;\n", nodeID(i)))
		} else if anySet(s.Flags()) {
			sb.WriteString(fmt.Sprintf("    class %s flagged;\n", nodeID(i)))
		}
	}

	return sb.String(), nil
}

func nodeID(i int) string {
	return fmt.Sprintf("s%d", i)
}

func label(s toggle.State) string {
	flags := s.Flags()
	if len(flags) == 0 {
		return s.Pos().String()
	}
	bits := make([]byte, len(flags))
	for i, set := range flags {
		bits[i] = '0'
		if set {
			bits[i] = '1'
		}
	}
	return fmt.Sprintf("%s <br/> %s", s.Pos(), bits)
}

func anySet(flags []bool) bool {
	for _, f := range flags {
		if f {
			return true
		}
	}
	return false
}
