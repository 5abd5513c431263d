package domain

import (
	"fmt"
	"strings"
)

// Move is a displacement over the grid. Y grows downwards (row 0 is the top).
type Move struct {
	Dx int `json:"dx"`
	Dy int `json:"dy"`
}

// Standard directions.
var (
	Up    = Move{Dx: 0, Dy: -1}
	Down  = Move{Dx: 0, Dy: 1}
	Left  = Move{Dx: -1, Dy: 0}
	Right = Move{Dx: 1, Dy: 0}
)

// DefaultOrder is the canonical enumeration order of moves.
// When several shortest solutions exist, the one returned by the search is the
// first discovered under this order.
var DefaultOrder = []Move{Down, Right, Up, Left}

// String returns the human readable direction label.
func (m Move) String() string {
	switch m {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	}
	return fmt.Sprintf("Move(%d,%d)", m.Dx, m.Dy)
}

// ParseMove converts a direction label (case-insensitive, single letter allowed).
func ParseMove(s string) (Move, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return Up, nil
	case "down", "d":
		return Down, nil
	case "left", "l":
		return Left, nil
	case "right", "r":
		return Right, nil
	}
	return Move{}, fmt.Errorf("%w: %q", ErrInvalidMove, s)
}

// ParseOrder builds a move order from direction labels.
// An empty list yields DefaultOrder. Duplicates are rejected.
func ParseOrder(names []string) ([]Move, error) {
	if len(names) == 0 {
		return append([]Move(nil), DefaultOrder...), nil
	}

	order := make([]Move, 0, len(names))
	seen := make(map[Move]bool, len(names))
	for _, name := range names {
		m, err := ParseMove(name)
		if err != nil {
			return nil, err
		}
		if seen[m] {
			return nil, fmt.Errorf("%w: duplicate %s in order", ErrInvalidMove, m)
		}
		seen[m] = true
		order = append(order, m)
	}
	return order, nil
}

// FormatMoves joins the labels of a move sequence with sep.
func FormatMoves(moves []Move, sep string) string {
	labels := make([]string, len(moves))
	for i, m := range moves {
		labels[i] = m.String()
	}
	return strings.Join(labels, sep)
}
