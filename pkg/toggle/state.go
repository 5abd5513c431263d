package toggle

import (
	"encoding/binary"
	"fmt"
	"slices"
	"strings"

	"github.com/aretw0/switchback/pkg/domain"
	"github.com/cespare/xxhash/v2"
)

// State is one immutable puzzle configuration.
// The zero value is not usable; states are created by Board.Start and Apply.
type State struct {
	board   *Board
	pos     Point
	grid    Grid
	flags   uint64
	history []domain.Move
}

var _ domain.State[State, domain.Move] = State{}

// Board returns the rules the state belongs to.
func (s State) Board() *Board { return s.board }

// Pos returns the token position.
func (s State) Pos() Point { return s.pos }

// Grid returns the feature grid.
func (s State) Grid() Grid { return s.grid }

// FlagSet reports whether trigger i has been entered.
func (s State) FlagSet(i int) bool {
	return i >= 0 && i < MaxTriggers && s.flags&(1<<i) != 0
}

// Flags returns the trigger flags in board order.
func (s State) Flags() []bool {
	out := make([]bool, len(s.board.triggers))
	for i := range out {
		out[i] = s.FlagSet(i)
	}
	return out
}

// IsTerminal reports whether the token stands on the exit with every flag set.
func (s State) IsTerminal() bool {
	return s.pos == s.board.exit && s.flags == s.board.allFlags()
}

// Actions returns the board's move order.
func (s State) Actions() []domain.Move {
	return s.board.Moves()
}

// Apply moves the token by m. It reports false when the destination is outside
// the field, is a wall, or is blocking in the current grid.
func (s State) Apply(m domain.Move) (State, bool) {
	dest := s.pos.Add(m.Dx, m.Dy)
	if !s.grid.Contains(dest) || s.board.walls[dest] {
		return State{}, false
	}
	if s.board.polarity.blocks(s.grid.At(dest)) {
		return State{}, false
	}

	flags := s.flags
	for i, t := range s.board.triggers {
		if t == dest {
			flags |= 1 << i
		}
	}

	return State{
		board:   s.board,
		pos:     dest,
		grid:    s.grid.Flip(s.board.toggled(s.grid, dest)...),
		flags:   flags,
		history: append(slices.Clip(s.history), m),
	}, true
}

// Equal compares position, grid and flags. History is ignored.
func (s State) Equal(other State) bool {
	return s.pos == other.pos && s.flags == other.flags && s.grid.Equal(other.grid)
}

// Hash fingerprints position, grid and flags. History is ignored.
func (s State) Hash() uint64 {
	buf := make([]byte, 0, 32+len(s.grid.cells)/8)
	buf = binary.AppendUvarint(buf, uint64(s.pos.X))
	buf = binary.AppendUvarint(buf, uint64(s.pos.Y))
	buf = binary.LittleEndian.AppendUint64(buf, s.flags)
	buf = s.grid.appendBits(buf)
	return xxhash.Sum64(buf)
}

// History returns a copy of the moves taken from the initial state.
func (s State) History() []domain.Move {
	return slices.Clone(s.history)
}

// String renders the flags on the first line followed by the field:
// x token, o raised, . lowered, # wall.
func (s State) String() string {
	var sb strings.Builder
	for i := range s.board.triggers {
		if s.FlagSet(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	sb.WriteByte('\n')

	for y := 0; y < s.grid.height; y++ {
		for x := 0; x < s.grid.width; x++ {
			p := Point{X: x, Y: y}
			switch {
			case p == s.pos:
				sb.WriteByte('x')
			case s.board.walls[p]:
				sb.WriteByte('#')
			case s.grid.At(p):
				sb.WriteByte('o')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Replay applies moves to initial in order and returns the final state.
func Replay(initial State, moves []domain.Move) (State, error) {
	current := initial
	for i, m := range moves {
		next, ok := current.Apply(m)
		if !ok {
			return current, fmt.Errorf("%w: step %d (%s) from %s", ErrIllegalMove, i+1, m, current.pos)
		}
		current = next
	}
	return current, nil
}
