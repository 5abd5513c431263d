package toggle

import (
	"fmt"
	"slices"

	"github.com/aretw0/switchback/pkg/domain"
)

// MaxTriggers is the largest number of trigger cells a board may declare.
const MaxTriggers = 64

// Polarity selects which feature value blocks movement.
type Polarity int

const (
	// GatesBlock: a raised cell is a closed gate.
	GatesBlock Polarity = iota
	// PlatformsCarry: a lowered cell is a gap; only raised platforms can be entered.
	PlatformsCarry
)

func (p Polarity) String() string {
	switch p {
	case GatesBlock:
		return "gates"
	case PlatformsCarry:
		return "platforms"
	}
	return fmt.Sprintf("Polarity(%d)", int(p))
}

// blocks reports whether a cell with the given feature value cannot be entered.
func (p Polarity) blocks(raised bool) bool {
	if p == PlatformsCarry {
		return !raised
	}
	return raised
}

// Board holds the immutable rules of a puzzle.
// It is shared by every State derived from it.
type Board struct {
	width    int
	height   int
	exit     Point
	triggers []Point
	walls    map[Point]bool
	polarity Polarity
	moves    []domain.Move
}

// BoardOption defines a functional option for configuring a Board.
type BoardOption func(*Board)

// WithTriggers declares the cells that permanently set a flag when entered.
// Flag i corresponds to points[i]. The goal requires every flag to be set.
func WithTriggers(points ...Point) BoardOption {
	return func(b *Board) {
		b.triggers = append(b.triggers, points...)
	}
}

// WithWalls declares immovable obstacles. Walls are never entered nor toggled.
func WithWalls(points ...Point) BoardOption {
	return func(b *Board) {
		for _, p := range points {
			b.walls[p] = true
		}
	}
}

// WithPolarity sets which feature value blocks movement (default GatesBlock).
func WithPolarity(p Polarity) BoardOption {
	return func(b *Board) {
		b.polarity = p
	}
}

// WithMoveOrder sets the enumeration order of moves (default domain.DefaultOrder).
func WithMoveOrder(moves ...domain.Move) BoardOption {
	return func(b *Board) {
		b.moves = slices.Clone(moves)
	}
}

// NewBoard validates and creates the rules of a width x height puzzle whose goal is exit.
func NewBoard(width, height int, exit Point, opts ...BoardOption) (*Board, error) {
	b := &Board{
		width:  width,
		height: height,
		exit:   exit,
		walls:  make(map[Point]bool),
		moves:  slices.Clone(domain.DefaultOrder),
	}
	for _, opt := range opts {
		opt(b)
	}

	if err := b.validate(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Board) validate() error {
	if b.width < 1 || b.height < 1 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidBoard, b.width, b.height)
	}
	if !b.contains(b.exit) {
		return fmt.Errorf("%w: exit %s outside field", ErrInvalidBoard, b.exit)
	}
	if b.walls[b.exit] {
		return fmt.Errorf("%w: exit %s is a wall", ErrInvalidBoard, b.exit)
	}
	for w := range b.walls {
		if !b.contains(w) {
			return fmt.Errorf("%w: wall %s outside field", ErrInvalidBoard, w)
		}
	}

	if len(b.triggers) > MaxTriggers {
		return fmt.Errorf("%w: %d triggers, at most %d supported", ErrInvalidBoard, len(b.triggers), MaxTriggers)
	}
	seen := make(map[Point]bool, len(b.triggers))
	for _, t := range b.triggers {
		switch {
		case !b.contains(t):
			return fmt.Errorf("%w: trigger %s outside field", ErrInvalidBoard, t)
		case b.walls[t]:
			return fmt.Errorf("%w: trigger %s is a wall", ErrInvalidBoard, t)
		case seen[t]:
			return fmt.Errorf("%w: duplicate trigger %s", ErrInvalidBoard, t)
		}
		seen[t] = true
	}

	if len(b.moves) == 0 {
		return fmt.Errorf("%w: empty move order", ErrInvalidBoard)
	}
	return nil
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// Exit returns the cell the player must reach.
func (b *Board) Exit() Point { return b.exit }

// Polarity returns which feature value blocks movement.
func (b *Board) Polarity() Polarity { return b.polarity }

// Triggers returns the trigger cells in flag order.
func (b *Board) Triggers() []Point { return slices.Clone(b.triggers) }

// Moves returns the move enumeration order.
func (b *Board) Moves() []domain.Move { return slices.Clone(b.moves) }

// IsWall reports whether p is an immovable obstacle.
func (b *Board) IsWall(p Point) bool { return b.walls[p] }

func (b *Board) contains(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < b.width && p.Y < b.height
}

// allFlags is the flag mask with every trigger set.
func (b *Board) allFlags() uint64 {
	if len(b.triggers) == MaxTriggers {
		return ^uint64(0)
	}
	return 1<<len(b.triggers) - 1
}

// Start builds the initial state: the token at pos, features from rows
// (row-major, row 0 on top, 1 = raised) and the initial trigger flags.
// Missing flags default to unset. Wall cells are normalized to lowered.
func (b *Board) Start(pos Point, rows [][]int, flags ...bool) (State, error) {
	grid, err := NewGrid(rows)
	if err != nil {
		return State{}, err
	}
	if grid.Width() != b.width || grid.Height() != b.height {
		return State{}, fmt.Errorf("%w: layout is %dx%d, board is %dx%d",
			ErrInvalidBoard, grid.Width(), grid.Height(), b.width, b.height)
	}
	if !b.contains(pos) {
		return State{}, fmt.Errorf("%w: start %s outside field", ErrInvalidBoard, pos)
	}
	if b.walls[pos] {
		return State{}, fmt.Errorf("%w: start %s is a wall", ErrInvalidBoard, pos)
	}
	if len(flags) > len(b.triggers) {
		return State{}, fmt.Errorf("%w: %d flags for %d triggers", ErrInvalidBoard, len(flags), len(b.triggers))
	}

	var raisedWalls []Point
	for w := range b.walls {
		if grid.At(w) {
			raisedWalls = append(raisedWalls, w)
		}
	}
	if len(raisedWalls) > 0 {
		grid = grid.Flip(raisedWalls...)
	}

	var mask uint64
	for i, set := range flags {
		if set {
			mask |= 1 << i
		}
	}

	return State{
		board: b,
		pos:   pos,
		grid:  grid,
		flags: mask,
	}, nil
}

// toggled returns the cells flipped when the token enters dest.
func (b *Board) toggled(g Grid, dest Point) []Point {
	neighbors := g.Neighbors(dest)
	if len(b.walls) == 0 {
		return neighbors
	}
	return slices.DeleteFunc(neighbors, b.IsWall)
}
