// Package catalog holds the built-in puzzles exposed by the CLI.
package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/aretw0/switchback/pkg/domain"
	"github.com/aretw0/switchback/pkg/toggle"
)

// ErrUnknownPuzzle is returned when a puzzle name is not in the catalog.
var ErrUnknownPuzzle = errors.New("unknown puzzle")

// Puzzle is a named, reproducible initial configuration.
type Puzzle struct {
	Name        string
	Description string

	width, height int
	exit          toggle.Point
	start         toggle.Point
	rows          [][]int
	opts          []toggle.BoardOption
}

// Build creates the initial state. Extra options are applied after the
// puzzle's own (e.g. a custom move order).
func (p Puzzle) Build(extra ...toggle.BoardOption) (toggle.State, error) {
	opts := append(slices.Clone(p.opts), extra...)
	board, err := toggle.NewBoard(p.width, p.height, p.exit, opts...)
	if err != nil {
		return toggle.State{}, fmt.Errorf("puzzle %s: %w", p.Name, err)
	}
	state, err := board.Start(p.start, p.rows)
	if err != nil {
		return toggle.State{}, fmt.Errorf("puzzle %s: %w", p.Name, err)
	}
	return state, nil
}

var puzzles = []Puzzle{
	{
		Name:        "portal",
		Description: "3x3 gate field; press the door button before reaching the exit",
		width:       3,
		height:      3,
		exit:        toggle.Point{X: 2, Y: 0},
		start:       toggle.Point{X: 1, Y: 2},
		rows: [][]int{
			{0, 1, 1},
			{0, 0, 0},
			{0, 0, 0},
		},
		opts: []toggle.BoardOption{
			toggle.WithPolarity(toggle.GatesBlock),
			toggle.WithTriggers(toggle.Point{X: 0, Y: 2}),
		},
	},
	{
		Name:        "hamlet",
		Description: "5x4 platform field; pull all four levers before reaching the exit",
		width:       5,
		height:      4,
		exit:        toggle.Point{X: 3, Y: 0},
		start:       toggle.Point{X: 1, Y: 3},
		rows: [][]int{
			{0, 0, 0, 0, 1},
			{1, 0, 1, 0, 0},
			{0, 1, 0, 0, 0},
			{0, 1, 1, 0, 1},
		},
		opts: []toggle.BoardOption{
			toggle.WithPolarity(toggle.PlatformsCarry),
			toggle.WithTriggers(
				toggle.Point{X: 0, Y: 1},
				toggle.Point{X: 0, Y: 2},
				toggle.Point{X: 4, Y: 1},
				toggle.Point{X: 4, Y: 2},
			),
		},
	},
}

// Get looks a puzzle up by name (case-insensitive).
func Get(name string) (Puzzle, error) {
	for _, p := range puzzles {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			return p, nil
		}
	}
	return Puzzle{}, fmt.Errorf("%w: %q (available: %s)", ErrUnknownPuzzle, name, strings.Join(Names(), ", "))
}

// Load builds the named puzzle enumerating moves in order.
// An empty order keeps the default.
func Load(name string, order []domain.Move) (toggle.State, error) {
	p, err := Get(name)
	if err != nil {
		return toggle.State{}, err
	}
	if len(order) == 0 {
		return p.Build()
	}
	return p.Build(toggle.WithMoveOrder(order...))
}

// List returns every puzzle sorted by name.
func List() []Puzzle {
	out := slices.Clone(puzzles)
	slices.SortFunc(out, func(a, b Puzzle) int { return strings.Compare(a.Name, b.Name) })
	return out
}

// Names returns the sorted puzzle names.
func Names() []string {
	list := List()
	names := make([]string, len(list))
	for i, p := range list {
		names[i] = p.Name
	}
	return names
}
