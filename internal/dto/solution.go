package dto

import (
	"github.com/aretw0/switchback"
	"github.com/aretw0/switchback/internal/catalog"
	"github.com/aretw0/switchback/pkg/search"
)

// Puzzle describes a catalog entry for the HTTP and MCP adapters.
type Puzzle struct {
	Name        string `json:"name" jsonschema_description:"Catalog name of the puzzle"`
	Description string `json:"description"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Polarity    string `json:"polarity" jsonschema_description:"gates (raised cells block) or platforms (lowered cells block)"`
	Triggers    int    `json:"triggers" jsonschema_description:"Number of flags required at the exit"`
}

// Stats mirrors search.Stats.
type Stats struct {
	Expanded    int `json:"expanded"`
	Generated   int `json:"generated"`
	Duplicates  int `json:"duplicates"`
	Visited     int `json:"visited"`
	MaxFrontier int `json:"max_frontier"`
}

// Solution is the outcome of solving a catalog puzzle.
type Solution struct {
	Puzzle    string   `json:"puzzle"`
	Found     bool     `json:"found" jsonschema_description:"False when no move sequence reaches the goal"`
	Truncated bool     `json:"truncated,omitempty" jsonschema_description:"True when the search hit its state cap"`
	Length    int      `json:"length"`
	Moves     []string `json:"moves" jsonschema_description:"Move labels in order: Up, Down, Left or Right"`
	Stats     Stats    `json:"stats"`
}

// PuzzleFrom builds the descriptor of p. It fails only if p does not build.
func PuzzleFrom(p catalog.Puzzle) (Puzzle, error) {
	s, err := p.Build()
	if err != nil {
		return Puzzle{}, err
	}
	b := s.Board()
	return Puzzle{
		Name:        p.Name,
		Description: p.Description,
		Width:       b.Width(),
		Height:      b.Height(),
		Polarity:    b.Polarity().String(),
		Triggers:    len(b.Triggers()),
	}, nil
}

// SolutionFrom maps a solver outcome.
func SolutionFrom(name string, sol switchback.Solution, truncated bool) Solution {
	moves := make([]string, len(sol.Moves))
	for i, m := range sol.Moves {
		moves[i] = m.String()
	}
	return Solution{
		Puzzle:    name,
		Found:     sol.Stats.Found,
		Truncated: truncated,
		Length:    len(moves),
		Moves:     moves,
		Stats:     statsFrom(sol.Stats),
	}
}

func statsFrom(s search.Stats) Stats {
	return Stats{
		Expanded:    s.Expanded,
		Generated:   s.Generated,
		Duplicates:  s.Duplicates,
		Visited:     s.Visited,
		MaxFrontier: s.MaxFrontier,
	}
}

// Catalog describes every built-in puzzle, sorted by name.
func Catalog() ([]Puzzle, error) {
	var out []Puzzle
	for _, p := range catalog.List() {
		d, err := PuzzleFrom(p)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
