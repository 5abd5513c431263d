package dto_test

import (
	"testing"

	"github.com/aretw0/switchback"
	"github.com/aretw0/switchback/internal/catalog"
	"github.com/aretw0/switchback/internal/dto"
	"github.com/aretw0/switchback/pkg/domain"
	"github.com/aretw0/switchback/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	puzzles, err := dto.Catalog()
	require.NoError(t, err)
	require.Len(t, puzzles, len(catalog.Names()))

	assert.Equal(t, dto.Puzzle{
		Name:        "portal",
		Description: puzzles[1].Description,
		Width:       3,
		Height:      3,
		Polarity:    "gates",
		Triggers:    1,
	}, puzzles[1])
}

func TestSolutionFrom(t *testing.T) {
	sol := switchback.Solution{
		Moves: []domain.Move{domain.Down, domain.Right},
		Stats: search.Stats{Expanded: 4, Generated: 6, Duplicates: 1, Visited: 7, MaxFrontier: 3, Found: true},
	}

	got := dto.SolutionFrom("line", sol, false)
	assert.Equal(t, dto.Solution{
		Puzzle: "line",
		Found:  true,
		Length: 2,
		Moves:  []string{"Down", "Right"},
		Stats:  dto.Stats{Expanded: 4, Generated: 6, Duplicates: 1, Visited: 7, MaxFrontier: 3},
	}, got)
}

func TestSolutionFrom_NotFound(t *testing.T) {
	got := dto.SolutionFrom("stuck", switchback.Solution{}, true)
	assert.False(t, got.Found)
	assert.True(t, got.Truncated)
	assert.Equal(t, 0, got.Length)
	assert.NotNil(t, got.Moves, "encodes as an empty list")
}
