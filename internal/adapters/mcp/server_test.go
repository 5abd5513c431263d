package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/aretw0/switchback"
	"github.com/aretw0/switchback/internal/catalog"
	"github.com/aretw0/switchback/pkg/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleSolve(t *testing.T) {
	s := NewServer(switchback.New(), nil)

	sol, err := s.handleSolve(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"puzzle": "portal",
	})
	require.NoError(t, err)
	assert.True(t, sol.Found)
	assert.Equal(t, 23, sol.Length)
	assert.Equal(t, "Right", sol.Moves[len(sol.Moves)-1])
}

func TestHandleSolve_Errors(t *testing.T) {
	s := NewServer(switchback.New(), nil)

	_, err := s.handleSolve(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"puzzle": "maze",
	})
	assert.ErrorIs(t, err, catalog.ErrUnknownPuzzle)

	_, err = s.handleSolve(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"puzzle": "portal",
		"order":  "up,sideways",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidMove)

	_, err = s.handleSolve(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{})
	assert.Error(t, err)
}

func TestGraph(t *testing.T) {
	s := NewServer(switchback.New(), nil)

	out, err := s.graph(map[string]any{"puzzle": "portal", "order": "right,down,left,up"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "graph TD\n"))
	assert.Equal(t, 23, strings.Count(out, "-->"))

	_, err = NewServer(switchback.New(switchback.WithMaxStates(3)), nil).graph(map[string]any{"puzzle": "portal"})
	assert.ErrorContains(t, err, "no solution")
}
