package toggle_test

import (
	"testing"

	"github.com/aretw0/switchback/pkg/toggle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid(t *testing.T) {
	tests := []struct {
		name    string
		rows    [][]int
		wantErr bool
	}{
		{name: "Square", rows: [][]int{{0, 1}, {1, 0}}},
		{name: "Single cell", rows: [][]int{{1}}},
		{name: "Empty", rows: nil, wantErr: true},
		{name: "Empty row", rows: [][]int{{}}, wantErr: true},
		{name: "Ragged", rows: [][]int{{0, 0}, {0}}, wantErr: true},
		{name: "Non binary", rows: [][]int{{0, 2}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := toggle.NewGrid(tt.rows)
			if tt.wantErr {
				assert.ErrorIs(t, err, toggle.ErrInvalidBoard)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.rows, g.Rows())
		})
	}
}

func TestGrid_Neighbors(t *testing.T) {
	g, err := toggle.NewGrid([][]int{{0, 0, 0}, {0, 0, 0}})
	require.NoError(t, err)

	assert.ElementsMatch(t, []toggle.Point{{X: 0, Y: 1}, {X: 1, Y: 0}}, g.Neighbors(toggle.Point{X: 0, Y: 0}))
	assert.ElementsMatch(t, []toggle.Point{{X: 0, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 0}}, g.Neighbors(toggle.Point{X: 1, Y: 1}))
}

func TestGrid_Flip_IsCopyOnWrite(t *testing.T) {
	g, err := toggle.NewGrid([][]int{{0, 1}, {1, 1}})
	require.NoError(t, err)

	flipped := g.Flip(toggle.Point{X: 0, Y: 0}, toggle.Point{X: 5, Y: 5})
	assert.Equal(t, [][]int{{1, 1}, {1, 1}}, flipped.Rows())
	assert.Equal(t, [][]int{{0, 1}, {1, 1}}, g.Rows(), "receiver must be unchanged")
}

func TestGrid_Flip_Involution(t *testing.T) {
	g, err := toggle.NewGrid([][]int{
		{0, 1, 1, 0},
		{1, 0, 0, 1},
		{0, 0, 1, 0},
	})
	require.NoError(t, err)

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			n := g.Neighbors(toggle.Point{X: x, Y: y})
			twice := g.Flip(n...).Flip(n...)
			assert.True(t, g.Equal(twice), "flipping around (%d,%d) twice must be identity", x, y)
		}
	}
}

func TestGrid_At_OutOfBounds(t *testing.T) {
	g, err := toggle.NewGrid([][]int{{1}})
	require.NoError(t, err)

	assert.True(t, g.At(toggle.Point{}))
	assert.False(t, g.At(toggle.Point{X: -1}))
	assert.False(t, g.Contains(toggle.Point{Y: 1}))
}
