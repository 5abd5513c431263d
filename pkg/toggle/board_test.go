package toggle_test

import (
	"testing"

	"github.com/aretw0/switchback/pkg/domain"
	"github.com/aretw0/switchback/pkg/toggle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard_Validation(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		height  int
		exit    toggle.Point
		opts    []toggle.BoardOption
		wantErr bool
	}{
		{name: "Minimal", width: 1, height: 1},
		{name: "Zero size", width: 0, height: 3, wantErr: true},
		{name: "Exit outside", width: 2, height: 2, exit: toggle.Point{X: 2}, wantErr: true},
		{
			name: "Exit on wall", width: 2, height: 2,
			opts:    []toggle.BoardOption{toggle.WithWalls(toggle.Point{})},
			wantErr: true,
		},
		{
			name: "Wall outside", width: 2, height: 2,
			opts:    []toggle.BoardOption{toggle.WithWalls(toggle.Point{X: -1})},
			wantErr: true,
		},
		{
			name: "Trigger outside", width: 2, height: 2,
			opts:    []toggle.BoardOption{toggle.WithTriggers(toggle.Point{Y: 4})},
			wantErr: true,
		},
		{
			name: "Trigger on wall", width: 2, height: 2,
			opts: []toggle.BoardOption{
				toggle.WithWalls(toggle.Point{X: 1}),
				toggle.WithTriggers(toggle.Point{X: 1}),
			},
			wantErr: true,
		},
		{
			name: "Duplicate trigger", width: 2, height: 2,
			opts:    []toggle.BoardOption{toggle.WithTriggers(toggle.Point{X: 1}, toggle.Point{X: 1})},
			wantErr: true,
		},
		{
			name: "Empty move order", width: 2, height: 2,
			opts:    []toggle.BoardOption{toggle.WithMoveOrder()},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := toggle.NewBoard(tt.width, tt.height, tt.exit, tt.opts...)
			if tt.wantErr {
				assert.ErrorIs(t, err, toggle.ErrInvalidBoard)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewBoard_TooManyTriggers(t *testing.T) {
	var triggers []toggle.Point
	for x := 0; x < 65; x++ {
		triggers = append(triggers, toggle.Point{X: x})
	}
	_, err := toggle.NewBoard(65, 1, toggle.Point{}, toggle.WithTriggers(triggers...))
	assert.ErrorIs(t, err, toggle.ErrInvalidBoard)
}

func TestNewBoard_Defaults(t *testing.T) {
	b, err := toggle.NewBoard(3, 2, toggle.Point{X: 2, Y: 1})
	require.NoError(t, err)

	assert.Equal(t, 3, b.Width())
	assert.Equal(t, 2, b.Height())
	assert.Equal(t, toggle.GatesBlock, b.Polarity())
	assert.Equal(t, domain.DefaultOrder, b.Moves())
	assert.Empty(t, b.Triggers())
}

func TestBoard_Start(t *testing.T) {
	b, err := toggle.NewBoard(2, 2, toggle.Point{X: 1, Y: 1},
		toggle.WithTriggers(toggle.Point{X: 1}, toggle.Point{Y: 1}),
		toggle.WithWalls(toggle.Point{X: 0, Y: 0}),
	)
	require.NoError(t, err)

	t.Run("Valid", func(t *testing.T) {
		s, err := b.Start(toggle.Point{X: 1, Y: 0}, [][]int{{1, 0}, {0, 1}}, true)
		require.NoError(t, err)
		assert.Equal(t, toggle.Point{X: 1, Y: 0}, s.Pos())
		assert.Equal(t, []bool{true, false}, s.Flags())
		assert.Empty(t, s.History())
		assert.Equal(t, [][]int{{0, 0}, {0, 1}}, s.Grid().Rows(), "walls are normalized to lowered")
	})

	t.Run("Layout size mismatch", func(t *testing.T) {
		_, err := b.Start(toggle.Point{X: 1}, [][]int{{0, 0, 0}, {0, 0, 0}})
		assert.ErrorIs(t, err, toggle.ErrInvalidBoard)
	})

	t.Run("Start outside", func(t *testing.T) {
		_, err := b.Start(toggle.Point{X: 2}, [][]int{{0, 0}, {0, 0}})
		assert.ErrorIs(t, err, toggle.ErrInvalidBoard)
	})

	t.Run("Start on wall", func(t *testing.T) {
		_, err := b.Start(toggle.Point{}, [][]int{{0, 0}, {0, 0}})
		assert.ErrorIs(t, err, toggle.ErrInvalidBoard)
	})

	t.Run("Too many flags", func(t *testing.T) {
		_, err := b.Start(toggle.Point{X: 1}, [][]int{{0, 0}, {0, 0}}, true, true, true)
		assert.ErrorIs(t, err, toggle.ErrInvalidBoard)
	})
}
