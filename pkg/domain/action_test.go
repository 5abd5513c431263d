package domain_test

import (
	"testing"

	"github.com/aretw0/switchback/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMove_String(t *testing.T) {
	tests := []struct {
		move domain.Move
		want string
	}{
		{domain.Up, "Up"},
		{domain.Down, "Down"},
		{domain.Left, "Left"},
		{domain.Right, "Right"},
		{domain.Move{Dx: 2, Dy: 0}, "Move(2,0)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.move.String())
		})
	}
}

func TestParseMove(t *testing.T) {
	for _, m := range []domain.Move{domain.Up, domain.Down, domain.Left, domain.Right} {
		got, err := domain.ParseMove(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	got, err := domain.ParseMove(" r ")
	require.NoError(t, err)
	assert.Equal(t, domain.Right, got)

	_, err = domain.ParseMove("north")
	assert.ErrorIs(t, err, domain.ErrInvalidMove)
}

func TestParseOrder(t *testing.T) {
	t.Run("Empty yields default", func(t *testing.T) {
		order, err := domain.ParseOrder(nil)
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultOrder, order)

		// Must be a copy.
		order[0] = domain.Left
		assert.Equal(t, domain.Down, domain.DefaultOrder[0])
	})

	t.Run("Custom order", func(t *testing.T) {
		order, err := domain.ParseOrder([]string{"right", "down", "left", "up"})
		require.NoError(t, err)
		assert.Equal(t, []domain.Move{domain.Right, domain.Down, domain.Left, domain.Up}, order)
	})

	t.Run("Duplicate", func(t *testing.T) {
		_, err := domain.ParseOrder([]string{"up", "U"})
		assert.ErrorIs(t, err, domain.ErrInvalidMove)
	})

	t.Run("Unknown", func(t *testing.T) {
		_, err := domain.ParseOrder([]string{"up", "sideways"})
		assert.ErrorIs(t, err, domain.ErrInvalidMove)
	})
}

func TestFormatMoves(t *testing.T) {
	got := domain.FormatMoves([]domain.Move{domain.Up, domain.Up, domain.Right}, " ")
	assert.Equal(t, "Up Up Right", got)
	assert.Equal(t, "", domain.FormatMoves(nil, ","))
}
