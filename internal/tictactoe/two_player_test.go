package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTwoPlayer(t *testing.T) {
	t.Run("Starts empty with X to move", func(t *testing.T) {
		session, err := NewTwoPlayer(size)
		require.NoError(t, err)

		assert.Equal(t, entity.PlayerX, session.CurrentPlayer())
		assert.Equal(t, size*size, session.RemainingEmpty())
		assert.Equal(t, size, session.Size())
	})

	t.Run("Rejects an invalid size", func(t *testing.T) {
		_, err := NewTwoPlayer(-2)

		assert.ErrorIs(t, err, apperror.ErrInvalidBoardSize)
	})
}

func TestTwoPlayerSession_RequestMove(t *testing.T) {
	t.Run("Alternates between the players", func(t *testing.T) {
		// Given: a new two-player session
		session, err := NewTwoPlayer(size)
		require.NoError(t, err)

		// When: two moves are requested
		require.True(t, session.RequestMove(0, 0))
		require.True(t, session.RequestMove(1, 1))

		// Then: X and O should be on the board and X should move next
		first, _ := session.OccupantAt(0, 0)
		second, _ := session.OccupantAt(1, 1)
		assert.Equal(t, entity.PlayerX, first)
		assert.Equal(t, entity.PlayerO, second)
		assert.Equal(t, entity.PlayerX, session.CurrentPlayer())
	})

	t.Run("Illegal move leaves the session unchanged", func(t *testing.T) {
		// Given: X took the center
		session, err := NewTwoPlayer(size)
		require.NoError(t, err)
		require.True(t, session.RequestMove(1, 1))

		// When: O asks for the center and for a square off the board
		assert.False(t, session.RequestMove(1, 1))
		assert.False(t, session.RequestMove(3, 3))

		// Then: it is still O's turn
		assert.Equal(t, entity.PlayerO, session.CurrentPlayer())
		assert.Equal(t, size*size-1, session.RemainingEmpty())
	})

	t.Run("X wins by the first column", func(t *testing.T) {
		session, err := NewTwoPlayer(size)
		require.NoError(t, err)

		for _, mv := range [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {2, 0}} {
			require.True(t, session.RequestMove(mv[0], mv[1]))
		}

		assert.True(t, session.IsOver())
		assert.True(t, session.HasWon(entity.PlayerX))
		assert.Equal(t, entity.PlayerX, session.Winner())
	})
}
