package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGrid(t *testing.T) *Grid {
	t.Helper()

	grid, err := NewGrid(DefaultGridSize)
	require.NoError(t, err)

	return grid
}

func TestNewGrid(t *testing.T) {
	t.Run("Every cell starts empty", func(t *testing.T) {
		// Given: a new grid
		grid := newTestGrid(t)

		// Then: every cell should hold EmptyCell
		for row := 0; row < DefaultGridSize; row++ {
			for col := 0; col < DefaultGridSize; col++ {
				mark, ok := grid.At(row, col)
				require.True(t, ok)
				assert.Equal(t, EmptyCell, mark)
			}
		}

		assert.Equal(t, DefaultGridSize*DefaultGridSize, grid.RemainingEmpty())
	})

	t.Run("Rejects a non-positive size", func(t *testing.T) {
		// When: creating a grid of size 0
		grid, err := NewGrid(0)

		// Then: ErrInvalidBoardSize should be returned
		require.ErrorIs(t, err, apperror.ErrInvalidBoardSize)
		assert.Nil(t, grid)
	})
}

func TestGrid_At(t *testing.T) {
	grid := newTestGrid(t)

	outside := []Cell{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {3, 3}, {-1, -1}}
	for _, cell := range outside {
		// When: reading a square outside the grid
		mark, ok := grid.At(cell.Row, cell.Col)

		// Then: no value should be returned
		assert.False(t, ok, "row %d col %d", cell.Row, cell.Col)
		assert.Equal(t, EmptyCell, mark)
	}
}

func TestGrid_Place(t *testing.T) {
	t.Run("Places a mark on an empty square", func(t *testing.T) {
		// Given: a new grid
		grid := newTestGrid(t)

		// When: X is placed in the center
		ok := grid.Place(1, 1, PlayerX)

		// Then: the square should hold X
		require.True(t, ok)
		mark, _ := grid.At(1, 1)
		assert.Equal(t, PlayerX, mark)
		assert.Equal(t, 8, grid.RemainingEmpty())
	})

	t.Run("Out of range leaves the grid unchanged", func(t *testing.T) {
		// Given: a new grid
		grid := newTestGrid(t)
		before := grid.Clone()

		// When: placing outside the grid
		assert.False(t, grid.Place(3, 0, PlayerX))
		assert.False(t, grid.Place(0, -1, PlayerO))

		// Then: nothing should change
		assert.Equal(t, before, grid)
	})

	t.Run("EmptyCell cannot be placed", func(t *testing.T) {
		// Given: a new grid
		grid := newTestGrid(t)

		// When: placing EmptyCell
		ok := grid.Place(0, 0, EmptyCell)

		// Then: the placement should be refused
		assert.False(t, ok)
		assert.ErrorIs(t, grid.Validate(0, 0, EmptyCell), apperror.ErrInvalidMark)
	})

	t.Run("Second placement on the same square fails", func(t *testing.T) {
		// Given: a grid with X in the corner
		grid := newTestGrid(t)
		require.True(t, grid.Place(0, 0, PlayerX))

		// When: O tries the same square
		ok := grid.Place(0, 0, PlayerO)

		// Then: the square should keep X
		assert.False(t, ok)
		mark, _ := grid.At(0, 0)
		assert.Equal(t, PlayerX, mark)
		assert.ErrorIs(t, grid.Validate(0, 0, PlayerO), apperror.ErrCellOccupied)
	})

	t.Run("Validate reports invalid cells", func(t *testing.T) {
		grid := newTestGrid(t)

		assert.ErrorIs(t, grid.Validate(5, 5, PlayerX), apperror.ErrInvalidCell)
	})
}

func TestGrid_EmptyCells(t *testing.T) {
	// Given: a grid with two occupied squares
	grid := newTestGrid(t)
	require.True(t, grid.Place(0, 1, PlayerX))
	require.True(t, grid.Place(2, 0, PlayerO))

	// When: listing empty cells
	cells := grid.EmptyCells()

	// Then: the remaining squares should come back in row-major order
	expected := []Cell{{0, 0}, {0, 2}, {1, 0}, {1, 1}, {1, 2}, {2, 1}, {2, 2}}
	assert.Equal(t, expected, cells)
}

func TestGrid_Clone(t *testing.T) {
	// Given: a grid with one mark and its clone
	grid := newTestGrid(t)
	require.True(t, grid.Place(1, 1, PlayerX))
	clone := grid.Clone()

	// When: the clone is mutated
	require.True(t, clone.Place(0, 0, PlayerO))

	// Then: the original should be untouched
	mark, _ := grid.At(0, 0)
	assert.Equal(t, EmptyCell, mark)
	assert.Equal(t, 8, grid.RemainingEmpty())
	assert.Equal(t, 7, clone.RemainingEmpty())
}
