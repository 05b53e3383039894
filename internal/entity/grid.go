package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

// DefaultGridSize is the size of a classic tic-tac-toe board.
const DefaultGridSize = 3

// Cell addresses a square of the grid.
type Cell struct {
	Row int
	Col int
}

// Grid is a square board of marks. Cells are write-once.
type Grid struct {
	size  int
	cells []Mark
}

func NewGrid(size int) (*Grid, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidBoardSize, size)
	}

	return &Grid{
		size:  size,
		cells: make([]Mark, size*size),
	}, nil
}

func (that *Grid) Size() int {
	return that.size
}

// At returns the mark at the given square. The boolean is false when the
// square is outside the grid.
func (that *Grid) At(row, col int) (Mark, bool) {
	if !that.inBounds(row, col) {
		return EmptyCell, false
	}

	return that.cells[that.index(row, col)], true
}

// Validate - checks if the mark may be placed on the given square.
func (that *Grid) Validate(row, col int, mark Mark) error {
	if !that.inBounds(row, col) {
		return fmt.Errorf("%w: row %d col %d", apperror.ErrInvalidCell, row, col)
	}

	if !mark.IsPlayer() {
		return apperror.ErrInvalidMark
	}

	if that.cells[that.index(row, col)] != EmptyCell {
		return apperror.ErrCellOccupied
	}

	return nil
}

// Place puts the mark on the given square if Validate allows it.
func (that *Grid) Place(row, col int, mark Mark) bool {
	if that.Validate(row, col, mark) != nil {
		return false
	}

	that.cells[that.index(row, col)] = mark

	return true
}

func (that *Grid) RemainingEmpty() int {
	remaining := 0
	for _, cell := range that.cells {
		if cell == EmptyCell {
			remaining++
		}
	}

	return remaining
}

// EmptyCells lists the empty squares in row-major order.
func (that *Grid) EmptyCells() []Cell {
	empty := make([]Cell, 0, len(that.cells))
	for i, cell := range that.cells {
		if cell == EmptyCell {
			empty = append(empty, Cell{Row: i / that.size, Col: i % that.size})
		}
	}

	return empty
}

func (that *Grid) Clone() *Grid {
	cells := make([]Mark, len(that.cells))
	copy(cells, that.cells)

	return &Grid{
		size:  that.size,
		cells: cells,
	}
}

func (that *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < that.size && col >= 0 && col < that.size
}

func (that *Grid) index(row, col int) int {
	return row*that.size + col
}
