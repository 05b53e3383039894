package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

// Session is a game in progress, whichever way moves are resolved.
type Session interface {
	RequestMove(row, col int) bool
	CheckMove(row, col int) error

	OccupantAt(row, col int) (entity.Mark, bool)
	CurrentPlayer() entity.Mark
	RemainingEmpty() int
	Size() int

	IsOver() bool
	HasWon(player entity.Mark) bool
	Winner() entity.Mark
}

// Game holds the turn and win logic shared by every session variant.
type Game struct {
	grid *entity.Grid
	turn entity.Mark
}

func newGame(size int) (*Game, error) {
	grid, err := entity.NewGrid(size)
	if err != nil {
		return nil, err
	}

	return &Game{
		grid: grid,
		turn: entity.PlayerX,
	}, nil
}

func (that *Game) CurrentPlayer() entity.Mark {
	return that.turn
}

func (that *Game) OccupantAt(row, col int) (entity.Mark, bool) {
	return that.grid.At(row, col)
}

func (that *Game) RemainingEmpty() int {
	return that.grid.RemainingEmpty()
}

func (that *Game) Size() int {
	return that.grid.Size()
}

// ApplyMove places player's mark and hands the turn to the other side.
// The mover is not checked against CurrentPlayer.
func (that *Game) ApplyMove(row, col int, player entity.Mark) bool {
	if !that.grid.Place(row, col, player) {
		return false
	}

	that.turn = that.turn.Opponent()

	return true
}

// CheckMove - explains why the current player could not move to the given square.
func (that *Game) CheckMove(row, col int) error {
	if that.IsOver() {
		return apperror.ErrGameFinished
	}

	return that.grid.Validate(row, col, that.turn)
}

func (that *Game) IsOver() bool {
	return that.grid.RemainingEmpty() == 0 || that.HasWon(entity.PlayerX) || that.HasWon(entity.PlayerO)
}

// Winner returns EmptyCell while nobody has completed a line.
func (that *Game) Winner() entity.Mark {
	switch {
	case that.HasWon(entity.PlayerX):
		return entity.PlayerX
	case that.HasWon(entity.PlayerO):
		return entity.PlayerO
	default:
		return entity.EmptyCell
	}
}

func (that *Game) HasWon(player entity.Mark) bool {
	return that.wonByRows(player) || that.wonByCols(player) || that.wonByDiagonals(player)
}

func (that *Game) wonByRows(player entity.Mark) bool {
	for row := 0; row < that.grid.Size(); row++ {
		if that.lineOwnedBy(player, func(i int) (int, int) { return row, i }) {
			return true
		}
	}

	return false
}

func (that *Game) wonByCols(player entity.Mark) bool {
	for col := 0; col < that.grid.Size(); col++ {
		if that.lineOwnedBy(player, func(i int) (int, int) { return i, col }) {
			return true
		}
	}

	return false
}

func (that *Game) wonByDiagonals(player entity.Mark) bool {
	last := that.grid.Size() - 1

	return that.lineOwnedBy(player, func(i int) (int, int) { return i, i }) ||
		that.lineOwnedBy(player, func(i int) (int, int) { return i, last - i })
}

// lineOwnedBy walks the squares produced by at for i in [0,size).
func (that *Game) lineOwnedBy(player entity.Mark, at func(i int) (int, int)) bool {
	for i := 0; i < that.grid.Size(); i++ {
		if mark, _ := that.grid.At(at(i)); mark != player {
			return false
		}
	}

	return true
}

func (that *Game) clone() *Game {
	return &Game{
		grid: that.grid.Clone(),
		turn: that.turn,
	}
}
