package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

// ComputerSession answers every human move with the optimal reply.
type ComputerSession struct {
	*Game
	computer entity.Mark
}

// NewComputerOpponent creates a session where computer plays the given mark.
// When the computer plays X its opening move is already on the board.
func NewComputerOpponent(size int, computer entity.Mark) (*ComputerSession, error) {
	if !computer.IsPlayer() {
		return nil, fmt.Errorf("%w: computer cannot play %q", apperror.ErrInvalidMark, computer.Label())
	}

	game, err := newGame(size)
	if err != nil {
		return nil, err
	}

	session := &ComputerSession{
		Game:     game,
		computer: computer,
	}

	if computer == entity.PlayerX {
		session.PlayComputerMove()
	}

	return session, nil
}

func (that *ComputerSession) ComputerMark() entity.Mark {
	return that.computer
}

// RequestMove plays the human move and, if the game goes on, the reply.
// The result reports the human move only.
func (that *ComputerSession) RequestMove(row, col int) bool {
	if !that.ApplyMove(row, col, that.CurrentPlayer()) {
		return false
	}

	if !that.IsOver() {
		that.PlayComputerMove()
	}

	return true
}

// PlayComputerMove - searches for the best move of the player to move and plays it.
func (that *ComputerSession) PlayComputerMove() bool {
	move, ok := BestMove(that.Game)
	if !ok {
		return false
	}

	return that.ApplyMove(move.Row, move.Col, that.CurrentPlayer())
}

func (that *ComputerSession) Clone() *ComputerSession {
	return &ComputerSession{
		Game:     that.Game.clone(),
		computer: that.computer,
	}
}
