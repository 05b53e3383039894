package tictactoe

import (
	"math"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	scoreXWon = 1
	scoreOWon = -1
	scoreTie  = 0

	// window bounds, outside the range of evaluate
	minBound = math.MinInt
	maxBound = math.MaxInt
)

// Move is a candidate square and the value the search gave it.
type Move struct {
	Row   int
	Col   int
	Score int
}

// BestMove returns the optimal move for the player to move in game.
// The boolean is false when the game is already over.
func BestMove(game *Game) (Move, bool) {
	if game.IsOver() {
		return Move{}, false
	}

	if move, ok := winningMove(game); ok {
		return move, true
	}

	if game.CurrentPlayer() == entity.PlayerX {
		return maximize(game, minBound, maxBound), true
	}

	return minimize(game, minBound, maxBound), true
}

// winningMove finds the first square that ends the game in the mover's favor.
func winningMove(game *Game) (Move, bool) {
	mover := game.CurrentPlayer()

	for _, cell := range game.grid.EmptyCells() {
		next := game.clone()
		if !next.ApplyMove(cell.Row, cell.Col, mover) {
			continue
		}

		if next.HasWon(mover) {
			return Move{Row: cell.Row, Col: cell.Col, Score: evaluate(next)}, true
		}
	}

	return Move{}, false
}

func maximize(state *Game, alpha, beta int) Move {
	if state.IsOver() {
		return Move{Row: -1, Col: -1, Score: evaluate(state)}
	}

	best := Move{Row: -1, Col: -1, Score: minBound}

	for _, cell := range state.grid.EmptyCells() {
		next := state.clone()
		// a refused move would not shrink the tree
		if !next.ApplyMove(cell.Row, cell.Col, next.CurrentPlayer()) {
			continue
		}

		score := minimize(next, alpha, beta).Score
		if score <= best.Score {
			continue
		}

		best = Move{Row: cell.Row, Col: cell.Col, Score: score}

		if score > alpha {
			alpha = score

			if beta <= alpha {
				break
			}
		}
	}

	return best
}

func minimize(state *Game, alpha, beta int) Move {
	if state.IsOver() {
		return Move{Row: -1, Col: -1, Score: evaluate(state)}
	}

	best := Move{Row: -1, Col: -1, Score: maxBound}

	for _, cell := range state.grid.EmptyCells() {
		next := state.clone()
		if !next.ApplyMove(cell.Row, cell.Col, next.CurrentPlayer()) {
			continue
		}

		score := maximize(next, alpha, beta).Score
		if score >= best.Score {
			continue
		}

		best = Move{Row: cell.Row, Col: cell.Col, Score: score}

		if score < beta {
			beta = score

			if beta <= alpha {
				break
			}
		}
	}

	return best
}

// evaluate scores a finished game from X's point of view.
func evaluate(state *Game) int {
	switch {
	case state.HasWon(entity.PlayerX):
		return scoreXWon
	case state.HasWon(entity.PlayerO):
		return scoreOWon
	default:
		return scoreTie
	}
}
