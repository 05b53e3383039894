package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

// Mark is the value stored in a grid cell.
type Mark uint8

const (
	EmptyCell Mark = iota
	PlayerX
	PlayerO
)

// Label returns the display label of the mark.
func (m Mark) Label() string {
	switch m {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return " "
	}
}

func (m Mark) String() string {
	return m.Label()
}

// IsPlayer reports whether the mark can be placed on the grid.
func (m Mark) IsPlayer() bool {
	return m == PlayerX || m == PlayerO
}

// Opponent returns the other player. EmptyCell has no opponent.
func (m Mark) Opponent() Mark {
	switch m {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

// ParseMark converts "X" or "O" (any case) into a player mark.
func ParseMark(s string) (Mark, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X":
		return PlayerX, nil
	case "O":
		return PlayerO, nil
	default:
		return EmptyCell, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, s)
	}
}
