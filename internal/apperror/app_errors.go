package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrGameNotFound     = errors.New("game not found")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrInvalidCell      = errors.New("invalid cell index")
	ErrInvalidMark      = errors.New("invalid player mark")
	ErrInvalidBoardSize = errors.New("invalid board size")
	ErrBoardTooLarge    = errors.New("board is too large for the computer opponent")
	ErrUnknownGameType  = errors.New("unknown game type")
	ErrResultNotFound   = errors.New("result not found")
)
