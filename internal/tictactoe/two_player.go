package tictactoe

// TwoPlayerSession always moves for whoever is to play.
type TwoPlayerSession struct {
	*Game
}

func NewTwoPlayer(size int) (*TwoPlayerSession, error) {
	game, err := newGame(size)
	if err != nil {
		return nil, err
	}

	return &TwoPlayerSession{Game: game}, nil
}

func (that *TwoPlayerSession) RequestMove(row, col int) bool {
	return that.ApplyMove(row, col, that.CurrentPlayer())
}

var (
	_ Session = (*TwoPlayerSession)(nil)
	_ Session = (*ComputerSession)(nil)
)
