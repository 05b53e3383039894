package entity

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	PlayerTie = "-"
)

const (
	TwoPlayerType = "two-player"
	ComputerType  = "computer"
)

// Game is the outward view of a session.
type Game struct {
	ID      string     `json:"id"`
	Board   [][]string `json:"board"`
	Winner  string     `json:"winner"`
	Status  string     `json:"status"`
	Turn    string     `json:"player_turn"`
	Players []*Player  `json:"players,omitempty"`
	Type    string     `json:"type,omitempty"`
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWithBot() bool {
	return that.Type == ComputerType
}
