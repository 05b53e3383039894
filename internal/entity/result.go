package entity

import "time"

// Result is the record of a finished game.
type Result struct {
	GameID     string     `json:"game_id"`
	Type       string     `json:"type"`
	Winner     string     `json:"winner"`
	Board      [][]string `json:"board"`
	FinishedAt time.Time  `json:"finished_at"`
}

// Stats aggregates results by outcome.
type Stats struct {
	XWins int64 `json:"x_wins"`
	OWins int64 `json:"o_wins"`
	Ties  int64 `json:"ties"`
}

func (that *Stats) Total() int64 {
	return that.XWins + that.OWins + that.Ties
}
