package entity

type Player struct {
	Mark  string `json:"mark"`
	IsBot bool   `json:"is_bot,omitempty"`
}
