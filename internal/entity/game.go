package entity

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

// Game is a single human versus machine session.
type Game struct {
	ID      string `json:"id"`
	Board   Board  `json:"board"`
	Turn    Cell   `json:"turn"`
	Winner  Cell   `json:"winner"`
	Status  string `json:"status"`
	History []Move `json:"history,omitempty"`
}

// NewGame returns an empty board with the player to move.
func NewGame(id string) *Game {
	return &Game{
		ID:     id,
		Turn:   PlayerMark,
		Status: StatusOngoing,
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

// Finish closes the game. Winner is Empty for a draw.
func (that *Game) Finish(winner Cell) {
	that.Winner = winner
	that.Status = StatusFinished
	that.Turn = Empty
}
