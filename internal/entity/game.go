package entity

import "time"

// GameStatus describes the session after the last move attempt.
type GameStatus struct {
	GameID             string `json:"gameId"`
	CurrentBoardStatus *Board `json:"currentBoardStatus"`
	LegalMove          bool   `json:"legalMove"`
	NextPlayer         Player `json:"nextPlayer"`
	EndGame            bool   `json:"endGame"`
	Winner             Player `json:"winner"`
	Moves              int    `json:"moves"`
}

// Clone copies the status together with its board.
func (that *GameStatus) Clone() *GameStatus {
	cp := *that
	if that.CurrentBoardStatus != nil {
		cp.CurrentBoardStatus = that.CurrentBoardStatus.Clone()
	}

	return &cp
}

// Result is the outcome of a finished game.
type Result struct {
	GameID     string    `json:"game_id"`
	Winner     PlayerID  `json:"winner"`
	P1Home     int       `json:"p1_home"`
	P2Home     int       `json:"p2_home"`
	Moves      int       `json:"moves"`
	FinishedAt time.Time `json:"finished_at"`
}

func (that *Result) IsDraw() bool {
	return that.Winner == NoPlayer
}
