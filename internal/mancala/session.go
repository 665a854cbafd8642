package mancala

import "github.com/rocketscienceinc/mancala-backend/internal/entity"

// Session is one game: its board and the status returned to callers.
// A session is not safe for concurrent use; callers serialize moves.
type Session struct {
	ID string

	boards *BoardService
	status *entity.GameStatus
}

func (that *Session) Status() *entity.GameStatus {
	return that.status
}

func (that *Session) Board() *entity.Board {
	return that.boards.Board()
}

func (that *Session) IsFinished() bool {
	return that.status.EndGame
}
