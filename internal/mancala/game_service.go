package mancala

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/mancala-backend/internal/apperror"
	"github.com/rocketscienceinc/mancala-backend/internal/entity"
)

// GameService drives sessions: it starts them and executes moves on them.
type GameService struct {
	layout Layout
}

func NewGameService(layout Layout) *GameService {
	return &GameService{layout: layout}
}

func (that *GameService) Layout() Layout {
	return that.layout
}

// StartGame - builds a fresh session. Player 1 moves first.
func (that *GameService) StartGame() *Session {
	boards := NewBoardService(that.layout)
	boards.InitBoard()

	id := uuid.NewString()

	return &Session{
		ID:     id,
		boards: boards,
		status: &entity.GameStatus{
			GameID:             id,
			CurrentBoardStatus: boards.Board(),
			LegalMove:          true,
			NextPlayer:         that.layout.Player1(),
			EndGame:            false,
			Winner:             entity.EmptyPlayer(),
		},
	}
}

// ExecuteMove - validates and plays pitID for playerID. Unknown players and pits are errors;
// a move against the rules is reported through LegalMove and changes nothing else.
func (that *GameService) ExecuteMove(session *Session, playerID string, pitID int) (*entity.GameStatus, error) {
	if session == nil {
		return nil, apperror.ErrGameIsNotStarted
	}

	id, err := entity.ParsePlayerID(playerID)
	if err != nil {
		return nil, fmt.Errorf("invalid move: %w", err)
	}

	pit, err := session.boards.PitByID(pitID)
	if err != nil {
		return nil, fmt.Errorf("invalid move: %w", err)
	}

	status := session.status
	move := entity.NewMove(that.layout.PlayerByID(id), pit)
	if !move.IsValid() {
		status.LegalMove = false
		return status, nil
	}

	status.LegalMove = true
	session.boards.UpdateBoardForMove(move)
	status.CurrentBoardStatus = session.boards.Board()
	status.Moves++

	if that.IsEndGame(session) {
		status.EndGame = true
		status.Winner = that.GameWinner(session)
	}

	// NextPlayer still holds the mover at this point
	if !session.boards.DoesPlayerContinue() {
		status.NextPlayer = that.togglePlayer(status.NextPlayer)
	}

	return status, nil
}

// IsEndGame - true once either side's playground is empty.
func (that *GameService) IsEndGame(session *Session) bool {
	return session.boards.ArePitsInRangeEmpty(0, that.layout.P1HomePit) ||
		session.boards.ArePitsInRangeEmpty(that.layout.P1HomePit+1, that.layout.P2HomePit)
}

// GameWinner - collects the leftovers and returns the player with more stones at home,
// or the empty player on a draw.
func (that *GameService) GameWinner(session *Session) entity.Player {
	session.boards.CollectRemainingStones()

	p1, p2 := that.layout.Player1(), that.layout.Player2()

	// both homes come from the layout, so the lookups cannot fail on an initialized board
	p1Count, _ := session.boards.PlayerHomeCount(p1)
	p2Count, _ := session.boards.PlayerHomeCount(p2)

	switch {
	case p1Count > p2Count:
		return p1
	case p2Count > p1Count:
		return p2
	default:
		return entity.EmptyPlayer()
	}
}

func (that *GameService) togglePlayer(current entity.Player) entity.Player {
	if current.ID == entity.Player1 {
		return that.layout.Player2()
	}

	return that.layout.Player1()
}
