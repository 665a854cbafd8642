package entity

import (
	"fmt"

	"github.com/rocketscienceinc/mancala-backend/internal/apperror"
)

type PlayerID string

const (
	Player1  PlayerID = "PLAYER_1"
	Player2  PlayerID = "PLAYER_2"
	NoPlayer PlayerID = "None"
)

// NoHome is the home index of the empty player.
const NoHome = -1

// Player is compared by value: two players with the same id and home are the same player.
type Player struct {
	ID     PlayerID `json:"id"`
	HomeID int      `json:"homeID"`
}

func NewPlayer(id PlayerID, homeID int) Player {
	return Player{ID: id, HomeID: homeID}
}

// EmptyPlayer - the sentinel used for "no winner yet" and for a draw.
func EmptyPlayer() Player {
	return Player{ID: NoPlayer, HomeID: NoHome}
}

// ParsePlayerID accepts only PLAYER_1 and PLAYER_2.
func ParsePlayerID(raw string) (PlayerID, error) {
	switch id := PlayerID(raw); id {
	case Player1, Player2:
		return id, nil
	default:
		return NoPlayer, fmt.Errorf("%w: %q", apperror.ErrInvalidPlayer, raw)
	}
}

func (that Player) Equal(other Player) bool {
	return that == other
}

func (that Player) IsEmpty() bool {
	return that.ID == NoPlayer
}
