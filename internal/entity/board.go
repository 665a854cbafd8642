package entity

import (
	"fmt"

	"github.com/rocketscienceinc/mancala-backend/internal/apperror"
)

// Board is the ordered ring of pits, indexed by pit id.
type Board struct {
	AllPits []Pit `json:"allPits"`
}

// Pit returns the pit with the given id. The pointer aliases the board.
func (that *Board) Pit(id int) (*Pit, error) {
	if id < 0 || id >= len(that.AllPits) {
		return nil, fmt.Errorf("%w: %d is out of range or board is not initialized", apperror.ErrInvalidPit, id)
	}

	return &that.AllPits[id], nil
}

func (that *Board) Size() int {
	return len(that.AllPits)
}

func (that *Board) TotalStones() int {
	total := 0
	for _, pit := range that.AllPits {
		total += pit.NumberOfStones
	}

	return total
}

// Clone returns a deep copy, so callers can hand the board out without sharing pits.
func (that *Board) Clone() *Board {
	pits := make([]Pit, len(that.AllPits))
	copy(pits, that.AllPits)

	return &Board{AllPits: pits}
}

// HomeCount returns the stones in the home pit owned by the given player.
func (that *Board) HomeCount(id PlayerID) int {
	for _, pit := range that.AllPits {
		if pit.IsHome() && pit.Owner.ID == id {
			return pit.NumberOfStones
		}
	}

	return 0
}
