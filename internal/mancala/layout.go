package mancala

import "github.com/rocketscienceinc/mancala-backend/internal/entity"

// Layout describes a symmetric two-sided ring: each side has PitsPerPlayer playground pits
// followed by its home pit. The engine trusts the values it is given.
type Layout struct {
	PitsPerPlayer      int
	StartingStoneCount int
	TotalPitCount      int
	P1HomePit          int
	P2HomePit          int
}

func DefaultLayout() Layout {
	return Layout{
		PitsPerPlayer:      6,
		StartingStoneCount: 6,
		TotalPitCount:      14,
		P1HomePit:          6,
		P2HomePit:          13,
	}
}

func (that Layout) Player1() entity.Player {
	return entity.NewPlayer(entity.Player1, that.P1HomePit)
}

func (that Layout) Player2() entity.Player {
	return entity.NewPlayer(entity.Player2, that.P2HomePit)
}

// PlayerByID returns the empty player for anything but the two seats.
func (that Layout) PlayerByID(id entity.PlayerID) entity.Player {
	switch id {
	case entity.Player1:
		return that.Player1()
	case entity.Player2:
		return that.Player2()
	default:
		return entity.EmptyPlayer()
	}
}

// PlaygroundRange returns the half-open range [lower, upper) of the player's playground pits.
func (that Layout) PlaygroundRange(player entity.Player) (int, int) {
	if player.HomeID == that.P1HomePit {
		return 0, that.P1HomePit
	}

	return that.P1HomePit + 1, that.P2HomePit
}

// OppositePitID mirrors a playground pit across the board; the two homes have no opposite.
func (that Layout) OppositePitID(id int) int {
	return that.TotalPitCount - id - 2
}

func (that Layout) InitialStoneCount() int {
	return 2 * that.PitsPerPlayer * that.StartingStoneCount
}
