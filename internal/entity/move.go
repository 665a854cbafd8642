package entity

// Move is a candidate action; it is built per request and discarded after use.
type Move struct {
	CurrentPlayer Player
	SelectedPit   *Pit
}

func NewMove(player Player, pit *Pit) Move {
	return Move{CurrentPlayer: player, SelectedPit: pit}
}

// IsValid reports whether the player owns the pit, the pit is a playground pit and it is not empty.
func (that Move) IsValid() bool {
	if that.SelectedPit == nil {
		return false
	}

	return that.CurrentPlayer.Equal(that.SelectedPit.Owner) &&
		that.SelectedPit.IsPlayground() &&
		!that.SelectedPit.IsEmpty()
}
