package mancala

import (
	"fmt"

	"github.com/rocketscienceinc/mancala-backend/internal/apperror"
	"github.com/rocketscienceinc/mancala-backend/internal/entity"
)

// BoardService owns a single board and applies the sowing and capture rules to it.
type BoardService struct {
	layout Layout
	board  *entity.Board

	// set by UpdateBoardForMove
	playerContinues bool
}

func NewBoardService(layout Layout) *BoardService {
	return &BoardService{
		layout: layout,
		board:  &entity.Board{},
	}
}

func (that *BoardService) Board() *entity.Board {
	return that.board
}

// PitByID - returns the pit if the id is valid and the board is initialized.
func (that *BoardService) PitByID(id int) (*entity.Pit, error) {
	pit, err := that.board.Pit(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get pit: %w", err)
	}

	return pit, nil
}

// initPit - derives owner, type and starting stones from the pit id.
func (that *BoardService) initPit(id int) entity.Pit {
	pit := entity.Pit{ID: id}

	owner, home := that.layout.Player1(), that.layout.P1HomePit
	if id > that.layout.P1HomePit {
		owner, home = that.layout.Player2(), that.layout.P2HomePit
	}

	pit.Owner = owner
	if id < home {
		pit.PitType = entity.Playground
		pit.NumberOfStones = that.layout.StartingStoneCount
	} else {
		pit.PitType = entity.Home
	}

	return pit
}

// InitBoard - replaces every pit with a freshly stocked one.
func (that *BoardService) InitBoard() {
	pits := make([]entity.Pit, that.layout.TotalPitCount)
	for id := range pits {
		pits[id] = that.initPit(id)
	}

	that.board.AllPits = pits
	that.playerContinues = false
}

// ArePitsInRangeEmpty - true if every pit in [fromID, toID) holds no stones.
func (that *BoardService) ArePitsInRangeEmpty(fromID, toID int) bool {
	for id := fromID; id < toID; id++ {
		pit, err := that.board.Pit(id)
		if err != nil {
			return false
		}

		if !pit.IsEmpty() {
			return false
		}
	}

	return true
}

// DoesPlayerContinue - true if the last executed move ended in the mover's home.
func (that *BoardService) DoesPlayerContinue() bool {
	return that.playerContinues
}

func (that *BoardService) PlayerHomeCount(player entity.Player) (int, error) {
	if player.HomeID == entity.NoHome {
		return 0, fmt.Errorf("%w: homeless player", apperror.ErrInvalidPlayer)
	}

	home, err := that.board.Pit(player.HomeID)
	if err != nil {
		return 0, fmt.Errorf("failed to get home pit: %w", err)
	}

	return home.NumberOfStones, nil
}

// CollectRemainingStones - moves every side's leftover stones into that side's home.
func (that *BoardService) CollectRemainingStones() {
	that.collectRemainingStones(0, that.layout.P1HomePit)
	that.collectRemainingStones(that.layout.P1HomePit+1, that.layout.P2HomePit)
}

func (that *BoardService) collectRemainingStones(lower, home int) {
	count := 0
	for id := lower; id < home; id++ {
		pit := &that.board.AllPits[id]
		count += pit.NumberOfStones
		pit.NumberOfStones = 0
	}

	that.board.AllPits[home].IncrementStoneCountBy(count)
}

// CaptureOppositeStones - when the last stone lands in an empty pit on the mover's side,
// that stone and everything opposite go to the mover's home.
func (that *BoardService) CaptureOppositeStones(mover entity.Player, latestPit *entity.Pit) {
	if latestPit.NumberOfStones != 1 {
		return
	}

	lower, upper := that.layout.PlaygroundRange(mover)
	oppositeID := that.layout.OppositePitID(latestPit.ID)

	// the opposite pit is on the mover's own side, so the move ended on the opponent's side
	if oppositeID >= lower && oppositeID < upper {
		return
	}

	opposite, err := that.board.Pit(oppositeID)
	if err != nil || opposite.IsEmpty() {
		return
	}

	home, err := that.board.Pit(mover.HomeID)
	if err != nil {
		return
	}

	captured := opposite.NumberOfStones + latestPit.NumberOfStones
	opposite.NumberOfStones = 0
	latestPit.NumberOfStones = 0
	home.IncrementStoneCountBy(captured)
}

// UpdateBoardForMove - sows the selected pit. The move must already be validated.
func (that *BoardService) UpdateBoardForMove(move entity.Move) {
	start := &that.board.AllPits[move.SelectedPit.ID]
	remaining := start.NumberOfStones
	nextID := start.ID

	var last *entity.Pit
	for remaining > 0 {
		nextID = (nextID + 1) % that.layout.TotalPitCount
		next := &that.board.AllPits[nextID]

		// the opponent's home is passed over without using up a stone
		if !next.IsPlayground() && !next.Owner.Equal(move.CurrentPlayer) {
			continue
		}

		next.IncrementStoneCountBy(1)
		start.DecrementStoneCountBy(1)
		remaining--
		last = next
	}

	if last == nil {
		that.playerContinues = false
		return
	}

	if last.IsPlayground() {
		that.CaptureOppositeStones(move.CurrentPlayer, last)
		that.playerContinues = false

		return
	}

	// the only reachable home is the mover's own
	that.playerContinues = true
}
