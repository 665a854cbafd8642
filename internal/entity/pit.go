package entity

type PitType string

const (
	Playground PitType = "PLAYGROUND"
	Home       PitType = "HOME"
)

type Pit struct {
	ID             int     `json:"id"`
	Owner          Player  `json:"owner"`
	PitType        PitType `json:"pitType"`
	NumberOfStones int     `json:"numberOfStones"`
}

func (that *Pit) IsHome() bool {
	return that.PitType == Home
}

func (that *Pit) IsPlayground() bool {
	return that.PitType == Playground
}

func (that *Pit) IsEmpty() bool {
	return that.NumberOfStones == 0
}

func (that *Pit) IncrementStoneCountBy(n int) {
	that.NumberOfStones += n
}

func (that *Pit) DecrementStoneCountBy(n int) {
	that.NumberOfStones -= n
}
