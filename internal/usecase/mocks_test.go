package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/mancala-backend/internal/entity"
)

type mockResultRepo struct {
	mock.Mock
}

func newMockResultRepo(t *testing.T) *mockResultRepo {
	t.Helper()

	m := &mockResultRepo{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *mockResultRepo) Save(ctx context.Context, result *entity.Result) error {
	args := m.Called(ctx, result)
	return args.Error(0)
}

func (m *mockResultRepo) List(ctx context.Context, limit int64) ([]*entity.Result, error) {
	args := m.Called(ctx, limit)

	results, _ := args.Get(0).([]*entity.Result)
	return results, args.Error(1)
}

func (m *mockResultRepo) Scoreboard(ctx context.Context) (map[entity.PlayerID]int64, error) {
	args := m.Called(ctx)

	scoreboard, _ := args.Get(0).(map[entity.PlayerID]int64)
	return scoreboard, args.Error(1)
}

// expectSave expects exactly one saved result for gameID with the given winner.
func (m *mockResultRepo) expectSave(gameID string, winner entity.PlayerID, err error) {
	m.On("Save", mock.Anything, mock.MatchedBy(func(result *entity.Result) bool {
		return result.GameID == gameID &&
			result.Winner == winner &&
			result.Moves == 1 &&
			result.P1Home+result.P2Home > 0 &&
			!result.FinishedAt.IsZero()
	})).Return(err).Once()
}
