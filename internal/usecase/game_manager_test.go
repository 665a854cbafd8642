package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/mancala-backend/internal/apperror"
	"github.com/rocketscienceinc/mancala-backend/internal/entity"
	"github.com/rocketscienceinc/mancala-backend/internal/mancala"
	"github.com/rocketscienceinc/mancala-backend/testing/suite"
)

var errRedisDown = errors.New("redis down")

// tinyLayout has one pit per side, so a single move ends the game.
func tinyLayout(stones int) mancala.Layout {
	return mancala.Layout{PitsPerPlayer: 1, StartingStoneCount: stones, TotalPitCount: 4, P1HomePit: 1, P2HomePit: 3}
}

func newManager(t *testing.T, layout mancala.Layout, repo *mockResultRepo) *GameManager {
	t.Helper()

	manager := NewGameManager(suite.NewLogger(), mancala.NewGameService(layout), repo)
	manager.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

	return manager
}

func TestGameManager_StartGame(t *testing.T) {
	t.Run("Returns a fresh game", func(t *testing.T) {
		// Given: a game manager
		manager := newManager(t, mancala.DefaultLayout(), newMockResultRepo(t))

		// When: a game is started
		status := manager.StartGame()

		// Then: the status is fresh and matches the current game
		assert.True(t, status.LegalMove)
		assert.False(t, status.EndGame)
		assert.Equal(t, entity.Player1, status.NextPlayer.ID)
		assert.Equal(t, entity.NoPlayer, status.Winner.ID)

		current, err := manager.CurrentGame()
		require.NoError(t, err)
		assert.Equal(t, status, current)
	})

	t.Run("Returned status does not alias the live game", func(t *testing.T) {
		manager := newManager(t, mancala.DefaultLayout(), newMockResultRepo(t))
		status := manager.StartGame()

		// When: the caller scribbles on the returned board
		status.CurrentBoardStatus.AllPits[0].NumberOfStones = 0

		// Then: the live game is unaffected
		current, err := manager.CurrentGame()
		require.NoError(t, err)
		assert.Equal(t, 6, current.CurrentBoardStatus.AllPits[0].NumberOfStones)
	})

	t.Run("Restart replaces the game", func(t *testing.T) {
		manager := newManager(t, mancala.DefaultLayout(), newMockResultRepo(t))
		first := manager.StartGame()

		_, err := manager.MakeMove(context.Background(), "PLAYER_1", 2)
		require.NoError(t, err)

		second := manager.StartGame()

		assert.NotEqual(t, first.GameID, second.GameID)
		assert.Zero(t, second.Moves)
		assert.Equal(t, 6, second.CurrentBoardStatus.AllPits[2].NumberOfStones)
	})
}

func TestGameManager_MakeMove(t *testing.T) {
	ctx := context.Background()

	t.Run("Fails before a game is started", func(t *testing.T) {
		manager := newManager(t, mancala.DefaultLayout(), newMockResultRepo(t))

		_, err := manager.MakeMove(ctx, "PLAYER_1", 0)
		require.ErrorIs(t, err, apperror.ErrGameIsNotStarted)

		_, err = manager.CurrentGame()
		require.ErrorIs(t, err, apperror.ErrGameIsNotStarted)
	})

	t.Run("Plays a move without recording anything", func(t *testing.T) {
		// Given: a started game and a repository with no expectations
		manager := newManager(t, mancala.DefaultLayout(), newMockResultRepo(t))
		manager.StartGame()

		// When: player 1 plays pit 0
		status, err := manager.MakeMove(ctx, "PLAYER_1", 0)

		// Then: the move is applied
		require.NoError(t, err)
		assert.True(t, status.LegalMove)
		assert.Equal(t, 1, status.CurrentBoardStatus.AllPits[6].NumberOfStones)
		assert.Equal(t, entity.Player1, status.NextPlayer.ID)
	})

	t.Run("Caller errors are passed through", func(t *testing.T) {
		manager := newManager(t, mancala.DefaultLayout(), newMockResultRepo(t))
		manager.StartGame()

		_, err := manager.MakeMove(ctx, "PLAYER_9", 0)
		require.ErrorIs(t, err, apperror.ErrInvalidPlayer)

		_, err = manager.MakeMove(ctx, "PLAYER_1", 14)
		require.ErrorIs(t, err, apperror.ErrInvalidPit)
	})

	t.Run("The ending move records the result once", func(t *testing.T) {
		// Given: a two-stone game where player 1's only move ends it
		repo := newMockResultRepo(t)
		manager := newManager(t, tinyLayout(2), repo)
		started := manager.StartGame()

		repo.expectSave(started.GameID, entity.Player2, nil)

		// When: player 1 plays its only pit
		status, err := manager.MakeMove(ctx, "PLAYER_1", 0)

		// Then: the game is over, player 2 wins and the result is saved
		require.NoError(t, err)
		assert.True(t, status.EndGame)
		assert.Equal(t, entity.Player2, status.Winner.ID)

		// When: another move is attempted on the finished game
		status, err = manager.MakeMove(ctx, "PLAYER_2", 2)

		// Then: it is illegal and nothing is recorded again
		require.NoError(t, err)
		assert.False(t, status.LegalMove)
		repo.AssertNumberOfCalls(t, "Save", 1)
	})

	t.Run("A draw is recorded under None", func(t *testing.T) {
		repo := newMockResultRepo(t)
		manager := newManager(t, tinyLayout(1), repo)
		started := manager.StartGame()

		repo.expectSave(started.GameID, entity.NoPlayer, nil)

		status, err := manager.MakeMove(ctx, "PLAYER_1", 0)
		require.NoError(t, err)
		assert.True(t, status.EndGame)
		assert.True(t, status.Winner.IsEmpty())
	})

	t.Run("A failed save does not fail the move", func(t *testing.T) {
		repo := newMockResultRepo(t)
		manager := newManager(t, tinyLayout(2), repo)
		started := manager.StartGame()

		repo.expectSave(started.GameID, entity.Player2, errRedisDown)

		status, err := manager.MakeMove(ctx, "PLAYER_1", 0)
		require.NoError(t, err)
		assert.True(t, status.EndGame)
	})
}

func TestGameManager_Results(t *testing.T) {
	ctx := context.Background()

	t.Run("Lists results", func(t *testing.T) {
		repo := newMockResultRepo(t)
		manager := newManager(t, mancala.DefaultLayout(), repo)

		expected := []*entity.Result{{GameID: "a", Winner: entity.Player1}}
		repo.On("List", mock.Anything, int64(5)).Return(expected, nil).Once()

		results, err := manager.Results(ctx, 5)
		require.NoError(t, err)
		assert.Equal(t, expected, results)
	})

	t.Run("Wraps repository errors", func(t *testing.T) {
		repo := newMockResultRepo(t)
		manager := newManager(t, mancala.DefaultLayout(), repo)

		repo.On("List", mock.Anything, int64(5)).Return(nil, errRedisDown).Once()
		repo.On("Scoreboard", mock.Anything).Return(nil, errRedisDown).Once()

		_, err := manager.Results(ctx, 5)
		require.ErrorIs(t, err, errRedisDown)

		_, err = manager.Scoreboard(ctx)
		require.ErrorIs(t, err, errRedisDown)
	})

	t.Run("Scoreboard", func(t *testing.T) {
		repo := newMockResultRepo(t)
		manager := newManager(t, mancala.DefaultLayout(), repo)

		expected := map[entity.PlayerID]int64{entity.Player1: 3}
		repo.On("Scoreboard", mock.Anything).Return(expected, nil).Once()

		scoreboard, err := manager.Scoreboard(ctx)
		require.NoError(t, err)
		assert.Equal(t, expected, scoreboard)
	})
}
