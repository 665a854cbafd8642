package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Defaults describe the standard board", func(t *testing.T) {
		// Given: a config file that only sets the port
		path := writeConfig(t, "http-port: \"8080\"\n")

		// When: it is loaded
		conf, err := Load(path)

		// Then: the board falls back to six pits with six stones
		require.NoError(t, err)
		assert.Equal(t, "8080", conf.HTTPPort)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, Board{PitsPerPlayer: 6, StartingStoneCount: 6, TotalPitCount: 14, P1HomePit: 6, P2HomePit: 13}, conf.Board)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, int64(100), conf.Results.HistorySize)
	})

	t.Run("Custom board", func(t *testing.T) {
		// Given: a four pit board
		path := writeConfig(t, `
board:
  pits-per-player: 4
  starting-stone-count: 3
  total-pit-count: 10
  p1-home-pit: 4
  p2-home-pit: 9
`)

		// When: it is loaded
		conf, err := Load(path)

		// Then: the values are kept
		require.NoError(t, err)
		assert.Equal(t, 4, conf.Board.PitsPerPlayer)
		assert.Equal(t, 9, conf.Board.P2HomePit)
	})

	t.Run("Inconsistent board is rejected", func(t *testing.T) {
		// Given: home pits that do not match the pit count
		path := writeConfig(t, `
board:
  pits-per-player: 6
  total-pit-count: 14
  p1-home-pit: 7
  p2-home-pit: 13
`)

		// When: it is loaded
		_, err := Load(path)

		// Then: ErrInconsistentBoard is returned
		require.ErrorIs(t, err, ErrInconsistentBoard)
		assert.Panics(t, func() { MustLoad(path) })
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
		require.Error(t, err)
	})
}

func TestBoard_Validate(t *testing.T) {
	valid := Board{PitsPerPlayer: 6, StartingStoneCount: 4, TotalPitCount: 14, P1HomePit: 6, P2HomePit: 13}
	require.NoError(t, valid.Validate())

	broken := []Board{
		{PitsPerPlayer: 0, StartingStoneCount: 4, TotalPitCount: 2, P1HomePit: 0, P2HomePit: 1},
		{PitsPerPlayer: 6, StartingStoneCount: 0, TotalPitCount: 14, P1HomePit: 6, P2HomePit: 13},
		{PitsPerPlayer: 6, StartingStoneCount: 4, TotalPitCount: 15, P1HomePit: 6, P2HomePit: 13},
		{PitsPerPlayer: 6, StartingStoneCount: 4, TotalPitCount: 14, P1HomePit: 5, P2HomePit: 13},
		{PitsPerPlayer: 6, StartingStoneCount: 4, TotalPitCount: 14, P1HomePit: 6, P2HomePit: 12},
	}
	for _, board := range broken {
		assert.ErrorIs(t, board.Validate(), ErrInconsistentBoard)
	}
}
