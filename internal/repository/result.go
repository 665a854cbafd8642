package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/mancala-backend/internal/entity"
)

const (
	resultsHistoryKey    = "results:history"
	resultsScoreboardKey = "results:scoreboard"
)

type ResultRepository interface {
	Save(ctx context.Context, result *entity.Result) error
	List(ctx context.Context, limit int64) ([]*entity.Result, error)
	Scoreboard(ctx context.Context) (map[entity.PlayerID]int64, error)
}

type dbResult struct {
	client      *redis.Client
	historySize int64
}

// NewResultRepository keeps the latest historySize results and a win tally per player.
func NewResultRepository(client *redis.Client, historySize int64) ResultRepository {
	return &dbResult{
		client:      client,
		historySize: historySize,
	}
}

func (that *dbResult) Save(ctx context.Context, result *entity.Result) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal result: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, resultsHistoryKey, resultJSON)
		if that.historySize > 0 {
			pipe.LTrim(ctx, resultsHistoryKey, 0, that.historySize-1)
		}
		pipe.HIncrBy(ctx, resultsScoreboardKey, string(result.Winner), 1)

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	return nil
}

// List - most recent results first.
func (that *dbResult) List(ctx context.Context, limit int64) ([]*entity.Result, error) {
	if limit <= 0 {
		return []*entity.Result{}, nil
	}

	response, err := that.client.LRange(ctx, resultsHistoryKey, 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}

	results := make([]*entity.Result, 0, len(response))
	for _, raw := range response {
		var result entity.Result
		if err = json.Unmarshal([]byte(raw), &result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal result: %w", err)
		}

		results = append(results, &result)
	}

	return results, nil
}

func (that *dbResult) Scoreboard(ctx context.Context) (map[entity.PlayerID]int64, error) {
	response, err := that.client.HGetAll(ctx, resultsScoreboardKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get scoreboard: %w", err)
	}

	scoreboard := make(map[entity.PlayerID]int64, len(response))
	for player, raw := range response {
		wins, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse wins of %s: %w", player, err)
		}

		scoreboard[entity.PlayerID(player)] = wins
	}

	return scoreboard, nil
}
