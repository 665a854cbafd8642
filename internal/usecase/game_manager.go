package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/rocketscienceinc/mancala-backend/internal/apperror"
	"github.com/rocketscienceinc/mancala-backend/internal/entity"
	"github.com/rocketscienceinc/mancala-backend/internal/mancala"
)

type gameEngine interface {
	StartGame() *mancala.Session
	ExecuteMove(session *mancala.Session, playerID string, pitID int) (*entity.GameStatus, error)
}

type resultRepo interface {
	Save(ctx context.Context, result *entity.Result) error
	List(ctx context.Context, limit int64) ([]*entity.Result, error)
	Scoreboard(ctx context.Context) (map[entity.PlayerID]int64, error)
}

// GameManager owns the single live game and serializes every call against it.
type GameManager struct {
	logger     *slog.Logger
	engine     gameEngine
	resultRepo resultRepo
	now        func() time.Time

	mu      sync.Mutex
	session *mancala.Session
}

func NewGameManager(logger *slog.Logger, engine gameEngine, resultRepo resultRepo) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		engine:     engine,
		resultRepo: resultRepo,
		now:        time.Now,
	}
}

// StartGame - discards the current game, if any, and starts a new one.
func (that *GameManager) StartGame() *entity.GameStatus {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.session = that.engine.StartGame()

	that.logger.Info("game started", "gameID", that.session.ID)

	return that.session.Status().Clone()
}

// CurrentGame - the status of the live game.
func (that *GameManager) CurrentGame() (*entity.GameStatus, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.session == nil {
		return nil, apperror.ErrGameIsNotStarted
	}

	return that.session.Status().Clone(), nil
}

// MakeMove - plays pitID for playerID. The result of a game is recorded once, on the move that ends it.
func (that *GameManager) MakeMove(ctx context.Context, playerID string, pitID int) (*entity.GameStatus, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.session == nil {
		return nil, apperror.ErrGameIsNotStarted
	}

	log := that.logger.With("method", "MakeMove", "gameID", that.session.ID)

	wasFinished := that.session.IsFinished()

	status, err := that.engine.ExecuteMove(that.session, playerID, pitID)
	if err != nil {
		log.Debug("move rejected", "playerID", playerID, "pitID", pitID, "error", err)
		return nil, fmt.Errorf("failed make move: %w", err)
	}

	if !status.LegalMove {
		log.Debug("illegal move", "playerID", playerID, "pitID", pitID)
	}

	if !wasFinished && status.EndGame {
		that.recordResult(ctx, status)
	}

	return status.Clone(), nil
}

func (that *GameManager) Results(ctx context.Context, limit int64) ([]*entity.Result, error) {
	results, err := that.resultRepo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}

	return results, nil
}

func (that *GameManager) Scoreboard(ctx context.Context) (map[entity.PlayerID]int64, error) {
	scoreboard, err := that.resultRepo.Scoreboard(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get scoreboard: %w", err)
	}

	return scoreboard, nil
}

// recordResult - a failure here is logged and never fails the move.
func (that *GameManager) recordResult(ctx context.Context, status *entity.GameStatus) {
	log := that.logger.With("method", "recordResult", "gameID", status.GameID)

	result := &entity.Result{
		GameID:     status.GameID,
		Winner:     status.Winner.ID,
		P1Home:     status.CurrentBoardStatus.HomeCount(entity.Player1),
		P2Home:     status.CurrentBoardStatus.HomeCount(entity.Player2),
		Moves:      status.Moves,
		FinishedAt: that.now().UTC(),
	}

	if err := that.resultRepo.Save(ctx, result); err != nil {
		log.Error("failed to save result", "error", err)
		return
	}

	log.Info("game finished", "winner", result.Winner, "p1Home", result.P1Home, "p2Home", result.P2Home)
}
