package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/mancala-backend/internal/config"
	"github.com/rocketscienceinc/mancala-backend/internal/mancala"
	"github.com/rocketscienceinc/mancala-backend/internal/repository"
	"github.com/rocketscienceinc/mancala-backend/internal/repository/storage"
	"github.com/rocketscienceinc/mancala-backend/internal/usecase"
	"github.com/rocketscienceinc/mancala-backend/transport/rest"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	resultRepo := repository.NewResultRepository(redisStorage.Connection, conf.Results.HistorySize)
	gameService := mancala.NewGameService(layoutFromConfig(conf.Board))
	gameManager := usecase.NewGameManager(logger, gameService, resultRepo)

	router := rest.NewRouter(rest.NewGameHandler(logger, gameManager), rest.NewPingHandler())

	log.Info("Starting HTTP server", "port", conf.HTTPPort, "layout", conf.Board)
	if err = rest.Start(ctx, conf.HTTPPort, router); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}

func layoutFromConfig(board config.Board) mancala.Layout {
	return mancala.Layout{
		PitsPerPlayer:      board.PitsPerPlayer,
		StartingStoneCount: board.StartingStoneCount,
		TotalPitCount:      board.TotalPitCount,
		P1HomePit:          board.P1HomePit,
		P2HomePit:          board.P2HomePit,
	}
}
