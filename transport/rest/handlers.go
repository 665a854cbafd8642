package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/rocketscienceinc/mancala-backend/internal/apperror"
	"github.com/rocketscienceinc/mancala-backend/internal/entity"
)

const defaultResultsLimit = 10

var (
	errPitNotInteger = errors.New("pitID must be an integer")
	errBadLimit      = errors.New("limit must be a positive integer")
)

type GameHandler interface {
	Start(w http.ResponseWriter, r *http.Request)
	Move(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
	Results(w http.ResponseWriter, r *http.Request)
	Scoreboard(w http.ResponseWriter, r *http.Request)
}

type gameUseCase interface {
	StartGame() *entity.GameStatus
	CurrentGame() (*entity.GameStatus, error)
	MakeMove(ctx context.Context, playerID string, pitID int) (*entity.GameStatus, error)
	Results(ctx context.Context, limit int64) ([]*entity.Result, error)
	Scoreboard(ctx context.Context) (map[entity.PlayerID]int64, error)
}

type gameHandler struct {
	logger *slog.Logger
	game   gameUseCase
}

func NewGameHandler(logger *slog.Logger, game gameUseCase) GameHandler {
	return &gameHandler{
		logger: logger.With("component", "rest"),
		game:   game,
	}
}

// Start - GET /start
func (that *gameHandler) Start(w http.ResponseWriter, _ *http.Request) {
	that.writeJSON(w, http.StatusOK, that.game.StartGame())
}

// Move - GET /move?playerID=PLAYER_1&pitID=0
func (that *gameHandler) Move(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	pitID, err := strconv.Atoi(query.Get("pitID"))
	if err != nil {
		that.writeError(w, errPitNotInteger)
		return
	}

	status, err := that.game.MakeMove(r.Context(), query.Get("playerID"), pitID)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, status)
}

// Status - GET /status
func (that *gameHandler) Status(w http.ResponseWriter, _ *http.Request) {
	status, err := that.game.CurrentGame()
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, status)
}

// Results - GET /results?limit=10
func (that *gameHandler) Results(w http.ResponseWriter, r *http.Request) {
	limit := int64(defaultResultsLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 1 {
			that.writeError(w, errBadLimit)
			return
		}
		limit = parsed
	}

	results, err := that.game.Results(r.Context(), limit)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, results)
}

// Scoreboard - GET /scoreboard
func (that *gameHandler) Scoreboard(w http.ResponseWriter, r *http.Request) {
	scoreboard, err := that.game.Scoreboard(r.Context())
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, scoreboard)
}

func (that *gameHandler) writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}

func (that *gameHandler) writeError(w http.ResponseWriter, err error) {
	code := statusCode(err)
	if code == http.StatusInternalServerError {
		that.logger.Error("request failed", "error", err)
	}

	that.writeJSON(w, code, map[string]string{"error": err.Error()})
}

func statusCode(err error) int {
	switch {
	case errors.Is(err, apperror.ErrInvalidPlayer),
		errors.Is(err, apperror.ErrInvalidPit),
		errors.Is(err, errPitNotInteger),
		errors.Is(err, errBadLimit):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrGameIsNotStarted):
		return http.StatusConflict
	case errors.Is(err, apperror.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
