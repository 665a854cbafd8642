package apperror

import "errors"

var (
	ErrInvalidPlayer    = errors.New("invalid player id")
	ErrInvalidPit       = errors.New("invalid pit id")
	ErrGameIsNotStarted = errors.New("game is not started")
	ErrNotFound         = errors.New("not found")
)
