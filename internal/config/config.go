package config

import (
	"errors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

var ErrInconsistentBoard = errors.New("inconsistent board layout")

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort string  `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Redis    Redis   `yaml:"redis"`
	Board    Board   `yaml:"board"`
	Results  Results `yaml:"results"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

type Board struct {
	PitsPerPlayer      int `yaml:"pits-per-player" env:"PITS_PER_PLAYER" env-default:"6"`
	StartingStoneCount int `yaml:"starting-stone-count" env:"STARTING_STONE_COUNT" env-default:"6"`
	TotalPitCount      int `yaml:"total-pit-count" env:"TOTAL_PIT_COUNT" env-default:"14"`
	P1HomePit          int `yaml:"p1-home-pit" env:"P1_HOME_PIT" env-default:"6"`
	P2HomePit          int `yaml:"p2-home-pit" env:"P2_HOME_PIT" env-default:"13"`
}

type Results struct {
	HistorySize int64 `yaml:"history-size" env:"RESULTS_HISTORY_SIZE" env-default:"100"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Board.Validate(); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

// Validate - the rules engine assumes two symmetric sides with a home pit at the end of each.
func (that *Board) Validate() error {
	switch {
	case that.PitsPerPlayer < 1:
		return fmt.Errorf("%w: pits-per-player must be positive, got %d", ErrInconsistentBoard, that.PitsPerPlayer)
	case that.StartingStoneCount < 1:
		return fmt.Errorf("%w: starting-stone-count must be positive, got %d", ErrInconsistentBoard, that.StartingStoneCount)
	case that.TotalPitCount != 2*that.PitsPerPlayer+2:
		return fmt.Errorf("%w: total-pit-count must be %d, got %d", ErrInconsistentBoard, 2*that.PitsPerPlayer+2, that.TotalPitCount)
	case that.P1HomePit != that.PitsPerPlayer:
		return fmt.Errorf("%w: p1-home-pit must be %d, got %d", ErrInconsistentBoard, that.PitsPerPlayer, that.P1HomePit)
	case that.P2HomePit != 2*that.PitsPerPlayer+1:
		return fmt.Errorf("%w: p2-home-pit must be %d, got %d", ErrInconsistentBoard, 2*that.PitsPerPlayer+1, that.P2HomePit)
	}

	return nil
}
