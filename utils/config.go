package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Config holds the configuration for the game
type Config struct {
	BoardSize           int     `json:"board_size"`
	FPS                 float64 `json:"fps"`
	Duration            float64 `json:"duration"` // seconds
	InitPattern         string  `json:"init_pattern"`
	RandomDensity       float64 `json:"random_density"`
	UseParallel         bool    `json:"use_parallel"`
	StagnationThreshold int     `json:"stagnation_threshold"`
	ClearScreen         bool    `json:"clear_screen"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		BoardSize:           20,
		FPS:                 8,
		Duration:            10,
		InitPattern:         "", // random named pattern
		RandomDensity:       0.1,
		UseParallel:         false,
		StagnationThreshold: 0, // never stop early
		ClearScreen:         true,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate reports the first setting the simulation cannot run with
func (c Config) Validate() error {
	switch {
	case c.BoardSize <= 0:
		return errors.Errorf("[Validate] board_size must be positive, got %d", c.BoardSize)
	case c.FPS <= 0:
		return errors.Errorf("[Validate] fps must be positive, got %v", c.FPS)
	case c.Duration < 0:
		return errors.Errorf("[Validate] duration must not be negative, got %v", c.Duration)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Errorf("[Validate] random_density must be in [0, 1], got %v", c.RandomDensity)
	}
	return nil
}

// FrameCount is the number of generations shown over the configured duration
func (c Config) FrameCount() int {
	return int(c.Duration * c.FPS)
}

// FrameInterval is the delay between two rendered generations
func (c Config) FrameInterval() time.Duration {
	return time.Duration(float64(time.Second) / c.FPS)
}
