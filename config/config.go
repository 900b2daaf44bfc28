package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"classic-snake/game/types"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds the board geometry, palette and pacing for one run.
// It is built once at startup and passed by value, never mutated afterwards.
type Config struct {
	Title      string      `json:"title"`
	Width      int         `json:"width"`
	Height     int         `json:"height"`
	CellSize   int         `json:"cell_size"`
	FPS        int         `json:"fps"`
	Background types.Color `json:"background"`
	SnakeColor types.Color `json:"snake_color"`
	AppleColor types.Color `json:"apple_color"`
}

// Default returns the classic 640x480 board with 20px cells at 15 fps.
func Default() Config {
	return Config{
		Title:      "Snake Game",
		Width:      640,
		Height:     480,
		CellSize:   20,
		FPS:        15,
		Background: types.Color{R: 21, G: 21, B: 21},
		SnakeColor: types.Color{R: 0, G: 102, B: 0},
		AppleColor: types.Color{R: 255, G: 51, B: 0},
	}
}

// Load reads a JSON config over the defaults. A missing file is created
// with the defaults so it can be edited for the next run.
func Load(filePath string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filePath)
	if errors.Is(err, fs.ErrNotExist) {
		if err := Save(filePath, cfg); err != nil {
			return Config{}, err
		}
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", filePath, err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", filePath, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", filePath, err)
	}
	return cfg, nil
}

// Save writes cfg as indented JSON.
func Save(filePath string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("write config %s: %w", filePath, err)
	}
	return nil
}

// Validate checks that the board is a whole number of cells and the pacing is usable.
func (c Config) Validate() error {
	switch {
	case c.CellSize <= 0:
		return fmt.Errorf("%w: cell_size must be positive, got %d", ErrInvalid, c.CellSize)
	case c.Width < c.CellSize || c.Height < c.CellSize:
		return fmt.Errorf("%w: board %dx%d is smaller than one %dpx cell", ErrInvalid, c.Width, c.Height, c.CellSize)
	case c.Width%c.CellSize != 0 || c.Height%c.CellSize != 0:
		return fmt.Errorf("%w: board %dx%d is not a multiple of cell_size %d", ErrInvalid, c.Width, c.Height, c.CellSize)
	case c.FPS <= 0:
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalid, c.FPS)
	case c.FrameInterval() <= 0:
		return fmt.Errorf("%w: fps %d leaves no time for a frame", ErrInvalid, c.FPS)
	}
	return nil
}

// Grid returns the board geometry.
func (c Config) Grid() types.Grid {
	return types.Grid{Width: c.Width, Height: c.Height, CellSize: c.CellSize}
}

// FrameInterval is the time budget of one frame.
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}
