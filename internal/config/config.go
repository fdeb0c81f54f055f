// Package config provides YAML-based game configuration loading and
// validation.
package config

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Minimum board dimensions. Every canonical shape must fit at spawn.
const (
	MinBoardWidth  = 4
	MinBoardHeight = 4
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config contains all configuration for the game.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Gravity GravityConfig `yaml:"gravity"`
	Render  RenderConfig  `yaml:"render"`
}

// BoardConfig defines the playfield size.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GravityConfig defines the fall timer.
type GravityConfig struct {
	Interval time.Duration `yaml:"interval"`
}

// RenderConfig defines how the board is drawn.
type RenderConfig struct {
	Glyph    string `yaml:"glyph"`     // Exactly two runes per filled cell
	ShowHelp bool   `yaml:"show_help"` // Key help footer under the board
}

// Validate rejects dimensions and intervals the engine cannot run with.
func (c Config) Validate() error {
	if c.Board.Width < MinBoardWidth {
		return fmt.Errorf("%w: board.width %d is below %d", ErrInvalid, c.Board.Width, MinBoardWidth)
	}
	if c.Board.Height < MinBoardHeight {
		return fmt.Errorf("%w: board.height %d is below %d", ErrInvalid, c.Board.Height, MinBoardHeight)
	}
	if c.Gravity.Interval <= 0 {
		return fmt.Errorf("%w: gravity.interval must be positive, got %s", ErrInvalid, c.Gravity.Interval)
	}
	if n := utf8.RuneCountInString(c.Render.Glyph); n != 2 {
		return fmt.Errorf("%w: render.glyph must be two characters, got %q", ErrInvalid, c.Render.Glyph)
	}
	return nil
}

// Runtime converts the config into the settings a driver starts with.
// Screen size and seed come from the caller.
func (c Config) Runtime(screenW, screenH int, seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  screenW,
		ScreenH:  screenH,
		BoardW:   c.Board.Width,
		BoardH:   c.Board.Height,
		Gravity:  c.Gravity.Interval,
		Seed:     seed,
		Glyph:    c.Render.Glyph,
		ShowHelp: c.Render.ShowHelp,
	}
}
