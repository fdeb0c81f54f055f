package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/tetris.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Width:  10,
			Height: 20,
		},
		Gravity: GravityConfig{
			Interval: time.Second,
		},
		Render: RenderConfig{
			Glyph:    "[]",
			ShowHelp: true,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
