package core

import "time"

// RuntimeConfig contains the settings a driver needs to start a game.
type RuntimeConfig struct {
	ScreenW  int           // Screen width in characters
	ScreenH  int           // Screen height in characters
	BoardW   int           // Board columns
	BoardH   int           // Board rows
	Gravity  time.Duration // Interval between gravity ticks
	Seed     int64         // RNG seed for shape selection
	Glyph    string        // Two-character glyph for a filled cell
	ShowHelp bool          // Draw the key help footer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		BoardW:   10,
		BoardH:   20,
		Gravity:  time.Second,
		Seed:     0, // 0 means use current time in platform layer
		Glyph:    "[]",
		ShowHelp: true,
	}
}
