// tetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetris play              - Play in this terminal
//	tetris serve             - Start SSH server for remote play
//	tetris shapes            - Print the shapes and their rotations
//	tetris config            - Print the effective configuration
//
// Global flags:
//
//	--config <path>  - Use a custom YAML config
//	--seed <value>   - Set RNG seed for a reproducible shape sequence
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

var (
	// Global flags
	flagConfig string
	flagSeed   int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - falling blocks in your terminal",
	Long: `A falling-block puzzle game that runs in your terminal or over SSH.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  shapes   - Print the seven shapes and their rotations
  config   - Print the effective configuration

Examples:
  tetris play
  tetris play --seed 42 --gravity 500ms
  tetris serve --ssh :2222
  tetris config --config ./my-tetris.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(shapesCmd)
	rootCmd.AddCommand(configCmd)
}

// loadRuntime resolves the config file and builds the runtime settings
// for a screen of the given size.
func loadRuntime(screenW, screenH int) (core.RuntimeConfig, error) {
	cfg, source, err := config.LoadWithSource(flagConfig)
	if err != nil {
		return core.RuntimeConfig{}, err
	}
	rt := cfg.Runtime(screenW, screenH, flagSeed)
	if source != config.SourceEmbedded {
		fmt.Fprintf(os.Stderr, "Using config %s\n", source)
	}
	return rt, nil
}
