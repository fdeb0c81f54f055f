package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

var flagInit bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration tetris would use and where it came from.

Search order:
  1. --config path
  2. $XDG_CONFIG_HOME/tui-tetris/tetris.yaml
  3. ./configs/tetris.yaml
  4. built-in defaults

With --init, writes the built-in defaults to the user config path
unless a file already exists there.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagInit, "init", false, "Write the default config to the user config path")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if flagInit {
		return initConfig(cmd)
	}

	cfg, source, err := config.LoadWithSource(flagConfig)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# source: %s\n", source)
	_, err = out.Write(data)
	return err
}

// initConfig writes the embedded defaults to the user config path.
func initConfig(cmd *cobra.Command) error {
	path, err := config.UserConfigPath()
	if err != nil {
		return fmt.Errorf("cannot resolve user config path: %w", err)
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config already exists at %s", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create config directory: %w", err)
	}
	if err := os.WriteFile(path, config.DefaultYAML(), 0o644); err != nil {
		return fmt.Errorf("cannot write config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
