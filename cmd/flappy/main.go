// flappy is a terminal Flappy Bird with three playable versions.
//
// Usage:
//
//	flappy play [version]   - Play a version (default: flappy)
//	flappy menu             - Pick a version interactively
//	flappy list             - List available versions
//	flappy scores <version> - Show or clear high scores
//	flappy config           - Print the effective configuration
//
// Global flags:
//
//	--seed <value>    - Set RNG seed for reproducible obstacles
//	--tick <duration> - Override the simulation cadence
//	--config <path>   - Read tuning from a YAML file
//	--db <path>       - Set database path (default: ~/.flappy/scores.db)
//	--log-file <path> - Write logs here (default: ~/.flappy/flappy.log, - for stderr)
//	--debug           - Log debug messages
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/H4wk507/terminal-flappy-bird/internal/games/flappy"
)

var (
	// Global flags
	flagSeed       int64
	flagTick       time.Duration
	flagConfigPath string
	flagDBPath     string
	flagLogFile    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird in your terminal",
	Long: `Flappy Bird in your terminal.

Three versions are available:
  flappy-v1  the bird alone, esc quits
  flappy-v2  scrolling pipes, esc quits
  flappy     pipes, score and a play-again prompt, q quits

Examples:
  flappy play
  flappy play flappy-v1
  flappy play --backend tcell --sound
  flappy menu
  flappy scores flappy`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
	PersistentPostRun: func(*cobra.Command, []string) { closeLogging() },
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().DurationVar(&flagTick, "tick", 0, "Tick interval, e.g. 60ms (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to a custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flappy/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.flappy/flappy.log", "Log file path, - for stderr")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
