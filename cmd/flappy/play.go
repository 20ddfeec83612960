package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/H4wk507/terminal-flappy-bird/internal/config"
	"github.com/H4wk507/terminal-flappy-bird/internal/core"
	"github.com/H4wk507/terminal-flappy-bird/internal/platform/cellterm"
	"github.com/H4wk507/terminal-flappy-bird/internal/platform/tui"
	"github.com/H4wk507/terminal-flappy-bird/internal/registry"
)

const (
	backendTea   = "tea"
	backendTcell = "tcell"
)

var (
	flagBackend string
	flagSound   bool
)

var playCmd = &cobra.Command{
	Use:   "play [version]",
	Short: "Play a version of the game",
	Long: `Start playing the given version (default: flappy).

Controls:
  Space      - Flap
  P          - Pause
  Enter      - Play again (after game over)
  Q or Esc   - Quit (depends on the version)
  Ctrl+C     - Quit
  Ctrl+S     - Save a text screenshot

Examples:
  flappy play
  flappy play flappy-v2
  flappy play --seed 42 --tick 80ms
  flappy play --backend tcell --sound
  flappy play --config ./my-flappy.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
}

// addGameFlags registers the flags shared by every command that runs a game.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagBackend, "backend", backendTea, "Renderer: tea or tcell")
	cmd.Flags().BoolVar(&flagSound, "sound", false, "Play synthesized sound effects")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := "flappy"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown version %q, run 'flappy list' to see them", gameID)
	}
	if flagBackend != backendTea && flagBackend != backendTcell {
		return fmt.Errorf("unknown backend %q, expected %s or %s", flagBackend, backendTea, backendTcell)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	rc := runtimeConfig(cfg)
	if err := checkScreen(cfg, rc); err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}
	sound := openSound(flagSound)
	defer sound.Close()

	opts := tui.Options{Store: store, Sound: sound, Logger: logger}
	return playOnce(cmd.Context(), gameID, cfg, rc, opts)
}

// playOnce creates a game and runs it on the selected backend.
func playOnce(ctx context.Context, gameID string, cfg config.FlappyConfig, rc core.RuntimeConfig, opts tui.Options) error {
	game, err := registry.Create(gameID, cfg)
	if err != nil {
		return err
	}

	logger.Info("playing", "variant", gameID, "backend", flagBackend,
		"width", rc.ScreenW, "height", rc.ScreenH, "tick", rc.TickInterval)

	if flagBackend == backendTcell {
		if ctx == nil {
			ctx = context.Background()
		}
		return cellterm.RunTerminal(ctx, game, rc, opts)
	}
	return tui.Run(game, rc, opts)
}
