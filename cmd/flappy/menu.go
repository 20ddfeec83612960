package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/H4wk507/terminal-flappy-bird/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a version from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play, Tab for high scores.
After a game ends you return to the menu.

Examples:
  flappy menu
  flappy menu --sound
  flappy menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	addGameFlags(menuCmd)
}

func runMenu(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	rc := runtimeConfig(cfg)

	store := openStore()
	if store != nil {
		defer store.Close()
	}
	sound := openSound(flagSound)
	defer sound.Close()

	opts := tui.Options{Store: store, Sound: sound, Logger: logger}
	last := "flappy"

	for {
		result, err := tui.RunMenu(store, rc, last)
		if err != nil {
			return err
		}
		rc = result.Config

		if result.Quit {
			return nil
		}

		if result.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, rc.ScreenW, rc.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		last = result.GameID
		if err := checkScreen(cfg, rc); err != nil {
			logger.Warn("terminal too small", "err", err)
			continue
		}

		if err := playOnce(cmd.Context(), result.GameID, cfg, rc, opts); err != nil {
			return fmt.Errorf("%s: %w", result.GameID, err)
		}
	}
}
