package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/H4wk507/terminal-flappy-bird/internal/config"
	"github.com/H4wk507/terminal-flappy-bird/internal/core"
	"github.com/H4wk507/terminal-flappy-bird/internal/platform/audio"
	"github.com/H4wk507/terminal-flappy-bird/internal/storage"
)

var (
	logger  = log.New(io.Discard)
	logFile io.Closer
)

// setupLogging points the logger at --log-file. Logs never go to the
// terminal the game draws on unless asked for with "-".
func setupLogging(_ *cobra.Command, _ []string) error {
	var w io.Writer = os.Stderr
	if flagLogFile != "-" {
		path, err := storage.ExpandPath(flagLogFile)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		logFile = f
	}

	logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return nil
}

func closeLogging() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

// loadConfig reads the tuning from --config or the default search path.
func loadConfig() (config.FlappyConfig, error) {
	cfg, err := config.LoadFlappy(flagConfigPath)
	if err != nil {
		return cfg, err
	}
	logger.Debug("config loaded", "path", flagConfigPath, "tick_ms", cfg.Timing.TickMS)
	return cfg, nil
}

// runtimeConfig sizes the game to the terminal and applies --tick and --seed.
func runtimeConfig(cfg config.FlappyConfig) core.RuntimeConfig {
	rc := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	rc.TickInterval = cfg.Timing.TickInterval()
	if flagTick > 0 {
		rc.TickInterval = flagTick
	}
	rc.Seed = flagSeed
	return rc
}

// checkScreen rejects terminals that cannot fit a valid obstacle.
func checkScreen(cfg config.FlappyConfig, rc core.RuntimeConfig) error {
	if err := cfg.ValidateScreen(rc.ScreenW, rc.FieldHeight()); err != nil {
		minW, minH := cfg.MinScreen()
		return fmt.Errorf("%w (terminal is %dx%d, need at least %dx%d)",
			err, rc.ScreenW, rc.ScreenH, minW, minH+1)
	}
	return nil
}

// openStore opens the scores database. Failure is not fatal: the game runs
// without high scores.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("scores disabled", "db", flagDBPath, "err", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// openSound returns the speaker when enabled, or a silent player.
func openSound(enabled bool) audio.Player {
	if !enabled {
		return audio.Nop{}
	}
	sp, err := audio.NewSpeaker(0.5)
	if err != nil {
		logger.Warn("sound disabled", "err", err)
		return audio.Nop{}
	}
	return sp
}
