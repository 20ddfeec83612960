package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/H4wk507/terminal-flappy-bird/internal/core"
	"github.com/H4wk507/terminal-flappy-bird/internal/platform/audio"
	"github.com/H4wk507/terminal-flappy-bird/internal/platform/recorder"
	"github.com/H4wk507/terminal-flappy-bird/internal/registry"
	"github.com/H4wk507/terminal-flappy-bird/internal/storage"
)

// Options carries the optional services a game run uses.
type Options struct {
	Store         *storage.Store // nil disables high scores
	Sound         audio.Player   // nil is silent
	Logger        *log.Logger    // nil discards
	ScreenshotDir string         // Defaults to ~/.flappy/screenshots
}

// ScoreStore converts a possibly nil store for the recorder.
func (o Options) ScoreStore() recorder.ScoreStore {
	if o.Store == nil {
		return nil
	}
	return o.Store
}

// Log returns the logger, or one that discards everything.
func (o Options) Log() *log.Logger {
	if o.Logger == nil {
		return log.New(io.Discard)
	}
	return o.Logger
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game          registry.Game
	screen        *core.Screen // Playfield only, the status line is separate
	keys          GameKeyMap
	help          help.Model
	recorder      *recorder.Recorder
	logger        *log.Logger
	config        core.RuntimeConfig
	inputFrame    core.InputFrame
	gameState     core.GameState
	screenshotDir string
	quitting      bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Log()
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:          game,
		screen:        core.NewScreen(cfg.ScreenW, cfg.FieldHeight()),
		keys:          NewGameKeyMap(game.QuitKeys()),
		help:          h,
		recorder:      recorder.New(game.ID(), opts.ScoreStore(), opts.Sound, logger),
		logger:        logger,
		config:        cfg,
		inputFrame:    core.NewInputFrame(),
		screenshotDir: opts.ScreenshotDir,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	// The game is a pointer, so the reset survives the value receiver
	m.game.Reset(m.config)
	m.logger.Debug("game started", "variant", m.game.ID(), "seed", m.config.Seed,
		"width", m.config.ScreenW, "height", m.config.ScreenH)

	return tickCmd(m.config.TickInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records the key's action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if action := m.keys.Action(msg); action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize rebuilds the playfield. The running session is replaced.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if msg.Width == m.config.ScreenW && msg.Height == m.config.ScreenH {
		return m, nil
	}

	m.recorder.EndSession(m.gameState.Score)

	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, m.config.FieldHeight())
	m.help.Width = msg.Width

	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.logger.Debug("resized", "width", msg.Width, "height", msg.Height, "too_small", m.gameState.TooSmall)

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.recorder.Observe(result)
	m.inputFrame.Clear()

	if m.gameState.Exited {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickInterval)
}

// saveScreenshot writes the current playfield as plain text.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	path, err := SaveScreenshot(m.screenshotDir, m.game.ID(), m.screen)
	if err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// SaveScreenshot writes a screen as plain text to dir, which defaults to
// ~/.flappy/screenshots, and returns the file path.
func SaveScreenshot(dir, gameID string, s *core.Screen) (string, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: screenshot: %w", err)
		}
		dir = filepath.Join(home, ".flappy", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", gameID, timestamp))
	if err := os.WriteFile(path, []byte(s.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	return path, nil
}

// View renders the playfield followed by the status line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	hints := m.help.ShortHelpView(m.keys.StatusHelp(m.gameState.GameOver))
	status := RenderStatus(m.config.ScreenW, m.game.Title(), m.gameState.Score, m.recorder.Best(), hints)

	return RenderScreen(m.screen) + "\n" + status
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for a game and blocks until it exits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
