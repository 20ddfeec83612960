// Package cellterm runs a game directly on a tcell screen. It is an
// alternative to the Bubble Tea frontend that draws cell by cell instead of
// re-rendering strings.
package cellterm

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/H4wk507/terminal-flappy-bird/internal/core"
	"github.com/H4wk507/terminal-flappy-bird/internal/platform/recorder"
	"github.com/H4wk507/terminal-flappy-bird/internal/platform/tui"
	"github.com/H4wk507/terminal-flappy-bird/internal/registry"
)

var colors = map[core.Color]tcell.Color{
	core.ColorRed:          tcell.ColorRed,
	core.ColorGreen:        tcell.ColorGreen,
	core.ColorYellow:       tcell.ColorOlive,
	core.ColorCyan:         tcell.ColorTeal,
	core.ColorWhite:        tcell.ColorSilver,
	core.ColorBrightGreen:  tcell.ColorLime,
	core.ColorBrightYellow: tcell.ColorYellow,
	core.ColorGray:         tcell.ColorGray,
}

var (
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	titleStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// keyName adapts a tcell key event to the Bubble Tea key names the shared
// key map matches on.
type keyName string

func (k keyName) String() string { return string(k) }

func nameOf(ev *tcell.EventKey) keyName {
	switch ev.Key() {
	case tcell.KeyRune:
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			return keyName("ctrl+" + string(unicode.ToLower(ev.Rune())))
		}
		return keyName(string(ev.Rune()))
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyCtrlC:
		return "ctrl+c"
	case tcell.KeyCtrlS:
		return "ctrl+s"
	}
	return ""
}

// Runner owns the loop for one game on one tcell screen.
type Runner struct {
	screen   tcell.Screen
	game     registry.Game
	keys     tui.GameKeyMap
	recorder *recorder.Recorder
	logger   *log.Logger
	config   core.RuntimeConfig
	field    *core.Screen
	frame    core.InputFrame
	state    core.GameState
	shotDir  string
}

// New prepares a runner on an initialized screen. The screen size overrides
// the size in cfg.
func New(screen tcell.Screen, game registry.Game, cfg core.RuntimeConfig, opts tui.Options) *Runner {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.ScreenW, cfg.ScreenH = screen.Size()

	logger := opts.Log()
	return &Runner{
		screen:   screen,
		game:     game,
		keys:     tui.NewGameKeyMap(game.QuitKeys()),
		recorder: recorder.New(game.ID(), opts.ScoreStore(), opts.Sound, logger),
		logger:   logger,
		config:   cfg,
		field:    core.NewScreen(cfg.ScreenW, cfg.FieldHeight()),
		frame:    core.NewInputFrame(),
		shotDir:  opts.ScreenshotDir,
	}
}

// Run plays until the game exits or ctx is cancelled.
// One goroutine pumps PollEvent; ticks and input are handled on the caller's.
func (r *Runner) Run(ctx context.Context) error {
	r.game.Reset(r.config)
	r.state = r.game.State()
	r.logger.Debug("game started", "variant", r.game.ID(), "backend", "tcell", "seed", r.config.Seed)
	r.draw()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(r.config.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			r.handleEvent(ev)

		case <-ticker.C:
			result := r.game.Step(r.frame)
			r.state = result.State
			r.recorder.Observe(result)
			r.frame.Clear()

			if r.state.Exited {
				return nil
			}
			r.draw()
		}
	}
}

// State returns the last observed game state.
func (r *Runner) State() core.GameState {
	return r.state
}

func (r *Runner) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		name := nameOf(ev)
		if name == "ctrl+s" {
			r.screenshot()
			return
		}
		if action := r.keys.Action(name); action != core.ActionNone {
			r.frame.Set(action)
		}

	case *tcell.EventResize:
		w, h := r.screen.Size()
		if w == r.config.ScreenW && h == r.config.ScreenH {
			return
		}
		r.recorder.EndSession(r.state.Score)
		r.config.ScreenW, r.config.ScreenH = w, h
		r.field.Resize(w, r.config.FieldHeight())
		r.game.Reset(r.config)
		r.state = r.game.State()
		r.logger.Debug("resized", "width", w, "height", h, "too_small", r.state.TooSmall)
		r.screen.Sync()
		r.draw()
	}
}

func (r *Runner) screenshot() {
	r.game.Render(r.field)
	path, err := tui.SaveScreenshot(r.shotDir, r.game.ID(), r.field)
	if err != nil {
		r.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	r.logger.Info("screenshot saved", "path", path)
}

// draw paints the playfield and the status line, then shows the frame.
func (r *Runner) draw() {
	r.game.Render(r.field)
	r.screen.Clear()

	for y := 0; y < r.field.Height(); y++ {
		for x := 0; x < r.field.Width(); x++ {
			cell := r.field.GetCell(x, y)
			style := tcell.StyleDefault
			if c, ok := colors[cell.Color]; ok {
				style = style.Foreground(c)
			}
			r.screen.SetContent(x, y, cell.Rune, nil, style)
		}
	}

	r.drawStatus(r.config.FieldHeight())
	r.screen.Show()
}

func (r *Runner) drawStatus(row int) {
	x := drawText(r.screen, 0, row, r.game.Title(), titleStyle)
	x = drawText(r.screen, x, row, fmt.Sprintf("  Score %d  Best %d  ", r.state.Score, r.recorder.Best()), statusStyle)
	drawText(r.screen, x, row, hints(r.keys.StatusHelp(r.state.GameOver)), statusStyle)
}

// hints formats bindings the way the bubbles help view does.
func hints(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}

// drawText writes text from (x, y) and returns the column after it.
func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) int {
	for _, ch := range text {
		s.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}

// RunTerminal opens the real terminal, plays the game and restores the terminal.
func RunTerminal(ctx context.Context, game registry.Game, cfg core.RuntimeConfig, opts tui.Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("cellterm: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("cellterm: %w", err)
	}
	defer screen.Fini()

	screen.HideCursor()
	return New(screen, game, cfg, opts).Run(ctx)
}
