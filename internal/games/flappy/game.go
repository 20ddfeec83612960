// Package flappy implements a Flappy Bird-style game.
// The player controls a bird that must navigate through gaps in vertical pipes.
package flappy

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/H4wk507/terminal-flappy-bird/internal/config"
	"github.com/H4wk507/terminal-flappy-bird/internal/core"
)

// Game adapts a Session to the registry.Game interface. It owns the RNG
// shared by consecutive sessions, pause state and the end prompt.
type Game struct {
	variant Variant
	cfg     config.FlappyConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand
	session *Session
	sizeErr error // Set when the screen cannot fit a playfield
	paused  bool
	exited  bool
}

// New creates a game for the given variant and tuning.
func New(v Variant, cfg config.FlappyConfig) *Game {
	return &Game{
		variant: v,
		cfg:     cfg,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.variant.Title
}

// QuitKeys returns the keys that end this variant.
func (g *Game) QuitKeys() []string {
	return g.variant.QuitKeys
}

// Reset initializes or restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.paused = false
	g.exited = false
	g.startSession()
}

// startSession builds a fresh session from the shared RNG.
func (g *Game) startSession() {
	geom := Geometry{Width: g.runtime.ScreenW, Height: g.runtime.FieldHeight()}
	s, err := NewSession(g.cfg, g.variant.Rules, geom, g.rng)
	g.session = s
	g.sizeErr = err
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil {
		if in.Has(core.ActionQuit) {
			g.exited = true
		}
		return core.StepResult{State: g.State()}
	}

	var events []core.Event

	switch g.session.Status() {
	case StatusRunning:
		if in.Has(core.ActionQuit) {
			g.session.Exit()
			break
		}
		if in.Has(core.ActionPause) {
			g.paused = !g.paused
		}
		if !g.paused {
			events = g.session.Tick(in.Has(core.ActionJump))
		}

	case StatusDead:
		switch {
		case in.Has(core.ActionQuit):
			g.session.Exit()
		case in.Has(core.ActionConfirm):
			if g.session.PlayAgain() {
				g.startSession()
				events = append(events, core.EventRestart)
			}
		}
	}

	return core.StepResult{State: g.State(), Events: events}
}

// Render draws the current game state to the playfield screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.session == nil {
		minW, minH := g.cfg.MinScreen()
		g.drawCenteredMessage(dst, "TERMINAL TOO SMALL",
			fmt.Sprintf("Need at least %dx%d", minW, minH+1))
		return
	}

	ApplyDrawCommands(dst, g.session.DrawCommands())

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.session.Status() == StatusDead {
		quit := strings.ToUpper(strings.Join(g.variant.QuitKeys, "/"))
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Enter: play again  %s: exit", g.session.Score(), quit))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawTextColored(titleX, boxY+1, title, core.ColorBrightYellow)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Paused:   g.paused,
		Exited:   g.exited,
		TooSmall: g.session == nil,
	}
	if g.session != nil {
		st.Score = g.session.Score()
		st.GameOver = g.session.Status() == StatusDead
		st.Exited = st.Exited || g.session.Status() == StatusExit
	}
	return st
}

// SizeError returns why the last Reset could not build a playfield, if it failed.
func (g *Game) SizeError() error {
	return g.sizeErr
}
