package flappy

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/H4wk507/terminal-flappy-bird/internal/config"
	"github.com/H4wk507/terminal-flappy-bird/internal/core"
	"github.com/H4wk507/terminal-flappy-bird/internal/registry"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		TickInterval: core.DefaultTickInterval,
		Seed:         seed,
	}
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// stepUntil feeds empty frames until done reports true or the limit is hit.
func stepUntil(t *testing.T, g *Game, limit int, done func(core.StepResult) bool) core.StepResult {
	t.Helper()
	for i := 0; i < limit; i++ {
		result := g.Step(frame())
		if done(result) {
			return result
		}
	}
	t.Fatalf("condition not reached within %d ticks", limit)
	return core.StepResult{}
}

func TestGameDeterminism(t *testing.T) {
	// Test that given the same seed and inputs, the game produces identical results
	cfg := config.DefaultFlappyConfig()
	rc := testRuntime(12345)

	g1 := New(Full, cfg)
	g2 := New(Full, cfg)
	g1.Reset(rc)
	g2.Reset(rc)

	for i := 0; i < 300; i++ {
		in := frame()
		if i%4 == 0 {
			in.Set(core.ActionJump)
		}
		g1.Step(in)
		g2.Step(in)

		if !reflect.DeepEqual(g1.Snapshot(), g2.Snapshot()) {
			t.Fatalf("tick %d: snapshots differ\n%+v\n%+v", i, g1.Snapshot(), g2.Snapshot())
		}
	}
}

func TestGameSeedChangesObstacles(t *testing.T) {
	cfg := config.DefaultFlappyConfig()

	g1 := New(Full, cfg)
	g2 := New(Full, cfg)
	g1.Reset(testRuntime(1))
	g2.Reset(testRuntime(2))

	if reflect.DeepEqual(g1.Snapshot().Obstacles, g2.Snapshot().Obstacles) {
		t.Error("different seeds should produce different obstacle spans")
	}
}

func TestGameCrashAndPlayAgain(t *testing.T) {
	g := New(Full, config.DefaultFlappyConfig())
	g.Reset(testRuntime(42))

	result := stepUntil(t, g, 100, func(r core.StepResult) bool { return r.State.GameOver })
	if !result.Has(core.EventCrash) {
		t.Errorf("game over tick should carry a crash event, got %v", result.Events)
	}
	if result.State.Exited {
		t.Error("the prompt variant should not exit on crash")
	}

	// Jumping at the prompt does nothing
	g.Step(frame(core.ActionJump))
	if !g.State().GameOver {
		t.Fatal("jump should not dismiss the prompt")
	}

	result = g.Step(frame(core.ActionConfirm))
	if !result.Has(core.EventRestart) {
		t.Errorf("confirm should restart, events %v", result.Events)
	}
	if result.State.GameOver || result.State.Score != 0 {
		t.Errorf("fresh session state = %+v", result.State)
	}
	if snap := g.Snapshot(); snap.Tick != 0 || snap.Status != StatusRunning || snap.BirdVY != 0 {
		t.Errorf("fresh session snapshot = %+v", snap)
	}

	stepUntil(t, g, 100, func(r core.StepResult) bool { return r.State.GameOver })
	result = g.Step(frame(core.ActionQuit))
	if !result.State.Exited {
		t.Error("quit at the prompt should exit")
	}
}

func TestGameCrashWithoutPrompt(t *testing.T) {
	for _, v := range []Variant{Classic, Pipes} {
		t.Run(v.ID, func(t *testing.T) {
			g := New(v, config.DefaultFlappyConfig())
			g.Reset(testRuntime(42))

			result := stepUntil(t, g, 100, func(r core.StepResult) bool { return r.State.Exited })
			if !result.Has(core.EventCrash) {
				t.Errorf("exit tick should carry a crash event, got %v", result.Events)
			}
			if result.State.GameOver {
				t.Error("variants without a prompt should not show game over")
			}
		})
	}
}

func TestGameQuitWhileRunning(t *testing.T) {
	g := New(Full, config.DefaultFlappyConfig())
	g.Reset(testRuntime(42))

	result := g.Step(frame(core.ActionQuit, core.ActionJump))
	if !result.State.Exited {
		t.Error("quit should exit immediately")
	}
	if len(result.Events) != 0 {
		t.Errorf("quit tick should not simulate, events %v", result.Events)
	}
}

func TestGamePause(t *testing.T) {
	g := New(Full, config.DefaultFlappyConfig())
	g.Reset(testRuntime(42))

	g.Step(frame())
	before := g.Snapshot()

	result := g.Step(frame(core.ActionPause))
	if !result.State.Paused {
		t.Fatal("game should be paused")
	}
	for i := 0; i < 5; i++ {
		g.Step(frame(core.ActionJump))
	}

	after := g.Snapshot()
	after.Paused = false
	if !reflect.DeepEqual(before, after) {
		t.Errorf("paused game changed\nbefore %+v\nafter  %+v", before, after)
	}

	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Error("second pause should resume")
	}
	if g.Snapshot().Tick != before.Tick+1 {
		t.Errorf("resume tick should simulate, tick %d", g.Snapshot().Tick)
	}
}

func TestGameScreenTooSmall(t *testing.T) {
	g := New(Full, config.DefaultFlappyConfig())
	rc := testRuntime(42)
	rc.ScreenH = 6
	g.Reset(rc)

	if !g.State().TooSmall {
		t.Fatal("State().TooSmall should be set")
	}
	if !errors.Is(g.SizeError(), config.ErrScreenTooSmall) {
		t.Errorf("SizeError() = %v, expected ErrScreenTooSmall", g.SizeError())
	}

	screen := core.NewScreen(rc.ScreenW, rc.FieldHeight())
	g.Render(screen)
	if !strings.Contains(screen.String(), "TERMINAL TOO SMALL") {
		t.Errorf("render should explain the problem:\n%s", screen.String())
	}

	if result := g.Step(frame(core.ActionQuit)); !result.State.Exited {
		t.Error("quit should still work without a playfield")
	}

	// Growing the terminal recovers
	g.Reset(testRuntime(42))
	if g.State().TooSmall || g.SizeError() != nil {
		t.Errorf("Reset() at 80x24 should succeed, state %+v", g.State())
	}
}

func TestGameRender(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	rc := testRuntime(42)
	g := New(Full, cfg)
	g.Reset(rc)

	screen := core.NewScreen(rc.ScreenW, rc.FieldHeight())
	g.Render(screen)
	if !strings.Contains(screen.Row(11), cfg.Bird.Glyph) {
		t.Errorf("row 11 should contain the bird: %q", screen.Row(11))
	}
	if !strings.ContainsRune(screen.Row(0), PipeChar) {
		t.Errorf("row 0 should contain pipe tops: %q", screen.Row(0))
	}

	g.Step(frame(core.ActionPause))
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused render should show PAUSED")
	}
	g.Step(frame(core.ActionPause))

	stepUntil(t, g, 100, func(r core.StepResult) bool { return r.State.GameOver })
	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "GAME OVER") || !strings.Contains(out, "Q: exit") {
		t.Errorf("dead render should show the prompt:\n%s", out)
	}
}

func TestVariantsRegistered(t *testing.T) {
	tests := []struct {
		id    string
		title string
		quit  string
	}{
		{"flappy-v1", "Flappy Bird (classic)", "esc"},
		{"flappy-v2", "Flappy Bird (pipes)", "esc"},
		{"flappy", "Flappy Bird", "q"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			g, err := registry.Create(tt.id, config.DefaultFlappyConfig())
			if err != nil {
				t.Fatalf("Create(%q) failed: %v", tt.id, err)
			}
			if g.ID() != tt.id || g.Title() != tt.title {
				t.Errorf("got %q / %q", g.ID(), g.Title())
			}
			if keys := g.QuitKeys(); len(keys) != 1 || keys[0] != tt.quit {
				t.Errorf("QuitKeys() = %v, expected [%s]", keys, tt.quit)
			}
		})
	}
}
