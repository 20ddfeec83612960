package cellterm

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/H4wk507/terminal-flappy-bird/internal/config"
	"github.com/H4wk507/terminal-flappy-bird/internal/core"
	"github.com/H4wk507/terminal-flappy-bird/internal/games/flappy"
	"github.com/H4wk507/terminal-flappy-bird/internal/platform/tui"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func newRunner(t *testing.T, s tcell.Screen, v flappy.Variant) *Runner {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.Seed = 42
	cfg.TickInterval = 5 * time.Millisecond
	return New(s, flappy.New(v, config.DefaultFlappyConfig()), cfg, tui.Options{ScreenshotDir: t.TempDir()})
}

func row(s tcell.SimulationScreen, y int) string {
	cells, w, _ := s.GetContents()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		c := cells[y*w+x]
		if len(c.Runes) == 0 {
			sb.WriteRune(' ')
			continue
		}
		sb.WriteRune(c.Runes[0])
	}
	return sb.String()
}

func runWithTimeout(t *testing.T, r *Runner) error {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return r.Run(ctx)
}

func TestRunnerQuitKey(t *testing.T) {
	s := newSimScreen(t, 80, 24)
	r := newRunner(t, s, flappy.Full)

	s.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	if err := runWithTimeout(t, r); err != nil {
		t.Fatalf("Run() = %v, expected a clean exit", err)
	}
	if !r.State().Exited {
		t.Error("State().Exited should be set")
	}
}

func TestRunnerEndsOnCrashWithoutPrompt(t *testing.T) {
	s := newSimScreen(t, 80, 24)
	r := newRunner(t, s, flappy.Classic)

	// Without flapping the bird falls out of the field within a few ticks
	if err := runWithTimeout(t, r); err != nil {
		t.Fatalf("Run() = %v, expected the crash to end the run", err)
	}
	if r.State().GameOver {
		t.Error("classic version should not show the prompt")
	}
}

func TestRunnerDrawsFieldAndStatus(t *testing.T) {
	s := newSimScreen(t, 80, 24)
	r := newRunner(t, s, flappy.Full)
	r.game.Reset(r.config)
	r.draw()

	if got := row(s, 11); !strings.Contains(got, "o)>") {
		t.Errorf("row 11 = %q, expected the bird", got)
	}
	status := row(s, 23)
	for _, want := range []string{"Flappy Bird", "Score 0", "space flap", "q quit"} {
		if !strings.Contains(status, want) {
			t.Errorf("status line %q missing %q", status, want)
		}
	}
}

func TestRunnerCancel(t *testing.T) {
	s := newSimScreen(t, 80, 24)
	r := newRunner(t, s, flappy.Full)
	r.config.TickInterval = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := r.Run(ctx); err != context.Canceled {
		t.Errorf("Run() = %v, expected context.Canceled", err)
	}
}

func TestNameOf(t *testing.T) {
	tests := []struct {
		ev       *tcell.EventKey
		expected keyName
	}{
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), " "},
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), "q"},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), "enter"},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), "esc"},
		{tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), "ctrl+c"},
		{tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone), ""},
	}

	for _, tt := range tests {
		if got := nameOf(tt.ev); got != tt.expected {
			t.Errorf("nameOf(%s) = %q, expected %q", tt.ev.Name(), got, tt.expected)
		}
	}
}

func TestSharedKeyMap(t *testing.T) {
	km := tui.NewGameKeyMap(flappy.Classic.QuitKeys)

	if km.Action(keyName("esc")) != core.ActionQuit {
		t.Error("esc should quit the classic version")
	}
	if km.Action(keyName(" ")) != core.ActionJump {
		t.Error("space should flap")
	}
}
