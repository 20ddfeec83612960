package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/H4wk507/terminal-flappy-bird/internal/config"
	"github.com/H4wk507/terminal-flappy-bird/internal/core"
	"github.com/H4wk507/terminal-flappy-bird/internal/games/flappy"
	"github.com/H4wk507/terminal-flappy-bird/internal/storage"
)

func newTestModel(t *testing.T, v flappy.Variant) Model {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.Seed = 42

	m := NewModel(flappy.New(v, config.DefaultFlappyConfig()), cfg, Options{ScreenshotDir: t.TempDir()})
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return model, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelFlapMovesBirdUp(t *testing.T) {
	m := newTestModel(t, flappy.Full)
	g := m.game.(*flappy.Game)
	startY := g.Snapshot().BirdY

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m, cmd := update(t, m, TickMsg{})
	if cmd == nil || isQuit(cmd) {
		t.Fatal("a running tick should schedule the next tick")
	}

	if y := g.Snapshot().BirdY; y >= startY {
		t.Errorf("bird at %v after a flap, expected above %v", y, startY)
	}

	// The frame is cleared after each tick
	before := g.Snapshot().BirdVY
	update(t, m, TickMsg{})
	if g.Snapshot().BirdVY >= before {
		t.Error("second tick should not repeat the flap")
	}
}

func TestModelQuitKeyEndsProgram(t *testing.T) {
	m := newTestModel(t, flappy.Classic)

	// q is not bound in the classic version
	m, _ = update(t, m, runeKey('q'))
	m, cmd := update(t, m, TickMsg{})
	if isQuit(cmd) {
		t.Fatal("q should not quit the classic version")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, cmd = update(t, m, TickMsg{})
	if !isQuit(cmd) {
		t.Fatal("esc should quit the classic version")
	}
	if !m.State().Exited {
		t.Error("State().Exited should be set")
	}
	if m.View() != "" {
		t.Error("View() should be empty while quitting")
	}
}

func TestModelViewHasStatusLine(t *testing.T) {
	m := newTestModel(t, flappy.Full)
	m, _ = update(t, m, TickMsg{})

	lines := strings.Split(m.View(), "\n")
	if len(lines) != 24 {
		t.Fatalf("View() has %d lines, expected 24", len(lines))
	}
	status := lines[23]
	for _, want := range []string{"Flappy Bird", "Score 0", "Best 0", "flap"} {
		if !strings.Contains(status, want) {
			t.Errorf("status line %q missing %q", status, want)
		}
	}
}

func TestModelResizeTooSmall(t *testing.T) {
	m := newTestModel(t, flappy.Full)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 6})
	if !m.State().TooSmall {
		t.Fatal("State().TooSmall should be set after shrinking")
	}
	if !strings.Contains(m.View(), "TERMINAL TOO SMALL") {
		t.Error("View() should show the size notice")
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	if m.State().TooSmall {
		t.Error("growing the terminal should restore the playfield")
	}
}

func TestModelScreenshot(t *testing.T) {
	m := newTestModel(t, flappy.Full)
	update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	files, err := filepath.Glob(filepath.Join(m.screenshotDir, "flappy_*.txt"))
	if err != nil || len(files) != 1 {
		t.Fatalf("expected one screenshot, got %v (%v)", files, err)
	}
	data, err := os.ReadFile(files[0])
	if err != nil {
		t.Fatalf("cannot read screenshot: %v", err)
	}
	if !strings.Contains(string(data), "o)>") {
		t.Error("screenshot should contain the bird")
	}
}

func TestModelSavesScoreOnQuit(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	cfg := core.DefaultConfig()
	cfg.Seed = 42
	m := NewModel(flappy.New(flappy.Full, config.DefaultFlappyConfig()), cfg, Options{Store: store})
	m.Init()

	// Nothing scored, nothing saved
	m, _ = update(t, m, runeKey('q'))
	update(t, m, TickMsg{})

	scores, err := store.TopScores("flappy", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("zero score run should not be saved, got %v", scores)
	}
}

func TestMenuModel(t *testing.T) {
	cfg := core.DefaultConfig()
	m := NewMenuModel(nil, cfg, "flappy-v2")

	if len(m.items) != len(flappy.Variants()) {
		t.Fatalf("menu lists %d items, expected %d", len(m.items), len(flappy.Variants()))
	}
	if m.items[m.cursor].GameID != "flappy-v2" {
		t.Errorf("cursor on %q, expected flappy-v2", m.items[m.cursor].GameID)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	next, cmd := next.(MenuModel).Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !isQuit(cmd) {
		t.Fatal("select should leave the menu")
	}

	result := next.(MenuModel).Result()
	if result.Quit || result.GameID != "flappy-v1" {
		t.Errorf("Result() = %+v, expected flappy-v1", result)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !next.(MenuModel).Result().WantsScoreboard {
		t.Error("tab should open the scoreboard")
	}
}

func TestScoreboardCyclesVariants(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	store.SaveScore("flappy", 3)

	m := NewScoreboardModel(store, 100, 30)
	first := m.Variant()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	sb := next.(ScoreboardModel)
	if sb.Variant() == first {
		t.Error("tab should move to another variant")
	}

	next, _ = sb.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if next.(ScoreboardModel).Variant() != first {
		t.Error("shift+tab should move back")
	}

	// registry.List is sorted, so "flappy" is first
	if first != "flappy" || !strings.Contains(m.View(), "1 runs") {
		t.Errorf("first variant %q view:\n%s", first, m.View())
	}
}
