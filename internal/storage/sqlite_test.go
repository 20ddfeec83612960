package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore("flappy", 7); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("flappy")
	if err != nil || high != 7 {
		t.Errorf("HighScore() = %d, %v after reopen, expected 7", high, err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{10, 5, 20} {
		if _, err := store.SaveScore("flappy", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("flappy-v2", 50); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("flappy", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	expected := []int{20, 10, 5}
	for i, e := range scores {
		if e.Score != expected[i] || e.Variant != "flappy" {
			t.Errorf("scores[%d] = %+v, expected score %d", i, e, expected[i])
		}
		if e.CreatedAt.IsZero() {
			t.Errorf("scores[%d] has no timestamp", i)
		}
	}

	other, err := store.TopScores("flappy-v2", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("Expected 1 flappy-v2 score, got %d", len(other))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("flappy", i+1)
	}

	tests := []struct {
		limit    int
		expected int
	}{
		{3, 3},
		{10, 5},
		{0, 5},
		{-1, 5},
	}

	for _, tt := range tests {
		scores, err := store.TopScores("flappy", tt.limit)
		if err != nil {
			t.Fatalf("TopScores(%d) failed: %v", tt.limit, err)
		}
		if len(scores) != tt.expected {
			t.Errorf("TopScores(%d) returned %d rows, expected %d", tt.limit, len(scores), tt.expected)
		}
		if len(scores) > 0 && scores[0].Score != 5 {
			t.Errorf("TopScores(%d) best = %d, expected 5", tt.limit, scores[0].Score)
		}
	}
}

func TestStoreTopScoresTiesKeepOrder(t *testing.T) {
	store := openTestStore(t)

	first, _ := store.SaveScore("flappy", 3)
	second, _ := store.SaveScore("flappy", 3)

	scores, err := store.TopScores("flappy", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 || scores[0].ID != first || scores[1].ID != second {
		t.Errorf("tied scores out of insertion order: %+v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("flappy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for an unplayed variant, got %d", high)
	}

	store.SaveScore("flappy", 1)
	store.SaveScore("flappy", 3)
	store.SaveScore("flappy", 2)

	high, err = store.HighScore("flappy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 3 {
		t.Errorf("Expected high score of 3, got %d", high)
	}
}

func TestStoreRejectsNegativeScore(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveScore("flappy", -1)
	if !errors.Is(err, ErrNegativeScore) {
		t.Errorf("SaveScore(-1) error = %v, expected ErrNegativeScore", err)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("flappy", 1)
	store.SaveScore("flappy", 2)
	store.SaveScore("flappy-v2", 3)

	n, err := store.ClearScores("flappy")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if n != 2 {
		t.Errorf("ClearScores() removed %d rows, expected 2", n)
	}

	scores, _ := store.TopScores("flappy", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 flappy scores after clear, got %d", len(scores))
	}

	other, _ := store.TopScores("flappy-v2", 10)
	if len(other) != 1 {
		t.Errorf("flappy-v2 scores should not be affected by clearing flappy")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("flappy")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Runs != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Stats() for an unplayed variant = %+v", empty)
	}

	store.SaveScore("flappy", 2)
	store.SaveScore("flappy", 4)

	stats, err := store.Stats("flappy")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.HighScore != 4 || stats.AvgScore != 3 {
		t.Errorf("Stats() = %+v, expected 2 runs, best 4, average 3", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("Stats() should report when the variant was last played")
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := ExpandPath("~/.flappy/scores.db")
	if err != nil {
		t.Fatalf("ExpandPath() failed: %v", err)
	}
	if !strings.HasPrefix(got, home) || !strings.HasSuffix(got, filepath.Join(".flappy", "scores.db")) {
		t.Errorf("ExpandPath() = %q", got)
	}

	if got, _ := ExpandPath("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("absolute paths should be unchanged, got %q", got)
	}
}

func TestParseTimestamp(t *testing.T) {
	ts := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		in       any
		expected time.Time
	}{
		{"time value", ts, ts},
		{"sqlite layout", "2024-05-01 12:30:00", ts},
		{"rfc3339", "2024-05-01T12:30:00Z", ts},
		{"null", nil, time.Time{}},
		{"garbage", "yesterday", time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseTimestamp(tt.in); !got.Equal(tt.expected) {
				t.Errorf("parseTimestamp(%v) = %v, expected %v", tt.in, got, tt.expected)
			}
		})
	}
}
