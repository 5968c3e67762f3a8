package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
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

func mustRecord(t *testing.T, store *Store, gameID string, run Run) int64 {
	t.Helper()
	id, err := store.RecordRun(gameID, run)
	if err != nil {
		t.Fatalf("RecordRun(%q, %+v) failed: %v", gameID, run, err)
	}
	return id
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenNestedPath(t *testing.T) {
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
	if _, err := store.RecordRun("spinball", Run{PlayerName: "kim", Score: 120, Round: 4, Balls: 5}); err != nil {
		t.Fatalf("RecordRun() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("spinball")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 120 {
		t.Errorf("Expected high score 120 after reopen, got %d", high)
	}
}

func TestStoreRecordRun(t *testing.T) {
	store := openTestStore(t)

	id := mustRecord(t, store, "spinball", Run{PlayerName: "  lee  ", Score: 340, Round: 7, Balls: 9})
	if id <= 0 {
		t.Errorf("Expected positive ID, got %d", id)
	}

	scores, err := store.TopScores("spinball", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("Expected 1 score, got %d", len(scores))
	}

	e := scores[0]
	if e.ID != id || e.GameID != "spinball" {
		t.Errorf("Unexpected identity: %+v", e)
	}
	if e.PlayerName != "lee" {
		t.Errorf("Expected trimmed name %q, got %q", "lee", e.PlayerName)
	}
	if e.Score != 340 || e.Round != 7 || e.Balls != 9 {
		t.Errorf("Unexpected run values: %+v", e)
	}
	if e.CreatedAt.IsZero() {
		t.Error("Expected created_at to be set")
	}
}

func TestStoreRecordRunRejectsEmptyName(t *testing.T) {
	store := openTestStore(t)

	for _, name := range []string{"", "   ", "\t"} {
		_, err := store.RecordRun("spinball", Run{PlayerName: name, Score: 10, Round: 1, Balls: 1})
		if !errors.Is(err, ErrEmptyName) {
			t.Errorf("RecordRun(name=%q) error = %v, want ErrEmptyName", name, err)
		}
	}

	n, err := store.GamesPlayed("spinball")
	if err != nil {
		t.Fatalf("GamesPlayed() failed: %v", err)
	}
	if n != 0 {
		t.Errorf("Expected no stored runs, got %d", n)
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"kim", "kim"},
		{"  park ", "park"},
		{"", ""},
		{strings.Repeat("a", 20), strings.Repeat("a", MaxNameLength)},
		{"가나다라마바사아자차카타파하가나다라", "가나다라마바사아자차카타파하가나"},
	}

	for _, tt := range tests {
		if got := NormalizeName(tt.in); got != tt.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStoreTopScoresOrdering(t *testing.T) {
	store := openTestStore(t)

	mustRecord(t, store, "spinball", Run{PlayerName: "a", Score: 100, Round: 3, Balls: 4})
	mustRecord(t, store, "spinball", Run{PlayerName: "b", Score: 200, Round: 5, Balls: 6})
	mustRecord(t, store, "spinball", Run{PlayerName: "c", Score: 100, Round: 6, Balls: 7})
	newer := mustRecord(t, store, "spinball", Run{PlayerName: "d", Score: 100, Round: 6, Balls: 2})
	mustRecord(t, store, "spinball_survival", Run{PlayerName: "e", Score: 900, Round: 9, Balls: 9})

	scores, err := store.TopScores("spinball", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 4 {
		t.Fatalf("Expected 4 scores, got %d", len(scores))
	}

	// Score first, then round, then newest.
	want := []string{"b", "d", "c", "a"}
	for i, name := range want {
		if scores[i].PlayerName != name {
			t.Errorf("scores[%d] = %q, want %q", i, scores[i].PlayerName, name)
		}
	}
	if scores[1].ID != newer {
		t.Errorf("Expected newest tied run first, got ID %d", scores[1].ID)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		mustRecord(t, store, "spinball", Run{PlayerName: "p", Score: (i + 1) * 100, Round: i + 1, Balls: 1})
	}

	scores, err := store.TopScores("spinball", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Non-positive limit falls back to ten.
	scores, err = store.TopScores("spinball", 0)
	if err != nil {
		t.Fatalf("TopScores(0) failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("Expected 5 scores with default limit, got %d", len(scores))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("spinball")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	mustRecord(t, store, "spinball", Run{PlayerName: "a", Score: 100, Round: 1, Balls: 1})
	mustRecord(t, store, "spinball", Run{PlayerName: "b", Score: 300, Round: 2, Balls: 2})
	mustRecord(t, store, "spinball", Run{PlayerName: "c", Score: 200, Round: 3, Balls: 3})

	high, err = store.HighScore("spinball")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStorePlayerBest(t *testing.T) {
	store := openTestStore(t)

	best, err := store.PlayerBest("spinball", "nobody")
	if err != nil {
		t.Fatalf("PlayerBest() failed: %v", err)
	}
	if best != nil {
		t.Errorf("Expected nil for unknown player, got %+v", best)
	}

	mustRecord(t, store, "spinball", Run{PlayerName: "kim", Score: 150, Round: 4, Balls: 5})
	mustRecord(t, store, "spinball", Run{PlayerName: "kim", Score: 250, Round: 6, Balls: 8})
	mustRecord(t, store, "spinball", Run{PlayerName: "lee", Score: 900, Round: 12, Balls: 14})

	best, err = store.PlayerBest("spinball", " kim ")
	if err != nil {
		t.Fatalf("PlayerBest() failed: %v", err)
	}
	if best == nil {
		t.Fatal("Expected a best run for kim")
	}
	if best.Score != 250 || best.Round != 6 {
		t.Errorf("Expected kim's best 250/6, got %d/%d", best.Score, best.Round)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats("spinball")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 0 || stats.HighScore != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	mustRecord(t, store, "spinball", Run{PlayerName: "kim", Score: 100, Round: 3, Balls: 4})
	mustRecord(t, store, "spinball", Run{PlayerName: "kim", Score: 200, Round: 8, Balls: 9})
	mustRecord(t, store, "spinball", Run{PlayerName: "lee", Score: 300, Round: 5, Balls: 6})

	stats, err = store.Stats("spinball")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 3 {
		t.Errorf("GamesCount = %d, want 3", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, want 300", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, want 200", stats.AvgScore)
	}
	if stats.HighestRound != 8 {
		t.Errorf("HighestRound = %d, want 8", stats.HighestRound)
	}
	if stats.UniquePlayers != 2 {
		t.Errorf("UniquePlayers = %d, want 2", stats.UniquePlayers)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("Expected LastPlayed to be set")
	}

	n, err := store.GamesPlayed("spinball")
	if err != nil {
		t.Fatalf("GamesPlayed() failed: %v", err)
	}
	if n != 3 {
		t.Errorf("GamesPlayed() = %d, want 3", n)
	}
}

func TestStoreAllStats(t *testing.T) {
	store := openTestStore(t)

	mustRecord(t, store, "spinball", Run{PlayerName: "a", Score: 10, Round: 1, Balls: 1})
	mustRecord(t, store, "spinball_survival", Run{PlayerName: "b", Score: 40, Round: 2, Balls: 3})
	mustRecord(t, store, "spinball_survival", Run{PlayerName: "b", Score: 60, Round: 4, Balls: 5})

	all, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 games, got %d", len(all))
	}

	surv := all["spinball_survival"]
	if surv == nil {
		t.Fatal("Missing survival stats")
	}
	if surv.GamesCount != 2 || surv.HighScore != 60 || surv.AvgScore != 50 || surv.UniquePlayers != 1 {
		t.Errorf("Unexpected survival stats: %+v", surv)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	mustRecord(t, store, "spinball", Run{PlayerName: "a", Score: 100, Round: 1, Balls: 1})
	mustRecord(t, store, "spinball", Run{PlayerName: "b", Score: 200, Round: 2, Balls: 2})
	mustRecord(t, store, "spinball_survival", Run{PlayerName: "c", Score: 300, Round: 3, Balls: 3})

	if err := store.ClearScores("spinball"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	classic, _ := store.TopScores("spinball", 10)
	if len(classic) != 0 {
		t.Errorf("Expected 0 classic scores after clear, got %d", len(classic))
	}

	survival, _ := store.TopScores("spinball_survival", 10)
	if len(survival) != 1 {
		t.Errorf("Survival scores should not be affected by clearing classic")
	}

	if err := store.ClearAll(); err != nil {
		t.Fatalf("ClearAll() failed: %v", err)
	}
	survival, _ = store.TopScores("spinball_survival", 10)
	if len(survival) != 0 {
		t.Errorf("Expected no scores after ClearAll, got %d", len(survival))
	}
}
