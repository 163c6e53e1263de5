package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
	if store.Backend() != "sqlite" {
		t.Errorf("Backend() = %q, want sqlite", store.Backend())
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTemp(t)

	for _, s := range []struct {
		game, stage string
		score       int
	}{
		{"keiraku", "heart", 100},
		{"keiraku", "lung", 50},
		{"keiraku", "spleen", 200},
		{"keiraku_free", "kidney", 500},
	} {
		if _, err := store.SaveScore(s.game, s.stage, s.score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("keiraku", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not sorted descending: %v", scores)
	}
	if scores[0].Stage != "spleen" || scores[0].GameID != "keiraku" {
		t.Errorf("unexpected top entry: %+v", scores[0])
	}

	free, err := store.TopScores("keiraku_free", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(free) != 1 {
		t.Errorf("Expected 1 free play score, got %d", len(free))
	}
}

func TestStoreSaveReturnsIncreasingIDs(t *testing.T) {
	store := openTemp(t)

	a, err := store.SaveScore("keiraku", "heart", 1)
	if err != nil {
		t.Fatal(err)
	}
	b, err := store.SaveScore("keiraku", "heart", 2)
	if err != nil {
		t.Fatal(err)
	}
	if a <= 0 || b <= a {
		t.Errorf("ids = %d, %d, want positive and increasing", a, b)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTemp(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("keiraku", "heart", (i+1)*100)
	}

	scores, err := store.TopScores("keiraku", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTemp(t)

	high, err := store.HighScore("keiraku")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("keiraku", "heart", 100)
	store.SaveScore("keiraku", "lung", 300)
	store.SaveScore("keiraku", "heart", 200)

	high, err = store.HighScore("keiraku")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTemp(t)

	store.SaveScore("keiraku", "heart", 100)
	store.SaveScore("keiraku", "heart", 200)
	store.SaveScore("keiraku_free", "heart", 300)

	if err := store.ClearScores("keiraku"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	story, _ := store.TopScores("keiraku", 10)
	if len(story) != 0 {
		t.Errorf("Expected 0 story scores after clear, got %d", len(story))
	}
	free, _ := store.TopScores("keiraku_free", 10)
	if len(free) != 1 {
		t.Errorf("Free play scores should not be affected by clearing story scores")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTemp(t)

	for i := 0; i < 20; i++ {
		store.SaveScore("keiraku", "heart", i*10)
	}

	scores, err := store.AllScores("keiraku")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTemp(t)

	empty, err := store.GameStats("keiraku")
	if err != nil {
		t.Fatalf("GameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("unexpected stats for empty game: %+v", empty)
	}

	store.SaveScore("keiraku", "heart", 100)
	store.SaveScore("keiraku", "lung", 300)

	stats, err := store.GameStats("keiraku")
	if err != nil {
		t.Fatalf("GameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.TotalScore != 400 || stats.AvgScore != 200 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

func TestStoreNestedPath(t *testing.T) {
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
