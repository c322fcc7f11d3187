package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func mustSave(t *testing.T, s *Store, gameID string, score, round int) {
	t.Helper()
	if _, err := s.SaveScore(gameID, score, round); err != nil {
		t.Fatalf("SaveScore(%s, %d, %d) failed: %v", gameID, score, round, err)
	}
}

func TestStoreOpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "sub", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := newTestStore(t)

	mustSave(t, store, "chomp", 100, 1)
	mustSave(t, store, "chomp", 50, 1)
	mustSave(t, store, "chomp", 200, 3)
	mustSave(t, store, "chomp-ssh", 500, 2)

	scores, err := store.TopScores("chomp", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("expected 3 scores, got %d", len(scores))
	}

	want := []struct{ score, round int }{{200, 3}, {100, 1}, {50, 1}}
	for i, w := range want {
		if scores[i].Score != w.score {
			t.Errorf("rank %d: expected score %d, got %d", i+1, w.score, scores[i].Score)
		}
		if scores[i].Round != w.round {
			t.Errorf("rank %d: expected round %d, got %d", i+1, w.round, scores[i].Round)
		}
	}

	sshScores, err := store.TopScores("chomp-ssh", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(sshScores) != 1 {
		t.Errorf("expected 1 chomp-ssh score, got %d", len(sshScores))
	}
}

func TestStoreRoundFloor(t *testing.T) {
	store := newTestStore(t)

	// Rounds below 1 are clamped at insert time.
	mustSave(t, store, "chomp", 10, 0)

	scores, err := store.TopScores("chomp", 1)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Round != 1 {
		t.Errorf("expected round clamped to 1, got %+v", scores)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := newTestStore(t)

	for i := 0; i < 5; i++ {
		mustSave(t, store, "test", (i+1)*100, 1)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := newTestStore(t)

	high, err := store.HighScore("chomp")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("expected high score 0 for unplayed game, got %d", high)
	}

	mustSave(t, store, "chomp", 100, 1)
	mustSave(t, store, "chomp", 300, 4)
	mustSave(t, store, "chomp", 200, 2)

	high, err = store.HighScore("chomp")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("expected high score 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := newTestStore(t)

	mustSave(t, store, "chomp", 100, 1)
	mustSave(t, store, "chomp", 200, 2)
	mustSave(t, store, "chomp-ssh", 300, 1)

	if err := store.ClearScores("chomp"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	chompScores, _ := store.TopScores("chomp", 10)
	if len(chompScores) != 0 {
		t.Errorf("expected 0 chomp scores after clear, got %d", len(chompScores))
	}

	sshScores, _ := store.TopScores("chomp-ssh", 10)
	if len(sshScores) != 1 {
		t.Errorf("clearing chomp must not touch other game ids")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := newTestStore(t)

	for i := 0; i < 20; i++ {
		mustSave(t, store, "test", i*10, 1+i/5)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("expected 20 scores, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := newTestStore(t)

	mustSave(t, store, "chomp", 100, 2)
	mustSave(t, store, "chomp", 300, 5)
	mustSave(t, store, "chomp", 200, 3)

	stats, err := store.GetGameStats("chomp")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 {
		t.Errorf("expected 3 games, got %d", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("expected high score 300, got %d", stats.HighScore)
	}
	if stats.BestRound != 5 {
		t.Errorf("expected best round 5, got %d", stats.BestRound)
	}
	if stats.TotalScore != 600 {
		t.Errorf("expected total 600, got %d", stats.TotalScore)
	}

	empty, err := store.GetGameStats("nothing")
	if err != nil {
		t.Fatalf("GetGameStats() for unplayed game failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.HighScore != 0 || empty.BestRound != 0 {
		t.Errorf("expected zero stats for unplayed game, got %+v", empty)
	}
}
