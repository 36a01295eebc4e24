package storage

import (
	"os"
	"path/filepath"
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

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore("crossing", 12); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Credit("crossing", 12, "run"); err != nil {
		t.Fatal(err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	if high, _ := store.HighScore("crossing"); high != 12 {
		t.Errorf("high score = %d after reopen, expected 12", high)
	}
	if bal, _ := store.Balance(); bal != 12 {
		t.Errorf("balance = %d after reopen, expected 12 (migration must not reset it)", bal)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 50, 200} {
		if _, err := store.SaveScore("crossing", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("crossing_classic", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("crossing", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	for i, want := range []int{200, 100, 50} {
		if scores[i].Score != want {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, want)
		}
		if scores[i].GameID != "crossing" {
			t.Errorf("scores[%d] belongs to %q", i, scores[i].GameID)
		}
	}

	top, err := store.TopScores("crossing", 2)
	if err != nil || len(top) != 2 {
		t.Errorf("TopScores(limit 2) = %d entries, %v", len(top), err)
	}
}

func TestHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("crossing")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("empty high score = %d, expected 0", high)
	}

	store.SaveScore("crossing", 7)
	store.SaveScore("crossing", 3)
	if high, _ := store.HighScore("crossing"); high != 7 {
		t.Errorf("high score = %d, expected 7", high)
	}
}

func TestClearScores(t *testing.T) {
	store := openTestStore(t)
	store.SaveScore("crossing", 5)
	store.SaveScore("crossing_classic", 9)

	if err := store.ClearScores("crossing"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if scores, _ := store.TopScores("crossing", 10); len(scores) != 0 {
		t.Errorf("expected no scores after clear, got %d", len(scores))
	}
	if high, _ := store.HighScore("crossing_classic"); high != 9 {
		t.Error("clearing one game touched another")
	}
}

func TestGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("crossing")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", stats)
	}

	store.SaveScore("crossing", 4)
	store.SaveScore("crossing", 8)
	stats, err = store.GetGameStats("crossing")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 8 || stats.TotalScore != 12 || stats.AvgScore != 6 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestWalletCredit(t *testing.T) {
	store := openTestStore(t)

	if bal, err := store.Balance(); err != nil || bal != 0 {
		t.Fatalf("initial balance = %d, %v", bal, err)
	}

	bal, err := store.Credit("crossing", 5, "run")
	if err != nil || bal != 5 {
		t.Fatalf("Credit() = %d, %v, expected 5", bal, err)
	}
	bal, err = store.Credit("crossing", 0, "run")
	if err != nil || bal != 5 {
		t.Fatalf("zero credit = %d, %v, expected 5", bal, err)
	}
	bal, err = store.Credit("crossing_classic", 3, "bonus")
	if err != nil || bal != 8 {
		t.Fatalf("Credit() = %d, %v, expected 8", bal, err)
	}

	if _, err := store.Credit("crossing", -1, "cheat"); err == nil {
		t.Error("negative credit should fail")
	}
	if bal, _ := store.Balance(); bal != 8 {
		t.Errorf("balance = %d after rejected credit, expected 8", bal)
	}

	ledger, err := store.Ledger(10)
	if err != nil {
		t.Fatalf("Ledger() failed: %v", err)
	}
	if len(ledger) != 3 {
		t.Fatalf("ledger has %d rows, expected 3", len(ledger))
	}
	if ledger[0].Amount != 3 || ledger[0].GameID != "crossing_classic" || ledger[0].Reason != "bonus" {
		t.Errorf("newest ledger row = %+v", ledger[0])
	}
	sum := 0
	for _, e := range ledger {
		sum += e.Amount
	}
	if sum != 8 {
		t.Errorf("ledger sums to %d, balance is 8", sum)
	}
}
