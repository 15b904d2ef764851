package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

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

func TestStoreOpenCreatesNestedDirs(t *testing.T) {
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

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("brickwave", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("brickwave", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not sorted descending: %v", scores)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("brickwave", (i+1)*100)
	}

	scores, err := store.TopScores("brickwave", 3)
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
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore("brickwave")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty table, got %d", high)
	}

	store.SaveScore("brickwave", 100)
	store.SaveScore("brickwave", 300)
	store.SaveScore("brickwave", 200)

	high, err = store.HighScore("brickwave")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("brickwave", 100)
	store.SaveScore("brickwave", 200)

	if err := store.ClearScores("brickwave"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("brickwave", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
}

func TestStoreSaveAndListRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []RunRecord{
		{GameID: "brickwave", Score: 150, LevelReached: 2, StuckCorrections: 1, DurationTicks: 3600},
		{GameID: "brickwave", Score: 900, LevelReached: 4, Won: true, TunnelCorrections: 2, DroppedContacts: 1, DurationTicks: 14400},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	got, err := store.RecentRuns("brickwave", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(got))
	}

	// Most recent first
	latest := got[0]
	if latest.Score != 900 || !latest.Won {
		t.Errorf("Latest run = score %d won %v, want 900 true", latest.Score, latest.Won)
	}
	if latest.TunnelCorrections != 2 || latest.DroppedContacts != 1 {
		t.Errorf("Telemetry not round-tripped: %+v", latest)
	}
	if latest.CreatedAt.IsZero() {
		t.Error("CreatedAt not populated")
	}
}

func TestStoreRecentRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 8; i++ {
		store.SaveRun(RunRecord{GameID: "brickwave", Score: i * 10})
	}

	got, err := store.RecentRuns("brickwave", 5)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(got) != 5 {
		t.Errorf("Expected 5 runs with limit, got %d", len(got))
	}
}

func TestStoreAnomalies(t *testing.T) {
	store := openTestStore(t)

	// Empty table yields zero totals, not an error.
	totals, err := store.Anomalies("brickwave")
	if err != nil {
		t.Fatalf("Anomalies() failed: %v", err)
	}
	if totals.Runs != 0 || totals.StuckCorrections != 0 || totals.TunnelCorrections != 0 || totals.DroppedContacts != 0 {
		t.Errorf("Expected zero totals for empty table, got %+v", totals)
	}

	store.SaveRun(RunRecord{GameID: "brickwave", StuckCorrections: 2, TunnelCorrections: 1})
	store.SaveRun(RunRecord{GameID: "brickwave", StuckCorrections: 1, DroppedContacts: 3})

	totals, err = store.Anomalies("brickwave")
	if err != nil {
		t.Fatalf("Anomalies() failed: %v", err)
	}
	if totals.Runs != 2 {
		t.Errorf("Runs = %d, want 2", totals.Runs)
	}
	if totals.StuckCorrections != 3 || totals.TunnelCorrections != 1 || totals.DroppedContacts != 3 {
		t.Errorf("Totals = %+v, want stuck 3 tunnel 1 dropped 3", totals)
	}
}
