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
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, moves := range []int{12, 7, 9} {
		if _, err := store.SaveResult("01", moves, 30); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}
	// Different level
	if _, err := store.SaveResult("02", 20, 60); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}

	results, err := store.BestResults("01", 10)
	if err != nil {
		t.Fatalf("BestResults() failed: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}

	// Fewest moves first
	if results[0].Moves != 7 || results[1].Moves != 9 || results[2].Moves != 12 {
		t.Errorf("Results not in expected order: %v", results)
	}

	other, err := store.BestResults("02", 10)
	if err != nil {
		t.Fatalf("BestResults() failed: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("Expected 1 result for level 02, got %d", len(other))
	}
}

func TestStoreBestResultsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveResult("01", 10-i, 0)
	}

	results, err := store.BestResults("01", 3)
	if err != nil {
		t.Fatalf("BestResults() failed: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("Expected 3 results with limit, got %d", len(results))
	}
	if results[0].Moves != 6 || results[1].Moves != 7 || results[2].Moves != 8 {
		t.Errorf("Results not in expected order: %v", results)
	}
}

func TestStoreBestMoves(t *testing.T) {
	store := openTestStore(t)

	// No results yet
	best, err := store.BestMoves("01")
	if err != nil {
		t.Fatalf("BestMoves() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for unsolved level, got %d", best)
	}

	store.SaveResult("01", 15, 0)
	store.SaveResult("01", 8, 0)
	store.SaveResult("01", 11, 0)

	best, err = store.BestMoves("01")
	if err != nil {
		t.Fatalf("BestMoves() failed: %v", err)
	}
	if best != 8 {
		t.Errorf("Expected best of 8 moves, got %d", best)
	}
}

func TestStoreClearResults(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult("01", 10, 0)
	store.SaveResult("01", 12, 0)
	store.SaveResult("02", 9, 0)

	if err := store.ClearResults("01"); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}

	first, _ := store.BestResults("01", 10)
	if len(first) != 0 {
		t.Errorf("Expected 0 results after clear, got %d", len(first))
	}

	second, _ := store.BestResults("02", 10)
	if len(second) != 1 {
		t.Error("Level 02 results should not be affected by clearing 01")
	}
}

func TestStoreRecentResults(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult("01", 10, 0)
	store.SaveResult("02", 8, 0)
	store.SaveResult("03", 6, 0)

	recent, err := store.RecentResults(2)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 recent results, got %d", len(recent))
	}
	if recent[0].LevelID != "03" {
		t.Errorf("Expected most recent result first, got level %s", recent[0].LevelID)
	}
}

func TestStoreLevelStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult("01", 10, 0)
	store.SaveResult("01", 6, 0)

	stats, err := store.GetLevelStats("01")
	if err != nil {
		t.Fatalf("GetLevelStats() failed: %v", err)
	}
	if stats.Solves != 2 || stats.BestMoves != 6 {
		t.Errorf("stats = %+v, expected 2 solves with best 6", stats)
	}

	all, err := store.GetAllLevelStats()
	if err != nil {
		t.Fatalf("GetAllLevelStats() failed: %v", err)
	}
	if len(all) != 1 || all["01"] == nil {
		t.Errorf("GetAllLevelStats() = %v, expected stats for level 01", all)
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
