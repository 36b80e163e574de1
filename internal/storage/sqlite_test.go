package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/config"
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

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreRunsAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveRun("classic", score, 5, "wall"); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	if _, err := store.SaveRun("armed", 500, 9, "self"); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	runs, err := store.TopRuns("classic", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}
	if runs[0].Score != 200 || runs[1].Score != 100 || runs[2].Score != 50 {
		t.Errorf("Runs not sorted descending: %v", runs)
	}
	if runs[0].RunID == "" || runs[0].RunID == runs[1].RunID {
		t.Errorf("Expected unique run IDs, got %q and %q", runs[0].RunID, runs[1].RunID)
	}

	armed, err := store.TopRuns("armed", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(armed) != 1 || armed[0].Reason != "self" || armed[0].Length != 9 {
		t.Errorf("Unexpected armed runs: %v", armed)
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun("classic", (i+1)*100, 3, "wall")
	}

	runs, err := store.TopRuns("classic", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Score != 500 || runs[1].Score != 400 || runs[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
}

func TestStoreRunByID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun("armed", 70, 6, "board_full")
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	run, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if run == nil || run.Score != 70 || run.Mode != "armed" {
		t.Errorf("Unexpected run: %+v", run)
	}

	missing, err := store.RunByID("nope")
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if missing != nil {
		t.Errorf("Expected nil for unknown run, got %+v", missing)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun("classic", 100, 3, "wall")
	store.SaveRun("armed", 300, 3, "wall")

	if err := store.ClearRuns("classic"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	classic, _ := store.TopRuns("classic", 10)
	if len(classic) != 0 {
		t.Errorf("Expected 0 classic runs after clear, got %d", len(classic))
	}
	armed, _ := store.TopRuns("armed", 10)
	if len(armed) != 1 {
		t.Errorf("Armed runs should not be affected by clearing classic")
	}
}

func TestStoreModeStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetModeStats("classic")
	if err != nil {
		t.Fatalf("GetModeStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.BestScore != 0 {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	store.SaveRun("classic", 10, 3, "wall")
	store.SaveRun("classic", 30, 3, "self")

	stats, err := store.GetModeStats("classic")
	if err != nil {
		t.Fatalf("GetModeStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.BestScore != 30 || stats.TotalScore != 40 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 20 {
		t.Errorf("AvgScore = %v, expected 20", stats.AvgScore)
	}
}

func TestBestScoreOnlyRises(t *testing.T) {
	store := openTestStore(t)
	best := NewBestScore(store, "")

	score, err := best.LoadHighScore()
	if err != nil {
		t.Fatalf("LoadHighScore() failed: %v", err)
	}
	if score != 0 {
		t.Errorf("Expected 0 for empty store, got %d", score)
	}

	steps := []struct {
		save, expected int
	}{
		{40, 40},
		{20, 40}, // lower value is ignored
		{90, 90},
	}
	for _, step := range steps {
		if err := best.SaveHighScore(step.save); err != nil {
			t.Fatalf("SaveHighScore(%d) failed: %v", step.save, err)
		}
		got, err := best.LoadHighScore()
		if err != nil {
			t.Fatalf("LoadHighScore() failed: %v", err)
		}
		if got != step.expected {
			t.Errorf("after SaveHighScore(%d): got %d, expected %d", step.save, got, step.expected)
		}
	}

	// The value lives under the default key.
	raw, ok, err := store.Get(config.DefaultHighScoreKey)
	if err != nil || !ok || raw != "90" {
		t.Errorf("Get(%q) = %q, %v, %v", config.DefaultHighScoreKey, raw, ok, err)
	}
}

func TestStoreGetIntRejectsGarbage(t *testing.T) {
	store := openTestStore(t)

	if err := store.Set("junk", "abc"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if _, err := store.GetInt("junk"); err == nil {
		t.Error("Expected error for non-integer value")
	}
}

func TestStoreSettingsRoundTrip(t *testing.T) {
	store := openTestStore(t)
	defaults := config.Settings{Walls: true, Mode: "classic"}

	loaded, err := store.LoadSettings(defaults)
	if err != nil {
		t.Fatalf("LoadSettings() failed: %v", err)
	}
	if loaded != defaults {
		t.Errorf("Expected defaults before any save, got %+v", loaded)
	}

	want := config.Settings{Walls: false, Mode: "armed"}
	if err := store.SaveSettings(want); err != nil {
		t.Fatalf("SaveSettings() failed: %v", err)
	}
	loaded, err = store.LoadSettings(defaults)
	if err != nil {
		t.Fatalf("LoadSettings() failed: %v", err)
	}
	if loaded != want {
		t.Errorf("LoadSettings() = %+v, expected %+v", loaded, want)
	}
}
