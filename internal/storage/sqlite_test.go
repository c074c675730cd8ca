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

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{PuzzleID: "classic", Seed: 1, Sweeps: 2, SolutionSpace: "1", Solved: true, DurationMS: 3},
		{PuzzleID: "classic", Seed: 2, Sweeps: 3, SolutionSpace: "1", Solved: true, DurationMS: 4},
		{PuzzleID: "shapes", Seed: 3, Sweeps: 3, SolutionSpace: "256", Unsatisfiable: true, DurationMS: 5},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	classic, err := store.RecentRuns("classic", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(classic) != 2 {
		t.Fatalf("Expected 2 classic runs, got %d", len(classic))
	}
	// Newest first
	if classic[0].Seed != 2 {
		t.Errorf("Expected newest run first, got seed %d", classic[0].Seed)
	}

	shapes, err := store.RecentRuns("shapes", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(shapes) != 1 {
		t.Fatalf("Expected 1 shapes run, got %d", len(shapes))
	}
	if !shapes[0].Unsatisfiable || shapes[0].Solved {
		t.Errorf("Run flags lost in round trip: %+v", shapes[0])
	}
	if shapes[0].SolutionSpace != "256" {
		t.Errorf("SolutionSpace = %q, want 256", shapes[0].SolutionSpace)
	}
}

func TestStoreBestRun(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []Run{
		{PuzzleID: "classic", Seed: 1, Sweeps: 5, SolutionSpace: "1", Solved: true},
		{PuzzleID: "classic", Seed: 2, Sweeps: 2, SolutionSpace: "1", Solved: true},
		{PuzzleID: "classic", Seed: 3, Sweeps: 1, SolutionSpace: "16", Solved: false},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	best, err := store.BestRun("classic")
	if err != nil {
		t.Fatalf("BestRun() failed: %v", err)
	}
	if best == nil {
		t.Fatal("Expected a best run")
	}
	if best.Sweeps != 2 {
		t.Errorf("Best run sweeps = %d, want 2 (fewest among solved)", best.Sweeps)
	}
}

func TestStoreBestRunNone(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestRun("never-played")
	if err != nil {
		t.Fatalf("BestRun() failed: %v", err)
	}
	if best != nil {
		t.Errorf("Expected nil best run, got %+v", best)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []Run{
		{PuzzleID: "classic", Sweeps: 2, SolutionSpace: "1", Solved: true},
		{PuzzleID: "classic", Sweeps: 4, SolutionSpace: "1", Solved: true},
		{PuzzleID: "classic", Sweeps: 1, SolutionSpace: "8", Solved: false},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	stats, err := store.Stats("classic")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.RunCount != 3 {
		t.Errorf("RunCount = %d, want 3", stats.RunCount)
	}
	if stats.SolvedRuns != 2 {
		t.Errorf("SolvedRuns = %d, want 2", stats.SolvedRuns)
	}
	if stats.MinSweeps != 2 {
		t.Errorf("MinSweeps = %d, want 2", stats.MinSweeps)
	}
}

func TestStorePuzzleIDs(t *testing.T) {
	store := openTestStore(t)

	for _, id := range []string{"zeta", "alpha", "zeta"} {
		if _, err := store.SaveRun(Run{PuzzleID: id, SolutionSpace: "1"}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	ids, err := store.PuzzleIDs()
	if err != nil {
		t.Fatalf("PuzzleIDs() failed: %v", err)
	}
	if len(ids) != 2 || ids[0] != "alpha" || ids[1] != "zeta" {
		t.Errorf("PuzzleIDs() = %v, want [alpha zeta]", ids)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(Run{PuzzleID: "classic", SolutionSpace: "1"}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if err := store.ClearRuns("classic"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, err := store.RecentRuns("classic", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("Expected no runs after clear, got %d", len(runs))
	}
}
