package storage

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/moonrunner/internal/leaderboard"
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

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.moonrunner/test.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".moonrunner", "test.db")); err != nil {
		t.Errorf("database not created under HOME: %v", err)
	}
}

func TestStoreRecords(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.Read("missing"); !errors.Is(err, leaderboard.ErrNotFound) {
		t.Fatalf("Read() of a missing key: err = %v, want ErrNotFound", err)
	}

	if err := store.Write("k", []byte("first")); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}
	if err := store.Write("k", []byte("second")); err != nil {
		t.Fatalf("Write() overwrite failed: %v", err)
	}

	got, err := store.Read("k")
	if err != nil {
		t.Fatalf("Read() failed: %v", err)
	}
	if string(got) != "second" {
		t.Errorf("Read() = %q, want %q", got, "second")
	}
}

func TestStoreBacksLeaderboard(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}

	board := leaderboard.New(store, log.New(io.Discard))
	if _, err := board.Save("zz", 12.34); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	store.Close()

	// Reopen to make sure the record was persisted
	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	got := leaderboard.New(store, log.New(io.Discard)).Load()
	if len(got) != 1 || got[0] != (leaderboard.Entry{Name: "ZZ", Score: 12.34}) {
		t.Errorf("Load() after reopen = %+v", got)
	}
}

func TestStoreRunsAndStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() on empty history failed: %v", err)
	}
	if stats.Runs != 0 || stats.Best != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", stats)
	}

	for _, r := range []struct {
		elapsed float64
		cause   string
	}{
		{4.5, "rock"},
		{12.25, "crater"},
		{8.0, "rover"},
	} {
		if _, err := store.SaveRun(r.elapsed, r.cause); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 3 {
		t.Errorf("Runs = %d, want 3", stats.Runs)
	}
	if stats.Best != 12.25 {
		t.Errorf("Best = %v, want 12.25", stats.Best)
	}
	if stats.TotalTime != 24.75 {
		t.Errorf("TotalTime = %v, want 24.75", stats.TotalTime)
	}
	if stats.Average != 8.25 {
		t.Errorf("Average = %v, want 8.25", stats.Average)
	}

	runs, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("RecentRuns(2) returned %d runs", len(runs))
	}
	if runs[0].Cause != "rover" || runs[1].Cause != "crater" {
		t.Errorf("RecentRuns() order = %s, %s; want rover, crater", runs[0].Cause, runs[1].Cause)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)
	store.SaveRun(1, "rock")
	store.SaveRun(2, "rock")

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 0 {
		t.Errorf("Runs after clear = %d, want 0", stats.Runs)
	}
}
