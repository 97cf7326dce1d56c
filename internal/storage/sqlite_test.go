package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/ember-story/internal/core"
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

func TestStoreSaveAndRecent(t *testing.T) {
	store := openTestStore(t)

	runs := []core.RunSummary{
		{Outcome: core.OutcomeLost, Duration: 30 * time.Second, WoodAdded: 4},
		{Outcome: core.OutcomeAbandoned, Duration: 2 * time.Second},
		{Outcome: core.OutcomeWon, Duration: 5 * time.Minute, WoodAdded: 60, Fragments: 42},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun(%v) failed: %v", r, err)
		}
	}

	recent, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(recent))
	}

	// Newest first
	if recent[0].Outcome != core.OutcomeWon {
		t.Errorf("Expected newest run to be won, got %s", recent[0].Outcome)
	}
	if recent[0].Duration != 5*time.Minute {
		t.Errorf("Duration = %v, expected 5m", recent[0].Duration)
	}
	if recent[0].Fragments != 42 || recent[0].WoodAdded != 60 {
		t.Errorf("Run fields not preserved: %+v", recent[0])
	}
	if recent[2].Outcome != core.OutcomeLost {
		t.Errorf("Expected oldest run to be lost, got %s", recent[2].Outcome)
	}
	if recent[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreRecentLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(core.RunSummary{Outcome: core.OutcomeLost, WoodAdded: i})
	}

	recent, err := store.RecentRuns(3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(recent))
	}
	if recent[0].WoodAdded != 4 || recent[2].WoodAdded != 2 {
		t.Errorf("Runs not in expected order: %+v", recent)
	}
}

func TestStoreRejectsUnknownOutcome(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(core.RunSummary{Outcome: "paused"}); err == nil {
		t.Error("SaveRun() should reject unknown outcomes")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() on empty store failed: %v", err)
	}
	if empty.Runs != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected zero stats, got %+v", empty)
	}

	store.SaveRun(core.RunSummary{Outcome: core.OutcomeWon, Duration: 4 * time.Minute, WoodAdded: 50, Fragments: 42})
	store.SaveRun(core.RunSummary{Outcome: core.OutcomeLost, Duration: time.Minute, WoodAdded: 10, Fragments: 7})
	store.SaveRun(core.RunSummary{Outcome: core.OutcomeLost, Duration: 30 * time.Second, WoodAdded: 2})
	store.SaveRun(core.RunSummary{Outcome: core.OutcomeAbandoned})

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}

	tests := []struct {
		name     string
		got      int64
		expected int64
	}{
		{"runs", int64(stats.Runs), 4},
		{"won", int64(stats.Won), 1},
		{"lost", int64(stats.Lost), 2},
		{"abandoned", int64(stats.Abandoned), 1},
		{"most heard", int64(stats.MostHeard), 42},
		{"total wood", stats.TotalWood, 62},
		{"longest", int64(stats.Longest), int64(4 * time.Minute)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("got %d, expected %d", tt.got, tt.expected)
			}
		})
	}

	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(core.RunSummary{Outcome: core.OutcomeWon})
	store.SaveRun(core.RunSummary{Outcome: core.OutcomeLost})

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	recent, _ := store.RecentRuns(10)
	if len(recent) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(recent))
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
