package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/ember-story/internal/storage"
)

type fakeHistory struct {
	runs  []storage.Run
	stats *storage.Stats
	err   error
}

func (h fakeHistory) RecentRuns(int) ([]storage.Run, error) { return h.runs, h.err }

func (h fakeHistory) Stats() (*storage.Stats, error) { return h.stats, h.err }

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in       time.Duration
		expected string
	}{
		{0, "0:00"},
		{59 * time.Second, "0:59"},
		{65 * time.Second, "1:05"},
		{12*time.Minute + 1500*time.Millisecond, "12:02"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.in); got != tt.expected {
			t.Errorf("formatDuration(%v) = %q, expected %q", tt.in, got, tt.expected)
		}
	}
}

func TestHistoryRows(t *testing.T) {
	rows := HistoryRows([]storage.Run{
		{ID: 7, Outcome: "won", Duration: 3 * time.Minute, WoodAdded: 41, Fragments: 42},
	})
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	expected := []string{"7", "won", "3:00", "41", "42"}
	for i, want := range expected {
		if rows[0][i] != want {
			t.Errorf("column %d = %q, expected %q", i, rows[0][i], want)
		}
	}
}

func TestSummaryLine(t *testing.T) {
	if got := SummaryLine(nil); !strings.Contains(got, "No runs") {
		t.Errorf("SummaryLine(nil) = %q", got)
	}

	got := SummaryLine(&storage.Stats{Runs: 3, Won: 1, Lost: 1, Abandoned: 1, Longest: 90 * time.Second, MostHeard: 9})
	for _, part := range []string{"3 runs", "1 won", "1:30", "9"} {
		if !strings.Contains(got, part) {
			t.Errorf("SummaryLine() = %q, missing %q", got, part)
		}
	}
}

func TestHistoryView(t *testing.T) {
	src := fakeHistory{
		runs: []storage.Run{
			{ID: 2, Outcome: "lost", Duration: time.Minute},
			{ID: 1, Outcome: "won", Duration: 4 * time.Minute, Fragments: 42},
		},
		stats: &storage.Stats{Runs: 2, Won: 1, Lost: 1, Longest: 4 * time.Minute, MostHeard: 42},
	}

	view := NewHistoryModel(src, 80, 24).View()
	for _, part := range []string{"2 runs", "lost", "won", "Outcome"} {
		if !strings.Contains(view, part) {
			t.Errorf("view missing %q:\n%s", part, view)
		}
	}
}

func TestHistoryViewError(t *testing.T) {
	view := NewHistoryModel(fakeHistory{err: errors.New("locked")}, 80, 24).View()
	if !strings.Contains(view, "locked") {
		t.Errorf("view should report the error:\n%s", view)
	}
}
