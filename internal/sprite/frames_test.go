package sprite

import (
	"strings"
	"testing"
)

func flickerTable() FrameTable {
	return FrameTable{{Offset: 0, Frame: 0}, {Offset: 0.5, Frame: 1}, {Offset: 1.0, Frame: 2}}
}

func TestSelectFrame(t *testing.T) {
	table := flickerTable()

	tests := []struct {
		name    string
		elapsed float64
		want    int
	}{
		{"start", 0, 0},
		{"first segment", 0.25, 0},
		{"on second offset", 0.5, 0},
		{"second segment", 0.75, 1},
		{"wrapped", 1.3, 0},
		{"wrapped second segment", 1.875, 1},
		{"negative clamps to start", -2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SelectFrame(table, tt.elapsed); got != tt.want {
				t.Errorf("SelectFrame(%v) = %d, expected %d", tt.elapsed, got, tt.want)
			}
		})
	}
}

func TestSelectFramePeriodic(t *testing.T) {
	table := FrameTable{{0, 3}, {0.25, 4}, {0.5, 5}, {2.0, 6}}
	period := table.Period()

	for _, elapsed := range []float64{0.125, 0.375, 0.625, 1.5} {
		want := SelectFrame(table, elapsed)
		for k := 1; k <= 3; k++ {
			got := SelectFrame(table, elapsed+float64(k)*period)
			if got != want {
				t.Errorf("SelectFrame(%v + %d*period) = %d, expected %d", elapsed, k, got, want)
			}
		}
	}
}

func TestSelectFramePeriodicOnDecimalBoundaries(t *testing.T) {
	table := FrameTable{{0, 0}, {0.1, 1}, {0.3, 2}}
	period := table.Period()

	for _, elapsed := range []float64{0, 0.05, 0.1, 0.2, 0.3} {
		want := SelectFrame(table, elapsed)
		for k := 1; k <= 5; k++ {
			got := SelectFrame(table, elapsed+float64(k)*period)
			if got != want {
				t.Errorf("SelectFrame(%v + %d*period) = %d, expected %d", elapsed, k, got, want)
			}
		}
	}

	if got := SelectFrame(table, 0.1); got != 0 {
		t.Errorf("SelectFrame(0.1) = %d, expected 0 on the keyframe offset", got)
	}
	if got := SelectFrame(table, 0.2); got != 1 {
		t.Errorf("SelectFrame(0.2) = %d, expected 1", got)
	}
}

func TestSelectFrameSingleEntry(t *testing.T) {
	table := FrameTable{{Offset: 0, Frame: 7}}

	for _, elapsed := range []float64{0, 0.5, 12} {
		if got := SelectFrame(table, elapsed); got != 7 {
			t.Errorf("SelectFrame(%v) = %d, expected 7", elapsed, got)
		}
	}
}

func TestNewFrameTable(t *testing.T) {
	tests := []struct {
		name    string
		offsets []float64
		frames  []int
		wantErr string
	}{
		{"valid", []float64{0, 0.1, 0.2}, []int{0, 1, 2}, ""},
		{"length mismatch", []float64{0, 0.1}, []int{0}, "offsets"},
		{"empty", nil, nil, "empty"},
		{"not increasing", []float64{0, 0.2, 0.2}, []int{0, 1, 2}, "not after"},
		{"negative frame", []float64{0, 0.1}, []int{0, -1}, "negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := NewFrameTable(tt.offsets, tt.frames)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if len(table) != len(tt.offsets) {
					t.Errorf("len = %d, expected %d", len(table), len(tt.offsets))
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, expected it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestFrameTableMaxFrame(t *testing.T) {
	table := FrameTable{{0, 2}, {0.1, 9}, {0.2, 4}}
	if got := table.MaxFrame(); got != 9 {
		t.Errorf("MaxFrame() = %d, expected 9", got)
	}
	if got := table.Period(); got != 0.2 {
		t.Errorf("Period() = %v, expected 0.2", got)
	}
}
