package tui

import (
	"testing"
	"time"
)

func TestTickClockSteps(t *testing.T) {
	const interval = 100 * time.Millisecond
	t0 := time.Unix(1000, 0)

	tests := []struct {
		name  string
		ticks []time.Duration // offsets from t0
		want  []int
	}{
		{"on time", []time.Duration{0, 100, 200, 300}, []int{1, 1, 1, 1}},
		{"one late tick", []time.Duration{0, 350, 450}, []int{1, 3, 1}},
		{"lag carries over", []time.Duration{0, 150, 300}, []int{1, 1, 2}},
		{"catch-up is capped", []time.Duration{0, 10000, 10100}, []int{1, 1 + maxCatchUp, 1}},
		{"early tick still steps", []time.Duration{0, 50}, []int{1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c tickClock
			for i, off := range tt.ticks {
				got := c.steps(t0.Add(off*time.Millisecond), interval)
				if got != tt.want[i] {
					t.Errorf("tick %d at +%dms: steps = %d, expected %d", i, off, got, tt.want[i])
				}
			}
		})
	}
}

func TestTickClockZeroTime(t *testing.T) {
	var c tickClock
	for i := 0; i < 3; i++ {
		if got := c.steps(time.Time{}, time.Second); got != 1 {
			t.Errorf("steps = %d, expected 1 for a zero time", got)
		}
	}
}

func TestTickIntervalDefault(t *testing.T) {
	if got := tickInterval(0); got != time.Second/70 {
		t.Errorf("tickInterval(0) = %v, expected %v", got, time.Second/70)
	}
	if got := tickInterval(10); got != 100*time.Millisecond {
		t.Errorf("tickInterval(10) = %v, expected 100ms", got)
	}
}
