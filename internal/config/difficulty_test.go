package config

import "testing"

func TestDifficultyDisabledKeepsBase(t *testing.T) {
	d := NewDifficultyManager(DefaultGameConfig().Difficulty)

	if d.IsEnabled() {
		t.Fatal("default difficulty should be disabled")
	}
	if got := d.DropOff(0.03, 40, 600); got != 0.03 {
		t.Errorf("DropOff() = %v, expected base rate", got)
	}
	if got := d.WoodIncrease(0.08, 40, 600); got != 0.08 {
		t.Errorf("WoodIncrease() = %v, expected base increase", got)
	}
}

func TestDifficultyStoryProgression(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "story", MaxAt: 40},
		Scaling:      ScalingConfig{DropOffMultiplier: 1.0, WoodReduction: 0.5},
	}
	d := NewDifficultyManager(cfg)

	tests := []struct {
		fragments int
		level     float64
		dropOff   float64
		wood      float64
	}{
		{0, 0.0, 0.25, 1.0},
		{20, 0.5, 0.375, 0.75},
		{40, 1.0, 0.5, 0.5},
		{80, 1.0, 0.5, 0.5},
	}

	for _, tt := range tests {
		if got := d.Level(tt.fragments, 0); got != tt.level {
			t.Errorf("Level(%d) = %v, expected %v", tt.fragments, got, tt.level)
		}
		if got := d.DropOff(0.25, tt.fragments, 0); got != tt.dropOff {
			t.Errorf("DropOff(%d) = %v, expected %v", tt.fragments, got, tt.dropOff)
		}
		if got := d.WoodIncrease(1.0, tt.fragments, 0); got != tt.wood {
			t.Errorf("WoodIncrease(%d) = %v, expected %v", tt.fragments, got, tt.wood)
		}
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 100},
	})

	if got := d.Level(0, 0); got != 0.5 {
		t.Errorf("Level at start = %v, expected initial 0.5", got)
	}
	if got := d.Level(0, 50); got != 0.75 {
		t.Errorf("Level halfway = %v, expected 0.75", got)
	}
}
