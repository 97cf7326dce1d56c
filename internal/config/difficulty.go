package config

import "math"

// DifficultyManager calculates fire parameters from story progress or
// time played.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) from the number
// of story fragments heard and the seconds played.
func (d *DifficultyManager) Level(fragments int, seconds float64) float64 {
	if !d.cfg.Enabled || d.cfg.Progression.Type == "none" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "story":
		progress = float64(fragments) / maxAt
	case "time":
		progress = seconds / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// DropOff returns the intensity lost per second at the current level.
func (d *DifficultyManager) DropOff(base float64, fragments int, seconds float64) float64 {
	if !d.cfg.Enabled {
		return base
	}
	level := d.Level(fragments, seconds)
	return base * (1.0 + level*d.cfg.Scaling.DropOffMultiplier)
}

// WoodIncrease returns the intensity one log adds at the current level.
func (d *DifficultyManager) WoodIncrease(base float64, fragments int, seconds float64) float64 {
	if !d.cfg.Enabled {
		return base
	}
	level := d.Level(fragments, seconds)
	factor := clampF(1.0-level*d.cfg.Scaling.WoodReduction, 0.1, 1.0)
	return base * factor
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
