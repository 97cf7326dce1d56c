package core

import "time"

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters (excluding the help bar)
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed for sound selection
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 70,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickDuration returns the fixed simulation step in seconds.
func (c RuntimeConfig) TickDuration() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 70.0
	}
	return 1.0 / float64(c.TickRate)
}

// GameState is the status the game reports to the platform after each tick.
type GameState struct {
	Scene   string // Current scene name
	Running bool   // Whether a run is in progress
	Quit    bool   // The game asked the platform to exit
}

// StepResult is returned by Game.Step() after each simulation tick.
// Cues are side effects the platform must perform (audio, persistence).
type StepResult struct {
	State GameState
	Cues  []Cue
}

// CueKind identifies the side effect requested by a Cue.
type CueKind int

const (
	CueSound       CueKind = iota // Play sound Index of group Name
	CueLoopStart                  // Ensure loop Name is playing
	CueLoopStop                   // Stop loop Name
	CueStoryStart                 // Play story fragment Index
	CueStoryStop                  // Silence the current story fragment
	CueRunFinished                // A run ended; see Run
)

// Cue is a side effect emitted by the game during a tick.
type Cue struct {
	Kind  CueKind
	Name  string
	Index int
	Run   *RunSummary
}

// Ambient loops started and stopped by CueLoopStart and CueLoopStop.
const (
	LoopMusic    = "music"
	LoopCampfire = "campfire"
)

// Run outcomes.
const (
	OutcomeWon       = "won"
	OutcomeLost      = "lost"
	OutcomeAbandoned = "abandoned"
)

// RunSummary describes a finished run.
type RunSummary struct {
	Outcome   string
	Duration  time.Duration
	WoodAdded int
	Fragments int // Story fragments that finished playing
}
