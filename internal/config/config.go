// Package config provides YAML-based game configuration, the animation
// manifest format and difficulty presets.
package config

// GameConfig contains all configuration for Ember Story.
type GameConfig struct {
	Title      string           `yaml:"title"`
	Scene      SceneConfig      `yaml:"scene"`
	TickRate   int              `yaml:"tick_rate"`
	Fire       FireConfig       `yaml:"fire"`
	Story      StoryConfig      `yaml:"story"`
	Regions    []RegionConfig   `yaml:"regions"`
	Assets     AssetsConfig     `yaml:"assets"`
	Audio      AudioConfig      `yaml:"audio"`
	Render     RenderConfig     `yaml:"render"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SceneConfig is the logical scene size all coordinates are expressed in.
type SceneConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// FireConfig defines the campfire's fuel model.
type FireConfig struct {
	StartingIntensity float64 `yaml:"starting_intensity"`
	DropOffRate       float64 `yaml:"drop_off_rate"` // Intensity lost per second
	WoodIncrease      float64 `yaml:"wood_increase"` // Intensity gained per log
	Max               float64 `yaml:"max"`
	LowBelow          float64 `yaml:"low_below"`    // burn_low when intensity < this
	MediumBelow       float64 `yaml:"medium_below"` // burn_medium when intensity < this
}

// StoryConfig defines the narrated slide sequence.
type StoryConfig struct {
	Delay        float64   `yaml:"delay"`     // Seconds of play before the first fragment
	Fragments    int       `yaml:"fragments"` // Number of text/audio pairs
	TextPosition []float64 `yaml:"text_position"`
}

// RegionConfig maps an inclusive scene rectangle [left, top, right, bottom]
// to a clickable object.
type RegionConfig struct {
	Object string    `yaml:"object"`
	Bounds []float64 `yaml:"bounds"`
}

// AssetsConfig holds asset paths relative to the resource directory.
// StoryText and StoryAudio are printf patterns taking the fragment index.
type AssetsConfig struct {
	Manifest   string `yaml:"manifest"`
	Menu       string `yaml:"menu"`
	Background string `yaml:"background"`
	TextEmpty  string `yaml:"text_empty"`
	EndFail    string `yaml:"end_fail"`
	EndSuccess string `yaml:"end_success"`
	StoryText  string `yaml:"story_text"`
	StoryAudio string `yaml:"story_audio"`
	Music      string `yaml:"music"`
	Campfire   string `yaml:"campfire"`
}

// AudioConfig defines mixing parameters and the sound effect groups.
// Volumes are linear in [0, 1].
type AudioConfig struct {
	SampleRate     int          `yaml:"sample_rate"`
	MusicVolume    float64      `yaml:"music_volume"`
	CampfireVolume float64      `yaml:"campfire_volume"`
	StoryVolume    float64      `yaml:"story_volume"`
	Groups         []SoundGroup `yaml:"groups"`
}

// SoundGroup is a set of interchangeable effects; one is picked at random.
// Pattern is a printf pattern taking the index in [0, Count).
type SoundGroup struct {
	Name    string  `yaml:"name"`
	Pattern string  `yaml:"pattern"`
	Count   int     `yaml:"count"`
	Volume  float64 `yaml:"volume"`
}

// RenderConfig defines presentation parameters.
type RenderConfig struct {
	FadeSeconds float64 `yaml:"fade_seconds"` // Scene fade-in length, 0 disables
	Letterbox   string  `yaml:"letterbox"`    // Hex color of the bars around the scene
}

// DifficultyConfig defines the optional fire pressure progression.
// Disabled by default: the fire burns down at the configured rate.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "story", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Fragments or seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	DropOffMultiplier float64 `yaml:"drop_off_multiplier"` // Added to the drop-off factor at max difficulty
	WoodReduction     float64 `yaml:"wood_reduction"`      // Fraction of wood increase lost at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means no preset.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
