package config

import (
	_ "embed"
)

//go:embed defaults/game.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the hardcoded configuration, used when the
// embedded YAML cannot be parsed.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Title:    "Ember Story",
		Scene:    SceneConfig{Width: 1280, Height: 800},
		TickRate: 70,
		Fire: FireConfig{
			StartingIntensity: 0.6,
			DropOffRate:       0.03,
			WoodIncrease:      0.08,
			Max:               1.0,
			LowBelow:          0.33,
			MediumBelow:       0.66,
		},
		Story: StoryConfig{
			Delay:        3.0,
			Fragments:    42,
			TextPosition: []float64{100, 165},
		},
		Regions: []RegionConfig{
			{Object: "fire", Bounds: []float64{463, 644, 796, 695}},
			{Object: "fire", Bounds: []float64{559, 519, 669, 630}},
			{Object: "man1", Bounds: []float64{330, 368, 506, 603}},
			{Object: "man2", Bounds: []float64{915, 570, 990, 672}},
			{Object: "man2", Bounds: []float64{1001, 387, 1148, 688}},
			{Object: "girl1", Bounds: []float64{72, 437, 309, 719}},
			{Object: "girl2", Bounds: []float64{752, 366, 885, 590}},
			{Object: "owl", Bounds: []float64{55, 242, 117, 292}},
			{Object: "owl", Bounds: []float64{139, 25, 196, 65}},
			{Object: "owl", Bounds: []float64{1125, 109, 1182, 161}},
		},
		Assets: AssetsConfig{
			Manifest:   "static_animations.yaml",
			Menu:       "menu.png",
			Background: "background.png",
			TextEmpty:  "story/text_empty.png",
			EndFail:    "end_screen_fail.png",
			EndSuccess: "end_screen_success.png",
			StoryText:  "story/text/text_%04d.png",
			StoryAudio: "story/audio/audio_%04d.ogg",
			Music:      "audio/demo_1.2.ogg",
			Campfire:   "audio/campfire.ogg",
		},
		Audio: AudioConfig{
			SampleRate:     44100,
			MusicVolume:    0.30,
			CampfireVolume: 0.30,
			StoryVolume:    0.30,
			Groups: []SoundGroup{
				{Name: "firewood", Pattern: "audio/firewood/%02d.ogg", Count: 4, Volume: 0.30},
				{Name: "owl", Pattern: "audio/owl/%02d.ogg", Count: 4, Volume: 0.30},
				{Name: "guitar", Pattern: "audio/guitar/%02d.ogg", Count: 3, Volume: 0.30},
				{Name: "man1", Pattern: "audio/man1/%02d.ogg", Count: 2, Volume: 0.30},
				{Name: "girl1", Pattern: "audio/girl1/%02d.ogg", Count: 2, Volume: 0.30},
				{Name: "girl2", Pattern: "audio/girl2/%02d.ogg", Count: 2, Volume: 0.30},
			},
		},
		Render: RenderConfig{
			FadeSeconds: 0.6,
			Letterbox:   "#000000",
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "story",
				MaxAt: 42,
			},
			Scaling: ScalingConfig{
				DropOffMultiplier: 1.0,
				WoodReduction:     0.25,
			},
		},
	}
}

// DefaultGameYAML returns the embedded default configuration file.
func DefaultGameYAML() []byte {
	return defaultGameYAML
}
