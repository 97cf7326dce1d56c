package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Validate reports every malformed value in the configuration.
func (c GameConfig) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if c.Scene.Width <= 0 || c.Scene.Height <= 0 {
		fail("scene size must be positive, got %vx%v", c.Scene.Width, c.Scene.Height)
	}
	if c.TickRate <= 0 {
		fail("tick_rate must be positive, got %d", c.TickRate)
	}

	f := c.Fire
	if f.Max <= 0 {
		fail("fire.max must be positive, got %v", f.Max)
	}
	if f.StartingIntensity <= 0 || f.StartingIntensity > f.Max {
		fail("fire.starting_intensity must be in (0, max], got %v", f.StartingIntensity)
	}
	if f.DropOffRate < 0 {
		fail("fire.drop_off_rate must not be negative, got %v", f.DropOffRate)
	}
	if f.WoodIncrease <= 0 {
		fail("fire.wood_increase must be positive, got %v", f.WoodIncrease)
	}
	if f.LowBelow <= 0 || f.MediumBelow <= f.LowBelow {
		fail("fire thresholds must satisfy 0 < low_below < medium_below, got %v and %v", f.LowBelow, f.MediumBelow)
	}

	if c.Story.Delay < 0 {
		fail("story.delay must not be negative, got %v", c.Story.Delay)
	}
	if c.Story.Fragments <= 0 {
		fail("story.fragments must be positive, got %d", c.Story.Fragments)
	}
	if len(c.Story.TextPosition) != 2 {
		fail("story.text_position needs 2 values, got %d", len(c.Story.TextPosition))
	}

	for i, r := range c.Regions {
		if r.Object == "" {
			fail("regions[%d]: object is required", i)
		}
		if len(r.Bounds) != 4 {
			fail("regions[%d]: bounds need 4 values, got %d", i, len(r.Bounds))
			continue
		}
		if r.Bounds[2] < r.Bounds[0] || r.Bounds[3] < r.Bounds[1] {
			fail("regions[%d]: bounds %v are inverted", i, r.Bounds)
		}
	}

	if !strings.Contains(c.Assets.StoryText, "%") || !strings.Contains(c.Assets.StoryAudio, "%") {
		fail("assets.story_text and assets.story_audio must be index patterns")
	}

	if c.Audio.SampleRate <= 0 {
		fail("audio.sample_rate must be positive, got %d", c.Audio.SampleRate)
	}
	seen := make(map[string]bool)
	for i, g := range c.Audio.Groups {
		switch {
		case g.Name == "":
			fail("audio.groups[%d]: name is required", i)
		case seen[g.Name]:
			fail("audio.groups[%d]: duplicate group %q", i, g.Name)
		}
		seen[g.Name] = true
		if g.Count <= 0 || g.Pattern == "" {
			fail("audio.groups[%d]: needs a pattern and a positive count", i)
		}
		if g.Volume < 0 || g.Volume > 1 {
			fail("audio.groups[%d]: volume must be in [0, 1], got %v", i, g.Volume)
		}
	}

	if c.Render.FadeSeconds < 0 {
		fail("render.fade_seconds must not be negative, got %v", c.Render.FadeSeconds)
	}
	if c.Render.Letterbox != "" {
		if _, err := colorful.Hex(c.Render.Letterbox); err != nil {
			fail("render.letterbox: %v", err)
		}
	}

	switch c.Difficulty.Progression.Type {
	case "", "none", "story", "time":
	default:
		fail("difficulty.progression.type %q is not one of story, time, none", c.Difficulty.Progression.Type)
	}

	return errors.Join(errs...)
}
