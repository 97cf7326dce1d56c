// Package assets loads the game's images, sounds, story fragments and the
// animation manifest from the resource directory.
package assets

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/gopxl/beep"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/vovakirdan/ember-story/internal/config"
	"github.com/vovakirdan/ember-story/internal/core"
	"github.com/vovakirdan/ember-story/internal/sprite"
	"github.com/vovakirdan/ember-story/internal/telemetry"
)

// Fragment is one story slide: a text image and its narration.
type Fragment struct {
	Text     image.Image
	Audio    *beep.Buffer
	Duration time.Duration
}

// Bundle holds every decoded resource. It is read-only after Load and can
// be shared between game sessions.
type Bundle struct {
	Dir    string
	Format beep.Format

	Menu       image.Image
	Background image.Image
	TextEmpty  image.Image
	EndFail    image.Image
	EndSuccess image.Image

	Music    *beep.Buffer
	Campfire *beep.Buffer
	Groups   map[string][]*beep.Buffer
	Story    []Fragment

	manifest config.AnimationManifest
	sheets   []image.Image // parallel to manifest.Animations
}

// Load reads every asset named by cfg from dir. Any missing or malformed
// file is an error naming the offending path.
func Load(ctx context.Context, dir string, cfg config.GameConfig) (*Bundle, error) {
	_, span := telemetry.Tracer("assets").Start(ctx, "assets.load")
	defer span.End()
	span.SetAttributes(attribute.String("dir", dir))

	b, err := load(dir, cfg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "asset load failed")
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("story.fragments", len(b.Story)),
		attribute.Int("animations", len(b.sheets)),
		attribute.Int("sound.groups", len(b.Groups)),
	)
	return b, nil
}

func load(dir string, cfg config.GameConfig) (*Bundle, error) {
	b := &Bundle{
		Dir:    dir,
		Format: EngineFormat(cfg.Audio.SampleRate),
		Groups: make(map[string][]*beep.Buffer, len(cfg.Audio.Groups)),
	}
	path := func(rel string) string {
		return filepath.Join(dir, filepath.FromSlash(rel))
	}

	images := []struct {
		dst *image.Image
		rel string
	}{
		{&b.Menu, cfg.Assets.Menu},
		{&b.Background, cfg.Assets.Background},
		{&b.TextEmpty, cfg.Assets.TextEmpty},
		{&b.EndFail, cfg.Assets.EndFail},
		{&b.EndSuccess, cfg.Assets.EndSuccess},
	}
	for _, im := range images {
		img, err := LoadImage(path(im.rel))
		if err != nil {
			return nil, err
		}
		*im.dst = img
	}

	var err error
	if b.Music, err = LoadSound(path(cfg.Assets.Music), b.Format); err != nil {
		return nil, err
	}
	if b.Campfire, err = LoadSound(path(cfg.Assets.Campfire), b.Format); err != nil {
		return nil, err
	}

	for _, g := range cfg.Audio.Groups {
		sounds := make([]*beep.Buffer, 0, g.Count)
		for i := 0; i < g.Count; i++ {
			buf, err := LoadSound(path(fmt.Sprintf(g.Pattern, i)), b.Format)
			if err != nil {
				return nil, err
			}
			sounds = append(sounds, buf)
		}
		b.Groups[g.Name] = sounds
	}

	for i := 0; i < cfg.Story.Fragments; i++ {
		text, err := LoadImage(path(fmt.Sprintf(cfg.Assets.StoryText, i)))
		if err != nil {
			return nil, err
		}
		audio, err := LoadSound(path(fmt.Sprintf(cfg.Assets.StoryAudio, i)), b.Format)
		if err != nil {
			return nil, err
		}
		b.Story = append(b.Story, Fragment{Text: text, Audio: audio, Duration: Duration(audio)})
	}

	manifestPath := path(cfg.Assets.Manifest)
	b.manifest, err = config.LoadManifest(manifestPath)
	if err != nil {
		return nil, err
	}
	for _, spec := range b.manifest.Animations {
		sheet, err := LoadImage(path(spec.Texture))
		if err != nil {
			return nil, err
		}
		b.sheets = append(b.sheets, sheet)
	}

	// Build once so malformed frame tables fail at startup.
	if _, err := b.Animations(); err != nil {
		return nil, fmt.Errorf("manifest %s: %w", manifestPath, err)
	}
	return b, nil
}

// Animations builds a fresh animation set over the shared sheets. Each
// game session owns its own set.
func (b *Bundle) Animations() (*sprite.Set, error) {
	animations := make([]*sprite.Animation, 0, len(b.sheets))
	for i, spec := range b.manifest.Animations {
		clips := make(map[string]sprite.FrameTable, len(spec.Clips))
		for id, clip := range spec.Clips {
			table, err := sprite.NewFrameTable(clip.Input, clip.Output)
			if err != nil {
				return nil, fmt.Errorf("%s/%s: %w", spec.DisplayName(), id, err)
			}
			clips[id] = table
		}

		grid := sprite.Grid{
			TextureWidth:  spec.Grid.TextureWidth,
			TextureHeight: spec.Grid.TextureHeight,
			Columns:       spec.Grid.Columns,
			Rows:          spec.Grid.Rows,
			CellWidth:     spec.Grid.CellSize[0],
			CellHeight:    spec.Grid.CellSize[1],
		}
		dest := core.Point{X: spec.Destination[0], Y: spec.Destination[1]}

		a, err := sprite.NewAnimation(spec.DisplayName(), b.sheets[i], grid, dest, clips)
		if err != nil {
			return nil, err
		}
		animations = append(animations, a)
	}
	return sprite.NewSet("", animations...), nil
}

// Durations returns each story fragment's narration length in seconds.
func (b *Bundle) Durations() []float64 {
	out := make([]float64, len(b.Story))
	for i, f := range b.Story {
		out[i] = f.Duration.Seconds()
	}
	return out
}

// Paths lists every file cfg requires, relative to the resource
// directory. Sheet textures are listed when the manifest is readable.
func Paths(dir string, cfg config.GameConfig) []string {
	paths := []string{
		cfg.Assets.Manifest,
		cfg.Assets.Menu,
		cfg.Assets.Background,
		cfg.Assets.TextEmpty,
		cfg.Assets.EndFail,
		cfg.Assets.EndSuccess,
		cfg.Assets.Music,
		cfg.Assets.Campfire,
	}
	for _, g := range cfg.Audio.Groups {
		for i := 0; i < g.Count; i++ {
			paths = append(paths, fmt.Sprintf(g.Pattern, i))
		}
	}
	for i := 0; i < cfg.Story.Fragments; i++ {
		paths = append(paths,
			fmt.Sprintf(cfg.Assets.StoryText, i),
			fmt.Sprintf(cfg.Assets.StoryAudio, i),
		)
	}

	m, err := config.LoadManifest(filepath.Join(dir, filepath.FromSlash(cfg.Assets.Manifest)))
	if err == nil {
		for _, a := range m.Animations {
			paths = append(paths, a.Texture)
		}
	}
	return paths
}

// Missing returns the required files absent from dir.
func Missing(dir string, cfg config.GameConfig) []string {
	var missing []string
	for _, rel := range Paths(dir, cfg) {
		if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(rel))); err != nil {
			missing = append(missing, rel)
		}
	}
	return missing
}
