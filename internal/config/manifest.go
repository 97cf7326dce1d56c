package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/animations.yaml
var defaultManifestYAML []byte

// AnimationManifest lists the animated sprites of the game scene.
type AnimationManifest struct {
	Animations []AnimationSpec `yaml:"animations"`
}

// AnimationSpec describes one sprite sheet, where it is drawn and the
// frame tables of its clips, keyed by clip id (burn_low, ...).
type AnimationSpec struct {
	Name        string              `yaml:"name"`
	Texture     string              `yaml:"texture"`
	Grid        GridSpec            `yaml:"grid"`
	Destination []float64           `yaml:"destination"`
	Clips       map[string]ClipSpec `yaml:"clips"`
}

// GridSpec is the sheet layout.
type GridSpec struct {
	TextureWidth  int   `yaml:"texture_width"`
	TextureHeight int   `yaml:"texture_height"`
	Columns       int   `yaml:"columns"`
	Rows          int   `yaml:"rows"`
	CellSize      []int `yaml:"cell_size"`
}

// ClipSpec holds a frame table as parallel lists: from Input[i] seconds
// into the loop, sheet frame Output[i] is shown.
type ClipSpec struct {
	Input  []float64 `yaml:"input"`
	Output []int     `yaml:"output"`
}

// LoadManifest reads and validates an animation manifest.
func LoadManifest(path string) (AnimationManifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return AnimationManifest{}, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}
	m, err := ParseManifest(data)
	if err != nil {
		return m, fmt.Errorf("manifest %s: %w", path, err)
	}
	return m, nil
}

// ParseManifest decodes and validates manifest YAML.
func ParseManifest(data []byte) (AnimationManifest, error) {
	var m AnimationManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return m, err
	}
	return m, nil
}

// DefaultManifestYAML returns the manifest shipped with the game.
func DefaultManifestYAML() []byte {
	return defaultManifestYAML
}

// Validate checks the structural shape of the manifest. Frame table and
// grid semantics are checked when the animations are built.
func (m AnimationManifest) Validate() error {
	if len(m.Animations) == 0 {
		return fmt.Errorf("manifest has no animations")
	}
	for i, a := range m.Animations {
		if a.Texture == "" {
			return fmt.Errorf("animation %d: texture is required", i)
		}
		if len(a.Destination) != 2 {
			return fmt.Errorf("animation %d: destination needs 2 values, got %d", i, len(a.Destination))
		}
		if len(a.Grid.CellSize) != 2 {
			return fmt.Errorf("animation %d: cell_size needs 2 values, got %d", i, len(a.Grid.CellSize))
		}
		if len(a.Clips) == 0 {
			return fmt.Errorf("animation %d: no clips", i)
		}
	}
	return nil
}

// DisplayName returns the animation name, falling back to its texture.
func (a AnimationSpec) DisplayName() string {
	if a.Name != "" {
		return a.Name
	}
	return a.Texture
}
