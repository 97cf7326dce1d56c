package sprite

import (
	"fmt"
	"image"

	"github.com/vovakirdan/ember-story/internal/core"
)

// Animation is the runtime state of one animated sprite: a sheet, where it
// sits in the scene and its named looping clips. It is not drawn until the
// first Animate call after a reset.
type Animation struct {
	Name  string
	Sheet image.Image
	Grid  Grid
	Dest  core.Point
	clips map[string]FrameTable

	animated bool
	start    float64
	frame    int
}

// NewAnimation validates the sheet geometry against the image and clips.
func NewAnimation(name string, sheet image.Image, grid Grid, dest core.Point, clips map[string]FrameTable) (*Animation, error) {
	if err := grid.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	size := sheet.Bounds().Size()
	if size.X < grid.TextureWidth || size.Y < grid.TextureHeight {
		return nil, fmt.Errorf("sprite: %s: texture is %dx%d, grid expects %dx%d",
			name, size.X, size.Y, grid.TextureWidth, grid.TextureHeight)
	}

	for id, clip := range clips {
		if err := clip.Validate(); err != nil {
			return nil, fmt.Errorf("%s/%s: %w", name, id, err)
		}
		if clip.MaxFrame() >= grid.Frames() {
			return nil, fmt.Errorf("sprite: %s/%s: frame %d outside the %d-cell grid",
				name, id, clip.MaxFrame(), grid.Frames())
		}
	}

	return &Animation{
		Name:  name,
		Sheet: sheet,
		Grid:  grid,
		Dest:  dest,
		clips: clips,
	}, nil
}

// Has reports whether the animation defines clip id.
func (a *Animation) Has(id string) bool {
	_, ok := a.clips[id]
	return ok
}

// Animate advances the clip id to scene time now (seconds). The first call
// after a reset starts the clip at now. Unknown ids leave the state as is.
func (a *Animation) Animate(now float64, id string) {
	clip, ok := a.clips[id]
	if !ok {
		return
	}

	if !a.animated {
		a.start = now
		a.animated = true
		a.frame = clip[0].Frame
		return
	}

	a.frame = SelectFrame(clip, now-a.start)
}

// Reset stops the animation; it restarts from its first keyframe on the
// next Animate call.
func (a *Animation) Reset() {
	a.animated = false
}

// Animated reports whether the animation is running and should be drawn.
func (a *Animation) Animated() bool {
	return a.animated
}

// Frame returns the current sheet frame.
func (a *Animation) Frame() int {
	return a.frame
}

// Source returns the sheet rectangle of the current frame.
func (a *Animation) Source() image.Rectangle {
	return a.Grid.SourceRect(a.frame).Add(a.Sheet.Bounds().Min)
}

// Set is a plain owned collection of animations sharing one active clip id.
type Set struct {
	animations []*Animation
	id         string
}

// NewSet creates a set playing clip id.
func NewSet(id string, animations ...*Animation) *Set {
	return &Set{animations: animations, id: id}
}

// ID returns the active clip id.
func (s *Set) ID() string {
	return s.id
}

// Len returns the number of animations in the set.
func (s *Set) Len() int {
	return len(s.animations)
}

// Switch makes id the active clip. When it differs from the current one
// every animation restarts, so the new loop begins at its first keyframe.
// Returns whether the clip changed.
func (s *Set) Switch(id string) bool {
	if id == s.id {
		return false
	}
	s.id = id
	s.Reset()
	return true
}

// Animate advances every animation to scene time now.
func (s *Set) Animate(now float64) {
	for _, a := range s.animations {
		a.Animate(now, s.id)
	}
}

// Reset stops every animation.
func (s *Set) Reset() {
	for _, a := range s.animations {
		a.Reset()
	}
}

// Draw paints every running animation onto the canvas.
func (s *Set) Draw(c *Canvas) {
	for _, a := range s.animations {
		if a.Animated() {
			c.DrawSub(a.Sheet, a.Source(), a.Dest)
		}
	}
}
