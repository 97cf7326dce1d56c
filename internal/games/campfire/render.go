package campfire

import (
	"fmt"
	"image"
	"unicode/utf8"

	"github.com/fogleman/ease"

	"github.com/vovakirdan/ember-story/internal/core"
	"github.com/vovakirdan/ember-story/internal/sprite"
)

var (
	hudFg = core.ColorOrange
	hudBg = core.ColorBlack
)

// Render draws the current scene, letterboxed into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	view := core.NewViewport(g.cfg.Scene.Width, g.cfg.Scene.Height, dst.Width(), dst.Height())
	if g.canvas == nil || g.canvas.Viewport() != view {
		g.canvas = sprite.NewCanvas(view)
	}
	c := g.canvas
	c.Fill(g.letterbox)

	if b := g.bundle; b != nil {
		switch g.scene {
		case SceneMenu:
			drawImage(c, b.Menu, core.Point{})
		case ScenePlaying:
			drawImage(c, b.Background, core.Point{})
			g.anims.Draw(c)
			g.drawStoryText(c)
		case SceneEndFail:
			drawImage(c, b.EndFail, core.Point{})
		case SceneEndSuccess:
			drawImage(c, b.EndSuccess, core.Point{})
		}
	}

	c.Brightness = g.fade()
	c.Flush(dst)

	if g.debug {
		g.drawHUD(dst)
	}
}

func drawImage(c *sprite.Canvas, img image.Image, at core.Point) {
	if img != nil {
		c.DrawImage(img, at)
	}
}

// drawStoryText shows the narrated fragment's text, or the empty text
// panel between fragments, once the opening delay has passed.
func (g *Game) drawStoryText(c *sprite.Canvas) {
	if !g.story.Begun() || len(g.cfg.Story.TextPosition) < 2 {
		return
	}

	at := core.Point{X: g.cfg.Story.TextPosition[0], Y: g.cfg.Story.TextPosition[1]}
	if i, playing := g.story.Current(); playing && i < len(g.bundle.Story) {
		drawImage(c, g.bundle.Story[i].Text, at)
		return
	}
	drawImage(c, g.bundle.TextEmpty, at)
}

// fade returns the scene brightness, easing in after a scene change.
func (g *Game) fade() float64 {
	if g.cfg.Render.FadeSeconds <= 0 {
		return 1
	}
	t := g.sceneTime / g.cfg.Render.FadeSeconds
	if t >= 1 {
		return 1
	}
	return ease.OutQuad(t)
}

// drawHUD draws the debug panel in the top-left corner.
func (g *Game) drawHUD(dst *core.Screen) {
	i, playing := g.story.Current()
	lines := []string{
		fmt.Sprintf("scene %s  fire %.3f  %s", g.scene, g.intensity, g.burn),
		fmt.Sprintf("story %d/%d playing=%v  run %.1fs  wood %d", i, g.story.Len(), playing, g.runTime, g.woodAdded),
		fmt.Sprintf("click (%.0f, %.0f)", g.lastClick.X, g.lastClick.Y),
	}
	if g.difficulty.IsEnabled() {
		level := g.difficulty.Level(g.story.Heard(), g.runTime)
		lines = append(lines, fmt.Sprintf("difficulty %.2f", level))
	}

	width := 0
	for _, line := range lines {
		width = max(width, utf8.RuneCountInString(line))
	}
	panel := core.NewRect(0, 0, width+4, len(lines)+2)
	dst.DrawRect(panel, core.Cell{Rune: ' ', Fg: hudFg, Bg: hudBg})
	dst.DrawBox(panel, hudFg, hudBg)
	for y, line := range lines {
		dst.DrawTextColor(2, y+1, line, hudFg, hudBg)
	}
}
