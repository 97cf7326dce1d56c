package sprite

import (
	"image"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/ember-story/internal/core"
)

// Canvas composites scene-space images into a pixel buffer sized to the
// viewport, then writes it to a screen as half-block pixels.
// Sampling is nearest-neighbour; alpha is blended in RGB space.
type Canvas struct {
	view   core.Viewport
	width  int
	height int
	pixels []colorful.Color

	// Brightness scales every pixel on Flush; 1 is unchanged, 0 is black.
	Brightness float64
}

// NewCanvas creates a canvas for the given viewport, filled with black.
func NewCanvas(view core.Viewport) *Canvas {
	w, h := view.PixelSize()
	return &Canvas{
		view:       view,
		width:      w,
		height:     h,
		pixels:     make([]colorful.Color, w*h),
		Brightness: 1,
	}
}

// Viewport returns the mapping the canvas draws through.
func (c *Canvas) Viewport() core.Viewport {
	return c.view
}

// Fill sets every pixel, letterbox bars included, to col.
func (c *Canvas) Fill(col color.Color) {
	fill, _ := colorful.MakeColor(col)
	for i := range c.pixels {
		c.pixels[i] = fill
	}
}

// DrawImage draws a whole image with its top-left corner at dest.
func (c *Canvas) DrawImage(img image.Image, dest core.Point) {
	c.DrawSub(img, img.Bounds(), dest)
}

// DrawSub draws the src rectangle of img with its top-left corner at dest.
func (c *Canvas) DrawSub(img image.Image, src image.Rectangle, dest core.Point) {
	src = src.Intersect(img.Bounds())
	if src.Empty() || c.view.Scale() == 0 {
		return
	}

	x0, y0 := c.view.SceneToPixel(dest)
	x1, y1 := c.view.SceneToPixel(core.Point{
		X: dest.X + float64(src.Dx()),
		Y: dest.Y + float64(src.Dy()),
	})

	for py := max(y0, 0); py <= min(y1, c.height-1); py++ {
		for px := max(x0, 0); px <= min(x1, c.width-1); px++ {
			p, ok := c.view.SceneAt(px, py)
			if !ok {
				continue
			}

			sx := src.Min.X + int(math.Floor(p.X-dest.X))
			sy := src.Min.Y + int(math.Floor(p.Y-dest.Y))
			if !(image.Point{X: sx, Y: sy}).In(src) {
				continue
			}

			c.blend(px, py, img.At(sx, sy))
		}
	}
}

func (c *Canvas) blend(px, py int, src color.Color) {
	_, _, _, a := src.RGBA()
	if a == 0 {
		return
	}

	top, _ := colorful.MakeColor(src)
	i := py*c.width + px
	if a == 0xffff {
		c.pixels[i] = top
		return
	}
	c.pixels[i] = c.pixels[i].BlendRgb(top, float64(a)/0xffff)
}

// At returns the composited color of pixel (px, py) before brightness.
func (c *Canvas) At(px, py int) colorful.Color {
	if px < 0 || px >= c.width || py < 0 || py >= c.height {
		return colorful.Color{}
	}
	return c.pixels[py*c.width+px]
}

// Flush writes the buffer to dst, applying Brightness.
func (c *Canvas) Flush(dst *core.Screen) {
	k := core.ClampF(c.Brightness, 0, 1)
	for py := 0; py < c.height; py++ {
		for px := 0; px < c.width; px++ {
			col := c.pixels[py*c.width+px]
			col = colorful.Color{R: col.R * k, G: col.G * k, B: col.B * k}
			r, g, b := col.Clamped().RGB255()
			dst.SetPixel(px, py, core.RGB(r, g, b))
		}
	}
}
