package core

import "math"

// Viewport maps between scene space and the terminal's half-block pixel
// grid. The scene is scaled uniformly and letterboxed: each cell column is
// one pixel wide and each cell row holds two pixels.
type Viewport struct {
	SceneW, SceneH float64
	Cols, Rows     int

	scale      float64 // pixels per scene unit
	offX, offY float64 // letterbox offsets in pixels
}

// NewViewport fits a sceneW x sceneH scene into cols x rows cells.
func NewViewport(sceneW, sceneH float64, cols, rows int) Viewport {
	v := Viewport{SceneW: sceneW, SceneH: sceneH, Cols: cols, Rows: rows}
	if sceneW <= 0 || sceneH <= 0 || cols <= 0 || rows <= 0 {
		return v
	}

	pw, ph := float64(cols), float64(rows*2)
	v.scale = math.Min(pw/sceneW, ph/sceneH)
	v.offX = (pw - sceneW*v.scale) / 2
	v.offY = (ph - sceneH*v.scale) / 2
	return v
}

// Scale returns pixels per scene unit (0 for a degenerate viewport).
func (v Viewport) Scale() float64 {
	return v.scale
}

// PixelSize returns the pixel grid dimensions.
func (v Viewport) PixelSize() (int, int) {
	return v.Cols, v.Rows * 2
}

// SceneAt returns the scene position sampled by the center of pixel
// (px, py). ok is false inside the letterbox bars.
func (v Viewport) SceneAt(px, py int) (Point, bool) {
	return v.toScene(float64(px)+0.5, float64(py)+0.5)
}

// CellToScene maps a terminal cell (as reported by the mouse) to the scene
// position under its center.
func (v Viewport) CellToScene(col, row int) (Point, bool) {
	return v.toScene(float64(col)+0.5, float64(row*2)+1)
}

// SceneToPixel maps a scene position to the pixel containing it.
func (v Viewport) SceneToPixel(p Point) (int, int) {
	x := p.X*v.scale + v.offX
	y := p.Y*v.scale + v.offY
	return int(math.Floor(x)), int(math.Floor(y))
}

func (v Viewport) toScene(px, py float64) (Point, bool) {
	if v.scale == 0 {
		return Point{}, false
	}
	p := Point{
		X: (px - v.offX) / v.scale,
		Y: (py - v.offY) / v.scale,
	}
	if p.X < 0 || p.X >= v.SceneW || p.Y < 0 || p.Y >= v.SceneH {
		return p, false
	}
	return p, true
}
