package sprite

import (
	"fmt"
	"image"
)

// Grid describes how frames are laid out on a sprite sheet.
type Grid struct {
	TextureWidth  int
	TextureHeight int
	Columns       int
	Rows          int
	CellWidth     int
	CellHeight    int
}

// Frames returns the number of cells on the sheet.
func (g Grid) Frames() int {
	return g.Columns * g.Rows
}

// Validate checks that the grid is usable and fits inside the texture.
func (g Grid) Validate() error {
	if g.Columns <= 0 || g.Rows <= 0 {
		return fmt.Errorf("sprite: grid needs positive columns and rows, got %dx%d", g.Columns, g.Rows)
	}
	if g.CellWidth <= 0 || g.CellHeight <= 0 {
		return fmt.Errorf("sprite: grid needs a positive cell size, got %dx%d", g.CellWidth, g.CellHeight)
	}
	if g.Columns*g.CellWidth > g.TextureWidth || g.Rows*g.CellHeight > g.TextureHeight {
		return fmt.Errorf("sprite: %dx%d cells of %dx%d do not fit a %dx%d texture",
			g.Columns, g.Rows, g.CellWidth, g.CellHeight, g.TextureWidth, g.TextureHeight)
	}
	return nil
}

// SourceRect returns the pixel rectangle of a frame on the sheet.
// Frames are numbered row by row, left to right.
func (g Grid) SourceRect(frame int) image.Rectangle {
	column := frame % g.Columns
	row := frame / g.Columns

	x := column * g.CellWidth
	y := row * g.CellHeight
	return image.Rect(x, y, x+g.CellWidth, y+g.CellHeight)
}
