package core

import "fmt"

// Color is a 24-bit color for a screen cell.
// The zero value means "use the terminal default".
type Color struct {
	R, G, B uint8
	Set     bool
}

// RGB returns an explicit color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, Set: true}
}

// Hex returns the color as "#rrggbb", or "" for the terminal default.
func (c Color) Hex() string {
	if !c.Set {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Predefined colors for text overlays.
var (
	ColorDefault = Color{}
	ColorWhite   = RGB(0xee, 0xee, 0xee)
	ColorGray    = RGB(0x8a, 0x8a, 0x8a)
	ColorOrange  = RGB(0xff, 0x87, 0x00)
	ColorBlack   = RGB(0x00, 0x00, 0x00)
)
