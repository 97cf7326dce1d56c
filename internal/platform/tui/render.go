package tui

import (
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ember-story/internal/core"
)

// maxCachedStyles bounds the style cache; scenes with smooth gradients
// produce many distinct color pairs.
const maxCachedStyles = 4096

type colorPair struct {
	fg, bg core.Color
}

// ScreenRenderer converts a Screen buffer to a styled string for display.
// Each SSH session owns one, bound to that session's lipgloss renderer so
// color output matches the remote terminal.
type ScreenRenderer struct {
	renderer *lipgloss.Renderer
	styles   map[colorPair]lipgloss.Style
}

// NewScreenRenderer creates a screen renderer. A nil renderer uses the
// process-wide default.
func NewScreenRenderer(r *lipgloss.Renderer) *ScreenRenderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &ScreenRenderer{
		renderer: r,
		styles:   make(map[colorPair]lipgloss.Style),
	}
}

// Renderer returns the lipgloss renderer styles are created with.
func (sr *ScreenRenderer) Renderer() *lipgloss.Renderer {
	return sr.renderer
}

func (sr *ScreenRenderer) style(p colorPair) lipgloss.Style {
	if st, ok := sr.styles[p]; ok {
		return st
	}
	if len(sr.styles) >= maxCachedStyles {
		clear(sr.styles)
	}

	st := sr.renderer.NewStyle()
	if p.fg.Set {
		st = st.Foreground(lipgloss.Color(p.fg.Hex()))
	}
	if p.bg.Set {
		st = st.Background(lipgloss.Color(p.bg.Hex()))
	}
	sr.styles[p] = st
	return st
}

// Render converts the screen to a string.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func (sr *ScreenRenderer) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			pair := colorPair{fg: cell.Fg, bg: cell.Bg}

			run.Reset()
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Fg != pair.fg || cell.Bg != pair.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(sr.style(pair).Render(run.String()))
		}
	}
	return sb.String()
}

// ScreenImage rebuilds the half-block pixel grid of a screen as an image,
// two pixels per cell. Text cells keep only their background; cells
// without an explicit color come out black.
func ScreenImage(s *core.Screen) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.Width(), s.Height()*2))
	for y := range s.Height() {
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			top := cell.Fg
			if cell.Rune != core.HalfBlock {
				top = cell.Bg
			}
			img.Set(x, y*2, toRGBA(top))
			img.Set(x, y*2+1, toRGBA(cell.Bg))
		}
	}
	return img
}

func toRGBA(c core.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}
