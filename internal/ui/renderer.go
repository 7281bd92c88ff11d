package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/mazegen/internal/palette"
	"github.com/samdwyer/mazegen/internal/world"
)

// Renderer handles drawing the maze to the screen.
type Renderer struct {
	screen  *Screen
	palette *palette.Palette
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, p *palette.Palette) *Renderer {
	return &Renderer{screen: screen, palette: p}
}

// Render draws the map with a status line on the bottom row. Rows and
// columns that do not fit the terminal are cropped.
func (r *Renderer) Render(m *world.Map, status string) {
	r.screen.Frame(func(l Layout) {
		rows := min(m.Height(), l.MapHeight)
		cols := min(m.Width(), l.MapWidth)
		for y := 0; y < rows; y++ {
			for x := 0; x < cols; x++ {
				tile := m.At(x, y)
				r.screen.Cell(x, y, r.palette.Swatch(tile).Glyph, r.tileStyle(tile))
			}
		}
		if l.StatusRow >= 0 {
			r.RenderMessage(status, l.StatusRow)
		}
	})
}

// tileStyle returns the style for a tile type. Markers are bold so they stand
// out against the floor.
func (r *Renderer) tileStyle(tile world.Tile) tcell.Style {
	style := tcell.StyleDefault.Foreground(palette.TCellColor(r.palette.Swatch(tile).Color))
	switch tile {
	case world.TileStart, world.TileEnd, world.TileDoor:
		return style.Bold(true)
	default:
		return style
	}
}

// RenderMessage displays a message on row y.
func (r *Renderer) RenderMessage(msg string, y int) {
	r.screen.Text(0, y, msg, tcell.StyleDefault.Foreground(tcell.ColorWhite))
}
