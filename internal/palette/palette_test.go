package palette

import (
	"errors"
	"image/color"
	"testing"

	"github.com/samdwyer/mazegen/internal/world"
)

func TestLoadDefault(t *testing.T) {
	p, err := LoadDefault()
	if err != nil {
		t.Fatalf("Failed to load palette: %v", err)
	}

	tests := []struct {
		tile  world.Tile
		glyph rune
		color color.RGBA
	}{
		{world.TileFloor, '.', color.RGBA{255, 255, 255, 255}},
		{world.TileWall, '#', color.RGBA{64, 64, 64, 255}},
		{world.TileDoor, '+', color.RGBA{0, 255, 0, 255}},
		{world.TileStart, '<', color.RGBA{0, 0, 255, 255}},
		{world.TileEnd, '>', color.RGBA{255, 0, 255, 255}},
	}
	for _, tt := range tests {
		s := p.Swatch(tt.tile)
		if s.Glyph != tt.glyph {
			t.Errorf("%s glyph = %q, want %q", tt.tile, s.Glyph, tt.glyph)
		}
		if s.Color != tt.color {
			t.Errorf("%s color = %v, want %v", tt.tile, s.Color, tt.color)
		}
	}
}

func TestNewRejectsBadEntries(t *testing.T) {
	full := []EntryDef{
		{Tile: "floor", Color: "#FFFFFF"},
		{Tile: "wall", Color: "#404040"},
		{Tile: "door", Color: "#00FF00"},
		{Tile: "start", Color: "#0000FF"},
		{Tile: "end", Color: "#FF00FF"},
	}

	if _, err := New(full); err != nil {
		t.Fatalf("Full palette should load, got %v", err)
	}

	unknown := append([]EntryDef{{Tile: "lava", Color: "#FF0000"}}, full...)
	if _, err := New(unknown); !errors.Is(err, ErrUnknownTile) {
		t.Errorf("Expected ErrUnknownTile, got %v", err)
	}

	if _, err := New(full[:4]); err == nil {
		t.Error("Palette missing a tile should fail")
	}

	badColor := append([]EntryDef{}, full...)
	badColor[0].Color = "#FFF"
	if _, err := New(badColor); err == nil {
		t.Error("Palette with bad color should fail")
	}
}

func TestNewDefaultsGlyphToTileRune(t *testing.T) {
	p, err := New([]EntryDef{
		{Tile: "floor", Color: "#FFFFFF"},
		{Tile: "wall", Color: "#404040"},
		{Tile: "door", Color: "#00FF00"},
		{Tile: "start", Color: "#0000FF"},
		{Tile: "end", Glyph: "E", Color: "#FF00FF"},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if g := p.Swatch(world.TileDoor).Glyph; g != '+' {
		t.Errorf("Door glyph = %q, want '+'", g)
	}
	if g := p.Swatch(world.TileEnd).Glyph; g != 'E' {
		t.Errorf("End glyph = %q, want 'E'", g)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00FF00", true},
		{"#404040", true},
		{"invalid", false},
		{"#FFF", false}, // Too short
		{"#GG0000", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}
}

func TestTCellColor(t *testing.T) {
	c := TCellColor(color.RGBA{R: 255, G: 0, B: 255, A: 255})
	r, g, b := c.RGB()
	if r != 255 || g != 0 || b != 255 {
		t.Errorf("TCellColor RGB = (%d,%d,%d), want (255,0,255)", r, g, b)
	}
}
